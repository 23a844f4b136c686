// Package tutorial provides HTTP handlers for tutorial-related endpoints.
// It includes handlers for listing, retrieving, creating, updating, and deleting tutorials.
package tutorial

import (
	"time"

	"tutorial-hub/internal/domain/entity"
)

// DTO represents the JSON structure for tutorial data transfer.
type DTO struct {
	ID          int64     `json:"id" example:"1"`
	Title       string    `json:"title" example:"Go 入門"`
	Description string    `json:"description" example:"Go 言語の基礎を学びます"`
	Published   bool      `json:"published" example:"true"`
	CreatedAt   time.Time `json:"created_at" example:"2025-10-26T12:00:00Z"`
	UpdatedAt   time.Time `json:"updated_at" example:"2025-10-26T12:00:00Z"`
}

// toDTO converts a tutorial entity into its transfer representation.
func toDTO(e *entity.Tutorial) DTO {
	return DTO{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Published:   e.Published,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// toDTOs converts a slice of tutorial entities, preserving order.
func toDTOs(list []*entity.Tutorial) []DTO {
	out := make([]DTO, 0, len(list))
	for _, e := range list {
		out = append(out, toDTO(e))
	}
	return out
}
