// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Tutorial, along with
// their validation rules and domain-specific errors.
package entity

import "time"

// Tutorial represents a single tutorial entry in the catalog.
// It carries the tutorial's content metadata and its publication state.
type Tutorial struct {
	ID          int64
	Title       string
	Description string
	Published   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
