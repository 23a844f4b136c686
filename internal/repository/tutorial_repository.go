// Package repository defines the persistence interfaces used by the use case layer.
package repository

import (
	"context"

	"tutorial-hub/internal/domain/entity"
)

// TutorialRepository abstracts the persistence layer for tutorials.
// Implementations live under internal/infra/adapter/persistence.
type TutorialRepository interface {
	// List retrieves all tutorials ordered by creation date (newest first).
	List(ctx context.Context) ([]*entity.Tutorial, error)
	// FindByTitle retrieves tutorials whose title contains the given
	// substring (case-insensitive), preserving the listing order.
	FindByTitle(ctx context.Context, title string) ([]*entity.Tutorial, error)
	// FindByPublished retrieves tutorials filtered by published state.
	FindByPublished(ctx context.Context, published bool) ([]*entity.Tutorial, error)
	// Get retrieves a single tutorial by ID.
	// Returns (nil, nil) if the tutorial does not exist.
	Get(ctx context.Context, id int64) (*entity.Tutorial, error)
	Create(ctx context.Context, tutorial *entity.Tutorial) error
	Update(ctx context.Context, tutorial *entity.Tutorial) error
	Delete(ctx context.Context, id int64) error
	// DeleteAll removes every tutorial. Returns the number of rows deleted.
	DeleteAll(ctx context.Context) (int64, error)
	// CountTutorials returns the total number of tutorials.
	// Used for business metrics reporting.
	CountTutorials(ctx context.Context) (int64, error)
	// CountPublished returns the number of published tutorials.
	CountPublished(ctx context.Context) (int64, error)
}
