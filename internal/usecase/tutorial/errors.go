// Package tutorial provides use cases for managing tutorial entities.
// It implements business logic for creating, updating, deleting, and querying tutorials,
// including validation and interaction with the tutorial repository.
package tutorial

import (
	"fmt"

	"tutorial-hub/internal/domain/entity"
)

// Sentinel errors for tutorial use case operations.
// They wrap the domain sentinels so callers can match either level
// with errors.Is.
var (
	// ErrTutorialNotFound indicates that the requested tutorial was not found.
	// This error is typically returned when attempting to retrieve or update
	// a tutorial that does not exist in the repository.
	ErrTutorialNotFound = fmt.Errorf("tutorial %w", entity.ErrNotFound)

	// ErrInvalidTutorialID indicates that the provided tutorial ID is invalid.
	// Tutorial IDs must be positive integers.
	ErrInvalidTutorialID = fmt.Errorf("%w: tutorial ID must be positive", entity.ErrInvalidInput)
)
