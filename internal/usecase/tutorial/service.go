package tutorial

import (
	"context"
	"fmt"
	"time"

	"tutorial-hub/internal/domain/entity"
	"tutorial-hub/internal/repository"
)

// CreateInput represents the input parameters for creating a new tutorial.
type CreateInput struct {
	Title       string
	Description string
	Published   bool
}

// UpdateInput represents the input parameters for updating an existing tutorial.
// Fields with nil values will not be updated.
type UpdateInput struct {
	ID          int64
	Title       *string
	Description *string
	Published   *bool
}

// Service provides tutorial management use cases.
// It handles business logic for tutorial operations and delegates persistence to the repository.
type Service struct {
	Repo repository.TutorialRepository
}

// List retrieves all tutorials from the repository.
// Returns an error if the repository operation fails.
func (s *Service) List(ctx context.Context) ([]*entity.Tutorial, error) {
	tutorials, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tutorials: %w", err)
	}
	return tutorials, nil
}

// FindByTitleContaining retrieves tutorials whose title contains the given substring.
// The repository performs the match case-insensitively and preserves listing order.
// Returns an error if the repository operation fails.
func (s *Service) FindByTitleContaining(ctx context.Context, title string) ([]*entity.Tutorial, error) {
	tutorials, err := s.Repo.FindByTitle(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("find tutorials by title: %w", err)
	}
	return tutorials, nil
}

// FindByPublished retrieves tutorials filtered by their published state.
// Returns an error if the repository operation fails.
func (s *Service) FindByPublished(ctx context.Context, published bool) ([]*entity.Tutorial, error) {
	tutorials, err := s.Repo.FindByPublished(ctx, published)
	if err != nil {
		return nil, fmt.Errorf("find tutorials by published: %w", err)
	}
	return tutorials, nil
}

// Get retrieves a single tutorial by its ID.
// Returns ErrInvalidTutorialID if the ID is not positive.
// Returns ErrTutorialNotFound if the tutorial does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Tutorial, error) {
	if id <= 0 {
		return nil, ErrInvalidTutorialID
	}

	tut, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get tutorial: %w", err)
	}
	if tut == nil {
		return nil, ErrTutorialNotFound
	}
	return tut, nil
}

// Create creates a new tutorial with the provided input.
// It validates the title and description before creating the tutorial.
// Returns a ValidationError if any input field is invalid.
// On success the created entity (with its assigned ID) is returned.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Tutorial, error) {
	if err := entity.ValidateTitle(in.Title); err != nil {
		return nil, err
	}
	if err := entity.ValidateDescription(in.Description); err != nil {
		return nil, err
	}

	now := time.Now()
	tut := &entity.Tutorial{
		Title:       in.Title,
		Description: in.Description,
		Published:   in.Published,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Repo.Create(ctx, tut); err != nil {
		return nil, fmt.Errorf("create tutorial: %w", err)
	}
	return tut, nil
}

// Update modifies an existing tutorial with the provided input.
// Only non-nil fields in the input will be updated.
// Returns ErrInvalidTutorialID if the ID is not positive.
// Returns ErrTutorialNotFound if the tutorial does not exist.
// Returns a ValidationError if any updated field is invalid.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Tutorial, error) {
	if in.ID <= 0 {
		return nil, ErrInvalidTutorialID
	}

	tut, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get tutorial: %w", err)
	}
	if tut == nil {
		return nil, ErrTutorialNotFound
	}

	if in.Title != nil {
		if err := entity.ValidateTitle(*in.Title); err != nil {
			return nil, err
		}
		tut.Title = *in.Title
	}
	if in.Description != nil {
		if err := entity.ValidateDescription(*in.Description); err != nil {
			return nil, err
		}
		tut.Description = *in.Description
	}
	if in.Published != nil {
		tut.Published = *in.Published
	}
	tut.UpdatedAt = time.Now()

	if err := s.Repo.Update(ctx, tut); err != nil {
		return nil, fmt.Errorf("update tutorial: %w", err)
	}
	return tut, nil
}

// Delete removes a tutorial by its ID.
// Returns ErrInvalidTutorialID if the ID is not positive.
// Returns an error if the repository operation fails.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidTutorialID
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete tutorial: %w", err)
	}
	return nil
}

// DeleteAll removes every tutorial from the repository.
// Returns the number of tutorials deleted.
func (s *Service) DeleteAll(ctx context.Context) (int64, error) {
	n, err := s.Repo.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete all tutorials: %w", err)
	}
	return n, nil
}
