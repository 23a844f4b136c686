package entity

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// maxTitleLength defines the maximum allowed length for tutorial titles.
	maxTitleLength = 200

	// maxDescriptionLength defines the maximum allowed length for tutorial descriptions.
	maxDescriptionLength = 5000
)

// ValidateTitle validates a tutorial title.
// The title must be non-empty after trimming whitespace and must not
// exceed maxTitleLength characters.
// Returns a ValidationError if the title is invalid.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return &ValidationError{Field: "title", Message: "is required"}
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return &ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("must not exceed %d characters", maxTitleLength),
		}
	}
	return nil
}

// ValidateDescription validates a tutorial description.
// Descriptions are optional but must not exceed maxDescriptionLength characters.
func ValidateDescription(description string) error {
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		return &ValidationError{
			Field:   "description",
			Message: fmt.Sprintf("must not exceed %d characters", maxDescriptionLength),
		}
	}
	return nil
}
