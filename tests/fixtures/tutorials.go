// Package fixtures provides reusable test data generators for integration tests.
// This package eliminates test data duplication and ensures consistent test content
// across different test suites.
package fixtures

import (
	"fmt"
	"strings"
	"time"

	"tutorial-hub/internal/domain/entity"
)

// Tutorial builds a tutorial entity with deterministic content for the given ID.
//
// Example:
//
//	tut := fixtures.Tutorial(1, "Go Tutorial", true, now)
func Tutorial(id int64, title string, published bool, at time.Time) *entity.Tutorial {
	return &entity.Tutorial{
		ID:          id,
		Title:       title,
		Description: title + " の説明",
		Published:   published,
		CreatedAt:   at,
		UpdatedAt:   at,
	}
}

// TutorialSet returns a three-item catalog ordered newest-first, matching the
// repository listing order. The middle item is unpublished.
func TutorialSet(now time.Time) []*entity.Tutorial {
	return []*entity.Tutorial{
		Tutorial(3, "Go Tutorial", true, now),
		Tutorial(2, "Spring Boot Tutorial", false, now.Add(-time.Hour)),
		Tutorial(1, "Java Tutorial", true, now.Add(-2*time.Hour)),
	}
}

// GenerateTitle generates a title with exactly the given rune count.
// Useful for exercising the title length boundary.
//
// Example:
//
//	title := fixtures.GenerateTitle(200) // longest accepted title
func GenerateTitle(runes int) string {
	return generateText("チュートリアル", runes)
}

// GenerateDescription generates a description with exactly the given rune
// count. Useful for exercising the description length boundary.
func GenerateDescription(runes int) string {
	return generateText("本文。", runes)
}

// generateText repeats the seed until the result holds exactly n runes.
func generateText(seed string, n int) string {
	if n <= 0 {
		return ""
	}

	var builder strings.Builder
	for len([]rune(builder.String())) < n {
		builder.WriteString(seed)
	}

	runes := []rune(builder.String())
	return string(runes[:n])
}

// CreateBody returns a JSON request body for the create endpoint.
//
// Example:
//
//	body := fixtures.CreateBody("Go Tutorial", "Go の基礎", false)
func CreateBody(title, description string, published bool) string {
	return fmt.Sprintf(`{"title":%q,"description":%q,"published":%t}`,
		title, description, published)
}
