// Package pathutil provides helpers for working with URL paths in handlers
// and middleware: ID extraction and path normalization for metric labels.
package pathutil

import (
	"regexp"
	"strings"
)

// pathPattern pairs a compiled regex with its normalized template.
type pathPattern struct {
	pattern  *regexp.Regexp
	template string
}

// pathPatterns lists the dynamic routes, most specific first.
// Pre-compiled at init so normalization stays cheap on the hot path.
var pathPatterns = []pathPattern{
	{pattern: regexp.MustCompile(`^/tutorials/\d+$`), template: "/tutorials/:id"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label cardinality explosion.
// It converts paths with IDs (e.g., /tutorials/123) to template format (e.g., /tutorials/:id).
// Static paths such as /tutorials/published, /health and /metrics remain unchanged.
//
// Query parameters and trailing slashes are stripped before matching:
//
//	NormalizePath("/tutorials/123")        // "/tutorials/:id"
//	NormalizePath("/tutorials/123/")       // "/tutorials/:id"
//	NormalizePath("/tutorials?title=Go")   // "/tutorials"
//	NormalizePath("/tutorials/published")  // "/tutorials/published" (unchanged)
func NormalizePath(path string) string {
	// Strip query parameters if present
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	// Strip trailing slash if present (except for root path)
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.pattern.MatchString(path) {
			return p.template
		}
	}

	// Static paths pass through unchanged
	return path
}
