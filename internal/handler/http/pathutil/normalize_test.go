package pathutil

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/tutorials/123", "/tutorials/:id"},
		{"/tutorials/1", "/tutorials/:id"},
		{"/tutorials/123/", "/tutorials/:id"},
		{"/tutorials/123?x=1", "/tutorials/:id"},
		{"/tutorials", "/tutorials"},
		{"/tutorials?title=Go", "/tutorials"},
		{"/tutorials/published", "/tutorials/published"},
		{"/health", "/health"},
		{"/metrics", "/metrics"},
		{"/", "/"},
		{"/unknown/path/123", "/unknown/path/123"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := NormalizePath(tt.path); got != tt.want {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
