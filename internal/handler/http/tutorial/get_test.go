package tutorial_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tutorial-hub/internal/domain/entity"
	"tutorial-hub/internal/handler/http/tutorial"
	tutUC "tutorial-hub/internal/usecase/tutorial"
)

/* ───────── モック実装 ───────── */

type stubGetRepo struct {
	tutorial *entity.Tutorial
	getErr   error
	lastID   int64
}

func (s *stubGetRepo) Get(_ context.Context, id int64) (*entity.Tutorial, error) {
	s.lastID = id
	return s.tutorial, s.getErr
}

// 以下は未使用だが、インターフェース満たすために実装
func (s *stubGetRepo) List(_ context.Context) ([]*entity.Tutorial, error) {
	return nil, nil
}
func (s *stubGetRepo) FindByTitle(_ context.Context, _ string) ([]*entity.Tutorial, error) {
	return nil, nil
}
func (s *stubGetRepo) FindByPublished(_ context.Context, _ bool) ([]*entity.Tutorial, error) {
	return nil, nil
}
func (s *stubGetRepo) Create(_ context.Context, _ *entity.Tutorial) error {
	return nil
}
func (s *stubGetRepo) Update(_ context.Context, _ *entity.Tutorial) error {
	return nil
}
func (s *stubGetRepo) Delete(_ context.Context, _ int64) error {
	return nil
}
func (s *stubGetRepo) DeleteAll(_ context.Context) (int64, error) {
	return 0, nil
}
func (s *stubGetRepo) CountTutorials(_ context.Context) (int64, error) {
	return 0, nil
}
func (s *stubGetRepo) CountPublished(_ context.Context) (int64, error) {
	return 0, nil
}

/*────────────────────  テストケース  ────────────────────*/

func TestGetHandler_Success(t *testing.T) {
	now := time.Now()
	stub := &stubGetRepo{
		tutorial: &entity.Tutorial{
			ID:          42,
			Title:       "Go Tutorial",
			Description: "Go の基礎",
			Published:   true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}

	handler := tutorial.GetHandler{Svc: tutUC.Service{Repo: stub}}

	req := httptest.NewRequest(http.MethodGet, "/tutorials/42", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusOK)
	}

	var result tutorial.DTO
	if err := json.NewDecoder(rr.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.ID != 42 {
		t.Errorf("result.ID = %d, want 42", result.ID)
	}
	if result.Title != "Go Tutorial" {
		t.Errorf("result.Title = %q, want %q", result.Title, "Go Tutorial")
	}
	if stub.lastID != 42 {
		t.Errorf("id passed to repo = %d, want 42", stub.lastID)
	}
}

func TestGetHandler_InvalidID(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "non-numeric", path: "/tutorials/abc"},
		{name: "negative", path: "/tutorials/-1"},
		{name: "zero", path: "/tutorials/0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubGetRepo{}
			handler := tutorial.GetHandler{Svc: tutUC.Service{Repo: stub}}

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestGetHandler_NotFound(t *testing.T) {
	// リポジトリが (nil, nil) を返した場合は 404
	stub := &stubGetRepo{}

	handler := tutorial.GetHandler{Svc: tutUC.Service{Repo: stub}}

	req := httptest.NewRequest(http.MethodGet, "/tutorials/999", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestGetHandler_RepoError(t *testing.T) {
	stub := &stubGetRepo{getErr: errors.New("database error")}

	handler := tutorial.GetHandler{Svc: tutUC.Service{Repo: stub}}

	req := httptest.NewRequest(http.MethodGet, "/tutorials/1", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	// 500はボディなし
	if rr.Body.Len() != 0 {
		t.Fatalf("body length = %d, want 0", rr.Body.Len())
	}
}
