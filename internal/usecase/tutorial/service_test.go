package tutorial_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tutorial-hub/internal/domain/entity"
	tutUC "tutorial-hub/internal/usecase/tutorial"
)

/*────────────────────  インメモリスタブ  ────────────────────*/

// very-light TutorialRepository stub
type stubRepo struct {
	data   map[int64]*entity.Tutorial
	order  []int64
	nextID int64
	err    error // 強制エラー注入用
}

func newStub() *stubRepo {
	return &stubRepo{data: map[int64]*entity.Tutorial{}, nextID: 1}
}

/* --- repository.TutorialRepository を満たす --- */

func (s *stubRepo) List(_ context.Context) ([]*entity.Tutorial, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]*entity.Tutorial, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.data[id])
	}
	return out, nil
}
func (s *stubRepo) FindByTitle(_ context.Context, title string) ([]*entity.Tutorial, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.Tutorial
	for _, id := range s.order {
		if strings.Contains(strings.ToLower(s.data[id].Title), strings.ToLower(title)) {
			out = append(out, s.data[id])
		}
	}
	return out, nil
}
func (s *stubRepo) FindByPublished(_ context.Context, published bool) ([]*entity.Tutorial, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.Tutorial
	for _, id := range s.order {
		if s.data[id].Published == published {
			out = append(out, s.data[id])
		}
	}
	return out, nil
}
func (s *stubRepo) Get(_ context.Context, id int64) (*entity.Tutorial, error) {
	return s.data[id], s.err
}
func (s *stubRepo) Create(_ context.Context, tut *entity.Tutorial) error {
	if s.err != nil {
		return s.err
	}
	tut.ID = s.nextID
	s.nextID++
	s.data[tut.ID] = tut
	s.order = append(s.order, tut.ID)
	return nil
}
func (s *stubRepo) Update(_ context.Context, tut *entity.Tutorial) error {
	if s.err != nil {
		return s.err
	}
	s.data[tut.ID] = tut
	return nil
}
func (s *stubRepo) Delete(_ context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	delete(s.data, id)
	return nil
}
func (s *stubRepo) DeleteAll(_ context.Context) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	n := int64(len(s.data))
	s.data = map[int64]*entity.Tutorial{}
	s.order = nil
	return n, nil
}
func (s *stubRepo) CountTutorials(_ context.Context) (int64, error) {
	return int64(len(s.data)), s.err
}
func (s *stubRepo) CountPublished(_ context.Context) (int64, error) {
	var n int64
	for _, t := range s.data {
		if t.Published {
			n++
		}
	}
	return n, s.err
}

/*────────────────────  テストケース  ────────────────────*/

/* 1. Create: 必須フィールドバリデーション */
func TestService_Create_validation(t *testing.T) {
	svc := tutUC.Service{Repo: newStub()}

	_, err := svc.Create(context.Background(), tutUC.CreateInput{})
	if err == nil {
		t.Fatalf("want validation error, got nil")
	}
	var vErr *entity.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("want ValidationError, got %T", err)
	}
}

/* 2. Create → データが保存されるか */
func TestService_Create_success(t *testing.T) {
	stub := newStub()
	svc := tutUC.Service{Repo: stub}

	in := tutUC.CreateInput{
		Title: "Go Basics", Description: "Introduction to Go", Published: true,
	}
	created, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if created.ID != 1 {
		t.Fatalf("created.ID = %d, want 1", created.ID)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatalf("timestamps not set: %+v", created)
	}
	if got := stub.data[1]; got == nil || got.Title != "Go Basics" || !got.Published {
		t.Fatalf("stored tutorial mismatch: %+v", got)
	}
}

/* 3. List: リポジトリの順序を保持するか */
func TestService_List_preservesOrder(t *testing.T) {
	stub := newStub()
	svc := tutUC.Service{Repo: stub}

	for _, title := range []string{"Java", "Python", "JavaScript"} {
		if _, err := svc.Create(context.Background(), tutUC.CreateInput{Title: title}); err != nil {
			t.Fatalf("Create err=%v", err)
		}
	}

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List err=%v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, want := range []string{"Java", "Python", "JavaScript"} {
		if got[i].Title != want {
			t.Errorf("got[%d].Title = %q, want %q", i, got[i].Title, want)
		}
	}
}

/* 4. FindByTitleContaining: 部分一致 */
func TestService_FindByTitleContaining(t *testing.T) {
	stub := newStub()
	svc := tutUC.Service{Repo: stub}

	for _, title := range []string{"Java", "JavaScript", "Ruby"} {
		if _, err := svc.Create(context.Background(), tutUC.CreateInput{Title: title}); err != nil {
			t.Fatalf("Create err=%v", err)
		}
	}

	got, err := svc.FindByTitleContaining(context.Background(), "java")
	if err != nil {
		t.Fatalf("FindByTitleContaining err=%v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
}

/* 5. FindByPublished */
func TestService_FindByPublished(t *testing.T) {
	stub := newStub()
	svc := tutUC.Service{Repo: stub}

	if _, err := svc.Create(context.Background(), tutUC.CreateInput{Title: "a", Published: true}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Create(context.Background(), tutUC.CreateInput{Title: "b"}); err != nil {
		t.Fatal(err)
	}

	published, err := svc.FindByPublished(context.Background(), true)
	if err != nil {
		t.Fatalf("FindByPublished err=%v", err)
	}
	if len(published) != 1 || published[0].Title != "a" {
		t.Fatalf("published mismatch: %+v", published)
	}
}

/* 6. Get: 不正ID / 未存在 */
func TestService_Get_errors(t *testing.T) {
	svc := tutUC.Service{Repo: newStub()}

	if _, err := svc.Get(context.Background(), 0); !errors.Is(err, tutUC.ErrInvalidTutorialID) {
		t.Fatalf("want ErrInvalidTutorialID, got %v", err)
	}
	if _, err := svc.Get(context.Background(), 99); !errors.Is(err, tutUC.ErrTutorialNotFound) {
		t.Fatalf("want ErrTutorialNotFound, got %v", err)
	}
}

/* 7. Update: 部分更新 */
func TestService_Update_partial(t *testing.T) {
	stub := newStub()
	svc := tutUC.Service{Repo: stub}

	created, err := svc.Create(context.Background(), tutUC.CreateInput{
		Title: "Old Title", Description: "desc",
	})
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}

	published := true
	updated, err := svc.Update(context.Background(), tutUC.UpdateInput{
		ID: created.ID, Published: &published,
	})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if updated.Title != "Old Title" {
		t.Errorf("Title = %q, want unchanged %q", updated.Title, "Old Title")
	}
	if !updated.Published {
		t.Errorf("Published = false, want true")
	}
}

/* 8. Update: 未存在は ErrTutorialNotFound */
func TestService_Update_notFound(t *testing.T) {
	svc := tutUC.Service{Repo: newStub()}

	title := "x"
	_, err := svc.Update(context.Background(), tutUC.UpdateInput{ID: 42, Title: &title})
	if !errors.Is(err, tutUC.ErrTutorialNotFound) {
		t.Fatalf("want ErrTutorialNotFound, got %v", err)
	}
}

/* 9. Delete / DeleteAll */
func TestService_Delete(t *testing.T) {
	stub := newStub()
	svc := tutUC.Service{Repo: stub}

	created, err := svc.Create(context.Background(), tutUC.CreateInput{Title: "t"})
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
	if err := svc.Delete(context.Background(), -1); !errors.Is(err, tutUC.ErrInvalidTutorialID) {
		t.Fatalf("want ErrInvalidTutorialID, got %v", err)
	}
}

func TestService_DeleteAll(t *testing.T) {
	stub := newStub()
	svc := tutUC.Service{Repo: stub}

	for _, title := range []string{"a", "b", "c"} {
		if _, err := svc.Create(context.Background(), tutUC.CreateInput{Title: title}); err != nil {
			t.Fatal(err)
		}
	}
	n, err := svc.DeleteAll(context.Background())
	if err != nil {
		t.Fatalf("DeleteAll err=%v", err)
	}
	if n != 3 {
		t.Fatalf("deleted = %d, want 3", n)
	}
}

/* 10. リポジトリ障害はラップして伝播 */
func TestService_repositoryError(t *testing.T) {
	stub := newStub()
	stub.err = errors.New("database error")
	svc := tutUC.Service{Repo: stub}

	if _, err := svc.List(context.Background()); err == nil {
		t.Fatal("want error, got nil")
	}
	if _, err := svc.FindByTitleContaining(context.Background(), "x"); err == nil {
		t.Fatal("want error, got nil")
	}
	if _, err := svc.FindByPublished(context.Background(), true); err == nil {
		t.Fatal("want error, got nil")
	}
}
