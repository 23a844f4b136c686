package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"tutorial-hub/internal/domain/entity"
	pg "tutorial-hub/internal/infra/adapter/persistence/postgres"
)

/* ─────────────────────────── ヘルパ ─────────────────────────── */

func tutRow(tuts ...*entity.Tutorial) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "title", "description", "published",
		"created_at", "updated_at",
	})
	for _, tut := range tuts {
		rows.AddRow(
			tut.ID, tut.Title, tut.Description, tut.Published,
			tut.CreatedAt, tut.UpdatedAt,
		)
	}
	return rows
}

/* ─────────────────────────── 1. List ─────────────────────────── */

func TestTutorialRepo_List(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	want := []*entity.Tutorial{
		{ID: 2, Title: "Go Tutorial", Description: "Go 入門",
			Published: true, CreatedAt: now, UpdatedAt: now},
		{ID: 1, Title: "Spring Boot Tutorial", Description: "",
			Published: false, CreatedAt: now.Add(-time.Hour), UpdatedAt: now},
	}

	// created_at が同じ場合も順序が安定するよう id を第二キーにする
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC, id DESC")).
		WillReturnRows(tutRow(want...))

	repo := pg.NewTutorialRepo(db)
	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestTutorialRepo_List_Empty(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM tutorials").
		WillReturnRows(tutRow()) // 空集合で OK

	repo := pg.NewTutorialRepo(db)
	got, err := repo.List(context.Background())
	if err != nil || len(got) != 0 {
		t.Fatalf("List err=%v len=%d", err, len(got))
	}
}

func TestTutorialRepo_List_QueryError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM tutorials").
		WillReturnError(errors.New("connection refused"))

	repo := pg.NewTutorialRepo(db)
	if _, err := repo.List(context.Background()); err == nil {
		t.Fatal("List want error, got nil")
	}
}

/* ─────────────────────────── 2. FindByTitle ─────────────────────────── */

func TestTutorialRepo_FindByTitle(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery("title ILIKE").
		WithArgs("%spring%").
		WillReturnRows(tutRow(&entity.Tutorial{
			ID: 1, Title: "Spring Boot Tutorial", Description: "d",
			Published: true, CreatedAt: now, UpdatedAt: now,
		}))

	repo := pg.NewTutorialRepo(db)
	got, err := repo.FindByTitle(context.Background(), "spring")
	if err != nil || len(got) != 1 {
		t.Fatalf("FindByTitle err=%v len=%d", err, len(got))
	}
	if got[0].Title != "Spring Boot Tutorial" {
		t.Fatalf("Title=%q", got[0].Title)
	}
}

/* ─────────────────────────── 3. FindByPublished ─────────────────────────── */

func TestTutorialRepo_FindByPublished(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery("published =").
		WithArgs(true).
		WillReturnRows(tutRow(&entity.Tutorial{
			ID: 3, Title: "t", Description: "d",
			Published: true, CreatedAt: now, UpdatedAt: now,
		}))

	repo := pg.NewTutorialRepo(db)
	got, err := repo.FindByPublished(context.Background(), true)
	if err != nil || len(got) != 1 {
		t.Fatalf("FindByPublished err=%v len=%d", err, len(got))
	}
}

/* ─────────────────────────── 4. Get ─────────────────────────── */

func TestTutorialRepo_Get(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	want := &entity.Tutorial{
		ID: 1, Title: "Go Tutorial", Description: "Go 入門",
		Published: true, CreatedAt: now, UpdatedAt: now,
	}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id")).
		WithArgs(int64(1)).
		WillReturnRows(tutRow(want))

	repo := pg.NewTutorialRepo(db)
	got, err := repo.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestTutorialRepo_Get_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id")).
		WithArgs(int64(999)).
		WillReturnRows(tutRow()) // 0 行 → ErrNoRows

	repo := pg.NewTutorialRepo(db)
	got, err := repo.Get(context.Background(), 999)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if got != nil {
		t.Fatalf("Get want nil, got %+v", got)
	}
}

/* ─────────────────────────── 5. Create ─────────────────────────── */

func TestTutorialRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()

	// RETURNING id で採番された ID が返る
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO tutorials")).
		WithArgs("title", "desc", false, now, now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	repo := pg.NewTutorialRepo(db)
	tut := &entity.Tutorial{
		Title: "title", Description: "desc",
		Published: false, CreatedAt: now, UpdatedAt: now,
	}
	if err := repo.Create(context.Background(), tut); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if tut.ID != 7 {
		t.Fatalf("ID=%d, want 7", tut.ID)
	}
}

/* ─────────────────────────── 6. Update ─────────────────────────── */

func TestTutorialRepo_Update(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()

	mock.ExpectExec("UPDATE tutorials").
		WithArgs("new title", "new desc", true, now, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := pg.NewTutorialRepo(db)
	err := repo.Update(context.Background(), &entity.Tutorial{
		ID: 1, Title: "new title", Description: "new desc",
		Published: true, UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
}

func TestTutorialRepo_Update_NoRows(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()

	mock.ExpectExec("UPDATE tutorials").
		WithArgs("t", "d", false, now, int64(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := pg.NewTutorialRepo(db)
	err := repo.Update(context.Background(), &entity.Tutorial{
		ID: 999, Title: "t", Description: "d", UpdatedAt: now,
	})
	if err == nil {
		t.Fatal("Update want error, got nil")
	}
}

/* ─────────────────────────── 7. Delete ─────────────────────────── */

func TestTutorialRepo_Delete(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec("DELETE FROM tutorials").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := pg.NewTutorialRepo(db)
	if err := repo.Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
}

func TestTutorialRepo_Delete_NoRows(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec("DELETE FROM tutorials").
		WithArgs(int64(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := pg.NewTutorialRepo(db)
	if err := repo.Delete(context.Background(), 999); err == nil {
		t.Fatal("Delete want error, got nil")
	}
}

/* ─────────────────────────── 8. DeleteAll ─────────────────────────── */

func TestTutorialRepo_DeleteAll(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM tutorials")).
		WillReturnResult(sqlmock.NewResult(0, 5))

	repo := pg.NewTutorialRepo(db)
	n, err := repo.DeleteAll(context.Background())
	if err != nil {
		t.Fatalf("DeleteAll err=%v", err)
	}
	if n != 5 {
		t.Fatalf("deleted=%d, want 5", n)
	}
}

/* ─────────────────────────── 9. Count ─────────────────────────── */

func TestTutorialRepo_CountTutorials(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM tutorials")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(12)))

	repo := pg.NewTutorialRepo(db)
	n, err := repo.CountTutorials(context.Background())
	if err != nil || n != 12 {
		t.Fatalf("CountTutorials err=%v n=%d", err, n)
	}
}

func TestTutorialRepo_CountPublished(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE published = TRUE")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(4)))

	repo := pg.NewTutorialRepo(db)
	n, err := repo.CountPublished(context.Background())
	if err != nil || n != 4 {
		t.Fatalf("CountPublished err=%v n=%d", err, n)
	}
}
