// Package sqlite provides SQLite implementations of repository interfaces.
// It is used for lightweight deployments and local development.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"tutorial-hub/internal/domain/entity"
	"tutorial-hub/internal/repository"
)

// TutorialRepo implements the TutorialRepository interface using SQLite.
type TutorialRepo struct{ db *sql.DB }

// NewTutorialRepo creates a new SQLite-backed tutorial repository.
func NewTutorialRepo(db *sql.DB) repository.TutorialRepository {
	return &TutorialRepo{db: db}
}

func (repo *TutorialRepo) List(ctx context.Context) ([]*entity.Tutorial, error) {
	const query = `
SELECT id, title, description, published, created_at, updated_at
FROM tutorials
ORDER BY created_at DESC, id DESC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanTutorials(rows, "List")
}

func (repo *TutorialRepo) FindByTitle(ctx context.Context, title string) ([]*entity.Tutorial, error) {
	// SQLite の LIKE は ASCII のみ大文字小文字を無視するため LOWER で揃える
	const query = `
SELECT id, title, description, published, created_at, updated_at
FROM tutorials
WHERE LOWER(title) LIKE LOWER(?)
ORDER BY created_at DESC, id DESC`
	param := "%" + title + "%"
	rows, err := repo.db.QueryContext(ctx, query, param)
	if err != nil {
		return nil, fmt.Errorf("FindByTitle: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanTutorials(rows, "FindByTitle")
}

func (repo *TutorialRepo) FindByPublished(ctx context.Context, published bool) ([]*entity.Tutorial, error) {
	const query = `
SELECT id, title, description, published, created_at, updated_at
FROM tutorials
WHERE published = ?
ORDER BY created_at DESC, id DESC`
	rows, err := repo.db.QueryContext(ctx, query, published)
	if err != nil {
		return nil, fmt.Errorf("FindByPublished: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanTutorials(rows, "FindByPublished")
}

func (repo *TutorialRepo) Get(ctx context.Context, id int64) (*entity.Tutorial, error) {
	const query = `
SELECT id, title, description, published, created_at, updated_at
FROM tutorials
WHERE id = ?
LIMIT 1`
	var tut entity.Tutorial
	err := repo.db.QueryRowContext(ctx, query, id).Scan(
		&tut.ID, &tut.Title, &tut.Description, &tut.Published,
		&tut.CreatedAt, &tut.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("Get: QueryRowContext: %w", err)
	}
	return &tut, nil
}

// Create inserts a new tutorial and assigns its generated ID to the entity.
func (repo *TutorialRepo) Create(ctx context.Context, tut *entity.Tutorial) error {
	const query = `
INSERT INTO tutorials (title, description, published, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)`
	res, err := repo.db.ExecContext(ctx, query,
		tut.Title, tut.Description, tut.Published,
		tut.CreatedAt, tut.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("Create: ExecContext: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("Create: LastInsertId: %w", err)
	}
	tut.ID = id
	return nil
}

func (repo *TutorialRepo) Update(ctx context.Context, tut *entity.Tutorial) error {
	const query = `
UPDATE tutorials SET
       title       = ?,
       description = ?,
       published   = ?,
       updated_at  = ?
WHERE id = ?`
	res, err := repo.db.ExecContext(ctx, query,
		tut.Title, tut.Description, tut.Published,
		tut.UpdatedAt, tut.ID,
	)
	if err != nil {
		return fmt.Errorf("Update: ExecContext: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: no rows affected")
	}
	return nil
}

func (repo *TutorialRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM tutorials WHERE id = ?`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: ExecContext: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: no rows affected")
	}
	return nil
}

// DeleteAll removes every tutorial and returns the number of rows deleted.
func (repo *TutorialRepo) DeleteAll(ctx context.Context) (int64, error) {
	const query = `DELETE FROM tutorials`
	res, err := repo.db.ExecContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("DeleteAll: ExecContext: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("DeleteAll: RowsAffected: %w", err)
	}
	return n, nil
}

// CountTutorials returns the total number of tutorials in the database.
func (repo *TutorialRepo) CountTutorials(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM tutorials`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountTutorials: %w", err)
	}
	return count, nil
}

// CountPublished returns the number of published tutorials in the database.
func (repo *TutorialRepo) CountPublished(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM tutorials WHERE published = 1`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountPublished: %w", err)
	}
	return count, nil
}

// scanTutorials reads all rows into tutorial entities, preserving row order.
func scanTutorials(rows *sql.Rows, op string) ([]*entity.Tutorial, error) {
	tutorials := make([]*entity.Tutorial, 0, 100)
	for rows.Next() {
		var tut entity.Tutorial
		if err := rows.Scan(&tut.ID, &tut.Title, &tut.Description,
			&tut.Published, &tut.CreatedAt, &tut.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: Scan: %w", op, err)
		}
		tutorials = append(tutorials, &tut)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows.Err: %w", op, err)
	}
	return tutorials, nil
}
