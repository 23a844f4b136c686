package db

import (
	"database/sql"
	"fmt"
)

// MigrateUp creates the tutorials table and its indexes for the given driver.
// Statements are idempotent so the migration can run at every startup.
func MigrateUp(db *sql.DB, driver string) error {
	switch driver {
	case DriverPostgres:
		return migrateUpPostgres(db)
	case DriverSQLite:
		return migrateUpSQLite(db)
	default:
		return fmt.Errorf("MigrateUp: unsupported driver %q", driver)
	}
}

func migrateUpPostgres(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS tutorials (
    id          SERIAL PRIMARY KEY,
    title       TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    published   BOOLEAN NOT NULL DEFAULT FALSE,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	// パフォーマンス最適化: インデックス追加
	indexes := []string{
		// ORDER BY created_at DESC で使用(全クエリで使用)
		`CREATE INDEX IF NOT EXISTS idx_tutorials_created_at ON tutorials(created_at DESC)`,
		// 公開状態絞り込み用(WHERE published = TRUE)
		`CREATE INDEX IF NOT EXISTS idx_tutorials_published ON tutorials(published) WHERE published = TRUE`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	// pg_trgm拡張を有効化(ILIKE検索高速化用)
	// エラーを無視(既に存在する場合やスーパーユーザー権限がない場合)
	_, _ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pg_trgm`)

	// タイトルのILIKE検索用GINインデックス
	// pg_trgm拡張がない場合はエラーになるため無視
	_, _ = db.Exec(`CREATE INDEX IF NOT EXISTS idx_tutorials_title_gin ON tutorials USING gin(title gin_trgm_ops)`)

	return nil
}

func migrateUpSQLite(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS tutorials (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    title       TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    published   BOOLEAN NOT NULL DEFAULT 0,
    created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`); err != nil {
		return err
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_tutorials_created_at ON tutorials(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_tutorials_published ON tutorials(published)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	return nil
}

// MigrateDown rolls back the database schema.
// Use with caution: this will delete all tutorial data.
func MigrateDown(db *sql.DB) error {
	dropStatements := []string{
		`DROP INDEX IF EXISTS idx_tutorials_title_gin`,
		`DROP INDEX IF EXISTS idx_tutorials_created_at`,
		`DROP INDEX IF EXISTS idx_tutorials_published`,
		`DROP TABLE IF EXISTS tutorials`,
	}

	for _, stmt := range dropStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
