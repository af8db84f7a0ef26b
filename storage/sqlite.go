package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

var sqliteDialect = dialect{
	name: "sqlite",
	createTable: `
		CREATE TABLE IF NOT EXISTS dataset_records (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			year      INTEGER NOT NULL,
			area      TEXT    NOT NULL,
			price     REAL    NOT NULL,
			demand    REAL    NOT NULL,
			loaded_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_dataset_records_area ON dataset_records(area);
	`,
	placeholder: func(int) string { return "?" },
}

// NewSQLite opens (or creates) the SQLite file at path.
func NewSQLite(ctx context.Context, path string) (Snapshotter, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	db.SetMaxOpenConns(1)

	s := &sqlStore{db: db, dialect: sqliteDialect}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: migrate: %w", err)
	}
	return s, nil
}
