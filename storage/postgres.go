package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	_ "github.com/lib/pq"
)

var postgresDialect = dialect{
	name: "postgres",
	createTable: `
		CREATE TABLE IF NOT EXISTS dataset_records (
			id        SERIAL PRIMARY KEY,
			year      INTEGER          NOT NULL,
			area      TEXT             NOT NULL,
			price     DOUBLE PRECISION NOT NULL,
			demand    DOUBLE PRECISION NOT NULL,
			loaded_at TIMESTAMPTZ      NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_dataset_records_area ON dataset_records(area);
	`,
	placeholder: func(n int) string { return "$" + strconv.Itoa(n) },
}

const (
	pingAttempts = 10
	pingInterval = 2 * time.Second
)

// NewPostgres opens a PostgreSQL connection, waits for it to accept pings,
// and creates the snapshot table when missing.
func NewPostgres(ctx context.Context, dsn string) (Snapshotter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	for i := 0; i < pingAttempts; i++ {
		if err = db.PingContext(ctx); err == nil {
			break
		}
		select {
		case <-ctx.Done():
			db.Close()
			return nil, fmt.Errorf("postgres: ping: %w", ctx.Err())
		case <-time.After(pingInterval):
		}
	}
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres: ping failed after retries: %w", err)
	}

	s := &sqlStore{db: db, dialect: postgresDialect}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}
	return s, nil
}
