// Package storage persists the last cleaned dataset so a restarted service
// can answer queries before the next upload.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pranavsawarkar14/Real-Estate-Analysis/engine"
)

// Snapshotter saves and restores a full set of cleaned records.
type Snapshotter interface {
	Save(ctx context.Context, records []engine.Record) error
	Load(ctx context.Context) ([]engine.Record, error)
	Close() error
}

const (
	tableName = "dataset_records"
	batchSize = 100
)

// dialect captures the few statements that differ between drivers.
type dialect struct {
	name        string
	createTable string
	placeholder func(n int) string
}

// sqlStore implements Snapshotter over database/sql.
type sqlStore struct {
	db      *sql.DB
	dialect dialect
}

func (s *sqlStore) migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, s.dialect.createTable)
	return err
}

// Save replaces every stored record in a single transaction.
func (s *sqlStore) Save(ctx context.Context, records []engine.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin: %w", s.dialect.name, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM "+tableName); err != nil {
		return fmt.Errorf("%s: clear: %w", s.dialect.name, err)
	}

	for i := 0; i < len(records); i += batchSize {
		end := i + batchSize
		if end > len(records) {
			end = len(records)
		}
		if err := s.insertBatch(ctx, tx, records[i:end]); err != nil {
			return fmt.Errorf("%s: insert: %w", s.dialect.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit: %w", s.dialect.name, err)
	}
	return nil
}

func (s *sqlStore) insertBatch(ctx context.Context, tx *sql.Tx, batch []engine.Record) error {
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]any, 0, len(batch)*4)

	for idx, r := range batch {
		base := idx * 4
		valueStrings = append(valueStrings, fmt.Sprintf("(%s,%s,%s,%s)",
			s.dialect.placeholder(base+1), s.dialect.placeholder(base+2),
			s.dialect.placeholder(base+3), s.dialect.placeholder(base+4)))
		valueArgs = append(valueArgs, r.Year, r.Area, r.Price, r.Demand)
	}

	query := fmt.Sprintf("INSERT INTO %s (year, area, price, demand) VALUES %s",
		tableName, strings.Join(valueStrings, ","))
	_, err := tx.ExecContext(ctx, query, valueArgs...)
	return err
}

// Load returns the stored records in insertion order.
func (s *sqlStore) Load(ctx context.Context) ([]engine.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT year, area, price, demand FROM "+tableName+" ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("%s: fetch all: %w", s.dialect.name, err)
	}
	defer rows.Close()

	var records []engine.Record
	for rows.Next() {
		var r engine.Record
		if err := rows.Scan(&r.Year, &r.Area, &r.Price, &r.Demand); err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", s.dialect.name, err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *sqlStore) Close() error {
	return s.db.Close()
}

// Open returns the Snapshotter for driver ("postgres" or "sqlite").
// An empty driver means no snapshot store and returns (nil, nil).
func Open(ctx context.Context, driver, dsn string) (Snapshotter, error) {
	switch driver {
	case "":
		return nil, nil
	case "postgres", "postgresql":
		return NewPostgres(ctx, dsn)
	case "sqlite", "sqlite3":
		return NewSQLite(ctx, dsn)
	default:
		return nil, fmt.Errorf("unknown snapshot driver %q", driver)
	}
}
