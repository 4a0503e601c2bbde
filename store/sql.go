// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/danielhkuo/zip-finder/db"
	"github.com/danielhkuo/zip-finder/models"
)

// SQLStore reads the reference table through database/sql.
type SQLStore struct {
	db    *sql.DB
	query string
}

// NewSQLStore builds a store over an open connection. driver selects the
// placeholder style (db.DriverPostgres or db.DriverSQLite).
func NewSQLStore(conn *sql.DB, driver, table string) (*SQLStore, error) {
	var placeholder string
	switch driver {
	case db.DriverPostgres:
		placeholder = "$1"
	case db.DriverSQLite:
		placeholder = "?"
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}

	// No ORDER BY: the first row the database returns is the match.
	query := fmt.Sprintf(`
		SELECT zip_code, state, msa
		FROM %s
		WHERE zip_code = %s
		LIMIT 1
	`, pq.QuoteIdentifier(table), placeholder)

	return &SQLStore{db: conn, query: query}, nil
}

// FindByZip implements ZipStore.
func (s *SQLStore) FindByZip(ctx context.Context, zip string) (models.ZipRecord, error) {
	var (
		rec        models.ZipRecord
		state, msa sql.NullString
	)
	err := s.db.QueryRowContext(ctx, s.query, zip).Scan(&rec.ZipCode, &state, &msa)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ZipRecord{}, ErrNotFound
	}
	if err != nil {
		return models.ZipRecord{}, &QueryError{Err: err}
	}

	rec.State = state.String
	rec.MSA = msa.String
	return rec, nil
}
