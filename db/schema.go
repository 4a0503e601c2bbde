// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Driver names registered with database/sql
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Open connects to the reference database and verifies the connection.
func Open(ctx context.Context, driver, url string) (*sql.DB, error) {
	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", driver, err)
	}

	return conn, nil
}

// CreateSchema creates the reference table used for ZIP lookups.
// Safe to call multiple times - uses IF NOT EXISTS.
// The table is normally owned by an external loader; this exists for
// local development and tests.
func CreateSchema(db *sql.DB, table string) error {
	_, err := db.Exec(schema(table))
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// zip_code is indexed but deliberately not unique: lookups take the first match.
func schema(table string) string {
	return fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %[1]s (
    zip_code TEXT NOT NULL,
    state TEXT NOT NULL,
    msa TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS %[2]s ON %[1]s(zip_code);
`, pq.QuoteIdentifier(table), pq.QuoteIdentifier("idx_"+table+"_zip_code"))
}
