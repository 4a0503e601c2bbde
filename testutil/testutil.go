// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/zip-finder/cliparse"
	"github.com/danielhkuo/zip-finder/db"
	"github.com/danielhkuo/zip-finder/models"
	"github.com/danielhkuo/zip-finder/store"
)

// TestTable is the reference table created by SetupTestDB
const TestTable = models.DefaultTable

// SetupTestDB creates a fresh in-memory SQLite database with the reference table
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// Each test gets its own named in-memory database
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	conn, err := db.Open(context.Background(), db.DriverSQLite, dsn)
	require.NoError(t, err, "failed to open test database")

	// Keep one connection so the in-memory database lives for the whole test
	conn.SetMaxOpenConns(1)

	require.NoError(t, db.CreateSchema(conn, TestTable), "failed to create schema")

	t.Cleanup(func() { conn.Close() })
	return conn
}

// SetupTestStore returns a SQLStore over a fresh test database
func SetupTestStore(t *testing.T) (*sql.DB, *store.SQLStore) {
	t.Helper()

	conn := SetupTestDB(t)
	zips, err := store.NewSQLStore(conn, db.DriverSQLite, TestTable)
	require.NoError(t, err)

	return conn, zips
}

// InsertZip adds a reference row
func InsertZip(t *testing.T, conn *sql.DB, rec models.ZipRecord) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO zip_lookup (zip_code, state, msa)
		VALUES (?, ?, ?)
	`, rec.ZipCode, rec.State, rec.MSA)
	require.NoError(t, err, "failed to insert zip row")
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseType: cliparse.DatabaseSQLite,
		DatabaseURL:  "file::memory:",
		Table:        TestTable,
		BrandName:    "Acme Realty",
		APIBaseURL:   "http://localhost:3318",
		UITimeout:    10 * time.Second,
		LogLevel:     "info",
		LogFormat:    "json",
	}
}

// Fixtures used across packages
var (
	NewYork = models.ZipRecord{ZipCode: "10001", State: "NY", MSA: "New York-Newark-Jersey City"}
	SanFran = models.ZipRecord{ZipCode: "94105", State: "CA", MSA: "San Francisco-Oakland-Berkeley"}
)

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, headers map[string]string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
