// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/zip-finder/db"
	"github.com/danielhkuo/zip-finder/models"
	"github.com/danielhkuo/zip-finder/store"
	"github.com/danielhkuo/zip-finder/testutil"
)

func TestSQLStore_FindByZip(t *testing.T) {
	conn, zips := testutil.SetupTestStore(t)
	testutil.InsertZip(t, conn, testutil.NewYork)
	testutil.InsertZip(t, conn, testutil.SanFran)

	tests := []struct {
		name    string
		zip     string
		want    models.ZipRecord
		wantErr error
	}{
		{name: "exact match", zip: "10001", want: testutil.NewYork},
		{name: "second row", zip: "94105", want: testutil.SanFran},
		{name: "no match", zip: "00000", wantErr: store.ErrNotFound},
		{name: "no trimming", zip: " 10001", wantErr: store.ErrNotFound},
		{name: "no zero padding", zip: "1001", wantErr: store.ErrNotFound},
		{name: "no prefix match", zip: "1000", wantErr: store.ErrNotFound},
		{name: "quote in input is bound", zip: "1' OR '1'='1", wantErr: store.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := zips.FindByZip(context.Background(), tt.zip)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSQLStore_DuplicateZipReturnsOneRow(t *testing.T) {
	conn, zips := testutil.SetupTestStore(t)
	testutil.InsertZip(t, conn, models.ZipRecord{ZipCode: "10001", State: "NY", MSA: "First"})
	testutil.InsertZip(t, conn, models.ZipRecord{ZipCode: "10001", State: "NY", MSA: "Second"})

	got, err := zips.FindByZip(context.Background(), "10001")
	require.NoError(t, err)
	assert.Equal(t, "10001", got.ZipCode)
	assert.Contains(t, []string{"First", "Second"}, got.MSA)
}

func TestSQLStore_NullColumns(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	_, err := conn.Exec(`CREATE TABLE loose (zip_code TEXT, state TEXT, msa TEXT)`)
	require.NoError(t, err)
	_, err = conn.Exec(`INSERT INTO loose (zip_code, state, msa) VALUES ('99999', 'AK', NULL)`)
	require.NoError(t, err)

	zips, err := store.NewSQLStore(conn, db.DriverSQLite, "loose")
	require.NoError(t, err)

	got, err := zips.FindByZip(context.Background(), "99999")
	require.NoError(t, err)
	assert.Equal(t, models.ZipRecord{ZipCode: "99999", State: "AK"}, got)
}

func TestSQLStore_QueryError(t *testing.T) {
	conn, zips := testutil.SetupTestStore(t)
	conn.Close()

	_, err := zips.FindByZip(context.Background(), "10001")
	require.Error(t, err)

	var qe *store.QueryError
	require.True(t, errors.As(err, &qe))
	assert.Contains(t, qe.Error(), "database is closed")
	assert.False(t, errors.Is(err, store.ErrNotFound))
}

func TestSQLStore_MissingTable(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	zips, err := store.NewSQLStore(conn, db.DriverSQLite, "no_such_table")
	require.NoError(t, err)

	_, err = zips.FindByZip(context.Background(), "10001")
	var qe *store.QueryError
	assert.True(t, errors.As(err, &qe))
}

func TestNewSQLStore_UnknownDriver(t *testing.T) {
	_, err := store.NewSQLStore(nil, "mysql", "zip_lookup")
	assert.Error(t, err)
}
