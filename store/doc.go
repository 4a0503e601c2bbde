// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store reads ZIP reference records from the external data store.

# Backends

ZipStore has two implementations:

  - SQLStore: database/sql over Postgres (lib/pq) or SQLite (modernc)
  - PostgRESTStore: a hosted PostgREST table API, authenticated with an
    access key sent as both apikey and bearer token

Both take the first matching row. zip_code is not assumed to be unique.

# Errors

	rec, err := zips.FindByZip(ctx, "10001")
	switch {
	case errors.Is(err, store.ErrNotFound):
		// 404
	case err != nil:
		// *store.QueryError, 500 with err.Error() as the message
	}

The store is read-only; nothing here writes to the reference table.
*/
package store
