// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens SQL connections to the reference data store and, for
development, creates the reference table.

# Connections

Open registers both supported drivers and pings before returning:

	conn, err := db.Open(ctx, db.DriverPostgres, cfg.DatabaseURL)

The connection is created once at startup and shared by every request.

# Schema Creation

CreateSchema initializes the reference table:

	if err := db.CreateSchema(conn, "zip_lookup"); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS. Production tables are
populated by an external loader; the server only calls this when started
with -init-schema.

# Tables

	zip_lookup (zip_code TEXT, state TEXT, msa TEXT)

zip_code is indexed but not unique.
*/
package db
