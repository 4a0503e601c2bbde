// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the ZIP Finder server.

ZIP Finder looks up a 5-digit ZIP code in a reference table and returns
its state and metro-statistical-area name, through a JSON endpoint and a
small form UI.

# Starting the Server

Against a local SQLite file:

	DATABASE_URL=file:zips.db go run . -init-schema

Against Postgres:

	go run . -t postgres -d "postgres://..."

Against a hosted PostgREST table (for example Supabase):

	DATABASE_TYPE=postgrest DATABASE_URL=https://xyz.supabase.co DATABASE_KEY=... go run .

# Configuration

Required settings:

  - DATABASE_URL (-d): DSN or REST endpoint
  - DATABASE_KEY (-k): access key, postgrest only

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite, postgres or postgrest (default: sqlite)
  - ZIP_TABLE (-table): reference table (default: zip_lookup)
  - BRAND_NAME (-brand): white-label brand name

See package cliparse for the full list.

# Architecture

  - handlers: the lookup API handler
  - web: the lookup form, its state machine and themes
  - store: reference store backends (SQL and PostgREST)
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - metrics: Prometheus collectors
  - models: record and response types
  - db: connections and development schema
  - cliparse: configuration parsing
  - logging: slog setup

The reference table is read-only here. Loading it is someone else's job.
*/
package main
