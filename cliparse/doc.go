// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Values are resolved in three layers. A .env file in the working directory
is loaded first (existing variables are not overwritten), then the
environment is read through struct tags, then CLI flags are applied on top.

# CLI Flags and Environment Variables

	-p           PORT           Server port (default: 3318)
	-t           DATABASE_TYPE  sqlite, postgres or postgrest (default: sqlite)
	-d           DATABASE_URL   DSN, or REST endpoint for postgrest (required)
	-k           DATABASE_KEY   REST access key (required for postgrest)
	-table       ZIP_TABLE      Reference table (default: zip_lookup)
	-init-schema INIT_SCHEMA    Create the table if missing (SQL stores)
	-brand       BRAND_NAME     White-label brand (default: ZIP Finder)
	-api-base    API_BASE_URL   Lookup API base for the UI (default: http://localhost:<port>)
	-ui-timeout  UI_TIMEOUT     UI request timeout (default: 10s)
	-log-level   LOG_LEVEL      debug, info, warn, error (default: info)
	-log-format  LOG_FORMAT     json or text (default: json)

# Validation

ParseFlags returns an error if:

  - DATABASE_URL is empty
  - DATABASE_TYPE is not a known store
  - DATABASE_KEY is empty for the postgrest store
  - ZIP_TABLE is not a plain SQL identifier
  - the log level or format is unknown
*/
package cliparse
