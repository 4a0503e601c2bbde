// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the ZIP Finder server.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(zips, cfg, metrics)

# Endpoints

Health and metrics:

	GET /health   - Liveness, body "OK"
	GET /metrics  - Prometheus exposition (when metrics is non-nil)

Lookup API (CORS enabled):

	GET     /api/search?zip= - First record matching zip
	OPTIONS /api/search      - Preflight

Lookup UI:

	GET /            - Generic skin
	GET /white-label - White-labeled skin (brand from cfg.BrandName)

# Handler Initialization

The store is created once by the caller and shared read-only by every
request. The UI pages call the lookup API over HTTP at cfg.APIBaseURL,
which normally points back at this same server.
*/
package router
