// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (request_id, method, path, remote) and completion
(status, duration_ms). The request ID is taken from X-Request-ID when the
caller sends one, otherwise a UUID is generated; either way it is echoed
back in the X-Request-ID response header.

# CORS Middleware

Enable cross-origin reads of the lookup API:

	mux.Handle("GET /api/search", middleware.CORS(handler))

Allows GET and OPTIONS. Preflight requests are answered with 204.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, record)
	middleware.ErrorResponse(w, http.StatusBadRequest, "ZIP code missing")

ErrorResponse writes {"error": message}.

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Checks X-Forwarded-For, X-Real-IP, then RemoteAddr. Only used for logging.
*/
package middleware
