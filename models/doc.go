// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain and response types shared by the API
and the UI.

# Domain Types

  - ZipRecord: zip_code, state, msa

# Response Types

  - ErrorResponse: error (400 missing ZIP, 500 store failure)
  - MessageResponse: message (404 no match)
  - WrappedRecord: result (legacy envelope accepted by the UI)

# Constants

Lookup outcomes (metric labels):

	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
*/
package models
