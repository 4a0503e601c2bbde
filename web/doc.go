// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package web serves the ZIP lookup form.

# State Machine

Session runs one search at a time through idle → validating → loading →
success or error:

	session := web.NewSession(client)
	err := session.Search(ctx, "10001")
	snap := session.Snapshot()

Every search clears the previous result and error first. Blank input
fails validation with "Please enter a ZIP code" and issues no request.
Any lookup failure (non-2xx, network, undecodable body) shows the same
message, "ZIP not found in database.". A Search while another is loading
returns ErrSearchInProgress.

Input is clamped to five characters here and by the input's maxlength.
Nothing else about the format is checked.

# Lookup Client

Client calls GET /api/search over HTTP and decodes the body with
DecodeEnvelope, which accepts a bare record or {"result": record}.

# Themes

One View is rendered through a Theme:

	web.Generic()             // "ZIP Finder", vendor footer
	web.WhiteLabel("Acme")    // partner brand, no footer

Themes only change presentation. PageHandler wires a theme, a Looker and
metrics into an http.HandlerFunc.
*/
package web
