// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP handler for the ZIP lookup API.

# Handler Types

	searchHandler := handlers.NewSearchHandler(zips, metrics)

SearchHandler depends on a store.ZipStore, created once at startup and
shared by every request, and on the Prometheus collectors (nil disables
metrics).

# Lookup

	GET /api/search?zip=10001

Responses:

	200 {"zip_code":"10001","state":"NY","msa":"New York-Newark-Jersey City"}
	400 {"error":"ZIP code missing"}
	404 {"message":"ZIP not found"}
	500 {"error":"<store error message>"}

The zip value is matched exactly: no trimming, normalization or padding.
If several rows share a ZIP code the first one is returned.
*/
package handlers
