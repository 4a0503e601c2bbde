// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/danielhkuo/zip-finder/metrics"
)

// UI search outcomes, used as metric labels
const (
	outcomeSuccess = "success"
	outcomeError   = "error"
	outcomeInvalid = "invalid"
)

type PageHandler struct {
	theme   Theme
	lookup  Looker
	metrics *metrics.Metrics
}

func NewPageHandler(theme Theme, lookup Looker, m *metrics.Metrics) *PageHandler {
	return &PageHandler{theme: theme, lookup: lookup, metrics: m}
}

// Page handles GET on the theme's path.
// A request without a zip parameter renders the idle form; with one
// (even empty) it runs a search first.
func (h *PageHandler) Page(w http.ResponseWriter, r *http.Request) {
	session := NewSession(h.lookup)

	query := r.URL.Query()
	if query.Has("zip") {
		err := session.Search(r.Context(), query.Get("zip"))
		switch {
		case err == nil:
			h.metrics.ObserveUISearch(h.theme.Name, outcomeSuccess)
		case errors.Is(err, ErrEmptyInput):
			h.metrics.ObserveUISearch(h.theme.Name, outcomeInvalid)
		default:
			h.metrics.ObserveUISearch(h.theme.Name, outcomeError)
			slog.Warn("ui lookup failed", "theme", h.theme.Name, "error", err)
		}
	}

	templ.Handler(Page(NewView(h.theme, session.Snapshot()))).ServeHTTP(w, r)
}
