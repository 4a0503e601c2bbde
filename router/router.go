// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/zip-finder/cliparse"
	"github.com/danielhkuo/zip-finder/handlers"
	"github.com/danielhkuo/zip-finder/metrics"
	"github.com/danielhkuo/zip-finder/middleware"
	"github.com/danielhkuo/zip-finder/store"
	"github.com/danielhkuo/zip-finder/web"
)

func NewRouter(zips store.ZipStore, cfg cliparse.Config, m *metrics.Metrics) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	searchHandler := handlers.NewSearchHandler(zips, m)
	client := web.NewClient(cfg.APIBaseURL, cfg.UITimeout)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	if m != nil {
		mux.Handle("GET /metrics", m.Handler())
	}

	// Lookup API (public, cross-origin readable)
	search := middleware.CORS(middleware.WithLogging(searchHandler.Search))
	mux.Handle("GET /api/search", search)
	mux.Handle("OPTIONS /api/search", search)

	// Lookup UI, one route per theme
	for _, name := range []string{web.ThemeGeneric, web.ThemeWhiteLabel} {
		theme, err := web.ThemeByName(name, cfg.BrandName)
		if err != nil {
			panic(err)
		}
		pattern := theme.Path
		if pattern == "/" {
			pattern = "/{$}"
		}
		page := web.NewPageHandler(theme, client, m)
		mux.HandleFunc("GET "+pattern, middleware.WithLogging(page.Page))
	}

	return mux
}
