// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/zip-finder/metrics"
	"github.com/danielhkuo/zip-finder/middleware"
	"github.com/danielhkuo/zip-finder/models"
	"github.com/danielhkuo/zip-finder/store"
)

type SearchHandler struct {
	zips    store.ZipStore
	metrics *metrics.Metrics
}

func NewSearchHandler(zips store.ZipStore, m *metrics.Metrics) *SearchHandler {
	return &SearchHandler{zips: zips, metrics: m}
}

// Search handles GET /api/search?zip=
// Returns the first matching record, 400 when zip is missing,
// 404 when nothing matches and 500 when the store query fails
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	zip := r.URL.Query().Get("zip")
	if zip == "" {
		h.metrics.ObserveLookup(models.OutcomeInvalid, 0)
		middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgZipMissing)
		return
	}

	start := time.Now()
	rec, err := h.zips.FindByZip(r.Context(), zip)
	elapsed := time.Since(start)

	if errors.Is(err, store.ErrNotFound) {
		h.metrics.ObserveLookup(models.OutcomeNotFound, elapsed)
		middleware.JSONResponse(w, http.StatusNotFound, models.MessageResponse{Message: models.MsgZipNotFound})
		return
	}
	if err != nil {
		h.metrics.ObserveLookup(models.OutcomeError, elapsed)
		slog.Error("failed to query zip", "zip", zip, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.metrics.ObserveLookup(models.OutcomeFound, elapsed)
	middleware.JSONResponse(w, http.StatusOK, rec)
}
