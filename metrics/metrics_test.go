// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveLookup(t *testing.T) {
	reg := NewRegistry()
	m := New(reg)

	m.ObserveLookup("found", 5*time.Millisecond)
	m.ObserveLookup("found", time.Millisecond)
	m.ObserveLookup("invalid", 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Lookups.WithLabelValues("found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Lookups.WithLabelValues("invalid")))

	// Zero durations are not observed
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == "zip_finder_lookup_duration_seconds" {
			assert.Equal(t, uint64(2), mf.GetMetric()[0].GetHistogram().GetSampleCount())
		}
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveLookup("found", time.Second)
		m.ObserveUISearch("generic", "success")
	})
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New(NewRegistry())
	m.ObserveUISearch("whitelabel", "error")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
	assert.Contains(t, rec.Body.String(), `zip_finder_ui_searches_total{outcome="error",theme="whitelabel"} 1`)
}
