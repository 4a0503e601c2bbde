// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics holds the Prometheus collectors for lookups and UI searches.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "zip_finder"

// Metrics holds the counters and histograms for the lookup service and UI.
type Metrics struct {
	Lookups        *prometheus.CounterVec // labels: outcome={found,not_found,invalid,error}
	LookupDuration prometheus.Histogram
	UISearches     *prometheus.CounterVec // labels: theme, outcome={success,error,invalid}

	gatherer prometheus.Gatherer
}

// NewRegistry returns a registry preloaded with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// New creates the collectors and registers them with reg.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		Lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookups_total",
			Help:      "ZIP lookups served by the search API, by outcome.",
		}, []string{"outcome"}),
		LookupDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "lookup_duration_seconds",
			Help:      "Time spent querying the reference store.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
		UISearches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ui_searches_total",
			Help:      "Searches submitted through the lookup UI, by theme and outcome.",
		}, []string{"theme", "outcome"}),
		gatherer: reg,
	}

	reg.MustRegister(m.Lookups, m.LookupDuration, m.UISearches)

	return m
}

// ObserveLookup records one API lookup. Safe on a nil receiver.
func (m *Metrics) ObserveLookup(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Lookups.WithLabelValues(outcome).Inc()
	if elapsed > 0 {
		m.LookupDuration.Observe(elapsed.Seconds())
	}
}

// ObserveUISearch records one UI search. Safe on a nil receiver.
func (m *Metrics) ObserveUISearch(theme, outcome string) {
	if m == nil {
		return
	}
	m.UISearches.WithLabelValues(theme, outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
