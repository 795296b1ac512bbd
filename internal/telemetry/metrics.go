package telemetry

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Search outcome label values.
const (
	OutcomeSolved   = "solved"
	OutcomeUnsolved = "unsolved"
	OutcomeTimeout  = "timeout"
	OutcomeError    = "error"
)

// Metrics provides Prometheus metrics for search batches.
type Metrics struct {
	config MetricsConfig

	searches       *prometheus.CounterVec
	searchDuration *prometheus.HistogramVec
	nodesExpanded  *prometheus.HistogramVec
	maxFringe      *prometheus.HistogramVec
	activeSearches prometheus.Gauge
	batches        prometheus.Counter

	registry *prometheus.Registry
}

// NewMetrics creates a metrics collector. A disabled configuration yields a
// no-op instance.
func NewMetrics(cfg MetricsConfig) (*Metrics, error) {
	if !cfg.Enabled {
		return &Metrics{config: cfg}, nil
	}

	namespace := cfg.Namespace
	sizeBuckets := prometheus.ExponentialBuckets(1, 4, 12)
	registry := prometheus.NewRegistry()

	m := &Metrics{
		config:   cfg,
		registry: registry,

		searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "searches_total",
				Help:      "Total number of searches by outcome",
			},
			[]string{"strategy", "heuristic", "outcome"},
		),
		searchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "search_duration_seconds",
				Help:      "Duration of a single search in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 12),
			},
			[]string{"strategy", "heuristic"},
		),
		nodesExpanded: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "search_nodes_expanded",
				Help:      "Nodes popped from the frontier per search",
				Buckets:   sizeBuckets,
			},
			[]string{"strategy", "heuristic"},
		),
		maxFringe: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "search_max_fringe",
				Help:      "Largest frontier size per search",
				Buckets:   sizeBuckets,
			},
			[]string{"strategy", "heuristic"},
		),
		activeSearches: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "active_searches",
				Help:      "Current number of running searches",
			},
		),
		batches: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "batches_total",
				Help:      "Total number of experiment batches run",
			},
		),
	}

	registry.MustRegister(
		m.searches,
		m.searchDuration,
		m.nodesExpanded,
		m.maxFringe,
		m.activeSearches,
		m.batches,
	)

	return m, nil
}

// Enabled reports whether m records anything.
func (m *Metrics) Enabled() bool { return m != nil && m.registry != nil }

// RecordBatch counts one experiment batch.
func (m *Metrics) RecordBatch() {
	if !m.Enabled() {
		return
	}
	m.batches.Inc()
}

// SearchStarted marks a search as running.
func (m *Metrics) SearchStarted() {
	if !m.Enabled() {
		return
	}
	m.activeSearches.Inc()
}

// SearchFinished records a completed search and clears its running mark.
func (m *Metrics) SearchFinished(strategy, heuristic, outcome string, d time.Duration, expanded, fringe int) {
	if !m.Enabled() {
		return
	}
	m.activeSearches.Dec()
	m.searches.WithLabelValues(strategy, heuristic, outcome).Inc()
	m.searchDuration.WithLabelValues(strategy, heuristic).Observe(d.Seconds())
	m.nodesExpanded.WithLabelValues(strategy, heuristic).Observe(float64(expanded))
	m.maxFringe.WithLabelValues(strategy, heuristic).Observe(float64(fringe))
}

// Registry exposes the private registry; nil when disabled.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler returns an HTTP handler for the metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	if !m.Enabled() {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// Serve exposes the metrics endpoint on addr until ctx is done.
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	path := m.config.Path
	if path == "" {
		path = "/metrics"
	}
	mux := http.NewServeMux()
	mux.Handle(path, m.Handler())

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
