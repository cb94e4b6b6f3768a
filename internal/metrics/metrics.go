package metrics

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	polymath "github.com/drakos74/polyreg/internal/math"
	"github.com/drakos74/polyreg/internal/storage"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	OK               = "ok"
	InvalidDegree    = "invalid_degree"
	NoData           = "no_data"
	InsufficientData = "insufficient_data"
	Singular         = "singular"
	IO               = "io"
	Unknown          = "error"
)

// Metrics tracks regression runs in its own registry.
// All methods are safe for concurrent use.
type Metrics struct {
	registry   *prometheus.Registry
	prometheus Prometheus
}

// New creates and registers a fresh set of metrics.
func New() *Metrics {
	m := &Metrics{
		registry:   prometheus.NewRegistry(),
		prometheus: NewPrometheusMetrics(),
	}
	m.registry.MustRegister(m.prometheus.collectors()...)
	return m
}

// Observe records the result of a single fit.
func (m *Metrics) Observe(degree, samples int, duration time.Duration, quality *polymath.Quality, err error) {
	d := strconv.Itoa(degree)
	m.prometheus.Fits.WithLabelValues(d, Outcome(err)).Inc()
	if err != nil {
		return
	}
	m.prometheus.Duration.WithLabelValues(d).Observe(duration.Seconds())
	m.prometheus.Samples.Observe(float64(samples))
	if quality != nil && !math.IsNaN(quality.RSquared) {
		m.prometheus.RSquared.WithLabelValues(d).Set(quality.RSquared)
	}
}

// Gatherer exposes the underlying registry.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// Write dumps the metrics into a textfile, as consumed by the node exporter textfile collector.
func (m *Metrics) Write(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("could not write metrics to '%s': %w: %w", path, err, storage.IOErr)
	}
	return nil
}

// Outcome maps a fit error to its metric label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OK
	case errors.Is(err, polymath.InvalidDegreeErr):
		return InvalidDegree
	case errors.Is(err, polymath.NoDataErr):
		return NoData
	case errors.Is(err, polymath.InsufficientDataErr):
		return InsufficientData
	case errors.Is(err, polymath.SingularMatrixErr):
		return Singular
	case errors.Is(err, storage.IOErr):
		return IO
	default:
		return Unknown
	}
}
