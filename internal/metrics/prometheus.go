package metrics

import "github.com/prometheus/client_golang/prometheus"

type Prometheus struct {
	Fits     *prometheus.CounterVec
	Duration *prometheus.HistogramVec
	Samples  prometheus.Histogram
	RSquared *prometheus.GaugeVec
}

func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Fits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "polyreg",
				Name:      "fits_total",
				Help:      "Number of polynomial fits by degree and outcome.",
			}, []string{"degree", "outcome"}),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "polyreg",
				Name:      "fit_duration_seconds",
				Help:      "Time spent building and solving the normal equations.",
				Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 8),
			}, []string{"degree"}),
		Samples: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "polyreg",
				Name:      "samples",
				Help:      "Number of samples per fit.",
				Buckets:   prometheus.ExponentialBuckets(1, 10, 7),
			}),
		RSquared: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "polyreg",
				Name:      "r_squared",
				Help:      "Coefficient of determination of the last successful fit.",
			}, []string{"degree"}),
	}
}

func (p Prometheus) collectors() []prometheus.Collector {
	return []prometheus.Collector{p.Fits, p.Duration, p.Samples, p.RSquared}
}
