package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics collects counters for rate fetching and record filtering.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	FetchTotal     *prometheus.CounterVec
	FetchDuration  *prometheus.HistogramVec
	RetriesTotal   prometheus.Counter
	SkippedRecords *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		FetchTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cnb_fetch_total",
				Help: "Daily rate fetches by requested day kind and result",
			},
			[]string{"day", "result"},
		),
		FetchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cnb_fetch_duration_seconds",
				Help:    "Duration of daily rate fetches including retries",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"day"},
		),
		RetriesTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "cnb_fetch_retries_total",
				Help: "Retried daily rate requests",
			},
		),
		SkippedRecords: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_records_skipped_total",
				Help: "Raw rate records dropped during processing",
			},
			[]string{"reason"},
		),
	}
}

func (m *Metrics) ObserveFetch(day, result string, took time.Duration) {
	if m == nil {
		return
	}
	m.FetchTotal.WithLabelValues(day, result).Inc()
	m.FetchDuration.WithLabelValues(day).Observe(took.Seconds())
}

func (m *Metrics) IncRetry() {
	if m == nil {
		return
	}
	m.RetriesTotal.Inc()
}

func (m *Metrics) RecordSkipped(reason string) {
	if m == nil {
		return
	}
	m.SkippedRecords.WithLabelValues(reason).Inc()
}
