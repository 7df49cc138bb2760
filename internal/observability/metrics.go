package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// ingestion pipeline. Row-level defects are dropped silently per record but
// surface here in aggregate.
type Metrics struct {
	RowsParsed      prometheus.Counter
	RowsRejected    *prometheus.CounterVec // labels: reason={short_row,empty_name}
	RecordsIngested *prometheus.CounterVec // labels: origin={user_csv,bundled_csv,catalog}
	RecordsByClass  *prometheus.CounterVec // labels: category
	IngestErrors    prometheus.Counter
	IngestDuration  prometheus.Histogram
	PlantsLoaded    prometheus.Gauge
	PatternsActive  prometheus.Gauge
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RowsParsed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "energia",
			Name:      "rows_parsed_total",
			Help:      "Total CSV data rows successfully built into plant records.",
		}),
		RowsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "energia",
			Name:      "rows_rejected_total",
			Help:      "Total CSV data rows dropped, by rejection reason.",
		}, []string{"reason"}),
		RecordsIngested: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "energia",
			Name:      "records_ingested_total",
			Help:      "Total plant records produced, by ingestion origin.",
		}, []string{"origin"}),
		RecordsByClass: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "energia",
			Name:      "records_by_category_total",
			Help:      "Total plant records produced, by energy category.",
		}, []string{"category"}),
		IngestErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "energia",
			Name:      "ingest_errors_total",
			Help:      "Total fatal ingestion failures (fetch or read errors).",
		}),
		IngestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "energia",
			Name:      "ingest_duration_seconds",
			Help:      "Duration of a complete fetch-tokenize-build pass.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		PlantsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "energia",
			Name:      "plants_loaded",
			Help:      "Number of plant records currently held in the store.",
		}),
		PatternsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "energia",
			Name:      "classification_patterns_active",
			Help:      "Number of ownership classification patterns in use.",
		}),
	}

	prometheus.MustRegister(
		m.RowsParsed,
		m.RowsRejected,
		m.RecordsIngested,
		m.RecordsByClass,
		m.IngestErrors,
		m.IngestDuration,
		m.PlantsLoaded,
		m.PatternsActive,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		RowsParsed:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "energia", Name: "rows_parsed_total"}),
		RowsRejected:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "energia", Name: "rows_rejected_total"}, []string{"reason"}),
		RecordsIngested: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "energia", Name: "records_ingested_total"}, []string{"origin"}),
		RecordsByClass:  prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "energia", Name: "records_by_category_total"}, []string{"category"}),
		IngestErrors:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "energia", Name: "ingest_errors_total"}),
		IngestDuration:  prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "energia", Name: "ingest_duration_seconds"}),
		PlantsLoaded:    prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "energia", Name: "plants_loaded"}),
		PatternsActive:  prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "energia", Name: "classification_patterns_active"}),
	}
}
