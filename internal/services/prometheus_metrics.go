package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names understood by PrometheusMetrics.
const (
	MetricStatementTransformed = "statement.transformed"
	MetricStatementDiagnostic  = "statement.diagnostic"
	MetricStatementPersisted   = "statement.persisted"
	MetricStatementBuckets     = "statement.buckets"
	MetricStatementRows        = "statement.rows"
	MetricTransformDuration    = "statement.transform"
	MetricBatchTransformed     = "statement.batch"
	MetricBatchDuration        = "statement.batch.duration"
)

type PrometheusMetrics struct {
	statementsTransformed *prometheus.CounterVec
	diagnosticsTotal      *prometheus.CounterVec
	statementsPersisted   *prometheus.CounterVec
	transformDuration     prometheus.Histogram
	bucketsPerStatement   prometheus.Histogram
	rowsPerStatement      prometheus.Histogram
	batchesTotal          *prometheus.CounterVec
	batchDuration         prometheus.Histogram
}

// NewPrometheusMetrics registers the statement metrics with the default registry.
func NewPrometheusMetrics() MetricsRecorderInterface {
	return NewPrometheusMetricsWith(prometheus.DefaultRegisterer)
}

// NewPrometheusMetricsWith registers the statement metrics with reg.
func NewPrometheusMetricsWith(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		statementsTransformed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statement_transforms_total",
				Help: "Total number of statements transformed",
			},
			[]string{"outcome"},
		),
		diagnosticsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statement_diagnostics_total",
				Help: "Total number of diagnostics raised while transforming statements",
			},
			[]string{"kind"},
		),
		statementsPersisted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statement_persist_total",
				Help: "Total number of statement storage attempts",
			},
			[]string{"status"},
		),
		transformDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "statement_transform_duration_milliseconds",
				Help:    "Statement transformation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 14),
			},
		),
		bucketsPerStatement: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "statement_buckets",
				Help:    "Number of canonical buckets per statement",
				Buckets: prometheus.LinearBuckets(0, 5, 10),
			},
		),
		rowsPerStatement: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "statement_rows",
				Help:    "Number of extracted rows per statement",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
		),
		batchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statement_batches_total",
				Help: "Total number of batch transformations",
			},
			[]string{"status"},
		),
		batchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "statement_batch_duration_milliseconds",
				Help:    "Batch transformation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricStatementTransformed:
		m.statementsTransformed.WithLabelValues(tags["outcome"]).Inc()
	case MetricStatementDiagnostic:
		if kind := tags["kind"]; kind != "" {
			m.diagnosticsTotal.WithLabelValues(kind).Inc()
		}
	case MetricStatementPersisted:
		m.statementsPersisted.WithLabelValues(tags["status"]).Inc()
	case MetricBatchTransformed:
		m.batchesTotal.WithLabelValues(tags["status"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	ms := float64(duration.Microseconds()) / 1000
	switch name {
	case MetricTransformDuration:
		m.transformDuration.Observe(ms)
	case MetricBatchDuration:
		m.batchDuration.Observe(ms)
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricStatementBuckets:
		m.bucketsPerStatement.Observe(value)
	case MetricStatementRows:
		m.rowsPerStatement.Observe(value)
	}
}
