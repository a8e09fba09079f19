package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by PrometheusMetrics
const (
	MetricStoreRefresh     = "store.refresh"
	MetricReportGenerated  = "report.generated"
	MetricReportGenerate   = "report.generate"
	MetricReportDownload   = "report.download"
	MetricMutation         = "mutation"
	MetricSnapshotSize     = "snapshot.transactions"
	MetricSnapshotAge      = "snapshot.age_seconds"
	MetricCategoryResolved = "category.resolved"
	statusSuccess          = "success"
	statusFailed           = "failed"
	statusCache            = "cache"
)

type PrometheusMetrics struct {
	storeRefreshTotal     *prometheus.CounterVec
	storeRefreshDuration  prometheus.Histogram
	snapshotTransactions  prometheus.Gauge
	snapshotAge           prometheus.Gauge
	reportsGenerated      *prometheus.CounterVec
	reportDuration        prometheus.Histogram
	reportDownloads       *prometheus.CounterVec
	mutationsTotal        *prometheus.CounterVec
	categoryResolvedTotal *prometheus.CounterVec
}

// NewPrometheusMetrics registers the collectors on reg
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		storeRefreshTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fintrack_store_refresh_total",
				Help: "Total number of snapshot refreshes by outcome",
			},
			[]string{"status"},
		),
		storeRefreshDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "fintrack_store_refresh_duration_milliseconds",
				Help:    "Snapshot refresh duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		snapshotTransactions: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "fintrack_snapshot_transactions",
				Help: "Number of transactions in the current snapshot",
			},
		),
		snapshotAge: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "fintrack_snapshot_age_seconds",
				Help: "Age of the snapshot when a report was generated",
			},
		),
		reportsGenerated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fintrack_reports_generated_total",
				Help: "Total number of reports generated",
			},
			[]string{"type", "status"},
		),
		reportDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "fintrack_report_generation_duration_milliseconds",
				Help:    "Report generation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		reportDownloads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fintrack_report_downloads_total",
				Help: "Total number of spreadsheet exports",
			},
			[]string{"status"},
		),
		mutationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fintrack_mutations_total",
				Help: "Total number of write calls to the backend",
			},
			[]string{"resource", "operation", "status"},
		),
		categoryResolvedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fintrack_category_resolved_total",
				Help: "Category name resolutions by match kind",
			},
			[]string{"match"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case MetricStoreRefresh:
		if status != "" {
			m.storeRefreshTotal.WithLabelValues(status).Inc()
		}
	case MetricReportGenerated:
		m.reportsGenerated.WithLabelValues(tags["type"], status).Inc()
	case MetricReportDownload:
		if status != "" {
			m.reportDownloads.WithLabelValues(status).Inc()
		}
	case MetricMutation:
		m.mutationsTotal.WithLabelValues(tags["resource"], tags["operation"], status).Inc()
	case MetricCategoryResolved:
		if match := tags["match"]; match != "" {
			m.categoryResolvedTotal.WithLabelValues(match).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricStoreRefresh:
		m.storeRefreshDuration.Observe(float64(duration.Milliseconds()))
	case MetricReportGenerate:
		m.reportDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricSnapshotSize:
		m.snapshotTransactions.Set(value)
	case MetricSnapshotAge:
		m.snapshotAge.Set(value)
	}
}

type noopMetrics struct{}

func (noopMetrics) IncrementCounter(string, map[string]string)     {}
func (noopMetrics) RecordProcessingTime(string, time.Duration)     {}
func (noopMetrics) RecordGauge(string, float64, map[string]string) {}

func metricsOrNoop(m MetricsRecorderInterface) MetricsRecorderInterface {
	if m == nil {
		return noopMetrics{}
	}
	return m
}
