package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(reg).(*PrometheusMetrics)

	metrics.IncrementCounter(MetricStoreRefresh, map[string]string{"status": statusSuccess})
	metrics.IncrementCounter(MetricStoreRefresh, map[string]string{"status": statusCache})
	metrics.IncrementCounter(MetricStoreRefresh, map[string]string{"status": statusCache})
	metrics.IncrementCounter(MetricStoreRefresh, nil)
	metrics.IncrementCounter(MetricReportGenerated, map[string]string{"type": "MONTHLY", "status": statusSuccess})
	metrics.IncrementCounter(MetricMutation, map[string]string{"resource": "goal", "operation": "create", "status": statusFailed})
	metrics.IncrementCounter(MetricCategoryResolved, map[string]string{"match": "fuzzy"})
	metrics.IncrementCounter("unknown", map[string]string{"status": statusSuccess})
	metrics.RecordProcessingTime(MetricReportGenerate, 12*time.Millisecond)
	metrics.RecordGauge(MetricSnapshotSize, 42, nil)
	metrics.RecordGauge(MetricSnapshotAge, 90, nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.storeRefreshTotal.WithLabelValues(statusSuccess)))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.storeRefreshTotal.WithLabelValues(statusCache)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.reportsGenerated.WithLabelValues("MONTHLY", statusSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.mutationsTotal.WithLabelValues("goal", "create", statusFailed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.categoryResolvedTotal.WithLabelValues("fuzzy")))
	assert.Equal(t, 42.0, testutil.ToFloat64(metrics.snapshotTransactions))
	assert.Equal(t, 90.0, testutil.ToFloat64(metrics.snapshotAge))

	count, err := testutil.GatherAndCount(reg, "fintrack_report_generation_duration_milliseconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPrometheusMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewPrometheusMetrics(prometheus.NewRegistry())
		NewPrometheusMetrics(prometheus.NewRegistry())
	})
}

func TestMetricsOrNoop(t *testing.T) {
	assert.IsType(t, noopMetrics{}, metricsOrNoop(nil))

	m := NewPrometheusMetrics(prometheus.NewRegistry())
	assert.Same(t, m, metricsOrNoop(m))
}
