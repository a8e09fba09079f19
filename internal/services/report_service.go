package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"finance-tracker/internal/config"
	"finance-tracker/internal/dto"
	"finance-tracker/internal/gateway"
	"finance-tracker/internal/logging"
	"finance-tracker/internal/models"
	"finance-tracker/internal/reporting"
)

const (
	dashboardTopExpenses = 5
	dashboardRecent      = 5
)

type reportService struct {
	store        TransactionStoreInterface
	exports      gateway.ReportGatewayInterface
	clock        reporting.Clock
	cfg          *config.ReportConfig
	reportLogger ReportLoggerInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
}

// NewReportService creates a new report service
func NewReportService(
	store TransactionStoreInterface,
	exports gateway.ReportGatewayInterface,
	clock reporting.Clock,
	cfg *config.ReportConfig,
	reportLogger ReportLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) ReportServiceInterface {
	if clock == nil {
		clock = reporting.SystemClock
	}
	if cfg == nil {
		cfg = &config.ReportConfig{TrendWindow: reporting.DefaultTrendWindow}
	}
	if logger == nil {
		logger = slog.Default()
	}
	if reportLogger == nil {
		reportLogger = NewReportLogger(logger)
	}
	return &reportService{
		store:        store,
		exports:      exports,
		clock:        clock,
		cfg:          cfg,
		reportLogger: reportLogger,
		metrics:      metricsOrNoop(metrics),
		logger:       logger.With(logging.FieldComponent, logging.ComponentReport),
	}
}

// ensureFresh refreshes the snapshot when it was never loaded or is older than
// SnapshotMaxAge. A cached snapshot is acceptable.
func (s *reportService) ensureFresh(ctx context.Context) error {
	last := s.store.LastRefreshed()
	now := s.clock.Now()

	if last.IsZero() || (s.cfg.SnapshotMaxAge > 0 && now.Sub(last) > s.cfg.SnapshotMaxAge) {
		if err := s.store.Refresh(ctx); err != nil {
			if !errors.Is(err, ErrServedFromCache) {
				return err
			}
			s.logger.Warn("reporting from cached snapshot", logging.FieldError, err)
		}
		last = s.store.LastRefreshed()
	}

	if !last.IsZero() {
		s.metrics.RecordGauge(MetricSnapshotAge, now.Sub(last).Seconds(), nil)
	}
	return nil
}

// Generate builds the report for filters from the current snapshot
func (s *reportService) Generate(ctx context.Context, filters models.ReportFilters) (*models.Report, error) {
	start := s.clock.Now()
	s.reportLogger.LogReportStarted(ctx, filters)

	if err := s.ensureFresh(ctx); err != nil {
		s.fail(ctx, "generate", filters.Type, err, start)
		return nil, err
	}

	var opts []reporting.Option
	if filters.Type != models.ReportTypeYearly && s.cfg.TrendWindow > 0 {
		opts = append(opts, reporting.WithTrendWindow(s.cfg.TrendWindow))
	}

	report, err := reporting.BuildReport(s.store.GetAll(), filters, s.clock, opts...)
	if err != nil {
		s.fail(ctx, "generate", filters.Type, err, start)
		return nil, err
	}

	duration := s.clock.Now().Sub(start)
	s.metrics.IncrementCounter(MetricReportGenerated, map[string]string{"type": string(filters.Type), "status": statusSuccess})
	s.metrics.RecordProcessingTime(MetricReportGenerate, duration)
	s.reportLogger.LogReportCompleted(ctx, filters.Type, report.Period, len(report.Transactions), duration.Milliseconds())

	return report, nil
}

// Dashboard summarizes the whole snapshot
func (s *reportService) Dashboard(ctx context.Context) (*models.Dashboard, error) {
	if err := s.ensureFresh(ctx); err != nil {
		return nil, err
	}

	transactions := s.store.GetAll()

	top := reporting.BreakdownByCategory(transactions, models.TransactionTypeExpense)
	if len(top) > dashboardTopExpenses {
		top = top[:dashboardTopExpenses]
	}

	return &models.Dashboard{
		Summary:        reporting.Summarize(transactions),
		RunningBalance: reporting.RunningBalance(transactions),
		MonthlyTrend:   reporting.MonthlyTrend(transactions, reporting.DefaultTrendWindow),
		TopExpenses:    top,
		Recent:         recentTransactions(transactions, dashboardRecent),
		GeneratedAt:    s.clock.Now(),
	}, nil
}

// Download resolves the period locally and streams the backend spreadsheet to w
func (s *reportService) Download(ctx context.Context, filters models.ReportFilters, w io.Writer) (*dto.DownloadResult, error) {
	start := s.clock.Now()

	if err := reporting.ValidateReportType(filters.Type); err != nil {
		s.failDownload(ctx, err, start)
		return nil, err
	}

	period, err := reporting.ResolvePeriod(filters, start)
	if err != nil {
		s.failDownload(ctx, err, start)
		return nil, err
	}

	result, err := s.exports.DownloadReport(ctx, dto.NewReportQuery(filters, period), w)
	if err != nil {
		err = fmt.Errorf("failed to download report: %w", err)
		s.failDownload(ctx, err, start)
		return nil, err
	}

	s.metrics.IncrementCounter(MetricReportDownload, map[string]string{"status": statusSuccess})
	s.reportLogger.LogExportDownloaded(ctx, result.FileName, result.Bytes)
	return result, nil
}

func (s *reportService) fail(ctx context.Context, operation string, reportType models.ReportType, err error, start time.Time) {
	s.metrics.IncrementCounter(MetricReportGenerated, map[string]string{"type": string(reportType), "status": statusFailed})
	s.reportLogger.LogReportFailed(ctx, operation, err.Error(), s.clock.Now().Sub(start).Milliseconds())
}

func (s *reportService) failDownload(ctx context.Context, err error, start time.Time) {
	s.metrics.IncrementCounter(MetricReportDownload, map[string]string{"status": statusFailed})
	s.reportLogger.LogReportFailed(ctx, "download", err.Error(), s.clock.Now().Sub(start).Milliseconds())
}
