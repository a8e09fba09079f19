package services

import (
	"context"
	"log/slog"
	"time"

	"finance-tracker/internal/logging"
	"finance-tracker/internal/models"
)

// ReportLogger provides structured logging for report and snapshot events
type ReportLogger struct {
	logger *slog.Logger
}

// NewReportLogger creates a new report logger
func NewReportLogger(logger *slog.Logger) ReportLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportLogger{
		logger: logger.With(logging.FieldComponent, logging.ComponentReport),
	}
}

// LogReportStarted logs the start of a report generation
func (rl *ReportLogger) LogReportStarted(ctx context.Context, filters models.ReportFilters) {
	rl.logger.InfoContext(ctx, "report generation started",
		slog.String("event_type", "report_started"),
		slog.String("report_type", string(filters.Type)),
		slog.String("period", string(filters.Period)),
		slog.Bool("has_criteria", !filters.Criteria.IsEmpty()),
		slog.Time("timestamp", time.Now()),
		slog.String(logging.FieldRequestID, logging.RequestID(ctx)),
	)
}

// LogReportCompleted logs a finished report
func (rl *ReportLogger) LogReportCompleted(ctx context.Context, reportType models.ReportType, period models.ReportPeriod, transactionCount int, durationMs int64) {
	rl.logger.InfoContext(ctx, "report generation completed",
		slog.String("event_type", "report_completed"),
		slog.String("report_type", string(reportType)),
		slog.String("period_from", models.FormatDate(period.From)),
		slog.String("period_to", models.FormatDate(period.To)),
		slog.Int("transaction_count", transactionCount),
		slog.Int64(logging.FieldDuration, durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String(logging.FieldRequestID, logging.RequestID(ctx)),
	)
}

// LogReportFailed logs a failed report operation
func (rl *ReportLogger) LogReportFailed(ctx context.Context, operation string, errorMsg string, durationMs int64) {
	rl.logger.WarnContext(ctx, "report operation failed",
		slog.String("event_type", "report_failed"),
		slog.String(logging.FieldOperation, operation),
		slog.String(logging.FieldError, errorMsg),
		slog.Int64(logging.FieldDuration, durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String(logging.FieldRequestID, logging.RequestID(ctx)),
	)
}

// LogSnapshotRefreshed logs a successful refresh from the backend
func (rl *ReportLogger) LogSnapshotRefreshed(ctx context.Context, transactionCount, categoryCount int, durationMs int64) {
	rl.logger.InfoContext(ctx, "snapshot refreshed",
		slog.String("event_type", "snapshot_refreshed"),
		slog.Int("transaction_count", transactionCount),
		slog.Int("category_count", categoryCount),
		slog.Int64(logging.FieldDuration, durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String(logging.FieldRequestID, logging.RequestID(ctx)),
	)
}

// LogServedFromCache logs a refresh that fell back to the local cache
func (rl *ReportLogger) LogServedFromCache(ctx context.Context, errorMsg string, transactionCount int) {
	rl.logger.WarnContext(ctx, "backend unavailable, serving cached snapshot",
		slog.String("event_type", "served_from_cache"),
		slog.String(logging.FieldError, errorMsg),
		slog.Int("transaction_count", transactionCount),
		slog.Time("timestamp", time.Now()),
		slog.String(logging.FieldRequestID, logging.RequestID(ctx)),
	)
}

// LogExportDownloaded logs a completed spreadsheet export
func (rl *ReportLogger) LogExportDownloaded(ctx context.Context, fileName string, bytes int64) {
	rl.logger.InfoContext(ctx, "report export downloaded",
		slog.String("event_type", "export_downloaded"),
		slog.String("file_name", fileName),
		slog.Int64("bytes", bytes),
		slog.Time("timestamp", time.Now()),
		slog.String(logging.FieldRequestID, logging.RequestID(ctx)),
	)
}
