package reporting

import (
	"finance-tracker/internal/models"
)

const yearlyTrendWindow = 12

type buildOptions struct {
	trendWindow int
}

// Option customizes BuildReport.
type Option func(*buildOptions)

// WithTrendWindow overrides the number of months in the report trend.
func WithTrendWindow(months int) Option {
	return func(o *buildOptions) {
		o.trendWindow = months
	}
}

// BuildReport resolves the requested period against clock, filters the
// transactions to it (plus any extra criteria) and aggregates the subset.
// The result is the same value that drives both display and export.
func BuildReport(transactions []models.Transaction, filters models.ReportFilters, clock Clock, opts ...Option) (*models.Report, error) {
	if clock == nil {
		clock = SystemClock
	}

	if err := ValidateReportType(filters.Type); err != nil {
		return nil, err
	}

	options := buildOptions{trendWindow: DefaultTrendWindow}
	if filters.Type == models.ReportTypeYearly {
		options.trendWindow = yearlyTrendWindow
	}
	for _, opt := range opts {
		opt(&options)
	}

	now := clock.Now()
	period, err := ResolvePeriod(filters, now)
	if err != nil {
		return nil, err
	}

	subset := ApplyFilters(transactions, filters.Criteria.WithDateRange(period.From, period.To))

	return &models.Report{
		Summary:           Summarize(subset),
		CategoryBreakdown: BreakdownByCategory(subset, models.TransactionTypeExpense),
		IncomeBreakdown:   BreakdownByCategory(subset, models.TransactionTypeIncome),
		MonthlyTrend:      MonthlyTrend(subset, options.trendWindow),
		Transactions:      subset,
		Period:            period,
		GeneratedAt:       now,
	}, nil
}
