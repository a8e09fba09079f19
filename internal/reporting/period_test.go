package reporting

import (
	"errors"
	"testing"
	"time"

	"finance-tracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePeriod(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		filters  models.ReportFilters
		wantFrom string
		wantTo   string
	}{
		{
			name:     "this year",
			filters:  models.ReportFilters{Period: models.PeriodThisYear},
			wantFrom: "2025-01-01",
			wantTo:   "2025-06-15",
		},
		{
			name:     "last 30 days",
			filters:  models.ReportFilters{Period: models.PeriodLast30Days},
			wantFrom: "2025-05-16",
			wantTo:   "2025-06-15",
		},
		{
			name:     "last 3 months",
			filters:  models.ReportFilters{Period: models.PeriodLast3Months},
			wantFrom: "2025-03-15",
			wantTo:   "2025-06-15",
		},
		{
			name:     "last 6 months",
			filters:  models.ReportFilters{Period: models.PeriodLast6Months},
			wantFrom: "2024-12-15",
			wantTo:   "2025-06-15",
		},
		{
			name:     "last year",
			filters:  models.ReportFilters{Period: models.PeriodLastYear},
			wantFrom: "2024-06-15",
			wantTo:   "2025-06-15",
		},
		{
			name:     "specific month from Month",
			filters:  models.ReportFilters{Period: models.PeriodSpecificMonth, Month: "2024-02"},
			wantFrom: "2024-02-01",
			wantTo:   "2024-02-29",
		},
		{
			name:     "specific month from DateFrom",
			filters:  models.ReportFilters{Period: models.PeriodSpecificMonth, DateFrom: dayPtr("2025-04-20")},
			wantFrom: "2025-04-01",
			wantTo:   "2025-04-30",
		},
		{
			name:     "specific month defaults to current month",
			filters:  models.ReportFilters{Period: models.PeriodSpecificMonth},
			wantFrom: "2025-06-01",
			wantTo:   "2025-06-30",
		},
		{
			name:     "custom with both bounds",
			filters:  models.ReportFilters{Period: models.PeriodCustom, DateFrom: dayPtr("2025-02-10"), DateTo: dayPtr("2025-03-05")},
			wantFrom: "2025-02-10",
			wantTo:   "2025-03-05",
		},
		{
			name:     "custom without bounds",
			filters:  models.ReportFilters{Period: models.PeriodCustom},
			wantFrom: "2025-06-01",
			wantTo:   "2025-06-15",
		},
		{
			name:     "custom with only from",
			filters:  models.ReportFilters{Period: models.PeriodCustom, DateFrom: dayPtr("2025-05-01")},
			wantFrom: "2025-05-01",
			wantTo:   "2025-06-15",
		},
		{
			name:     "empty preset behaves like custom",
			filters:  models.ReportFilters{},
			wantFrom: "2025-06-01",
			wantTo:   "2025-06-15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period, err := ResolvePeriod(tt.filters, now)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFrom, models.FormatDate(period.From))
			assert.Equal(t, tt.wantTo, models.FormatDate(period.To))
		})
	}
}

func TestResolvePeriod_InvalidPreset(t *testing.T) {
	_, err := ResolvePeriod(models.ReportFilters{Period: "LAST_DECADE"}, time.Now())
	require.Error(t, err)

	var periodErr *InvalidPeriodError
	require.True(t, errors.As(err, &periodErr))
	assert.Equal(t, models.PeriodPreset("LAST_DECADE"), periodErr.Preset)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestResolvePeriod_InvalidMonth(t *testing.T) {
	_, err := ResolvePeriod(models.ReportFilters{Period: models.PeriodSpecificMonth, Month: "June"}, time.Now())
	assert.ErrorIs(t, err, ErrInvalidPeriod)
	assert.Contains(t, err.Error(), "SPECIFIC_MONTH")
}

func TestClocks(t *testing.T) {
	fixed := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, fixed, FixedClock(fixed).Now())
	assert.WithinDuration(t, time.Now(), SystemClock.Now(), time.Second)
}
