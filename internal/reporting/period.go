package reporting

import (
	"errors"
	"fmt"
	"time"

	"finance-tracker/internal/models"
)

var (
	ErrInvalidPeriod     = errors.New("invalid report period")
	ErrInvalidReportType = errors.New("invalid report type")
)

// InvalidPeriodError is returned when a period preset cannot be resolved.
// It matches ErrInvalidPeriod with errors.Is.
type InvalidPeriodError struct {
	Preset models.PeriodPreset
	Reason string
}

func (e *InvalidPeriodError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid report period %q: %s", e.Preset, e.Reason)
	}
	return fmt.Sprintf("invalid report period %q", e.Preset)
}

func (e *InvalidPeriodError) Is(target error) bool {
	return target == ErrInvalidPeriod
}

// Clock supplies the current time for period resolution.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// FixedClock always returns t.
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

// ResolvePeriod turns a preset into an inclusive calendar-date range relative
// to now. An empty preset behaves like CUSTOM.
func ResolvePeriod(filters models.ReportFilters, now time.Time) (models.ReportPeriod, error) {
	today := models.DateOf(now)
	firstOfMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)

	switch filters.Period {
	case models.PeriodSpecificMonth:
		start, err := specificMonth(filters, firstOfMonth)
		if err != nil {
			return models.ReportPeriod{}, err
		}
		return models.ReportPeriod{From: start, To: start.AddDate(0, 1, -1)}, nil

	case models.PeriodLast30Days:
		return models.ReportPeriod{From: today.AddDate(0, 0, -30), To: today}, nil

	case models.PeriodLast3Months:
		return models.ReportPeriod{From: today.AddDate(0, -3, 0), To: today}, nil

	case models.PeriodLast6Months:
		return models.ReportPeriod{From: today.AddDate(0, -6, 0), To: today}, nil

	case models.PeriodLastYear:
		return models.ReportPeriod{From: today.AddDate(-1, 0, 0), To: today}, nil

	case models.PeriodThisYear:
		return models.ReportPeriod{From: time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC), To: today}, nil

	case models.PeriodCustom, "":
		period := models.ReportPeriod{From: firstOfMonth, To: today}
		if filters.DateFrom != nil {
			period.From = models.DateOf(*filters.DateFrom)
		}
		if filters.DateTo != nil {
			period.To = models.DateOf(*filters.DateTo)
		}
		return period, nil

	default:
		return models.ReportPeriod{}, &InvalidPeriodError{Preset: filters.Period}
	}
}

func specificMonth(filters models.ReportFilters, fallback time.Time) (time.Time, error) {
	if filters.Month != "" {
		start, err := models.ParseMonth(filters.Month)
		if err != nil {
			return time.Time{}, &InvalidPeriodError{Preset: filters.Period, Reason: err.Error()}
		}
		return start, nil
	}

	if filters.DateFrom != nil {
		from := models.DateOf(*filters.DateFrom)
		return time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC), nil
	}

	return fallback, nil
}

// ValidateReportType accepts the known report types and the empty value.
func ValidateReportType(reportType models.ReportType) error {
	switch reportType {
	case "", models.ReportTypeMonthly, models.ReportTypeYearly, models.ReportTypeCustom:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidReportType, reportType)
}
