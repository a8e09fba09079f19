package reporting

import (
	"sort"
	"time"

	"finance-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// DefaultTrendWindow is the number of months MonthlyTrend keeps when the
// caller passes a non-positive window.
const DefaultTrendWindow = 6

type monthKey struct {
	year  int
	month time.Month
}

func (k monthKey) before(other monthKey) bool {
	if k.year != other.year {
		return k.year < other.year
	}
	return k.month < other.month
}

// MonthlyTrend buckets transactions by calendar month and returns the most
// recent windowSize months in ascending order. Months without transactions
// are not synthesized; see FillMonthlyGaps.
func MonthlyTrend(transactions []models.Transaction, windowSize int) []models.MonthlySummary {
	if windowSize <= 0 {
		windowSize = DefaultTrendWindow
	}

	buckets := make(map[monthKey]*models.MonthlySummary)
	for _, t := range transactions {
		year, month, _ := t.Date.Date()
		key := monthKey{year: year, month: month}

		bucket, ok := buckets[key]
		if !ok {
			bucket = emptyMonth(key)
			buckets[key] = bucket
		}

		switch t.Type {
		case models.TransactionTypeIncome:
			bucket.TotalIncome = bucket.TotalIncome.Add(t.Amount)
		case models.TransactionTypeExpense:
			bucket.TotalExpense = bucket.TotalExpense.Add(t.Amount)
		}
		bucket.TransactionCount++
	}

	keys := make([]monthKey, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].before(keys[j]) })

	if len(keys) > windowSize {
		keys = keys[len(keys)-windowSize:]
	}

	result := make([]models.MonthlySummary, 0, len(keys))
	for _, key := range keys {
		bucket := buckets[key]
		bucket.Balance = bucket.TotalIncome.Sub(bucket.TotalExpense)
		result = append(result, *bucket)
	}
	return result
}

// FillMonthlyGaps returns one entry per calendar month in [from, to], taking
// existing entries from trend and zero-filling the rest.
func FillMonthlyGaps(trend []models.MonthlySummary, from, to time.Time) []models.MonthlySummary {
	existing := make(map[monthKey]models.MonthlySummary, len(trend))
	for _, m := range trend {
		existing[monthKey{year: m.Year, month: m.Month}] = m
	}

	start := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, time.UTC)

	var result []models.MonthlySummary
	for current := start; !current.After(end); current = current.AddDate(0, 1, 0) {
		key := monthKey{year: current.Year(), month: current.Month()}
		if m, ok := existing[key]; ok {
			result = append(result, m)
			continue
		}
		result = append(result, *emptyMonth(key))
	}
	return result
}

func emptyMonth(key monthKey) *models.MonthlySummary {
	return &models.MonthlySummary{
		Year:         key.year,
		Month:        key.month,
		Label:        time.Date(key.year, key.month, 1, 0, 0, 0, 0, time.UTC).Format(models.MonthLayout),
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		Balance:      decimal.Zero,
	}
}
