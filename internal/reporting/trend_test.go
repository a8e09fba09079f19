package reporting

import (
	"testing"
	"time"

	"finance-tracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyTrend(t *testing.T) {
	all := []models.Transaction{
		expense(20, "2025-02-01"),
		income(100, "2025-01-05"),
		expense(40, "2025-01-06"),
		income(300, "2025-04-10"),
	}

	trend := MonthlyTrend(all, 6)
	require.Len(t, trend, 3, "March has no transactions and must not appear")

	assert.Equal(t, "2025-01", trend[0].Label)
	assert.Equal(t, 2025, trend[0].Year)
	assert.Equal(t, time.January, trend[0].Month)
	assert.True(t, trend[0].TotalIncome.Equal(decimalOf(100)))
	assert.True(t, trend[0].TotalExpense.Equal(decimalOf(40)))
	assert.True(t, trend[0].Balance.Equal(decimalOf(60)))
	assert.Equal(t, 2, trend[0].TransactionCount)

	assert.Equal(t, "2025-02", trend[1].Label)
	assert.True(t, trend[1].Balance.Equal(decimalOf(-20)))

	assert.Equal(t, "2025-04", trend[2].Label)
	assert.True(t, trend[2].Balance.Equal(decimalOf(300)))
}

func TestMonthlyTrend_Window(t *testing.T) {
	var all []models.Transaction
	for _, d := range []string{"2024-11-03", "2024-12-03", "2025-01-03", "2025-02-03", "2025-03-03", "2025-04-03", "2025-05-03", "2025-06-03"} {
		all = append(all, income(10, d))
	}

	trend := MonthlyTrend(all, 3)
	require.Len(t, trend, 3)
	assert.Equal(t, []string{"2025-04", "2025-05", "2025-06"}, []string{trend[0].Label, trend[1].Label, trend[2].Label})

	defaulted := MonthlyTrend(all, 0)
	require.Len(t, defaulted, DefaultTrendWindow)
	assert.Equal(t, "2025-01", defaulted[0].Label)
	assert.Equal(t, "2025-06", defaulted[5].Label)
}

func TestMonthlyTrend_YearBoundaryOrdering(t *testing.T) {
	all := []models.Transaction{
		income(1, "2025-01-01"),
		income(1, "2024-12-31"),
		income(1, "2024-02-15"),
	}

	trend := MonthlyTrend(all, 12)
	require.Len(t, trend, 3)
	assert.Equal(t, []string{"2024-02", "2024-12", "2025-01"}, []string{trend[0].Label, trend[1].Label, trend[2].Label})
}

func TestMonthlyTrend_Empty(t *testing.T) {
	trend := MonthlyTrend(nil, 6)
	assert.NotNil(t, trend)
	assert.Empty(t, trend)
}

func TestFillMonthlyGaps(t *testing.T) {
	trend := MonthlyTrend([]models.Transaction{
		income(100, "2025-01-05"),
		expense(20, "2025-03-01"),
	}, 6)

	filled := FillMonthlyGaps(trend, day("2024-12-15"), day("2025-03-31"))
	require.Len(t, filled, 4)

	assert.Equal(t, "2024-12", filled[0].Label)
	assert.Equal(t, 0, filled[0].TransactionCount)
	assert.True(t, filled[0].Balance.IsZero())

	assert.Equal(t, "2025-01", filled[1].Label)
	assert.True(t, filled[1].Balance.Equal(decimalOf(100)))

	assert.Equal(t, "2025-02", filled[2].Label)
	assert.Equal(t, 0, filled[2].TransactionCount)

	assert.Equal(t, "2025-03", filled[3].Label)
	assert.True(t, filled[3].Balance.Equal(decimalOf(-20)))
}
