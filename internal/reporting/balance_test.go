package reporting

import (
	"testing"

	"finance-tracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunningBalance_IncomeThenExpense(t *testing.T) {
	points := RunningBalance([]models.Transaction{
		income(100, "2025-01-01"),
		expense(40, "2025-01-02"),
	})

	require.Len(t, points, 2)
	assert.True(t, points[0].Balance.Equal(decimalOf(100)))
	assert.True(t, points[1].Balance.Equal(decimalOf(60)))
	assert.Equal(t, day("2025-01-01"), points[0].Date)
	assert.Equal(t, day("2025-01-02"), points[1].Date)
}

func TestRunningBalance_SortsByDateStably(t *testing.T) {
	sameDayExpense := expense(30, "2025-01-10")
	sameDayIncome := income(50, "2025-01-10")
	earlier := income(10, "2025-01-01")

	input := []models.Transaction{sameDayExpense, sameDayIncome, earlier}
	points := RunningBalance(input)

	require.Len(t, points, 3)
	assert.True(t, points[0].Balance.Equal(decimalOf(10)))
	assert.True(t, points[1].Balance.Equal(decimalOf(-20)), "same-day entries keep input order")
	assert.True(t, points[2].Balance.Equal(decimalOf(30)))

	assert.Equal(t, sameDayExpense.ID, input[0].ID, "input must not be reordered")
}

func TestRunningBalance_Empty(t *testing.T) {
	points := RunningBalance(nil)
	assert.NotNil(t, points)
	assert.Empty(t, points)
}

func TestRunningBalance_EndsAtSummaryBalance(t *testing.T) {
	all := randomTransactions(120)

	points := RunningBalance(all)
	require.Len(t, points, len(all))
	assert.True(t, points[len(points)-1].Balance.Equal(Summarize(all).Balance))
}
