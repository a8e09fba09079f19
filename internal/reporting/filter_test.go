package reporting

import (
	"testing"
	"time"

	"finance-tracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyFilters(t *testing.T) {
	food, transport := testCategories[0], testCategories[1]

	groceries := inCategory(expense(50, "2025-01-10"), food)
	groceries.Description = "Weekly Groceries at Market"
	bus := inCategory(expense(5, "2025-01-12"), transport)
	bus.Description = "Bus ticket"
	salary := income(3000, "2025-01-05")
	salary.Description = "January salary"
	uncategorized := expense(12, "2025-02-01")
	uncategorized.Description = "market snacks"

	all := []models.Transaction{groceries, bus, salary, uncategorized}

	tests := []struct {
		name     string
		criteria models.FilterCriteria
		wantIDs  []string
	}{
		{
			name:     "search is case-insensitive substring",
			criteria: models.FilterCriteria{Search: "MARKET"},
			wantIDs:  []string{groceries.ID, uncategorized.ID},
		},
		{
			name:     "blank search is no constraint",
			criteria: models.FilterCriteria{Search: "   "},
			wantIDs:  []string{groceries.ID, bus.ID, salary.ID, uncategorized.ID},
		},
		{
			name:     "category exact match",
			criteria: models.FilterCriteria{CategoryID: "transport"},
			wantIDs:  []string{bus.ID},
		},
		{
			name:     "uncategorized never matches a category filter",
			criteria: models.FilterCriteria{CategoryID: "food", Search: "snacks"},
			wantIDs:  []string{},
		},
		{
			name:     "type filter",
			criteria: models.FilterCriteria{Type: models.TransactionTypeIncome},
			wantIDs:  []string{salary.ID},
		},
		{
			name:     "unknown type is ignored",
			criteria: models.FilterCriteria{Type: "TRANSFER"},
			wantIDs:  []string{groceries.ID, bus.ID, salary.ID, uncategorized.ID},
		},
		{
			name:     "inclusive date range",
			criteria: models.FilterCriteria{DateFrom: dayPtr("2025-01-05"), DateTo: dayPtr("2025-01-10")},
			wantIDs:  []string{groceries.ID, salary.ID},
		},
		{
			name:     "open ended from",
			criteria: models.FilterCriteria{DateFrom: dayPtr("2025-01-11")},
			wantIDs:  []string{bus.ID, uncategorized.ID},
		},
		{
			name: "predicates are combined",
			criteria: models.FilterCriteria{
				Search:   "market",
				Type:     models.TransactionTypeExpense,
				DateFrom: dayPtr("2025-01-01"),
				DateTo:   dayPtr("2025-01-31"),
			},
			wantIDs: []string{groceries.ID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyFilters(all, tt.criteria)
			ids := make([]string, 0, len(got))
			for _, tx := range got {
				ids = append(ids, tx.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestApplyFilters_TimeOfDayDoesNotExclude(t *testing.T) {
	late := expense(10, "2025-01-31")
	late.Date = time.Date(2025, 1, 31, 23, 45, 0, 0, time.UTC)

	from := time.Date(2025, 1, 31, 12, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 31, 8, 0, 0, 0, time.UTC)

	got := ApplyFilters([]models.Transaction{late}, models.FilterCriteria{DateFrom: &from, DateTo: &to})
	assert.Len(t, got, 1)
}

func TestApplyFilters_Identity(t *testing.T) {
	all := randomTransactions(50)

	got := ApplyFilters(all, models.FilterCriteria{})
	require.Len(t, got, len(all))
	assert.Equal(t, all, got)

	got[0].Description = "changed"
	assert.NotEqual(t, "changed", all[0].Description, "result must not alias the input")
}

func TestApplyFilters_Idempotent(t *testing.T) {
	all := randomTransactions(200)
	criteria := models.FilterCriteria{
		Type:     models.TransactionTypeExpense,
		DateFrom: dayPtr("2024-03-01"),
		DateTo:   dayPtr("2025-03-31"),
	}

	once := ApplyFilters(all, criteria)
	twice := ApplyFilters(once, criteria)
	assert.Equal(t, once, twice)
}

func TestApplyFilters_EmptyInput(t *testing.T) {
	got := ApplyFilters(nil, models.FilterCriteria{Search: "x"})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestApplyFilters_ScenarioA(t *testing.T) {
	all := []models.Transaction{
		income(100, "2025-01-05"),
		expense(40, "2025-01-06"),
		expense(20, "2025-02-01"),
	}

	filtered := ApplyFilters(all, models.FilterCriteria{DateFrom: dayPtr("2025-01-01"), DateTo: dayPtr("2025-01-31")})
	require.Len(t, filtered, 2)

	summary := Summarize(filtered)
	assert.True(t, summary.TotalIncome.Equal(decimalOf(100)))
	assert.True(t, summary.TotalExpense.Equal(decimalOf(40)))
	assert.True(t, summary.Balance.Equal(decimalOf(60)))
	assert.Equal(t, 2, summary.TransactionCount)
}
