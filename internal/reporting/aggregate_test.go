package reporting

import (
	"fmt"
	"testing"

	"finance-tracker/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil)

	assert.True(t, summary.TotalIncome.IsZero())
	assert.True(t, summary.TotalExpense.IsZero())
	assert.True(t, summary.Balance.IsZero())
	assert.Equal(t, 0, summary.TransactionCount)
	assert.True(t, summary.AverageIncome.IsZero())
	assert.True(t, summary.AverageExpense.IsZero())
	assert.True(t, summary.BiggestIncome.IsZero())
	assert.True(t, summary.BiggestExpense.IsZero())
}

func TestSummarize(t *testing.T) {
	all := []models.Transaction{
		income(1000, "2025-03-01"),
		income(500, "2025-03-15"),
		expense(120, "2025-03-02"),
		expense(80, "2025-03-05"),
		expense(100, "2025-03-20"),
	}

	summary := Summarize(all)

	assert.True(t, summary.TotalIncome.Equal(decimalOf(1500)))
	assert.True(t, summary.TotalExpense.Equal(decimalOf(300)))
	assert.True(t, summary.Balance.Equal(decimalOf(1200)))
	assert.Equal(t, 5, summary.TransactionCount)
	assert.True(t, summary.AverageIncome.Equal(decimalOf(750)))
	assert.True(t, summary.AverageExpense.Equal(decimalOf(100)))
	assert.True(t, summary.BiggestIncome.Equal(decimalOf(1000)))
	assert.True(t, summary.BiggestExpense.Equal(decimalOf(120)))
}

func TestSummarize_OnlyExpenses(t *testing.T) {
	summary := Summarize([]models.Transaction{expense(25, "2025-01-01")})

	assert.True(t, summary.AverageIncome.IsZero())
	assert.True(t, summary.BiggestIncome.IsZero())
	assert.True(t, summary.Balance.Equal(decimalOf(-25)))
}

func TestSummarize_Conservation(t *testing.T) {
	for _, n := range []int{0, 1, 10, 250} {
		summary := Summarize(randomTransactions(n))
		assert.True(t, summary.TotalIncome.Sub(summary.TotalExpense).Equal(summary.Balance), "n=%d", n)
	}
}

func TestBreakdownByCategory_ScenarioB(t *testing.T) {
	food, transport := testCategories[0], testCategories[1]
	all := []models.Transaction{
		inCategory(expense(30, "2025-01-01"), food),
		inCategory(expense(40, "2025-01-02"), transport),
		inCategory(expense(20, "2025-01-03"), food),
		inCategory(expense(10, "2025-01-04"), food),
	}

	buckets := BreakdownByCategory(all, models.TransactionTypeExpense)
	require.Len(t, buckets, 2)

	assert.Equal(t, "Food", buckets[0].CategoryName)
	assert.Equal(t, "food", buckets[0].CategoryID)
	assert.Equal(t, "#f97316", buckets[0].CategoryColor)
	assert.Equal(t, "utensils", buckets[0].CategoryIcon)
	assert.True(t, buckets[0].TotalAmount.Equal(decimalOf(60)))
	assert.True(t, buckets[0].Percentage.Equal(decimalOf(60)))
	assert.Equal(t, 3, buckets[0].TransactionCount)

	assert.Equal(t, "Transport", buckets[1].CategoryName)
	assert.True(t, buckets[1].TotalAmount.Equal(decimalOf(40)))
	assert.True(t, buckets[1].Percentage.Equal(decimalOf(40)))
	assert.Equal(t, 1, buckets[1].TransactionCount)
}

func TestBreakdownByCategory_Uncategorized(t *testing.T) {
	food := testCategories[0]
	orphan := expense(15, "2025-01-01")
	orphan.CategoryID = "deleted-category"

	all := []models.Transaction{
		inCategory(expense(10, "2025-01-01"), food),
		expense(5, "2025-01-02"),
		expense(5, "2025-01-03"),
		orphan,
		income(999, "2025-01-01"),
	}

	buckets := BreakdownByCategory(all, models.TransactionTypeExpense)
	require.Len(t, buckets, 3)

	assert.Equal(t, "deleted-category", buckets[0].CategoryName)
	assert.Equal(t, "Food", buckets[1].CategoryName)
	assert.Equal(t, models.UncategorizedName, buckets[2].CategoryName)
	assert.Empty(t, buckets[2].CategoryID)
	assert.Equal(t, 2, buckets[2].TransactionCount)
	assert.True(t, buckets[2].TotalAmount.Equal(decimalOf(10)))
}

func TestBreakdownByCategory_TiesByName(t *testing.T) {
	zeta := &models.Category{ID: "z", Name: "Zeta"}
	alpha := &models.Category{ID: "a", Name: "Alpha"}
	mid := &models.Category{ID: "m", Name: "Mid"}

	all := []models.Transaction{
		inCategory(expense(10, "2025-01-01"), zeta),
		inCategory(expense(10, "2025-01-01"), mid),
		inCategory(expense(10, "2025-01-01"), alpha),
	}

	buckets := BreakdownByCategory(all, models.TransactionTypeExpense)
	require.Len(t, buckets, 3)
	assert.Equal(t, []string{"Alpha", "Mid", "Zeta"}, []string{buckets[0].CategoryName, buckets[1].CategoryName, buckets[2].CategoryName})
}

func TestBreakdownByCategory_TypeIsAuthoritative(t *testing.T) {
	salary := testCategories[2]
	// expense filed under an income category still counts as expense
	mismatched := inCategory(expense(70, "2025-01-01"), salary)

	expenses := BreakdownByCategory([]models.Transaction{mismatched}, models.TransactionTypeExpense)
	require.Len(t, expenses, 1)
	assert.Equal(t, "Salary", expenses[0].CategoryName)

	incomes := BreakdownByCategory([]models.Transaction{mismatched}, models.TransactionTypeIncome)
	assert.Empty(t, incomes)
}

func TestBreakdownByCategory_ZeroTotal(t *testing.T) {
	all := []models.Transaction{inCategory(expense(0, "2025-01-01"), testCategories[0])}

	buckets := BreakdownByCategory(all, models.TransactionTypeExpense)
	require.Len(t, buckets, 1)
	assert.True(t, buckets[0].Percentage.IsZero())
}

func TestBreakdownByCategory_PercentageClosure(t *testing.T) {
	all := randomTransactions(300)

	for _, txType := range []models.TransactionType{models.TransactionTypeIncome, models.TransactionTypeExpense} {
		buckets := BreakdownByCategory(all, txType)
		require.NotEmpty(t, buckets)

		sum := decimal.Zero
		for _, b := range buckets {
			sum = sum.Add(b.Percentage)
		}
		assert.True(t, sum.Equal(hundred), "%s percentages sum to %s", txType, sum)
	}
}

func TestBreakdownByCategory_EqualSharesSumToHundred(t *testing.T) {
	for _, n := range []int{3, 6, 7, 11} {
		all := make([]models.Transaction, 0, n)
		for i := 0; i < n; i++ {
			category := &models.Category{ID: fmt.Sprintf("c%02d", i), Name: fmt.Sprintf("Category %02d", i), Type: models.TransactionTypeExpense}
			all = append(all, inCategory(expense(1, "2025-01-01"), category))
		}

		buckets := BreakdownByCategory(all, models.TransactionTypeExpense)
		require.Len(t, buckets, n)

		exact := hundred.Div(decimal.NewFromInt(int64(n)))
		sum := decimal.Zero
		for _, b := range buckets {
			assert.True(t, b.Percentage.Sub(exact).Abs().LessThan(hundredth), "share %s is more than a hundredth from %s", b.Percentage, exact)
			assert.True(t, b.Percentage.Equal(b.Percentage.Round(2)), "share %s has more than two places", b.Percentage)
			sum = sum.Add(b.Percentage)
		}
		assert.True(t, sum.Equal(hundred), "%d buckets: percentages sum to %s", n, sum)
	}
}

func TestBreakdownByCategory_ThirdsGoToFirstListed(t *testing.T) {
	all := []models.Transaction{
		inCategory(expense(10, "2025-01-01"), testCategories[0]),
		inCategory(expense(10, "2025-01-02"), testCategories[1]),
		inCategory(expense(10, "2025-01-03"), &models.Category{ID: "rent", Name: "Rent", Type: models.TransactionTypeExpense}),
	}

	buckets := BreakdownByCategory(all, models.TransactionTypeExpense)
	require.Len(t, buckets, 3)
	assert.Equal(t, "Food", buckets[0].CategoryName)
	assert.Equal(t, "33.34", buckets[0].Percentage.StringFixed(2))
	assert.Equal(t, "33.33", buckets[1].Percentage.StringFixed(2))
	assert.Equal(t, "33.33", buckets[2].Percentage.StringFixed(2))
}

func TestBreakdownByCategory_Empty(t *testing.T) {
	buckets := BreakdownByCategory(nil, models.TransactionTypeExpense)
	assert.NotNil(t, buckets)
	assert.Empty(t, buckets)
}
