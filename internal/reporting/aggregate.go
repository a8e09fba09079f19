package reporting

import (
	"sort"

	"finance-tracker/internal/models"

	"github.com/shopspring/decimal"
)

var (
	hundred   = decimal.NewFromInt(100)
	hundredth = decimal.New(1, -2)
)

// Summarize computes totals, averages and the largest amount per direction.
// Averages and extremes of an empty subset are zero.
func Summarize(transactions []models.Transaction) models.FinancialSummary {
	summary := models.FinancialSummary{
		TotalIncome:    decimal.Zero,
		TotalExpense:   decimal.Zero,
		AverageIncome:  decimal.Zero,
		AverageExpense: decimal.Zero,
		BiggestIncome:  decimal.Zero,
		BiggestExpense: decimal.Zero,
	}

	var incomeCount, expenseCount int64
	for _, t := range transactions {
		switch t.Type {
		case models.TransactionTypeIncome:
			incomeCount++
			summary.TotalIncome = summary.TotalIncome.Add(t.Amount)
			if t.Amount.GreaterThan(summary.BiggestIncome) {
				summary.BiggestIncome = t.Amount
			}
		case models.TransactionTypeExpense:
			expenseCount++
			summary.TotalExpense = summary.TotalExpense.Add(t.Amount)
			if t.Amount.GreaterThan(summary.BiggestExpense) {
				summary.BiggestExpense = t.Amount
			}
		}
	}

	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpense)
	summary.TransactionCount = len(transactions)

	if incomeCount > 0 {
		summary.AverageIncome = summary.TotalIncome.Div(decimal.NewFromInt(incomeCount))
	}
	if expenseCount > 0 {
		summary.AverageExpense = summary.TotalExpense.Div(decimal.NewFromInt(expenseCount))
	}

	return summary
}

// BreakdownByCategory groups transactions of filterType by resolved category
// and returns the buckets ordered by total descending, then name ascending.
// Transactions without a category land in a synthetic Uncategorized bucket.
// The transaction type decides membership; the category snapshot only labels
// the bucket.
func BreakdownByCategory(transactions []models.Transaction, filterType models.TransactionType) []models.CategorySummary {
	buckets := make(map[string]*models.CategorySummary)
	keys := make([]string, 0)
	totalOfType := decimal.Zero

	for i := range transactions {
		t := &transactions[i]
		if t.Type != filterType {
			continue
		}

		id := t.ResolvedCategoryID()
		bucket, ok := buckets[id]
		if !ok {
			bucket = newBucket(t, id)
			buckets[id] = bucket
			keys = append(keys, id)
		}

		bucket.TotalAmount = bucket.TotalAmount.Add(t.Amount)
		bucket.TransactionCount++
		totalOfType = totalOfType.Add(t.Amount)
	}

	result := make([]models.CategorySummary, 0, len(keys))
	for _, key := range keys {
		result = append(result, *buckets[key])
	}

	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].TotalAmount.Equal(result[j].TotalAmount) {
			return result[i].TotalAmount.GreaterThan(result[j].TotalAmount)
		}
		if result[i].CategoryName != result[j].CategoryName {
			return result[i].CategoryName < result[j].CategoryName
		}
		return result[i].CategoryID < result[j].CategoryID
	})

	if totalOfType.IsPositive() {
		assignPercentages(result, totalOfType)
	}

	return result
}

// assignPercentages sets each bucket's share of total in hundredths using
// largest-remainder rounding, so the shares always add up to exactly 100.
// Ties go to the bucket listed first.
func assignPercentages(result []models.CategorySummary, total decimal.Decimal) {
	remainders := make([]decimal.Decimal, len(result))
	allocated := decimal.Zero
	for i := range result {
		exact := result[i].TotalAmount.Div(total).Mul(hundred)
		result[i].Percentage = exact.RoundFloor(2)
		remainders[i] = exact.Sub(result[i].Percentage)
		allocated = allocated.Add(result[i].Percentage)
	}

	order := make([]int, len(result))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return remainders[order[a]].GreaterThan(remainders[order[b]])
	})

	// leftover is in hundredths; Div rounding can make it -1 in rare cases
	leftover := hundred.Sub(allocated).Div(hundredth).Round(0).IntPart()
	for n := 0; leftover > 0 && n < len(order); n++ {
		i := order[n]
		result[i].Percentage = result[i].Percentage.Add(hundredth)
		leftover--
	}
	for n := len(order) - 1; leftover < 0 && n >= 0; n-- {
		i := order[n]
		if result[i].Percentage.GreaterThanOrEqual(hundredth) {
			result[i].Percentage = result[i].Percentage.Sub(hundredth)
			leftover++
		}
	}
}

func newBucket(t *models.Transaction, id string) *models.CategorySummary {
	bucket := &models.CategorySummary{
		CategoryID:   id,
		CategoryName: models.UncategorizedName,
		TotalAmount:  decimal.Zero,
		Percentage:   decimal.Zero,
	}

	switch {
	case t.Category != nil:
		bucket.CategoryName = t.Category.Name
		bucket.CategoryColor = t.Category.Color
		bucket.CategoryIcon = t.Category.Icon
	case id != "":
		// referenced category was not denormalized; label it by id
		bucket.CategoryName = id
	}

	return bucket
}
