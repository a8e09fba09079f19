package reporting

import (
	"sort"

	"finance-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// RunningBalance orders transactions by date, keeping the input order for
// same-day entries, and accumulates their signed amounts starting from zero.
func RunningBalance(transactions []models.Transaction) []models.BalancePoint {
	ordered := make([]models.Transaction, len(transactions))
	copy(ordered, transactions)

	sort.SliceStable(ordered, func(i, j int) bool {
		return models.DateOf(ordered[i].Date).Before(models.DateOf(ordered[j].Date))
	})

	points := make([]models.BalancePoint, 0, len(ordered))
	balance := decimal.Zero
	for i := range ordered {
		balance = balance.Add(ordered[i].SignedAmount())
		points = append(points, models.BalancePoint{
			Date:    models.DateOf(ordered[i].Date),
			Balance: balance,
		})
	}
	return points
}
