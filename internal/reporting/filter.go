package reporting

import (
	"strings"
	"time"

	"finance-tracker/internal/models"
)

// ApplyFilters returns the transactions that satisfy every predicate in
// criteria, in their original relative order. The input slice is not
// modified. Unset or malformed predicates impose no constraint.
func ApplyFilters(transactions []models.Transaction, criteria models.FilterCriteria) []models.Transaction {
	m := newMatcher(criteria)

	result := make([]models.Transaction, 0, len(transactions))
	for i := range transactions {
		if m.matches(&transactions[i]) {
			result = append(result, transactions[i])
		}
	}
	return result
}

type matcher struct {
	search     string
	categoryID string
	txType     models.TransactionType
	from       time.Time
	to         time.Time
}

func newMatcher(criteria models.FilterCriteria) matcher {
	m := matcher{
		search:     strings.ToLower(strings.TrimSpace(criteria.Search)),
		categoryID: strings.TrimSpace(criteria.CategoryID),
	}

	if models.IsValidTransactionType(string(criteria.Type)) {
		m.txType = criteria.Type
	}
	if criteria.DateFrom != nil {
		m.from = models.DateOf(*criteria.DateFrom)
	}
	if criteria.DateTo != nil {
		m.to = models.DateOf(*criteria.DateTo)
	}

	return m
}

func (m matcher) matches(t *models.Transaction) bool {
	if m.search != "" && !strings.Contains(strings.ToLower(t.Description), m.search) {
		return false
	}

	if m.categoryID != "" && t.ResolvedCategoryID() != m.categoryID {
		return false
	}

	if m.txType != "" && t.Type != m.txType {
		return false
	}

	if !m.from.IsZero() || !m.to.IsZero() {
		day := models.DateOf(t.Date)
		if !m.from.IsZero() && day.Before(m.from) {
			return false
		}
		if !m.to.IsZero() && day.After(m.to) {
			return false
		}
	}

	return true
}
