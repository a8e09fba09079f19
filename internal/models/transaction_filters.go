package models

import (
	"strings"
	"time"
)

// FilterCriteria contains the optional predicates applied to a transaction
// collection. A zero value matches everything.
type FilterCriteria struct {
	Search     string
	CategoryID string
	Type       TransactionType
	DateFrom   *time.Time
	DateTo     *time.Time
}

// IsEmpty reports whether no predicate is set.
func (c FilterCriteria) IsEmpty() bool {
	return strings.TrimSpace(c.Search) == "" &&
		c.CategoryID == "" &&
		!IsValidTransactionType(string(c.Type)) &&
		c.DateFrom == nil &&
		c.DateTo == nil
}

// WithDateRange returns a copy bounded to [from, to].
func (c FilterCriteria) WithDateRange(from, to time.Time) FilterCriteria {
	c.DateFrom = &from
	c.DateTo = &to
	return c
}

// FilterParams is the raw form of FilterCriteria as typed by a user.
type FilterParams struct {
	Search     string `json:"search,omitempty" query:"search"`
	CategoryID string `json:"categoryId,omitempty" query:"categoryId"`
	Type       string `json:"type,omitempty" query:"type"`
	DateFrom   string `json:"dateFrom,omitempty" query:"dateFrom"`
	DateTo     string `json:"dateTo,omitempty" query:"dateTo"`
}

// ParseFilterParams converts raw params, dropping any field that does not
// parse. Half-typed form state never produces an error.
func ParseFilterParams(p FilterParams) FilterCriteria {
	criteria := FilterCriteria{
		Search:     strings.TrimSpace(p.Search),
		CategoryID: strings.TrimSpace(p.CategoryID),
	}

	if t, ok := ParseTransactionType(p.Type); ok {
		criteria.Type = t
	}

	if from, err := ParseCalendarDate(p.DateFrom); err == nil {
		criteria.DateFrom = &from
	}

	if to, err := ParseCalendarDate(p.DateTo); err == nil {
		criteria.DateTo = &to
	}

	return criteria
}
