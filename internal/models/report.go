package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReportType string

type PeriodPreset string

const (
	ReportTypeMonthly ReportType = "MONTHLY"
	ReportTypeYearly  ReportType = "YEARLY"
	ReportTypeCustom  ReportType = "CUSTOM"

	PeriodSpecificMonth PeriodPreset = "SPECIFIC_MONTH"
	PeriodLast30Days    PeriodPreset = "LAST_30_DAYS"
	PeriodLast3Months   PeriodPreset = "LAST_3_MONTHS"
	PeriodLast6Months   PeriodPreset = "LAST_6_MONTHS"
	PeriodLastYear      PeriodPreset = "LAST_YEAR"
	PeriodThisYear      PeriodPreset = "THIS_YEAR"
	PeriodCustom        PeriodPreset = "CUSTOM"
)

// FinancialSummary contains totals, averages and extremes for a set of transactions
type FinancialSummary struct {
	TotalIncome      decimal.Decimal `json:"totalIncome"`
	TotalExpense     decimal.Decimal `json:"totalExpense"`
	Balance          decimal.Decimal `json:"balance"`
	TransactionCount int             `json:"transactionCount"`
	AverageIncome    decimal.Decimal `json:"averageIncome"`
	AverageExpense   decimal.Decimal `json:"averageExpense"`
	BiggestIncome    decimal.Decimal `json:"biggestIncome"`
	BiggestExpense   decimal.Decimal `json:"biggestExpense"`
}

// CategorySummary contains aggregated transaction data by category
type CategorySummary struct {
	CategoryID       string          `json:"categoryId"`
	CategoryName     string          `json:"categoryName"`
	CategoryColor    string          `json:"categoryColor,omitempty"`
	CategoryIcon     string          `json:"categoryIcon,omitempty"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	Percentage       decimal.Decimal `json:"percentage"`
	TransactionCount int             `json:"transactionCount"`
}

// MonthlySummary aggregates one calendar month.
type MonthlySummary struct {
	Year             int             `json:"year"`
	Month            time.Month      `json:"month"`
	Label            string          `json:"label"`
	TotalIncome      decimal.Decimal `json:"totalIncome"`
	TotalExpense     decimal.Decimal `json:"totalExpense"`
	Balance          decimal.Decimal `json:"balance"`
	TransactionCount int             `json:"transactionCount"`
}

// BalancePoint is one step of a running balance series.
type BalancePoint struct {
	Date    time.Time       `json:"date"`
	Balance decimal.Decimal `json:"balance"`
}

// ReportPeriod is an inclusive calendar-date range.
type ReportPeriod struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// ReportFilters selects the period and optional extra criteria of a report.
// Month ("YYYY-MM") is only read by the SPECIFIC_MONTH preset.
type ReportFilters struct {
	Type     ReportType
	Period   PeriodPreset
	Month    string
	DateFrom *time.Time
	DateTo   *time.Time
	Criteria FilterCriteria
}

// Report is derived entirely from a transaction collection and a period.
type Report struct {
	Summary           FinancialSummary  `json:"summary"`
	CategoryBreakdown []CategorySummary `json:"categoryBreakdown"`
	IncomeBreakdown   []CategorySummary `json:"incomeBreakdown"`
	MonthlyTrend      []MonthlySummary  `json:"monthlyTrend"`
	Transactions      []Transaction     `json:"transactions"`
	Period            ReportPeriod      `json:"period"`
	GeneratedAt       time.Time         `json:"generatedAt"`
}

// Dashboard is the all-time overview.
type Dashboard struct {
	Summary        FinancialSummary  `json:"summary"`
	RunningBalance []BalancePoint    `json:"runningBalance"`
	MonthlyTrend   []MonthlySummary  `json:"monthlyTrend"`
	TopExpenses    []CategorySummary `json:"topExpenses"`
	Recent         []Transaction     `json:"recent"`
	GeneratedAt    time.Time         `json:"generatedAt"`
}
