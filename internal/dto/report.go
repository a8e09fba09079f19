package dto

import (
	"net/url"
	"time"

	"finance-tracker/internal/models"
)

// ReportQuery is the query string of GET /reports/download-report
type ReportQuery struct {
	Type     string `query:"type"`
	Period   string `query:"period"`
	DateFrom string `query:"dateFrom"`
	DateTo   string `query:"dateTo"`
}

// NewReportQuery builds the export query for an already resolved period.
func NewReportQuery(filters models.ReportFilters, period models.ReportPeriod) ReportQuery {
	reportType := filters.Type
	if reportType == "" {
		reportType = models.ReportTypeCustom
	}
	preset := filters.Period
	if preset == "" {
		preset = models.PeriodCustom
	}

	return ReportQuery{
		Type:     string(reportType),
		Period:   string(preset),
		DateFrom: models.FormatDate(period.From),
		DateTo:   models.FormatDate(period.To),
	}
}

// Values encodes the non-empty fields.
func (q ReportQuery) Values() url.Values {
	values := url.Values{}
	if q.Type != "" {
		values.Set("type", q.Type)
	}
	if q.Period != "" {
		values.Set("period", q.Period)
	}
	if q.DateFrom != "" {
		values.Set("dateFrom", q.DateFrom)
	}
	if q.DateTo != "" {
		values.Set("dateTo", q.DateTo)
	}
	return values
}

// ReportFileName is the default export filename for the given day.
func ReportFileName(day time.Time) string {
	return "relatorio-financeiro-" + day.Format(models.DateLayout) + ".xlsx"
}

// DownloadResult describes a finished export download.
type DownloadResult struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Bytes       int64  `json:"bytes"`
}
