package gateway

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path"
	"strings"

	"finance-tracker/internal/dto"
)

const (
	downloadReportPath     = "/reports/download-report"
	spreadsheetContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// DownloadReport streams the spreadsheet export into w.
func (c *Client) DownloadReport(ctx context.Context, query dto.ReportQuery, w io.Writer) (*dto.DownloadResult, error) {
	req, err := c.buildRequest(ctx, http.MethodGet, downloadReportPath, query.Values(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", spreadsheetContentType)

	resp, err := c.send(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	written, err := io.Copy(w, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to stream report: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = spreadsheetContentType
	}

	return &dto.DownloadResult{
		FileName:    attachmentName(resp.Header.Get("Content-Disposition"), dto.ReportFileName(c.now())),
		ContentType: contentType,
		Bytes:       written,
	}, nil
}

// attachmentName reads the filename parameter of a Content-Disposition
// header, keeping only its base name.
func attachmentName(disposition, fallback string) string {
	if disposition == "" {
		return fallback
	}
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return fallback
	}
	name := strings.TrimSpace(params["filename"])
	if name == "" {
		return fallback
	}
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" || name == ".." {
		return fallback
	}
	return name
}
