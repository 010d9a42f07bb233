package qbo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/qbodev/qbo_concepts_app/internal/core/domain"
	portssvc "github.com/qbodev/qbo_concepts_app/internal/core/ports/services"
)

// reportClient runs QBO reports. Reports live under /reports/{name} and
// take their period and presentation as query parameters.
type reportClient struct {
	baseURL      string
	accessToken  string
	minorVersion string
	httpClient   *http.Client
}

var _ portssvc.ReportService = (*reportClient)(nil)

func (c *reportClient) ExecuteReport(ctx context.Context, name domain.ReportName, params domain.ReportParams) (*domain.Report, error) {
	query := url.Values{}
	if params.StartDate != "" {
		query.Set("start_date", params.StartDate)
	}
	if params.EndDate != "" {
		query.Set("end_date", params.EndDate)
	}
	if params.SummarizeColumnBy != "" {
		query.Set("summarize_column_by", params.SummarizeColumnBy)
	}
	if params.AccountingMethod != "" {
		query.Set("accounting_method", params.AccountingMethod)
	}

	body, err := doRequest(ctx, c.httpClient, c.accessToken, c.minorVersion,
		http.MethodGet, fmt.Sprintf("%s/reports/%s", c.baseURL, name), query, nil)
	if err != nil {
		return nil, err
	}

	var report domain.Report
	if err := json.Unmarshal(body, &report); err != nil {
		return nil, fmt.Errorf("decoding %s report: %w", name, err)
	}
	return &report, nil
}
