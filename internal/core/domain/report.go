package domain

import "encoding/json"

// ReportName identifies a QBO report endpoint.
type ReportName string

const (
	ReportBalanceSheet  ReportName = "BalanceSheet"
	ReportProfitAndLoss ReportName = "ProfitAndLoss"
)

// ReportParams selects the period and presentation of a report run.
type ReportParams struct {
	StartDate         string
	EndDate           string
	SummarizeColumnBy string
	AccountingMethod  string
}

// ReportHeader is the header block QBO returns with every report.
type ReportHeader struct {
	ReportName  string `json:"ReportName"`
	ReportBasis string `json:"ReportBasis,omitempty"`
	StartPeriod string `json:"StartPeriod,omitempty"`
	EndPeriod   string `json:"EndPeriod,omitempty"`
	Currency    string `json:"Currency,omitempty"`
	Time        string `json:"Time,omitempty"`
}

// Report is a QBO report. Columns and Rows are kept raw: their shape
// varies per report and this app only passes them through.
type Report struct {
	Header  ReportHeader    `json:"Header"`
	Columns json.RawMessage `json:"Columns,omitempty"`
	Rows    json.RawMessage `json:"Rows,omitempty"`
}
