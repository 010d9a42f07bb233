package dto

import "github.com/qbodev/qbo_concepts_app/internal/core/domain"

// Defaults for the reports concept endpoint; they target the sample
// company's seeded data window.
const (
	DefaultReportStartDate         = "2018-01-01"
	DefaultReportEndDate           = "2018-04-06"
	DefaultReportSummarizeColumnBy = "Customers"
	DefaultReportAccountingMethod  = "Accrual"
)

// ReportParamsRequest binds the optional query parameters of the reports
// concept endpoint. Anything omitted falls back to the defaults above.
type ReportParamsRequest struct {
	StartDate         string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate           string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
	SummarizeColumnBy string `form:"summarize_column_by" binding:"omitempty,oneof=Total Month Week Days Quarter Year Customers Vendors Classes Departments Employees ProductsAndServices"`
	AccountingMethod  string `form:"accounting_method" binding:"omitempty,oneof=Cash Accrual"`
}

// ToReportParams applies the defaults and converts to the domain type.
func (r ReportParamsRequest) ToReportParams() domain.ReportParams {
	params := domain.ReportParams{
		StartDate:         r.StartDate,
		EndDate:           r.EndDate,
		SummarizeColumnBy: r.SummarizeColumnBy,
		AccountingMethod:  r.AccountingMethod,
	}
	if params.StartDate == "" {
		params.StartDate = DefaultReportStartDate
	}
	if params.EndDate == "" {
		params.EndDate = DefaultReportEndDate
	}
	if params.SummarizeColumnBy == "" {
		params.SummarizeColumnBy = DefaultReportSummarizeColumnBy
	}
	if params.AccountingMethod == "" {
		params.AccountingMethod = DefaultReportAccountingMethod
	}
	return params
}
