package services

import (
	"context"
	"fmt"

	"github.com/qbodev/qbo_concepts_app/internal/core/domain"
	portssvc "github.com/qbodev/qbo_concepts_app/internal/core/ports/services"
)

// reportNames lists the reports the concept endpoint runs, in response
// order.
var reportNames = []domain.ReportName{
	domain.ReportBalanceSheet,
	domain.ReportProfitAndLoss,
}

type reportsService struct {
	guard *tokenGuard
}

var _ portssvc.ReportsSvcFacade = (*reportsService)(nil)

// newReportsService creates the reporting concept service.
func newReportsService(guard *tokenGuard) portssvc.ReportsSvcFacade {
	return &reportsService{guard: guard}
}

// RunReports executes the balance sheet and profit-and-loss reports with
// the given period and presentation parameters.
func (s *reportsService) RunReports(ctx context.Context, sessionID string, params domain.ReportParams) ([]domain.Report, error) {
	return runWithRefresh(ctx, s.guard, sessionID, s.guard.reports, func(rs portssvc.ReportService) ([]domain.Report, error) {
		reports := make([]domain.Report, 0, len(reportNames))
		for _, name := range reportNames {
			report, err := rs.ExecuteReport(ctx, name, params)
			if err != nil {
				return nil, fmt.Errorf("executing %s report: %w", name, err)
			}
			reports = append(reports, *report)
		}
		return reports, nil
	})
}
