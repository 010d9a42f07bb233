package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/qbodev/qbo_concepts_app/internal/core/domain"
	portssvc "github.com/qbodev/qbo_concepts_app/internal/core/ports/services"
	"github.com/qbodev/qbo_concepts_app/internal/middleware"
	"github.com/qbodev/qbo_concepts_app/internal/utils"
)

// jobsMinorVersion pins the jobs flow to API minor version 4: invoice
// updates carrying a discount line fail on later minor versions.
const jobsMinorVersion = "4"

type jobsService struct {
	guard *tokenGuard
	clock portssvc.Clock
}

var _ portssvc.JobsSvcFacade = (*jobsService)(nil)

// newJobsService creates the estimate-to-invoice concept service.
func newJobsService(guard *tokenGuard, clock portssvc.Clock) portssvc.JobsSvcFacade {
	return &jobsService{guard: guard, clock: clock}
}

// RunJobsFlow creates a customer and a service item, raises a 300.00
// estimate, revises its total to 400.00, derives an invoice from the
// estimate, and finally appends a 10.00 discount line to the invoice.
func (s *jobsService) RunJobsFlow(ctx context.Context, sessionID string) (*domain.Invoice, error) {
	return runWithRefresh(ctx, s.guard, sessionID, s.guard.dataWithMinorVersion(jobsMinorVersion), func(ds portssvc.DataService) (*domain.Invoice, error) {
		logger := middleware.GetLoggerFromCtx(ctx)
		today := domain.NewDate(s.clock.Now())

		var customer domain.Customer
		if err := ds.Create(ctx, sampleCustomerMinimal(), &customer); err != nil {
			return nil, fmt.Errorf("creating customer: %w", err)
		}

		income, err := resolveEntity(ctx, ds, accountByType(domain.AccountTypeIncome), sampleServiceIncomeAccount)
		if err != nil {
			return nil, fmt.Errorf("resolving income account: %w", err)
		}
		incomeRef, err := domain.NewReference(income)
		if err != nil {
			return nil, err
		}
		expense, err := resolveEntity(ctx, ds, accountByType(domain.AccountTypeExpense), sampleExpenseAccount)
		if err != nil {
			return nil, fmt.Errorf("resolving expense account: %w", err)
		}
		expenseRef, err := domain.NewReference(expense)
		if err != nil {
			return nil, err
		}

		itemFields := sampleServiceItem(incomeRef)
		itemFields.ExpenseAccountRef = &expenseRef
		var item domain.Item
		if err := ds.Create(ctx, itemFields, &item); err != nil {
			return nil, fmt.Errorf("creating service item: %w", err)
		}

		bank, err := resolveEntity(ctx, ds, accountByType(domain.AccountTypeBank), sampleBankAccount)
		if err != nil {
			return nil, fmt.Errorf("resolving bank account: %w", err)
		}
		bankRef, err := domain.NewReference(bank)
		if err != nil {
			return nil, err
		}
		customerRef, err := domain.NewReference(customer)
		if err != nil {
			return nil, err
		}
		itemRef, err := domain.NewReference(item)
		if err != nil {
			return nil, err
		}

		estimateTotal := decimal.RequireFromString("300.00")
		estimateLine := domain.Line{
			LineNum:    1,
			Amount:     estimateTotal,
			DetailType: domain.SalesItemLineDetailType,
			SalesItemLineDetail: &domain.SalesItemLineDetail{
				ItemRef:    itemRef,
				TaxCodeRef: &domain.Reference{Value: "NON"},
			},
		}
		estimate := assembleEstimate(customerRef, bankRef, []domain.Line{estimateLine}, estimateTotal,
			utils.RandomNumeric(4), today, today.AddDays(15), "Accurate Estimate")

		var createdEstimate domain.Estimate
		if err := ds.Create(ctx, estimate, &createdEstimate); err != nil {
			return nil, fmt.Errorf("creating estimate: %w", err)
		}
		logger.Info("Estimate created", slog.String("estimate_id", createdEstimate.ID))

		createdEstimate.TotalAmt = decimal.RequireFromString("400.00")
		var updatedEstimate domain.Estimate
		if err := ds.Update(ctx, createdEstimate, &updatedEstimate); err != nil {
			return nil, fmt.Errorf("updating estimate total: %w", err)
		}

		invoice, err := invoiceFromEstimate(updatedEstimate)
		if err != nil {
			return nil, err
		}
		var createdInvoice domain.Invoice
		if err := ds.Create(ctx, invoice, &createdInvoice); err != nil {
			return nil, fmt.Errorf("creating invoice from estimate: %w", err)
		}
		logger.Info("Invoice created from estimate",
			slog.String("invoice_id", createdInvoice.ID),
			slog.String("estimate_id", updatedEstimate.ID),
		)

		createdInvoice.Line = append(createdInvoice.Line, domain.Line{
			Amount:     decimal.RequireFromString("10.00"),
			DetailType: domain.DiscountLineDetailType,
			DiscountLineDetail: &domain.DiscountLineDetail{
				PercentBased:       false,
				DiscountAccountRef: &incomeRef,
			},
		})
		var updatedInvoice domain.Invoice
		if err := ds.Update(ctx, createdInvoice, &updatedInvoice); err != nil {
			return nil, fmt.Errorf("updating invoice with discount line: %w", err)
		}
		return &updatedInvoice, nil
	})
}
