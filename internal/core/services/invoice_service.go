package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/qbodev/qbo_concepts_app/internal/core/domain"
	portssvc "github.com/qbodev/qbo_concepts_app/internal/core/ports/services"
	"github.com/qbodev/qbo_concepts_app/internal/middleware"
)

type invoiceService struct {
	guard *tokenGuard
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

// newInvoiceService creates the receivables concept service.
func newInvoiceService(guard *tokenGuard) portssvc.InvoiceSvcFacade {
	return &invoiceService{guard: guard}
}

// RunInvoiceFlow walks the receivables cycle: create a customer and a
// 200.00 service item, invoice the customer for 100, email the invoice to
// them, and record a payment against it.
func (s *invoiceService) RunInvoiceFlow(ctx context.Context, sessionID string) (*domain.Payment, error) {
	return runWithRefresh(ctx, s.guard, sessionID, s.guard.data, func(ds portssvc.DataService) (*domain.Payment, error) {
		logger := middleware.GetLoggerFromCtx(ctx)

		var customer domain.Customer
		if err := ds.Create(ctx, sampleCustomer(), &customer); err != nil {
			return nil, fmt.Errorf("creating customer: %w", err)
		}
		logger.Info("Customer created", slog.String("customer_id", customer.ID))

		income, err := resolveEntity(ctx, ds, accountByType(domain.AccountTypeIncome), sampleServiceIncomeAccount)
		if err != nil {
			return nil, fmt.Errorf("resolving income account: %w", err)
		}
		incomeRef, err := domain.NewReference(income)
		if err != nil {
			return nil, err
		}

		var item domain.Item
		if err := ds.Create(ctx, sampleServiceItem(incomeRef), &item); err != nil {
			return nil, fmt.Errorf("creating service item: %w", err)
		}

		customerRef, err := domain.NewReference(customer)
		if err != nil {
			return nil, err
		}
		itemRef, err := domain.NewReference(item)
		if err != nil {
			return nil, err
		}

		invoice := assembleInvoice(customerRef, []domain.Line{
			{
				Amount:     decimal.NewFromInt(100),
				DetailType: domain.SalesItemLineDetailType,
				SalesItemLineDetail: &domain.SalesItemLineDetail{
					ItemRef: itemRef,
				},
			},
		})
		var createdInvoice domain.Invoice
		if err := ds.Create(ctx, invoice, &createdInvoice); err != nil {
			return nil, fmt.Errorf("creating invoice: %w", err)
		}
		logger.Info("Invoice created", slog.String("invoice_id", createdInvoice.ID))

		if err := ds.SendEmail(ctx, createdInvoice, customer.PrimaryEmailAddr.Address); err != nil {
			return nil, fmt.Errorf("sending invoice email: %w", err)
		}

		payment := assemblePayment(customerRef, []domain.Line{
			{
				Amount: createdInvoice.TotalAmt,
				LinkedTxn: []domain.LinkedTxn{
					{TxnID: createdInvoice.ID, TxnType: domain.TxnTypeInvoice},
				},
			},
		}, createdInvoice.TotalAmt)
		var createdPayment domain.Payment
		if err := ds.Create(ctx, payment, &createdPayment); err != nil {
			return nil, fmt.Errorf("creating payment: %w", err)
		}
		logger.Info("Payment created", slog.String("payment_id", createdPayment.ID))

		return &createdPayment, nil
	})
}
