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

type billService struct {
	guard *tokenGuard
	clock portssvc.Clock
}

var _ portssvc.BillSvcFacade = (*billService)(nil)

// newBillService creates the payables concept service.
func newBillService(guard *tokenGuard, clock portssvc.Clock) portssvc.BillSvcFacade {
	return &billService{guard: guard, clock: clock}
}

// RunBillFlow walks the payables cycle: create a fully populated vendor,
// bill it for 30.00, pay the bill by check, then record a 30.00 vendor
// credit. The vendor credit is what the endpoint returns.
func (s *billService) RunBillFlow(ctx context.Context, sessionID string) (*domain.VendorCredit, error) {
	return runWithRefresh(ctx, s.guard, sessionID, s.guard.data, func(ds portssvc.DataService) (*domain.VendorCredit, error) {
		logger := middleware.GetLoggerFromCtx(ctx)
		today := domain.NewDate(s.clock.Now())

		term, err := resolveEntity(ctx, ds, "", sampleTerm)
		if err != nil {
			return nil, fmt.Errorf("resolving term: %w", err)
		}
		termRef, err := domain.NewReference(term)
		if err != nil {
			return nil, err
		}

		var vendor domain.Vendor
		if err := ds.Create(ctx, sampleVendorAllFields(termRef, today), &vendor); err != nil {
			return nil, fmt.Errorf("creating vendor: %w", err)
		}
		vendorRef, err := domain.NewReference(vendor)
		if err != nil {
			return nil, err
		}
		logger.Info("Vendor created", slog.String("vendor_id", vendor.ID))

		apAccount, err := resolveEntity(ctx, ds, accountByType(domain.AccountTypeAccountsPayable), sampleAPAccount)
		if err != nil {
			return nil, fmt.Errorf("resolving accounts payable account: %w", err)
		}
		apRef, err := domain.NewReference(apAccount)
		if err != nil {
			return nil, err
		}
		expenseAccount, err := resolveEntity(ctx, ds, accountByType(domain.AccountTypeExpense), sampleExpenseAccount)
		if err != nil {
			return nil, fmt.Errorf("resolving expense account: %w", err)
		}
		expenseRef, err := domain.NewReference(expenseAccount)
		if err != nil {
			return nil, err
		}

		amount := decimal.RequireFromString("30.00")
		expenseLine := domain.Line{
			Amount:     amount,
			DetailType: domain.AccountBasedExpenseLineDetailType,
			AccountBasedExpenseLineDetail: &domain.AccountBasedExpenseLineDetail{
				AccountRef: expenseRef,
			},
		}

		bill := assembleBill(vendorRef, apRef, []domain.Line{expenseLine}, amount, today, today.AddDays(45))
		var createdBill domain.Bill
		if err := ds.Create(ctx, bill, &createdBill); err != nil {
			return nil, fmt.Errorf("creating bill: %w", err)
		}
		logger.Info("Bill created", slog.String("bill_id", createdBill.ID))

		bank, err := resolveEntity(ctx, ds, accountByType(domain.AccountTypeBank), sampleBankAccount)
		if err != nil {
			return nil, fmt.Errorf("resolving bank account: %w", err)
		}
		bankRef, err := domain.NewReference(bank)
		if err != nil {
			return nil, err
		}

		check := domain.BillPaymentCheck{
			BankAccountRef: bankRef,
			CheckDetail:    sampleCheckDetail(),
			PayeeAddr:      sampleAddress(),
			PrintStatus:    "NeedToPrint",
		}
		paymentLine := domain.Line{
			Amount: amount,
			LinkedTxn: []domain.LinkedTxn{
				{TxnID: createdBill.ID, TxnType: domain.TxnTypeBill},
			},
		}
		billPayment := assembleBillPayment(vendorRef, check, []domain.Line{paymentLine}, amount, today, "Check billPayment")
		var createdPayment domain.BillPayment
		if err := ds.Create(ctx, billPayment, &createdPayment); err != nil {
			return nil, fmt.Errorf("creating bill payment: %w", err)
		}
		logger.Info("Bill payment created", slog.String("bill_payment_id", createdPayment.ID))

		vendorCredit := assembleVendorCredit(vendorRef, apRef, []domain.Line{expenseLine}, amount, today, "Credit should be specified")
		var createdCredit domain.VendorCredit
		if err := ds.Create(ctx, vendorCredit, &createdCredit); err != nil {
			return nil, fmt.Errorf("creating vendor credit: %w", err)
		}
		logger.Info("Vendor credit created", slog.String("vendor_credit_id", createdCredit.ID))

		return &createdCredit, nil
	})
}
