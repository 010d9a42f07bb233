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

type accountingService struct {
	guard *tokenGuard
	clock portssvc.Clock
}

var _ portssvc.AccountingSvcFacade = (*accountingService)(nil)

// newAccountingService creates the journal-entry concept service.
func newAccountingService(guard *tokenGuard, clock portssvc.Clock) portssvc.AccountingSvcFacade {
	return &accountingService{guard: guard, clock: clock}
}

// CreateJournalEntry resolves a bank account, a credit card account and a
// vendor, then posts a two-line journal entry: 100.00 debited against the
// bank account and 100.00 credited against the credit card account with
// the vendor named on the credit line.
func (s *accountingService) CreateJournalEntry(ctx context.Context, sessionID string) (*domain.JournalEntry, error) {
	return runWithRefresh(ctx, s.guard, sessionID, s.guard.data, func(ds portssvc.DataService) (*domain.JournalEntry, error) {
		logger := middleware.GetLoggerFromCtx(ctx)

		bank, err := resolveEntity(ctx, ds, accountByType(domain.AccountTypeBank), sampleBankAccount)
		if err != nil {
			return nil, fmt.Errorf("resolving bank account: %w", err)
		}
		creditCard, err := resolveEntity(ctx, ds, accountByType(domain.AccountTypeCreditCard), sampleCreditCardAccount)
		if err != nil {
			return nil, fmt.Errorf("resolving credit card account: %w", err)
		}
		vendor, err := resolveEntity(ctx, ds, "", func() domain.Vendor {
			return sampleVendorMinimal(domain.NewDate(s.clock.Now()))
		})
		if err != nil {
			return nil, fmt.Errorf("resolving vendor: %w", err)
		}

		bankRef, err := domain.NewReference(bank)
		if err != nil {
			return nil, err
		}
		creditCardRef, err := domain.NewReference(creditCard)
		if err != nil {
			return nil, err
		}
		vendorRef, err := domain.NewReference(vendor)
		if err != nil {
			return nil, err
		}

		amount := decimal.RequireFromString("100.00")
		lines := []domain.Line{
			{
				Description: "Description " + utils.RandomAlphanumeric(15),
				Amount:      amount,
				DetailType:  domain.JournalEntryLineDetailType,
				JournalEntryLineDetail: &domain.JournalEntryLineDetail{
					PostingType: domain.PostingDebit,
					AccountRef:  bankRef,
				},
			},
			{
				Description: "Description " + utils.RandomAlphanumeric(15),
				Amount:      amount,
				DetailType:  domain.JournalEntryLineDetailType,
				JournalEntryLineDetail: &domain.JournalEntryLineDetail{
					PostingType: domain.PostingCredit,
					AccountRef:  creditCardRef,
					Entity:      &domain.EntityTypeRef{Type: "Vendor", EntityRef: vendorRef},
				},
			},
		}

		entry := assembleJournalEntry(lines, domain.NewDate(s.clock.Now()), "Journal Entry")

		var created domain.JournalEntry
		if err := ds.Create(ctx, entry, &created); err != nil {
			return nil, fmt.Errorf("creating journal entry: %w", err)
		}
		logger.Info("Journal entry created", slog.String("journal_entry_id", created.ID))
		return &created, nil
	})
}
