package services

import (
	"context"

	"github.com/qbodev/qbo_concepts_app/internal/core/domain"
	portsrepo "github.com/qbodev/qbo_concepts_app/internal/core/ports/repositories"
)

// AccountingSvcFacade demonstrates journal entries: two resolved accounts
// posted against each other with a vendor on the credit side.
type AccountingSvcFacade interface {
	CreateJournalEntry(ctx context.Context, sessionID string) (*domain.JournalEntry, error)
}

// BillSvcFacade demonstrates the payables cycle: vendor, bill, bill
// payment by check, vendor credit.
type BillSvcFacade interface {
	RunBillFlow(ctx context.Context, sessionID string) (*domain.VendorCredit, error)
}

// InventorySvcFacade demonstrates quantity tracking: an inventory item is
// created with stock on hand, invoiced once, and re-read.
type InventorySvcFacade interface {
	RunInventoryFlow(ctx context.Context, sessionID string) (*domain.Item, error)
}

// InvoiceSvcFacade demonstrates the receivables cycle: customer, item,
// invoice, emailed delivery, payment.
type InvoiceSvcFacade interface {
	RunInvoiceFlow(ctx context.Context, sessionID string) (*domain.Payment, error)
}

// JobsSvcFacade demonstrates estimates: an estimate is created, revised,
// and converted into a discounted invoice.
type JobsSvcFacade interface {
	RunJobsFlow(ctx context.Context, sessionID string) (*domain.Invoice, error)
}

// ReportsSvcFacade runs the balance sheet and profit-and-loss reports.
type ReportsSvcFacade interface {
	RunReports(ctx context.Context, sessionID string, params domain.ReportParams) ([]domain.Report, error)
}

// ServiceContainer bundles the concept services plus the session
// repository for injection into route registration.
type ServiceContainer struct {
	Accounting AccountingSvcFacade
	Bill       BillSvcFacade
	Inventory  InventorySvcFacade
	Invoice    InvoiceSvcFacade
	Jobs       JobsSvcFacade
	Reports    ReportsSvcFacade
	Sessions   portsrepo.SessionRepository
}
