package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/qbodev/qbo_concepts_app/internal/core/domain"
)

// The assemblers below are pure: they take already-resolved references and
// fully built lines and produce the composite document, copying the line
// slice so callers can't mutate the document afterwards. Line order is
// preserved as given and document totals are taken as supplied, never
// recomputed from the lines.

func copyLines(lines []domain.Line) []domain.Line {
	out := make([]domain.Line, len(lines))
	copy(out, lines)
	return out
}

func assembleJournalEntry(lines []domain.Line, txnDate domain.Date, privateNote string) domain.JournalEntry {
	return domain.JournalEntry{
		TxnDate:     &txnDate,
		PrivateNote: privateNote,
		Line:        copyLines(lines),
	}
}

func assembleBill(vendorRef, apAccountRef domain.Reference, lines []domain.Line, totalAmt decimal.Decimal, txnDate, dueDate domain.Date) domain.Bill {
	return domain.Bill{
		VendorRef:    &vendorRef,
		APAccountRef: &apAccountRef,
		Line:         copyLines(lines),
		TotalAmt:     totalAmt,
		TxnDate:      &txnDate,
		DueDate:      &dueDate,
	}
}

func assembleVendorCredit(vendorRef, apAccountRef domain.Reference, lines []domain.Line, totalAmt decimal.Decimal, txnDate domain.Date, privateNote string) domain.VendorCredit {
	return domain.VendorCredit{
		VendorRef:    &vendorRef,
		APAccountRef: &apAccountRef,
		Line:         copyLines(lines),
		TotalAmt:     totalAmt,
		TxnDate:      &txnDate,
		PrivateNote:  privateNote,
	}
}

func assembleBillPayment(vendorRef domain.Reference, check domain.BillPaymentCheck, lines []domain.Line, totalAmt decimal.Decimal, txnDate domain.Date, privateNote string) domain.BillPayment {
	return domain.BillPayment{
		VendorRef:    &vendorRef,
		PayType:      "Check",
		CheckPayment: &check,
		Line:         copyLines(lines),
		TotalAmt:     totalAmt,
		TxnDate:      &txnDate,
		PrivateNote:  privateNote,
	}
}

func assembleInvoice(customerRef domain.Reference, lines []domain.Line) domain.Invoice {
	return domain.Invoice{
		CustomerRef: &customerRef,
		Line:        copyLines(lines),
	}
}

func assemblePayment(customerRef domain.Reference, lines []domain.Line, totalAmt decimal.Decimal) domain.Payment {
	return domain.Payment{
		CustomerRef: &customerRef,
		Line:        copyLines(lines),
		TotalAmt:    totalAmt,
	}
}

func assembleEstimate(customerRef, depositAccountRef domain.Reference, lines []domain.Line, totalAmt decimal.Decimal, docNumber string, txnDate, expirationDate domain.Date, privateNote string) domain.Estimate {
	return domain.Estimate{
		DocNumber:             docNumber,
		CustomerRef:           &customerRef,
		DepositToAccountRef:   &depositAccountRef,
		Line:                  copyLines(lines),
		ApplyTaxAfterDiscount: false,
		TotalAmt:              totalAmt,
		TxnDate:               &txnDate,
		ExpirationDate:        &expirationDate,
		PrivateNote:           privateNote,
	}
}

// invoiceFromEstimate derives an invoice from a persisted estimate: the
// customer ref and first line carry over verbatim, and the invoice records
// where it came from via a linked transaction.
func invoiceFromEstimate(estimate domain.Estimate) (domain.Invoice, error) {
	if estimate.ID == "" {
		return domain.Invoice{}, fmt.Errorf("cannot derive invoice from unpersisted estimate")
	}
	if estimate.CustomerRef == nil || len(estimate.Line) == 0 {
		return domain.Invoice{}, fmt.Errorf("estimate %s is missing a customer ref or lines", estimate.ID)
	}
	customerRef := *estimate.CustomerRef
	return domain.Invoice{
		CustomerRef: &customerRef,
		Line:        copyLines(estimate.Line[:1]),
		LinkedTxn: []domain.LinkedTxn{
			{TxnID: estimate.ID, TxnType: domain.TxnTypeEstimate},
		},
	}, nil
}

// verifyLineTotal reports whether the lines sum to the stated document
// total. The assemblers never apply this themselves; documents like the
// discounted jobs invoice legitimately carry a total the lines don't sum
// to.
func verifyLineTotal(totalAmt decimal.Decimal, lines []domain.Line) bool {
	sum := decimal.Zero
	for _, line := range lines {
		sum = sum.Add(line.Amount)
	}
	return sum.Equal(totalAmt)
}
