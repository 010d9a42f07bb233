package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qbodev/qbo_concepts_app/internal/core/domain"
)

func testDate() domain.Date {
	return domain.NewDate(time.Date(2023, 5, 2, 14, 30, 0, 0, time.UTC))
}

func salesLine(amount string, itemID string) domain.Line {
	return domain.Line{
		Amount:     decimal.RequireFromString(amount),
		DetailType: domain.SalesItemLineDetailType,
		SalesItemLineDetail: &domain.SalesItemLineDetail{
			ItemRef: domain.Reference{Value: itemID},
		},
	}
}

func TestAssembleJournalEntry_PreservesLineOrder(t *testing.T) {
	lines := []domain.Line{
		{Amount: decimal.RequireFromString("100.00"), DetailType: domain.JournalEntryLineDetailType,
			JournalEntryLineDetail: &domain.JournalEntryLineDetail{PostingType: domain.PostingDebit}},
		{Amount: decimal.RequireFromString("100.00"), DetailType: domain.JournalEntryLineDetailType,
			JournalEntryLineDetail: &domain.JournalEntryLineDetail{PostingType: domain.PostingCredit}},
	}

	entry := assembleJournalEntry(lines, testDate(), "Journal Entry")

	require.Len(t, entry.Line, 2)
	assert.Equal(t, domain.PostingDebit, entry.Line[0].JournalEntryLineDetail.PostingType)
	assert.Equal(t, domain.PostingCredit, entry.Line[1].JournalEntryLineDetail.PostingType)
	assert.Equal(t, "Journal Entry", entry.PrivateNote)
	assert.Equal(t, "2023-05-02", entry.TxnDate.Format("2006-01-02"))
}

func TestAssembleJournalEntry_CopiesLines(t *testing.T) {
	lines := []domain.Line{{Description: "original"}}

	entry := assembleJournalEntry(lines, testDate(), "")
	lines[0].Description = "mutated"

	assert.Equal(t, "original", entry.Line[0].Description)
}

func TestAssembleBill_TrustsSuppliedTotal(t *testing.T) {
	// The total is deliberately not the line sum; the assembler must not
	// correct it.
	total := decimal.RequireFromString("99.99")
	lines := []domain.Line{{Amount: decimal.RequireFromString("30.00")}}

	bill := assembleBill(domain.Reference{Value: "56"}, domain.Reference{Value: "33"}, lines, total, testDate(), testDate().AddDays(45))

	assert.True(t, bill.TotalAmt.Equal(total))
	assert.Equal(t, "56", bill.VendorRef.Value)
	assert.Equal(t, "33", bill.APAccountRef.Value)
	assert.Equal(t, "2023-06-16", bill.DueDate.Format("2006-01-02"))
}

func TestAssembleBillPayment_CheckLeg(t *testing.T) {
	check := domain.BillPaymentCheck{
		BankAccountRef: domain.Reference{Value: "81"},
		PrintStatus:    "NeedToPrint",
	}
	amount := decimal.RequireFromString("30.00")
	line := domain.Line{Amount: amount, LinkedTxn: []domain.LinkedTxn{{TxnID: "145", TxnType: domain.TxnTypeBill}}}

	payment := assembleBillPayment(domain.Reference{Value: "56"}, check, []domain.Line{line}, amount, testDate(), "Check billPayment")

	assert.Equal(t, "Check", payment.PayType)
	require.NotNil(t, payment.CheckPayment)
	assert.Equal(t, "81", payment.CheckPayment.BankAccountRef.Value)
	require.Len(t, payment.Line, 1)
	assert.Equal(t, domain.LinkedTxn{TxnID: "145", TxnType: domain.TxnTypeBill}, payment.Line[0].LinkedTxn[0])
}

func TestInvoiceFromEstimate_CarriesLinkAndFirstLine(t *testing.T) {
	customerRef := domain.Reference{Value: "67", Name: "Amy's Bird Sanctuary"}
	estimate := domain.Estimate{
		ID:          "177",
		CustomerRef: &customerRef,
		Line: []domain.Line{
			salesLine("300.00", "19"),
			salesLine("50.00", "20"),
		},
	}

	invoice, err := invoiceFromEstimate(estimate)

	require.NoError(t, err)
	assert.Equal(t, customerRef, *invoice.CustomerRef)
	require.Len(t, invoice.Line, 1)
	assert.Equal(t, "19", invoice.Line[0].SalesItemLineDetail.ItemRef.Value)
	require.Len(t, invoice.LinkedTxn, 1)
	assert.Equal(t, domain.LinkedTxn{TxnID: "177", TxnType: domain.TxnTypeEstimate}, invoice.LinkedTxn[0])
}

func TestInvoiceFromEstimate_RejectsUnpersistedEstimate(t *testing.T) {
	estimate := domain.Estimate{
		CustomerRef: &domain.Reference{Value: "67"},
		Line:        []domain.Line{salesLine("300.00", "19")},
	}

	_, err := invoiceFromEstimate(estimate)

	assert.Error(t, err)
}

func TestInvoiceFromEstimate_RejectsMissingLines(t *testing.T) {
	estimate := domain.Estimate{ID: "177", CustomerRef: &domain.Reference{Value: "67"}}

	_, err := invoiceFromEstimate(estimate)

	assert.Error(t, err)
}

func TestVerifyLineTotal(t *testing.T) {
	lines := []domain.Line{
		{Amount: decimal.RequireFromString("30.00")},
		{Amount: decimal.RequireFromString("70.00")},
	}

	assert.True(t, verifyLineTotal(decimal.RequireFromString("100.00"), lines))
	assert.False(t, verifyLineTotal(decimal.RequireFromString("100.01"), lines))
	assert.True(t, verifyLineTotal(decimal.Zero, nil))
}
