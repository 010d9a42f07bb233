package domain

import (
	"github.com/shopspring/decimal"
)

// LineDetailType discriminates which typed detail payload a Line carries.
type LineDetailType string

const (
	JournalEntryLineDetailType        LineDetailType = "JournalEntryLineDetail"
	SalesItemLineDetailType           LineDetailType = "SalesItemLineDetail"
	AccountBasedExpenseLineDetailType LineDetailType = "AccountBasedExpenseLineDetail"
	DiscountLineDetailType            LineDetailType = "DiscountLineDetail"
)

// PostingType is the debit/credit side of a journal entry line.
type PostingType string

const (
	PostingDebit  PostingType = "Debit"
	PostingCredit PostingType = "Credit"
)

// EntityTypeRef attaches a named party (vendor, customer, employee) to a
// journal entry line.
type EntityTypeRef struct {
	Type      string    `json:"Type"`
	EntityRef Reference `json:"EntityRef"`
}

// JournalEntryLineDetail is the detail payload of a journal entry line.
type JournalEntryLineDetail struct {
	PostingType PostingType    `json:"PostingType"`
	AccountRef  Reference      `json:"AccountRef"`
	Entity      *EntityTypeRef `json:"Entity,omitempty"`
}

// SalesItemLineDetail is the detail payload of a sales line.
type SalesItemLineDetail struct {
	ItemRef    Reference        `json:"ItemRef"`
	Qty        *decimal.Decimal `json:"Qty,omitempty"`
	TaxCodeRef *Reference       `json:"TaxCodeRef,omitempty"`
}

// AccountBasedExpenseLineDetail is the detail payload of an expense line.
type AccountBasedExpenseLineDetail struct {
	AccountRef Reference `json:"AccountRef"`
}

// DiscountLineDetail is the detail payload of an invoice discount line.
type DiscountLineDetail struct {
	PercentBased       bool       `json:"PercentBased"`
	DiscountAccountRef *Reference `json:"DiscountAccountRef,omitempty"`
}

// Line is one itemized entry within a composite document. Exactly one
// detail payload should be set, matching DetailType; payment lines carry
// only an amount and linked transactions.
type Line struct {
	LineNum                       int                            `json:"LineNum,omitempty"`
	Description                   string                         `json:"Description,omitempty"`
	Amount                        decimal.Decimal                `json:"Amount"`
	DetailType                    LineDetailType                 `json:"DetailType,omitempty"`
	JournalEntryLineDetail        *JournalEntryLineDetail        `json:"JournalEntryLineDetail,omitempty"`
	SalesItemLineDetail           *SalesItemLineDetail           `json:"SalesItemLineDetail,omitempty"`
	AccountBasedExpenseLineDetail *AccountBasedExpenseLineDetail `json:"AccountBasedExpenseLineDetail,omitempty"`
	DiscountLineDetail            *DiscountLineDetail            `json:"DiscountLineDetail,omitempty"`
	LinkedTxn                     []LinkedTxn                    `json:"LinkedTxn,omitempty"`
}
