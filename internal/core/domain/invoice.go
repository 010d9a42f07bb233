package domain

import (
	"github.com/shopspring/decimal"
)

// Invoice is a sales invoice. LinkedTxn points back at a source document
// (e.g. the estimate it was built from).
type Invoice struct {
	ID          string          `json:"Id,omitempty"`
	DocNumber   string          `json:"DocNumber,omitempty"`
	CustomerRef *Reference      `json:"CustomerRef,omitempty"`
	Line        []Line          `json:"Line"`
	LinkedTxn   []LinkedTxn     `json:"LinkedTxn,omitempty"`
	TotalAmt    decimal.Decimal `json:"TotalAmt"`
	TxnDate     *Date           `json:"TxnDate,omitempty"`
	SyncToken   string          `json:"SyncToken,omitempty"`
}

func (i Invoice) EntityType() string  { return "Invoice" }
func (i Invoice) EntityID() string    { return i.ID }
func (i Invoice) EntityLabel() string { return "" }

// Payment records money received against one or more invoices.
type Payment struct {
	ID          string          `json:"Id,omitempty"`
	CustomerRef *Reference      `json:"CustomerRef,omitempty"`
	TotalAmt    decimal.Decimal `json:"TotalAmt"`
	Line        []Line          `json:"Line"`
	SyncToken   string          `json:"SyncToken,omitempty"`
}

func (p Payment) EntityType() string  { return "Payment" }
func (p Payment) EntityID() string    { return p.ID }
func (p Payment) EntityLabel() string { return "" }
