package domain

import (
	"github.com/shopspring/decimal"
)

// Estimate is a proposal that an invoice can later be derived from.
type Estimate struct {
	ID                    string          `json:"Id,omitempty"`
	DocNumber             string          `json:"DocNumber,omitempty"`
	CustomerRef           *Reference      `json:"CustomerRef,omitempty"`
	DepositToAccountRef   *Reference      `json:"DepositToAccountRef,omitempty"`
	Line                  []Line          `json:"Line"`
	ApplyTaxAfterDiscount bool            `json:"ApplyTaxAfterDiscount"`
	TotalAmt              decimal.Decimal `json:"TotalAmt"`
	TxnDate               *Date           `json:"TxnDate,omitempty"`
	ExpirationDate        *Date           `json:"ExpirationDate,omitempty"`
	PrivateNote           string          `json:"PrivateNote,omitempty"`
	SyncToken             string          `json:"SyncToken,omitempty"`
}

func (e Estimate) EntityType() string  { return "Estimate" }
func (e Estimate) EntityID() string    { return e.ID }
func (e Estimate) EntityLabel() string { return "" }
