package domain

import (
	"github.com/shopspring/decimal"
)

// Bill is a vendor bill payable through accounts payable.
type Bill struct {
	ID                   string           `json:"Id,omitempty"`
	VendorRef            *Reference       `json:"VendorRef,omitempty"`
	APAccountRef         *Reference       `json:"APAccountRef,omitempty"`
	Line                 []Line           `json:"Line"`
	BillEmail            *EmailAddress    `json:"BillEmail,omitempty"`
	ReplyEmail           *EmailAddress    `json:"ReplyEmail,omitempty"`
	RemitToAddr          *PhysicalAddress `json:"RemitToAddr,omitempty"`
	ShipAddr             *PhysicalAddress `json:"ShipAddr,omitempty"`
	GlobalTaxCalculation string           `json:"GlobalTaxCalculation,omitempty"`
	TotalAmt             decimal.Decimal  `json:"TotalAmt"`
	TxnDate              *Date            `json:"TxnDate,omitempty"`
	DueDate              *Date            `json:"DueDate,omitempty"`
	SyncToken            string           `json:"SyncToken,omitempty"`
}

func (b Bill) EntityType() string  { return "Bill" }
func (b Bill) EntityID() string    { return b.ID }
func (b Bill) EntityLabel() string { return "" }

// CheckDetail holds the physical check fields of a check payment.
type CheckDetail struct {
	AcctNum    string `json:"AcctNum,omitempty"`
	BankName   string `json:"BankName,omitempty"`
	CheckNum   string `json:"CheckNum,omitempty"`
	NameOnAcct string `json:"NameOnAcct,omitempty"`
	Status     string `json:"Status,omitempty"`
}

// BillPaymentCheck is the check leg of a bill payment.
type BillPaymentCheck struct {
	BankAccountRef Reference        `json:"BankAccountRef"`
	CheckDetail    *CheckDetail     `json:"CheckDetail,omitempty"`
	PayeeAddr      *PhysicalAddress `json:"PayeeAddr,omitempty"`
	PrintStatus    string           `json:"PrintStatus,omitempty"`
}

// BillPayment settles one or more bills; each line links the bill it pays.
type BillPayment struct {
	ID           string            `json:"Id,omitempty"`
	VendorRef    *Reference        `json:"VendorRef,omitempty"`
	PayType      string            `json:"PayType,omitempty"`
	CheckPayment *BillPaymentCheck `json:"CheckPayment,omitempty"`
	TotalAmt     decimal.Decimal   `json:"TotalAmt"`
	TxnDate      *Date             `json:"TxnDate,omitempty"`
	PrivateNote  string            `json:"PrivateNote,omitempty"`
	Line         []Line            `json:"Line"`
	SyncToken    string            `json:"SyncToken,omitempty"`
}

func (b BillPayment) EntityType() string  { return "BillPayment" }
func (b BillPayment) EntityID() string    { return b.ID }
func (b BillPayment) EntityLabel() string { return "" }

// VendorCredit is a credit from a vendor against accounts payable.
type VendorCredit struct {
	ID           string          `json:"Id,omitempty"`
	VendorRef    *Reference      `json:"VendorRef,omitempty"`
	APAccountRef *Reference      `json:"APAccountRef,omitempty"`
	Line         []Line          `json:"Line"`
	TotalAmt     decimal.Decimal `json:"TotalAmt"`
	TxnDate      *Date           `json:"TxnDate,omitempty"`
	PrivateNote  string          `json:"PrivateNote,omitempty"`
	SyncToken    string          `json:"SyncToken,omitempty"`
}

func (v VendorCredit) EntityType() string  { return "VendorCredit" }
func (v VendorCredit) EntityID() string    { return v.ID }
func (v VendorCredit) EntityLabel() string { return "" }
