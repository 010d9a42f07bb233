package domain

import (
	"github.com/shopspring/decimal"
)

// Vendor is a QBO supplier record.
type Vendor struct {
	ID               string           `json:"Id,omitempty"`
	DisplayName      string           `json:"DisplayName"`
	CompanyName      string           `json:"CompanyName,omitempty"`
	Title            string           `json:"Title,omitempty"`
	GivenName        string           `json:"GivenName,omitempty"`
	MiddleName       string           `json:"MiddleName,omitempty"`
	FamilyName       string           `json:"FamilyName,omitempty"`
	Suffix           string           `json:"Suffix,omitempty"`
	PrintOnCheckName string           `json:"PrintOnCheckName,omitempty"`
	BillAddr         *PhysicalAddress `json:"BillAddr,omitempty"`
	TaxIdentifier    string           `json:"TaxIdentifier,omitempty"`
	PrimaryEmailAddr *EmailAddress    `json:"PrimaryEmailAddr,omitempty"`
	PrimaryPhone     *TelephoneNumber `json:"PrimaryPhone,omitempty"`
	AlternatePhone   *TelephoneNumber `json:"AlternatePhone,omitempty"`
	Mobile           *TelephoneNumber `json:"Mobile,omitempty"`
	Fax              *TelephoneNumber `json:"Fax,omitempty"`
	WebAddr          *WebSiteAddress  `json:"WebAddr,omitempty"`
	TermRef          *Reference       `json:"TermRef,omitempty"`
	AcctNum          string           `json:"AcctNum,omitempty"`
	Balance          decimal.Decimal  `json:"Balance"`
	OpenBalanceDate  *Date            `json:"OpenBalanceDate,omitempty"`
	SyncToken        string           `json:"SyncToken,omitempty"`
}

func (v Vendor) EntityType() string  { return "Vendor" }
func (v Vendor) EntityID() string    { return v.ID }
func (v Vendor) EntityLabel() string { return v.DisplayName }

// Term is a QBO payment term.
type Term struct {
	ID              string          `json:"Id,omitempty"`
	Name            string          `json:"Name"`
	Active          bool            `json:"Active"`
	Type            string          `json:"Type,omitempty"`
	DiscountPercent decimal.Decimal `json:"DiscountPercent"`
	DueDays         int             `json:"DueDays"`
	SyncToken       string          `json:"SyncToken,omitempty"`
}

func (t Term) EntityType() string  { return "Term" }
func (t Term) EntityID() string    { return t.ID }
func (t Term) EntityLabel() string { return t.Name }
