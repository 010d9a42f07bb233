package domain

import (
	"fmt"
	"strings"
	"time"
)

// Entity is implemented by every QBO resource this app creates or queries.
// EntityType is the resource name used in query statements and request
// paths (e.g. "Account"), EntityID the server-assigned id (empty until the
// entity has been persisted remotely) and EntityLabel the display name, if
// the resource has one.
type Entity interface {
	EntityType() string
	EntityID() string
	EntityLabel() string
}

// Reference is a lightweight pointer to a persisted entity. Value carries
// the referenced id; Name is cosmetic and optional.
type Reference struct {
	Value string `json:"value"`
	Name  string `json:"name,omitempty"`
}

// NewReference builds a Reference from a persisted entity. Entities that
// have not completed resolution carry no id, and a reference without an id
// produces documents the remote service rejects in confusing ways, so this
// fails instead.
func NewReference(e Entity) (Reference, error) {
	if e.EntityID() == "" {
		return Reference{}, fmt.Errorf("cannot reference unpersisted %s entity", e.EntityType())
	}
	return Reference{Value: e.EntityID(), Name: e.EntityLabel()}, nil
}

// LinkedTxn is a backward pointer from one document to another it was
// derived from or pays against.
type LinkedTxn struct {
	TxnID   string `json:"TxnId"`
	TxnType string `json:"TxnType"`
}

// Transaction type names used in linked transactions.
const (
	TxnTypeBill     = "Bill"
	TxnTypeInvoice  = "Invoice"
	TxnTypeEstimate = "Estimate"
)

const dateLayout = "2006-01-02"

// Date is a calendar date serialized in the yyyy-MM-dd form QBO expects
// for transaction dates.
type Date struct {
	time.Time
}

// NewDate truncates t to a calendar date.
func NewDate(t time.Time) Date {
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// AddDays returns the date n days later.
func (d Date) AddDays(n int) Date {
	return NewDate(d.Time.AddDate(0, 0, n))
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + d.Time.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	// Responses sometimes carry a full timestamp for date fields.
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// EmailAddress is a QBO email address holder.
type EmailAddress struct {
	Address string `json:"Address"`
}

// PhysicalAddress is a QBO postal address.
type PhysicalAddress struct {
	Line1                  string `json:"Line1,omitempty"`
	City                   string `json:"City,omitempty"`
	Country                string `json:"Country,omitempty"`
	CountrySubDivisionCode string `json:"CountrySubDivisionCode,omitempty"`
	PostalCode             string `json:"PostalCode,omitempty"`
}

// TelephoneNumber is a QBO phone number.
type TelephoneNumber struct {
	FreeFormNumber string `json:"FreeFormNumber"`
	Default        bool   `json:"Default,omitempty"`
	Tag            string `json:"Tag,omitempty"`
}

// WebSiteAddress is a QBO web site URI.
type WebSiteAddress struct {
	URI     string `json:"URI"`
	Default bool   `json:"Default,omitempty"`
	Tag     string `json:"Tag,omitempty"`
}
