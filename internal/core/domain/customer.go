package domain

// Customer is a QBO customer record.
type Customer struct {
	ID                 string        `json:"Id,omitempty"`
	DisplayName        string        `json:"DisplayName"`
	FullyQualifiedName string        `json:"FullyQualifiedName,omitempty"`
	CompanyName        string        `json:"CompanyName,omitempty"`
	PrimaryEmailAddr   *EmailAddress `json:"PrimaryEmailAddr,omitempty"`
	SyncToken          string        `json:"SyncToken,omitempty"`
}

func (c Customer) EntityType() string { return "Customer" }
func (c Customer) EntityID() string   { return c.ID }

// EntityLabel prefers the fully qualified name, which QBO populates for
// sub-customers (jobs).
func (c Customer) EntityLabel() string {
	if c.FullyQualifiedName != "" {
		return c.FullyQualifiedName
	}
	return c.DisplayName
}
