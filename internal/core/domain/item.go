package domain

import (
	"github.com/shopspring/decimal"
)

// ItemType distinguishes inventory-tracked items from plain services.
type ItemType string

const (
	ItemTypeInventory ItemType = "Inventory"
	ItemTypeService   ItemType = "Service"
)

// Item is a QBO product or service.
type Item struct {
	ID                string           `json:"Id,omitempty"`
	Name              string           `json:"Name"`
	Active            bool             `json:"Active"`
	Taxable           bool             `json:"Taxable"`
	Type              ItemType         `json:"Type"`
	UnitPrice         *decimal.Decimal `json:"UnitPrice,omitempty"`
	QtyOnHand         *decimal.Decimal `json:"QtyOnHand,omitempty"`
	TrackQtyOnHand    bool             `json:"TrackQtyOnHand,omitempty"`
	InvStartDate      *Date            `json:"InvStartDate,omitempty"`
	IncomeAccountRef  *Reference       `json:"IncomeAccountRef,omitempty"`
	ExpenseAccountRef *Reference       `json:"ExpenseAccountRef,omitempty"`
	AssetAccountRef   *Reference       `json:"AssetAccountRef,omitempty"`
	SyncToken         string           `json:"SyncToken,omitempty"`
}

func (i Item) EntityType() string  { return "Item" }
func (i Item) EntityID() string    { return i.ID }
func (i Item) EntityLabel() string { return i.Name }
