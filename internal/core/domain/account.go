package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType is the QBO account type, in the wire spelling used by both
// the entity payload and query predicates.
type AccountType string

const (
	AccountTypeBank              AccountType = "Bank"
	AccountTypeCreditCard        AccountType = "Credit Card"
	AccountTypeAccountsPayable   AccountType = "Accounts Payable"
	AccountTypeExpense           AccountType = "Expense"
	AccountTypeIncome            AccountType = "Income"
	AccountTypeCostOfGoodsSold   AccountType = "Cost of Goods Sold"
	AccountTypeOtherCurrentAsset AccountType = "Other Current Asset"
)

// AccountSubType narrows an AccountType; QBO validates the combination.
type AccountSubType string

const (
	SubTypeCreditCard             AccountSubType = "CreditCard"
	SubTypeAccountsPayable        AccountSubType = "AccountsPayable"
	SubTypeAdvertisingPromotional AccountSubType = "AdvertisingPromotional"
	SubTypeSalesOfProductIncome   AccountSubType = "SalesOfProductIncome"
	SubTypeServiceFeeIncome       AccountSubType = "ServiceFeeIncome"
	SubTypeSuppliesMaterialsCogs  AccountSubType = "SuppliesMaterialsCogs"
	SubTypeInventory              AccountSubType = "Inventory"
)

// AccountClassification groups account types into the five fundamental
// classes.
type AccountClassification string

const (
	ClassificationAsset     AccountClassification = "Asset"
	ClassificationLiability AccountClassification = "Liability"
	ClassificationRevenue   AccountClassification = "Revenue"
	ClassificationExpense   AccountClassification = "Expense"
)

// Account is a QBO ledger account.
type Account struct {
	ID                             string                `json:"Id,omitempty"`
	Name                           string                `json:"Name"`
	SubAccount                     bool                  `json:"SubAccount"`
	FullyQualifiedName             string                `json:"FullyQualifiedName,omitempty"`
	Active                         bool                  `json:"Active"`
	Classification                 AccountClassification `json:"Classification,omitempty"`
	AccountType                    AccountType           `json:"AccountType"`
	AccountSubType                 AccountSubType        `json:"AccountSubType,omitempty"`
	AcctNum                        string                `json:"AcctNum,omitempty"`
	TxnLocationType                string                `json:"TxnLocationType,omitempty"`
	CurrentBalance                 decimal.Decimal       `json:"CurrentBalance"`
	CurrentBalanceWithSubAccounts  decimal.Decimal       `json:"CurrentBalanceWithSubAccounts"`
	CurrencyRef                    *Reference            `json:"CurrencyRef,omitempty"`
	SyncToken                      string                `json:"SyncToken,omitempty"`
}

func (a Account) EntityType() string  { return "Account" }
func (a Account) EntityID() string    { return a.ID }
func (a Account) EntityLabel() string { return a.Name }

// USDCurrencyRef is the currency reference the sample accounts carry.
func USDCurrencyRef() *Reference {
	return &Reference{Value: "USD", Name: "United States Dollar"}
}
