package services

import (
	"github.com/shopspring/decimal"

	"github.com/qbodev/qbo_concepts_app/internal/core/domain"
	"github.com/qbodev/qbo_concepts_app/internal/utils"
)

// Default entities the resolvers fall back to when a sandbox company has
// nothing usable yet. Names carry random suffixes because QBO enforces
// name uniqueness per entity type and the concept endpoints are meant to
// be hit repeatedly.

func sampleBankAccount() domain.Account {
	name := "Ba" + utils.RandomAlphanumeric(7)
	return domain.Account{
		Name:               name,
		FullyQualifiedName: name,
		Active:             true,
		Classification:     domain.ClassificationAsset,
		AccountType:        domain.AccountTypeBank,
		AcctNum:            "B" + utils.RandomAlphanumeric(6),
		TxnLocationType:    "FranceOverseas",
	}
}

func sampleCreditCardAccount() domain.Account {
	name := "CreditCa" + utils.RandomAlphabetic(5)
	return domain.Account{
		Name:               name,
		FullyQualifiedName: name,
		Active:             true,
		Classification:     domain.ClassificationLiability,
		AccountType:        domain.AccountTypeCreditCard,
		AccountSubType:     domain.SubTypeCreditCard,
		CurrencyRef:        domain.USDCurrencyRef(),
	}
}

func sampleAPAccount() domain.Account {
	name := "Equity" + utils.RandomAlphabetic(5)
	return domain.Account{
		Name:                          name,
		FullyQualifiedName:            name,
		Active:                        true,
		Classification:                domain.ClassificationLiability,
		AccountType:                   domain.AccountTypeAccountsPayable,
		AccountSubType:                domain.SubTypeAccountsPayable,
		CurrentBalance:                decimal.NewFromInt(3000),
		CurrentBalanceWithSubAccounts: decimal.NewFromInt(3000),
		CurrencyRef:                   domain.USDCurrencyRef(),
	}
}

func sampleExpenseAccount() domain.Account {
	name := "Expense" + utils.RandomAlphabetic(5)
	return domain.Account{
		Name:               name,
		FullyQualifiedName: name,
		Active:             true,
		Classification:     domain.ClassificationExpense,
		AccountType:        domain.AccountTypeExpense,
		AccountSubType:     domain.SubTypeAdvertisingPromotional,
		CurrencyRef:        domain.USDCurrencyRef(),
	}
}

func sampleServiceIncomeAccount() domain.Account {
	name := "Incom" + utils.RandomAlphabetic(5)
	return domain.Account{
		Name:               name,
		FullyQualifiedName: name,
		Active:             true,
		Classification:     domain.ClassificationRevenue,
		AccountType:        domain.AccountTypeIncome,
		AccountSubType:     domain.SubTypeServiceFeeIncome,
		CurrencyRef:        domain.USDCurrencyRef(),
	}
}

func sampleProductIncomeAccount() domain.Account {
	return domain.Account{
		Name:           "Income " + utils.RandomAlphabetic(5),
		AccountType:    domain.AccountTypeIncome,
		AccountSubType: domain.SubTypeSalesOfProductIncome,
	}
}

func sampleCogsAccount() domain.Account {
	return domain.Account{
		Name:           "Expense " + utils.RandomAlphabetic(5),
		AccountType:    domain.AccountTypeCostOfGoodsSold,
		AccountSubType: domain.SubTypeSuppliesMaterialsCogs,
	}
}

func sampleInventoryAssetAccount() domain.Account {
	return domain.Account{
		Name:           "Other Current Asset " + utils.RandomAlphanumeric(5),
		AccountType:    domain.AccountTypeOtherCurrentAsset,
		AccountSubType: domain.SubTypeInventory,
	}
}

func sampleTerm() domain.Term {
	return domain.Term{
		Name:            "Term_" + utils.RandomAlphanumeric(5),
		Active:          true,
		Type:            "STANDARD",
		DiscountPercent: decimal.NewFromInt(50),
		DueDays:         50,
	}
}

// sampleVendorMinimal is the journal-entry flow's fallback vendor: just a
// display name and an open balance date.
func sampleVendorMinimal(openBalanceDate domain.Date) domain.Vendor {
	return domain.Vendor{
		DisplayName:     utils.RandomAlphanumeric(8),
		OpenBalanceDate: &openBalanceDate,
	}
}

// sampleVendorAllFields is the bill flow's vendor, exercising every
// optional contact field.
func sampleVendorAllFields(termRef domain.Reference, openBalanceDate domain.Date) domain.Vendor {
	return domain.Vendor{
		DisplayName:      utils.RandomAlphanumeric(8),
		CompanyName:      "ABC Corp",
		Title:            utils.RandomAlphanumeric(7),
		GivenName:        utils.RandomAlphanumeric(8),
		MiddleName:       utils.RandomAlphanumeric(1),
		FamilyName:       utils.RandomAlphanumeric(8),
		Suffix:           "Sr.",
		PrintOnCheckName: "MS",
		BillAddr:         sampleAddress(),
		TaxIdentifier:    "1111111",
		PrimaryEmailAddr: &domain.EmailAddress{Address: "test@abc.com"},
		PrimaryPhone:     &domain.TelephoneNumber{FreeFormNumber: "(650)111-1111", Default: true, Tag: "Business"},
		AlternatePhone:   &domain.TelephoneNumber{FreeFormNumber: "(650)111-2222", Tag: "Business"},
		Mobile:           &domain.TelephoneNumber{FreeFormNumber: "(650)111-3333", Tag: "Home"},
		Fax:              &domain.TelephoneNumber{FreeFormNumber: "(650)111-1111", Tag: "Business"},
		WebAddr:          &domain.WebSiteAddress{URI: "http://abccorp.com", Default: true, Tag: "Business"},
		TermRef:          &termRef,
		AcctNum:          "11223344",
		OpenBalanceDate:  &openBalanceDate,
	}
}

func sampleCustomer() domain.Customer {
	return domain.Customer{
		DisplayName:      utils.RandomAlphanumeric(6),
		CompanyName:      "ABC Corporations",
		PrimaryEmailAddr: &domain.EmailAddress{Address: "testconceptsample@mailinator.com"},
	}
}

func sampleCustomerMinimal() domain.Customer {
	return domain.Customer{DisplayName: utils.RandomAlphanumeric(6)}
}

func sampleServiceItem(incomeAccountRef domain.Reference) domain.Item {
	price := decimal.NewFromInt(200)
	return domain.Item{
		Name:             "Item" + utils.RandomAlphanumeric(5),
		Active:           true,
		Taxable:          false,
		Type:             domain.ItemTypeService,
		UnitPrice:        &price,
		IncomeAccountRef: &incomeAccountRef,
	}
}

func sampleInventoryItem(incomeRef, expenseRef, assetRef domain.Reference, startDate domain.Date) domain.Item {
	qty := decimal.NewFromInt(10)
	return domain.Item{
		Name:              "Inventory Item " + utils.RandomAlphanumeric(5),
		Type:              domain.ItemTypeInventory,
		QtyOnHand:         &qty,
		TrackQtyOnHand:    true,
		InvStartDate:      &startDate,
		IncomeAccountRef:  &incomeRef,
		ExpenseAccountRef: &expenseRef,
		AssetAccountRef:   &assetRef,
	}
}

func sampleAddress() *domain.PhysicalAddress {
	return &domain.PhysicalAddress{
		Line1:                  "123 Main St",
		City:                   "Mountain View",
		Country:                "United States",
		CountrySubDivisionCode: "CA",
		PostalCode:             "94043",
	}
}

func sampleCheckDetail() *domain.CheckDetail {
	suffix := utils.RandomAlphanumeric(8)
	return &domain.CheckDetail{
		AcctNum:    "AccNum" + suffix,
		BankName:   "BankName" + suffix,
		CheckNum:   "CheckNum" + suffix,
		NameOnAcct: "Name" + suffix,
		Status:     "Status" + suffix,
	}
}
