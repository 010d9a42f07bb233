package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/qbodev/qbo_concepts_app/internal/core/domain"
)

func TestResolveEntity_ReturnsFirstMatchUnchanged(t *testing.T) {
	ds := new(MockDataService)
	existing := domain.Account{ID: "81", Name: "Checking", AccountType: domain.AccountTypeBank}

	ds.On("Query", mock.Anything, "Account",
		"select * from Account where AccountType='Bank' maxresults 1", mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(3).(*[]domain.Account)
			*out = []domain.Account{existing}
		}).Return(nil).Once()

	resolved, err := resolveEntity(context.Background(), ds, accountByType(domain.AccountTypeBank), sampleBankAccount)

	assert.NoError(t, err)
	assert.Equal(t, existing, resolved)
	ds.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestResolveEntity_CreatesDefaultOnMiss(t *testing.T) {
	ds := new(MockDataService)

	ds.On("Query", mock.Anything, "Account", mock.Anything, mock.Anything).Return(nil).Once()
	ds.On("Create", mock.Anything, mock.MatchedBy(func(e domain.Entity) bool {
		account, ok := e.(domain.Account)
		return ok && account.AccountType == domain.AccountTypeCreditCard && account.ID == ""
	}), mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(2).(*domain.Account)
			created := args.Get(1).(domain.Account)
			created.ID = "204"
			*out = created
		}).Return(nil).Once()

	resolved, err := resolveEntity(context.Background(), ds, accountByType(domain.AccountTypeCreditCard), sampleCreditCardAccount)

	assert.NoError(t, err)
	assert.Equal(t, "204", resolved.ID)
	assert.Equal(t, domain.AccountTypeCreditCard, resolved.AccountType)
	ds.AssertNumberOfCalls(t, "Create", 1)
}

func TestResolveEntity_EmptyPredicateMatchesAny(t *testing.T) {
	ds := new(MockDataService)

	ds.On("Query", mock.Anything, "Vendor", "select * from Vendor maxresults 1", mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(3).(*[]domain.Vendor)
			*out = []domain.Vendor{{ID: "56", DisplayName: "Books by Bessie"}}
		}).Return(nil).Once()

	resolved, err := resolveEntity(context.Background(), ds, "", func() domain.Vendor {
		return sampleVendorMinimal(domain.NewDate(fixedClock{}.Now()))
	})

	assert.NoError(t, err)
	assert.Equal(t, "56", resolved.ID)
}

func TestResolveEntity_QueryFailurePropagates(t *testing.T) {
	ds := new(MockDataService)
	queryErr := errors.New("remote unavailable")

	ds.On("Query", mock.Anything, "Term", mock.Anything, mock.Anything).Return(queryErr).Once()

	_, err := resolveEntity(context.Background(), ds, "", sampleTerm)

	assert.ErrorIs(t, err, queryErr)
	ds.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestResolveEntity_CreateFailurePropagates(t *testing.T) {
	ds := new(MockDataService)
	createErr := errors.New("name already in use")

	ds.On("Query", mock.Anything, "Term", mock.Anything, mock.Anything).Return(nil).Once()
	ds.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(createErr).Once()

	_, err := resolveEntity(context.Background(), ds, "", sampleTerm)

	assert.ErrorIs(t, err, createErr)
}

func TestAccountPredicates(t *testing.T) {
	assert.Equal(t, "AccountType='Credit Card'", accountByType(domain.AccountTypeCreditCard))
	assert.Equal(t,
		"AccountType='Other Current Asset' and AccountSubType='Inventory'",
		accountByTypeAndSubType(domain.AccountTypeOtherCurrentAsset, domain.SubTypeInventory))
}
