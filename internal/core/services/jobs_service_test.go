package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/qbodev/qbo_concepts_app/internal/core/domain"
)

func TestRunJobsFlow_EstimateToDiscountedInvoice(t *testing.T) {
	sessions := new(MockSessionRepository)
	refresher := new(MockTokenRefresher)
	factory := new(MockDataServiceFactory)
	clock := fixedClock{now: time.Date(2023, 5, 2, 9, 0, 0, 0, time.UTC)}
	ds := new(MockDataService)

	guard := newTokenGuard(sessions, refresher, factory, clock)
	service := newJobsService(guard, clock)
	ctx := context.Background()

	sessions.On("FindSessionByID", ctx, "s1").Return(testSession("s1"), nil)
	// Every remote call in this flow must go through the minor version 4
	// client.
	factory.On("DataServiceWithMinorVersion", mock.Anything, "4").Return(ds)

	ds.On("Create", mock.Anything, mock.MatchedBy(func(e domain.Entity) bool {
		_, ok := e.(domain.Customer)
		return ok
	}), mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(2).(*domain.Customer)
			created := args.Get(1).(domain.Customer)
			created.ID = "67"
			*out = created
		}).Return(nil).Once()

	stubAccountQuery(ds, domain.AccountTypeIncome, domain.Account{ID: "1", Name: "Services", AccountType: domain.AccountTypeIncome})
	stubAccountQuery(ds, domain.AccountTypeExpense, domain.Account{ID: "2", Name: "Advertising", AccountType: domain.AccountTypeExpense})
	stubAccountQuery(ds, domain.AccountTypeBank, domain.Account{ID: "81", Name: "Checking", AccountType: domain.AccountTypeBank})

	ds.On("Create", mock.Anything, mock.MatchedBy(func(e domain.Entity) bool {
		item, ok := e.(domain.Item)
		return ok && item.Type == domain.ItemTypeService && item.ExpenseAccountRef != nil
	}), mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(2).(*domain.Item)
			created := args.Get(1).(domain.Item)
			created.ID = "19"
			*out = created
		}).Return(nil).Once()

	var submittedEstimate domain.Estimate
	ds.On("Create", mock.Anything, mock.MatchedBy(func(e domain.Entity) bool {
		_, ok := e.(domain.Estimate)
		return ok
	}), mock.Anything).
		Run(func(args mock.Arguments) {
			submittedEstimate = args.Get(1).(domain.Estimate)
			out := args.Get(2).(*domain.Estimate)
			*out = submittedEstimate
			out.ID = "177"
		}).Return(nil).Once()

	ds.On("Update", mock.Anything, mock.MatchedBy(func(e domain.Entity) bool {
		estimate, ok := e.(domain.Estimate)
		return ok && estimate.TotalAmt.Equal(decimal.RequireFromString("400.00"))
	}), mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(2).(*domain.Estimate)
			*out = args.Get(1).(domain.Estimate)
		}).Return(nil).Once()

	var submittedInvoice domain.Invoice
	ds.On("Create", mock.Anything, mock.MatchedBy(func(e domain.Entity) bool {
		_, ok := e.(domain.Invoice)
		return ok
	}), mock.Anything).
		Run(func(args mock.Arguments) {
			submittedInvoice = args.Get(1).(domain.Invoice)
			out := args.Get(2).(*domain.Invoice)
			*out = submittedInvoice
			out.ID = "310"
		}).Return(nil).Once()

	var updatedInvoice domain.Invoice
	ds.On("Update", mock.Anything, mock.MatchedBy(func(e domain.Entity) bool {
		_, ok := e.(domain.Invoice)
		return ok
	}), mock.Anything).
		Run(func(args mock.Arguments) {
			updatedInvoice = args.Get(1).(domain.Invoice)
			out := args.Get(2).(*domain.Invoice)
			*out = updatedInvoice
		}).Return(nil).Once()

	result, err := service.RunJobsFlow(ctx, "s1")

	require.NoError(t, err)

	// Estimate shape.
	require.Len(t, submittedEstimate.Line, 1)
	assert.Equal(t, 1, submittedEstimate.Line[0].LineNum)
	assert.True(t, submittedEstimate.Line[0].Amount.Equal(decimal.RequireFromString("300.00")))
	assert.Equal(t, "NON", submittedEstimate.Line[0].SalesItemLineDetail.TaxCodeRef.Value)
	assert.Equal(t, "81", submittedEstimate.DepositToAccountRef.Value)
	assert.Equal(t, "2023-05-17", submittedEstimate.ExpirationDate.Format("2006-01-02"))
	assert.Len(t, submittedEstimate.DocNumber, 4)

	// The derived invoice points back at the estimate.
	require.Len(t, submittedInvoice.LinkedTxn, 1)
	assert.Equal(t, domain.LinkedTxn{TxnID: "177", TxnType: domain.TxnTypeEstimate}, submittedInvoice.LinkedTxn[0])
	assert.Equal(t, "67", submittedInvoice.CustomerRef.Value)

	// The final update appends the discount line after the carried line.
	require.Len(t, updatedInvoice.Line, 2)
	discount := updatedInvoice.Line[1]
	assert.Equal(t, domain.DiscountLineDetailType, discount.DetailType)
	assert.True(t, discount.Amount.Equal(decimal.RequireFromString("10.00")))
	assert.False(t, discount.DiscountLineDetail.PercentBased)
	assert.Equal(t, "1", discount.DiscountLineDetail.DiscountAccountRef.Value)

	assert.Equal(t, "310", result.ID)
	factory.AssertNotCalled(t, "DataService", mock.Anything)
}
