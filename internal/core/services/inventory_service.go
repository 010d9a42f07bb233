package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/qbodev/qbo_concepts_app/internal/core/domain"
	portssvc "github.com/qbodev/qbo_concepts_app/internal/core/ports/services"
	"github.com/qbodev/qbo_concepts_app/internal/middleware"
)

type inventoryService struct {
	guard *tokenGuard
	clock portssvc.Clock
}

var _ portssvc.InventorySvcFacade = (*inventoryService)(nil)

// newInventoryService creates the quantity-tracking concept service.
func newInventoryService(guard *tokenGuard, clock portssvc.Clock) portssvc.InventorySvcFacade {
	return &inventoryService{guard: guard, clock: clock}
}

// RunInventoryFlow creates an inventory item with ten units on hand,
// invoices a customer for one of them, and re-reads the item so the
// response shows the decremented quantity.
func (s *inventoryService) RunInventoryFlow(ctx context.Context, sessionID string) (*domain.Item, error) {
	return runWithRefresh(ctx, s.guard, sessionID, s.guard.data, func(ds portssvc.DataService) (*domain.Item, error) {
		logger := middleware.GetLoggerFromCtx(ctx)

		income, err := resolveEntity(ctx, ds, accountByTypeAndSubType(domain.AccountTypeIncome, domain.SubTypeSalesOfProductIncome), sampleProductIncomeAccount)
		if err != nil {
			return nil, fmt.Errorf("resolving income account: %w", err)
		}
		expense, err := resolveEntity(ctx, ds, accountByTypeAndSubType(domain.AccountTypeCostOfGoodsSold, domain.SubTypeSuppliesMaterialsCogs), sampleCogsAccount)
		if err != nil {
			return nil, fmt.Errorf("resolving cost of goods sold account: %w", err)
		}
		asset, err := resolveEntity(ctx, ds, accountByTypeAndSubType(domain.AccountTypeOtherCurrentAsset, domain.SubTypeInventory), sampleInventoryAssetAccount)
		if err != nil {
			return nil, fmt.Errorf("resolving inventory asset account: %w", err)
		}

		incomeRef, err := domain.NewReference(income)
		if err != nil {
			return nil, err
		}
		expenseRef, err := domain.NewReference(expense)
		if err != nil {
			return nil, err
		}
		assetRef, err := domain.NewReference(asset)
		if err != nil {
			return nil, err
		}

		item := sampleInventoryItem(incomeRef, expenseRef, assetRef, domain.NewDate(s.clock.Now()))
		var createdItem domain.Item
		if err := ds.Create(ctx, item, &createdItem); err != nil {
			return nil, fmt.Errorf("creating inventory item: %w", err)
		}
		logger.Info("Inventory item created", slog.String("item_id", createdItem.ID))

		var customer domain.Customer
		if err := ds.Create(ctx, sampleCustomer(), &customer); err != nil {
			return nil, fmt.Errorf("creating customer: %w", err)
		}
		customerRef, err := domain.NewReference(customer)
		if err != nil {
			return nil, err
		}
		itemRef, err := domain.NewReference(createdItem)
		if err != nil {
			return nil, err
		}

		qty := decimal.NewFromInt(1)
		invoice := assembleInvoice(customerRef, []domain.Line{
			{
				Amount:     decimal.NewFromInt(100),
				DetailType: domain.SalesItemLineDetailType,
				SalesItemLineDetail: &domain.SalesItemLineDetail{
					ItemRef: itemRef,
					Qty:     &qty,
				},
			},
		})
		var createdInvoice domain.Invoice
		if err := ds.Create(ctx, invoice, &createdInvoice); err != nil {
			return nil, fmt.Errorf("creating invoice: %w", err)
		}
		logger.Info("Invoice created", slog.String("invoice_id", createdInvoice.ID))

		// The sale should have decremented the quantity on hand to 9.
		var remaining domain.Item
		if err := ds.FindByID(ctx, createdItem, &remaining); err != nil {
			return nil, fmt.Errorf("re-reading inventory item: %w", err)
		}
		return &remaining, nil
	})
}
