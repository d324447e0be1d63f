package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"stockroom/internal/model"
)

func TestReportService_BuildReport(t *testing.T) {
	store := newTestStore(t)
	principal := newTestUser(t, store, "owner@example.com", false)
	category := newTestCategory(t, store, "Widgets")

	itemService := NewItemService(store)
	cable, err := itemService.Create(context.Background(), principal, CreateItemInput{
		Name:       "Cable",
		CategoryID: category.ID,
		Quantity:   intPtr(20),
		Price:      decimal.NewFromFloat(5.00),
	})
	assert.NoError(t, err)
	_, err = itemService.Create(context.Background(), principal, CreateItemInput{
		Name:              "Mouse",
		CategoryID:        category.ID,
		Quantity:          intPtr(4),
		LowStockThreshold: intPtr(4),
		Price:             decimal.NewFromFloat(25.00),
	})
	assert.NoError(t, err)

	changeService := NewChangeService(store)
	_, err = changeService.Create(context.Background(), principal, CreateChangeInput{
		ItemID:         cable.ID,
		ChangeType:     model.ChangeTypeSale,
		QuantityChange: -5,
		Reason:         "bulk order",
	})
	assert.NoError(t, err)

	report, err := NewReportService(store).BuildReport(context.Background(), principal)
	assert.NoError(t, err)

	// 15 cables at 5.00 plus 4 mice at 25.00.
	assert.True(t, decimal.NewFromFloat(175.00).Equal(report.TotalInventoryValue))
	assert.Equal(t, 2, report.TotalItemsInStock)
	assert.Equal(t, []string{"Mouse"}, report.LowStockItems)

	assert.Len(t, report.StockLevels, 2)
	for _, level := range report.StockLevels {
		assert.Equal(t, "Widgets", level.Category)
		if level.Name == "Cable" {
			assert.Equal(t, 15, level.Quantity)
			assert.True(t, decimal.NewFromFloat(75.00).Equal(level.TotalValue))
		}
	}

	// Two initial stock entries plus the sale.
	assert.Len(t, report.ChangeHistory, 3)
}

func TestReportService_BuildReport_EmptyInventory(t *testing.T) {
	store := newTestStore(t)
	principal := newTestUser(t, store, "owner@example.com", false)

	report, err := NewReportService(store).BuildReport(context.Background(), principal)
	assert.NoError(t, err)

	assert.True(t, decimal.Zero.Equal(report.TotalInventoryValue))
	assert.Equal(t, 0, report.TotalItemsInStock)
	assert.NotNil(t, report.LowStockItems)
	assert.Empty(t, report.LowStockItems)
	assert.NotNil(t, report.StockLevels)
	assert.NotNil(t, report.ChangeHistory)
}

func TestReportService_BuildReport_ScopedToCaller(t *testing.T) {
	store := newTestStore(t)
	owner := newTestUser(t, store, "owner@example.com", false)
	other := newTestUser(t, store, "other@example.com", false)
	category := newTestCategory(t, store, "Widgets")
	newTestItem(t, store, owner, category.ID, 10)

	report, err := NewReportService(store).BuildReport(context.Background(), other)
	assert.NoError(t, err)
	assert.Equal(t, 0, report.TotalItemsInStock)
	assert.Empty(t, report.ChangeHistory)
}
