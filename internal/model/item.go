package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultLowStockThreshold applies when an item is created without one.
const DefaultLowStockThreshold = 10

// InventoryItem is a stocked product. Quantity is mutated only through
// inventory-change reconciliation; the update endpoint excludes it.
type InventoryItem struct {
	ID                uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	UserID            *uuid.UUID      `json:"user_id" gorm:"type:char(36);index"`
	CategoryID        uuid.UUID       `json:"category_id" gorm:"type:char(36);not null;index"`
	SupplierID        *uuid.UUID      `json:"supplier_id" gorm:"type:char(36);index"`
	Name              string          `json:"name" gorm:"size:200;not null;index"`
	Description       string          `json:"description" gorm:"type:text"`
	Quantity          int             `json:"quantity" gorm:"not null;default:0"`
	Price             decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	LowStockThreshold int             `json:"low_stock_threshold" gorm:"not null;default:10"`
	Barcode           *string         `json:"barcode" gorm:"size:100;uniqueIndex"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`

	// Derived fields, recomputed on every load and after reconciliation.
	IsLowStock bool            `json:"is_low_stock" gorm:"-"`
	TotalValue decimal.Decimal `json:"total_value" gorm:"-"`

	// Relations
	Category Category  `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Supplier *Supplier `json:"supplier,omitempty" gorm:"foreignKey:SupplierID"`
}

// BeforeCreate sets UUID before creating the record.
func (i *InventoryItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// AfterFind keeps the derived fields consistent with the stored columns.
func (i *InventoryItem) AfterFind(tx *gorm.DB) error {
	i.Recompute()
	return nil
}

// Recompute refreshes IsLowStock and TotalValue from quantity, threshold and price.
func (i *InventoryItem) Recompute() {
	i.IsLowStock = i.Quantity <= i.LowStockThreshold
	i.TotalValue = i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
