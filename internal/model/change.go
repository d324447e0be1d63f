package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChangeType classifies a stock movement.
type ChangeType string

const (
	ChangeTypeRestock ChangeType = "RESTOCK"
	ChangeTypeSale    ChangeType = "SALE"
	ChangeTypeReturn  ChangeType = "RETURN"
	ChangeTypeDamage  ChangeType = "DAMAGE"
)

// Decreases reports whether this change type removes stock.
func (t ChangeType) Decreases() bool {
	return t == ChangeTypeSale || t == ChangeTypeDamage
}

// InitialStockReason marks the auto-generated change written when an
// item is created with a starting quantity.
const InitialStockReason = "Initial stock entry"

// InventoryChange is an immutable audit record of a stock movement.
// QuantityChange is a signed delta; reconciliation adds it to the
// item's previous quantity. There are no update or delete routes.
type InventoryChange struct {
	ID               uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	ItemID           uuid.UUID  `json:"item_id" gorm:"type:char(36);not null;index"`
	UserID           *uuid.UUID `json:"user_id" gorm:"type:char(36);index"`
	ChangeType       ChangeType `json:"change_type" gorm:"type:varchar(20);not null;index"`
	QuantityChange   int        `json:"quantity_change" gorm:"not null"`
	PreviousQuantity int        `json:"previous_quantity" gorm:"not null;default:0"`
	NewQuantity      int        `json:"new_quantity" gorm:"not null;default:0"`
	Reason           string     `json:"reason" gorm:"type:text"`
	ChangeDate       time.Time  `json:"change_date" gorm:"autoCreateTime;index"`

	// ItemName is projected from the preloaded item for responses.
	ItemName string `json:"item_name" gorm:"-"`

	// Relations
	Item InventoryItem `json:"-" gorm:"foreignKey:ItemID"`
}

// AfterFind projects the item name when the relation is preloaded.
func (c *InventoryChange) AfterFind(tx *gorm.DB) error {
	c.ItemName = c.Item.Name
	return nil
}

// BeforeCreate sets UUID before creating the record.
func (c *InventoryChange) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// IsInitialStockEntry reports whether this is the auto-generated first restock.
func (c *InventoryChange) IsInitialStockEntry() bool {
	return c.ChangeType == ChangeTypeRestock && c.Reason == InitialStockReason
}
