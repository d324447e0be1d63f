package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Supplier provides inventory items. Owned by the user who created it;
// admin-created suppliers have no owner. Deleting a supplier deletes
// the items it supplies.
type Supplier struct {
	ID            uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	UserID        *uuid.UUID `json:"user_id" gorm:"type:char(36);index"`
	Name          string     `json:"name" gorm:"uniqueIndex;size:200;not null"`
	ContactPerson string     `json:"contact_person" gorm:"size:100"`
	Email         string     `json:"email" gorm:"uniqueIndex;size:255"`
	PhoneNumber   *string    `json:"phone_number" gorm:"size:15;uniqueIndex"`
	Address       string     `json:"address" gorm:"type:text"`
	City          string     `json:"city" gorm:"size:100"`
	State         string     `json:"state" gorm:"size:100"`
	Country       string     `json:"country" gorm:"size:100"`
	PostalCode    string     `json:"postal_code" gorm:"size:20"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	// Relations
	Items []InventoryItem `json:"items,omitempty" gorm:"foreignKey:SupplierID"`
}

// BeforeCreate sets UUID before creating the record.
func (s *Supplier) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
