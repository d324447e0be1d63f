package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile carries business and contact metadata for a user.
// Exactly one profile exists per user; it is created in the same
// transaction as the user itself.
type Profile struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID       uuid.UUID `json:"user_id" gorm:"type:char(36);uniqueIndex;not null"`
	PhoneNumber  *string   `json:"phone_number" gorm:"size:15;uniqueIndex"`
	CompanyName  string    `json:"company_name" gorm:"size:200"`
	Address      string    `json:"address" gorm:"type:text"`
	Website      string    `json:"website" gorm:"size:255"`
	City         string    `json:"city" gorm:"size:100"`
	State        string    `json:"state" gorm:"size:100"`
	Country      string    `json:"country" gorm:"size:100"`
	PostalCode   string    `json:"postal_code" gorm:"size:20"`
	TaxID        string    `json:"tax_id" gorm:"size:100"`
	BusinessType string    `json:"business_type" gorm:"size:100"`
	About        string    `json:"about" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
