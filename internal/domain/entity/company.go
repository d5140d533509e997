package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyInfo holds the company letterhead used on printed documents. The
// table holds a single row, upserted through the company endpoint.
// Logo and signature are stored as paths only; upload handling lives outside
// this service.
type CompanyInfo struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name          string    `gorm:"size:255" json:"name"`
	Address       *string   `gorm:"type:text" json:"address,omitempty"`
	TaxID         *string   `gorm:"size:50;column:tax_id" json:"tax_id,omitempty"`
	Phone         *string   `gorm:"size:50" json:"phone,omitempty"`
	Email         *string   `gorm:"size:255" json:"email,omitempty"`
	LogoPath      *string   `gorm:"size:255" json:"logo_path,omitempty"`
	SignaturePath *string   `gorm:"size:255" json:"signature_path,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating company info
func (c *CompanyInfo) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CompanyInfo model
func (CompanyInfo) TableName() string {
	return "company_info"
}
