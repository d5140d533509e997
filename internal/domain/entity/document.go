package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/siamtrans/backoffice-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Document represents a financial document: quotation, invoice or receipt.
// The three kinds share one table, discriminated by Type. The document number
// is unique per type. A quotation and its mirrored invoice share the same
// number, which is the key of the mirror relationship.
type Document struct {
	ID                    uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	Type                  enum.DocumentType   `gorm:"not null;uniqueIndex:idx_documents_type_number;default:0" json:"type"`
	DocNumber             string              `gorm:"size:100;not null;uniqueIndex:idx_documents_type_number;column:doc_number" json:"doc_number"`
	CustomerID            *uuid.UUID          `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	IssueDate             time.Time           `gorm:"type:date;not null" json:"issue_date"`
	DueDate               *time.Time          `gorm:"type:date" json:"due_date,omitempty"`
	IncludeVAT            bool                `gorm:"column:include_vat;default:false" json:"include_vat"`
	WithholdingTaxPercent float64             `gorm:"type:decimal(5,2);default:0" json:"withholding_tax_percent"`
	Status                enum.DocumentStatus `gorm:"default:0" json:"status"`
	Notes                 *string             `gorm:"type:text" json:"notes,omitempty"`
	InternalNotes         *string             `gorm:"type:text" json:"internal_notes,omitempty"`

	// Stored totals. Recomputed from the items on every save; never trusted
	// from client input.
	Subtotal           float64 `gorm:"type:decimal(18,6);default:0" json:"subtotal"`
	TotalDiscount      float64 `gorm:"type:decimal(18,6);default:0" json:"total_discount"`
	PriceAfterDiscount float64 `gorm:"type:decimal(18,6);default:0" json:"price_after_discount"`
	VATAmount          float64 `gorm:"type:decimal(18,6);default:0;column:vat_amount" json:"vat_amount"`
	WithholdingAmount  float64 `gorm:"type:decimal(18,6);default:0" json:"withholding_amount"`
	GrandTotal         float64 `gorm:"type:decimal(18,6);default:0" json:"grand_total"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Customer *Customer      `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []DocumentItem `gorm:"foreignKey:DocumentID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new document
func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Document model
func (Document) TableName() string {
	return "documents"
}

// DocumentItem represents a line item in a financial document. Items are
// owned by their document and recreated wholesale on each save.
type DocumentItem struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	DocumentID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"document_id"`
	Position        int            `gorm:"default:0" json:"position"`
	Description     string         `gorm:"size:500" json:"description"`
	Details         *string        `gorm:"type:text" json:"details,omitempty"`
	Quantity        float64        `gorm:"type:decimal(12,3);default:0" json:"quantity"`
	Unit            string         `gorm:"size:50" json:"unit"`
	UnitPrice       float64        `gorm:"type:decimal(18,6);default:0" json:"unit_price"`
	DiscountPercent float64        `gorm:"type:decimal(5,2);default:0" json:"discount_percent"`
	Amount          float64        `gorm:"type:decimal(18,6);default:0" json:"amount"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Document Document `gorm:"foreignKey:DocumentID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new document item
func (di *DocumentItem) BeforeCreate(tx *gorm.DB) error {
	if di.ID == uuid.Nil {
		di.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DocumentItem model
func (DocumentItem) TableName() string {
	return "document_items"
}
