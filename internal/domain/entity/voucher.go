package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentVoucher represents a driver trip payment voucher. The stored totals
// follow the levy rule: the deduction is a percentage of the trip prices
// only, never of the pickup/return fees.
type PaymentVoucher struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	VoucherNumber string     `gorm:"size:100;unique;not null" json:"voucher_number"`
	DriverID      *uuid.UUID `gorm:"type:uuid;index" json:"driver_id,omitempty"`
	IssueDate     time.Time  `gorm:"type:date;not null" json:"issue_date"`
	Notes         *string    `gorm:"type:text" json:"notes,omitempty"`

	Subtotal          float64 `gorm:"type:decimal(18,6);default:0" json:"subtotal"`
	TotalPricePerTrip float64 `gorm:"type:decimal(18,6);default:0" json:"total_price_per_trip"`
	TotalAdvance      float64 `gorm:"type:decimal(18,6);default:0" json:"total_advance"`
	TotalPickupReturn float64 `gorm:"type:decimal(18,6);default:0" json:"total_pickup_return"`
	Deduction         float64 `gorm:"type:decimal(18,6);default:0" json:"deduction"`
	NetAmount         float64 `gorm:"type:decimal(18,6);default:0" json:"net_amount"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Driver *Driver              `gorm:"foreignKey:DriverID" json:"driver,omitempty"`
	Items  []PaymentVoucherItem `gorm:"foreignKey:VoucherID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new payment voucher
func (v *PaymentVoucher) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PaymentVoucher model
func (PaymentVoucher) TableName() string {
	return "payment_vouchers"
}

// PaymentVoucherItem represents one trip line on a payment voucher
type PaymentVoucherItem struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	VoucherID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"voucher_id"`
	Position        int            `gorm:"default:0" json:"position"`
	ItemDate        *time.Time     `gorm:"type:date" json:"item_date,omitempty"`
	Description     string         `gorm:"size:500" json:"description"`
	Size            *string        `gorm:"size:50" json:"size,omitempty"`
	PricePerTrip    float64        `gorm:"type:decimal(18,6);default:0" json:"price_per_trip"`
	AdvancePayment  float64        `gorm:"type:decimal(18,6);default:0" json:"advance_payment"`
	PickupReturnFee float64        `gorm:"type:decimal(18,6);default:0" json:"pickup_return_fee"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Voucher PaymentVoucher `gorm:"foreignKey:VoucherID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new voucher item
func (vi *PaymentVoucherItem) BeforeCreate(tx *gorm.DB) error {
	if vi.ID == uuid.Nil {
		vi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PaymentVoucherItem model
func (PaymentVoucherItem) TableName() string {
	return "payment_voucher_items"
}
