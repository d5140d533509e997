package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vehicle represents a truck or trailer in the fleet registry
type Vehicle struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	PlateNumber string         `gorm:"size:50;unique;not null" json:"plate_number"`
	Province    *string        `gorm:"size:100" json:"province,omitempty"`
	VehicleType *string        `gorm:"size:100" json:"vehicle_type,omitempty"`
	Size        *string        `gorm:"size:50" json:"size,omitempty"`
	Brand       *string        `gorm:"size:100" json:"brand,omitempty"`
	Notes       *string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new vehicle
func (v *Vehicle) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Vehicle model
func (Vehicle) TableName() string {
	return "vehicles"
}
