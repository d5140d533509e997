package entity

import "time"

// ClientBlob is a string-keyed JSON blob. The back-office UI keeps its
// lighter modules (bookings, job orders, expenses) as whole-collection blobs
// and syncs them through the store endpoints, so the server treats the value
// as opaque JSON.
type ClientBlob struct {
	Key       string    `gorm:"size:255;primaryKey" json:"key"`
	Value     string    `gorm:"type:jsonb;not null;default:'{}'" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the ClientBlob model
func (ClientBlob) TableName() string {
	return "client_blobs"
}
