package repository

import (
	"context"

	"github.com/siamtrans/backoffice-api/internal/domain/entity"
)

// CompanyRepository defines the interface for the company info singleton
type CompanyRepository interface {
	// Get returns the single company info row, or nil when none exists yet
	Get(ctx context.Context) (*entity.CompanyInfo, error)
	// Save creates the row on first write and updates it afterwards
	Save(ctx context.Context, info *entity.CompanyInfo) error
}
