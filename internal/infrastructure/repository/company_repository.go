package repository

import (
	"context"
	"errors"

	"github.com/siamtrans/backoffice-api/internal/domain/entity"
	domainRepo "github.com/siamtrans/backoffice-api/internal/domain/repository"
	"gorm.io/gorm"
)

type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company info repository
func NewCompanyRepository(db *gorm.DB) domainRepo.CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Get(ctx context.Context) (*entity.CompanyInfo, error) {
	var info entity.CompanyInfo
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&info).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &info, err
}

func (r *companyRepository) Save(ctx context.Context, info *entity.CompanyInfo) error {
	return r.db.WithContext(ctx).Save(info).Error
}
