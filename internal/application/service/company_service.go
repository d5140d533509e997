package service

import (
	"context"

	"github.com/siamtrans/backoffice-api/internal/domain/entity"
	"github.com/siamtrans/backoffice-api/internal/domain/repository"
)

// CompanyService handles the company info singleton
type CompanyService struct {
	companyRepo repository.CompanyRepository
}

// NewCompanyService creates a new company service
func NewCompanyService(companyRepo repository.CompanyRepository) *CompanyService {
	return &CompanyService{companyRepo: companyRepo}
}

// CompanyInput represents the company info input
type CompanyInput struct {
	Name          string
	Address       *string
	TaxID         *string
	Phone         *string
	Email         *string
	LogoPath      *string
	SignaturePath *string
}

// GetCompanyInfo returns the company info, or an empty record when none has
// been saved yet
func (s *CompanyService) GetCompanyInfo(ctx context.Context) (*entity.CompanyInfo, error) {
	info, err := s.companyRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return &entity.CompanyInfo{}, nil
	}
	return info, nil
}

// SaveCompanyInfo creates the company info on first write and updates it
// afterwards
func (s *CompanyService) SaveCompanyInfo(ctx context.Context, input *CompanyInput) (*entity.CompanyInfo, error) {
	info, err := s.companyRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if info == nil {
		info = &entity.CompanyInfo{}
	}

	info.Name = input.Name
	info.Address = input.Address
	info.TaxID = input.TaxID
	info.Phone = input.Phone
	info.Email = input.Email
	info.LogoPath = input.LogoPath
	info.SignaturePath = input.SignaturePath

	if err := s.companyRepo.Save(ctx, info); err != nil {
		return nil, err
	}

	return info, nil
}
