package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/siamtrans/backoffice-api/internal/domain/entity"
	"github.com/siamtrans/backoffice-api/internal/domain/repository"
	"github.com/siamtrans/backoffice-api/pkg/apperror"
	"github.com/siamtrans/backoffice-api/pkg/pagination"
)

// DriverService handles driver-related operations
type DriverService struct {
	driverRepo repository.DriverRepository
}

// NewDriverService creates a new driver service
func NewDriverService(driverRepo repository.DriverRepository) *DriverService {
	return &DriverService{driverRepo: driverRepo}
}

// DriverInput represents the create/update driver input
type DriverInput struct {
	Name          string
	NationalID    *string
	LicenseNo     *string
	Phone         *string
	Address       *string
	AccountHolder *string
	AccountNumber *string
	BankName      *string
}

// CreateDriver creates a new driver
func (s *DriverService) CreateDriver(ctx context.Context, input *DriverInput) (*entity.Driver, error) {
	driver := &entity.Driver{
		Name:          input.Name,
		NationalID:    input.NationalID,
		LicenseNo:     input.LicenseNo,
		Phone:         input.Phone,
		Address:       input.Address,
		AccountHolder: input.AccountHolder,
		AccountNumber: input.AccountNumber,
		BankName:      input.BankName,
	}

	if err := s.driverRepo.Create(ctx, driver); err != nil {
		return nil, err
	}

	return driver, nil
}

// GetDriver retrieves a driver by ID
func (s *DriverService) GetDriver(ctx context.Context, id uuid.UUID) (*entity.Driver, error) {
	driver, err := s.driverRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, apperror.NewNotFoundError("Driver")
	}
	return driver, nil
}

// ListDrivers lists drivers with optional name/phone/license search
func (s *DriverService) ListDrivers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Driver], error) {
	drivers, total, err := s.driverRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(drivers, pag), nil
}

// UpdateDriver updates an existing driver
func (s *DriverService) UpdateDriver(ctx context.Context, id uuid.UUID, input *DriverInput) (*entity.Driver, error) {
	driver, err := s.driverRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, apperror.NewNotFoundError("Driver")
	}

	driver.Name = input.Name
	driver.NationalID = input.NationalID
	driver.LicenseNo = input.LicenseNo
	driver.Phone = input.Phone
	driver.Address = input.Address
	driver.AccountHolder = input.AccountHolder
	driver.AccountNumber = input.AccountNumber
	driver.BankName = input.BankName

	if err := s.driverRepo.Update(ctx, driver); err != nil {
		return nil, err
	}

	return driver, nil
}

// DeleteDriver deletes a driver
func (s *DriverService) DeleteDriver(ctx context.Context, id uuid.UUID) error {
	driver, err := s.driverRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if driver == nil {
		return apperror.NewNotFoundError("Driver")
	}

	return s.driverRepo.Delete(ctx, id)
}
