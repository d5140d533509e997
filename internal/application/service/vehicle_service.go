package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/siamtrans/backoffice-api/internal/domain/entity"
	"github.com/siamtrans/backoffice-api/internal/domain/repository"
	"github.com/siamtrans/backoffice-api/pkg/apperror"
	"github.com/siamtrans/backoffice-api/pkg/pagination"
)

// VehicleService handles vehicle-related operations
type VehicleService struct {
	vehicleRepo repository.VehicleRepository
}

// NewVehicleService creates a new vehicle service
func NewVehicleService(vehicleRepo repository.VehicleRepository) *VehicleService {
	return &VehicleService{vehicleRepo: vehicleRepo}
}

// VehicleInput represents the create/update vehicle input
type VehicleInput struct {
	PlateNumber string
	Province    *string
	VehicleType *string
	Size        *string
	Brand       *string
	Notes       *string
}

// CreateVehicle creates a new vehicle. Plate numbers are unique.
func (s *VehicleService) CreateVehicle(ctx context.Context, input *VehicleInput) (*entity.Vehicle, error) {
	existing, err := s.vehicleRepo.GetByPlateNumber(ctx, input.PlateNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError(fmt.Sprintf("Vehicle with plate number %s already exists", input.PlateNumber))
	}

	vehicle := &entity.Vehicle{
		PlateNumber: input.PlateNumber,
		Province:    input.Province,
		VehicleType: input.VehicleType,
		Size:        input.Size,
		Brand:       input.Brand,
		Notes:       input.Notes,
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, err
	}

	return vehicle, nil
}

// GetVehicle retrieves a vehicle by ID
func (s *VehicleService) GetVehicle(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, apperror.NewNotFoundError("Vehicle")
	}
	return vehicle, nil
}

// ListVehicles lists vehicles with optional plate/brand/type search
func (s *VehicleService) ListVehicles(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Vehicle], error) {
	vehicles, total, err := s.vehicleRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(vehicles, pag), nil
}

// UpdateVehicle updates an existing vehicle
func (s *VehicleService) UpdateVehicle(ctx context.Context, id uuid.UUID, input *VehicleInput) (*entity.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, apperror.NewNotFoundError("Vehicle")
	}

	if input.PlateNumber != vehicle.PlateNumber {
		existing, err := s.vehicleRepo.GetByPlateNumber(ctx, input.PlateNumber)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError(fmt.Sprintf("Vehicle with plate number %s already exists", input.PlateNumber))
		}
	}

	vehicle.PlateNumber = input.PlateNumber
	vehicle.Province = input.Province
	vehicle.VehicleType = input.VehicleType
	vehicle.Size = input.Size
	vehicle.Brand = input.Brand
	vehicle.Notes = input.Notes

	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, err
	}

	return vehicle, nil
}

// DeleteVehicle deletes a vehicle
func (s *VehicleService) DeleteVehicle(ctx context.Context, id uuid.UUID) error {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if vehicle == nil {
		return apperror.NewNotFoundError("Vehicle")
	}

	return s.vehicleRepo.Delete(ctx, id)
}
