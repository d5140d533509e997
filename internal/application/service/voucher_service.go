package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/siamtrans/backoffice-api/internal/domain/entity"
	"github.com/siamtrans/backoffice-api/internal/domain/repository"
	"github.com/siamtrans/backoffice-api/pkg/apperror"
	"github.com/siamtrans/backoffice-api/pkg/pagination"
	"github.com/siamtrans/backoffice-api/pkg/totals"
)

// VoucherService handles driver payment voucher operations
type VoucherService struct {
	voucherRepo repository.VoucherRepository
	itemRepo    repository.VoucherItemRepository
	driverRepo  repository.DriverRepository
	calc        totals.Calculator
}

// NewVoucherService creates a new voucher service
func NewVoucherService(
	voucherRepo repository.VoucherRepository,
	itemRepo repository.VoucherItemRepository,
	driverRepo repository.DriverRepository,
	calc totals.Calculator,
) *VoucherService {
	return &VoucherService{
		voucherRepo: voucherRepo,
		itemRepo:    itemRepo,
		driverRepo:  driverRepo,
		calc:        calc,
	}
}

// applyTotals recomputes the voucher totals from its trip lines. The levy
// deduction applies to trip prices only.
func (s *VoucherService) applyTotals(voucher *entity.PaymentVoucher) {
	lineItems := make([]totals.VoucherItem, 0, len(voucher.Items))
	for i := range voucher.Items {
		voucher.Items[i].Position = i + 1
		lineItems = append(lineItems, totals.VoucherItem{
			PricePerTrip:    voucher.Items[i].PricePerTrip,
			AdvancePayment:  voucher.Items[i].AdvancePayment,
			PickupReturnFee: voucher.Items[i].PickupReturnFee,
		})
	}

	computed := s.calc.Voucher(lineItems)
	voucher.Subtotal = computed.Subtotal
	voucher.TotalPricePerTrip = computed.TotalPricePerTrip
	voucher.TotalAdvance = computed.TotalAdvance
	voucher.TotalPickupReturn = computed.TotalPickupReturn
	voucher.Deduction = computed.Deduction
	voucher.NetAmount = computed.NetAmount
}

// CreateVoucher creates a new payment voucher. A blank voucher number is
// generated from the sequence.
func (s *VoucherService) CreateVoucher(ctx context.Context, voucher *entity.PaymentVoucher) (*entity.PaymentVoucher, error) {
	if voucher.DriverID != nil {
		driver, err := s.driverRepo.GetByID(ctx, *voucher.DriverID)
		if err != nil {
			return nil, err
		}
		if driver == nil {
			return nil, apperror.NewNotFoundError("Driver")
		}
	}

	if voucher.VoucherNumber == "" {
		nextNum, err := s.voucherRepo.GetNextReferenceNumber(ctx)
		if err != nil {
			return nil, err
		}
		voucher.VoucherNumber = fmt.Sprintf("PV-%06d", nextNum)
	}

	s.applyTotals(voucher)

	items := voucher.Items
	voucher.Items = nil

	if err := s.voucherRepo.Create(ctx, voucher); err != nil {
		return nil, err
	}

	for i := range items {
		items[i].VoucherID = voucher.ID
	}
	if err := s.itemRepo.CreateBatch(ctx, items); err != nil {
		return nil, err
	}

	return s.voucherRepo.GetWithItems(ctx, voucher.ID)
}

// GetVoucher retrieves a payment voucher with its trip lines
func (s *VoucherService) GetVoucher(ctx context.Context, id uuid.UUID) (*entity.PaymentVoucher, error) {
	voucher, err := s.voucherRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if voucher == nil {
		return nil, apperror.NewNotFoundError("Payment voucher")
	}
	return voucher, nil
}

// ListVouchersInput represents the input for listing payment vouchers
type ListVouchersInput struct {
	Pagination *pagination.PaginationParams
	Search     string
	DriverID   *uuid.UUID
}

// ListVouchers lists payment vouchers with filtering
func (s *VoucherService) ListVouchers(ctx context.Context, input *ListVouchersInput) (*pagination.PaginatedResult[entity.PaymentVoucher], error) {
	params := &repository.VoucherFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		DriverID:   input.DriverID,
	}

	vouchers, total, err := s.voucherRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(vouchers, pag), nil
}

// UpdateVoucher replaces the editable fields and trip lines of an existing
// voucher. Trip lines are recreated wholesale.
func (s *VoucherService) UpdateVoucher(ctx context.Context, id uuid.UUID, updated *entity.PaymentVoucher) (*entity.PaymentVoucher, error) {
	voucher, err := s.voucherRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if voucher == nil {
		return nil, apperror.NewNotFoundError("Payment voucher")
	}

	if updated.DriverID != nil {
		driver, err := s.driverRepo.GetByID(ctx, *updated.DriverID)
		if err != nil {
			return nil, err
		}
		if driver == nil {
			return nil, apperror.NewNotFoundError("Driver")
		}
	}

	if updated.VoucherNumber != "" {
		voucher.VoucherNumber = updated.VoucherNumber
	}
	voucher.DriverID = updated.DriverID
	voucher.IssueDate = updated.IssueDate
	voucher.Notes = updated.Notes
	voucher.Items = updated.Items

	s.applyTotals(voucher)

	items := voucher.Items
	voucher.Items = nil

	if err := s.voucherRepo.Update(ctx, voucher); err != nil {
		return nil, err
	}

	// Delete existing trip lines and create new ones
	if err := s.itemRepo.DeleteByVoucherID(ctx, voucher.ID); err != nil {
		return nil, err
	}
	for i := range items {
		items[i].ID = uuid.Nil
		items[i].VoucherID = voucher.ID
	}
	if err := s.itemRepo.CreateBatch(ctx, items); err != nil {
		return nil, err
	}

	return s.voucherRepo.GetWithItems(ctx, voucher.ID)
}

// DeleteVoucher deletes a payment voucher and its trip lines
func (s *VoucherService) DeleteVoucher(ctx context.Context, id uuid.UUID) error {
	voucher, err := s.voucherRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if voucher == nil {
		return apperror.NewNotFoundError("Payment voucher")
	}

	if err := s.itemRepo.DeleteByVoucherID(ctx, id); err != nil {
		return err
	}

	return s.voucherRepo.Delete(ctx, id)
}
