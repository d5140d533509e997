package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/siamtrans/backoffice-api/internal/domain/entity"
	"github.com/siamtrans/backoffice-api/pkg/pagination"
)

// VoucherFilterParams contains filtering parameters for voucher queries
type VoucherFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	DriverID   *uuid.UUID
}

// VoucherRepository defines the interface for payment voucher data operations
type VoucherRepository interface {
	Create(ctx context.Context, voucher *entity.PaymentVoucher) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PaymentVoucher, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.PaymentVoucher, error)
	Update(ctx context.Context, voucher *entity.PaymentVoucher) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *VoucherFilterParams) ([]entity.PaymentVoucher, int64, error)
	GetNextReferenceNumber(ctx context.Context) (int, error)
}

// VoucherItemRepository defines the interface for voucher line item operations
type VoucherItemRepository interface {
	Create(ctx context.Context, item *entity.PaymentVoucherItem) error
	CreateBatch(ctx context.Context, items []entity.PaymentVoucherItem) error
	GetByVoucherID(ctx context.Context, voucherID uuid.UUID) ([]entity.PaymentVoucherItem, error)
	DeleteByVoucherID(ctx context.Context, voucherID uuid.UUID) error
}
