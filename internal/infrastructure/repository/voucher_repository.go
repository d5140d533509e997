package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/siamtrans/backoffice-api/internal/domain/entity"
	domainRepo "github.com/siamtrans/backoffice-api/internal/domain/repository"
	"gorm.io/gorm"
)

type voucherRepository struct {
	db *gorm.DB
}

// NewVoucherRepository creates a new payment voucher repository
func NewVoucherRepository(db *gorm.DB) domainRepo.VoucherRepository {
	return &voucherRepository{db: db}
}

func (r *voucherRepository) Create(ctx context.Context, voucher *entity.PaymentVoucher) error {
	return r.db.WithContext(ctx).Create(voucher).Error
}

func (r *voucherRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.PaymentVoucher, error) {
	var voucher entity.PaymentVoucher
	err := r.db.WithContext(ctx).
		Preload("Driver").
		First(&voucher, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &voucher, err
}

func (r *voucherRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.PaymentVoucher, error) {
	var voucher entity.PaymentVoucher
	err := r.db.WithContext(ctx).
		Preload("Driver").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&voucher, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &voucher, err
}

func (r *voucherRepository) Update(ctx context.Context, voucher *entity.PaymentVoucher) error {
	return r.db.WithContext(ctx).Omit("Items", "Driver").Save(voucher).Error
}

func (r *voucherRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.PaymentVoucher{}, "id = ?", id).Error
}

func (r *voucherRepository) List(ctx context.Context, params *domainRepo.VoucherFilterParams) ([]entity.PaymentVoucher, int64, error) {
	var vouchers []entity.PaymentVoucher
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.PaymentVoucher{})

	if params.Search != "" {
		query = query.
			Joins("LEFT JOIN drivers ON drivers.id = payment_vouchers.driver_id").
			Where("payment_vouchers.voucher_number ILIKE ? OR drivers.name ILIKE ?",
				"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.DriverID != nil {
		query = query.Where("payment_vouchers.driver_id = ?", *params.DriverID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Driver").
		Order("payment_vouchers.issue_date DESC, payment_vouchers.created_at DESC").
		Find(&vouchers).Error

	return vouchers, total, err
}

func (r *voucherRepository) GetNextReferenceNumber(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.PaymentVoucher{}).Count(&count).Error
	return int(count) + 1, err
}

type voucherItemRepository struct {
	db *gorm.DB
}

// NewVoucherItemRepository creates a new voucher item repository
func NewVoucherItemRepository(db *gorm.DB) domainRepo.VoucherItemRepository {
	return &voucherItemRepository{db: db}
}

func (r *voucherItemRepository) Create(ctx context.Context, item *entity.PaymentVoucherItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *voucherItemRepository) CreateBatch(ctx context.Context, items []entity.PaymentVoucherItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *voucherItemRepository) GetByVoucherID(ctx context.Context, voucherID uuid.UUID) ([]entity.PaymentVoucherItem, error) {
	var items []entity.PaymentVoucherItem
	err := r.db.WithContext(ctx).
		Where("voucher_id = ?", voucherID).
		Order("position ASC").
		Find(&items).Error
	return items, err
}

func (r *voucherItemRepository) DeleteByVoucherID(ctx context.Context, voucherID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.PaymentVoucherItem{}, "voucher_id = ?", voucherID).Error
}
