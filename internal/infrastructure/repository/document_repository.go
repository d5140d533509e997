package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/siamtrans/backoffice-api/internal/domain/entity"
	"github.com/siamtrans/backoffice-api/internal/domain/enum"
	domainRepo "github.com/siamtrans/backoffice-api/internal/domain/repository"
	"gorm.io/gorm"
)

type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB) domainRepo.DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(ctx context.Context, doc *entity.Document) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *documentRepository) GetByID(ctx context.Context, docType enum.DocumentType, id uuid.UUID) (*entity.Document, error) {
	var doc entity.Document
	err := r.db.WithContext(ctx).
		Preload("Customer").
		First(&doc, "type = ? AND id = ?", docType, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &doc, err
}

func (r *documentRepository) GetByDocNumber(ctx context.Context, docType enum.DocumentType, docNumber string) (*entity.Document, error) {
	var doc entity.Document
	err := r.db.WithContext(ctx).
		First(&doc, "type = ? AND doc_number = ?", docType, docNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &doc, err
}

func (r *documentRepository) GetWithItems(ctx context.Context, docType enum.DocumentType, id uuid.UUID) (*entity.Document, error) {
	var doc entity.Document
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&doc, "type = ? AND id = ?", docType, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &doc, err
}

func (r *documentRepository) Update(ctx context.Context, doc *entity.Document) error {
	return r.db.WithContext(ctx).Omit("Items", "Customer").Save(doc).Error
}

func (r *documentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.DocumentStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Document{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *documentRepository) Delete(ctx context.Context, docType enum.DocumentType, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Document{}, "type = ? AND id = ?", docType, id).Error
}

func (r *documentRepository) List(ctx context.Context, docType enum.DocumentType, params *domainRepo.DocumentFilterParams) ([]entity.Document, int64, error) {
	var docs []entity.Document
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Document{}).
		Where("type = ?", docType)

	if params.DocNumber != "" {
		query = query.Where("doc_number = ?", params.DocNumber)
	}

	if params.Search != "" {
		query = query.
			Joins("LEFT JOIN customers ON customers.id = documents.customer_id").
			Where("documents.doc_number ILIKE ? OR customers.name ILIKE ?",
				"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Status != nil {
		query = query.Where("documents.status = ?", *params.Status)
	}

	if params.CustomerID != nil {
		query = query.Where("documents.customer_id = ?", *params.CustomerID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Customer").
		Order("documents.issue_date DESC, documents.created_at DESC").
		Find(&docs).Error

	return docs, total, err
}

func (r *documentRepository) GetNextReferenceNumber(ctx context.Context, docType enum.DocumentType) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Document{}).
		Where("type = ?", docType).
		Count(&count).Error
	return int(count) + 1, err
}

type documentItemRepository struct {
	db *gorm.DB
}

// NewDocumentItemRepository creates a new document item repository
func NewDocumentItemRepository(db *gorm.DB) domainRepo.DocumentItemRepository {
	return &documentItemRepository{db: db}
}

func (r *documentItemRepository) Create(ctx context.Context, item *entity.DocumentItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *documentItemRepository) CreateBatch(ctx context.Context, items []entity.DocumentItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *documentItemRepository) GetByDocumentID(ctx context.Context, documentID uuid.UUID) ([]entity.DocumentItem, error) {
	var items []entity.DocumentItem
	err := r.db.WithContext(ctx).
		Where("document_id = ?", documentID).
		Order("position ASC").
		Find(&items).Error
	return items, err
}

func (r *documentItemRepository) DeleteByDocumentID(ctx context.Context, documentID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.DocumentItem{}, "document_id = ?", documentID).Error
}
