package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/siamtrans/backoffice-api/internal/domain/entity"
	"github.com/siamtrans/backoffice-api/internal/domain/enum"
	"github.com/siamtrans/backoffice-api/pkg/pagination"
)

// DocumentFilterParams contains filtering parameters for document queries.
// DocNumber supports the mirror lookup (?invoice_number=...) with an exact
// match; Search matches loosely on number and customer name.
type DocumentFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	DocNumber  string
	Status     *enum.DocumentStatus
	CustomerID *uuid.UUID
}

// DocumentRepository defines the interface for financial document data
// operations. All methods operate within one document type; the quotation
// and its mirrored invoice are two independent rows.
type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.Document) error
	GetByID(ctx context.Context, docType enum.DocumentType, id uuid.UUID) (*entity.Document, error)
	GetByDocNumber(ctx context.Context, docType enum.DocumentType, docNumber string) (*entity.Document, error)
	GetWithItems(ctx context.Context, docType enum.DocumentType, id uuid.UUID) (*entity.Document, error)
	Update(ctx context.Context, doc *entity.Document) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.DocumentStatus) error
	Delete(ctx context.Context, docType enum.DocumentType, id uuid.UUID) error
	List(ctx context.Context, docType enum.DocumentType, params *DocumentFilterParams) ([]entity.Document, int64, error)
	GetNextReferenceNumber(ctx context.Context, docType enum.DocumentType) (int, error)
}

// DocumentItemRepository defines the interface for document line item
// operations. Items are recreated wholesale on each document save.
type DocumentItemRepository interface {
	Create(ctx context.Context, item *entity.DocumentItem) error
	CreateBatch(ctx context.Context, items []entity.DocumentItem) error
	GetByDocumentID(ctx context.Context, documentID uuid.UUID) ([]entity.DocumentItem, error)
	DeleteByDocumentID(ctx context.Context, documentID uuid.UUID) error
}
