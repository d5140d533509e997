package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/siamtrans/backoffice-api/internal/domain/entity"
	"github.com/siamtrans/backoffice-api/internal/domain/enum"
	"github.com/siamtrans/backoffice-api/internal/domain/repository"
	"github.com/siamtrans/backoffice-api/pkg/apperror"
	"github.com/siamtrans/backoffice-api/pkg/email"
	"github.com/siamtrans/backoffice-api/pkg/pagination"
	"github.com/siamtrans/backoffice-api/pkg/totals"
)

// DocumentService handles quotation, invoice and receipt operations
type DocumentService struct {
	docRepo      repository.DocumentRepository
	itemRepo     repository.DocumentItemRepository
	customerRepo repository.CustomerRepository
	companyRepo  repository.CompanyRepository
	calc         totals.Calculator
	emailService *email.EmailService
}

// NewDocumentService creates a new document service. emailService may be nil
// when SMTP is not configured; sending then degrades to a status change only.
func NewDocumentService(
	docRepo repository.DocumentRepository,
	itemRepo repository.DocumentItemRepository,
	customerRepo repository.CustomerRepository,
	companyRepo repository.CompanyRepository,
	calc totals.Calculator,
	emailService *email.EmailService,
) *DocumentService {
	return &DocumentService{
		docRepo:      docRepo,
		itemRepo:     itemRepo,
		customerRepo: customerRepo,
		companyRepo:  companyRepo,
		calc:         calc,
		emailService: emailService,
	}
}

// applyTotals recomputes every derived amount on the document from its line
// items. Stored totals are never trusted from the client.
func (s *DocumentService) applyTotals(doc *entity.Document) {
	lineItems := make([]totals.LineItem, 0, len(doc.Items))
	for i := range doc.Items {
		doc.Items[i].Position = i + 1
		doc.Items[i].Amount = totals.LineAmount(totals.LineItem{
			Quantity:        doc.Items[i].Quantity,
			UnitPrice:       doc.Items[i].UnitPrice,
			DiscountPercent: doc.Items[i].DiscountPercent,
		})
		lineItems = append(lineItems, totals.LineItem{
			Quantity:        doc.Items[i].Quantity,
			UnitPrice:       doc.Items[i].UnitPrice,
			DiscountPercent: doc.Items[i].DiscountPercent,
		})
	}

	computed := s.calc.Document(lineItems, doc.IncludeVAT, doc.WithholdingTaxPercent)
	doc.Subtotal = computed.Subtotal
	doc.TotalDiscount = computed.TotalDiscount
	doc.PriceAfterDiscount = computed.PriceAfterDiscount
	doc.VATAmount = computed.VAT
	doc.WithholdingAmount = computed.WithholdingAmount
	doc.GrandTotal = computed.GrandTotal
}

// CreateDocument creates a new document of the given type. A blank document
// number is generated from the per-type sequence. Statuses not reachable from
// the type's initial state fall back to it; later states go through the
// status endpoints.
func (s *DocumentService) CreateDocument(ctx context.Context, docType enum.DocumentType, doc *entity.Document) (*entity.Document, error) {
	doc.Type = docType

	if !enum.StatusAllowedAtCreation(docType, doc.Status) {
		doc.Status = enum.InitialStatus(docType)
	}

	if doc.DocNumber == "" {
		nextNum, err := s.docRepo.GetNextReferenceNumber(ctx, docType)
		if err != nil {
			return nil, err
		}
		doc.DocNumber = fmt.Sprintf("%s-%06d", docType.NumberPrefix(), nextNum)
	}

	if existing, err := s.docRepo.GetByDocNumber(ctx, docType, doc.DocNumber); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, apperror.NewConflictError(fmt.Sprintf("Document number %s already exists", doc.DocNumber))
	}

	s.applyTotals(doc)

	items := doc.Items
	doc.Items = nil

	if err := s.docRepo.Create(ctx, doc); err != nil {
		return nil, err
	}

	for i := range items {
		items[i].DocumentID = doc.ID
	}
	if err := s.itemRepo.CreateBatch(ctx, items); err != nil {
		return nil, err
	}

	return s.docRepo.GetWithItems(ctx, docType, doc.ID)
}

// GetDocument retrieves a document with its line items
func (s *DocumentService) GetDocument(ctx context.Context, docType enum.DocumentType, id uuid.UUID) (*entity.Document, error) {
	doc, err := s.docRepo.GetWithItems(ctx, docType, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, apperror.NewNotFoundError("Document")
	}
	return doc, nil
}

// ListDocumentsInput represents the input for listing documents
type ListDocumentsInput struct {
	Pagination *pagination.PaginationParams
	Search     string
	DocNumber  string
	Status     *enum.DocumentStatus
	CustomerID *uuid.UUID
}

// ListDocuments lists documents of one type with filtering
func (s *DocumentService) ListDocuments(ctx context.Context, docType enum.DocumentType, input *ListDocumentsInput) (*pagination.PaginatedResult[entity.Document], error) {
	params := &repository.DocumentFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		DocNumber:  input.DocNumber,
		Status:     input.Status,
		CustomerID: input.CustomerID,
	}

	docs, total, err := s.docRepo.List(ctx, docType, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(docs, pag), nil
}

// UpdateDocument replaces the editable fields and line items of an existing
// document. Line items are recreated wholesale.
func (s *DocumentService) UpdateDocument(ctx context.Context, docType enum.DocumentType, id uuid.UUID, updated *entity.Document) (*entity.Document, error) {
	doc, err := s.docRepo.GetByID(ctx, docType, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, apperror.NewNotFoundError("Document")
	}

	if updated.DocNumber != "" && updated.DocNumber != doc.DocNumber {
		if existing, err := s.docRepo.GetByDocNumber(ctx, docType, updated.DocNumber); err != nil {
			return nil, err
		} else if existing != nil {
			return nil, apperror.NewConflictError(fmt.Sprintf("Document number %s already exists", updated.DocNumber))
		}
		doc.DocNumber = updated.DocNumber
	}

	doc.CustomerID = updated.CustomerID
	doc.IssueDate = updated.IssueDate
	doc.DueDate = updated.DueDate
	doc.IncludeVAT = updated.IncludeVAT
	doc.WithholdingTaxPercent = updated.WithholdingTaxPercent
	doc.Notes = updated.Notes
	doc.InternalNotes = updated.InternalNotes
	doc.Items = updated.Items

	s.applyTotals(doc)

	items := doc.Items
	doc.Items = nil

	if err := s.docRepo.Update(ctx, doc); err != nil {
		return nil, err
	}

	// Delete existing items and create new ones
	if err := s.itemRepo.DeleteByDocumentID(ctx, doc.ID); err != nil {
		return nil, err
	}
	for i := range items {
		items[i].ID = uuid.Nil
		items[i].DocumentID = doc.ID
	}
	if err := s.itemRepo.CreateBatch(ctx, items); err != nil {
		return nil, err
	}

	return s.docRepo.GetWithItems(ctx, docType, doc.ID)
}

// DeleteDocument deletes a document and its line items
func (s *DocumentService) DeleteDocument(ctx context.Context, docType enum.DocumentType, id uuid.UUID) error {
	doc, err := s.docRepo.GetByID(ctx, docType, id)
	if err != nil {
		return err
	}
	if doc == nil {
		return apperror.NewNotFoundError("Document")
	}

	if err := s.itemRepo.DeleteByDocumentID(ctx, id); err != nil {
		return err
	}

	return s.docRepo.Delete(ctx, docType, id)
}

// UpdateDocumentStatus moves a document to a new status, enforcing the
// per-type transition rules.
func (s *DocumentService) UpdateDocumentStatus(ctx context.Context, docType enum.DocumentType, id uuid.UUID, status enum.DocumentStatus) (*entity.Document, error) {
	doc, err := s.docRepo.GetByID(ctx, docType, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, apperror.NewNotFoundError("Document")
	}

	if !enum.CanTransition(docType, doc.Status, status) {
		return nil, apperror.NewUnprocessableError(
			fmt.Sprintf("Cannot change %s status from %s to %s", docType, doc.Status, status))
	}

	if err := s.docRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	return s.docRepo.GetWithItems(ctx, docType, id)
}

// SendQuotation marks a draft quotation as sent and emails the customer a
// summary. Email delivery is best effort and never fails the operation.
func (s *DocumentService) SendQuotation(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	doc, err := s.UpdateDocumentStatus(ctx, enum.DocumentTypeQuotation, id, enum.DocumentStatusSent)
	if err != nil {
		return nil, err
	}

	if s.emailService != nil && doc.Customer != nil && doc.Customer.Email != nil && *doc.Customer.Email != "" {
		companyName := ""
		if info, err := s.companyRepo.Get(ctx); err == nil && info != nil {
			companyName = info.Name
		}

		data := quotationEmailData(doc, companyName)
		if err := s.emailService.SendDocumentEmail(*doc.Customer.Email, data); err != nil {
			log.Printf("Warning: failed to send quotation email for %s: %v", doc.DocNumber, err)
		}
	}

	return doc, nil
}

// quotationEmailData builds the notification payload for a sent quotation.
// Amounts are formatted to two decimals at this boundary.
func quotationEmailData(doc *entity.Document, companyName string) email.DocumentEmailData {
	return email.DocumentEmailData{
		CompanyName:  companyName,
		CustomerName: doc.Customer.Name,
		DocTypeLabel: "Quotation",
		DocNumber:    doc.DocNumber,
		IssueDate:    doc.IssueDate.Format("2006-01-02"),
		GrandTotal:   fmt.Sprintf("%.2f", doc.GrandTotal),
	}
}

// ApproveQuotation marks a sent quotation as approved
func (s *DocumentService) ApproveQuotation(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	return s.UpdateDocumentStatus(ctx, enum.DocumentTypeQuotation, id, enum.DocumentStatusApproved)
}

// RejectQuotation marks a sent quotation as rejected
func (s *DocumentService) RejectQuotation(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	return s.UpdateDocumentStatus(ctx, enum.DocumentTypeQuotation, id, enum.DocumentStatusRejected)
}
