package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/siamtrans/backoffice-api/internal/domain/entity"
	"github.com/siamtrans/backoffice-api/internal/domain/enum"
	"github.com/siamtrans/backoffice-api/internal/domain/repository"
)

// MirrorWriteResult reports the outcome of a dual write. The primary write
// decides the overall success of the operation; the mirror result is
// informational so callers can surface a partial failure instead of hiding it.
type MirrorWriteResult struct {
	PrimaryOK bool   `json:"primary_ok"`
	MirrorOK  bool   `json:"mirror_ok"`
	MirrorErr string `json:"mirror_error,omitempty"`
}

// MirrorCoordinator keeps a paired invoice in sync with its quotation.
// Every quotation save is followed by a best-effort write of an invoice
// carrying the same document number. The two writes are independent; a
// mirror failure is recorded and logged but never rolls back the quotation.
type MirrorCoordinator struct {
	docs     *DocumentService
	docRepo  repository.DocumentRepository
	itemRepo repository.DocumentItemRepository
}

// NewMirrorCoordinator creates a new mirror coordinator
func NewMirrorCoordinator(
	docs *DocumentService,
	docRepo repository.DocumentRepository,
	itemRepo repository.DocumentItemRepository,
) *MirrorCoordinator {
	return &MirrorCoordinator{
		docs:     docs,
		docRepo:  docRepo,
		itemRepo: itemRepo,
	}
}

// CreateQuotation creates a quotation and mirrors it as an invoice
func (c *MirrorCoordinator) CreateQuotation(ctx context.Context, doc *entity.Document) (*entity.Document, *MirrorWriteResult, error) {
	created, err := c.docs.CreateDocument(ctx, enum.DocumentTypeQuotation, doc)
	if err != nil {
		return nil, &MirrorWriteResult{}, err
	}

	result := &MirrorWriteResult{PrimaryOK: true}
	c.mirrorToInvoice(ctx, created, result)
	return created, result, nil
}

// UpdateQuotation updates a quotation and re-mirrors it. The invoice sharing
// the quotation's document number is updated in place when it exists and
// created when it does not.
func (c *MirrorCoordinator) UpdateQuotation(ctx context.Context, id uuid.UUID, doc *entity.Document) (*entity.Document, *MirrorWriteResult, error) {
	updated, err := c.docs.UpdateDocument(ctx, enum.DocumentTypeQuotation, id, doc)
	if err != nil {
		return nil, &MirrorWriteResult{}, err
	}

	result := &MirrorWriteResult{PrimaryOK: true}
	c.mirrorToInvoice(ctx, updated, result)
	return updated, result, nil
}

// mirrorToInvoice performs the second, best-effort write. The invoice is
// matched by document number; its own status and identity survive updates.
func (c *MirrorCoordinator) mirrorToInvoice(ctx context.Context, quotation *entity.Document, result *MirrorWriteResult) {
	existing, err := c.docRepo.GetByDocNumber(ctx, enum.DocumentTypeInvoice, quotation.DocNumber)
	if err != nil {
		c.recordMirrorFailure(quotation.DocNumber, err, result)
		return
	}

	if existing == nil {
		invoice := c.deriveInvoice(quotation)
		items := invoice.Items
		invoice.Items = nil

		if err := c.docRepo.Create(ctx, invoice); err != nil {
			c.recordMirrorFailure(quotation.DocNumber, err, result)
			return
		}
		for i := range items {
			items[i].DocumentID = invoice.ID
		}
		if err := c.itemRepo.CreateBatch(ctx, items); err != nil {
			c.recordMirrorFailure(quotation.DocNumber, err, result)
			return
		}
		result.MirrorOK = true
		return
	}

	existing.CustomerID = quotation.CustomerID
	existing.IssueDate = quotation.IssueDate
	existing.DueDate = quotation.DueDate
	existing.IncludeVAT = quotation.IncludeVAT
	existing.WithholdingTaxPercent = quotation.WithholdingTaxPercent
	existing.Notes = quotation.Notes
	existing.InternalNotes = quotation.InternalNotes
	existing.Subtotal = quotation.Subtotal
	existing.TotalDiscount = quotation.TotalDiscount
	existing.PriceAfterDiscount = quotation.PriceAfterDiscount
	existing.VATAmount = quotation.VATAmount
	existing.WithholdingAmount = quotation.WithholdingAmount
	existing.GrandTotal = quotation.GrandTotal

	if err := c.docRepo.Update(ctx, existing); err != nil {
		c.recordMirrorFailure(quotation.DocNumber, err, result)
		return
	}

	if err := c.itemRepo.DeleteByDocumentID(ctx, existing.ID); err != nil {
		c.recordMirrorFailure(quotation.DocNumber, err, result)
		return
	}
	items := c.copyItems(quotation.Items, existing.ID)
	if err := c.itemRepo.CreateBatch(ctx, items); err != nil {
		c.recordMirrorFailure(quotation.DocNumber, err, result)
		return
	}

	result.MirrorOK = true
}

// deriveInvoice builds a fresh pending invoice from a quotation, carrying
// over the document number and all financial fields
func (c *MirrorCoordinator) deriveInvoice(quotation *entity.Document) *entity.Document {
	return &entity.Document{
		Type:                  enum.DocumentTypeInvoice,
		DocNumber:             quotation.DocNumber,
		CustomerID:            quotation.CustomerID,
		IssueDate:             quotation.IssueDate,
		DueDate:               quotation.DueDate,
		IncludeVAT:            quotation.IncludeVAT,
		WithholdingTaxPercent: quotation.WithholdingTaxPercent,
		Status:                enum.DocumentStatusPending,
		Notes:                 quotation.Notes,
		InternalNotes:         quotation.InternalNotes,
		Subtotal:              quotation.Subtotal,
		TotalDiscount:         quotation.TotalDiscount,
		PriceAfterDiscount:    quotation.PriceAfterDiscount,
		VATAmount:             quotation.VATAmount,
		WithholdingAmount:     quotation.WithholdingAmount,
		GrandTotal:            quotation.GrandTotal,
		Items:                 c.copyItems(quotation.Items, uuid.Nil),
	}
}

func (c *MirrorCoordinator) copyItems(items []entity.DocumentItem, documentID uuid.UUID) []entity.DocumentItem {
	copies := make([]entity.DocumentItem, 0, len(items))
	for _, item := range items {
		copies = append(copies, entity.DocumentItem{
			DocumentID:      documentID,
			Position:        item.Position,
			Description:     item.Description,
			Details:         item.Details,
			Quantity:        item.Quantity,
			Unit:            item.Unit,
			UnitPrice:       item.UnitPrice,
			DiscountPercent: item.DiscountPercent,
			Amount:          item.Amount,
		})
	}
	return copies
}

func (c *MirrorCoordinator) recordMirrorFailure(docNumber string, err error, result *MirrorWriteResult) {
	log.Printf("Warning: invoice mirror write failed for %s: %v", docNumber, err)
	result.MirrorErr = err.Error()
}
