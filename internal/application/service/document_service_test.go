package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siamtrans/backoffice-api/internal/domain/entity"
	"github.com/siamtrans/backoffice-api/internal/domain/enum"
	"github.com/siamtrans/backoffice-api/pkg/apperror"
	"github.com/siamtrans/backoffice-api/pkg/totals"
)

func newTestDocumentService(docRepo *fakeDocumentRepo, itemRepo *fakeDocumentItemRepo) *DocumentService {
	return NewDocumentService(docRepo, itemRepo, newFakeCustomerRepo(), &fakeCompanyRepo{}, totals.NewCalculator(), nil)
}

func TestCreateDocumentGeneratesSequentialNumbers(t *testing.T) {
	docRepo, itemRepo := newDocumentFakes()
	svc := newTestDocumentService(docRepo, itemRepo)
	ctx := context.Background()

	first, err := svc.CreateDocument(ctx, enum.DocumentTypeQuotation, &entity.Document{
		IssueDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "QT-000001", first.DocNumber)

	second, err := svc.CreateDocument(ctx, enum.DocumentTypeQuotation, &entity.Document{
		IssueDate: time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "QT-000002", second.DocNumber)

	// Receipts count separately from quotations
	receipt, err := svc.CreateDocument(ctx, enum.DocumentTypeReceipt, &entity.Document{
		IssueDate: time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "RC-000001", receipt.DocNumber)
}

func TestCreateDocumentRejectsDuplicateNumber(t *testing.T) {
	docRepo, itemRepo := newDocumentFakes()
	svc := newTestDocumentService(docRepo, itemRepo)
	ctx := context.Background()

	_, err := svc.CreateDocument(ctx, enum.DocumentTypeQuotation, &entity.Document{DocNumber: "QT-000099"})
	require.NoError(t, err)

	_, err = svc.CreateDocument(ctx, enum.DocumentTypeQuotation, &entity.Document{DocNumber: "QT-000099"})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 409, appErr.Code)
}

func TestCreateDocumentRecomputesTotals(t *testing.T) {
	docRepo, itemRepo := newDocumentFakes()
	svc := newTestDocumentService(docRepo, itemRepo)

	// Client-supplied totals are ignored and recomputed from the items
	doc, err := svc.CreateDocument(context.Background(), enum.DocumentTypeQuotation, &entity.Document{
		IncludeVAT:            true,
		WithholdingTaxPercent: 3,
		GrandTotal:            999999,
		Items: []entity.DocumentItem{
			{Description: "haul", Quantity: 2, UnitPrice: 100, DiscountPercent: 10, Amount: 55555},
		},
	})
	require.NoError(t, err)

	assert.InDelta(t, 200.0, doc.Subtotal, 1e-9)
	assert.InDelta(t, 20.0, doc.TotalDiscount, 1e-9)
	assert.InDelta(t, 180.0, doc.PriceAfterDiscount, 1e-9)
	assert.InDelta(t, 12.6, doc.VATAmount, 1e-9)
	assert.InDelta(t, 5.778, doc.WithholdingAmount, 1e-9)
	assert.InDelta(t, 186.822, doc.GrandTotal, 1e-9)
	require.Len(t, doc.Items, 1)
	assert.InDelta(t, 180.0, doc.Items[0].Amount, 1e-9)
}

func TestCreateDocumentClampsCreationStatus(t *testing.T) {
	docRepo, itemRepo := newDocumentFakes()
	svc := newTestDocumentService(docRepo, itemRepo)
	ctx := context.Background()

	// A quotation cannot be born approved
	q, err := svc.CreateDocument(ctx, enum.DocumentTypeQuotation, &entity.Document{
		Status: enum.DocumentStatusApproved,
	})
	require.NoError(t, err)
	assert.Equal(t, enum.DocumentStatusDraft, q.Status)

	// Invoice states make no sense on a quotation either
	q2, err := svc.CreateDocument(ctx, enum.DocumentTypeQuotation, &entity.Document{
		Status: enum.DocumentStatusPaid,
	})
	require.NoError(t, err)
	assert.Equal(t, enum.DocumentStatusDraft, q2.Status)

	// One step from the initial state is fine
	sent, err := svc.CreateDocument(ctx, enum.DocumentTypeQuotation, &entity.Document{
		Status: enum.DocumentStatusSent,
	})
	require.NoError(t, err)
	assert.Equal(t, enum.DocumentStatusSent, sent.Status)

	receipt, err := svc.CreateDocument(ctx, enum.DocumentTypeReceipt, &entity.Document{
		Status: enum.DocumentStatusPaid,
	})
	require.NoError(t, err)
	assert.Equal(t, enum.DocumentStatusPaid, receipt.Status)
}

func TestUpdateDocumentReplacesItems(t *testing.T) {
	docRepo, itemRepo := newDocumentFakes()
	svc := newTestDocumentService(docRepo, itemRepo)
	ctx := context.Background()

	created, err := svc.CreateDocument(ctx, enum.DocumentTypeInvoice, &entity.Document{
		Status: enum.DocumentStatusPending,
		Items: []entity.DocumentItem{
			{Description: "old line", Quantity: 1, UnitPrice: 100},
		},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateDocument(ctx, enum.DocumentTypeInvoice, created.ID, &entity.Document{
		Items: []entity.DocumentItem{
			{Description: "new line one", Quantity: 1, UnitPrice: 300},
			{Description: "new line two", Quantity: 2, UnitPrice: 50},
		},
	})
	require.NoError(t, err)

	require.Len(t, updated.Items, 2)
	assert.Equal(t, "new line one", updated.Items[0].Description)
	assert.Equal(t, 1, updated.Items[0].Position)
	assert.Equal(t, 2, updated.Items[1].Position)
	assert.InDelta(t, 400.0, updated.Subtotal, 1e-9)
}

func TestUpdateDocumentStatusEnforcesTransitions(t *testing.T) {
	docRepo, itemRepo := newDocumentFakes()
	svc := newTestDocumentService(docRepo, itemRepo)
	ctx := context.Background()

	created, err := svc.CreateDocument(ctx, enum.DocumentTypeInvoice, &entity.Document{
		Status: enum.DocumentStatusPending,
	})
	require.NoError(t, err)

	// pending -> paid is allowed
	paid, err := svc.UpdateDocumentStatus(ctx, enum.DocumentTypeInvoice, created.ID, enum.DocumentStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, enum.DocumentStatusPaid, paid.Status)

	// paid -> overdue is not
	_, err = svc.UpdateDocumentStatus(ctx, enum.DocumentTypeInvoice, created.ID, enum.DocumentStatusOverdue)
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 422, appErr.Code)
}

func TestQuotationLifecycle(t *testing.T) {
	docRepo, itemRepo := newDocumentFakes()
	svc := newTestDocumentService(docRepo, itemRepo)
	ctx := context.Background()

	created, err := svc.CreateDocument(ctx, enum.DocumentTypeQuotation, &entity.Document{
		Status: enum.DocumentStatusDraft,
	})
	require.NoError(t, err)

	// Approving a draft skips the sent step and is rejected
	_, err = svc.ApproveQuotation(ctx, created.ID)
	require.Error(t, err)

	sent, err := svc.SendQuotation(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.DocumentStatusSent, sent.Status)

	approved, err := svc.ApproveQuotation(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.DocumentStatusApproved, approved.Status)

	// Terminal state
	_, err = svc.RejectQuotation(ctx, created.ID)
	require.Error(t, err)
}

func TestQuotationEmailDataFormatsAmounts(t *testing.T) {
	doc := &entity.Document{
		DocNumber:  "QT-000042",
		IssueDate:  time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		GrandTotal: 186.822,
		Customer:   &entity.Customer{Name: "Somchai Transport"},
	}

	data := quotationEmailData(doc, "Siam Trans")
	assert.Equal(t, "Siam Trans", data.CompanyName)
	assert.Equal(t, "Somchai Transport", data.CustomerName)
	assert.Equal(t, "Quotation", data.DocTypeLabel)
	assert.Equal(t, "QT-000042", data.DocNumber)
	assert.Equal(t, "2024-03-05", data.IssueDate)
	assert.Equal(t, "186.82", data.GrandTotal)
}

func TestGetDocumentNotFound(t *testing.T) {
	docRepo, itemRepo := newDocumentFakes()
	svc := newTestDocumentService(docRepo, itemRepo)

	_, err := svc.GetDocument(context.Background(), enum.DocumentTypeQuotation, uuid.New())
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.Code)
}

func TestDeleteDocumentRemovesItems(t *testing.T) {
	docRepo, itemRepo := newDocumentFakes()
	svc := newTestDocumentService(docRepo, itemRepo)
	ctx := context.Background()

	created, err := svc.CreateDocument(ctx, enum.DocumentTypeReceipt, &entity.Document{
		Items: []entity.DocumentItem{{Description: "line", Quantity: 1, UnitPrice: 10}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteDocument(ctx, enum.DocumentTypeReceipt, created.ID))

	items, err := itemRepo.GetByDocumentID(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	gone, err := docRepo.GetByID(ctx, enum.DocumentTypeReceipt, created.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
