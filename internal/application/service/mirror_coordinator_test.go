package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siamtrans/backoffice-api/internal/domain/entity"
	"github.com/siamtrans/backoffice-api/internal/domain/enum"
	"github.com/siamtrans/backoffice-api/pkg/totals"
)

func newTestCoordinator(docRepo *fakeDocumentRepo, itemRepo *fakeDocumentItemRepo) *MirrorCoordinator {
	docs := NewDocumentService(docRepo, itemRepo, newFakeCustomerRepo(), &fakeCompanyRepo{}, totals.NewCalculator(), nil)
	return NewMirrorCoordinator(docs, docRepo, itemRepo)
}

func quotationFixture() *entity.Document {
	return &entity.Document{
		IssueDate:             time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		IncludeVAT:            true,
		WithholdingTaxPercent: 1,
		Status:                enum.DocumentStatusDraft,
		Items: []entity.DocumentItem{
			{Description: "Bangkok to Chonburi", Quantity: 2, Unit: "trip", UnitPrice: 100, DiscountPercent: 10},
		},
	}
}

func TestCreateQuotationMirrorsInvoice(t *testing.T) {
	docRepo, itemRepo := newDocumentFakes()
	coordinator := newTestCoordinator(docRepo, itemRepo)

	created, result, err := coordinator.CreateQuotation(context.Background(), quotationFixture())
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.True(t, result.PrimaryOK)
	assert.True(t, result.MirrorOK)
	assert.Empty(t, result.MirrorErr)

	assert.Equal(t, "QT-000001", created.DocNumber)
	assert.Equal(t, enum.DocumentStatusDraft, created.Status)

	// The mirrored invoice carries the same document number
	invoice, err := docRepo.GetByDocNumber(context.Background(), enum.DocumentTypeInvoice, created.DocNumber)
	require.NoError(t, err)
	require.NotNil(t, invoice)
	assert.Equal(t, enum.DocumentStatusPending, invoice.Status)
	assert.InDelta(t, created.GrandTotal, invoice.GrandTotal, 1e-9)

	invoiceItems, err := itemRepo.GetByDocumentID(context.Background(), invoice.ID)
	require.NoError(t, err)
	require.Len(t, invoiceItems, 1)
	assert.Equal(t, "Bangkok to Chonburi", invoiceItems[0].Description)
	assert.InDelta(t, 180.0, invoiceItems[0].Amount, 1e-9)
}

func TestCreateQuotationSucceedsWhenMirrorFails(t *testing.T) {
	docRepo, itemRepo := newDocumentFakes()
	coordinator := newTestCoordinator(docRepo, itemRepo)

	failType := enum.DocumentTypeInvoice
	docRepo.failType = &failType

	created, result, err := coordinator.CreateQuotation(context.Background(), quotationFixture())
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.True(t, result.PrimaryOK)
	assert.False(t, result.MirrorOK)
	assert.Contains(t, result.MirrorErr, "storage offline")

	// The quotation itself is persisted despite the mirror failure
	quotation, err := docRepo.GetByDocNumber(context.Background(), enum.DocumentTypeQuotation, created.DocNumber)
	require.NoError(t, err)
	assert.NotNil(t, quotation)

	invoice, err := docRepo.GetByDocNumber(context.Background(), enum.DocumentTypeInvoice, created.DocNumber)
	require.NoError(t, err)
	assert.Nil(t, invoice)
}

func TestUpdateQuotationUpdatesMirrorInPlace(t *testing.T) {
	docRepo, itemRepo := newDocumentFakes()
	coordinator := newTestCoordinator(docRepo, itemRepo)

	ctx := context.Background()
	created, _, err := coordinator.CreateQuotation(ctx, quotationFixture())
	require.NoError(t, err)

	invoice, err := docRepo.GetByDocNumber(ctx, enum.DocumentTypeInvoice, created.DocNumber)
	require.NoError(t, err)
	require.NotNil(t, invoice)
	originalInvoiceID := invoice.ID

	// The invoice moves on independently before the quotation is edited again
	require.NoError(t, docRepo.UpdateStatus(ctx, invoice.ID, enum.DocumentStatusPaid))

	changed := quotationFixture()
	changed.Items = []entity.DocumentItem{
		{Description: "Bangkok to Rayong", Quantity: 3, Unit: "trip", UnitPrice: 500},
	}
	updated, result, err := coordinator.UpdateQuotation(ctx, created.ID, changed)
	require.NoError(t, err)
	assert.True(t, result.PrimaryOK)
	assert.True(t, result.MirrorOK)

	// Still exactly one invoice under this number, same row, status kept
	mirrored, err := docRepo.GetByDocNumber(ctx, enum.DocumentTypeInvoice, updated.DocNumber)
	require.NoError(t, err)
	require.NotNil(t, mirrored)
	assert.Equal(t, originalInvoiceID, mirrored.ID)
	assert.Equal(t, enum.DocumentStatusPaid, mirrored.Status)
	assert.InDelta(t, updated.GrandTotal, mirrored.GrandTotal, 1e-9)

	mirroredItems, err := itemRepo.GetByDocumentID(ctx, mirrored.ID)
	require.NoError(t, err)
	require.Len(t, mirroredItems, 1)
	assert.Equal(t, "Bangkok to Rayong", mirroredItems[0].Description)
}

func TestUpdateQuotationCreatesMissingMirror(t *testing.T) {
	docRepo, itemRepo := newDocumentFakes()
	coordinator := newTestCoordinator(docRepo, itemRepo)

	ctx := context.Background()
	failType := enum.DocumentTypeInvoice
	docRepo.failType = &failType

	created, result, err := coordinator.CreateQuotation(ctx, quotationFixture())
	require.NoError(t, err)
	require.False(t, result.MirrorOK)

	// Once the invoice store recovers, the next save backfills the mirror
	docRepo.failType = nil

	_, result, err = coordinator.UpdateQuotation(ctx, created.ID, quotationFixture())
	require.NoError(t, err)
	assert.True(t, result.MirrorOK)

	invoice, err := docRepo.GetByDocNumber(ctx, enum.DocumentTypeInvoice, created.DocNumber)
	require.NoError(t, err)
	require.NotNil(t, invoice)
	assert.Equal(t, enum.DocumentStatusPending, invoice.Status)
}
