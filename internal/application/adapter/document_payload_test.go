package adapter

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siamtrans/backoffice-api/internal/domain/enum"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"date only passes through", "2024-01-31", "2024-01-31"},
		{"iso timestamp loses time", "2024-01-31T09:30:00Z", "2024-01-31"},
		{"iso timestamp with offset", "2024-01-31T09:30:00+07:00", "2024-01-31"},
		{"timestamp without zone", "2024-01-31T09:30:00", "2024-01-31"},
		{"space separated timestamp", "2024-01-31 09:30:00", "2024-01-31"},
		{"surrounding whitespace trimmed", "  2024-01-31  ", "2024-01-31"},
		{"empty", "", ""},
		{"garbage", "not-a-date", ""},
		{"partial date", "2024-01", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeDate(tt.input))
		})
	}
}

func TestToDocument(t *testing.T) {
	customerID := uuid.New()

	payload := &DocumentPayload{
		DocNumber:             "QT-000042",
		CustomerID:            customerID.String(),
		IssueDate:             "2024-03-15T10:00:00Z",
		DueDate:               "2024-04-15",
		IncludeVat:            true,
		WithholdingTaxPercent: "3",
		Status:                "sent",
		Type:                  "quotation",
		Notes:                 "net 30",
		Items: []ItemPayload{
			{Description: "Bangkok to Laem Chabang", Quantity: 2, Unit: "trip", UnitPrice: "4500", DiscountPercent: 10},
			{Description: "Waiting charge", Quantity: "1.5", Unit: "hour", UnitPrice: 300},
		},
	}

	doc := ToDocument(payload)

	assert.Equal(t, "QT-000042", doc.DocNumber)
	assert.Equal(t, enum.DocumentTypeQuotation, doc.Type)
	assert.Equal(t, enum.DocumentStatusSent, doc.Status)
	require.NotNil(t, doc.CustomerID)
	assert.Equal(t, customerID, *doc.CustomerID)
	assert.Equal(t, "2024-03-15", doc.IssueDate.Format("2006-01-02"))
	require.NotNil(t, doc.DueDate)
	assert.Equal(t, "2024-04-15", doc.DueDate.Format("2006-01-02"))
	assert.True(t, doc.IncludeVAT)
	assert.Equal(t, 3.0, doc.WithholdingTaxPercent)
	require.NotNil(t, doc.Notes)
	assert.Equal(t, "net 30", *doc.Notes)

	require.Len(t, doc.Items, 2)
	assert.Equal(t, 1, doc.Items[0].Position)
	assert.Equal(t, 2.0, doc.Items[0].Quantity)
	assert.Equal(t, 4500.0, doc.Items[0].UnitPrice)
	assert.InDelta(t, 8100.0, doc.Items[0].Amount, 1e-9)
	assert.Equal(t, 2, doc.Items[1].Position)
	assert.InDelta(t, 450.0, doc.Items[1].Amount, 1e-9)
}

func TestToDocumentToleratesMissingFields(t *testing.T) {
	doc := ToDocument(&DocumentPayload{Type: "invoice"})

	assert.Equal(t, enum.DocumentTypeInvoice, doc.Type)
	assert.Equal(t, enum.DocumentStatusPending, doc.Status)
	assert.Empty(t, doc.DocNumber)
	assert.Nil(t, doc.CustomerID)
	assert.True(t, doc.IssueDate.IsZero())
	assert.Nil(t, doc.DueDate)
	assert.Empty(t, doc.Items)
}

func TestToDocumentCoercesInvalidNumerics(t *testing.T) {
	doc := ToDocument(&DocumentPayload{
		Type:                  "quotation",
		WithholdingTaxPercent: "abc",
		Items: []ItemPayload{
			{Description: "x", Quantity: "oops", UnitPrice: nil, DiscountPercent: map[string]int{}},
		},
	})

	assert.Zero(t, doc.WithholdingTaxPercent)
	require.Len(t, doc.Items, 1)
	assert.Zero(t, doc.Items[0].Quantity)
	assert.Zero(t, doc.Items[0].UnitPrice)
	assert.Zero(t, doc.Items[0].DiscountPercent)
	assert.Zero(t, doc.Items[0].Amount)
}

func TestRoundTripPreservesEditingFields(t *testing.T) {
	customerID := uuid.New()

	original := &DocumentPayload{
		DocNumber:             "INV-000007",
		CustomerID:            customerID.String(),
		IssueDate:             "2024-06-01",
		DueDate:               "2024-07-01",
		IncludeVat:            true,
		WithholdingTaxPercent: 3.0,
		Status:                "pending",
		Type:                  "invoice",
		Notes:                 "monthly run",
		InternalNotes:         "check fuel surcharge",
		Items: []ItemPayload{
			{Description: "Container haul", Details: "20ft", Quantity: 4.0, Unit: "trip", UnitPrice: 3200.0, DiscountPercent: 5.0},
		},
	}

	restored := FromDocument(ToDocument(original))

	assert.Equal(t, original.DocNumber, restored.DocNumber)
	assert.Equal(t, original.CustomerID, restored.CustomerID)
	assert.Equal(t, original.IssueDate, restored.IssueDate)
	assert.Equal(t, original.DueDate, restored.DueDate)
	assert.Equal(t, original.IncludeVat, restored.IncludeVat)
	assert.Equal(t, original.Status, restored.Status)
	assert.Equal(t, original.Type, restored.Type)
	assert.Equal(t, original.Notes, restored.Notes)
	assert.Equal(t, original.InternalNotes, restored.InternalNotes)

	require.Len(t, restored.Items, 1)
	assert.Equal(t, "Container haul", restored.Items[0].Description)
	assert.Equal(t, "20ft", restored.Items[0].Details)
	assert.Equal(t, 4.0, restored.Items[0].Quantity)
	assert.Equal(t, 3200.0, restored.Items[0].UnitPrice)
	assert.Equal(t, 5.0, restored.Items[0].DiscountPercent)
}

func TestFromDocumentEmptyItemsNotNil(t *testing.T) {
	restored := FromDocument(ToDocument(&DocumentPayload{Type: "receipt"}))
	assert.NotNil(t, restored.Items)
	assert.Empty(t, restored.Items)
}
