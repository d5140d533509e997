package adapter

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/siamtrans/backoffice-api/internal/domain/entity"
	"github.com/siamtrans/backoffice-api/internal/domain/enum"
	"github.com/siamtrans/backoffice-api/pkg/totals"
)

// DocumentPayload is the editing representation the back-office UI submits:
// camelCase field names, free-form date strings, numerics that may arrive as
// strings or be blank. The adapter translates it to the persistence entity
// and back. Absent identifying fields (customerId, docNumber) do not fail
// the translation; validation is not this layer's job.
type DocumentPayload struct {
	DocNumber             string        `json:"docNumber"`
	CustomerID            string        `json:"customerId"`
	IssueDate             string        `json:"issueDate"`
	DueDate               string        `json:"dueDate"`
	IncludeVat            bool          `json:"includeVat"`
	WithholdingTaxPercent interface{}   `json:"withholdingTaxPercent"`
	Status                string        `json:"status"`
	Type                  string        `json:"type"`
	Notes                 string        `json:"notes"`
	InternalNotes         string        `json:"internalNotes"`
	Items                 []ItemPayload `json:"items"`
}

// ItemPayload is one line item as edited in the UI
type ItemPayload struct {
	Description     string      `json:"description"`
	Details         string      `json:"details"`
	Quantity        interface{} `json:"quantity"`
	Unit            string      `json:"unit"`
	UnitPrice       interface{} `json:"unitPrice"`
	DiscountPercent interface{} `json:"discountPercent"`
}

const dateLayout = "2006-01-02"

// NormalizeDate reduces a date string to YYYY-MM-DD day precision. Date-only
// input passes through; an ISO timestamp loses its time component; anything
// unparseable becomes the empty string.
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if _, err := time.Parse(dateLayout, s); err == nil {
		return s
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format(dateLayout)
	}
	// ISO-with-time variants without zone ("2024-01-31T09:30:00", "2024-01-31 09:30:00")
	if len(s) > len(dateLayout) && (s[len(dateLayout)] == 'T' || s[len(dateLayout)] == ' ') {
		if _, err := time.Parse(dateLayout, s[:len(dateLayout)]); err == nil {
			return s[:len(dateLayout)]
		}
	}
	return ""
}

// parseDate returns the day-precision time for a UI date string, reporting
// ok=false for blank or unparseable input.
func parseDate(s string) (time.Time, bool) {
	normalized := NormalizeDate(s)
	if normalized == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, normalized)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ToDocument maps a UI payload onto a persistence entity. Numeric fields are
// coerced with zero-on-invalid semantics; each item amount is derived from
// quantity, unit price and discount.
func ToDocument(p *DocumentPayload) *entity.Document {
	doc := &entity.Document{
		DocNumber:             strings.TrimSpace(p.DocNumber),
		IncludeVAT:            p.IncludeVat,
		WithholdingTaxPercent: totals.ToNumber(p.WithholdingTaxPercent),
	}

	docType, _ := enum.ParseDocumentType(p.Type)
	doc.Type = docType

	if status, ok := enum.ParseDocumentStatus(p.Status); ok {
		doc.Status = status
	} else {
		doc.Status = enum.InitialStatus(doc.Type)
	}

	if id, err := uuid.Parse(strings.TrimSpace(p.CustomerID)); err == nil && id != uuid.Nil {
		doc.CustomerID = &id
	}

	if issued, ok := parseDate(p.IssueDate); ok {
		doc.IssueDate = issued
	}
	if due, ok := parseDate(p.DueDate); ok {
		doc.DueDate = &due
	}

	if p.Notes != "" {
		notes := p.Notes
		doc.Notes = &notes
	}
	if p.InternalNotes != "" {
		internal := p.InternalNotes
		doc.InternalNotes = &internal
	}

	doc.Items = make([]entity.DocumentItem, 0, len(p.Items))
	for i, item := range p.Items {
		quantity := totals.ToNumber(item.Quantity)
		unitPrice := totals.ToNumber(item.UnitPrice)
		discount := totals.ToNumber(item.DiscountPercent)

		docItem := entity.DocumentItem{
			Position:        i + 1,
			Description:     item.Description,
			Quantity:        quantity,
			Unit:            item.Unit,
			UnitPrice:       unitPrice,
			DiscountPercent: discount,
			Amount: totals.LineAmount(totals.LineItem{
				Quantity:        quantity,
				UnitPrice:       unitPrice,
				DiscountPercent: discount,
			}),
		}
		if item.Details != "" {
			details := item.Details
			docItem.Details = &details
		}
		doc.Items = append(doc.Items, docItem)
	}

	return doc
}

// FromDocument maps a persistence entity back to the UI payload shape.
// Dates render as YYYY-MM-DD and a document without items yields an empty
// slice, never nil.
func FromDocument(doc *entity.Document) *DocumentPayload {
	p := &DocumentPayload{
		DocNumber:             doc.DocNumber,
		IncludeVat:            doc.IncludeVAT,
		WithholdingTaxPercent: doc.WithholdingTaxPercent,
		Status:                doc.Status.String(),
		Type:                  doc.Type.String(),
		Items:                 make([]ItemPayload, 0, len(doc.Items)),
	}

	if doc.CustomerID != nil {
		p.CustomerID = doc.CustomerID.String()
	}
	if !doc.IssueDate.IsZero() {
		p.IssueDate = doc.IssueDate.Format(dateLayout)
	}
	if doc.DueDate != nil && !doc.DueDate.IsZero() {
		p.DueDate = doc.DueDate.Format(dateLayout)
	}
	if doc.Notes != nil {
		p.Notes = *doc.Notes
	}
	if doc.InternalNotes != nil {
		p.InternalNotes = *doc.InternalNotes
	}

	for _, item := range doc.Items {
		itemPayload := ItemPayload{
			Description:     item.Description,
			Quantity:        item.Quantity,
			Unit:            item.Unit,
			UnitPrice:       item.UnitPrice,
			DiscountPercent: item.DiscountPercent,
		}
		if item.Details != nil {
			itemPayload.Details = *item.Details
		}
		p.Items = append(p.Items, itemPayload)
	}

	return p
}
