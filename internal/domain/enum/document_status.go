package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// DocumentStatus represents the status of a financial document. Quotations
// and invoices/receipts run on different state machines but share the
// documents table, so one enum covers both value sets.
type DocumentStatus int

const (
	// Quotation states
	DocumentStatusDraft    DocumentStatus = 0
	DocumentStatusSent     DocumentStatus = 1
	DocumentStatusApproved DocumentStatus = 2
	DocumentStatusRejected DocumentStatus = 3

	// Invoice / receipt states
	DocumentStatusPending   DocumentStatus = 4
	DocumentStatusPaid      DocumentStatus = 5
	DocumentStatusOverdue   DocumentStatus = 6
	DocumentStatusCancelled DocumentStatus = 7
)

var documentStatusNames = [...]string{
	"draft", "sent", "approved", "rejected",
	"pending", "paid", "overdue", "cancelled",
}

func (s DocumentStatus) String() string {
	if int(s) < 0 || int(s) >= len(documentStatusNames) {
		return "draft"
	}
	return documentStatusNames[s]
}

// ParseDocumentStatus maps a status name to its enum value. Unknown names
// report ok=false so callers can reject them.
func ParseDocumentStatus(name string) (DocumentStatus, bool) {
	for i, n := range documentStatusNames {
		if n == name {
			return DocumentStatus(i), true
		}
	}
	return DocumentStatusDraft, false
}

func (s DocumentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *DocumentStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = DocumentStatus(i)
		return nil
	}
	if parsed, ok := ParseDocumentStatus(str); ok {
		*s = parsed
	}
	return nil
}

func (s DocumentStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *DocumentStatus) Scan(value interface{}) error {
	if value == nil {
		*s = DocumentStatusDraft
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = DocumentStatus(v)
	case int:
		*s = DocumentStatus(v)
	}
	return nil
}

// InitialStatus returns the state a freshly created document of the given
// type starts in.
func InitialStatus(t DocumentType) DocumentStatus {
	if t == DocumentTypeQuotation {
		return DocumentStatusDraft
	}
	return DocumentStatusPending
}

// StatusAllowedAtCreation reports whether a document of the given type may be
// created directly in the given status. Only the initial state and states one
// transition away qualify; later states must be reached through explicit
// status changes.
func StatusAllowedAtCreation(t DocumentType, s DocumentStatus) bool {
	initial := InitialStatus(t)
	return s == initial || CanTransition(t, initial, s)
}

// CanTransition reports whether moving a document of the given type from one
// status to another is allowed. All transitions are user-driven:
//
//	quotation: draft -> sent -> approved | rejected
//	invoice/receipt: pending -> paid | overdue | cancelled
func CanTransition(t DocumentType, from, to DocumentStatus) bool {
	if t == DocumentTypeQuotation {
		switch from {
		case DocumentStatusDraft:
			return to == DocumentStatusSent
		case DocumentStatusSent:
			return to == DocumentStatusApproved || to == DocumentStatusRejected
		}
		return false
	}
	if from != DocumentStatusPending {
		return false
	}
	return to == DocumentStatusPaid || to == DocumentStatusOverdue || to == DocumentStatusCancelled
}
