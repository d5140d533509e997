package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// DocumentType discriminates the financial document kinds sharing one table
type DocumentType int

const (
	DocumentTypeQuotation DocumentType = 0
	DocumentTypeInvoice   DocumentType = 1
	DocumentTypeReceipt   DocumentType = 2
)

func (t DocumentType) String() string {
	names := [...]string{"quotation", "invoice", "receipt"}
	if int(t) < 0 || int(t) >= len(names) {
		return "quotation"
	}
	return names[t]
}

// ParseDocumentType resolves a type name, reporting whether it was recognized
func ParseDocumentType(name string) (DocumentType, bool) {
	switch name {
	case "quotation":
		return DocumentTypeQuotation, true
	case "invoice":
		return DocumentTypeInvoice, true
	case "receipt":
		return DocumentTypeReceipt, true
	}
	return DocumentTypeQuotation, false
}

func (t DocumentType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *DocumentType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = DocumentType(i)
		return nil
	}
	switch str {
	case "quotation":
		*t = DocumentTypeQuotation
	case "invoice":
		*t = DocumentTypeInvoice
	case "receipt":
		*t = DocumentTypeReceipt
	}
	return nil
}

func (t DocumentType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *DocumentType) Scan(value interface{}) error {
	if value == nil {
		*t = DocumentTypeQuotation
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = DocumentType(v)
	case int:
		*t = DocumentType(v)
	}
	return nil
}

// NumberPrefix returns the reference prefix used for generated document numbers
func (t DocumentType) NumberPrefix() string {
	switch t {
	case DocumentTypeInvoice:
		return "INV"
	case DocumentTypeReceipt:
		return "RC"
	default:
		return "QT"
	}
}
