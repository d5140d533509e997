package totals

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Default statutory rates. Both are configurable through config so a rate
// change does not require touching call sites.
const (
	DefaultVATRate  = 0.07
	DefaultLevyRate = 0.01
)

// LineItem is the minimal shape the document calculator needs from a line.
type LineItem struct {
	Quantity        float64
	UnitPrice       float64
	DiscountPercent float64
}

// DocumentTotals holds every derived figure of a financial document.
// Amounts keep full floating precision; rounding happens at presentation.
type DocumentTotals struct {
	Subtotal           float64 `json:"subtotal"`
	TotalDiscount      float64 `json:"total_discount"`
	PriceAfterDiscount float64 `json:"price_after_discount"`
	VAT                float64 `json:"vat"`
	WithholdingAmount  float64 `json:"withholding_amount"`
	GrandTotal         float64 `json:"grand_total"`
}

// VoucherItem is one trip line on a driver payment voucher.
type VoucherItem struct {
	PricePerTrip    float64
	AdvancePayment  float64
	PickupReturnFee float64
}

// VoucherTotals holds the derived figures of a payment voucher.
type VoucherTotals struct {
	Subtotal          float64 `json:"subtotal"`
	TotalPricePerTrip float64 `json:"total_price_per_trip"`
	TotalAdvance      float64 `json:"total_advance"`
	TotalPickupReturn float64 `json:"total_pickup_return"`
	Deduction         float64 `json:"deduction"`
	NetAmount         float64 `json:"net_amount"`
}

// Calculator computes document and voucher totals. It is stateless apart
// from the configured rates, so a single instance can be shared freely.
type Calculator struct {
	VATRate  float64
	LevyRate float64
}

// NewCalculator returns a calculator with the default statutory rates.
func NewCalculator() Calculator {
	return Calculator{VATRate: DefaultVATRate, LevyRate: DefaultLevyRate}
}

// LineAmount returns quantity * unitPrice reduced by the line's own
// percentage discount. At 100% discount the amount is zero.
func LineAmount(item LineItem) float64 {
	return item.Quantity * item.UnitPrice * (1 - item.DiscountPercent/100)
}

// Document derives subtotal, discount, VAT, withholding tax and grand total
// from the ordered line items. Percentages are taken as given; clamping is
// the input layer's concern.
func (c Calculator) Document(items []LineItem, includeVAT bool, withholdingTaxPercent float64) DocumentTotals {
	var t DocumentTotals
	for _, item := range items {
		gross := item.Quantity * item.UnitPrice
		t.Subtotal += gross
		t.TotalDiscount += gross * item.DiscountPercent / 100
	}
	t.PriceAfterDiscount = t.Subtotal - t.TotalDiscount
	if includeVAT {
		t.VAT = t.PriceAfterDiscount * c.VATRate
	}
	beforeWht := t.PriceAfterDiscount + t.VAT
	t.WithholdingAmount = beforeWht * withholdingTaxPercent / 100
	t.GrandTotal = beforeWht - t.WithholdingAmount
	return t
}

// Voucher derives the payable figures of a driver payment voucher. The levy
// deduction is taken on the trip prices only; pickup/return container fees
// are excluded from the deduction base. That asymmetry is a tax rule, not an
// oversight.
func (c Calculator) Voucher(items []VoucherItem) VoucherTotals {
	var t VoucherTotals
	for _, item := range items {
		t.Subtotal += item.PricePerTrip + item.PickupReturnFee
		t.TotalPricePerTrip += item.PricePerTrip
		t.TotalAdvance += item.AdvancePayment
		t.TotalPickupReturn += item.PickupReturnFee
	}
	t.Deduction = t.TotalPricePerTrip * c.LevyRate
	t.NetAmount = t.Subtotal - t.Deduction - t.TotalAdvance
	return t
}

// ToNumber coerces an arbitrary JSON-decoded value to float64. Blank,
// malformed or unsupported values become 0; form input never errors here.
func ToNumber(v interface{}) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case float32:
		return float64(val)
	case int:
		return float64(val)
	case int64:
		return float64(val)
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return f
	case bool:
		if val {
			return 1
		}
		return 0
	case nil:
		return 0
	default:
		return 0
	}
}
