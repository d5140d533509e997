package totals

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineAmount(t *testing.T) {
	tests := []struct {
		name string
		item LineItem
		want float64
	}{
		{"no discount", LineItem{Quantity: 2, UnitPrice: 100}, 200},
		{"ten percent", LineItem{Quantity: 2, UnitPrice: 100, DiscountPercent: 10}, 180},
		{"fully discounted", LineItem{Quantity: 3, UnitPrice: 50, DiscountPercent: 100}, 0},
		{"zero quantity", LineItem{Quantity: 0, UnitPrice: 999, DiscountPercent: 5}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, LineAmount(tt.item), 1e-9)
		})
	}
}

func TestDocumentTotalsScenario(t *testing.T) {
	calc := NewCalculator()
	got := calc.Document([]LineItem{
		{Quantity: 2, UnitPrice: 100, DiscountPercent: 10},
	}, true, 3)

	assert.InDelta(t, 200, got.Subtotal, 1e-9)
	assert.InDelta(t, 20, got.TotalDiscount, 1e-9)
	assert.InDelta(t, 180, got.PriceAfterDiscount, 1e-9)
	assert.InDelta(t, 12.6, got.VAT, 1e-9)
	assert.InDelta(t, 5.778, got.WithholdingAmount, 1e-9)
	assert.InDelta(t, 186.822, got.GrandTotal, 1e-9)
}

func TestDocumentWithoutVAT(t *testing.T) {
	calc := NewCalculator()
	got := calc.Document([]LineItem{
		{Quantity: 1, UnitPrice: 500},
		{Quantity: 4, UnitPrice: 250, DiscountPercent: 50},
	}, false, 0)

	assert.InDelta(t, 1500, got.Subtotal, 1e-9)
	assert.InDelta(t, 500, got.TotalDiscount, 1e-9)
	assert.InDelta(t, 1000, got.PriceAfterDiscount, 1e-9)
	assert.Zero(t, got.VAT)
	// Without VAT the grand total equals the price after discount.
	assert.InDelta(t, got.PriceAfterDiscount, got.GrandTotal, 1e-9)
}

func TestDocumentEmptyItems(t *testing.T) {
	calc := NewCalculator()
	got := calc.Document(nil, true, 3)
	assert.Equal(t, DocumentTotals{}, got)
}

func TestDocumentSubtotalMinusDiscountInvariant(t *testing.T) {
	calc := NewCalculator()
	items := []LineItem{
		{Quantity: 3, UnitPrice: 120, DiscountPercent: 15},
		{Quantity: 7, UnitPrice: 9.5, DiscountPercent: 2.5},
		{Quantity: 1, UnitPrice: 10000, DiscountPercent: 100},
	}
	got := calc.Document(items, true, 5)
	assert.InDelta(t, got.Subtotal-got.TotalDiscount, got.PriceAfterDiscount, 1e-9)
}

func TestDocumentIsIdempotent(t *testing.T) {
	calc := NewCalculator()
	items := []LineItem{{Quantity: 2, UnitPrice: 100, DiscountPercent: 10}}
	first := calc.Document(items, true, 3)
	second := calc.Document(items, true, 3)
	assert.Equal(t, first, second)
}

func TestVoucherScenario(t *testing.T) {
	calc := NewCalculator()
	got := calc.Voucher([]VoucherItem{
		{PricePerTrip: 1000, AdvancePayment: 200, PickupReturnFee: 150},
	})

	assert.InDelta(t, 1150, got.Subtotal, 1e-9)
	assert.InDelta(t, 1000, got.TotalPricePerTrip, 1e-9)
	assert.InDelta(t, 10, got.Deduction, 1e-9)
	assert.InDelta(t, 940, got.NetAmount, 1e-9)
}

func TestVoucherDeductionIgnoresPickupReturnFee(t *testing.T) {
	calc := NewCalculator()
	base := []VoucherItem{
		{PricePerTrip: 1000, AdvancePayment: 200, PickupReturnFee: 150},
		{PricePerTrip: 2500, AdvancePayment: 0, PickupReturnFee: 300},
	}
	bumped := []VoucherItem{
		{PricePerTrip: 1000, AdvancePayment: 200, PickupReturnFee: 9150},
		{PricePerTrip: 2500, AdvancePayment: 0, PickupReturnFee: 0},
	}

	// The levy is computed from trip prices only; changing the pickup/return
	// fees must not move the deduction.
	assert.InDelta(t, calc.Voucher(base).Deduction, calc.Voucher(bumped).Deduction, 1e-9)
	assert.InDelta(t, 35, calc.Voucher(base).Deduction, 1e-9)
}

func TestVoucherEmpty(t *testing.T) {
	calc := NewCalculator()
	assert.Equal(t, VoucherTotals{}, calc.Voucher(nil))
}

func TestToNumber(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want float64
	}{
		{"float", 12.5, 12.5},
		{"int", 7, 7},
		{"numeric string", "42.25", 42.25},
		{"padded string", "  19 ", 19},
		{"blank string", "", 0},
		{"garbage string", "12abc", 0},
		{"nil", nil, 0},
		{"json number", json.Number("3.5"), 3.5},
		{"bad json number", json.Number("x"), 0},
		{"bool true", true, 1},
		{"unsupported", []string{"x"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToNumber(tt.in))
		})
	}
}
