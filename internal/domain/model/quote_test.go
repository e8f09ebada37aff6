package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected int
	}{
		{name: "plain number", raw: "3", expected: 3},
		{name: "surrounding spaces", raw: "  2 ", expected: 2},
		{name: "leading plus", raw: "+4", expected: 4},
		{name: "trailing text", raw: "2 قطع", expected: 2},
		{name: "decimal truncated", raw: "1.9", expected: 1},
		{name: "empty", raw: "", expected: 0},
		{name: "letters", raw: "abc", expected: 0},
		{name: "zero", raw: "0", expected: 0},
		{name: "negative", raw: "-3", expected: 0},
		{name: "huge number capped", raw: "99999999999999999999", expected: maxQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseQuantity(tt.raw))
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "456.25 ج.م", FormatAmount(decimal.RequireFromString("456.25")))
	assert.Equal(t, "70.00 ج.م", FormatAmount(decimal.NewFromInt(70)))
	assert.Equal(t, "0.00 ج.م", FormatAmount(decimal.Zero))
}

func TestPlaceholderQuote(t *testing.T) {
	q := PlaceholderQuote()

	assert.True(t, q.Placeholder)
	assert.Equal(t, "-", q.SelectedItemsDescription)
	assert.True(t, q.Total.IsZero())
	assert.True(t, q.ShippingCost.IsZero())
}

func TestOrderForm_Normalized(t *testing.T) {
	form := OrderForm{
		Name:     "  أحمد ",
		Quantity: " 2",
		Region:   "القاهرة\n",
		Notes:    "   ",
	}

	n := form.Normalized()

	assert.Equal(t, "أحمد", n.Name)
	assert.Equal(t, "2", n.Quantity)
	assert.Equal(t, "القاهرة", n.Region)
	assert.Empty(t, n.Notes)
	assert.Equal(t, 2, n.QuoteRequest().Quantity)
	assert.Equal(t, "القاهرة", n.Customer().Region)
}
