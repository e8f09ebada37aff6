package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencySuffix is appended to every displayed amount.
const CurrencySuffix = "ج.م"

// QuoteRequest carries the customer's current selection.
type QuoteRequest struct {
	// SelectedTypeID is the chosen product type id, empty when none.
	SelectedTypeID string
	// Quantity is the parsed piece count; 0 means missing or unparseable.
	Quantity int
	// CustomTypesText lists differing types when more than one piece is ordered.
	CustomTypesText string
	// Region is the delivery governorate, empty when none.
	Region string
}

// QuoteResult is the pricing breakdown for a QuoteRequest.
//
// @Description Pricing breakdown for the current selection
type QuoteResult struct {
	UnitPriceBeforeDiscount  decimal.Decimal `json:"unit_price_before_discount" swaggertype:"string" example:"515"`
	SubtotalBeforeDiscount   decimal.Decimal `json:"subtotal_before_discount" swaggertype:"string" example:"515"`
	SubtotalAfterDiscount    decimal.Decimal `json:"subtotal_after_discount" swaggertype:"string" example:"386.25"`
	ShippingCost             decimal.Decimal `json:"shipping_cost" swaggertype:"string" example:"70"`
	Total                    decimal.Decimal `json:"total" swaggertype:"string" example:"456.25"`
	SelectedItemsDescription string          `json:"selected_items_description" example:"1 قطعة من فلاشة الحاسب الالي والبرمجة للأطفال"`
	FreeShipping             bool            `json:"free_shipping"`
	// Placeholder is set when the quantity was missing or unparseable.
	Placeholder bool `json:"placeholder"`
}

// PlaceholderQuote is the all-zero quote shown until a usable quantity is entered.
func PlaceholderQuote() QuoteResult {
	return QuoteResult{
		UnitPriceBeforeDiscount:  decimal.Zero,
		SubtotalBeforeDiscount:   decimal.Zero,
		SubtotalAfterDiscount:    decimal.Zero,
		ShippingCost:             decimal.Zero,
		Total:                    decimal.Zero,
		SelectedItemsDescription: "-",
		Placeholder:              true,
	}
}

// FormatAmount renders an amount with two decimals and the currency suffix.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2) + " " + CurrencySuffix
}

// ParseQuantity reads a quantity the way a form field is read: surrounding
// space is ignored and the leading run of digits is used. Anything that does
// not produce a positive count yields 0.
func ParseQuantity(raw string) int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	if s[0] == '+' {
		s = s[1:]
	} else if s[0] == '-' {
		return 0
	}

	n := 0
	digits := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		digits++
		if n > maxQuantity {
			return maxQuantity
		}
	}
	if digits == 0 || n <= 0 {
		return 0
	}
	return n
}

// maxQuantity caps parsed quantities well above any real order.
const maxQuantity = 1_000_000
