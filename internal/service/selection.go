package service

import (
	"strconv"
	"strings"

	"github.com/guttosm/flashe-service/internal/domain/model"
)

const (
	piecesWord           = "قطعة"
	productWord          = "فلاشة"
	multipleTypesLabel   = "أنواع متعددة"
	unspecifiedLabel     = "لم يتم التحديد"
	noTypeSelectedDetail = "لم يتم تحديد نوع الفلاشة/الفلاشات"
	placeholderSummary   = "-"
)

// selection is a QuoteRequest resolved against a catalog. Both the quote
// summary line and the order description are rendered from it so they can
// never disagree about what was ordered.
type selection struct {
	quantity   int
	customText string
	typeName   string
}

func resolveSelection(catalog *model.Catalog, req model.QuoteRequest) selection {
	sel := selection{
		quantity:   req.Quantity,
		customText: strings.TrimSpace(req.CustomTypesText),
	}
	if id := strings.TrimSpace(req.SelectedTypeID); id != "" {
		if pt, ok := catalog.FindType(id); ok {
			sel.typeName = pt.Name
		}
	}
	return sel
}

// usesCustomText reports whether the custom type list describes the order.
// It is only considered for orders of more than one piece.
func (s selection) usesCustomText() bool {
	return s.quantity > 1 && s.customText != ""
}

func (s selection) hasType() bool {
	return s.typeName != ""
}

// summary is the short line shown next to the price breakdown.
func (s selection) summary() string {
	switch {
	case s.quantity <= 0:
		return placeholderSummary
	case s.usesCustomText():
		return s.countPrefix() + ": " + s.customText
	case s.quantity > 1:
		return s.countPrefix() + " من " + s.nameOr(multipleTypesLabel)
	default:
		return s.countPrefix() + " من " + s.nameOr(unspecifiedLabel)
	}
}

// orderDetail is the order line of the outgoing message.
func (s selection) orderDetail() string {
	switch {
	case s.usesCustomText():
		return s.customText
	case s.quantity > 1 && s.hasType():
		return s.countPrefix() + " من " + productLabel(s.typeName)
	case s.quantity == 1 && s.hasType():
		return productLabel(s.typeName)
	default:
		return noTypeSelectedDetail
	}
}

func (s selection) countPrefix() string {
	return strconv.Itoa(s.quantity) + " " + piecesWord
}

func (s selection) nameOr(fallback string) string {
	if s.typeName == "" {
		return fallback
	}
	return s.typeName
}

// productLabel prefixes a type name with the product word unless the
// catalog name already starts with it.
func productLabel(name string) string {
	if strings.HasPrefix(name, productWord) {
		return name
	}
	return productWord + " " + name
}
