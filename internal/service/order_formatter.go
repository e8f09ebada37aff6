package service

import (
	"net/url"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"github.com/shopspring/decimal"

	"github.com/guttosm/flashe-service/internal/domain/model"
)

// DefaultPhoneRegion is used to read contact numbers written without a
// country code.
const DefaultPhoneRegion = "EG"

const shareLinkBase = "https://wa.me/"

// FormatOrderDescription renders the order line of the message. It resolves
// the selection the same way the quote summary does.
func FormatOrderDescription(catalog *model.Catalog, req model.QuoteRequest) string {
	return resolveSelection(catalog, req).orderDetail()
}

// FormatWhatsAppMessage assembles the message sent to the shop. The
// secondary phone and the notes section only appear when filled in.
func FormatWhatsAppMessage(fields model.CustomerFields, description string, total decimal.Decimal) string {
	var b strings.Builder

	b.WriteString("مرحبًا، إسمي ")
	b.WriteString(fields.Name)

	b.WriteString("\n\n📦 الطلب:\n")
	b.WriteString(description)

	b.WriteString("\n\n📞 أرقام التواصل:\nرقم أساسي: ")
	b.WriteString(fields.Phone)
	if fields.SecondaryPhone != "" {
		b.WriteString("\nرقم بديل: ")
		b.WriteString(fields.SecondaryPhone)
	}

	b.WriteString("\n\n📍 العنوان:\n")
	b.WriteString(fields.Region)
	b.WriteString(" – ")
	b.WriteString(fields.Address)

	if fields.Notes != "" {
		b.WriteString("\n\n📝 ملاحظات:\n")
		b.WriteString(fields.Notes)
	}

	b.WriteString("\n\n💰 إجمالي التكلفة:\n")
	b.WriteString(model.FormatAmount(total))

	return b.String()
}

// BuildShareLink returns the wa.me deep link that opens a chat with contact
// prefilled with message.
func BuildShareLink(contact, message string) string {
	return shareLinkBase + NormalizeContactNumber(contact) + "?text=" + EncodeURIComponent(message)
}

// NormalizeContactNumber returns the international number as bare digits,
// the form wa.me expects. Numbers that do not parse keep only their digits.
func NormalizeContactNumber(raw string) string {
	raw = strings.TrimSpace(raw)
	if num, err := phonenumbers.Parse(raw, DefaultPhoneRegion); err == nil && phonenumbers.IsValidNumber(num) {
		return strings.TrimPrefix(phonenumbers.Format(num, phonenumbers.E164), "+")
	}
	return digitsOnly(raw)
}

func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// uriComponentUnreserved undoes query escaping for the marks that a
// browser's encodeURIComponent leaves alone.
var uriComponentUnreserved = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeURIComponent percent-encodes s as UTF-8 the way browsers do for a
// single URI component.
func EncodeURIComponent(s string) string {
	return uriComponentUnreserved.Replace(url.QueryEscape(s))
}
