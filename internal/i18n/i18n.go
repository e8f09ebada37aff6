// Package i18n holds the customer-facing messages of the storefront.
// The storefront speaks a single language, so there is one message table.
package i18n

import (
	"fmt"
	"sync"
)

// Locale is the only supported locale.
const Locale = "ar"

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator resolves message keys to display text.
type Translator struct {
	messages map[string]string
}

// NewTranslator creates a translator loaded with the Arabic message table.
func NewTranslator() *Translator {
	return &Translator{messages: arabicMessages()}
}

// GetTranslator returns the shared translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the message for key, or the key itself when it is unknown.
func (t *Translator) Translate(key string) string {
	if msg, ok := t.messages[key]; ok {
		return msg
	}
	return key
}

// Translatef formats the message for key with args.
func (t *Translator) Translatef(key string, args ...any) string {
	msg, ok := t.messages[key]
	if !ok {
		return key
	}
	return fmt.Sprintf(msg, args...)
}

// Has reports whether key has a message.
func (t *Translator) Has(key string) bool {
	_, ok := t.messages[key]
	return ok
}

func arabicMessages() map[string]string {
	return map[string]string{
		ErrKeyInvalidRequest:     "طلب غير صالح.",
		ErrKeyInvalidRequestBody: "بيانات الطلب غير صالحة.",
		ErrKeyInternalError:      "حدث خطأ غير متوقع، يرجى المحاولة مرة أخرى.",
		ErrKeyNotFound:           "الصفحة المطلوبة غير موجودة.",
		ErrKeyRateLimitExceeded:  "عدد كبير من الطلبات، يرجى المحاولة لاحقًا.",
		ErrKeyTimeout:            "انتهت مهلة الطلب، يرجى المحاولة مرة أخرى.",
		ErrKeyServiceUnavailable: "الخدمة غير متاحة حاليًا، يرجى المحاولة لاحقًا.",
		ErrKeyInvalidCatalog:     "بيانات الكتالوج غير صالحة.",

		ValidationKeyNameRequired:         "الاسم الكامل مطلوب.",
		ValidationKeyQuantityRequired:     "عدد القطع مطلوب.",
		ValidationKeyTypeRequiredSingle:   "نوع الفلاشة مطلوب عند طلب قطعة واحدة.",
		ValidationKeyTypeRequiredMultiple: "يرجى تحديد نوع الفلاشة أو تخصيص الأنواع عند طلب أكثر من قطعة.",
		ValidationKeyPhoneRequired:        "رقم الهاتف مطلوب.",
		ValidationKeyRegionRequired:       "المحافظة مطلوبة.",
		ValidationKeyRegionUnavailable:    "عذرًا، لا يتوفر التوصيل إلى محافظة %s. يرجى اختيار محافظة أخرى.",
		ValidationKeyAddressRequired:      "العنوان بالتفصيل مطلوب.",

		SuccessKeyQuoteReady:    "تم حساب التكلفة.",
		SuccessKeyOrderPrepared: "تم تجهيز الطلب، سيتم تحويلك إلى واتساب.",
	}
}
