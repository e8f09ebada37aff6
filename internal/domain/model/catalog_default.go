package model

// SourceDefault names the built-in catalog used when no source could be loaded.
const SourceDefault = "default"

// DefaultUnifiedPrice is the single price every flash drive sells for before discount.
const DefaultUnifiedPrice = 515.0

// DefaultCatalogDocument returns the built-in storefront configuration.
func DefaultCatalogDocument() CatalogDocument {
	return CatalogDocument{
		FlashTypes: []ProductTypeDocument{
			{ID: "basic", Name: "فلاشة الحاسب الالي والبرمجة للأطفال", Price: DefaultUnifiedPrice},
			{ID: "foundation", Name: "فلاشة تأسيس الطفل", Price: DefaultUnifiedPrice},
			{ID: "drawing", Name: "فلاشة تعليم الرسم للأطفال", Price: DefaultUnifiedPrice},
			{ID: "muslim_child", Name: "فلاشة الطفل المسلم 3*1", Price: DefaultUnifiedPrice},
			{ID: "english", Name: "فلاشة تعليم الإنجليزية للأطفال", Price: DefaultUnifiedPrice},
			{ID: "prayer", Name: "فلاشة تعليم الصلاه للأطفال", Price: DefaultUnifiedPrice},
			{ID: "prophets", Name: "فلاشة قصص الانبياء", Price: DefaultUnifiedPrice},
			{ID: "islamic_cartoon", Name: "فلاشة مسلسلات الكرتون الاسلامي", Price: DefaultUnifiedPrice},
			{ID: "dubbed_cartoon", Name: "فلاشة كرتون الاطفال المدبلج", Price: DefaultUnifiedPrice},
			{ID: "golden_age_cartoon", Name: "فلاشة كرتون الزمن الجميل", Price: DefaultUnifiedPrice},
			{ID: "family_cartoon", Name: "فلاشة كرتون العيلة", Price: DefaultUnifiedPrice},
			{ID: "islamic_cartoon2", Name: "فلاشة الكرتون الاسلامي", Price: DefaultUnifiedPrice},
			{ID: "family_cartoon2", Name: "فلاشة كرتون كل الاسرة (توم و جيري)", Price: DefaultUnifiedPrice},
			{ID: "light_games", Name: "فلاشة العاب الكمبيوتر الخفيفه", Price: DefaultUnifiedPrice},
		},
		Discount: 0.25,
		WhatsApp: "201117635075",
		Shipping: ShippingTable{
			{Region: "القاهرة", Cost: 70},
			{Region: "الجيزة", Cost: 70},
			{Region: "القليوبية", Cost: 70},
			{Region: "الإسكندرية", Cost: 70},
			{Region: "البحيرة", Cost: 70},
			{Region: "كفر الشيخ", Cost: 70},
			{Region: "الدقهلية", Cost: 70},
			{Region: "دمياط", Cost: 70},
			{Region: "الغربية", Cost: 70},
			{Region: "المنوفيه", Cost: 70},
			{Region: "الشرقية", Cost: 70},
			{Region: "بورسعيد", Cost: 70},
			{Region: "الإسماعيلية", Cost: 70},
			{Region: "السويس", Cost: 70},
			{Region: "مطروح", Cost: 95},
			{Region: "جنوب سيناء", Cost: 100},
			{Region: "بني سويف", Cost: 70},
			{Region: "الفيوم", Cost: 70},
			{Region: "المنيا", Cost: 70},
			{Region: "أسيوط", Cost: 70},
			{Region: "سوهاج", Cost: 70},
			{Region: "قنا", Cost: 70},
			{Region: "الأقصر", Cost: 70},
			{Region: "أسوان", Cost: 70},
			{Region: "البحر الاحمر", Cost: 95},
		},
		FreeShippingThreshold:   2,
		UnavailableGovernorates: []string{"شمال سيناء", "الوادي الجديد"},
	}
}

// DefaultCatalog builds the built-in catalog.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultCatalogDocument(), SourceDefault)
	if err != nil {
		// The built-in document is static; failing here is a programming error.
		panic(err)
	}
	return c
}
