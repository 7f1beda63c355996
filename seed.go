package main

import "tamrah/internal/models"

func strPtr(s string) *string { return &s }

// seedDateTypes is the starter catalog loaded into an empty database when
// SEED_CATALOG is set.
func seedDateTypes() []models.DateTypeInput {
	return []models.DateTypeInput{
		{
			NameEn:            "Ajwa",
			NameAr:            "عجوة",
			DescriptionEn:     "A small, dark date from Al Madinah, prized since early Islamic times.",
			DescriptionAr:     "تمر صغير داكن من المدينة المنورة، له مكانة خاصة منذ صدر الإسلام.",
			TasteProfileEn:    "Mildly sweet with notes of prune and cocoa",
			TasteProfileAr:    "حلاوة معتدلة مع نكهة البرقوق والكاكاو",
			SweetnessLevel:    3,
			TextureEn:         "soft and tender",
			TextureAr:         "طري وناعم",
			Color:             "black",
			SizeEn:            "small",
			SizeAr:            "صغير",
			AveragePricePerKg: 120,
			KeyFeaturesEn:     "Rich in fiber, traditional heritage variety",
			KeyFeaturesAr:     "غني بالألياف، صنف تراثي",
			IsPremium:         true,
			HarvestSeasonEn:   strPtr("July to September"),
			HarvestSeasonAr:   strPtr("من يوليو إلى سبتمبر"),
			OriginRegionEn:    strPtr("Al Madinah"),
			OriginRegionAr:    strPtr("المدينة المنورة"),
		},
		{
			NameEn:            "Sukkari",
			NameAr:            "سكري",
			DescriptionEn:     "A golden date from Al Qassim known for its melt-in-the-mouth sweetness.",
			DescriptionAr:     "تمر ذهبي من القصيم يشتهر بحلاوته التي تذوب في الفم.",
			TasteProfileEn:    "Very sweet, caramel and honey",
			TasteProfileAr:    "حلو جداً بطعم الكراميل والعسل",
			SweetnessLevel:    5,
			TextureEn:         "soft",
			TextureAr:         "طري",
			Color:             "golden",
			SizeEn:            "medium",
			SizeAr:            "متوسط",
			AveragePricePerKg: 45,
			KeyFeaturesEn:     "Crystallised sugar coating, popular for gifting",
			KeyFeaturesAr:     "طبقة سكرية متبلورة، مفضل للإهداء",
			IsPremium:         false,
			HarvestSeasonEn:   strPtr("August to October"),
			HarvestSeasonAr:   strPtr("من أغسطس إلى أكتوبر"),
			OriginRegionEn:    strPtr("Al Qassim"),
			OriginRegionAr:    strPtr("القصيم"),
		},
		{
			NameEn:            "Khalas",
			NameAr:            "خلاص",
			DescriptionEn:     "The signature date of Al Ahsa, served with Arabic coffee.",
			DescriptionAr:     "تمر الأحساء الأشهر، يقدم مع القهوة العربية.",
			TasteProfileEn:    "Butterscotch sweetness with a light finish",
			TasteProfileAr:    "حلاوة الزبدة المحلاة مع نهاية خفيفة",
			SweetnessLevel:    4,
			TextureEn:         "soft and moist",
			TextureAr:         "طري ورطب",
			Color:             "amber",
			SizeEn:            "medium",
			SizeAr:            "متوسط",
			AveragePricePerKg: 40,
			KeyFeaturesEn:     "Classic pairing with gahwa",
			KeyFeaturesAr:     "الرفيق التقليدي للقهوة",
			IsPremium:         false,
			OriginRegionEn:    strPtr("Al Ahsa"),
			OriginRegionAr:    strPtr("الأحساء"),
		},
		{
			NameEn:            "Medjool",
			NameAr:            "مجدول",
			DescriptionEn:     "A large, fleshy date grown across the Kingdom's farms.",
			DescriptionAr:     "تمر كبير لحمي يزرع في مزارع المملكة.",
			TasteProfileEn:    "Rich toffee sweetness",
			TasteProfileAr:    "حلاوة غنية بطعم التوفي",
			SweetnessLevel:    4,
			TextureEn:         "soft and chewy",
			TextureAr:         "طري ومطاطي",
			Color:             "reddish brown",
			SizeEn:            "large",
			SizeAr:            "كبير",
			AveragePricePerKg: 95,
			KeyFeaturesEn:     "Large size, high flesh to seed ratio",
			KeyFeaturesAr:     "حجم كبير ونسبة لحم عالية",
			IsPremium:         true,
			HarvestSeasonEn:   strPtr("August to September"),
			HarvestSeasonAr:   strPtr("من أغسطس إلى سبتمبر"),
		},
		{
			NameEn:            "Safawi",
			NameAr:            "صفاوي",
			DescriptionEn:     "A long, dark date from Al Madinah with a lightly wrinkled skin.",
			DescriptionAr:     "تمر طويل داكن من المدينة المنورة بقشرة مجعدة قليلاً.",
			TasteProfileEn:    "Moderately sweet, slightly earthy",
			TasteProfileAr:    "حلاوة متوسطة مع نكهة ترابية خفيفة",
			SweetnessLevel:    3,
			TextureEn:         "firm and chewy",
			TextureAr:         "متماسك ومطاطي",
			Color:             "dark brown",
			SizeEn:            "medium",
			SizeAr:            "متوسط",
			AveragePricePerKg: 35,
			KeyFeaturesEn:     "Good keeping quality, everyday date",
			KeyFeaturesAr:     "يحفظ جيداً، تمر للاستهلاك اليومي",
			IsPremium:         false,
			OriginRegionEn:    strPtr("Al Madinah"),
			OriginRegionAr:    strPtr("المدينة المنورة"),
		},
		{
			NameEn:            "Segai",
			NameAr:            "صقعي",
			DescriptionEn:     "A two-toned date from Riyadh, dry at the tip and soft at the base.",
			DescriptionAr:     "تمر ثنائي اللون من الرياض، جاف الطرف وطري القاعدة.",
			TasteProfileEn:    "Light sweetness with a crisp bite",
			TasteProfileAr:    "حلاوة خفيفة مع قضمة مقرمشة",
			SweetnessLevel:    2,
			TextureEn:         "firm",
			TextureAr:         "متماسك",
			Color:             "golden and brown",
			SizeEn:            "medium",
			SizeAr:            "متوسط",
			AveragePricePerKg: 50,
			KeyFeaturesEn:     "Distinctive two-tone appearance",
			KeyFeaturesAr:     "مظهر مميز بلونين",
			IsPremium:         false,
			OriginRegionEn:    strPtr("Riyadh"),
			OriginRegionAr:    strPtr("الرياض"),
		},
	}
}
