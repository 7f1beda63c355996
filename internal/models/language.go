package models

// Language is a UI language supported by the catalog.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"
)

// DefaultLanguage is used when neither the request nor a stored preference
// names a language.
const DefaultLanguage = LanguageEnglish

// ParseLanguage returns the language for s and whether it is supported.
func ParseLanguage(s string) (Language, bool) {
	switch Language(s) {
	case LanguageEnglish, LanguageArabic:
		return Language(s), true
	}
	return "", false
}

// Direction returns the text direction used to render the language.
func (l Language) Direction() string {
	if l == LanguageArabic {
		return "rtl"
	}
	return "ltr"
}

// LanguagePreference is the body of the language preference endpoints.
type LanguagePreference struct {
	Language string `json:"language" validate:"required,oneof=en ar"`
}

// DateTypeView is a DateType projected onto a single language.
type DateTypeView struct {
	ID                uint     `json:"id"`
	Language          Language `json:"language"`
	Dir               string   `json:"dir"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	TasteProfile      string   `json:"taste_profile"`
	Texture           string   `json:"texture"`
	Size              string   `json:"size"`
	KeyFeatures       string   `json:"key_features"`
	HarvestSeason     *string  `json:"harvest_season"`
	OriginRegion      *string  `json:"origin_region"`
	SweetnessLevel    int      `json:"sweetness_level"`
	Color             string   `json:"color"`
	AveragePricePerKg float64  `json:"average_price_per_kg"`
	Currency          string   `json:"currency"`
	IsPremium         bool     `json:"is_premium"`
	ImageURL          *string  `json:"image_url"`
}

// Localize projects dt onto lang.
func (dt DateType) Localize(lang Language) DateTypeView {
	v := DateTypeView{
		ID:                dt.ID,
		Language:          lang,
		Dir:               lang.Direction(),
		SweetnessLevel:    dt.SweetnessLevel,
		Color:             dt.Color,
		AveragePricePerKg: dt.AveragePricePerKg,
		Currency:          Currency,
		IsPremium:         dt.IsPremium,
		ImageURL:          dt.ImageURL,
	}
	if lang == LanguageArabic {
		v.Name = dt.NameAr
		v.Description = dt.DescriptionAr
		v.TasteProfile = dt.TasteProfileAr
		v.Texture = dt.TextureAr
		v.Size = dt.SizeAr
		v.KeyFeatures = dt.KeyFeaturesAr
		v.HarvestSeason = dt.HarvestSeasonAr
		v.OriginRegion = dt.OriginRegionAr
		return v
	}
	v.Name = dt.NameEn
	v.Description = dt.DescriptionEn
	v.TasteProfile = dt.TasteProfileEn
	v.Texture = dt.TextureEn
	v.Size = dt.SizeEn
	v.KeyFeatures = dt.KeyFeaturesEn
	v.HarvestSeason = dt.HarvestSeasonEn
	v.OriginRegion = dt.OriginRegionEn
	return v
}
