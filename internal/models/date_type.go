package models

import "time"

// DateType represents one date variety in the catalog.
type DateType struct {
	ID                uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	NameEn            string    `json:"name_en" gorm:"not null" validate:"required"`
	NameAr            string    `json:"name_ar" gorm:"not null" validate:"required"`
	DescriptionEn     string    `json:"description_en" gorm:"not null" validate:"required"`
	DescriptionAr     string    `json:"description_ar" gorm:"not null" validate:"required"`
	TasteProfileEn    string    `json:"taste_profile_en" gorm:"not null" validate:"required"`
	TasteProfileAr    string    `json:"taste_profile_ar" gorm:"not null" validate:"required"`
	SweetnessLevel    int       `json:"sweetness_level" gorm:"not null;index" validate:"min=1,max=5"`
	TextureEn         string    `json:"texture_en" gorm:"not null" validate:"required"`
	TextureAr         string    `json:"texture_ar" gorm:"not null" validate:"required"`
	Color             string    `json:"color"`
	SizeEn            string    `json:"size_en" gorm:"not null" validate:"required"`
	SizeAr            string    `json:"size_ar" gorm:"not null" validate:"required"`
	AveragePricePerKg float64   `json:"average_price_per_kg" gorm:"not null" validate:"gte=0"`
	KeyFeaturesEn     string    `json:"key_features_en" gorm:"not null" validate:"required"`
	KeyFeaturesAr     string    `json:"key_features_ar" gorm:"not null" validate:"required"`
	ImageURL          *string   `json:"image_url"`
	IsPremium         bool      `json:"is_premium" gorm:"not null;default:false;index"`
	HarvestSeasonEn   *string   `json:"harvest_season_en"`
	HarvestSeasonAr   *string   `json:"harvest_season_ar"`
	OriginRegionEn    *string   `json:"origin_region_en"`
	OriginRegionAr    *string   `json:"origin_region_ar"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TableName keeps the table name stable regardless of GORM naming strategy.
func (DateType) TableName() string {
	return "date_types"
}

// DateTypeInput is the write contract for creating or fully replacing a
// date type. Identity and timestamps are always assigned by the store.
type DateTypeInput struct {
	NameEn            string  `json:"name_en" validate:"required"`
	NameAr            string  `json:"name_ar" validate:"required"`
	DescriptionEn     string  `json:"description_en" validate:"required"`
	DescriptionAr     string  `json:"description_ar" validate:"required"`
	TasteProfileEn    string  `json:"taste_profile_en" validate:"required"`
	TasteProfileAr    string  `json:"taste_profile_ar" validate:"required"`
	SweetnessLevel    int     `json:"sweetness_level" validate:"min=1,max=5"`
	TextureEn         string  `json:"texture_en" validate:"required"`
	TextureAr         string  `json:"texture_ar" validate:"required"`
	Color             string  `json:"color"`
	SizeEn            string  `json:"size_en" validate:"required"`
	SizeAr            string  `json:"size_ar" validate:"required"`
	AveragePricePerKg float64 `json:"average_price_per_kg" validate:"gte=0"`
	KeyFeaturesEn     string  `json:"key_features_en" validate:"required"`
	KeyFeaturesAr     string  `json:"key_features_ar" validate:"required"`
	ImageURL          *string `json:"image_url"`
	IsPremium         bool    `json:"is_premium"`
	HarvestSeasonEn   *string `json:"harvest_season_en"`
	HarvestSeasonAr   *string `json:"harvest_season_ar"`
	OriginRegionEn    *string `json:"origin_region_en"`
	OriginRegionAr    *string `json:"origin_region_ar"`
}

// ToDateType builds a record without identity or timestamps.
func (in DateTypeInput) ToDateType() DateType {
	return DateType{
		NameEn:            in.NameEn,
		NameAr:            in.NameAr,
		DescriptionEn:     in.DescriptionEn,
		DescriptionAr:     in.DescriptionAr,
		TasteProfileEn:    in.TasteProfileEn,
		TasteProfileAr:    in.TasteProfileAr,
		SweetnessLevel:    in.SweetnessLevel,
		TextureEn:         in.TextureEn,
		TextureAr:         in.TextureAr,
		Color:             in.Color,
		SizeEn:            in.SizeEn,
		SizeAr:            in.SizeAr,
		AveragePricePerKg: in.AveragePricePerKg,
		KeyFeaturesEn:     in.KeyFeaturesEn,
		KeyFeaturesAr:     in.KeyFeaturesAr,
		ImageURL:          in.ImageURL,
		IsPremium:         in.IsPremium,
		HarvestSeasonEn:   in.HarvestSeasonEn,
		HarvestSeasonAr:   in.HarvestSeasonAr,
		OriginRegionEn:    in.OriginRegionEn,
		OriginRegionAr:    in.OriginRegionAr,
	}
}

// DateTypePatch carries a partial update. Nil fields are left untouched.
// Nullable columns can be cleared by sending an empty string.
type DateTypePatch struct {
	NameEn            *string  `json:"name_en"`
	NameAr            *string  `json:"name_ar"`
	DescriptionEn     *string  `json:"description_en"`
	DescriptionAr     *string  `json:"description_ar"`
	TasteProfileEn    *string  `json:"taste_profile_en"`
	TasteProfileAr    *string  `json:"taste_profile_ar"`
	SweetnessLevel    *int     `json:"sweetness_level"`
	TextureEn         *string  `json:"texture_en"`
	TextureAr         *string  `json:"texture_ar"`
	Color             *string  `json:"color"`
	SizeEn            *string  `json:"size_en"`
	SizeAr            *string  `json:"size_ar"`
	AveragePricePerKg *float64 `json:"average_price_per_kg"`
	KeyFeaturesEn     *string  `json:"key_features_en"`
	KeyFeaturesAr     *string  `json:"key_features_ar"`
	ImageURL          *string  `json:"image_url"`
	IsPremium         *bool    `json:"is_premium"`
	HarvestSeasonEn   *string  `json:"harvest_season_en"`
	HarvestSeasonAr   *string  `json:"harvest_season_ar"`
	OriginRegionEn    *string  `json:"origin_region_en"`
	OriginRegionAr    *string  `json:"origin_region_ar"`
}

// Apply merges the patch onto a copy of dt and returns it as a full input.
func (p DateTypePatch) Apply(dt DateType) DateTypeInput {
	in := DateTypeInput{
		NameEn:            dt.NameEn,
		NameAr:            dt.NameAr,
		DescriptionEn:     dt.DescriptionEn,
		DescriptionAr:     dt.DescriptionAr,
		TasteProfileEn:    dt.TasteProfileEn,
		TasteProfileAr:    dt.TasteProfileAr,
		SweetnessLevel:    dt.SweetnessLevel,
		TextureEn:         dt.TextureEn,
		TextureAr:         dt.TextureAr,
		Color:             dt.Color,
		SizeEn:            dt.SizeEn,
		SizeAr:            dt.SizeAr,
		AveragePricePerKg: dt.AveragePricePerKg,
		KeyFeaturesEn:     dt.KeyFeaturesEn,
		KeyFeaturesAr:     dt.KeyFeaturesAr,
		ImageURL:          dt.ImageURL,
		IsPremium:         dt.IsPremium,
		HarvestSeasonEn:   dt.HarvestSeasonEn,
		HarvestSeasonAr:   dt.HarvestSeasonAr,
		OriginRegionEn:    dt.OriginRegionEn,
		OriginRegionAr:    dt.OriginRegionAr,
	}

	setString(&in.NameEn, p.NameEn)
	setString(&in.NameAr, p.NameAr)
	setString(&in.DescriptionEn, p.DescriptionEn)
	setString(&in.DescriptionAr, p.DescriptionAr)
	setString(&in.TasteProfileEn, p.TasteProfileEn)
	setString(&in.TasteProfileAr, p.TasteProfileAr)
	setString(&in.TextureEn, p.TextureEn)
	setString(&in.TextureAr, p.TextureAr)
	setString(&in.Color, p.Color)
	setString(&in.SizeEn, p.SizeEn)
	setString(&in.SizeAr, p.SizeAr)
	setString(&in.KeyFeaturesEn, p.KeyFeaturesEn)
	setString(&in.KeyFeaturesAr, p.KeyFeaturesAr)
	if p.SweetnessLevel != nil {
		in.SweetnessLevel = *p.SweetnessLevel
	}
	if p.AveragePricePerKg != nil {
		in.AveragePricePerKg = *p.AveragePricePerKg
	}
	if p.IsPremium != nil {
		in.IsPremium = *p.IsPremium
	}
	setNullable(&in.ImageURL, p.ImageURL)
	setNullable(&in.HarvestSeasonEn, p.HarvestSeasonEn)
	setNullable(&in.HarvestSeasonAr, p.HarvestSeasonAr)
	setNullable(&in.OriginRegionEn, p.OriginRegionEn)
	setNullable(&in.OriginRegionAr, p.OriginRegionAr)
	return in
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setNullable(dst **string, v *string) {
	if v == nil {
		return
	}
	if *v == "" {
		*dst = nil
		return
	}
	s := *v
	*dst = &s
}
