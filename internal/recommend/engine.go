// Package recommend ranks catalog records against a visitor's preferences.
//
// Recommend is a pure function over a snapshot of the catalog: it never
// mutates its input and never fails. Queries are validated before they
// get here.
package recommend

import (
	"sort"
	"strings"

	"tamrah/internal/models"
)

// MaxResults is the largest number of records Recommend returns.
const MaxResults = 3

// textureKeywords lists the English texture substrings that satisfy each
// texture preference. Matching is case-sensitive.
var textureKeywords = map[string][]string{
	models.TextureSoft: {"soft", "tender"},
	models.TextureFirm: {"firm", "chewy"},
}

// Recommend filters snapshot by q and returns at most MaxResults records,
// sweetest first with premium varieties breaking ties.
func Recommend(snapshot []models.DateType, q models.RecommendationQuery) []models.DateType {
	matches := make([]models.DateType, 0, len(snapshot))
	for _, dt := range snapshot {
		if Matches(dt, q) {
			matches = append(matches, dt)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].SweetnessLevel != matches[j].SweetnessLevel {
			return matches[i].SweetnessLevel > matches[j].SweetnessLevel
		}
		return matches[i].IsPremium && !matches[j].IsPremium
	})

	if len(matches) > MaxResults {
		matches = matches[:MaxResults]
	}
	return matches
}

// Matches reports whether dt satisfies every constraint present in q.
func Matches(dt models.DateType, q models.RecommendationQuery) bool {
	// One level below the stated preference is accepted so that a
	// preference of 5 still has candidates.
	if q.SweetnessPreference != nil && dt.SweetnessLevel < *q.SweetnessPreference-1 {
		return false
	}
	if q.BudgetMax != nil && dt.AveragePricePerKg > *q.BudgetMax {
		return false
	}
	if q.IsPremiumPreferred != nil && dt.IsPremium != *q.IsPremiumPreferred {
		return false
	}
	if q.TexturePreference != nil {
		keywords, ok := textureKeywords[*q.TexturePreference]
		if ok && !containsAny(dt.TextureEn, keywords) {
			return false
		}
	}
	return true
}

func containsAny(s string, substrs []string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
