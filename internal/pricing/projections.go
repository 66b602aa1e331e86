package pricing

import (
	"strings"

	"github.com/shopspring/decimal"

	"catalog-core/internal/models"
	"catalog-core/internal/slug"
)

// pesos del score de popularidad cuando no hay uno precalculado
var (
	weightView      = decimal.NewFromFloat(0.1)
	weightAddToCart = decimal.NewFromInt(2)
	weightWishlist  = decimal.NewFromFloat(1.5)
	weightSold      = decimal.NewFromInt(5)
)

// AttributesOf combina atributos anidados y planos; el anidado gana campo a campo
func AttributesOf(v *models.Variation) models.AttributeSet {
	set := models.AttributeSet{
		Color:   v.Color,
		Size:    v.Size,
		Storage: v.Storage,
	}
	a := v.Attributes
	if a == nil {
		return set
	}
	if a.Color != "" {
		set.Color = a.Color
	}
	if a.Size != "" {
		set.Size = a.Size
	}
	if s := a.Technical["storage"]; s != "" {
		set.Storage = s
	}
	set.Material = a.Material
	if len(a.Technical) > 0 {
		set.Technical = make(map[string]string, len(a.Technical))
		for k, val := range a.Technical {
			set.Technical[k] = val
		}
	}
	return set
}

// DisplayName: "Red / XL / 128GB", o el SKU si no hay atributos
func DisplayName(v *models.Variation) string {
	a := AttributesOf(v)
	parts := make([]string, 0, 4)
	for _, p := range []string{a.Color, a.Size, a.Storage, a.Material} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return v.SKU
	}
	return strings.Join(parts, " / ")
}

// URLSlug prefiere el slug SEO explícito
func URLSlug(v *models.Variation) string {
	if v.SEO != nil && v.SEO.Metadata.Slug != "" {
		return v.SEO.Metadata.Slug
	}
	a := AttributesOf(v)
	return slug.Join(v.SKU, a.Color, a.Size, a.Storage)
}

// MatchesSearch busca query (sin distinguir mayúsculas) en sku, atributos y
// términos SEO. Una consulta vacía coincide siempre.
func MatchesSearch(v *models.Variation, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}

	a := AttributesOf(v)
	for _, field := range []string{v.SKU, a.Color, a.Size, a.Storage} {
		if contains(field, q) {
			return true
		}
	}

	if v.SEO == nil {
		return false
	}
	so := v.SEO.SearchOptimization
	for _, terms := range [][]string{v.SEO.Metadata.Keywords, so.SearchKeywords, so.Synonyms, so.AutoSuggestTerms} {
		for _, term := range terms {
			if contains(term, q) {
				return true
			}
		}
	}
	return false
}

// PopularityScore devuelve el score almacenado o, si falta, uno derivado de
// interacción, ventas y valoraciones.
func PopularityScore(v *models.Variation) float64 {
	an := v.Analytics
	if an == nil {
		return 0
	}
	if an.Performance.PopularityScore > 0 {
		return an.Performance.PopularityScore
	}

	score := decimal.NewFromInt(an.Engagement.Views).Mul(weightView).
		Add(decimal.NewFromInt(an.Engagement.AddToCartCount).Mul(weightAddToCart)).
		Add(decimal.NewFromInt(an.Engagement.WishlistCount).Mul(weightWishlist)).
		Add(decimal.NewFromInt(an.Sales.TotalSold).Mul(weightSold)).
		Add(decimal.NewFromFloat(an.CustomerBehavior.AverageRating).Mul(decimal.NewFromInt(an.CustomerBehavior.ReviewCount)))
	return roundHalfUp(score, 2).InexactFloat64()
}

func contains(field, lowerQuery string) bool {
	return field != "" && strings.Contains(strings.ToLower(field), lowerQuery)
}
