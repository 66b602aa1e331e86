package pricing

import "catalog-core/internal/models"

// Summary arma la proyección pública de una variación. El descuento solo se
// incluye si hay oferta vigente y la analítica solo si se pide y existe.
func Summary(v *models.Variation, includeAnalytics bool) models.VariationSummary {
	s := models.VariationSummary{
		ID:                v.ID,
		ProductID:         v.ProductID,
		SKU:               v.SKU,
		DisplayName:       DisplayName(v),
		Attributes:        AttributesOf(v),
		URLSlug:           URLSlug(v),
		IsOnSale:          IsOnSale(v),
		AvailableQuantity: AvailableQuantity(v),
		NeedsReorder:      NeedsReorder(v),
		IsDeleted:         v.IsDeleted,
	}

	if base, ok := basePrice(v); ok {
		s.BasePrice = base.InexactFloat64()
	}
	// con las opciones por defecto no hay error posible
	s.FinalPrice, _ = CalculateFinalPrice(v, 1, DefaultPriceOptions())
	s.InStock, _ = IsInStock(v, 1)

	if v.Inventory != nil {
		s.StockStatus = v.Inventory.StockStatus
	}

	if s.IsOnSale && v.Pricing.SalePrice != nil {
		pct := DiscountPercentage(v)
		s.DiscountPercentage = &pct
	}

	if includeAnalytics && v.Analytics != nil {
		s.Analytics = &models.SummaryAnalytics{
			PopularityScore: PopularityScore(v),
			TotalSold:       v.Analytics.Sales.TotalSold,
			AverageRating:   v.Analytics.CustomerBehavior.AverageRating,
			ReviewCount:     v.Analytics.CustomerBehavior.ReviewCount,
		}
	}

	return s
}
