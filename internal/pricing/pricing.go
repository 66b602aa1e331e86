// Package pricing calcula precio final, disponibilidad y proyecciones de una
// variación. Todas las funciones reciben la variación de forma explícita y no
// hacen I/O; la persistencia vive en services.VariationService.
package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"catalog-core/internal/models"
)

var (
	hundred = decimal.NewFromInt(100)
	half    = decimal.NewFromFloat(0.5)

	// descuento plano por tipo de cliente
	customerDiscounts = map[string]decimal.Decimal{
		models.CustomerRetail:    decimal.Zero,
		models.CustomerWholesale: decimal.NewFromFloat(0.10),
		models.CustomerVIP:       decimal.NewFromFloat(0.05),
	}
)

// PriceOptions controla qué reglas se aplican en CalculateFinalPrice
type PriceOptions struct {
	IncludeTax     bool
	ApplyDiscounts bool
	CustomerType   string
}

// DefaultPriceOptions: con impuestos, con descuentos, cliente minorista
func DefaultPriceOptions() PriceOptions {
	return PriceOptions{
		IncludeTax:     true,
		ApplyDiscounts: true,
		CustomerType:   models.CustomerRetail,
	}
}

// CalculateFinalPrice devuelve el precio unitario para quantity unidades.
// Orden de reglas: base, oferta, tramo por volumen (gana sobre la oferta),
// descuento por tipo de cliente, impuesto. Redondeo a céntimos.
func CalculateFinalPrice(v *models.Variation, quantity int, opts PriceOptions) (float64, error) {
	if quantity < 1 {
		return 0, &models.ValidationError{Field: "quantity", Message: "quantity must be at least 1"}
	}

	customerType := opts.CustomerType
	if customerType == "" {
		customerType = models.CustomerRetail
	}
	discount, ok := customerDiscounts[customerType]
	if !ok {
		return 0, &models.ValidationError{Field: "customer_type", Message: "unknown customer type: " + customerType}
	}

	price, ok := basePrice(v)
	if !ok {
		return 0, nil
	}

	p := v.Pricing
	if opts.ApplyDiscounts && p != nil && p.IsOnSale != nil && *p.IsOnSale && p.SalePrice != nil {
		price = decimal.NewFromFloat(*p.SalePrice)
	}

	if p != nil && quantity > 1 {
		if tier, found := bulkTierFor(p.BulkPricing, quantity); found {
			price = decimal.NewFromFloat(tier.Price)
		}
	}

	if opts.ApplyDiscounts && customerType != models.CustomerRetail {
		price = price.Mul(decimal.NewFromInt(1).Sub(discount))
	}

	if opts.IncludeTax && p != nil && p.TaxRate != nil && *p.TaxRate != 0 {
		price = price.Add(price.Mul(decimal.NewFromFloat(*p.TaxRate)).Div(hundred))
	}

	return roundHalfUp(price, 2).InexactFloat64(), nil
}

// LineTotal multiplica el precio unitario ya redondeado por la cantidad
func LineTotal(unitPrice float64, quantity int) float64 {
	total := decimal.NewFromFloat(unitPrice).Mul(decimal.NewFromInt(int64(quantity)))
	return roundHalfUp(total, 2).InexactFloat64()
}

// IsOnSale evalúa la oferta con la hora actual
func IsOnSale(v *models.Variation) bool {
	return IsOnSaleAt(v, time.Now())
}

// IsOnSaleAt evalúa la oferta en el instante now. Con ventana de fechas
// completa manda la ventana (inclusiva); sin ella, basta salePrice < basePrice.
func IsOnSaleAt(v *models.Variation, now time.Time) bool {
	p := v.Pricing
	if p == nil || p.SalePrice == nil {
		return false
	}
	if p.IsOnSale != nil && !*p.IsOnSale {
		return false
	}
	if p.SaleStartDate != nil && p.SaleEndDate != nil {
		return !now.Before(*p.SaleStartDate) && !now.After(*p.SaleEndDate)
	}

	base, ok := basePrice(v)
	if !ok {
		return false
	}
	return decimal.NewFromFloat(*p.SalePrice).LessThan(base)
}

// DiscountPercentage devuelve el % de rebaja de la oferta vigente
func DiscountPercentage(v *models.Variation) int {
	if !IsOnSale(v) {
		return 0
	}
	base, ok := basePrice(v)
	if !ok || !base.IsPositive() {
		return 0
	}
	sale := decimal.NewFromFloat(*v.Pricing.SalePrice)
	return int(roundHalfUp(base.Sub(sale).Div(base).Mul(hundred), 0).IntPart())
}

// ProfitMargin es el margen sobre precio de venta, no sobre coste
func ProfitMargin(v *models.Variation) int {
	p := v.Pricing
	if p == nil || p.CostPrice == nil || p.BasePrice == nil || *p.CostPrice <= 0 || *p.BasePrice <= 0 {
		return 0
	}
	base := decimal.NewFromFloat(*p.BasePrice)
	cost := decimal.NewFromFloat(*p.CostPrice)
	return int(roundHalfUp(base.Sub(cost).Div(base).Mul(hundred), 0).IntPart())
}

// basePrice: precio anidado y, si no existe, el precio plano antiguo
func basePrice(v *models.Variation) (decimal.Decimal, bool) {
	if v.Pricing != nil && v.Pricing.BasePrice != nil {
		return decimal.NewFromFloat(*v.Pricing.BasePrice), true
	}
	if v.Price != nil {
		return decimal.NewFromFloat(*v.Price), true
	}
	return decimal.Zero, false
}

// bulkTierFor elige el tramo de mayor umbral que no supere quantity
func bulkTierFor(tiers []models.BulkTier, quantity int) (models.BulkTier, bool) {
	var (
		best  models.BulkTier
		found bool
	)
	for _, t := range tiers {
		if t.Quantity <= quantity && (!found || t.Quantity > best.Quantity) {
			best = t
			found = true
		}
	}
	return best, found
}

// roundHalfUp redondea hacia arriba en el punto medio (2.345 -> 2.35, -2.5 -> -2)
func roundHalfUp(d decimal.Decimal, places int32) decimal.Decimal {
	return d.Shift(places).Add(half).Floor().Shift(-places)
}
