package pricing

import "catalog-core/internal/models"

// IsInStock indica si se pueden servir requested unidades
func IsInStock(v *models.Variation, requested int) (bool, error) {
	if requested < 1 {
		return false, &models.ValidationError{Field: "quantity", Message: "requested quantity must be at least 1"}
	}
	if v.Inventory != nil {
		return v.Inventory.Quantity-v.Inventory.ReservedQuantity >= requested, nil
	}
	return legacyQuantity(v) >= requested, nil
}

// AvailableQuantity es el stock no reservado, nunca negativo
func AvailableQuantity(v *models.Variation) int {
	available := legacyQuantity(v)
	if v.Inventory != nil {
		available = v.Inventory.Quantity - v.Inventory.ReservedQuantity
	}
	if available < 0 {
		return 0
	}
	return available
}

// NeedsReorder solo aplica al inventario anidado
func NeedsReorder(v *models.Variation) bool {
	if v.Inventory == nil {
		return false
	}
	reorderPoint := 0
	if v.Inventory.ReorderPoint != nil {
		reorderPoint = *v.Inventory.ReorderPoint
	}
	return v.Inventory.Quantity <= reorderPoint
}

// StockStatusFor deriva el estado a partir de la cantidad física
func StockStatusFor(quantity int) string {
	if quantity > 0 {
		return models.StockInStock
	}
	return models.StockOutOfStock
}

func legacyQuantity(v *models.Variation) int {
	if v.Quantity == nil {
		return 0
	}
	return *v.Quantity
}
