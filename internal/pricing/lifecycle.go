package pricing

import (
	"time"

	"catalog-core/internal/models"
)

// SoftDelete marca la variación como eliminada y la saca de la venta
func SoftDelete(v *models.Variation, reason string, now time.Time) {
	v.IsDeleted = true
	v.DeletedAt = &now
	v.DeletionReason = reason
	v.UpdatedAt = now
	if v.Inventory != nil {
		v.Inventory.StockStatus = models.StockDiscontinued
	}
}

// Restore deshace SoftDelete. El estado de stock se recalcula con la
// cantidad actual, sin importar el que tuviera al borrarse.
func Restore(v *models.Variation, now time.Time) {
	v.IsDeleted = false
	v.DeletedAt = nil
	v.DeletionReason = ""
	v.UpdatedAt = now
	if v.Inventory != nil {
		v.Inventory.StockStatus = StockStatusFor(v.Inventory.Quantity)
	}
}
