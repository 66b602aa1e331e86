package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"catalog-core/internal/models"
	"catalog-core/internal/pricing"
)

// VariationStore es el acceso a la colección de variaciones.
// FindOne y FindByID devuelven nil, nil cuando no hay documento.
type VariationStore interface {
	Find(ctx context.Context, filter bson.M) ([]models.Variation, error)
	FindOne(ctx context.Context, filter bson.M) (*models.Variation, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Variation, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	Save(ctx context.Context, variation *models.Variation) error
}

// Quote es el resultado de cotizar una cantidad de una variación
type Quote struct {
	VariationID  primitive.ObjectID `json:"variation_id"`
	Quantity     int                `json:"quantity"`
	CustomerType string             `json:"customer_type"`
	UnitPrice    float64            `json:"unit_price"`
	Total        float64            `json:"total"`
	InStock      bool               `json:"in_stock"`
}

// VariationService persiste variaciones y expone el motor de precios sobre ellas
type VariationService struct {
	store  VariationStore
	logger *zap.Logger
	now    func() time.Time
}

func NewVariationService(store VariationStore, logger *zap.Logger) *VariationService {
	return &VariationService{
		store:  store,
		logger: logger.Named("variations"),
		now:    time.Now,
	}
}

// Create valida y guarda una variación nueva
func (s *VariationService) Create(ctx context.Context, req models.VariationCreate) (*models.Variation, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if req.ProductID.IsZero() {
		return nil, &models.ValidationError{Field: "product_id", Message: "product_id is required"}
	}
	if req.Price == nil && (req.Pricing == nil || req.Pricing.BasePrice == nil) {
		return nil, &models.ValidationError{Field: "price", Message: "price or pricing.base_price is required"}
	}
	if req.Quantity == nil && req.Inventory == nil {
		return nil, &models.ValidationError{Field: "quantity", Message: "quantity or inventory is required"}
	}
	if req.Inventory != nil && (req.Inventory.Quantity < 0 || req.Inventory.ReservedQuantity < 0) {
		return nil, &models.ValidationError{Field: "inventory", Message: "inventory quantities cannot be negative"}
	}

	sku := strings.TrimSpace(req.SKU)
	existing, err := s.store.Count(ctx, bson.M{"sku": sku})
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, &models.ValidationError{Field: "sku", Message: "sku already exists"}
	}

	variation := &models.Variation{
		ProductID:  req.ProductID,
		SKU:        sku,
		Color:      req.Color,
		Size:       req.Size,
		Storage:    req.Storage,
		Price:      req.Price,
		Quantity:   req.Quantity,
		Pricing:    req.Pricing,
		Inventory:  req.Inventory,
		Attributes: req.Attributes,
		SEO:        req.SEO,
	}
	if variation.Inventory != nil && variation.Inventory.StockStatus == "" {
		variation.Inventory.StockStatus = pricing.StockStatusFor(variation.Inventory.Quantity)
	}

	if err := s.store.Save(ctx, variation); err != nil {
		return nil, err
	}

	s.logger.Info("variation created",
		zap.String("variation_id", variation.ID.Hex()),
		zap.String("sku", variation.SKU),
	)
	return variation, nil
}

// Get devuelve la variación aunque esté borrada
func (s *VariationService) Get(ctx context.Context, id primitive.ObjectID) (*models.Variation, error) {
	variation, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if variation == nil {
		return nil, fmt.Errorf("variation %s: %w", id.Hex(), models.ErrNotFound)
	}
	return variation, nil
}

// Summary proyecta la variación en el formato público
func (s *VariationService) Summary(ctx context.Context, id primitive.ObjectID, includeAnalytics bool) (*models.VariationSummary, error) {
	variation, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	summary := pricing.Summary(variation, includeAnalytics)
	return &summary, nil
}

// ListByProduct lista las variaciones vivas de un producto filtradas por query
func (s *VariationService) ListByProduct(ctx context.Context, productID primitive.ObjectID, query string) ([]models.Variation, error) {
	variations, err := s.store.Find(ctx, bson.M{"product_id": productID, "is_deleted": false})
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(query) == "" {
		return variations, nil
	}

	matches := make([]models.Variation, 0, len(variations))
	for i := range variations {
		if pricing.MatchesSearch(&variations[i], query) {
			matches = append(matches, variations[i])
		}
	}
	return matches, nil
}

// Quote cotiza quantity unidades con las opciones dadas
func (s *VariationService) Quote(ctx context.Context, id primitive.ObjectID, quantity int, opts pricing.PriceOptions) (*Quote, error) {
	variation, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if variation.IsDeleted {
		return nil, fmt.Errorf("variation %s: %w", id.Hex(), models.ErrNotFound)
	}

	unit, err := pricing.CalculateFinalPrice(variation, quantity, opts)
	if err != nil {
		return nil, err
	}
	inStock, err := pricing.IsInStock(variation, quantity)
	if err != nil {
		return nil, err
	}

	customerType := opts.CustomerType
	if customerType == "" {
		customerType = models.CustomerRetail
	}
	return &Quote{
		VariationID:  variation.ID,
		Quantity:     quantity,
		CustomerType: customerType,
		UnitPrice:    unit,
		Total:        pricing.LineTotal(unit, quantity),
		InStock:      inStock,
	}, nil
}

// SoftDelete marca la variación como borrada y la persiste
func (s *VariationService) SoftDelete(ctx context.Context, id primitive.ObjectID, reason string) (*models.Variation, error) {
	variation, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	pricing.SoftDelete(variation, reason, s.now())
	if err := s.store.Save(ctx, variation); err != nil {
		return nil, err
	}

	s.logger.Info("variation deleted",
		zap.String("variation_id", id.Hex()),
		zap.String("reason", reason),
	)
	return variation, nil
}

// Restore deshace SoftDelete y recalcula el estado de stock
func (s *VariationService) Restore(ctx context.Context, id primitive.ObjectID) (*models.Variation, error) {
	variation, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	pricing.Restore(variation, s.now())
	if err := s.store.Save(ctx, variation); err != nil {
		return nil, err
	}

	s.logger.Info("variation restored", zap.String("variation_id", id.Hex()))
	return variation, nil
}
