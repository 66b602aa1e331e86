package handlers

//go:generate mockgen -source=variation_handler.go -destination=mock_variation_service_test.go -package=handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"catalog-core/internal/models"
	"catalog-core/internal/pricing"
	"catalog-core/internal/services"
)

// VariationService es lo que los handlers necesitan de services.VariationService
type VariationService interface {
	Create(ctx context.Context, req models.VariationCreate) (*models.Variation, error)
	Summary(ctx context.Context, id primitive.ObjectID, includeAnalytics bool) (*models.VariationSummary, error)
	Quote(ctx context.Context, id primitive.ObjectID, quantity int, opts pricing.PriceOptions) (*services.Quote, error)
	ListByProduct(ctx context.Context, productID primitive.ObjectID, query string) ([]models.Variation, error)
	SoftDelete(ctx context.Context, id primitive.ObjectID, reason string) (*models.Variation, error)
	Restore(ctx context.Context, id primitive.ObjectID) (*models.Variation, error)
}

type VariationHandler struct {
	service VariationService
	logger  *zap.Logger
}

func NewVariationHandler(service VariationService, logger *zap.Logger) *VariationHandler {
	return &VariationHandler{service: service, logger: logger.Named("variations.http")}
}

// POST /v1/variations
func (h *VariationHandler) CreateVariation(c *gin.Context) {
	var req models.VariationCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	variation, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, pricing.Summary(variation, false))
}

// GET /v1/variations/:id
func (h *VariationHandler) GetVariation(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	summary, err := h.service.Summary(c.Request.Context(), id, c.Query("analytics") == "true")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GET /v1/variations/:id/price
func (h *VariationHandler) GetPrice(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	quantity, err := strconv.Atoi(c.DefaultQuery("quantity", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quantity"})
		return
	}
	opts := pricing.DefaultPriceOptions()
	if opts.IncludeTax, err = strconv.ParseBool(c.DefaultQuery("tax", "true")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tax"})
		return
	}
	if opts.ApplyDiscounts, err = strconv.ParseBool(c.DefaultQuery("discounts", "true")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid discounts"})
		return
	}
	if ct := c.Query("customer_type"); ct != "" {
		opts.CustomerType = ct
	}

	quote, err := h.service.Quote(c.Request.Context(), id, quantity, opts)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// GET /v1/products/:id/variations
func (h *VariationHandler) ListProductVariations(c *gin.Context) {
	productID, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	variations, err := h.service.ListByProduct(c.Request.Context(), productID, c.Query("q"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	summaries := make([]models.VariationSummary, 0, len(variations))
	for i := range variations {
		summaries = append(summaries, pricing.Summary(&variations[i], false))
	}
	c.JSON(http.StatusOK, gin.H{"data": summaries, "total": len(summaries)})
}

// DELETE /v1/variations/:id (soft delete)
func (h *VariationHandler) DeleteVariation(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	variation, err := h.service.SoftDelete(c.Request.Context(), id, c.Query("reason"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, pricing.Summary(variation, false))
}

// POST /v1/variations/:id/restore
func (h *VariationHandler) RestoreVariation(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	variation, err := h.service.Restore(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, pricing.Summary(variation, false))
}
