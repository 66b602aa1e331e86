package handlers

//go:generate mockgen -source=category_handler.go -destination=mock_category_service_test.go -package=handlers

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"catalog-core/internal/cache"
	"catalog-core/internal/models"
)

const categoriesCachePrefix = "categories:"

// CategoryService es lo que los handlers necesitan de services.CategoryService
type CategoryService interface {
	CreateCategory(ctx context.Context, req models.CategoryCreate) (*models.Category, error)
	FindActiveCategories(ctx context.Context, filter bson.M) ([]models.Category, error)
	GetCategory(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
	GetHierarchyTree(ctx context.Context, parentID *primitive.ObjectID) ([]models.Category, error)
	GetLeafCategories(ctx context.Context) ([]models.Category, error)
	GetBreadcrumbPath(ctx context.Context, id primitive.ObjectID) ([]models.BreadcrumbItem, error)
	UpdateCategory(ctx context.Context, id primitive.ObjectID, update models.CategoryUpdate) (*models.Category, error)
	MoveCategory(ctx context.Context, id primitive.ObjectID, newParentID *primitive.ObjectID) (*models.Category, error)
	UpdateDescendantHierarchy(ctx context.Context, parentID primitive.ObjectID) (int, error)
	SoftDeleteCategory(ctx context.Context, id primitive.ObjectID) error
}

type CategoryHandler struct {
	service CategoryService
	cache   cache.Store
	ttl     time.Duration
	logger  *zap.Logger
	// agrupa las lecturas concurrentes de una misma clave tras un fallo de caché
	group singleflight.Group
	// se incrementa en cada invalidación; una lectura que empezó antes no
	// escribe en caché
	generation atomic.Uint64
}

// loadTimeout acota la lectura compartida, que no depende de la petición
// que la inició
const loadTimeout = 10 * time.Second

func NewCategoryHandler(service CategoryService, store cache.Store, ttl time.Duration, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		cache:   store,
		ttl:     ttl,
		logger:  logger.Named("categories.http"),
	}
}

type moveRequest struct {
	ParentID *primitive.ObjectID `json:"parent_id"`
}

// POST /v1/categories
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req models.CategoryCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.service.CreateCategory(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.invalidate(c)
	c.JSON(http.StatusCreated, category)
}

// GET /v1/categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	filter := bson.M{}
	if raw := c.Query("parent"); raw != "" {
		parentID, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid parent"})
			return
		}
		filter["parent"] = parentID
	}

	categories, err := h.service.FindActiveCategories(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": categories, "total": len(categories)})
}

// GET /v1/categories/tree
func (h *CategoryHandler) GetTree(c *gin.Context) {
	var parentID *primitive.ObjectID
	if raw := c.Query("parent"); raw != "" {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid parent"})
			return
		}
		parentID = &id
	}

	key := categoriesCachePrefix + "tree:root"
	if parentID != nil {
		key = categoriesCachePrefix + "tree:" + parentID.Hex()
	}

	var tree []models.Category
	if h.fromCache(c, key, &tree) {
		c.JSON(http.StatusOK, gin.H{"data": tree})
		return
	}

	v, err := h.load(c, key, func(ctx context.Context) (interface{}, error) {
		return h.service.GetHierarchyTree(ctx, parentID)
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	tree = v.([]models.Category)
	c.JSON(http.StatusOK, gin.H{"data": tree})
}

// GET /v1/categories/leaves
func (h *CategoryHandler) GetLeaves(c *gin.Context) {
	key := categoriesCachePrefix + "leaves"

	var leaves []models.Category
	if h.fromCache(c, key, &leaves) {
		c.JSON(http.StatusOK, gin.H{"data": leaves})
		return
	}

	v, err := h.load(c, key, func(ctx context.Context) (interface{}, error) {
		return h.service.GetLeafCategories(ctx)
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	leaves = v.([]models.Category)
	c.JSON(http.StatusOK, gin.H{"data": leaves})
}

// GET /v1/categories/:id
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	category, err := h.service.GetCategory(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// GET /v1/categories/:id/breadcrumbs
func (h *CategoryHandler) GetBreadcrumbs(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}
	key := categoriesCachePrefix + "breadcrumbs:" + id.Hex()

	var path []models.BreadcrumbItem
	if h.fromCache(c, key, &path) {
		c.JSON(http.StatusOK, gin.H{"data": path})
		return
	}

	v, err := h.load(c, key, func(ctx context.Context) (interface{}, error) {
		return h.service.GetBreadcrumbPath(ctx, id)
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	path = v.([]models.BreadcrumbItem)
	c.JSON(http.StatusOK, gin.H{"data": path})
}

// PATCH /v1/categories/:id
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	var update models.CategoryUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.service.UpdateCategory(c.Request.Context(), id, update)
	// un cambio de padre puede haber escrito parte del subárbol antes del error
	h.invalidate(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// POST /v1/categories/:id/move
func (h *CategoryHandler) MoveCategory(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.service.MoveCategory(c.Request.Context(), id, req.ParentID)
	// una cascada a medias también deja entradas obsoletas en caché
	h.invalidate(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// POST /v1/categories/:id/rebuild
func (h *CategoryHandler) RebuildHierarchy(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	updated, err := h.service.UpdateDescendantHierarchy(c.Request.Context(), id)
	h.invalidate(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

// DELETE /v1/categories/:id (soft delete)
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	if err := h.service.SoftDeleteCategory(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.invalidate(c)
	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}

// Un fallo de caché nunca rompe la petición: se registra y se va a la base
func (h *CategoryHandler) fromCache(c *gin.Context, key string, dest interface{}) bool {
	found, err := h.cache.Get(c.Request.Context(), key, dest)
	if err != nil {
		h.logger.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return found
}

// load ejecuta fetch una sola vez por clave y guarda el resultado en caché
// salvo que haya habido una invalidación mientras se leía
func (h *CategoryHandler) load(c *gin.Context, key string, fetch func(ctx context.Context) (interface{}, error)) (interface{}, error) {
	v, err, _ := h.group.Do(key, func() (interface{}, error) {
		gen := h.generation.Load()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), loadTimeout)
		defer cancel()

		v, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		if h.generation.Load() == gen {
			h.toCache(ctx, key, v)
		}
		return v, nil
	})
	return v, err
}

func (h *CategoryHandler) toCache(ctx context.Context, key string, value interface{}) {
	if err := h.cache.Set(ctx, key, value, h.ttl); err != nil {
		h.logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func (h *CategoryHandler) invalidate(c *gin.Context) {
	h.generation.Add(1)
	if err := h.cache.DeleteByPrefix(c.Request.Context(), categoriesCachePrefix); err != nil {
		h.logger.Warn("cache invalidation failed", zap.Error(err))
	}
}
