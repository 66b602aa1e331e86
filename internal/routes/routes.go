package routes

import (
	"catalog-core/internal/handlers"

	"github.com/gin-gonic/gin"
)

// Handlers agrupa los handlers que expone la API
type Handlers struct {
	Categories *handlers.CategoryHandler
	Variations *handlers.VariationHandler
	Health     gin.HandlerFunc
}

func RegisterRoutes(router *gin.Engine, h Handlers) {
	router.GET("/healthz", h.Health)

	v1 := router.Group("/v1")
	{
		categories := v1.Group("/categories")
		categories.POST("", h.Categories.CreateCategory)
		categories.GET("", h.Categories.ListCategories)
		categories.GET("/tree", h.Categories.GetTree)
		categories.GET("/leaves", h.Categories.GetLeaves)
		categories.GET("/:id", h.Categories.GetCategory)
		categories.GET("/:id/breadcrumbs", h.Categories.GetBreadcrumbs)
		categories.PATCH("/:id", h.Categories.UpdateCategory)
		categories.POST("/:id/move", h.Categories.MoveCategory)
		categories.POST("/:id/rebuild", h.Categories.RebuildHierarchy)
		categories.DELETE("/:id", h.Categories.DeleteCategory)

		variations := v1.Group("/variations")
		variations.POST("", h.Variations.CreateVariation)
		variations.GET("/:id", h.Variations.GetVariation)
		variations.GET("/:id/price", h.Variations.GetPrice)
		variations.DELETE("/:id", h.Variations.DeleteVariation)
		variations.POST("/:id/restore", h.Variations.RestoreVariation)

		v1.GET("/products/:id/variations", h.Variations.ListProductVariations)
	}
}
