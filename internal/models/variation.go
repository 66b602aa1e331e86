package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Estados de inventario
const (
	StockInStock      = "in_stock"
	StockOutOfStock   = "out_of_stock"
	StockDiscontinued = "discontinued"
)

// Tipos de cliente admitidos por el cálculo de precio
const (
	CustomerRetail    = "retail"
	CustomerWholesale = "wholesale"
	CustomerVIP       = "vip"
)

// Variation representa una variante vendible de un producto.
// Los campos planos (Color, Size, Storage, Price, Quantity) son el formato
// antiguo; si el grupo anidado correspondiente existe, manda el anidado.
type Variation struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ProductID primitive.ObjectID `json:"product_id" bson:"product_id"`
	SKU       string             `json:"sku" bson:"sku"`

	Color    string   `json:"color,omitempty" bson:"color,omitempty"`
	Size     string   `json:"size,omitempty" bson:"size,omitempty"`
	Storage  string   `json:"storage,omitempty" bson:"storage,omitempty"`
	Price    *float64 `json:"price,omitempty" bson:"price,omitempty"`
	Quantity *int     `json:"quantity,omitempty" bson:"quantity,omitempty"`

	Pricing    *Pricing    `json:"pricing,omitempty" bson:"pricing,omitempty"`
	Inventory  *Inventory  `json:"inventory,omitempty" bson:"inventory,omitempty"`
	Attributes *Attributes `json:"attributes,omitempty" bson:"attributes,omitempty"`
	SEO        *SEO        `json:"seo,omitempty" bson:"seo,omitempty"`
	Analytics  *Analytics  `json:"analytics,omitempty" bson:"analytics,omitempty"`

	IsDeleted      bool       `json:"is_deleted" bson:"is_deleted"`
	DeletedAt      *time.Time `json:"deleted_at,omitempty" bson:"deleted_at,omitempty"`
	DeletionReason string     `json:"deletion_reason,omitempty" bson:"deletion_reason,omitempty"`
	CreatedAt      time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" bson:"updated_at"`
}

type Pricing struct {
	BasePrice     *float64   `json:"base_price,omitempty" bson:"base_price,omitempty" validate:"omitempty,gte=0"`
	SalePrice     *float64   `json:"sale_price,omitempty" bson:"sale_price,omitempty" validate:"omitempty,gte=0"`
	IsOnSale      *bool      `json:"is_on_sale,omitempty" bson:"is_on_sale,omitempty"`
	SaleStartDate *time.Time `json:"sale_start_date,omitempty" bson:"sale_start_date,omitempty"`
	SaleEndDate   *time.Time `json:"sale_end_date,omitempty" bson:"sale_end_date,omitempty"`
	TaxRate       *float64   `json:"tax_rate,omitempty" bson:"tax_rate,omitempty" validate:"omitempty,gte=0"`
	CostPrice     *float64   `json:"cost_price,omitempty" bson:"cost_price,omitempty" validate:"omitempty,gte=0"`
	BulkPricing   []BulkTier `json:"bulk_pricing,omitempty" bson:"bulk_pricing,omitempty" validate:"omitempty,dive"`
}

// BulkTier aplica Price por unidad a partir de Quantity unidades
type BulkTier struct {
	Quantity int     `json:"quantity" bson:"quantity" validate:"gte=1"`
	Price    float64 `json:"price" bson:"price" validate:"gte=0"`
}

type Inventory struct {
	Quantity         int    `json:"quantity" bson:"quantity"`
	ReservedQuantity int    `json:"reserved_quantity" bson:"reserved_quantity"`
	ReorderPoint     *int   `json:"reorder_point,omitempty" bson:"reorder_point,omitempty"`
	StockStatus      string `json:"stock_status" bson:"stock_status"`
}

type Attributes struct {
	Color     string            `json:"color,omitempty" bson:"color,omitempty"`
	Size      string            `json:"size,omitempty" bson:"size,omitempty"`
	Material  string            `json:"material,omitempty" bson:"material,omitempty"`
	Technical map[string]string `json:"technical,omitempty" bson:"technical,omitempty"`
}

type SEO struct {
	Metadata           SEOMetadata        `json:"metadata" bson:"metadata"`
	SearchOptimization SearchOptimization `json:"search_optimization" bson:"search_optimization"`
}

type SEOMetadata struct {
	Slug     string   `json:"slug,omitempty" bson:"slug,omitempty"`
	Keywords []string `json:"keywords,omitempty" bson:"keywords,omitempty"`
}

type SearchOptimization struct {
	SearchKeywords   []string `json:"search_keywords,omitempty" bson:"search_keywords,omitempty"`
	Synonyms         []string `json:"synonyms,omitempty" bson:"synonyms,omitempty"`
	AutoSuggestTerms []string `json:"auto_suggest_terms,omitempty" bson:"auto_suggest_terms,omitempty"`
}

type Analytics struct {
	Engagement       Engagement       `json:"engagement" bson:"engagement"`
	Sales            SalesStats       `json:"sales" bson:"sales"`
	CustomerBehavior CustomerBehavior `json:"customer_behavior" bson:"customer_behavior"`
	Performance      Performance      `json:"performance" bson:"performance"`
}

type Engagement struct {
	Views          int64 `json:"views" bson:"views"`
	AddToCartCount int64 `json:"add_to_cart_count" bson:"add_to_cart_count"`
	WishlistCount  int64 `json:"wishlist_count" bson:"wishlist_count"`
}

type SalesStats struct {
	TotalSold    int64   `json:"total_sold" bson:"total_sold"`
	TotalRevenue float64 `json:"total_revenue" bson:"total_revenue"`
}

type CustomerBehavior struct {
	AverageRating float64 `json:"average_rating" bson:"average_rating"`
	ReviewCount   int64   `json:"review_count" bson:"review_count"`
}

type Performance struct {
	PopularityScore float64 `json:"popularity_score" bson:"popularity_score"`
}

// VariationCreate representa el cuerpo de creación de una variación.
// Debe venir precio y cantidad, sea en formato plano o anidado.
type VariationCreate struct {
	ProductID  primitive.ObjectID `json:"product_id"`
	SKU        string             `json:"sku" validate:"required,max=64"`
	Color      string             `json:"color,omitempty"`
	Size       string             `json:"size,omitempty"`
	Storage    string             `json:"storage,omitempty"`
	Price      *float64           `json:"price,omitempty" validate:"omitempty,gte=0"`
	Quantity   *int               `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	Pricing    *Pricing           `json:"pricing,omitempty"`
	Inventory  *Inventory         `json:"inventory,omitempty"`
	Attributes *Attributes        `json:"attributes,omitempty"`
	SEO        *SEO               `json:"seo,omitempty"`
}

// AttributeSet es la vista combinada de atributos (anidado primero)
type AttributeSet struct {
	Color     string            `json:"color,omitempty"`
	Size      string            `json:"size,omitempty"`
	Storage   string            `json:"storage,omitempty"`
	Material  string            `json:"material,omitempty"`
	Technical map[string]string `json:"technical,omitempty"`
}

// VariationSummary es la forma publicada hacia los consumidores de la API
type VariationSummary struct {
	ID                 primitive.ObjectID `json:"id"`
	ProductID          primitive.ObjectID `json:"product_id"`
	SKU                string             `json:"sku"`
	DisplayName        string             `json:"display_name"`
	Attributes         AttributeSet       `json:"attributes"`
	URLSlug            string             `json:"url_slug"`
	BasePrice          float64            `json:"base_price"`
	FinalPrice         float64            `json:"final_price"`
	IsOnSale           bool               `json:"is_on_sale"`
	DiscountPercentage *int               `json:"discount_percentage,omitempty"`
	InStock            bool               `json:"in_stock"`
	AvailableQuantity  int                `json:"available_quantity"`
	StockStatus        string             `json:"stock_status,omitempty"`
	NeedsReorder       bool               `json:"needs_reorder"`
	IsDeleted          bool               `json:"is_deleted"`
	Analytics          *SummaryAnalytics  `json:"analytics,omitempty"`
}

type SummaryAnalytics struct {
	PopularityScore float64 `json:"popularity_score"`
	TotalSold       int64   `json:"total_sold"`
	AverageRating   float64 `json:"average_rating"`
	ReviewCount     int64   `json:"review_count"`
}
