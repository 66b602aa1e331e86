package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Nombres de colecciones
const (
	CategoriesCollection = "categories"
	VariationsCollection = "variations"
)

// Connect abre el cliente y verifica la conexión con un ping
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	if uri == "" {
		return nil, fmt.Errorf("MONGO_URI is not set")
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return client, nil
}

// EnsureIndexes crea los índices que sostienen las consultas de jerarquía y
// las restricciones de unicidad (slug, sku)
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	categoryIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "parent", Value: 1}, {Key: "order", Value: 1}}},
		{Keys: bson.D{{Key: "ancestors", Value: 1}}},
		{Keys: bson.D{{Key: "is_deleted", Value: 1}, {Key: "is_active", Value: 1}}},
	}
	if _, err := db.Collection(CategoriesCollection).Indexes().CreateMany(ctx, categoryIndexes); err != nil {
		return fmt.Errorf("create category indexes: %w", err)
	}

	variationIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "sku", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "product_id", Value: 1}, {Key: "is_deleted", Value: 1}}},
	}
	if _, err := db.Collection(VariationsCollection).Indexes().CreateMany(ctx, variationIndexes); err != nil {
		return fmt.Errorf("create variation indexes: %w", err)
	}

	return nil
}
