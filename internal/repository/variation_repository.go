package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"catalog-core/internal/models"
)

type VariationRepository struct {
	collection *mongo.Collection
}

func NewVariationRepository(collection *mongo.Collection) *VariationRepository {
	return &VariationRepository{
		collection: collection,
	}
}

// Find lista variaciones, las más recientes primero
func (r *VariationRepository) Find(ctx context.Context, filter bson.M) ([]models.Variation, error) {
	ctx, cancel := context.WithTimeout(ctx, scanTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	variations := make([]models.Variation, 0)
	if err = cursor.All(ctx, &variations); err != nil {
		return nil, err
	}
	return variations, nil
}

// FindOne devuelve nil si no hay coincidencia
func (r *VariationRepository) FindOne(ctx context.Context, filter bson.M) (*models.Variation, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	var variation models.Variation
	err := r.collection.FindOne(ctx, filter).Decode(&variation)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &variation, nil
}

// FindByID incluye variaciones borradas para poder restaurarlas
func (r *VariationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Variation, error) {
	return r.FindOne(ctx, bson.M{"_id": id})
}

func (r *VariationRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	return r.collection.CountDocuments(ctx, filter)
}

// Save inserta o reemplaza la variación por _id. Un SKU duplicado llega
// como mongo.WriteException del índice único.
func (r *VariationRepository) Save(ctx context.Context, variation *models.Variation) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	now := time.Now()
	if variation.ID.IsZero() {
		variation.ID = primitive.NewObjectID()
	}
	if variation.CreatedAt.IsZero() {
		variation.CreatedAt = now
	}
	variation.UpdatedAt = now

	_, err := r.collection.ReplaceOne(
		ctx,
		bson.M{"_id": variation.ID},
		variation,
		options.Replace().SetUpsert(true),
	)
	return err
}
