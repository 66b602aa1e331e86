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

const (
	readTimeout  = 3 * time.Second
	writeTimeout = 5 * time.Second
	scanTimeout  = 10 * time.Second
)

type CategoryRepository struct {
	collection *mongo.Collection
}

func NewCategoryRepository(collection *mongo.Collection) *CategoryRepository {
	return &CategoryRepository{
		collection: collection,
	}
}

// Find devuelve todas las categorías que cumplen el filtro
func (r *CategoryRepository) Find(ctx context.Context, filter bson.M) ([]models.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, scanTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "level", Value: 1}, {Key: "order", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	categories := make([]models.Category, 0)
	if err = cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// FindOne devuelve la primera coincidencia o nil si no hay ninguna
func (r *CategoryRepository) FindOne(ctx context.Context, filter bson.M) (*models.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	var category models.Category
	err := r.collection.FindOne(ctx, filter).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// FindByID incluye categorías borradas: la jerarquía las necesita
func (r *CategoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	return r.FindOne(ctx, bson.M{"_id": id})
}

func (r *CategoryRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	return r.collection.CountDocuments(ctx, filter)
}

// Save inserta o reemplaza la categoría por _id
func (r *CategoryRepository) Save(ctx context.Context, category *models.Category) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	now := time.Now()
	if category.ID.IsZero() {
		category.ID = primitive.NewObjectID()
	}
	if category.CreatedAt.IsZero() {
		category.CreatedAt = now
	}
	category.UpdatedAt = now
	if category.Ancestors == nil {
		category.Ancestors = []primitive.ObjectID{}
	}

	_, err := r.collection.ReplaceOne(
		ctx,
		bson.M{"_id": category.ID},
		category,
		options.Replace().SetUpsert(true),
	)
	return err
}
