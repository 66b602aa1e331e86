package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"catalog-core/internal/models"
)

var errStoreDown = errors.New("store unavailable")

// memCategoryStore implementa CategoryStore en memoria. Solo entiende las
// claves de filtro que usa CategoryService.
type memCategoryStore struct {
	mu    sync.Mutex
	docs  map[primitive.ObjectID]models.Category
	saves int
	// failSavesAfter > 0 hace fallar Save a partir de esa llamada
	failSavesAfter int
}

func newMemCategoryStore() *memCategoryStore {
	return &memCategoryStore{docs: map[primitive.ObjectID]models.Category{}}
}

func cloneCategory(c models.Category) models.Category {
	c.Ancestors = append([]primitive.ObjectID{}, c.Ancestors...)
	if c.Parent != nil {
		p := *c.Parent
		c.Parent = &p
	}
	return c
}

func (s *memCategoryStore) Find(_ context.Context, filter bson.M) ([]models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Category, 0)
	for _, c := range s.docs {
		if matchCategory(c, filter) {
			out = append(out, cloneCategory(c))
		}
	}
	return out, nil
}

func (s *memCategoryStore) FindOne(ctx context.Context, filter bson.M) (*models.Category, error) {
	found, _ := s.Find(ctx, filter)
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

func (s *memCategoryStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	return s.FindOne(ctx, bson.M{"_id": id})
}

func (s *memCategoryStore) Count(ctx context.Context, filter bson.M) (int64, error) {
	found, _ := s.Find(ctx, filter)
	return int64(len(found)), nil
}

func (s *memCategoryStore) Save(_ context.Context, c *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.saves++
	if s.failSavesAfter > 0 && s.saves >= s.failSavesAfter {
		return errStoreDown
	}
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	s.docs[c.ID] = cloneCategory(*c)
	return nil
}

// get devuelve el documento tal y como está guardado
func (s *memCategoryStore) get(id primitive.ObjectID) models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneCategory(s.docs[id])
}

func (s *memCategoryStore) snapshot() map[primitive.ObjectID]models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[primitive.ObjectID]models.Category, len(s.docs))
	for id, c := range s.docs {
		out[id] = cloneCategory(c)
	}
	return out
}

func matchCategory(c models.Category, filter bson.M) bool {
	for key, want := range filter {
		switch key {
		case "_id":
			if !matchID(c.ID, want) {
				return false
			}
		case "parent":
			if want == nil {
				if c.Parent != nil {
					return false
				}
				continue
			}
			if c.Parent == nil || *c.Parent != want.(primitive.ObjectID) {
				return false
			}
		case "ancestors":
			if !c.HasAncestor(want.(primitive.ObjectID)) {
				return false
			}
		case "is_deleted":
			if c.IsDeleted != want.(bool) {
				return false
			}
		case "is_active":
			if c.IsActive != want.(bool) {
				return false
			}
		case "slug":
			if c.Slug != want.(string) {
				return false
			}
		case "name":
			if c.Name != want.(string) {
				return false
			}
		default:
			panic(fmt.Sprintf("unsupported category filter key %q", key))
		}
	}
	return true
}

func matchID(id primitive.ObjectID, want interface{}) bool {
	switch w := want.(type) {
	case primitive.ObjectID:
		return id == w
	case bson.M:
		if ne, ok := w["$ne"].(primitive.ObjectID); ok {
			return id != ne
		}
		in, ok := w["$in"].([]primitive.ObjectID)
		if !ok {
			panic("unsupported _id operator")
		}
		for _, candidate := range in {
			if candidate == id {
				return true
			}
		}
		return false
	default:
		panic(fmt.Sprintf("unsupported _id filter %T", want))
	}
}

// memVariationStore implementa VariationStore en memoria
type memVariationStore struct {
	mu   sync.Mutex
	docs map[primitive.ObjectID]models.Variation
}

func newMemVariationStore() *memVariationStore {
	return &memVariationStore{docs: map[primitive.ObjectID]models.Variation{}}
}

func (s *memVariationStore) Find(_ context.Context, filter bson.M) ([]models.Variation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Variation, 0)
	for _, v := range s.docs {
		if matchVariation(v, filter) {
			out = append(out, cloneVariation(v))
		}
	}
	return out, nil
}

func (s *memVariationStore) FindOne(ctx context.Context, filter bson.M) (*models.Variation, error) {
	found, _ := s.Find(ctx, filter)
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

func (s *memVariationStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Variation, error) {
	return s.FindOne(ctx, bson.M{"_id": id})
}

func (s *memVariationStore) Count(ctx context.Context, filter bson.M) (int64, error) {
	found, _ := s.Find(ctx, filter)
	return int64(len(found)), nil
}

func (s *memVariationStore) Save(_ context.Context, v *models.Variation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v.ID.IsZero() {
		v.ID = primitive.NewObjectID()
	}
	s.docs[v.ID] = cloneVariation(*v)
	return nil
}

func cloneVariation(v models.Variation) models.Variation {
	if v.Inventory != nil {
		inv := *v.Inventory
		v.Inventory = &inv
	}
	return v
}

func matchVariation(v models.Variation, filter bson.M) bool {
	for key, want := range filter {
		switch key {
		case "_id":
			if !matchID(v.ID, want) {
				return false
			}
		case "product_id":
			if v.ProductID != want.(primitive.ObjectID) {
				return false
			}
		case "is_deleted":
			if v.IsDeleted != want.(bool) {
				return false
			}
		case "sku":
			if v.SKU != want.(string) {
				return false
			}
		default:
			panic(fmt.Sprintf("unsupported variation filter key %q", key))
		}
	}
	return true
}
