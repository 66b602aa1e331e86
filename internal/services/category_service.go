package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"catalog-core/internal/models"
	"catalog-core/internal/slug"
)

// CategoryStore es el acceso a la colección de categorías.
// FindOne y FindByID devuelven nil, nil cuando no hay documento.
type CategoryStore interface {
	Find(ctx context.Context, filter bson.M) ([]models.Category, error)
	FindOne(ctx context.Context, filter bson.M) (*models.Category, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	Save(ctx context.Context, category *models.Category) error
}

// CategoryService mantiene ancestors/level y resuelve consultas de árbol.
// Todo camino de escritura que toque Parent pasa por RecomputeHierarchy
// antes de persistir.
type CategoryService struct {
	store  CategoryStore
	logger *zap.Logger
}

func NewCategoryService(store CategoryStore, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		store:  store,
		logger: logger.Named("categories"),
	}
}

// activeGuard se aplica siempre encima del filtro del llamador
func activeGuard() bson.M {
	return bson.M{"is_deleted": false, "is_active": true}
}

func withActiveGuard(filter bson.M) bson.M {
	merged := bson.M{}
	for k, v := range filter {
		merged[k] = v
	}
	for k, v := range activeGuard() {
		merged[k] = v
	}
	return merged
}

// RecomputeHierarchy recalcula ancestors y level a partir de Parent
func (s *CategoryService) RecomputeHierarchy(ctx context.Context, category *models.Category) error {
	if category.Parent == nil {
		applyParent(category, nil)
		return nil
	}

	parent, err := s.store.FindByID(ctx, *category.Parent)
	if err != nil {
		return err
	}
	if parent == nil {
		return fmt.Errorf("parent category %s: %w", category.Parent.Hex(), models.ErrNotFound)
	}
	if !category.ID.IsZero() && (parent.ID == category.ID || parent.HasAncestor(category.ID)) {
		return fmt.Errorf("parent category %s: %w", parent.ID.Hex(), models.ErrCycle)
	}

	applyParent(category, parent)
	return nil
}

// applyParent fija ancestors = parent.ancestors + [parent.id]
func applyParent(category *models.Category, parent *models.Category) {
	if parent == nil {
		category.Parent = nil
		category.Ancestors = []primitive.ObjectID{}
		category.Level = 0
		return
	}

	ancestors := make([]primitive.ObjectID, 0, len(parent.Ancestors)+1)
	ancestors = append(ancestors, parent.Ancestors...)
	ancestors = append(ancestors, parent.ID)

	id := parent.ID
	category.Parent = &id
	category.Ancestors = ancestors
	category.Level = len(ancestors)
}

// FindActiveCategories lista categorías activas y no borradas
func (s *CategoryService) FindActiveCategories(ctx context.Context, filter bson.M) ([]models.Category, error) {
	return s.store.Find(ctx, withActiveGuard(filter))
}

// FindActiveOne devuelve nil, nil si ninguna categoría activa coincide
func (s *CategoryService) FindActiveOne(ctx context.Context, filter bson.M) (*models.Category, error) {
	return s.store.FindOne(ctx, withActiveGuard(filter))
}

// GetCategory devuelve una categoría no borrada
func (s *CategoryService) GetCategory(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	category, err := s.store.FindOne(ctx, bson.M{"_id": id, "is_deleted": false})
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("category %s: %w", id.Hex(), models.ErrNotFound)
	}
	return category, nil
}

// GetHierarchyTree devuelve los hijos directos de parentID (raíces si es nil)
// ordenados por Order. No recorre más de un nivel.
func (s *CategoryService) GetHierarchyTree(ctx context.Context, parentID *primitive.ObjectID) ([]models.Category, error) {
	filter := bson.M{"parent": nil}
	if parentID != nil {
		filter["parent"] = *parentID
	}

	children, err := s.FindActiveCategories(ctx, filter)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(children, func(i, j int) bool {
		if children[i].Order != children[j].Order {
			return children[i].Order < children[j].Order
		}
		return children[i].Name < children[j].Name
	})
	return children, nil
}

// GetLeafCategories devuelve las categorías activas sin hijos no borrados.
// Un hijo inactivo sigue contando. Hace una consulta Count por candidata.
func (s *CategoryService) GetLeafCategories(ctx context.Context) ([]models.Category, error) {
	candidates, err := s.FindActiveCategories(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	leaves := make([]models.Category, 0)
	for _, c := range candidates {
		children, err := s.store.Count(ctx, bson.M{"parent": c.ID, "is_deleted": false})
		if err != nil {
			return nil, err
		}
		if children == 0 {
			leaves = append(leaves, c)
		}
	}
	return leaves, nil
}

// GetBreadcrumbPath devuelve el camino raíz -> categoría. Si la categoría no
// existe devuelve una lista vacía, no un error.
func (s *CategoryService) GetBreadcrumbPath(ctx context.Context, id primitive.ObjectID) ([]models.BreadcrumbItem, error) {
	category, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return []models.BreadcrumbItem{}, nil
	}

	path := make([]models.BreadcrumbItem, 0, len(category.Ancestors)+1)
	if len(category.Ancestors) > 0 {
		ancestors, err := s.store.Find(ctx, bson.M{"_id": bson.M{"$in": category.Ancestors}})
		if err != nil {
			return nil, err
		}
		sort.SliceStable(ancestors, func(i, j int) bool {
			return ancestors[i].Level < ancestors[j].Level
		})
		for _, a := range ancestors {
			path = append(path, breadcrumb(&a))
		}
	}

	return append(path, breadcrumb(category)), nil
}

func breadcrumb(c *models.Category) models.BreadcrumbItem {
	return models.BreadcrumbItem{ID: c.ID, Name: c.Name, Slug: c.Slug, Level: c.Level}
}

// MoveCategory cambia el padre de una categoría y propaga la nueva cadena de
// ancestros a todos sus descendientes. newParentID nil la convierte en raíz.
func (s *CategoryService) MoveCategory(ctx context.Context, id primitive.ObjectID, newParentID *primitive.ObjectID) (*models.Category, error) {
	category, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("category %s: %w", id.Hex(), models.ErrNotFound)
	}

	var parent *models.Category
	if newParentID != nil {
		parent, err = s.store.FindByID(ctx, *newParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, fmt.Errorf("parent category %s: %w", newParentID.Hex(), models.ErrNotFound)
		}
		if parent.ID == category.ID || parent.HasAncestor(category.ID) {
			return nil, fmt.Errorf("move %s under %s: %w", id.Hex(), parent.ID.Hex(), models.ErrCycle)
		}
	}

	applyParent(category, parent)
	if err := s.store.Save(ctx, category); err != nil {
		return nil, err
	}

	updated, err := s.UpdateDescendantHierarchy(ctx, category.ID)
	if err != nil {
		// el árbol queda recuperable: basta con relanzar UpdateDescendantHierarchy
		s.logger.Error("descendant cascade interrupted",
			zap.String("category_id", id.Hex()),
			zap.Int("updated", updated),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("category moved",
		zap.String("category_id", id.Hex()),
		zap.Stringp("parent_id", hexOrNil(newParentID)),
		zap.Int("level", category.Level),
		zap.Int("descendants_updated", updated),
	)
	return category, nil
}

// UpdateDescendantHierarchy recalcula en anchura todos los descendientes de
// parentID siguiendo las referencias Parent, que son la fuente de verdad.
// Es idempotente: relanzarla siempre converge al estado correcto.
// Devuelve el número de categorías reescritas.
func (s *CategoryService) UpdateDescendantHierarchy(ctx context.Context, parentID primitive.ObjectID) (int, error) {
	root, err := s.store.FindByID(ctx, parentID)
	if err != nil {
		return 0, err
	}
	if root == nil {
		return 0, fmt.Errorf("category %s: %w", parentID.Hex(), models.ErrNotFound)
	}

	updated := 0
	visited := map[primitive.ObjectID]bool{root.ID: true}
	queue := []*models.Category{root}

	for len(queue) > 0 {
		parent := queue[0]
		queue = queue[1:]

		children, err := s.store.Find(ctx, bson.M{"parent": parent.ID})
		if err != nil {
			return updated, err
		}

		for i := range children {
			child := &children[i]
			if visited[child.ID] {
				s.logger.Warn("cycle detected in parent references", zap.String("category_id", child.ID.Hex()))
				continue
			}
			visited[child.ID] = true

			if !sameHierarchy(child, parent) {
				applyParent(child, parent)
				if err := s.store.Save(ctx, child); err != nil {
					return updated, err
				}
				updated++
			}
			queue = append(queue, child)
		}
	}

	return updated, nil
}

// sameHierarchy indica si child ya refleja la cadena actual de parent
func sameHierarchy(child, parent *models.Category) bool {
	if len(child.Ancestors) != len(parent.Ancestors)+1 || child.Level != len(child.Ancestors) {
		return false
	}
	for i, a := range parent.Ancestors {
		if child.Ancestors[i] != a {
			return false
		}
	}
	return child.Ancestors[len(parent.Ancestors)] == parent.ID
}

// CreateCategory aplica la jerarquía antes de persistir
func (s *CategoryService) CreateCategory(ctx context.Context, req models.CategoryCreate) (*models.Category, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	category := &models.Category{
		Name:        strings.TrimSpace(req.Name),
		Slug:        req.Slug,
		Description: req.Description,
		Parent:      req.Parent,
		Order:       req.Order,
		IsActive:    true,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	if category.Slug == "" {
		category.Slug = slug.Generate(category.Name)
	} else {
		category.Slug = slug.Generate(category.Slug)
	}
	if category.Slug == "" {
		return nil, &models.ValidationError{Field: "slug", Message: "slug cannot be derived from name"}
	}
	if err := s.ensureSlugAvailable(ctx, category.Slug, primitive.NilObjectID); err != nil {
		return nil, err
	}

	if err := s.RecomputeHierarchy(ctx, category); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, category); err != nil {
		return nil, err
	}

	s.logger.Info("category created",
		zap.String("category_id", category.ID.Hex()),
		zap.String("slug", category.Slug),
		zap.Int("level", category.Level),
	)
	return category, nil
}

// UpdateCategory aplica una actualización parcial. Un cambio de padre pasa
// por MoveCategory para validar ciclos y propagar a los descendientes.
// Los campos se validan antes de mover para no dejar un subárbol movido
// tras una actualización rechazada.
func (s *CategoryService) UpdateCategory(ctx context.Context, id primitive.ObjectID, update models.CategoryUpdate) (*models.Category, error) {
	category, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	var newSlug string
	if update.Slug != nil {
		newSlug = slug.Generate(*update.Slug)
		if newSlug == "" {
			return nil, &models.ValidationError{Field: "slug", Message: "slug cannot be empty"}
		}
		if newSlug != category.Slug {
			if err := s.ensureSlugAvailable(ctx, newSlug, id); err != nil {
				return nil, err
			}
		}
	}
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return nil, &models.ValidationError{Field: "name", Message: "name cannot be empty"}
	}

	if update.ClearParent || (update.Parent != nil && !sameParent(category.Parent, update.Parent)) {
		target := update.Parent
		if update.ClearParent {
			target = nil
		}
		if category, err = s.MoveCategory(ctx, id, target); err != nil {
			return nil, err
		}
	}

	changed := false
	if update.Name != nil {
		category.Name = strings.TrimSpace(*update.Name)
		changed = true
	}
	if update.Slug != nil {
		category.Slug = newSlug
		changed = true
	}
	if update.Description != nil {
		category.Description = *update.Description
		changed = true
	}
	if update.Order != nil {
		category.Order = *update.Order
		changed = true
	}
	if update.IsActive != nil {
		category.IsActive = *update.IsActive
		changed = true
	}

	if changed {
		if err := s.store.Save(ctx, category); err != nil {
			return nil, err
		}
	}
	return category, nil
}

// ensureSlugAvailable cuenta también las categorías borradas: el índice
// único de slug las incluye.
func (s *CategoryService) ensureSlugAvailable(ctx context.Context, value string, self primitive.ObjectID) error {
	filter := bson.M{"slug": value}
	if !self.IsZero() {
		filter["_id"] = bson.M{"$ne": self}
	}
	n, err := s.store.Count(ctx, filter)
	if err != nil {
		return err
	}
	if n > 0 {
		return &models.ValidationError{Field: "slug", Message: fmt.Sprintf("slug %q already exists", value)}
	}
	return nil
}

// SoftDeleteCategory marca la categoría como borrada sin tocar el árbol
func (s *CategoryService) SoftDeleteCategory(ctx context.Context, id primitive.ObjectID) error {
	category, err := s.GetCategory(ctx, id)
	if err != nil {
		return err
	}

	category.IsDeleted = true
	if err := s.store.Save(ctx, category); err != nil {
		return err
	}

	s.logger.Info("category deleted", zap.String("category_id", id.Hex()))
	return nil
}

func sameParent(a, b *primitive.ObjectID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func hexOrNil(id *primitive.ObjectID) *string {
	if id == nil {
		return nil
	}
	h := id.Hex()
	return &h
}
