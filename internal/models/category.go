package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category representa un nodo del árbol de categorías.
// Ancestors y Level son derivados de Parent y nunca los fija el cliente.
type Category struct {
	ID          primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Name        string               `json:"name" bson:"name"`
	Slug        string               `json:"slug" bson:"slug"`
	Description string               `json:"description,omitempty" bson:"description,omitempty"`
	Parent      *primitive.ObjectID  `json:"parent" bson:"parent"`
	Ancestors   []primitive.ObjectID `json:"ancestors" bson:"ancestors"`
	Level       int                  `json:"level" bson:"level"`
	IsActive    bool                 `json:"is_active" bson:"is_active"`
	IsDeleted   bool                 `json:"-" bson:"is_deleted"`
	Order       int                  `json:"order" bson:"order"`
	CreatedAt   time.Time            `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at" bson:"updated_at"`
}

// HasAncestor indica si id forma parte de la cadena de ancestros
func (c *Category) HasAncestor(id primitive.ObjectID) bool {
	for _, a := range c.Ancestors {
		if a == id {
			return true
		}
	}
	return false
}

// BreadcrumbItem es un paso del camino raíz -> categoría
type BreadcrumbItem struct {
	ID    primitive.ObjectID `json:"id"`
	Name  string             `json:"name"`
	Slug  string             `json:"slug"`
	Level int                `json:"level"`
}

// CategoryCreate representa el cuerpo de creación de una categoría
type CategoryCreate struct {
	Name        string              `json:"name" validate:"required,max=120"`
	Slug        string              `json:"slug,omitempty" validate:"omitempty,max=140"`
	Description string              `json:"description,omitempty"`
	Parent      *primitive.ObjectID `json:"parent,omitempty"`
	Order       int                 `json:"order" validate:"gte=0"`
	IsActive    *bool               `json:"is_active,omitempty"`
}

// CategoryUpdate representa los campos actualizables de una categoría.
// ClearParent convierte la categoría en raíz.
type CategoryUpdate struct {
	Name        *string             `json:"name,omitempty"`
	Slug        *string             `json:"slug,omitempty"`
	Description *string             `json:"description,omitempty"`
	Parent      *primitive.ObjectID `json:"parent,omitempty"`
	ClearParent bool                `json:"clear_parent,omitempty"`
	Order       *int                `json:"order,omitempty"`
	IsActive    *bool               `json:"is_active,omitempty"`
}
