package catalog

import (
	"strings"
	"time"

	"github.com/Viraj-016/buyhive-marketplace/internal/domain/shared"
	"github.com/google/uuid"
)

// Category is a node in the catalog's category tree
type Category struct {
	shared.BaseAggregateRoot
	Name     string
	Slug     string
	ParentID *uuid.UUID
	IsActive bool
}

// NewCategory creates a new category. The slug is derived from the name;
// callers must ensure uniqueness before saving.
func NewCategory(name string, parentID *uuid.UUID) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_CATEGORY_NAME", "Category name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_CATEGORY_NAME", "Category name cannot exceed 100 characters")
	}

	return &Category{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Slug:              Slugify(name),
		ParentID:          parentID,
		IsActive:          true,
	}, nil
}

// Rename changes the category name and regenerates the slug
func (c *Category) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_CATEGORY_NAME", "Category name cannot be empty")
	}
	c.Name = name
	c.Slug = Slugify(name)
	c.UpdatedAt = time.Now()
	return nil
}

// SetParent moves the category under a new parent
func (c *Category) SetParent(parentID *uuid.UUID) error {
	if parentID != nil && *parentID == c.ID {
		return shared.NewDomainError("INVALID_PARENT", "Category cannot be its own parent")
	}
	c.ParentID = parentID
	c.UpdatedAt = time.Now()
	return nil
}

// Deactivate hides the category from the public catalog
func (c *Category) Deactivate() {
	c.IsActive = false
	c.UpdatedAt = time.Now()
}

// Activate restores the category to the public catalog
func (c *Category) Activate() {
	c.IsActive = true
	c.UpdatedAt = time.Now()
}
