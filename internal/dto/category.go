package dto

import (
	"time"

	"toko-core/internal/models"
)

// CategoryDTO is the wire representation of a category.
type CategoryDTO struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateCategoryRequest is the body accepted when creating a category.
type CreateCategoryRequest struct {
	Name        *string `json:"name" validate:"required,notblank,max=100"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
	Image       *string `json:"image" validate:"omitempty,max=500"`
	Active      *bool   `json:"active"`
}

// UpdateCategoryRequest is a partial update: nil fields keep their stored value.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,notblank,max=100"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
	Image       *string `json:"image" validate:"omitempty,max=500"`
	Active      *bool   `json:"active"`
}

// CategoryFromEntity converts a stored category into its transfer form.
func CategoryFromEntity(c *models.Category) CategoryDTO {
	return CategoryDTO{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Image:       c.Image,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// CategoriesFromEntities converts a list of categories, never returning nil.
func CategoriesFromEntities(categories []models.Category) []CategoryDTO {
	out := make([]CategoryDTO, 0, len(categories))
	for i := range categories {
		out = append(out, CategoryFromEntity(&categories[i]))
	}
	return out
}

// ToEntity builds a new category. Active defaults to true.
func (r CreateCategoryRequest) ToEntity() models.Category {
	c := models.Category{
		Name:        deref(r.Name),
		Description: deref(r.Description),
		Image:       deref(r.Image),
		Active:      true,
	}
	if r.Active != nil {
		c.Active = *r.Active
	}
	return c
}

// ApplyTo copies every non-nil field of the patch onto c.
func (r UpdateCategoryRequest) ApplyTo(c *models.Category) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Description != nil {
		c.Description = *r.Description
	}
	if r.Image != nil {
		c.Image = *r.Image
	}
	if r.Active != nil {
		c.Active = *r.Active
	}
}
