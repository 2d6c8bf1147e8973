package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"toko-core/internal/models"
)

// ProductDTO is the wire representation of a product.
type ProductDTO struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  *int64          `json:"categoryId,omitempty"`
	Image       string          `json:"image,omitempty"`
	Stock       int             `json:"stock"`
	Rating      float64         `json:"rating"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// CreateProductRequest is the body accepted when creating a product.
type CreateProductRequest struct {
	Name        *string          `json:"name" validate:"required,notblank,max=255"`
	Description *string          `json:"description" validate:"omitempty,max=5000"`
	Price       *decimal.Decimal `json:"price" validate:"required,gt=0,lte=999999.99"`
	CategoryID  *int64           `json:"categoryId" validate:"omitempty,gt=0"`
	Image       *string          `json:"image" validate:"omitempty,max=500"`
	Stock       *int             `json:"stock" validate:"omitempty,gte=0"`
	Rating      *float64         `json:"rating"`
}

// UpdateProductRequest is a partial update: nil fields keep their stored value.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,notblank,max=255"`
	Description *string          `json:"description" validate:"omitempty,max=5000"`
	Price       *decimal.Decimal `json:"price" validate:"omitempty,gt=0,lte=999999.99"`
	CategoryID  *int64           `json:"categoryId" validate:"omitempty,gt=0"`
	Image       *string          `json:"image" validate:"omitempty,max=500"`
	Stock       *int             `json:"stock" validate:"omitempty,gte=0"`
	Rating      *float64         `json:"rating"`
	Active      *bool            `json:"active"`
}

// ProductFromEntity converts a stored product into its transfer form.
func ProductFromEntity(p *models.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CategoryID:  p.CategoryID,
		Image:       p.Image,
		Stock:       p.Stock,
		Rating:      p.Rating,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ProductsFromEntities converts a list of products, never returning nil.
func ProductsFromEntities(products []models.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(products))
	for i := range products {
		out = append(out, ProductFromEntity(&products[i]))
	}
	return out
}

// ToEntity builds a new product from the request. Missing stock and rating become zero.
func (r CreateProductRequest) ToEntity() models.Product {
	p := models.Product{
		Name:        deref(r.Name),
		Description: deref(r.Description),
		CategoryID:  r.CategoryID,
		Image:       deref(r.Image),
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	if r.Stock != nil {
		p.Stock = *r.Stock
	}
	if r.Rating != nil {
		p.Rating = *r.Rating
	}
	return p
}

// ApplyTo copies every non-nil field of the patch onto p.
func (r UpdateProductRequest) ApplyTo(p *models.Product) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	if r.CategoryID != nil {
		p.CategoryID = r.CategoryID
	}
	if r.Image != nil {
		p.Image = *r.Image
	}
	if r.Stock != nil {
		p.Stock = *r.Stock
	}
	if r.Rating != nil {
		p.Rating = *r.Rating
	}
	if r.Active != nil {
		p.Active = *r.Active
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
