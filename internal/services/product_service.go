package services

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"toko-core/internal/dto"
	"toko-core/internal/models"
	"toko-core/internal/repositories"
	"toko-core/internal/validation"
)

const (
	minRating = 0.0
	maxRating = 5.0
)

var productMessages = validation.Messages{
	"name.required":   "Product name is required",
	"name.notblank":   "Product name is required",
	"name.max":        "Product name must be less than 255 characters",
	"price.required":  "Product price is required",
	"price.gt":        "Product price must be greater than 0",
	"price.lte":       "Product price cannot exceed 999,999.99",
	"stock.gte":       "Stock cannot be negative",
	"description.max": "Description must be less than 5000 characters",
	"image.max":       "Image URL must be less than 500 characters",
	"categoryId.gt":   "Category ID must be a positive number",
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo   repositories.ProductRepository
	events emitter
}

// NewProductService creates a new ProductService. publisher may be nil.
func NewProductService(repo repositories.ProductRepository, publisher EventPublisher) *ProductService {
	return &ProductService{
		repo:   repo,
		events: emitter{publisher: publisher},
	}
}

// GetProductByID retrieves a single active product by its ID.
func (s *ProductService) GetProductByID(ctx context.Context, id int64) (*dto.ProductDTO, error) {
	if err := requirePositiveID("Product", id); err != nil {
		return nil, err
	}
	product, err := s.repo.FindActiveByID(ctx, id)
	if err != nil {
		return nil, productLookupError(id, err)
	}
	out := dto.ProductFromEntity(product)
	return &out, nil
}

// GetAllProducts retrieves all active products.
func (s *ProductService) GetAllProducts(ctx context.Context) ([]dto.ProductDTO, error) {
	products, err := s.repo.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ProductsFromEntities(products), nil
}

// GetProductsByCategory retrieves the active products of a category.
func (s *ProductService) GetProductsByCategory(ctx context.Context, categoryID int64) ([]dto.ProductDTO, error) {
	if err := requirePositiveID("Category", categoryID); err != nil {
		return nil, err
	}
	products, err := s.repo.FindActiveByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return dto.ProductsFromEntities(products), nil
}

// SearchProducts matches query against product names and descriptions.
// A blank query lists every active product.
func (s *ProductService) SearchProducts(ctx context.Context, query string) ([]dto.ProductDTO, error) {
	if strings.TrimSpace(query) == "" {
		return s.GetAllProducts(ctx)
	}
	products, err := s.repo.SearchActive(ctx, validation.SearchQuery(query))
	if err != nil {
		return nil, err
	}
	return dto.ProductsFromEntities(products), nil
}

// GetProductsByPriceRange retrieves active products priced within [min, max].
// A nil min means zero and a nil max means no upper bound. Reversed bounds are swapped.
func (s *ProductService) GetProductsByPriceRange(ctx context.Context, min, max *decimal.Decimal) ([]dto.ProductDTO, error) {
	lower := decimal.Zero
	if min != nil {
		lower = *min
	}
	if lower.IsNegative() {
		return nil, invalidArgument("Minimum price cannot be negative")
	}
	var upper *decimal.Decimal
	if max != nil {
		if max.IsNegative() {
			return nil, invalidArgument("Maximum price cannot be negative")
		}
		u := *max
		if lower.GreaterThan(u) {
			log.Printf("Swapped price range values: %s - %s", u, lower)
			lower, u = u, lower
		}
		upper = &u
	}

	products, err := s.repo.FindActiveByPriceRange(ctx, lower, upper)
	if err != nil {
		return nil, err
	}
	return dto.ProductsFromEntities(products), nil
}

// CreateProduct validates req and stores a new active product.
func (s *ProductService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductDTO, error) {
	if err := validateRequest(req, productMessages); err != nil {
		return nil, err
	}

	product := req.ToEntity()
	normalizeProduct(&product)
	product.Active = true

	if err := s.repo.Create(ctx, &product); err != nil {
		return nil, err
	}
	log.Printf("Created product with id: %d", product.ID)

	out := dto.ProductFromEntity(&product)
	s.events.emit(EventProductCreated, product.ID, out)
	return &out, nil
}

// UpdateProduct applies the non-nil fields of req to an existing product.
func (s *ProductService) UpdateProduct(ctx context.Context, id int64, req dto.UpdateProductRequest) (*dto.ProductDTO, error) {
	if err := requirePositiveID("Product", id); err != nil {
		return nil, err
	}
	if err := validateRequest(req, productMessages); err != nil {
		return nil, err
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, productLookupError(id, err)
	}

	req.ApplyTo(product)
	normalizeProduct(product)

	if err := s.repo.Save(ctx, product); err != nil {
		return nil, err
	}
	log.Printf("Updated product with id: %d", product.ID)

	out := dto.ProductFromEntity(product)
	s.events.emit(EventProductUpdated, product.ID, out)
	return &out, nil
}

// DeleteProduct hides a product by marking it inactive.
func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	if err := requirePositiveID("Product", id); err != nil {
		return err
	}
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return productLookupError(id, err)
	}

	product.Active = false
	if err := s.repo.Save(ctx, product); err != nil {
		return err
	}
	log.Printf("Soft deleted product with id: %d", id)

	s.events.emit(EventProductDeleted, id, nil)
	return nil
}

// normalizeProduct trims the text fields and keeps the rating within bounds.
func normalizeProduct(p *models.Product) {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)
	p.Image = strings.TrimSpace(p.Image)
	p.Rating = clampRating(p.Rating)
}

func clampRating(r float64) float64 {
	if math.IsNaN(r) {
		return minRating
	}
	return math.Min(maxRating, math.Max(minRating, r))
}

func productLookupError(id int64, err error) error {
	if errors.Is(err, repositories.ErrRecordNotFound) {
		return notFound("Product not found with id: %d", id)
	}
	return err
}
