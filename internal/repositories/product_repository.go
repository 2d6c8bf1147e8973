package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"toko-core/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Product, error)
	FindActiveByID(ctx context.Context, id int64) (*models.Product, error)
	FindAllActive(ctx context.Context) ([]models.Product, error)
	FindActiveByCategory(ctx context.Context, categoryID int64) ([]models.Product, error)
	SearchActive(ctx context.Context, term string) ([]models.Product, error)
	// FindActiveByPriceRange matches min <= price <= max; a nil max means no upper bound.
	FindActiveByPriceRange(ctx context.Context, min decimal.Decimal, max *decimal.Decimal) ([]models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Save(ctx context.Context, product *models.Product) error
}

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

func (r *GORMProductRepository) active(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Where("active = ?", true)
}

// FindByID retrieves a product by its ID whether or not it is active.
func (r *GORMProductRepository) FindByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if err = translate(err); err == ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	return &product, nil
}

// FindActiveByID retrieves an active product by its ID.
func (r *GORMProductRepository) FindActiveByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	if err := r.active(ctx).First(&product, "id = ?", id).Error; err != nil {
		if err = translate(err); err == ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get active product by ID %d: %w", id, err)
	}
	return &product, nil
}

// FindAllActive retrieves every active product in insertion order.
func (r *GORMProductRepository) FindAllActive(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.active(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get active products: %w", err)
	}
	return products, nil
}

// FindActiveByCategory retrieves the active products of one category.
func (r *GORMProductRepository) FindActiveByCategory(ctx context.Context, categoryID int64) ([]models.Product, error) {
	var products []models.Product
	if err := r.active(ctx).Where("category_id = ?", categoryID).Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get products for category %d: %w", categoryID, err)
	}
	return products, nil
}

// SearchActive matches term case-insensitively against name or description.
func (r *GORMProductRepository) SearchActive(ctx context.Context, term string) ([]models.Product, error) {
	pattern := containsPattern(strings.ToLower(term))
	var products []models.Product
	err := r.active(ctx).
		Where("(LOWER(name) LIKE ? ESCAPE '"+likeEscape+"' OR LOWER(description) LIKE ? ESCAPE '"+likeEscape+"')", pattern, pattern).
		Order("id").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return products, nil
}

// FindActiveByPriceRange retrieves active products priced within the inclusive range.
func (r *GORMProductRepository) FindActiveByPriceRange(ctx context.Context, min decimal.Decimal, max *decimal.Decimal) ([]models.Product, error) {
	q := r.active(ctx).Where("price >= ?", min)
	if max != nil {
		q = q.Where("price <= ?", *max)
	}
	var products []models.Product
	if err := q.Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get products by price range: %w", err)
	}
	return products, nil
}

// Create inserts a new product and fills in its generated ID and timestamps.
func (r *GORMProductRepository) Create(ctx context.Context, product *models.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", translate(err))
	}
	return nil
}

// Save writes every column of an existing product.
func (r *GORMProductRepository) Save(ctx context.Context, product *models.Product) error {
	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		return fmt.Errorf("failed to update product %d: %w", product.ID, translate(err))
	}
	return nil
}
