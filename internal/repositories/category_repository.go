package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"toko-core/internal/models"
)

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Category, error)
	FindActiveByID(ctx context.Context, id int64) (*models.Category, error)
	FindAll(ctx context.Context) ([]models.Category, error)
	FindAllActive(ctx context.Context) ([]models.Category, error)
	// FindActiveByName is an exact, case-sensitive match.
	FindActiveByName(ctx context.Context, name string) (*models.Category, error)
	FindByNameCaseInsensitive(ctx context.Context, name string) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Save(ctx context.Context, category *models.Category) error
	DeleteByID(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{
		db: db,
	}
}

func (r *GORMCategoryRepository) first(q *gorm.DB, what string) (*models.Category, error) {
	var category models.Category
	if err := q.First(&category).Error; err != nil {
		if err = translate(err); err == ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get category by %s: %w", what, err)
	}
	return &category, nil
}

// FindByID retrieves a category by its ID whether or not it is active.
func (r *GORMCategoryRepository) FindByID(ctx context.Context, id int64) (*models.Category, error) {
	return r.first(r.db.WithContext(ctx).Where("id = ?", id), fmt.Sprintf("ID %d", id))
}

// FindActiveByID retrieves an active category by its ID.
func (r *GORMCategoryRepository) FindActiveByID(ctx context.Context, id int64) (*models.Category, error) {
	return r.first(r.db.WithContext(ctx).Where("id = ? AND active = ?", id, true), fmt.Sprintf("ID %d", id))
}

// FindActiveByName retrieves the active category with exactly this name.
func (r *GORMCategoryRepository) FindActiveByName(ctx context.Context, name string) (*models.Category, error) {
	return r.first(r.db.WithContext(ctx).Where("name = ? AND active = ?", name, true), "name "+name)
}

// FindByNameCaseInsensitive retrieves the category whose name equals name ignoring case.
func (r *GORMCategoryRepository) FindByNameCaseInsensitive(ctx context.Context, name string) (*models.Category, error) {
	return r.first(r.db.WithContext(ctx).Where("name_key = ?", models.CategoryNameKey(name)), "name "+name)
}

// FindAll retrieves every category, active or not.
func (r *GORMCategoryRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

// FindAllActive retrieves every active category.
func (r *GORMCategoryRepository) FindAllActive(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).Where("active = ?", true).Order("id").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get active categories: %w", err)
	}
	return categories, nil
}

// Create inserts a new category. A clashing name yields ErrDuplicateKey.
func (r *GORMCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", translate(err))
	}
	return nil
}

// Save writes every column of an existing category. A clashing name yields ErrDuplicateKey.
func (r *GORMCategoryRepository) Save(ctx context.Context, category *models.Category) error {
	if err := r.db.WithContext(ctx).Save(category).Error; err != nil {
		return fmt.Errorf("failed to update category %d: %w", category.ID, translate(err))
	}
	return nil
}

// DeleteByID permanently removes a category.
func (r *GORMCategoryRepository) DeleteByID(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete category %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// ExistsByID reports whether a category with this ID is stored.
func (r *GORMCategoryRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check category %d: %w", id, err)
	}
	return count > 0, nil
}
