package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"toko-core/internal/dto"
	"toko-core/internal/models"
	"toko-core/internal/repositories"
	"toko-core/internal/validation"
)

var categoryMessages = validation.Messages{
	"name.required":   "Category name is required",
	"name.notblank":   "Category name is required",
	"name.max":        "Category name must be less than 100 characters",
	"description.max": "Description must be less than 5000 characters",
	"image.max":       "Image URL must be less than 500 characters",
}

// CategoryService handles business logic related to categories.
type CategoryService struct {
	repo   repositories.CategoryRepository
	events emitter
}

// NewCategoryService creates a new CategoryService. publisher may be nil.
func NewCategoryService(repo repositories.CategoryRepository, publisher EventPublisher) *CategoryService {
	return &CategoryService{
		repo:   repo,
		events: emitter{publisher: publisher},
	}
}

// GetAllCategories retrieves every active category.
func (s *CategoryService) GetAllCategories(ctx context.Context) ([]dto.CategoryDTO, error) {
	categories, err := s.repo.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}
	return dto.CategoriesFromEntities(categories), nil
}

// GetAllCategoriesAdmin retrieves every category including inactive ones.
func (s *CategoryService) GetAllCategoriesAdmin(ctx context.Context) ([]dto.CategoryDTO, error) {
	categories, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.CategoriesFromEntities(categories), nil
}

// GetCategoryByID retrieves an active category.
func (s *CategoryService) GetCategoryByID(ctx context.Context, id int64) (*dto.CategoryDTO, error) {
	if err := requirePositiveID("Category", id); err != nil {
		return nil, err
	}
	category, err := s.repo.FindActiveByID(ctx, id)
	if err != nil {
		return nil, categoryLookupError(id, err)
	}
	out := dto.CategoryFromEntity(category)
	return &out, nil
}

// GetCategoryByIDAdmin retrieves a category whether or not it is active.
func (s *CategoryService) GetCategoryByIDAdmin(ctx context.Context, id int64) (*dto.CategoryDTO, error) {
	if err := requirePositiveID("Category", id); err != nil {
		return nil, err
	}
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, categoryLookupError(id, err)
	}
	out := dto.CategoryFromEntity(category)
	return &out, nil
}

// GetCategoryByName retrieves the active category with exactly this name.
func (s *CategoryService) GetCategoryByName(ctx context.Context, name string) (*dto.CategoryDTO, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidArgument("Category name is required")
	}
	category, err := s.repo.FindActiveByName(ctx, name)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, notFound("Category not found with name: %s", name)
		}
		return nil, err
	}
	out := dto.CategoryFromEntity(category)
	return &out, nil
}

// CreateCategory validates req and stores a new category.
func (s *CategoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryDTO, error) {
	if err := validateRequest(req, categoryMessages); err != nil {
		return nil, err
	}

	category := req.ToEntity()
	normalizeCategory(&category)

	if err := s.ensureNameAvailable(ctx, category.Name, 0); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &category); err != nil {
		return nil, duplicateNameError(category.Name, err)
	}
	log.Printf("Created category with id: %d", category.ID)

	out := dto.CategoryFromEntity(&category)
	s.events.emit(EventCategoryCreated, category.ID, out)
	return &out, nil
}

// UpdateCategory applies the non-nil fields of req to an existing category.
func (s *CategoryService) UpdateCategory(ctx context.Context, id int64, req dto.UpdateCategoryRequest) (*dto.CategoryDTO, error) {
	if err := requirePositiveID("Category", id); err != nil {
		return nil, err
	}
	if err := validateRequest(req, categoryMessages); err != nil {
		return nil, err
	}

	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, categoryLookupError(id, err)
	}

	req.ApplyTo(category)
	normalizeCategory(category)

	if err := s.ensureNameAvailable(ctx, category.Name, category.ID); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, category); err != nil {
		return nil, duplicateNameError(category.Name, err)
	}
	log.Printf("Updated category with id: %d", category.ID)

	out := dto.CategoryFromEntity(category)
	s.events.emit(EventCategoryUpdated, category.ID, out)
	return &out, nil
}

// DeleteCategory hides a category by marking it inactive.
func (s *CategoryService) DeleteCategory(ctx context.Context, id int64) error {
	if err := requirePositiveID("Category", id); err != nil {
		return err
	}
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return categoryLookupError(id, err)
	}

	category.Active = false
	if err := s.repo.Save(ctx, category); err != nil {
		return err
	}
	log.Printf("Soft deleted category with id: %d", id)

	s.events.emit(EventCategoryDeleted, id, map[string]bool{"permanent": false})
	return nil
}

// HardDeleteCategory removes a category permanently.
func (s *CategoryService) HardDeleteCategory(ctx context.Context, id int64) error {
	if err := requirePositiveID("Category", id); err != nil {
		return err
	}
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return notFound("Category not found with id: %d", id)
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return categoryLookupError(id, err)
	}
	log.Printf("Hard deleted category with id: %d", id)

	s.events.emit(EventCategoryDeleted, id, map[string]bool{"permanent": true})
	return nil
}

// ensureNameAvailable fails when another category already uses name in any
// letter case. selfID is the category being updated, or 0 on create.
func (s *CategoryService) ensureNameAvailable(ctx context.Context, name string, selfID int64) error {
	existing, err := s.repo.FindByNameCaseInsensitive(ctx, name)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return invalidArgument("Category with name '%s' already exists", name)
	}
	return nil
}

func normalizeCategory(c *models.Category) {
	c.Name = strings.TrimSpace(c.Name)
	c.Description = strings.TrimSpace(c.Description)
	c.Image = strings.TrimSpace(c.Image)
}

// duplicateNameError maps a unique index violation on the name onto the
// duplicate-name error raised by ensureNameAvailable.
func duplicateNameError(name string, err error) error {
	if errors.Is(err, repositories.ErrDuplicateKey) {
		return invalidArgument("Category with name '%s' already exists", name)
	}
	return err
}

func categoryLookupError(id int64, err error) error {
	if errors.Is(err, repositories.ErrRecordNotFound) {
		return notFound("Category not found with id: %d", id)
	}
	return err
}
