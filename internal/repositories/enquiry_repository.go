package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"toko-core/internal/models"
)

// EnquiryRepository defines the interface for enquiry data access.
type EnquiryRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Enquiry, error)
	// FindPage returns up to limit enquiries, newest first, plus the total
	// number of matches. A zero status matches every enquiry.
	FindPage(ctx context.Context, status models.EnquiryStatus, offset, limit int) ([]models.Enquiry, int64, error)
	Create(ctx context.Context, enquiry *models.Enquiry) error
	Save(ctx context.Context, enquiry *models.Enquiry) error
	DeleteByID(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// GORMEnquiryRepository is a GORM implementation of EnquiryRepository.
type GORMEnquiryRepository struct {
	db *gorm.DB
}

// NewGORMEnquiryRepository creates a new instance of GORMEnquiryRepository.
func NewGORMEnquiryRepository(db *gorm.DB) *GORMEnquiryRepository {
	return &GORMEnquiryRepository{
		db: db,
	}
}

// FindByID retrieves an enquiry by its ID.
func (r *GORMEnquiryRepository) FindByID(ctx context.Context, id int64) (*models.Enquiry, error) {
	var enquiry models.Enquiry
	if err := r.db.WithContext(ctx).First(&enquiry, "id = ?", id).Error; err != nil {
		if err = translate(err); err == ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get enquiry by ID %d: %w", id, err)
	}
	return &enquiry, nil
}

// FindPage retrieves one page of enquiries ordered by creation time, newest first.
func (r *GORMEnquiryRepository) FindPage(ctx context.Context, status models.EnquiryStatus, offset, limit int) ([]models.Enquiry, int64, error) {
	filtered := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&models.Enquiry{})
		if status.Valid() {
			q = q.Where("status = ?", status)
		}
		return q
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count enquiries: %w", err)
	}
	if total == 0 {
		return []models.Enquiry{}, 0, nil
	}

	var enquiries []models.Enquiry
	err := filtered().
		Order("created_at DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&enquiries).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list enquiries: %w", err)
	}
	return enquiries, total, nil
}

// Create inserts a new enquiry.
func (r *GORMEnquiryRepository) Create(ctx context.Context, enquiry *models.Enquiry) error {
	if err := r.db.WithContext(ctx).Create(enquiry).Error; err != nil {
		return fmt.Errorf("failed to create enquiry: %w", err)
	}
	return nil
}

// Save writes every column of an existing enquiry.
func (r *GORMEnquiryRepository) Save(ctx context.Context, enquiry *models.Enquiry) error {
	if err := r.db.WithContext(ctx).Save(enquiry).Error; err != nil {
		return fmt.Errorf("failed to update enquiry %d: %w", enquiry.ID, err)
	}
	return nil
}

// DeleteByID permanently removes an enquiry.
func (r *GORMEnquiryRepository) DeleteByID(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.Enquiry{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete enquiry %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// ExistsByID reports whether an enquiry with this ID is stored.
func (r *GORMEnquiryRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Enquiry{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check enquiry %d: %w", id, err)
	}
	return count > 0, nil
}
