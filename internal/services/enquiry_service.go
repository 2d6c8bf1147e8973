package services

import (
	"context"
	"errors"
	"log"
	"math"

	"toko-core/internal/dto"
	"toko-core/internal/models"
	"toko-core/internal/repositories"
	"toko-core/internal/validation"
)

// Pagination bounds for enquiry listings.
const (
	MinPageSize = 1
	MaxPageSize = 100
)

var enquiryMessages = validation.Messages{
	"name.required":     "Name is required",
	"name.notblank":     "Name is required",
	"name.min":          "Name must be between 2 and 100 characters",
	"name.max":          "Name must be between 2 and 100 characters",
	"email.required":    "Email is required",
	"email.notblank":    "Email is required",
	"email.max":         "Email must be less than 100 characters",
	"email.email_shape": "Please provide a valid email address",
	"phone.required":    "Phone number is required",
	"phone.notblank":    "Phone number is required",
	"phone.phone":       "Please provide a valid phone number",
	"message.required":  "Message is required",
	"message.notblank":  "Message is required",
	"message.min":       "Message must be between 10 and 5000 characters",
	"message.max":       "Message must be between 10 and 5000 characters",
	"productId.gt":      "Product ID must be a positive number",
}

// EnquiryService handles business logic related to customer enquiries.
type EnquiryService struct {
	repo   repositories.EnquiryRepository
	events emitter
}

// NewEnquiryService creates a new EnquiryService. publisher may be nil.
func NewEnquiryService(repo repositories.EnquiryRepository, publisher EventPublisher) *EnquiryService {
	return &EnquiryService{
		repo:   repo,
		events: emitter{publisher: publisher},
	}
}

// CreateEnquiry validates and sanitizes req and stores it as a pending enquiry.
func (s *EnquiryService) CreateEnquiry(ctx context.Context, req dto.CreateEnquiryRequest) (*dto.EnquiryDTO, error) {
	if err := validateRequest(req, enquiryMessages); err != nil {
		return nil, err
	}

	enquiry := req.ToEntity()
	enquiry.Name = validation.Text(enquiry.Name)
	enquiry.Email = validation.Email(enquiry.Email)
	enquiry.Phone = validation.Phone(enquiry.Phone)
	enquiry.Message = validation.Text(enquiry.Message)

	// A message made only of markup is empty once sanitized.
	if enquiry.Message == "" {
		return nil, &ValidationError{Fields: map[string]string{"message": enquiryMessages["message.required"]}}
	}
	if enquiry.Name == "" {
		return nil, &ValidationError{Fields: map[string]string{"name": enquiryMessages["name.required"]}}
	}

	if err := s.repo.Create(ctx, &enquiry); err != nil {
		return nil, err
	}
	log.Printf("Created enquiry with id: %d", enquiry.ID)

	out := dto.EnquiryFromEntity(&enquiry)
	s.events.emit(EventEnquiryCreated, enquiry.ID, out)
	return &out, nil
}

// GetEnquiryByID retrieves a single enquiry.
func (s *EnquiryService) GetEnquiryByID(ctx context.Context, id int64) (*dto.EnquiryDTO, error) {
	if err := requirePositiveID("Enquiry", id); err != nil {
		return nil, err
	}
	enquiry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, enquiryLookupError(id, err)
	}
	out := dto.EnquiryFromEntity(enquiry)
	return &out, nil
}

// GetAllEnquiries lists enquiries newest first. page starts at 1; out of range
// page and size values are clamped rather than rejected.
func (s *EnquiryService) GetAllEnquiries(ctx context.Context, page, size int) (dto.Page[dto.EnquiryDTO], error) {
	return s.listPage(ctx, 0, page, size)
}

// GetEnquiriesByStatus lists the enquiries in one status, newest first.
func (s *EnquiryService) GetEnquiriesByStatus(ctx context.Context, status models.EnquiryStatus, page, size int) (dto.Page[dto.EnquiryDTO], error) {
	if !status.Valid() {
		return dto.Page[dto.EnquiryDTO]{}, invalidArgument("Status is required")
	}
	return s.listPage(ctx, status, page, size)
}

func (s *EnquiryService) listPage(ctx context.Context, status models.EnquiryStatus, page, size int) (dto.Page[dto.EnquiryDTO], error) {
	page, size = ClampPage(page, size)

	enquiries, total, err := s.repo.FindPage(ctx, status, (page-1)*size, size)
	if err != nil {
		return dto.Page[dto.EnquiryDTO]{}, err
	}
	return dto.NewPage(dto.EnquiriesFromEntities(enquiries), page, size, total), nil
}

// UpdateEnquiryStatus replaces the status of an enquiry and nothing else.
func (s *EnquiryService) UpdateEnquiryStatus(ctx context.Context, id int64, status models.EnquiryStatus) (*dto.EnquiryDTO, error) {
	if err := requirePositiveID("Enquiry", id); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, invalidArgument("Status is required")
	}

	enquiry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, enquiryLookupError(id, err)
	}

	oldStatus := enquiry.Status
	enquiry.Status = status
	if err := s.repo.Save(ctx, enquiry); err != nil {
		return nil, err
	}
	log.Printf("Updated enquiry %d status from %s to %s", id, oldStatus, status)

	out := dto.EnquiryFromEntity(enquiry)
	s.events.emit(EventEnquiryStatusUpdated, id, map[string]string{
		"from": oldStatus.String(),
		"to":   status.String(),
	})
	return &out, nil
}

// DeleteEnquiry removes an enquiry permanently.
func (s *EnquiryService) DeleteEnquiry(ctx context.Context, id int64) error {
	if err := requirePositiveID("Enquiry", id); err != nil {
		return err
	}
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return notFound("Enquiry not found with id: %d", id)
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return enquiryLookupError(id, err)
	}
	log.Printf("Deleted enquiry with id: %d", id)

	s.events.emit(EventEnquiryDeleted, id, nil)
	return nil
}

// ClampPage forces page to at least 1 and size into [MinPageSize, MaxPageSize].
// page is also capped so that (page-1)*size fits in an int.
func ClampPage(page, size int) (int, int) {
	if size < MinPageSize {
		size = MinPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	if page < 1 {
		page = 1
	}
	if maxPage := math.MaxInt/size + 1; page > maxPage {
		page = maxPage
	}
	return page, size
}

func enquiryLookupError(id int64, err error) error {
	if errors.Is(err, repositories.ErrRecordNotFound) {
		return notFound("Enquiry not found with id: %d", id)
	}
	return err
}
