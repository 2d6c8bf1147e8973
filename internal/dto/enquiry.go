package dto

import (
	"time"

	"toko-core/internal/models"
)

// EnquiryDTO is the wire representation of an enquiry.
type EnquiryDTO struct {
	ID        int64                `json:"id"`
	Name      string               `json:"name"`
	Email     string               `json:"email"`
	Phone     string               `json:"phone"`
	Message   string               `json:"message"`
	ProductID *int64               `json:"productId,omitempty"`
	Status    models.EnquiryStatus `json:"status"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

// CreateEnquiryRequest is the body of a new customer enquiry. Any status sent by
// the client is ignored.
type CreateEnquiryRequest struct {
	Name      string `json:"name" validate:"required,notblank,min=2,max=100"`
	Email     string `json:"email" validate:"required,notblank,max=100,email_shape"`
	Phone     string `json:"phone" validate:"required,notblank,phone"`
	Message   string `json:"message" validate:"required,notblank,min=10,max=5000"`
	ProductID *int64 `json:"productId" validate:"omitempty,gt=0"`
}

// EnquiryFromEntity converts a stored enquiry into its transfer form.
func EnquiryFromEntity(e *models.Enquiry) EnquiryDTO {
	status := e.Status
	if !status.Valid() {
		status = models.EnquiryStatusPending
	}
	return EnquiryDTO{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Phone:     e.Phone,
		Message:   e.Message,
		ProductID: e.ProductID,
		Status:    status,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// EnquiriesFromEntities converts a list of enquiries, never returning nil.
func EnquiriesFromEntities(enquiries []models.Enquiry) []EnquiryDTO {
	out := make([]EnquiryDTO, 0, len(enquiries))
	for i := range enquiries {
		out = append(out, EnquiryFromEntity(&enquiries[i]))
	}
	return out
}

// ToEntity builds a new pending enquiry from the request.
func (r CreateEnquiryRequest) ToEntity() models.Enquiry {
	return models.Enquiry{
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Message:   r.Message,
		ProductID: r.ProductID,
		Status:    models.EnquiryStatusPending,
	}
}
