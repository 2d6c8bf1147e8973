package handlers

import (
	"github.com/gofiber/fiber/v2"

	"toko-core/internal/dto"
	"toko-core/internal/models"
	"toko-core/internal/services"
)

const defaultPageSize = 10

// EnquiryHandler handles HTTP requests for customer enquiries.
type EnquiryHandler struct {
	service *services.EnquiryService
}

// NewEnquiryHandler creates a new EnquiryHandler.
func NewEnquiryHandler(service *services.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{
		service: service,
	}
}

// RegisterRoutes registers the enquiry routes. Only submission is public.
func (h *EnquiryHandler) RegisterRoutes(router fiber.Router, admin fiber.Handler) {
	enquiryRoutes := router.Group("/enquiries")
	enquiryRoutes.Post("/", h.HandleCreateEnquiry)
	enquiryRoutes.Get("/", admin, h.HandleGetEnquiries)
	enquiryRoutes.Get("/status/:status", admin, h.HandleGetEnquiriesByStatus)
	enquiryRoutes.Get("/:id", admin, h.HandleGetEnquiryByID)
	enquiryRoutes.Put("/:id/status", admin, h.HandleUpdateEnquiryStatus)
	enquiryRoutes.Delete("/:id", admin, h.HandleDeleteEnquiry)
}

// HandleCreateEnquiry records a new enquiry submitted by a customer.
func (h *EnquiryHandler) HandleCreateEnquiry(c *fiber.Ctx) error {
	var req dto.CreateEnquiryRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	enquiry, err := h.service.CreateEnquiry(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(enquiry)
}

// HandleGetEnquiries returns one page of enquiries, newest first.
func (h *EnquiryHandler) HandleGetEnquiries(c *fiber.Ctx) error {
	page, err := h.service.GetAllEnquiries(c.UserContext(), c.QueryInt("page", 1), c.QueryInt("size", defaultPageSize))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

// HandleGetEnquiriesByStatus returns one page of enquiries in a single status.
func (h *EnquiryHandler) HandleGetEnquiriesByStatus(c *fiber.Ctx) error {
	status, err := parseStatus(c.Params("status"))
	if err != nil {
		return err
	}
	page, err := h.service.GetEnquiriesByStatus(c.UserContext(), status, c.QueryInt("page", 1), c.QueryInt("size", defaultPageSize))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

// HandleGetEnquiryByID returns a single enquiry.
func (h *EnquiryHandler) HandleGetEnquiryByID(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "Enquiry")
	if err != nil {
		return err
	}
	enquiry, err := h.service.GetEnquiryByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(enquiry)
}

// HandleUpdateEnquiryStatus moves an enquiry to the status given in the query string.
func (h *EnquiryHandler) HandleUpdateEnquiryStatus(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "Enquiry")
	if err != nil {
		return err
	}
	status, err := parseStatus(c.Query("status"))
	if err != nil {
		return err
	}
	enquiry, err := h.service.UpdateEnquiryStatus(c.UserContext(), id, status)
	if err != nil {
		return err
	}
	return c.JSON(enquiry)
}

// HandleDeleteEnquiry removes an enquiry permanently.
func (h *EnquiryHandler) HandleDeleteEnquiry(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "Enquiry")
	if err != nil {
		return err
	}
	if err := h.service.DeleteEnquiry(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// parseStatus leaves an empty value as the zero status so the service reports
// it as missing.
func parseStatus(raw string) (models.EnquiryStatus, error) {
	if raw == "" {
		return 0, nil
	}
	status, err := models.ParseEnquiryStatus(raw)
	if err != nil {
		return 0, invalidArgument("Invalid enquiry status: %s", raw)
	}
	return status, nil
}
