package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"toko-core/internal/dto"
	"toko-core/internal/services"
	"toko-core/internal/validation"
)

var loginMessages = validation.Messages{
	"username": "Username is required",
	"password": "Password is required",
}

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/login", h.HandleLogin)
}

// HandleLogin exchanges the admin credentials for a JWT.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	fields, err := validation.Struct(req, loginMessages)
	if err != nil {
		return err
	}
	if len(fields) > 0 {
		return &services.ValidationError{Fields: fields}
	}

	token, err := h.authService.LoginAdmin(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			log.Printf("Failed admin login for %q", req.Username)
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
		}
		return err
	}

	return c.JSON(dto.LoginResponse{Token: token, TokenType: "Bearer"})
}
