package handlers

import (
	"github.com/gofiber/fiber/v2"

	"toko-core/internal/config"
)

// ServiceName is reported by the health endpoints.
const ServiceName = "toko-core"

// ConfigHandler exposes the feature toggles and a health probe.
type ConfigHandler struct {
	features config.Features
}

// NewConfigHandler creates a new ConfigHandler.
func NewConfigHandler(features config.Features) *ConfigHandler {
	return &ConfigHandler{features: features}
}

// RegisterRoutes registers the config routes with the Fiber app.
func (h *ConfigHandler) RegisterRoutes(router fiber.Router) {
	configRoutes := router.Group("/config")
	configRoutes.Get("/features", h.HandleGetFeatures)
	configRoutes.Get("/health", HandleHealth)
}

func (h *ConfigHandler) HandleGetFeatures(c *fiber.Ctx) error {
	return c.JSON(h.features)
}

// HandleHealth reports that the service is up.
func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "UP",
		"service": ServiceName,
	})
}
