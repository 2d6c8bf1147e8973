// Package app assembles the catalog services and their HTTP surface.
package app

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/utils"
	"gorm.io/gorm"

	"toko-core/internal/config"
	"toko-core/internal/handlers"
	"toko-core/internal/middleware"
	"toko-core/internal/repositories"
	"toko-core/internal/services"
)

// Services bundles the business services behind the HTTP handlers.
type Services struct {
	Products   *services.ProductService
	Categories *services.CategoryService
	Enquiries  *services.EnquiryService
	Auth       *services.AuthService
}

// NewServices builds the GORM repositories and the services on top of db.
// publisher may be nil, in which case no lifecycle events are sent.
func NewServices(db *gorm.DB, cfg config.Config, publisher services.EventPublisher) Services {
	return Services{
		Products:   services.NewProductService(repositories.NewGORMProductRepository(db), publisher),
		Categories: services.NewCategoryService(repositories.NewGORMCategoryRepository(db), publisher),
		Enquiries:  services.NewEnquiryService(repositories.NewGORMEnquiryRepository(db), publisher),
		Auth:       services.NewAuthService(cfg.AdminUsername, cfg.AdminPasswordHash, cfg.JWTSecret),
	}
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Timestamp time.Time         `json:"timestamp"`
	Status    int               `json:"status"`
	Error     string            `json:"error"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
	Path      string            `json:"path"`
}

// NewApp creates the Fiber app with middleware and every /api/v1 route.
func NewApp(cfg config.Config, svc Services) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "toko-core",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
	}))

	admin := middleware.AdminRequired(svc.Auth, cfg.Features.Auth)

	apiV1 := app.Group("/api/v1")
	handlers.NewAuthHandler(svc.Auth).RegisterRoutes(apiV1)
	handlers.NewConfigHandler(cfg.Features).RegisterRoutes(apiV1)
	handlers.NewProductHandler(svc.Products).RegisterRoutes(apiV1, admin)
	handlers.NewCategoryHandler(svc.Categories).RegisterRoutes(apiV1, admin)
	handlers.NewEnquiryHandler(svc.Enquiries).RegisterRoutes(apiV1, admin)

	app.Get("/health", handlers.HandleHealth)

	return app
}

// errorHandler turns every error returned by a handler into an ErrorResponse.
func errorHandler(c *fiber.Ctx, err error) error {
	resp := ErrorResponse{
		Timestamp: time.Now().UTC(),
		Status:    fiber.StatusInternalServerError,
		Error:     "Internal Server Error",
		Message:   "An unexpected error occurred",
		Path:      c.Path(),
	}

	var validationErr *services.ValidationError
	var domainErr *services.Error
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &validationErr):
		resp.Status = fiber.StatusBadRequest
		resp.Error = "Validation Error"
		resp.Message = "Invalid input data"
		resp.Details = validationErr.Fields
	case errors.As(err, &domainErr) && domainErr.Kind == services.KindNotFound:
		resp.Status = fiber.StatusNotFound
		resp.Error = "Not Found"
		resp.Message = domainErr.Message
	case errors.As(err, &domainErr) && domainErr.Kind == services.KindInvalidArgument:
		resp.Status = fiber.StatusBadRequest
		resp.Error = "Invalid Argument"
		resp.Message = domainErr.Message
	case errors.Is(err, handlers.ErrInvalidBody):
		resp.Status = fiber.StatusBadRequest
		resp.Error = "Invalid Request Body"
		resp.Message = handlers.ErrInvalidBody.Message
	case errors.As(err, &fiberErr):
		resp.Status = fiberErr.Code
		resp.Error = utils.StatusMessage(fiberErr.Code)
		resp.Message = fiberErr.Message
	default:
		log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	}

	return c.Status(resp.Status).JSON(resp)
}
