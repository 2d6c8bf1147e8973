package handlers

import (
	"github.com/gofiber/fiber/v2"

	"toko-core/internal/dto"
	"toko-core/internal/services"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes. Writes go through admin.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, admin fiber.Handler) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/search", h.HandleSearchProducts)
	productRoutes.Get("/price-range", h.HandleGetProductsByPriceRange)
	productRoutes.Get("/category/:categoryId", h.HandleGetProductsByCategory)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", admin, h.HandleCreateProduct)
	productRoutes.Put("/:id", admin, h.HandleUpdateProduct)
	productRoutes.Delete("/:id", admin, h.HandleDeleteProduct)
}

// HandleGetProducts lists every active product.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// HandleSearchProducts searches active products by the q query parameter.
func (h *ProductHandler) HandleSearchProducts(c *fiber.Ctx) error {
	products, err := h.service.SearchProducts(c.UserContext(), c.Query("q"))
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// HandleGetProductsByPriceRange filters active products by minPrice and maxPrice.
func (h *ProductHandler) HandleGetProductsByPriceRange(c *fiber.Ctx) error {
	minPrice, err := queryDecimal(c, "minPrice")
	if err != nil {
		return err
	}
	maxPrice, err := queryDecimal(c, "maxPrice")
	if err != nil {
		return err
	}

	products, err := h.service.GetProductsByPriceRange(c.UserContext(), minPrice, maxPrice)
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// HandleGetProductsByCategory lists the active products of one category.
func (h *ProductHandler) HandleGetProductsByCategory(c *fiber.Ctx) error {
	categoryID, err := pathID(c, "categoryId", "Category")
	if err != nil {
		return err
	}
	products, err := h.service.GetProductsByCategory(c.UserContext(), categoryID)
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single active product.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "Product")
	if err != nil {
		return err
	}
	product, err := h.service.GetProductByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req dto.CreateProductRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	product, err := h.service.CreateProduct(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct applies a partial update to a product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "Product")
	if err != nil {
		return err
	}
	var req dto.UpdateProductRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	product, err := h.service.UpdateProduct(c.UserContext(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// HandleDeleteProduct soft deletes a product.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "Product")
	if err != nil {
		return err
	}
	if err := h.service.DeleteProduct(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
