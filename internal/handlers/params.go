package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"toko-core/internal/services"
)

// ErrInvalidBody is returned when a request body cannot be decoded.
var ErrInvalidBody = fiber.NewError(fiber.StatusBadRequest, "Malformed JSON request body")

func invalidArgument(format string, args ...interface{}) error {
	return &services.Error{Kind: services.KindInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// pathID reads a numeric path parameter. Range checks are left to the services.
func pathID(c *fiber.Ctx, name, resource string) (int64, error) {
	id, err := c.ParamsInt(name)
	if err != nil {
		return 0, invalidArgument("%s ID must be a number", resource)
	}
	return int64(id), nil
}

// parseBody decodes the JSON body into out.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return ErrInvalidBody
	}
	return nil
}

// queryDecimal reads an optional decimal query parameter. Absent means nil.
func queryDecimal(c *fiber.Ctx, key string) (*decimal.Decimal, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, invalidArgument("Invalid value for %s: %s", key, raw)
	}
	return &d, nil
}
