package validation_test

import (
	"testing"

	"toko-core/internal/validation"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmail(t *testing.T) {
	for _, ok := range []string{"jane@example.com", " a.b+c@shop.co.id ", "x_y%z@d-e.io"} {
		assert.True(t, validation.IsEmail(ok), ok)
	}
	for _, bad := range []string{"", "jane", "jane@", "jane@example", "@example.com", "jane@example.c"} {
		assert.False(t, validation.IsEmail(bad), bad)
	}
}

func TestIsPhone(t *testing.T) {
	for _, ok := range []string{"+1 (555) 123-4567", "5550100", " 021-555-0199 "} {
		assert.True(t, validation.IsPhone(ok), ok)
	}
	for _, bad := range []string{"", "12345", "call me", "+1 555 0100 ext 2", "123456789012345678901"} {
		assert.False(t, validation.IsPhone(bad), bad)
	}
}

type sample struct {
	Title *string          `json:"title" validate:"required,notblank,max=5"`
	Price *decimal.Decimal `json:"price" validate:"omitempty,gt=0,lte=10"`
	Email string           `json:"email" validate:"omitempty,email_shape"`
}

func TestStruct(t *testing.T) {
	messages := validation.Messages{
		"title.required": "Title is required",
		"title":          "Title is invalid",
	}

	title := "ok"
	fields, err := validation.Struct(sample{Title: &title}, messages)
	require.NoError(t, err)
	assert.Nil(t, fields)

	fields, err = validation.Struct(sample{}, messages)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"title": "Title is required"}, fields)

	blank := "   "
	expensive := decimal.RequireFromString("10.01")
	fields, err = validation.Struct(sample{Title: &blank, Price: &expensive, Email: "nope"}, messages)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"title": "Title is invalid",
		"price": "Field 'price' failed on the 'lte' tag",
		"email": "Field 'email' failed on the 'email_shape' tag",
	}, fields)
}

func TestStruct_NotAStruct(t *testing.T) {
	_, err := validation.Struct("text", nil)
	assert.Error(t, err)
}
