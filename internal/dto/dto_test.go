package dto_test

import (
	"testing"

	"toko-core/internal/dto"
	"toko-core/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	page := dto.NewPage([]int(nil), 3, 10, 21)
	assert.NotNil(t, page.Content)
	assert.True(t, page.Empty)
	assert.Equal(t, 3, page.TotalPages)

	page = dto.NewPage([]int{1, 2}, 1, 2, 2)
	assert.False(t, page.Empty)
	assert.Equal(t, 1, page.TotalPages)

	page = dto.NewPage([]int{}, 1, 10, 0)
	assert.Equal(t, 0, page.TotalPages)
}

func TestUpdateProductRequest_ApplyTo(t *testing.T) {
	category := int64(2)
	stored := models.Product{ID: 1, Name: "Desk", Description: "Oak", Price: decimal.NewFromInt(100), Stock: 4, Active: true}

	stock := 7
	inactive := false
	dto.UpdateProductRequest{Stock: &stock, CategoryID: &category, Active: &inactive}.ApplyTo(&stored)

	assert.Equal(t, "Desk", stored.Name)
	assert.Equal(t, "Oak", stored.Description)
	assert.True(t, stored.Price.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 7, stored.Stock)
	assert.Equal(t, &category, stored.CategoryID)
	assert.False(t, stored.Active)
}

func TestCreateCategoryRequest_ToEntity(t *testing.T) {
	name := "Shoes"
	assert.True(t, dto.CreateCategoryRequest{Name: &name}.ToEntity().Active)

	inactive := false
	assert.False(t, dto.CreateCategoryRequest{Name: &name, Active: &inactive}.ToEntity().Active)
}

func TestEnquiryFromEntity_DefaultsStatus(t *testing.T) {
	out := dto.EnquiryFromEntity(&models.Enquiry{ID: 1})
	assert.Equal(t, models.EnquiryStatusPending, out.Status)

	assert.NotNil(t, dto.EnquiriesFromEntities(nil))
	assert.NotNil(t, dto.ProductsFromEntities(nil))
	assert.NotNil(t, dto.CategoriesFromEntities(nil))
}
