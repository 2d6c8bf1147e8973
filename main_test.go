package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toko-core/internal/app"
	"toko-core/internal/config"
	"toko-core/internal/database"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestSeedCatalog(t *testing.T) {
	db, err := database.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New()))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	svc := app.NewServices(db, config.Config{}, nil)
	ctx := context.Background()

	require.NoError(t, seedCatalog(ctx, svc))

	categories, err := svc.Categories.GetAllCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 2)

	products, err := svc.Products.GetAllProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, categories[0].ID, *products[0].CategoryID)

	// A second run leaves the catalog alone
	require.NoError(t, seedCatalog(ctx, svc))
	products, err = svc.Products.GetAllProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 3)
}

func TestHandleEventMessage(t *testing.T) {
	body := []byte(`{"id":"e1","type":"product.created","resourceId":4,"occurredAt":"2024-03-01T12:00:00Z"}`)
	assert.NoError(t, handleEventMessage(amqp.Delivery{Body: body}))
	assert.Error(t, handleEventMessage(amqp.Delivery{Body: []byte("not json")}))
}
