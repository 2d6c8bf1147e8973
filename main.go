package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"
	"github.com/streadway/amqp"
	"github.com/urfave/cli/v3"
	"gorm.io/gorm"

	"toko-core/internal/app"
	"toko-core/internal/config"
	"toko-core/internal/database"
	"toko-core/internal/dto"
	"toko-core/internal/services"
	"toko-core/pkg/rabbitmq"
)

func main() {
	cmd := &cli.Command{
		Name:  "toko-core",
		Usage: "Catalog and enquiry backend",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP API",
				Action: serve,
			},
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					if _, err := openDatabase(config.Load()); err != nil {
						return err
					}
					log.Println("Migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Insert sample categories and products into an empty catalog",
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg := config.Load()
					db, err := openDatabase(cfg)
					if err != nil {
						return err
					}
					return seedCatalog(ctx, app.NewServices(db, cfg, nil))
				},
			},
			{
				Name:   "consume",
				Usage:  "Log catalog lifecycle events from RabbitMQ",
				Action: consume,
			},
			{
				Name:      "hash-password",
				Usage:     "Print the bcrypt hash to use as ADMIN_PASSWORD_HASH",
				ArgsUsage: "<password>",
				Action: func(ctx context.Context, c *cli.Command) error {
					hash, err := services.HashPassword(c.Args().First())
					if err != nil {
						return err
					}
					fmt.Println(hash)
					return nil
				},
			},
		},
		DefaultCommand: "serve",
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func openDatabase(cfg config.Config) (*gorm.DB, error) {
	db, err := database.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func serve(ctx context.Context, c *cli.Command) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}

	// Events are optional: without RABBITMQ_URL the services publish nothing.
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Exchange: services.EventsExchange})
		if err != nil {
			return fmt.Errorf("failed to initialize RabbitMQ client: %w", err)
		}
		defer mqClient.Close()
		publisher = mqClient
	} else {
		log.Println("RABBITMQ_URL not set, lifecycle events disabled")
	}

	if cfg.Features.Auth && cfg.AdminPasswordHash == "" {
		log.Println("Warning: auth is enabled but ADMIN_PASSWORD_HASH is empty, admin login will always fail")
	}

	fiberApp := app.NewApp(cfg, app.NewServices(db, cfg, publisher))

	log.Printf("Starting server on port %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- fiberApp.Listen(cfg.AppPort)
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed to start: %w", err)
	case <-quit:
	}

	log.Println("Shutting down server...")
	if err := fiberApp.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
	return nil
}

func consume(ctx context.Context, c *cli.Command) error {
	cfg := config.Load()
	if cfg.RabbitMQURL == "" {
		return fmt.Errorf("RABBITMQ_URL is required to consume events")
	}

	mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Exchange: services.EventsExchange})
	if err != nil {
		return fmt.Errorf("failed to initialize RabbitMQ client: %w", err)
	}
	defer mqClient.Close()

	if err := mqClient.ConsumeEvents(handleEventMessage); err != nil {
		return err
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Consumer stopped")
	return nil
}

// handleEventMessage logs one catalog event. Undecodable bodies are rejected.
func handleEventMessage(msg amqp.Delivery) error {
	var event services.Event
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		return fmt.Errorf("failed to decode event: %w", err)
	}
	log.Printf("Received %s for %d (event %s at %s)", event.Type, event.ResourceID, event.ID, event.OccurredAt.Format(time.RFC3339))
	return nil
}

// seedCatalog populates an empty catalog with a few categories and products.
func seedCatalog(ctx context.Context, svc app.Services) error {
	existing, err := svc.Categories.GetAllCategoriesAdmin(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Printf("Catalog already has %d categories, skipping seed", len(existing))
		return nil
	}

	catalog := []struct {
		category string
		products []dto.CreateProductRequest
	}{
		{
			category: "Electronics",
			products: []dto.CreateProductRequest{
				sampleProduct("Laptop", "High performance laptop", "1200.00", 10, 4.5),
				sampleProduct("Keyboard", "Mechanical keyboard", "75.00", 25, 4.2),
			},
		},
		{
			category: "Accessories",
			products: []dto.CreateProductRequest{
				sampleProduct("Mouse", "Ergonomic wireless mouse", "25.00", 50, 4.0),
			},
		},
	}

	for _, entry := range catalog {
		name := entry.category
		category, err := svc.Categories.CreateCategory(ctx, dto.CreateCategoryRequest{Name: &name})
		if err != nil {
			return fmt.Errorf("failed to seed category %s: %w", name, err)
		}
		log.Printf("Seeded category: %s (ID: %d)", category.Name, category.ID)

		for _, req := range entry.products {
			req.CategoryID = &category.ID
			product, err := svc.Products.CreateProduct(ctx, req)
			if err != nil {
				return fmt.Errorf("failed to seed product %s: %w", *req.Name, err)
			}
			log.Printf("Seeded product: %s (ID: %d)", product.Name, product.ID)
		}
	}
	return nil
}

func sampleProduct(name, description, price string, stock int, rating float64) dto.CreateProductRequest {
	p := decimal.RequireFromString(price)
	return dto.CreateProductRequest{
		Name:        &name,
		Description: &description,
		Price:       &p,
		Stock:       &stock,
		Rating:      &rating,
	}
}
