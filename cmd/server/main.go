// Command main is the entry point for the PromptVault API server.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"promptvault/internal/config"
	"promptvault/internal/models"
	"promptvault/internal/seed"
	"promptvault/internal/server"
	"promptvault/internal/store"

	"github.com/gofiber/fiber/v2"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Assemble the startup dataset
	ds, err := loadDataset(cfg)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	// Create server with dependency injection
	st := store.New(ds)
	srv := server.NewServer(cfg, st)

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		AppName:   "PromptVault API",
		BodyLimit: 1 * 1024 * 1024,
	})

	// Setup middleware and routes
	srv.SetupMiddleware(app)
	srv.SetupRoutes(app)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := app.ShutdownWithContext(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}

		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Server resource shutdown error: %v", err)
		}
	}()

	// Start server
	log.Printf("Server starting on port %s...", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}

// loadDataset picks the startup dataset: an explicit file wins, otherwise
// SEED_MODE selects the static preset or a generated demo set.
func loadDataset(cfg *config.Config) (models.Dataset, error) {
	if cfg.DatasetFile != "" {
		ds, err := seed.LoadFile(cfg.DatasetFile)
		if err != nil {
			return models.Dataset{}, err
		}
		if err := seed.Validate(ds); err != nil {
			return models.Dataset{}, err
		}
		return ds, nil
	}

	if cfg.SeedMode == config.SeedModeDemo {
		return seed.Generate(seed.Options{
			Users:   cfg.DemoUsers,
			Prompts: cfg.DemoPrompts,
		}), nil
	}

	return seed.Static(), nil
}
