package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"pizzaria-crm/internal/adapters/http/middleware"
	"pizzaria-crm/internal/adapters/http/routes"
	"pizzaria-crm/internal/adapters/persistence/repositories"
	"pizzaria-crm/internal/adapters/persistence/store"
	"pizzaria-crm/internal/config"
	"pizzaria-crm/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect the document store backend
	st, closeStore, err := connectStore(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect document store: %v", err)
	}
	defer closeStore()

	// Start the nightly stats sync (03:30 daily)
	cronService := services.NewCronService(
		repositories.NewMotoboyRepository(st),
		repositories.NewAvaliacaoRepository(st),
		repositories.NewFidelidadeRepository(st),
	)
	cronService.Start()
	defer cronService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Pizzaria CRM API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass store and cfg for dependency injection)
	routes.Setup(app, st, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// connectStore opens the configured document store backend and returns
// it with its cleanup function.
func connectStore(cfg *config.Config) (store.Store, func(), error) {
	switch cfg.Store.Driver {
	case "mysql":
		gs, err := store.ConnectMySQL(cfg.Store.MySQL.DSN(), cfg.IsDev())
		if err != nil {
			return nil, nil, err
		}
		return gs, func() { gs.Close() }, nil
	default:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Store.Redis.Addr,
			Password: cfg.Store.Redis.Password,
			DB:       cfg.Store.Redis.DB,
		})
		log.Println("✅ Document store connected (redis)")
		return store.NewRedisStore(client, "crm"), func() { client.Close() }, nil
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
