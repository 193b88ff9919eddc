package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jcastror/elfogon-backend/config"
	"github.com/jcastror/elfogon-backend/internal/app/controller"
	"github.com/jcastror/elfogon-backend/internal/app/repository"
	"github.com/jcastror/elfogon-backend/internal/app/service"
	"github.com/jcastror/elfogon-backend/internal/db"
	"github.com/jcastror/elfogon-backend/internal/middleware"
	"github.com/jcastror/elfogon-backend/internal/router"
	"github.com/jcastror/elfogon-backend/internal/scheduler"
	"github.com/jcastror/elfogon-backend/internal/session"
	"github.com/jcastror/elfogon-backend/pkg/logger"
	"github.com/jcastror/elfogon-backend/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting EL FOGON server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Session store. The memory backend keeps everything in process and
	// is only meant for local development.
	var sessionStore session.Store
	if cfg.Session.Backend == "memory" {
		logger.Warn("Using in-memory session store; sessions are lost on restart", nil)
		sessionStore = session.NewMemoryStore(cfg.Session.TTL)
	} else {
		if err := redis.Init(&cfg.Redis); err != nil {
			logger.Fatal("Failed to connect to Redis", err)
		}
		defer func() {
			if err := redis.Close(); err != nil {
				logger.Error("Failed to close Redis connection", err)
			}
		}()
		sessionStore = session.NewRedisStore(redis.GetClient(), cfg.Session.TTL)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	categoryRepo := repository.NewCategoryRepository(db.GetDB())
	productRepo := repository.NewProductRepository(db.GetDB())
	addressRepo := repository.NewAddressRepository(db.GetDB())
	orderRepo := repository.NewOrderRepository(db.GetDB())

	// Initialize services
	authService := service.NewAuthService(userRepo)
	catalogService := service.NewCatalogService(categoryRepo, productRepo)
	cartService := service.NewCartService(productRepo)
	addressService := service.NewAddressService(addressRepo)
	checkoutService := service.NewCheckoutService(orderRepo, addressRepo)
	orderService := service.NewOrderService(orderRepo)

	// Initialize middleware
	sessions := middleware.NewSessionMiddleware(sessionStore, cfg.Session)

	// Initialize controllers
	authController := controller.NewAuthController(authService, sessions)
	catalogController := controller.NewCatalogController(catalogService)
	cartController := controller.NewCartController(cartService, sessions)
	addressController := controller.NewAddressController(addressService)
	checkoutController := controller.NewCheckoutController(checkoutService, sessions)
	profileController := controller.NewProfileController(orderService, addressService)

	// Start the daily order report
	orderStats := scheduler.NewOrderStatsScheduler(orderRepo)
	if err := orderStats.Start(); err != nil {
		logger.Fatal("Failed to start order stats scheduler", err)
	}
	defer orderStats.Stop()

	// Setup router
	r := router.NewRouter(
		authController,
		catalogController,
		cartController,
		addressController,
		checkoutController,
		profileController,
		sessions,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
