package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/chinda/studio-bookings/internal/http/handlers"
	"github.com/chinda/studio-bookings/internal/platform/session"
	"github.com/chinda/studio-bookings/internal/repo"
	"github.com/chinda/studio-bookings/internal/repo/memory"
	"github.com/chinda/studio-bookings/internal/repo/postgres"
	"github.com/chinda/studio-bookings/internal/service"
	"github.com/chinda/studio-bookings/pkg/config"
	"github.com/chinda/studio-bookings/pkg/events"
	"github.com/chinda/studio-bookings/pkg/logger"
	mw "github.com/chinda/studio-bookings/pkg/middleware"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	if cfg.Session.Secret == "dev-only-secret-change-in-prod" {
		logger.Warn("SESSION_SECRET is the development fallback; set a real secret in production")
	}

	// Select the storage backend
	var (
		bookingRepo repo.BookingRepository
		contentRepo repo.ContentRepository
		adminRepo   repo.AdminRepository
	)
	switch cfg.Storage.Driver {
	case "postgres":
		pool, err := postgres.Connect(ctx, cfg.Database)
		if err != nil {
			logger.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			logger.Error("Failed to ensure database schema", "error", err)
			os.Exit(1)
		}

		bookingRepo = postgres.NewBookingRepository(pool)
		contentRepo = postgres.NewContentRepository(pool)
		adminRepo = postgres.NewAdminRepository(pool)
	case "memory":
		store := memory.NewStore()
		bookingRepo = store.Bookings()
		contentRepo = store.Content()
		adminRepo = store.Admins()
		logger.Warn("Using in-memory storage; all records are lost on restart")
	default:
		logger.Error("Unknown storage driver", "driver", cfg.Storage.Driver)
		os.Exit(1)
	}

	// Session store: Redis when configured, otherwise in process
	var sessionStore session.Store
	if cfg.Redis.Enabled {
		redisStore, err := session.NewRedisStore(cfg.Redis.URL)
		if err != nil {
			logger.Error("Failed to connect to Redis", "error", err)
			os.Exit(1)
		}
		defer redisStore.Close()
		sessionStore = redisStore
	} else {
		sessionStore = session.NewMemoryStore()
	}
	sessions := session.NewManager(sessionStore, cfg.Session.Secret, cfg.Session.CookieName, cfg.Session.TTL, cfg.Session.Secure)

	// Event bus: NATS when configured, otherwise discard
	var bus events.Publisher
	if cfg.NATS.Enabled {
		natsBus, err := events.NewNATSEventBus(cfg.NATS.URL)
		if err != nil {
			logger.Error("Failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		bus = natsBus
	} else {
		bus = events.NopBus{}
	}
	defer bus.Close()

	// Seed the default admin and page content on first initialization
	if err := service.ProvisionDefaults(ctx, adminRepo, contentRepo, cfg.Admin.Username, cfg.Admin.Password); err != nil {
		logger.Error("Failed to provision defaults", "error", err)
		os.Exit(1)
	}

	// Initialize services and handlers
	bookingService := service.NewBookingService(bookingRepo, bus)
	contentService := service.NewContentService(contentRepo)
	authService := service.NewAuthService(adminRepo)
	h := handlers.New(bookingService, contentService, authService, sessions)

	// Setup router
	r := chi.NewRouter()
	r.Use(mw.RequestID)
	r.Use(mw.Logging)
	r.Use(mw.Health)
	r.Use(cors.Handler(cors.Options{
		AllowedMethods:   []string{"GET", "POST"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Mount("/", h.Routes())

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
	}()

	logger.Info("Starting server", "port", cfg.Server.Port, "storage", cfg.Storage.Driver)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}
