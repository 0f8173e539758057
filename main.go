package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/junaidrashid-git/storefront/auth"
	"github.com/junaidrashid-git/storefront/config"
	orderControllers "github.com/junaidrashid-git/storefront/controllers/order"
	"github.com/junaidrashid-git/storefront/repository"
	"github.com/junaidrashid-git/storefront/repository/memory"
	"github.com/junaidrashid-git/storefront/repository/mongodb"
	"github.com/junaidrashid-git/storefront/repository/postgres"
	"github.com/junaidrashid-git/storefront/routes"
	"github.com/junaidrashid-git/storefront/services"
	"github.com/junaidrashid-git/storefront/session"
	"github.com/junaidrashid-git/storefront/telemetry"
	"github.com/junaidrashid-git/storefront/views"
)

func main() {
	log.Println("✅ Starting application...")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load environment variables
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	shutdownTracing, err := telemetry.Init(ctx, cfg.OtelExporter, cfg.OtelEndpoint)
	if err != nil {
		log.Fatalf("❌ Tracing setup failed: %v", err)
	}

	// Init store
	store := initStore(ctx, cfg)

	if cfg.SeedDemoProducts {
		if err := store.Products().Seed(ctx, repository.DemoProducts()); err != nil {
			log.Printf("❌ Failed to seed products: %v", err)
		}
	}

	hub := orderControllers.NewHub()
	deps := &routes.Deps{
		Store:       store,
		Accounts:    services.NewAccounts(store.Users()),
		Catalog:     services.NewCatalog(store.Products()),
		Shop:        services.NewShop(store.Users(), store.Products(), hub),
		Reviews:     services.NewReviews(store.Products()),
		Sessions:    initSessions(ctx, cfg),
		Providers:   initProviders(cfg),
		Orders:      hub,
		AdminAPIKey: cfg.AdminAPIKey,
	}

	tmpl, err := views.Load(deps.ProviderNames()...)
	if err != nil {
		log.Fatalf("❌ Failed to parse templates: %v", err)
	}

	// Gin setup
	r := gin.Default()
	r.SetHTMLTemplate(tmpl)
	r.MaxMultipartMemory = 32 << 20

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: !allowsAnyOrigin(cfg.CORSAllowedOrigins),
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, deps)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           telemetry.Handler(r),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server running on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("⏳ Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("❌ Server shutdown failed: %v", err)
	}
	if err := store.Close(shutdownCtx); err != nil {
		log.Printf("❌ Store close failed: %v", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Printf("❌ Tracing shutdown failed: %v", err)
	}
}

// initStore connects the configured document store
func initStore(ctx context.Context, cfg config.Config) repository.Store {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		store, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return store
	case config.DriverMemory:
		log.Println("✅ Using in-memory store")
		return memory.NewStore()
	default:
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		store, err := mongodb.Connect(connectCtx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			log.Fatalf("❌ MongoDB connection failed: %v", err)
		}
		return store
	}
}

// initSessions backs sessions with Redis when configured, so logout revokes
// them server-side. Without Redis the cookie alone is the session.
func initSessions(ctx context.Context, cfg config.Config) *session.Manager {
	var store session.Store
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatalf("❌ Redis connection failed: %v", err)
		}
		log.Printf("✅ Connected to Redis at %s", cfg.RedisAddr)
		store = session.NewRedisStore(client)
	}

	m := session.NewManager(cfg.SessionSecret, cfg.SessionTTL, store)
	m.SecureCookie = cfg.SecureCookies
	return m
}

func initProviders(cfg config.Config) []auth.Provider {
	var providers []auth.Provider
	if cfg.Google.Enabled() {
		providers = append(providers, auth.NewGoogle(cfg.Google.ClientID, cfg.Google.ClientSecret, cfg.Google.CallbackURL))
	}
	if cfg.Facebook.Enabled() {
		providers = append(providers, auth.NewFacebook(cfg.Facebook.ClientID, cfg.Facebook.ClientSecret, cfg.Facebook.CallbackURL))
	}
	for _, p := range providers {
		log.Printf("✅ %s login enabled", p.Name())
	}
	return providers
}

func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
