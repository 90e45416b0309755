package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rogerio-castellano/product-catalog/internal/config"
	"github.com/rogerio-castellano/product-catalog/internal/db"
	"github.com/rogerio-castellano/product-catalog/internal/http/handlers"
	mw "github.com/rogerio-castellano/product-catalog/internal/http/middleware"
	rl "github.com/rogerio-castellano/product-catalog/internal/http/rate_limiter"
	"github.com/rogerio-castellano/product-catalog/internal/http/router"
	"github.com/rogerio-castellano/product-catalog/internal/redissvc"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
)

// @title Product Catalog API
// @version 1.0
// @description Read-only product catalog for the accessory store.
// @host localhost:8080
// @BasePath /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	if err := cfg.RequireDatabase(); err != nil {
		log.Fatal("❌ ", err)
	}

	database, err := db.Connect(cfg.Database)
	if err != nil {
		log.Fatal("❌ Could not connect to database:", err)
	}
	defer database.Close()

	gdb, err := db.OpenGorm(database)
	if err != nil {
		log.Fatal("❌ ", err)
	}
	if cfg.Database.AutoMigrate {
		if err := db.Migrate(gdb); err != nil {
			log.Fatal("❌ ", err)
		}
		log.Println("✅ Schema migrated")
	}

	handlers.SetProductRepo(repo.NewGormProductRepository(gdb, cfg.Database.QueryTimeout))

	limiter, closeLimiter, err := newLimiter(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ Could not set up rate limiting: %v", err)
	}
	defer closeLimiter()

	trustedProxies, err := mw.ParseTrustedProxies(cfg.RateLimit.TrustedProxies)
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	srv := &http.Server{
		Addr: cfg.Server.Addr,
		Handler: router.NewRouter(router.Options{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			Limiter:        limiter,
			TrustedProxies: trustedProxies,
			Swagger:        cfg.Server.Swagger,
		}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Printf("✅ Server running on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("❌ Graceful shutdown failed: %v", err)
	}
}

func newLimiter(ctx context.Context, cfg config.Config) (rl.Limiter, func(), error) {
	noop := func() {}
	if !cfg.RateLimit.Enabled {
		return nil, noop, nil
	}

	if cfg.RateLimit.Backend == config.BackendRedis {
		rdb, err := redissvc.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, noop, err
		}
		log.Printf("✅ Rate limiting backed by redis at %s", cfg.Redis.Addr)
		return rl.NewRedisLimiter(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window), func() { rdb.Close() }, nil
	}

	limiter := rl.NewMemoryLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window, cfg.RateLimit.Burst)
	go limiter.StartCleanupLoop(ctx, time.Minute, 5*time.Minute)
	return limiter, noop, nil
}
