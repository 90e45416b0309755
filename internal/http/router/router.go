package router

import (
	"net/http"
	"net/netip"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	_ "github.com/rogerio-castellano/product-catalog/docs"
	"github.com/rogerio-castellano/product-catalog/internal/http/handlers"
	mw "github.com/rogerio-castellano/product-catalog/internal/http/middleware"
	rl "github.com/rogerio-castellano/product-catalog/internal/http/rate_limiter"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Options struct {
	AllowedOrigins []string
	// Limiter is optional; nil disables rate limiting.
	Limiter rl.Limiter
	// TrustedProxies may set X-Forwarded-For for rate limiting keys.
	TrustedProxies []netip.Prefix
	// Swagger mounts the API docs under /swagger/.
	Swagger bool
	// Quiet drops the per-request access log.
	Quiet bool
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	if !opts.Quiet {
		r.Use(chimw.Logger)
	}
	r.Use(chimw.Recoverer)
	r.Use(mw.AllowedOrigins(opts.AllowedOrigins))
	if opts.Limiter != nil {
		r.Use(mw.RateLimit(opts.Limiter, opts.TrustedProxies))
	}

	r.Get("/api/products", handlers.GetProductsHandler)

	if opts.Swagger {
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	}

	return r
}
