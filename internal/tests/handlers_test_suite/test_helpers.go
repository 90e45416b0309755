package handlers_test_suite

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/netip"

	handler "github.com/rogerio-castellano/product-catalog/internal/http/handlers"
	rl "github.com/rogerio-castellano/product-catalog/internal/http/rate_limiter"
	"github.com/rogerio-castellano/product-catalog/internal/http/router"
	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
	"github.com/shopspring/decimal"
)

const allowedOrigin = "http://localhost:5173"

var productRepo *repo.InMemoryProductRepository

func init() {
	productRepo = repo.NewInMemoryProductRepository()
	handler.SetProductRepo(productRepo)
}

func newRouter() http.Handler {
	return router.NewRouter(router.Options{
		AllowedOrigins: []string{allowedOrigin},
		Quiet:          true,
	})
}

func newLimitedRouter(limiter rl.Limiter, trustedProxies ...netip.Prefix) http.Handler {
	return router.NewRouter(router.Options{
		AllowedOrigins: []string{allowedOrigin},
		Limiter:        limiter,
		TrustedProxies: trustedProxies,
		Quiet:          true,
	})
}

func clearAllProducts() {
	productRepo.Clear()
}

func addProduct(name, category string, price string) models.Product {
	p, _ := productRepo.Create(context.Background(), models.Product{
		Name:     name,
		Category: category,
		Price:    decimal.RequireFromString(price),
	})
	return p
}

func doRequest(r http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

var errStorageDown = errors.New("connection refused")

type failingRepo struct{}

func (failingRepo) FindAll(ctx context.Context) ([]models.Product, error) {
	return nil, errStorageDown
}

type failingLimiter struct{}

func (failingLimiter) Allow(ctx context.Context, key string) (bool, error) {
	return false, errors.New("redis unavailable")
}
