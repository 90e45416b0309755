package repo

import (
	"context"
	"errors"

	"github.com/rogerio-castellano/product-catalog/internal/models"
)

// ProductRepository is the read side of the catalog used by the HTTP API.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]models.Product, error)
}

// ProductStore adds the write operations used when loading catalog data.
// They are not reachable over HTTP.
type ProductStore interface {
	ProductRepository
	Create(ctx context.Context, product models.Product) (models.Product, error)
	Update(ctx context.Context, product models.Product) (models.Product, error)
	FindByName(ctx context.Context, name string) (models.Product, error)
}

// ErrProductNotFound is returned when a product is not found in the repository.
var ErrProductNotFound = errors.New("product not found")
