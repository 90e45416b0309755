package repo

import (
	"context"
	"errors"
	"time"

	"github.com/rogerio-castellano/product-catalog/internal/models"
	"gorm.io/gorm"
)

const defaultQueryTimeout = 3 * time.Second

type GormProductRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewGormProductRepository(db *gorm.DB, timeout time.Duration) *GormProductRepository {
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}
	return &GormProductRepository{db: db, timeout: timeout}
}

func (r *GormProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	products := []models.Product{}
	if err := r.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormProductRepository) Create(ctx context.Context, p models.Product) (models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	p.ID = 0
	err := r.db.WithContext(ctx).Create(&p).Error
	return p, err
}

func (r *GormProductRepository) Update(ctx context.Context, p models.Product) (models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res := r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", p.ID).Updates(map[string]any{
		"name":        p.Name,
		"description": p.Description,
		"category":    p.Category,
		"type":        p.Type,
		"color":       p.Color,
		"price":       p.Price,
		"image_url":   p.ImageURL,
	})
	if res.Error != nil {
		return models.Product{}, res.Error
	}
	if res.RowsAffected == 0 {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (r *GormProductRepository) FindByName(ctx context.Context, name string) (models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var p models.Product
	err := r.db.WithContext(ctx).Where("name = ?", name).Order("id").First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}
