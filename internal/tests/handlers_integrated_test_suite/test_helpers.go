package handlers_integrated_test_suite

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/rogerio-castellano/product-catalog/internal/config"
	"github.com/rogerio-castellano/product-catalog/internal/db"
	handler "github.com/rogerio-castellano/product-catalog/internal/http/handlers"
	"github.com/rogerio-castellano/product-catalog/internal/http/router"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
	"gorm.io/gorm"
)

const allowedOrigin = "http://localhost:5173"

var (
	productRepo *repo.GormProductRepository
	database    *sql.DB
	gdb         *gorm.DB
)

func setupTestRepos(dbURL string) error {
	var err error
	database, err = db.Connect(config.Database{URL: dbURL})
	if err != nil {
		return err
	}

	gdb, err = db.OpenGorm(database)
	if err != nil {
		return err
	}
	if err := db.Migrate(gdb); err != nil {
		return err
	}

	productRepo = repo.NewGormProductRepository(gdb, 3*time.Second)
	handler.SetProductRepo(productRepo)
	return nil
}

func newRouter() http.Handler {
	return router.NewRouter(router.Options{AllowedOrigins: []string{allowedOrigin}, Quiet: true})
}

func clearAllProducts() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := database.ExecContext(ctx, "TRUNCATE TABLE product RESTART IDENTITY CASCADE")
	if err != nil {
		fmt.Println(fmt.Errorf("failed to truncate product table: %w", err))
	}
}

func insertProduct(name, category, price string) {
	query := `INSERT INTO product (name, description, category, type, color, price, image_url) VALUES ($1, '', $2, '', '', $3, '')`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if _, err := database.ExecContext(ctx, query, name, category, price); err != nil {
		log.Printf("Error adding a product: %v", err)
	}
}
