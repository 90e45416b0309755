package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/rogerio-castellano/product-catalog/internal/catalog"
	"github.com/rogerio-castellano/product-catalog/internal/config"
	"github.com/rogerio-castellano/product-catalog/internal/db"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
)

// seed loads catalog products from a CSV file into the database.
//
//	go run ./seed -file products.csv -mode update
func main() {
	file := flag.String("file", "products.csv", "CSV file with name,description,category,type,color,price,image_url columns")
	mode := flag.String("mode", "skip", "what to do with products that already exist: skip|update")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
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
	if err := db.Migrate(gdb); err != nil {
		log.Fatal("❌ ", err)
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatalf("❌ Could not open %s: %v", *file, err)
	}
	defer f.Close()

	store := repo.NewGormProductRepository(gdb, cfg.Database.QueryTimeout)
	res, err := catalog.Import(context.Background(), store, f, catalog.ParseMode(*mode))
	if err != nil {
		log.Fatalf("❌ Import failed: %v", err)
	}

	for _, e := range res.Errors {
		log.Printf("⚠️ %v", e)
	}
	log.Printf("✅ Imported %d products (%d rows skipped)", res.Imported, len(res.Errors))
}
