package handlers_integrated_test_suite

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	handler "github.com/rogerio-castellano/product-catalog/internal/http/handlers"
)

func TestMain(m *testing.M) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		fmt.Println("DATABASE_URL not set, skipping postgres integration tests")
		os.Exit(0)
	}
	if err := setupTestRepos(dbURL); err != nil {
		fmt.Println("❌ Could not connect to database:", err)
		os.Exit(1)
	}
	code := m.Run()
	database.Close()
	os.Exit(code)
}

func getProducts(t *testing.T, r http.Handler) []handler.ProductResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set("Origin", allowedOrigin)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != allowedOrigin {
		t.Errorf("expected Access-Control-Allow-Origin %q, got %q", allowedOrigin, got)
	}

	var resp []handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	return resp
}

func TestGetProductsHandler_EmptyTable(t *testing.T) {
	clearAllProducts()
	t.Cleanup(clearAllProducts)

	resp := getProducts(t, newRouter())
	if resp == nil || len(resp) != 0 {
		t.Errorf("expected empty array, got %v", resp)
	}
}

func TestGetProductsHandler_MatchesRowCount(t *testing.T) {
	clearAllProducts()
	t.Cleanup(clearAllProducts)

	insertProduct("Silver Ring", "Rings", "149.90")
	insertProduct("Pearl Necklace", "Necklaces", "420.00")
	insertProduct("Gold Anklet", "Anklets", "89.50")

	var count int
	if err := database.QueryRow(`SELECT COUNT(*) FROM product`).Scan(&count); err != nil {
		t.Fatalf("count failed: %v", err)
	}

	resp := getProducts(t, newRouter())
	if len(resp) != count {
		t.Fatalf("expected %d products, got %d", count, len(resp))
	}
	if resp[0].Name != "Silver Ring" || resp[0].Price != 149.90 {
		t.Errorf("unexpected first product: %+v", resp[0])
	}
}
