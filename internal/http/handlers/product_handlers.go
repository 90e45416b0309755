package handlers

import (
	"log"
	"net/http"
)

// GetProductsHandler godoc
// @Summary List all products
// @Description Returns every product in the catalog. The list is empty when no products exist.
// @Tags products
// @Produce json
// @Success 200 {array} ProductResponse
// @Failure 500 {string} string "Internal error"
// @Router /api/products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.FindAll(r.Context())
	if err != nil {
		log.Printf("could not fetch products: %v", err)
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}

	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = toProductResponse(p)
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		log.Printf("failed to write products response: %v", err)
	}
}
