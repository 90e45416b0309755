package handlers

import "github.com/rogerio-castellano/product-catalog/internal/models"

type ProductResponse struct {
	Id          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Type        string  `json:"type"`
	Color       string  `json:"color"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
}

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		Id:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Type:        p.Type,
		Color:       p.Color,
		Price:       p.Price.InexactFloat64(),
		ImageURL:    p.ImageURL,
	}
}
