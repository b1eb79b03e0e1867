package catalog

import "errors"

// ErrNotFound is returned when a product id is not in the catalog.
var ErrNotFound = errors.New("product not found")

type Product struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	OldPrice    float64 `json:"oldPrice,omitempty"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	IsNew       bool    `json:"isNew"`
	Description string  `json:"description,omitempty"`
	Stock       int     `json:"stock,omitempty"`
}
