package order

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Debabrata909/modern-ecommerce/internal/pricing"
)

type Item struct {
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	Qty       int     `json:"qty"`
	Price     float64 `json:"price"`
}

type Order struct {
	ID       string         `json:"orderId"`
	UserID   string         `json:"userId"`
	Items    []Item         `json:"items"`
	Totals   pricing.Totals `json:"totals"`
	Status   Status         `json:"status"`
	PlacedAt time.Time      `json:"placedAt"`
}

// newID produces storefront-style order ids like ORD-8859-X2.
func newID() string {
	u := uuid.New()
	num := (int(u[0])<<8 | int(u[1])) % 10000
	return fmt.Sprintf("ORD-%04d-%c%d", num, 'A'+u[2]%26, u[3]%10)
}
