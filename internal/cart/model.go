package cart

import "time"

// Item is a product snapshot captured at add-time plus a quantity.
// Price/category/image are denormalized copies, not live references
// into the catalog.
type Item struct {
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	Category  string  `json:"category"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
}

// Cart is an ordered item sequence; first-added stays first and
// quantity changes never reorder. At most one Item per product id.
type Cart struct {
	ID        string    `json:"cartId"`
	UserID    string    `json:"userId"`
	Items     []Item    `json:"items"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c Cart) Len() int { return len(c.Items) }

func (c Cart) indexOf(productID string) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}
