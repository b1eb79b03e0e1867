package catalog

import (
	"sort"
	"strings"
)

// CategoryAll is the sentinel category matching every product.
const CategoryAll = "All"

type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortNew       SortKey = "new"
	SortPriceLow  SortKey = "priceLow"
	SortPriceHigh SortKey = "priceHigh"
)

// Criteria describes one catalog query. The zero value matches the
// whole catalog in its original order: an empty SearchText matches
// everything, an empty Category behaves like CategoryAll, and a
// MaxPrice <= 0 means no price cap.
type Criteria struct {
	SearchText string
	Category   string
	MaxPrice   float64
	Sort       SortKey
}

// Query filters and sorts products without touching the input slice.
// It never fails: a non-matching filter yields an empty result, and an
// unrecognized sort key falls back to the featured (original) order.
func Query(products []Product, c Criteria) []Product {
	search := strings.ToLower(c.SearchText)

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if search != "" && !strings.Contains(strings.ToLower(p.Title), search) {
			continue
		}
		if c.Category != "" && c.Category != CategoryAll && p.Category != c.Category {
			continue
		}
		if c.MaxPrice > 0 && p.Price > c.MaxPrice {
			continue
		}
		out = append(out, p)
	}

	switch c.Sort {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortNew:
		sort.SliceStable(out, func(i, j int) bool { return out[i].IsNew && !out[j].IsNew })
	default:
		// featured: keep catalog order
	}

	return out
}
