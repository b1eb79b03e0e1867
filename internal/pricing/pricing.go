// Package pricing derives order totals from a cart snapshot. All
// functions are pure; amounts are raw rupee values, display formatting
// belongs to the frontend.
package pricing

import (
	"errors"
	"fmt"

	"github.com/Debabrata909/modern-ecommerce/internal/cart"
)

// ErrInvalidItem is returned when a cart line carries a negative price
// or a non-positive quantity. Inputs are rejected, never clamped.
var ErrInvalidItem = errors.New("invalid cart item")

type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Calculator holds the pricing constants. The defaults match the
// storefront: free shipping strictly above 5000, flat 99 fee below,
// 18% GST on the subtotal only (shipping is not taxed).
type Calculator struct {
	ShippingThreshold float64
	ShippingFlatFee   float64
	TaxRate           float64
}

func DefaultCalculator() Calculator {
	return Calculator{
		ShippingThreshold: 5000,
		ShippingFlatFee:   99,
		TaxRate:           0.18,
	}
}

// ComputeTotals prices a cart snapshot. A subtotal exactly equal to the
// threshold still pays shipping; the comparison is strict greater-than.
func (calc Calculator) ComputeTotals(c cart.Cart) (Totals, error) {
	var subtotal float64
	for _, it := range c.Items {
		if it.Price < 0 || it.Qty < 1 {
			return Totals{}, fmt.Errorf("%w: product %s price=%v qty=%d",
				ErrInvalidItem, it.ProductID, it.Price, it.Qty)
		}
		subtotal += it.Price * float64(it.Qty)
	}

	shipping := calc.ShippingFlatFee
	if subtotal > calc.ShippingThreshold {
		shipping = 0
	}
	tax := subtotal * calc.TaxRate

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}, nil
}

// FreeShippingProgress reports how far a subtotal is towards free
// shipping as a percentage, capped at 100. Used by the cart page
// progress bar.
func (calc Calculator) FreeShippingProgress(subtotal float64) float64 {
	if calc.ShippingThreshold <= 0 {
		return 100
	}
	p := subtotal / calc.ShippingThreshold * 100
	if p > 100 {
		return 100
	}
	return p
}
