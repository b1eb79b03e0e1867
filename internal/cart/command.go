package cart

import (
	"errors"
	"time"

	"github.com/Debabrata909/modern-ecommerce/internal/catalog"
)

// ErrUnknownCommand is returned when Apply receives a command it does
// not handle. With the sealed Command interface this only happens on a
// nil command, but it is kept as an explicit failure so integration
// drift is caught instead of silently ignored.
var ErrUnknownCommand = errors.New("unknown cart command")

// Command is the closed set of cart mutations. The unexported marker
// method keeps the union sealed inside this package.
type Command interface {
	isCommand()
}

// Add puts one unit of a product into the cart, merging with an
// existing line for the same product id.
type Add struct {
	Product catalog.Product
}

// Increase bumps the quantity of an existing line by one.
type Increase struct {
	ProductID string
}

// Decrease lowers the quantity of an existing line by one, floored at
// one. It never removes the line.
type Decrease struct {
	ProductID string
}

// Remove deletes a line from the cart.
type Remove struct {
	ProductID string
}

func (Add) isCommand()      {}
func (Increase) isCommand() {}
func (Decrease) isCommand() {}
func (Remove) isCommand()   {}

// Apply runs one command against a cart snapshot and returns the next
// snapshot. The input cart is never mutated; callers holding the prior
// value keep a valid cart. Commands on absent product ids are defined
// no-ops, not errors.
func Apply(c Cart, cmd Command) (Cart, error) {
	next := c
	next.Items = make([]Item, len(c.Items))
	copy(next.Items, c.Items)

	switch cmd := cmd.(type) {
	case Add:
		if i := next.indexOf(cmd.Product.ID); i >= 0 {
			next.Items[i].Qty++
			break
		}
		next.Items = append(next.Items, Item{
			ProductID: cmd.Product.ID,
			Title:     cmd.Product.Title,
			Category:  cmd.Product.Category,
			Image:     cmd.Product.Image,
			Price:     cmd.Product.Price,
			Qty:       1,
		})
	case Increase:
		if i := next.indexOf(cmd.ProductID); i >= 0 {
			next.Items[i].Qty++
		}
	case Decrease:
		if i := next.indexOf(cmd.ProductID); i >= 0 && next.Items[i].Qty > 1 {
			next.Items[i].Qty--
		}
	case Remove:
		if i := next.indexOf(cmd.ProductID); i >= 0 {
			next.Items = append(next.Items[:i], next.Items[i+1:]...)
		}
	default:
		return c, ErrUnknownCommand
	}

	next.UpdatedAt = time.Now().UTC()
	return next, nil
}
