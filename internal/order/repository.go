package order

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Debabrata909/modern-ecommerce/internal/pricing"
)

var ErrNotFound = errors.New("order not found")

type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, orderID string) (*Order, error)
	ListByUser(ctx context.Context, userID string) ([]Order, error)
}

// memoryRepository keeps orders in process memory; the storefront has
// no database. Orders survive for the lifetime of the server only.
type memoryRepository struct {
	mu     sync.RWMutex
	byID   map[string]Order
	byUser map[string][]string // insertion order per user
}

func NewMemoryRepository() Repository {
	return &memoryRepository{
		byID:   make(map[string]Order),
		byUser: make(map[string][]string),
	}
}

// NewSeededRepository returns an in-memory repository preloaded with
// the demo orders the storefront's account and tracking pages show.
func NewSeededRepository() Repository {
	repo := &memoryRepository{
		byID:   make(map[string]Order),
		byUser: make(map[string][]string),
	}
	for i := range seedOrders {
		o := seedOrders[i]
		repo.byID[o.ID] = o
		repo.byUser[o.UserID] = append(repo.byUser[o.UserID], o.ID)
	}
	return repo
}

func (r *memoryRepository) Create(_ context.Context, o *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[o.ID] = *o
	r.byUser[o.UserID] = append(r.byUser[o.UserID], o.ID)
	return nil
}

func (r *memoryRepository) GetByID(_ context.Context, orderID string) (*Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.byID[orderID]
	if !ok {
		return nil, ErrNotFound
	}
	return &o, nil
}

func (r *memoryRepository) ListByUser(_ context.Context, userID string) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := r.byUser[userID]
	out := make([]Order, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.byID[id])
	}
	return out, nil
}

// seedOrders mirrors the mock order history from the storefront UI.
var seedOrders = []Order{
	{
		ID:     "ORD-8859-X2",
		UserID: "demo-user",
		Items: []Item{
			{ProductID: "p-1002", Title: "Pulse Smartwatch Series 5", Qty: 1, Price: 8499},
		},
		Totals:   pricing.Totals{Subtotal: 8499, Shipping: 0, Tax: 1529.82, Total: 10028.82},
		Status:   StatusOutForDelivery,
		PlacedAt: time.Date(2025, time.December, 30, 10, 23, 0, 0, time.UTC),
	},
	{
		ID:     "ORD-7721-A9",
		UserID: "demo-user",
		Items: []Item{
			{ProductID: "p-1001", Title: "Aurora Wireless Headphones", Qty: 1, Price: 2999},
			{ProductID: "p-1012", Title: "Halo Earbuds Lite", Qty: 1, Price: 1499},
		},
		Totals:   pricing.Totals{Subtotal: 4498, Shipping: 99, Tax: 809.64, Total: 5406.64},
		Status:   StatusDelivered,
		PlacedAt: time.Date(2025, time.November, 18, 15, 2, 0, 0, time.UTC),
	},
	{
		ID:     "ORD-6610-C4",
		UserID: "demo-user",
		Items: []Item{
			{ProductID: "p-1006", Title: "Echo Street Sneakers", Qty: 2, Price: 3499},
		},
		Totals:   pricing.Totals{Subtotal: 6998, Shipping: 0, Tax: 1259.64, Total: 8257.64},
		Status:   StatusDelivered,
		PlacedAt: time.Date(2025, time.October, 2, 9, 40, 0, 0, time.UTC),
	},
	{
		ID:     "ORD-5501-B1",
		UserID: "demo-user",
		Items: []Item{
			{ProductID: "p-1004", Title: "Vertex Gaming Mouse", Qty: 1, Price: 1899},
		},
		Totals:   pricing.Totals{Subtotal: 1899, Shipping: 99, Tax: 341.82, Total: 2339.82},
		Status:   StatusCancelled,
		PlacedAt: time.Date(2025, time.September, 11, 19, 12, 0, 0, time.UTC),
	},
}
