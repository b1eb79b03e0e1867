package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Debabrata909/modern-ecommerce/internal/cart"
	"github.com/Debabrata909/modern-ecommerce/internal/pricing"
)

// ErrEmptyCart is returned when checkout is attempted on a cart with no
// items.
var ErrEmptyCart = errors.New("cart is empty")

// EventPublisher is the notification hook fired after an order is
// placed. The RabbitMQ implementation lives in internal/events; tests
// and broker-less deployments use a no-op.
type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, o *Order) error
}

// Service turns a cart snapshot into a placed order.
type Service struct {
	carts     *cart.Store
	calc      pricing.Calculator
	repo      Repository
	publisher EventPublisher
}

func NewService(carts *cart.Store, calc pricing.Calculator, repo Repository, publisher EventPublisher) *Service {
	return &Service{carts: carts, calc: calc, repo: repo, publisher: publisher}
}

// PlaceOrder prices the user's current cart, records a confirmed order
// and clears the cart. The event is published before the cart is
// cleared: if notification fails the checkout fails and the cart is
// left untouched.
func (s *Service) PlaceOrder(ctx context.Context, userID string) (*Order, error) {
	snapshot := s.carts.Snapshot(userID)
	if snapshot.Len() == 0 {
		return nil, ErrEmptyCart
	}

	totals, err := s.calc.ComputeTotals(snapshot)
	if err != nil {
		return nil, fmt.Errorf("price cart: %w", err)
	}

	items := make([]Item, 0, len(snapshot.Items))
	for _, it := range snapshot.Items {
		items = append(items, Item{
			ProductID: it.ProductID,
			Title:     it.Title,
			Qty:       it.Qty,
			Price:     it.Price,
		})
	}

	o := &Order{
		ID:       newID(),
		UserID:   userID,
		Items:    items,
		Totals:   totals,
		Status:   StatusConfirmed,
		PlacedAt: time.Now().UTC(),
	}

	if err := s.publisher.PublishOrderPlaced(ctx, o); err != nil {
		return nil, fmt.Errorf("publish order placed: %w", err)
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("store order: %w", err)
	}

	s.carts.Clear(userID)
	return o, nil
}

func (s *Service) Get(ctx context.Context, orderID string) (*Order, error) {
	return s.repo.GetByID(ctx, orderID)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	return s.repo.ListByUser(ctx, userID)
}
