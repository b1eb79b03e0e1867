package cart

import (
	"sync"

	"github.com/google/uuid"
)

// Observer is notified after every successful dispatch with the new
// cart snapshot. Notification is synchronous and in dispatch order.
type Observer func(userID string, c Cart)

// Store owns the live carts, keyed by user id. Dispatch is serialized
// with a mutex: command application is not commutative, so concurrent
// callers must be processed one at a time, in arrival order. Every
// returned Cart is a snapshot; the store never hands out its internal
// value by reference.
type Store struct {
	mu        sync.Mutex
	carts     map[string]Cart
	observers []Observer
}

func NewStore() *Store {
	return &Store{carts: make(map[string]Cart)}
}

// Subscribe registers an observer for cart changes. It is not safe to
// call concurrently with Dispatch; register observers during wiring.
func (s *Store) Subscribe(fn Observer) {
	s.observers = append(s.observers, fn)
}

// Snapshot returns the current cart for a user. An unknown user gets
// an empty cart, matching a fresh session.
func (s *Store) Snapshot(userID string) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.carts[userID])
}

func clone(c Cart) Cart {
	cp := c
	cp.Items = make([]Item, len(c.Items))
	copy(cp.Items, c.Items)
	return cp
}

// Dispatch applies one command to the user's cart and stores the new
// snapshot. The first dispatch for a user creates the cart.
func (s *Store) Dispatch(userID string, cmd Command) (Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.carts[userID]
	if !ok {
		cur = Cart{ID: uuid.NewString(), UserID: userID}
	}

	next, err := Apply(cur, cmd)
	if err != nil {
		return clone(cur), err
	}
	s.carts[userID] = next

	for _, fn := range s.observers {
		fn(userID, clone(next))
	}
	return clone(next), nil
}

// Clear drops the user's cart, as after a successful checkout.
func (s *Store) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}
