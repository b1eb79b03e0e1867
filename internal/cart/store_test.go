package cart

import (
	"testing"
)

func TestStoreDispatchCreatesCartOnFirstCommand(t *testing.T) {
	s := NewStore()

	c, err := s.Dispatch("u1", Add{Product: product("p1", 100)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID == "" {
		t.Fatalf("expected generated cart id")
	}
	if c.UserID != "u1" {
		t.Fatalf("user id: got %s", c.UserID)
	}
	if c.Len() != 1 {
		t.Fatalf("expected 1 item, got %d", c.Len())
	}
}

func TestStoreSnapshotIsolation(t *testing.T) {
	s := NewStore()
	if _, err := s.Dispatch("u1", Add{Product: product("p1", 100)}); err != nil {
		t.Fatalf("dispatch: %v", err)
	}

	snap := s.Snapshot("u1")
	snap.Items[0].Qty = 99

	if got := s.Snapshot("u1").Items[0].Qty; got != 1 {
		t.Fatalf("store state leaked through snapshot: qty=%d", got)
	}
}

func TestStoreKeepsUsersSeparate(t *testing.T) {
	s := NewStore()
	if _, err := s.Dispatch("u1", Add{Product: product("p1", 100)}); err != nil {
		t.Fatalf("dispatch: %v", err)
	}

	if got := s.Snapshot("u2").Len(); got != 0 {
		t.Fatalf("fresh user should have empty cart, got %d items", got)
	}
}

func TestStoreObserverSeesEachDispatch(t *testing.T) {
	s := NewStore()

	var seen []int
	s.Subscribe(func(userID string, c Cart) {
		if userID != "u1" {
			t.Fatalf("observer got wrong user: %s", userID)
		}
		seen = append(seen, c.Len())
	})

	if _, err := s.Dispatch("u1", Add{Product: product("p1", 100)}); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if _, err := s.Dispatch("u1", Add{Product: product("p2", 200)}); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if _, err := s.Dispatch("u1", Remove{ProductID: "p1"}); err != nil {
		t.Fatalf("dispatch: %v", err)
	}

	want := []int{1, 2, 1}
	if len(seen) != len(want) {
		t.Fatalf("observer called %d times, want %d", len(seen), len(want))
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("notification %d: cart len %d, want %d", i, seen[i], want[i])
		}
	}
}

func TestStoreFailedDispatchDoesNotNotify(t *testing.T) {
	s := NewStore()

	calls := 0
	s.Subscribe(func(string, Cart) { calls++ })

	if _, err := s.Dispatch("u1", nil); err != ErrUnknownCommand {
		t.Fatalf("expected ErrUnknownCommand, got %v", err)
	}
	if calls != 0 {
		t.Fatalf("observer notified on failed dispatch")
	}
}

func TestStoreClear(t *testing.T) {
	s := NewStore()
	if _, err := s.Dispatch("u1", Add{Product: product("p1", 100)}); err != nil {
		t.Fatalf("dispatch: %v", err)
	}

	s.Clear("u1")

	if got := s.Snapshot("u1").Len(); got != 0 {
		t.Fatalf("expected empty cart after clear, got %d items", got)
	}
}
