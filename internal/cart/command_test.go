package cart

import (
	"testing"

	"github.com/Debabrata909/modern-ecommerce/internal/catalog"
)

func product(id string, price float64) catalog.Product {
	return catalog.Product{ID: id, Title: "Product " + id, Category: "Audio", Price: price}
}

func mustApply(t *testing.T, c Cart, cmd Command) Cart {
	t.Helper()
	next, err := Apply(c, cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return next
}

func TestAddMergesInsteadOfDuplicating(t *testing.T) {
	var c Cart
	p := product("p1", 500)

	for i := 0; i < 4; i++ {
		c = mustApply(t, c, Add{Product: p})
	}

	if len(c.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(c.Items))
	}
	if c.Items[0].Qty != 4 {
		t.Fatalf("expected qty 4, got %d", c.Items[0].Qty)
	}
	if c.Items[0].Price != 500 {
		t.Fatalf("expected snapshot price 500, got %v", c.Items[0].Price)
	}
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	var c Cart
	c = mustApply(t, c, Add{Product: product("p1", 100)})
	c = mustApply(t, c, Add{Product: product("p2", 200)})
	c = mustApply(t, c, Add{Product: product("p3", 300)})

	// bumping p1 must not reorder
	c = mustApply(t, c, Increase{ProductID: "p1"})

	want := []string{"p1", "p2", "p3"}
	for i, id := range want {
		if c.Items[i].ProductID != id {
			t.Fatalf("position %d: got %s, want %s", i, c.Items[i].ProductID, id)
		}
	}
}

func TestIncreaseDecrease(t *testing.T) {
	tests := map[string]struct {
		setup   []Command
		cmd     Command
		wantQty int
	}{
		"increase bumps qty": {
			setup:   []Command{Add{Product: product("p1", 100)}},
			cmd:     Increase{ProductID: "p1"},
			wantQty: 2,
		},
		"decrease returns to prior qty": {
			setup:   []Command{Add{Product: product("p1", 100)}, Increase{ProductID: "p1"}, Increase{ProductID: "p1"}},
			cmd:     Decrease{ProductID: "p1"},
			wantQty: 2,
		},
		"decrease floors at one": {
			setup:   []Command{Add{Product: product("p1", 100)}},
			cmd:     Decrease{ProductID: "p1"},
			wantQty: 1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var c Cart
			for _, cmd := range tt.setup {
				c = mustApply(t, c, cmd)
			}
			c = mustApply(t, c, tt.cmd)

			if len(c.Items) != 1 {
				t.Fatalf("expected 1 item, got %d", len(c.Items))
			}
			if c.Items[0].Qty != tt.wantQty {
				t.Fatalf("qty: got %d, want %d", c.Items[0].Qty, tt.wantQty)
			}
		})
	}
}

func TestCommandsOnAbsentIDAreNoOps(t *testing.T) {
	var c Cart
	c = mustApply(t, c, Add{Product: product("p1", 100)})

	for name, cmd := range map[string]Command{
		"increase": Increase{ProductID: "ghost"},
		"decrease": Decrease{ProductID: "ghost"},
		"remove":   Remove{ProductID: "ghost"},
	} {
		t.Run(name, func(t *testing.T) {
			next := mustApply(t, c, cmd)
			if len(next.Items) != 1 || next.Items[0].ProductID != "p1" || next.Items[0].Qty != 1 {
				t.Fatalf("cart changed by no-op command: %+v", next.Items)
			}
		})
	}
}

func TestRemoveDeletesOnlyTargetLine(t *testing.T) {
	var c Cart
	c = mustApply(t, c, Add{Product: product("p1", 100)})
	c = mustApply(t, c, Add{Product: product("p2", 200)})
	c = mustApply(t, c, Add{Product: product("p3", 300)})
	c = mustApply(t, c, Increase{ProductID: "p3"})

	c = mustApply(t, c, Remove{ProductID: "p2"})

	if len(c.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(c.Items))
	}
	if c.Items[0].ProductID != "p1" || c.Items[1].ProductID != "p3" {
		t.Fatalf("wrong items after remove: %+v", c.Items)
	}
	if c.Items[1].Qty != 2 {
		t.Fatalf("sibling qty affected by remove: got %d", c.Items[1].Qty)
	}
}

func TestApplyDoesNotMutatePriorSnapshot(t *testing.T) {
	var c Cart
	c = mustApply(t, c, Add{Product: product("p1", 100)})
	before := c

	_ = mustApply(t, c, Increase{ProductID: "p1"})
	_ = mustApply(t, c, Remove{ProductID: "p1"})

	if len(before.Items) != 1 || before.Items[0].Qty != 1 {
		t.Fatalf("prior snapshot mutated: %+v", before.Items)
	}
}

func TestNilCommandFails(t *testing.T) {
	var c Cart
	if _, err := Apply(c, nil); err != ErrUnknownCommand {
		t.Fatalf("expected ErrUnknownCommand, got %v", err)
	}
}
