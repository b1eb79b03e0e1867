package events

import (
	"context"

	"github.com/Debabrata909/modern-ecommerce/internal/order"
)

// NopPublisher drops events. Used when no broker is configured and in
// tests; checkout still succeeds, consumers just get no notification.
type NopPublisher struct{}

func (NopPublisher) PublishOrderPlaced(context.Context, *order.Order) error { return nil }

func (NopPublisher) Close() error { return nil }
