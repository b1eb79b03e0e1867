package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/Debabrata909/modern-ecommerce/internal/order"
)

const (
	orderPlacedEventName    = "OrderPlaced"
	orderPlacedEventVersion = 1

	producerName = "storefront"
)

type OrderLine struct {
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	Qty       int     `json:"qty"`
	Price     float64 `json:"price"`
}

// OrderPlacedPayload is the v1 payload schema.
type OrderPlacedPayload struct {
	OrderID     string      `json:"orderId"`
	UserID      string      `json:"userId"`
	Items       []OrderLine `json:"items"`
	Subtotal    float64     `json:"subtotal"`
	Shipping    float64     `json:"shipping"`
	Tax         float64     `json:"tax"`
	TotalAmount float64     `json:"totalAmount"`
	Timestamp   time.Time   `json:"timestamp"`
}

type OrderPlacedEnvelope = Envelope[OrderPlacedPayload]

// BuildOrderPlacedEnvelope wraps an order into the enveloped event
// published at checkout.
func BuildOrderPlacedEnvelope(o *order.Order, seq int64, correlationID string) OrderPlacedEnvelope {
	if correlationID == "" {
		correlationID = uuid.NewString()
	}

	items := make([]OrderLine, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderLine{
			ProductID: it.ProductID,
			Title:     it.Title,
			Qty:       it.Qty,
			Price:     it.Price,
		})
	}

	return OrderPlacedEnvelope{
		EventName:     orderPlacedEventName,
		EventVersion:  orderPlacedEventVersion,
		EventID:       uuid.NewString(),
		CorrelationID: correlationID,
		Producer:      producerName,
		PartitionKey:  o.ID,
		Sequence:      seq,
		OccurredAt:    time.Now().UTC(),
		Payload: OrderPlacedPayload{
			OrderID:     o.ID,
			UserID:      o.UserID,
			Items:       items,
			Subtotal:    o.Totals.Subtotal,
			Shipping:    o.Totals.Shipping,
			Tax:         o.Totals.Tax,
			TotalAmount: o.Totals.Total,
			Timestamp:   o.PlacedAt,
		},
	}
}
