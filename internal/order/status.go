package order

type Status string

const (
	StatusConfirmed      Status = "confirmed"
	StatusShipped        Status = "shipped"
	StatusOutForDelivery Status = "out_for_delivery"
	StatusDelivered      Status = "delivered"
	StatusCancelled      Status = "cancelled"
)

// StepIndex maps a status onto the fixed four-step delivery timeline.
// Cancelled orders have no position on the timeline and report ok=false.
func (s Status) StepIndex() (int, bool) {
	switch s {
	case StatusConfirmed:
		return 0, true
	case StatusShipped:
		return 1, true
	case StatusOutForDelivery:
		return 2, true
	case StatusDelivered:
		return 3, true
	default:
		return 0, false
	}
}
