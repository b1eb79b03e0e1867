// Package tracking projects an order's status onto the fixed delivery
// timeline shown by the order tracking page.
package tracking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Debabrata909/modern-ecommerce/internal/order"
)

// ErrUnknownOrder is returned when no trackable status can be resolved
// for an order id. Cancelled orders are not on the timeline and report
// the same error.
var ErrUnknownOrder = errors.New("unknown order")

type StepState string

const (
	StepCompleted StepState = "completed"
	StepCurrent   StepState = "current"
	StepUpcoming  StepState = "upcoming"
)

type StepView struct {
	Title string    `json:"title"`
	State StepState `json:"state"`
}

// stepTitles is the fixed timeline, in delivery order.
var stepTitles = [4]string{
	"Order Confirmed",
	"Shipped",
	"Out for Delivery",
	"Delivered",
}

// Project classifies each of the four steps against the current step
// index: steps before it are completed, the step itself is current,
// steps after it are upcoming.
func Project(currentStep int) ([]StepView, error) {
	if currentStep < 0 || currentStep >= len(stepTitles) {
		return nil, fmt.Errorf("step index %d out of range [0,%d]", currentStep, len(stepTitles)-1)
	}

	out := make([]StepView, len(stepTitles))
	for i, title := range stepTitles {
		state := StepUpcoming
		switch {
		case i < currentStep:
			state = StepCompleted
		case i == currentStep:
			state = StepCurrent
		}
		out[i] = StepView{Title: title, State: state}
	}
	return out, nil
}

// StatusResolver looks up the status for an order id. order.Repository
// satisfies it via ResolverFromRepository.
type StatusResolver interface {
	ResolveStatus(ctx context.Context, orderID string) (order.Status, error)
}

type repositoryResolver struct {
	repo order.Repository
}

func ResolverFromRepository(repo order.Repository) StatusResolver {
	return repositoryResolver{repo: repo}
}

func (r repositoryResolver) ResolveStatus(ctx context.Context, orderID string) (order.Status, error) {
	o, err := r.repo.GetByID(ctx, orderID)
	if err != nil {
		return "", err
	}
	return o.Status, nil
}

// Tracker resolves an order id to its step timeline. It holds no
// mutable state; every call re-projects from the resolved status.
type Tracker struct {
	resolver StatusResolver
}

func NewTracker(resolver StatusResolver) *Tracker {
	return &Tracker{resolver: resolver}
}

func (t *Tracker) Track(ctx context.Context, orderID string) ([]StepView, error) {
	status, err := t.resolver.ResolveStatus(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOrder, orderID)
	}

	idx, ok := status.StepIndex()
	if !ok {
		return nil, fmt.Errorf("%w: %s is %s", ErrUnknownOrder, orderID, status)
	}
	return Project(idx)
}
