package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Debabrata909/modern-ecommerce/internal/middleware"
	"github.com/Debabrata909/modern-ecommerce/internal/order"
	"github.com/Debabrata909/modern-ecommerce/internal/pricing"
	"github.com/Debabrata909/modern-ecommerce/internal/tracking"
)

type OrderHandler struct {
	svc     *order.Service
	tracker *tracking.Tracker
}

func NewOrderHandler(svc *order.Service, tracker *tracking.Tracker) *OrderHandler {
	return &OrderHandler{svc: svc, tracker: tracker}
}

func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	o, err := h.svc.PlaceOrder(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrEmptyCart):
			writeError(w, http.StatusConflict, "cart is empty")
		case errors.Is(err, pricing.ErrInvalidItem):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to place order")
		}
		return
	}

	writeJSON(w, http.StatusCreated, o)
}

func (h *OrderHandler) ListOrdersMe(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	orders, err := h.svc.ListByUser(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list orders")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	o, err := h.svc.Get(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			writeError(w, http.StatusNotFound, "order not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load order")
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *OrderHandler) GetTracking(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	steps, err := h.tracker.Track(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, tracking.ErrUnknownOrder) {
			writeError(w, http.StatusNotFound, "no tracking available for this order")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to project tracking")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"orderId": orderID,
		"steps":   steps,
	})
}
