package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Debabrata909/modern-ecommerce/internal/cart"
	"github.com/Debabrata909/modern-ecommerce/internal/catalog"
	"github.com/Debabrata909/modern-ecommerce/internal/metrics"
	"github.com/Debabrata909/modern-ecommerce/internal/middleware"
	"github.com/Debabrata909/modern-ecommerce/internal/pricing"
)

type CartHandler struct {
	carts   *cart.Store
	catalog *catalog.Store
	calc    pricing.Calculator
	metrics *metrics.ServerMetrics // nil disables command counters
}

func NewCartHandler(carts *cart.Store, cat *catalog.Store, calc pricing.Calculator, m *metrics.ServerMetrics) *CartHandler {
	return &CartHandler{carts: carts, catalog: cat, calc: calc, metrics: m}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	writeJSON(w, http.StatusOK, h.carts.Snapshot(userID))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var body struct {
		ProductID string `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	p, err := h.catalog.Get(body.ProductID)
	if err != nil {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}

	h.dispatch(w, userID, cart.Add{Product: p}, "add")
}

func (h *CartHandler) IncreaseItem(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	h.dispatch(w, userID, cart.Increase{ProductID: chi.URLParam(r, "productId")}, "increase")
}

func (h *CartHandler) DecreaseItem(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	h.dispatch(w, userID, cart.Decrease{ProductID: chi.URLParam(r, "productId")}, "decrease")
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	h.dispatch(w, userID, cart.Remove{ProductID: chi.URLParam(r, "productId")}, "remove")
}

// GetTotals prices the current snapshot on demand; nothing is cached
// between requests.
func (h *CartHandler) GetTotals(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	snapshot := h.carts.Snapshot(userID)
	totals, err := h.calc.ComputeTotals(snapshot)
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidItem) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to price cart")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"subtotal":             totals.Subtotal,
		"shipping":             totals.Shipping,
		"tax":                  totals.Tax,
		"total":                totals.Total,
		"freeShippingProgress": h.calc.FreeShippingProgress(totals.Subtotal),
	})
}

func (h *CartHandler) dispatch(w http.ResponseWriter, userID string, cmd cart.Command, label string) {
	c, err := h.carts.Dispatch(userID, cmd)
	if err != nil {
		if errors.Is(err, cart.ErrUnknownCommand) {
			writeError(w, http.StatusBadRequest, "unknown cart command")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update cart")
		return
	}

	if h.metrics != nil {
		h.metrics.CartCommands.WithLabelValues(label).Inc()
	}
	writeJSON(w, http.StatusOK, c)
}
