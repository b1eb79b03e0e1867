package http

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Debabrata909/modern-ecommerce/internal/cart"
	"github.com/Debabrata909/modern-ecommerce/internal/catalog"
	"github.com/Debabrata909/modern-ecommerce/internal/config"
	"github.com/Debabrata909/modern-ecommerce/internal/metrics"
	"github.com/Debabrata909/modern-ecommerce/internal/middleware"
	"github.com/Debabrata909/modern-ecommerce/internal/order"
	"github.com/Debabrata909/modern-ecommerce/internal/pricing"
	"github.com/Debabrata909/modern-ecommerce/internal/tracking"
)

type Deps struct {
	Logger *log.Logger
	Cfg    config.Config

	Catalog *catalog.Store
	Carts   *cart.Store
	Calc    pricing.Calculator
	Orders  *order.Service
	Tracker *tracking.Tracker
	Metrics *metrics.ServerMetrics // nil disables /metrics and counters
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	// Middlewares (outer -> inner)
	r.Use(middleware.CorrelationID)
	r.Use(middleware.Logging(d.Logger))
	r.Use(middleware.Observe(d.Metrics))
	r.Use(middleware.CORS(d.Cfg.CORSAllowOrigins))
	r.Use(middleware.Recover(d.Logger))
	r.Use(middleware.RequireUserIDForMeRoutes)

	r.Get("/health", healthHandler)
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler())
	}

	// Catalog
	cat := NewCatalogHandler(d.Catalog)
	r.Get("/api/products", cat.ListProducts)
	r.Get("/api/products/{id}", cat.GetProduct)
	r.Get("/api/categories", cat.ListCategories)

	// Cart (me)
	ch := NewCartHandler(d.Carts, d.Catalog, d.Calc, d.Metrics)
	r.Get("/me/cart", ch.GetCart)
	r.Get("/me/cart/totals", ch.GetTotals)
	r.Post("/me/cart/items", ch.AddItem)
	r.Post("/me/cart/items/{productId}/increase", ch.IncreaseItem)
	r.Post("/me/cart/items/{productId}/decrease", ch.DecreaseItem)
	r.Delete("/me/cart/items/{productId}", ch.RemoveItem)

	// Orders + tracking
	oh := NewOrderHandler(d.Orders, d.Tracker)
	r.Post("/me/cart/checkout", oh.Checkout)
	r.Get("/me/orders", oh.ListOrdersMe)
	r.Get("/orders/{orderId}", oh.GetOrder)
	r.Get("/orders/{orderId}/tracking", oh.GetTracking)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "storefront"})
}
