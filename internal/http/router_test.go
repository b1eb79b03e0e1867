package http

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Debabrata909/modern-ecommerce/internal/cart"
	"github.com/Debabrata909/modern-ecommerce/internal/catalog"
	"github.com/Debabrata909/modern-ecommerce/internal/config"
	"github.com/Debabrata909/modern-ecommerce/internal/events"
	"github.com/Debabrata909/modern-ecommerce/internal/order"
	"github.com/Debabrata909/modern-ecommerce/internal/pricing"
	"github.com/Debabrata909/modern-ecommerce/internal/tracking"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	catalogStore := catalog.NewSeededStore()
	cartStore := cart.NewStore()
	calc := pricing.DefaultCalculator()
	repo := order.NewSeededRepository()
	svc := order.NewService(cartStore, calc, repo, events.NopPublisher{})
	tracker := tracking.NewTracker(tracking.ResolverFromRepository(repo))

	h := NewRouter(Deps{
		Logger:  log.New(io.Discard, "", 0),
		Cfg:     config.Config{CORSAllowOrigins: []string{"*"}},
		Catalog: catalogStore,
		Carts:   cartStore,
		Calc:    calc,
		Orders:  svc,
		Tracker: tracker,
	})

	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, method, url, userID, body string) (*http.Response, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	if userID != "" {
		req.Header.Set("X-User-Id", userID)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, ts.URL+"/health", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestListProductsWithFilters(t *testing.T) {
	ts := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, ts.URL+"/api/products?category=Audio&maxPrice=3000&sort=priceLow", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	products := body["products"].([]any)
	require.NotEmpty(t, products)

	prev := -1.0
	for _, raw := range products {
		p := raw.(map[string]any)
		assert.Equal(t, "Audio", p["category"])
		price := p["price"].(float64)
		assert.LessOrEqual(t, price, 3000.0)
		assert.GreaterOrEqual(t, price, prev)
		prev = price
	}
}

func TestListProductsRejectsBadMaxPrice(t *testing.T) {
	ts := newTestServer(t)

	resp, _ := doJSON(t, http.MethodGet, ts.URL+"/api/products?maxPrice=abc", "", "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetProduct(t *testing.T) {
	ts := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, ts.URL+"/api/products/p-1001", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Aurora Wireless Headphones", body["title"])

	resp, _ = doJSON(t, http.MethodGet, ts.URL+"/api/products/nope", "", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCategoriesStartWithAll(t *testing.T) {
	ts := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, ts.URL+"/api/categories", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cats := body["categories"].([]any)
	require.NotEmpty(t, cats)
	assert.Equal(t, "All", cats[0])
}

func TestMeRoutesRequireUserID(t *testing.T) {
	ts := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, ts.URL+"/me/cart", "", "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["error"], "X-User-Id")
}

func TestCartFlow(t *testing.T) {
	ts := newTestServer(t)

	// empty cart for a fresh session
	resp, body := doJSON(t, http.MethodGet, ts.URL+"/me/cart", "u1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body["items"])

	// add the same product twice: one line, qty 2
	for i := 0; i < 2; i++ {
		resp, body = doJSON(t, http.MethodPost, ts.URL+"/me/cart/items", "u1", `{"productId":"p-1001"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}
	items := body["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, 2.0, items[0].(map[string]any)["qty"])

	// decrease, then remove
	resp, body = doJSON(t, http.MethodPost, ts.URL+"/me/cart/items/p-1001/decrease", "u1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	items = body["items"].([]any)
	assert.Equal(t, 1.0, items[0].(map[string]any)["qty"])

	resp, body = doJSON(t, http.MethodDelete, ts.URL+"/me/cart/items/p-1001", "u1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body["items"])
}

func TestAddUnknownProduct(t *testing.T) {
	ts := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/me/cart/items", "u1", `{"productId":"ghost"}`)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCartTotals(t *testing.T) {
	ts := newTestServer(t)

	// p-1012 costs 1499
	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/me/cart/items", "u1", `{"productId":"p-1012"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := doJSON(t, http.MethodGet, ts.URL+"/me/cart/totals", "u1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.InDelta(t, 1499.0, body["subtotal"], 1e-6)
	assert.InDelta(t, 99.0, body["shipping"], 1e-6)
	assert.InDelta(t, 1499*0.18, body["tax"], 1e-6)
	assert.InDelta(t, 1499*1.18+99, body["total"], 1e-6)
	assert.InDelta(t, 1499.0/5000*100, body["freeShippingProgress"], 1e-6)
}

func TestCheckoutFlow(t *testing.T) {
	ts := newTestServer(t)

	// checkout on empty cart is rejected
	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/me/cart/checkout", "u1", "")
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPost, ts.URL+"/me/cart/items", "u1", `{"productId":"p-1002"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := doJSON(t, http.MethodPost, ts.URL+"/me/cart/checkout", "u1", "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	orderID := body["orderId"].(string)
	assert.Equal(t, "confirmed", body["status"])

	// cart emptied
	resp, cartBody := doJSON(t, http.MethodGet, ts.URL+"/me/cart", "u1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, cartBody["items"])

	// order visible and trackable at the first step
	resp, _ = doJSON(t, http.MethodGet, ts.URL+"/orders/"+orderID, "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, trackBody := doJSON(t, http.MethodGet, ts.URL+"/orders/"+orderID+"/tracking", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	steps := trackBody["steps"].([]any)
	require.Len(t, steps, 4)
	assert.Equal(t, "current", steps[0].(map[string]any)["state"])
	assert.Equal(t, "upcoming", steps[1].(map[string]any)["state"])
}

func TestTrackingForSeededOrders(t *testing.T) {
	ts := newTestServer(t)

	// out for delivery: completed, completed, current, upcoming
	resp, body := doJSON(t, http.MethodGet, ts.URL+"/orders/ORD-8859-X2/tracking", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	steps := body["steps"].([]any)
	require.Len(t, steps, 4)
	want := []string{"completed", "completed", "current", "upcoming"}
	for i, raw := range steps {
		assert.Equal(t, want[i], raw.(map[string]any)["state"], "step %d", i)
	}

	// cancelled order has no timeline
	resp, _ = doJSON(t, http.MethodGet, ts.URL+"/orders/ORD-5501-B1/tracking", "", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	// unknown order id
	resp, _ = doJSON(t, http.MethodGet, ts.URL+"/orders/ORD-0000-Z9/tracking", "", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListOrdersMe(t *testing.T) {
	ts := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, ts.URL+"/me/orders", "demo-user", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	orders := body["orders"].([]any)
	assert.Len(t, orders, 4)
}
