package order

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wichananm65/luxuria-backend/internal/store"
)

const validCheckout = `{
	"items": [
		{"product_id": "demo-royal-chrono", "title": "Royal Chrono 42mm", "quantity": 2, "price": 18990, "image": "https://img.example.com/a.jpg"},
		{"product_id": "65f1c2a9e4b0a1b2c3d4e5f6", "title": "Stored", "quantity": 1, "price": 0}
	],
	"customer_name": "Ada Lovelace",
	"customer_email": "ada@example.com",
	"address": "1 Analytical Way",
	"city": "London",
	"country": "UK"
}`

func setupApp(s store.Store) *fiber.App {
	a := fiber.New()
	NewHandler(NewService(s)).RegisterPublicRoutes(a)
	return a
}

func postCheckout(t *testing.T, app *fiber.App, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	return res.StatusCode, out
}

func TestCheckout_Stored(t *testing.T) {
	mem := store.NewMemoryStore()
	status, body := postCheckout(t, setupApp(mem), validCheckout)

	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "success", body["status"])
	assert.NotEqual(t, DemoOrderID, body["order_id"])

	docs, err := mem.Find(context.Background(), Collection, nil, 0)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "ada@example.com", docs[0]["customer_email"])
	items := docs[0]["items"].([]any)
	require.Len(t, items, 2)
	assert.Equal(t, 18990.0, items[0].(map[string]any)["price"])
}

func TestCheckout_StoreUnavailableDegrades(t *testing.T) {
	status, body := postCheckout(t, setupApp(&store.Unavailable{Reason: errors.New("down")}), validCheckout)

	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, map[string]any{"status": "success", "order_id": "demo-order-1234"}, body)
}

func TestCheckout_Validation(t *testing.T) {
	status, body := postCheckout(t, setupApp(store.NewMemoryStore()), `{
		"items": [{"product_id": "x", "title": "x", "quantity": 0, "price": 1}],
		"customer_name": "Ada",
		"customer_email": "not-an-email",
		"address": "a", "city": "b"
	}`)

	require.Equal(t, fiber.StatusUnprocessableEntity, status)
	errs := body["errors"].(map[string]any)
	assert.Contains(t, errs, "items[0].quantity")
	assert.Contains(t, errs, "customer_email")
	assert.Contains(t, errs, "country")
}

func TestCheckout_EmptyItemsAccepted(t *testing.T) {
	status, body := postCheckout(t, setupApp(store.NewMemoryStore()), `{
		"items": [],
		"customer_name": "Ada", "customer_email": "ada@example.com",
		"address": "a", "city": "b", "country": "c"
	}`)

	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "success", body["status"])
}
