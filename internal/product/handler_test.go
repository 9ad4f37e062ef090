package product

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wichananm65/luxuria-backend/internal/store"
)

func makeApp(s store.Store) *fiber.App {
	app := fiber.New()
	NewHandler(NewService(s)).RegisterPublicRoutes(app)
	return app
}

func decode[T any](t *testing.T, body io.Reader) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(body).Decode(&v))
	return v
}

func TestProductRoutes_Registered(t *testing.T) {
	app := makeApp(store.NewMemoryStore())

	routes := map[string]bool{}
	for _, grp := range app.Stack() {
		for _, r := range grp {
			routes[r.Method+" "+r.Path] = true
		}
	}
	for _, want := range []string{"GET /api/products", "GET /api/products/:id", "POST /api/products"} {
		assert.True(t, routes[want], "expected route %s", want)
	}
}

func TestGetProducts_FeaturedFalse(t *testing.T) {
	app := makeApp(&store.Unavailable{})

	res, err := app.Test(httptest.NewRequest("GET", "/api/products?featured=false", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	items := decode[[]map[string]any](t, res.Body)
	require.Len(t, items, 2)
	for _, it := range items {
		assert.Equal(t, false, it["featured"])
		assert.Contains(t, it, "_id")
		assert.Contains(t, it, "in_stock")
	}
}

func TestGetProducts_CategoryAndFeatured(t *testing.T) {
	app := makeApp(&store.Unavailable{})

	res, err := app.Test(httptest.NewRequest("GET", "/api/products?category=watches&featured=true", nil))
	require.NoError(t, err)
	items := decode[[]map[string]any](t, res.Body)
	require.Len(t, items, 1)
	assert.Equal(t, "demo-royal-chrono", items[0]["_id"])
}

func TestGetProducts_InvalidFeatured(t *testing.T) {
	app := makeApp(&store.Unavailable{})

	res, err := app.Test(httptest.NewRequest("GET", "/api/products?featured=maybe", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, res.StatusCode)
}

func TestGetProduct(t *testing.T) {
	app := makeApp(&store.Unavailable{})

	res, err := app.Test(httptest.NewRequest("GET", "/api/products/demo-royal-chrono", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)
	got := decode[Response](t, res.Body)
	assert.Equal(t, "Royal Chrono 42mm", got.Title)
	assert.Len(t, got.Images, 2)

	res2, err := app.Test(httptest.NewRequest("GET", "/api/products/65f1c2a9e4b0a1b2c3d4e5f6", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, res2.StatusCode)
	body := decode[map[string]string](t, res2.Body)
	assert.Equal(t, "Product not found", body["detail"])
}

func TestCreateProduct(t *testing.T) {
	mem := store.NewMemoryStore()
	app := makeApp(mem)

	req := httptest.NewRequest("POST", "/api/products", strings.NewReader(
		`{"title":"Emerald Ring","price":0,"category":"jewelry","images":["https://img.example.com/r.jpg"]}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)
	created := decode[map[string]string](t, res.Body)
	require.NotEmpty(t, created["id"])

	// the stored product is now served instead of the sample catalog
	res2, err := app.Test(httptest.NewRequest("GET", "/api/products/"+created["id"], nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res2.StatusCode)
	got := decode[Response](t, res2.Body)
	assert.Equal(t, "Emerald Ring", got.Title)
	assert.True(t, got.InStock)
	assert.False(t, got.Featured)

	res3, err := app.Test(httptest.NewRequest("GET", "/api/products", nil))
	require.NoError(t, err)
	list := decode[[]Response](t, res3.Body)
	require.Len(t, list, 1)
	assert.Equal(t, created["id"], list[0].ID)
}

func TestCreateProduct_Validation(t *testing.T) {
	app := makeApp(store.NewMemoryStore())

	req := httptest.NewRequest("POST", "/api/products", strings.NewReader(
		`{"price":-5,"category":"jewelry","images":["not a url"]}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnprocessableEntity, res.StatusCode)

	body := decode[map[string]map[string]string](t, res.Body)
	assert.Contains(t, body["errors"], "title")
	assert.Contains(t, body["errors"], "price")
	assert.Contains(t, body["errors"], "images[0]")
}

func TestCreateProduct_BadJSON(t *testing.T) {
	app := makeApp(store.NewMemoryStore())

	req := httptest.NewRequest("POST", "/api/products", strings.NewReader(`{"title":`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
}

func TestCreateProduct_StoreUnavailableIsServerError(t *testing.T) {
	app := makeApp(&store.Unavailable{Reason: errors.New("no database configured")})

	req := httptest.NewRequest("POST", "/api/products", strings.NewReader(`{"title":"x","price":1,"category":"home"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusInternalServerError, res.StatusCode)

	body := decode[map[string]string](t, res.Body)
	assert.Contains(t, body["detail"], "document store unavailable")
}
