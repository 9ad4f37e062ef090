package distributor

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wichananm65/luxuria-backend/internal/store"
)

func apply(t *testing.T, s store.Store, body string) (int, map[string]any) {
	t.Helper()
	app := fiber.New()
	NewHandler(NewService(s)).RegisterPublicRoutes(app)

	req := httptest.NewRequest("POST", "/api/distributor/apply", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	return res.StatusCode, out
}

func TestApply_Stored(t *testing.T) {
	mem := store.NewMemoryStore()
	status, body := apply(t, mem, `{"name":"Grace","email":"grace@example.com","company":"Hopper Imports","website":"https://hopper.example.com"}`)

	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "received", body["status"])
	assert.NotEqual(t, DemoApplicationID, body["application_id"])

	docs, err := mem.Find(context.Background(), Collection, nil, 0)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Hopper Imports", docs[0]["company"])
	assert.Nil(t, docs[0]["location"])
}

func TestApply_StoreUnavailableDegrades(t *testing.T) {
	status, body := apply(t, &store.Unavailable{}, `{"name":"Grace","email":"grace@example.com"}`)

	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, map[string]any{"status": "received", "application_id": "demo-application-1234"}, body)
}

func TestApply_Validation(t *testing.T) {
	status, body := apply(t, store.NewMemoryStore(), `{"email":"nope","website":"hopper"}`)

	require.Equal(t, fiber.StatusUnprocessableEntity, status)
	errs := body["errors"].(map[string]any)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "website")
}
