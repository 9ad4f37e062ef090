package category

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCategories(t *testing.T) {
	app := fiber.New()
	NewHandler().RegisterPublicRoutes(app)

	res, err := app.Test(httptest.NewRequest("GET", "/api/categories", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	var got []Category
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	require.Len(t, got, 5)
	assert.Equal(t, Category{ID: "holidays", Name: "Holiday Destinations"}, got[2])
}

func TestKnown(t *testing.T) {
	assert.True(t, Known("watches"))
	assert.False(t, Known("Watches"))
	assert.False(t, Known(""))
}
