package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coffeeshop/internal/http/handlers"
)

func TestCartPageShowsLocationAndTotal(t *testing.T) {
	env := newTestEnv(t)

	code, body := env.do(t, http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(body), "Your cart is empty")
	assert.Contains(t, string(body), "Home")

	env.do(t, http.MethodPost, "/api/v1/cart/items", map[string]any{"productId": flatID, "size": "M", "quantity": 2})
	_, body = env.do(t, http.MethodGet, "/cart", nil)
	assert.Contains(t, string(body), "Flat White")
	assert.Contains(t, string(body), "$ 8.06")
}

func TestFavoritesPage(t *testing.T) {
	env := newTestEnv(t)
	_, body := env.do(t, http.MethodGet, "/favorites", nil)
	assert.Contains(t, string(body), "No favorites yet")
}

func TestUnknownRoutes(t *testing.T) {
	env := newTestEnv(t)

	code, body := env.do(t, http.MethodGet, "/api/v1/nope", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.JSONEq(t, `{"error":"Not Found"}`, string(body))

	code, body = env.do(t, http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Contains(t, string(body), "<p>Not Found</p>")

	code, _ = env.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestErrorHandlerHidesInternals(t *testing.T) {
	logs := captureLogs(t)
	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	app.Use(requestid.New())
	app.Get("/api/v1/boom", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusInternalServerError, "db timeout: secret trace")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	b, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(b), "Something went wrong")
	assert.False(t, strings.Contains(string(b), "secret"))

	entries := logs.FilterMessage("server.error").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "db timeout: secret trace", entries[0].ContextMap()["err"])
}
