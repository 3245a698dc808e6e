package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	applog "coffeeshop/internal/log"
)

func Register(app *fiber.App, d *Deps) {
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })

	app.Get("/cart", d.CartHandler.View)
	app.Get("/favorites", d.FavoritesHandler.View)

	api := app.Group("/api/v1")

	api.Get("/products", d.ProductHandler.List)
	refreshLimiter := limiter.New(limiter.Config{
		Max:        10,
		Expiration: 30 * time.Second,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "|refresh"
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.refresh.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	})
	api.Post("/products/refresh", refreshLimiter, d.ProductHandler.Refresh)
	api.Put("/products/category", d.ProductHandler.Select)
	api.Get("/products/:id", d.ProductHandler.Detail)

	api.Get("/cart", d.CartHandler.Get)
	api.Post("/cart/items", d.CartHandler.Add)
	api.Delete("/cart/items/:productId/:size", d.CartHandler.Remove)
	api.Patch("/cart/items/:productId/quantity", d.CartHandler.UpdateQuantity)
	api.Patch("/cart/items/:productId/size", d.CartHandler.UpdateSize)
	api.Put("/cart/delivery", d.CartHandler.SetDelivery)
	api.Put("/cart/discount", d.CartHandler.SetDiscount)
	api.Put("/cart/payment", d.CartHandler.SetPayment)
	api.Delete("/cart", d.CartHandler.Clear)

	api.Get("/favorites", d.FavoritesHandler.List)
	api.Post("/favorites", d.FavoritesHandler.Add)
	api.Delete("/favorites/:productId", d.FavoritesHandler.Remove)
	api.Post("/favorites/:productId/toggle", d.FavoritesHandler.Toggle)

	api.Get("/locations", d.LocationHandler.List)
	api.Post("/locations", d.LocationHandler.Add)
	api.Put("/locations/current", d.LocationHandler.SetCurrent)
	api.Put("/locations/picker", d.LocationHandler.SetPicker)
	api.Put("/locations/form", d.LocationHandler.SetForm)
	api.Delete("/locations/:name", d.LocationHandler.Remove)

	app.Use(func(c *fiber.Ctx) error { return fiber.ErrNotFound })
}
