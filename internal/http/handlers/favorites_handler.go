package handlers

import (
	"coffeeshop/internal/log"
	"coffeeshop/internal/services"
	"coffeeshop/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type FavoritesHandler struct {
	Favorites services.Favorites
	Catalog   services.Catalog
}

func (h *FavoritesHandler) favoritesJSON(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"favorites": h.Favorites.List(), "loading": h.Favorites.Loading()})
}

func (h *FavoritesHandler) List(c *fiber.Ctx) error { return h.favoritesJSON(c) }

func (h *FavoritesHandler) View(c *fiber.Ctx) error {
	return render(c, "favorites", fiber.Map{"Items": h.Favorites.List(), "Loading": h.Favorites.Loading()})
}

// Add resolves the product from the menu; favorites store a full copy.
func (h *FavoritesHandler) Add(c *fiber.Ctx) error {
	var req struct {
		ProductID string `json:"productId" form:"productId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request")
	}
	id, ok := validate.ID(req.ProductID)
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return jsonError(c, fiber.StatusBadRequest, "missing productId")
	}
	p, found := h.Catalog.Product(id)
	if !found {
		return jsonError(c, fiber.StatusNotFound, "This item is no longer available")
	}
	h.Favorites.Add(c.UserContext(), p)
	log.Audit(c, "favorites.add", map[string]any{"product_id": id})
	return h.favoritesJSON(c)
}

func (h *FavoritesHandler) Remove(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("productId"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return jsonError(c, fiber.StatusBadRequest, "invalid productId")
	}
	h.Favorites.Remove(c.UserContext(), id)
	log.Audit(c, "favorites.remove", map[string]any{"product_id": id})
	return h.favoritesJSON(c)
}

func (h *FavoritesHandler) Toggle(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("productId"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return jsonError(c, fiber.StatusBadRequest, "invalid productId")
	}
	fav := h.Favorites.Toggle(c.UserContext(), id)
	log.Audit(c, "favorites.toggle", map[string]any{"product_id": id, "favorite": fav})
	return c.JSON(fiber.Map{"productId": id, "favorite": fav, "favorites": h.Favorites.List()})
}
