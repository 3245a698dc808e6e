package handlers

import (
	"coffeeshop/internal/log"
	"coffeeshop/internal/services"
	"coffeeshop/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Catalog services.Catalog
}

// List answers GET /api/v1/products?category=. The query filters this
// response only; the selected category changes through Select.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products := h.Catalog.Filtered()
	if raw := c.Query("category"); raw != "" {
		cat, ok := validate.Category(raw)
		if !ok {
			log.Security(c, "validation.fail", map[string]any{"field": "category"})
			return jsonError(c, fiber.StatusBadRequest, "invalid category")
		}
		products = h.Catalog.ByCategory(cat)
	}
	return c.JSON(fiber.Map{"products": products, "state": h.Catalog.State()})
}

func (h *ProductHandler) Select(c *fiber.Ctx) error {
	var req struct {
		Category string `json:"category" form:"category"`
	}
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request")
	}
	cat, ok := validate.Category(req.Category)
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "category"})
		return jsonError(c, fiber.StatusBadRequest, "invalid category")
	}
	h.Catalog.SelectCategory(cat)
	return c.JSON(fiber.Map{"products": h.Catalog.Filtered(), "state": h.Catalog.State()})
}

// Refresh re-fetches the menu. A failure is reported as retryable; the
// client decides when to retry.
func (h *ProductHandler) Refresh(c *fiber.Ctx) error {
	if err := h.Catalog.Refresh(c.UserContext()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": services.MsgFetchProducts, "retryable": true, "state": h.Catalog.State(),
		})
	}
	return c.JSON(fiber.Map{"products": h.Catalog.Filtered(), "state": h.Catalog.State()})
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "product"})
		return jsonError(c, fiber.StatusNotFound, "This item is no longer available")
	}
	p, found := h.Catalog.Product(id)
	if !found {
		return jsonError(c, fiber.StatusNotFound, "This item is no longer available")
	}
	return c.JSON(p)
}
