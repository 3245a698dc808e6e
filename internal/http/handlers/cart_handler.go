package handlers

import (
	"encoding/json"

	"coffeeshop/internal/domain"
	"coffeeshop/internal/log"
	"coffeeshop/internal/services"
	"coffeeshop/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type CartHandler struct {
	Cart      services.Cart
	Catalog   services.Catalog
	Locations services.Locations
}

func (h *CartHandler) cartJSON(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"cart": h.Cart.Snapshot(), "summary": h.Cart.Summary()})
}

func (h *CartHandler) Get(c *fiber.Ctx) error { return h.cartJSON(c) }

// View renders the checkout page.
func (h *CartHandler) View(c *fiber.Ctx) error {
	return render(c, "cart", fiber.Map{
		"Cart":     h.Cart.Snapshot(),
		"Summary":  h.Cart.Summary(),
		"Location": h.Locations.State().CurrentLocation,
	})
}

type addItemReq struct {
	ProductID string      `json:"productId" form:"productId"`
	Size      string      `json:"size" form:"size"`
	Quantity  json.Number `json:"quantity" form:"quantity"`
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	var req addItemReq
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request")
	}
	id, ok := validate.ID(req.ProductID)
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return jsonError(c, fiber.StatusBadRequest, "missing productId")
	}
	size, ok := validate.Size(req.Size)
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "size"})
		return jsonError(c, fiber.StatusBadRequest, "size must be S, M or L")
	}
	p, found := h.Catalog.Product(id)
	if !found {
		return jsonError(c, fiber.StatusNotFound, "This item is no longer available")
	}
	// missing or unparsable quantities count as one
	qty := validate.Qty(req.Quantity.String())
	h.Cart.AddItem(domain.CartItem{Product: p, Quantity: qty, Size: size})
	log.Audit(c, "cart.add", map[string]any{"product_id": p.ID, "size": size, "qty": qty})
	return h.cartJSON(c)
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("productId"))
	size, sok := validate.Size(c.Params("size"))
	if !ok || !sok {
		log.Security(c, "validation.fail", map[string]any{"field": "item"})
		return jsonError(c, fiber.StatusBadRequest, "invalid item")
	}
	h.Cart.RemoveItem(id, size)
	log.Audit(c, "cart.remove", map[string]any{"product_id": id, "size": size})
	return h.cartJSON(c)
}

// UpdateQuantity sets the quantity of every line of the product. Zero or less
// removes them; large values are capped.
func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("productId"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return jsonError(c, fiber.StatusBadRequest, "invalid productId")
	}
	var req struct {
		Quantity int `json:"quantity" form:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request")
	}
	qty := req.Quantity
	if qty > 0 {
		qty = validate.ClampQty(qty)
	}
	h.Cart.UpdateQuantity(id, qty)
	log.Audit(c, "cart.quantity", map[string]any{"product_id": id, "qty": qty})
	return h.cartJSON(c)
}

func (h *CartHandler) UpdateSize(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("productId"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return jsonError(c, fiber.StatusBadRequest, "invalid productId")
	}
	var req struct {
		Size string `json:"size" form:"size"`
	}
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request")
	}
	size, ok := validate.Size(req.Size)
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "size"})
		return jsonError(c, fiber.StatusBadRequest, "size must be S, M or L")
	}
	h.Cart.UpdateSize(id, size)
	return h.cartJSON(c)
}

func (h *CartHandler) SetDelivery(c *fiber.Ctx) error {
	var req struct {
		Type string `json:"type" form:"type"`
	}
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request")
	}
	t, ok := validate.DeliveryType(req.Type)
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "deliveryType"})
		return jsonError(c, fiber.StatusBadRequest, "invalid delivery type")
	}
	h.Cart.SetDeliveryType(t)
	return h.cartJSON(c)
}

func (h *CartHandler) SetDiscount(c *fiber.Ctx) error {
	var req struct {
		Applied bool        `json:"applied"`
		Amount  json.Number `json:"amount"`
	}
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request")
	}
	amount := decimal.Zero
	if req.Amount != "" {
		var ok bool
		if amount, ok = validate.Money(req.Amount.String()); !ok {
			log.Security(c, "validation.fail", map[string]any{"field": "discount"})
			return jsonError(c, fiber.StatusBadRequest, "invalid discount amount")
		}
	}
	h.Cart.SetDiscount(domain.Discount{Applied: req.Applied, Amount: amount})
	log.Audit(c, "cart.discount", map[string]any{"applied": req.Applied, "amount": amount.StringFixed(2)})
	return h.cartJSON(c)
}

func (h *CartHandler) SetPayment(c *fiber.Ctx) error {
	var req struct {
		Type     string `json:"type"`
		Selected *bool  `json:"selected"`
	}
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request")
	}
	t, ok := validate.PaymentType(req.Type)
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "paymentType"})
		return jsonError(c, fiber.StatusBadRequest, "invalid payment type")
	}
	selected := true
	if req.Selected != nil {
		selected = *req.Selected
	}
	h.Cart.SetPaymentMethod(domain.PaymentMethod{Type: t, Selected: selected})
	return h.cartJSON(c)
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	h.Cart.ClearCart()
	log.Audit(c, "cart.clear", nil)
	return h.cartJSON(c)
}
