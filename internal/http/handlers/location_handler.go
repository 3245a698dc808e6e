package handlers

import (
	"errors"
	"net/url"

	"coffeeshop/internal/domain"
	"coffeeshop/internal/log"
	"coffeeshop/internal/services"
	"coffeeshop/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type LocationHandler struct {
	Locations services.Locations
}

func (h *LocationHandler) List(c *fiber.Ctx) error { return c.JSON(h.Locations.State()) }

type locationReq struct {
	Name        string              `json:"name" form:"name"`
	Address     string              `json:"address" form:"address"`
	Coordinates *domain.Coordinates `json:"coordinates"`
}

// Add passes empty fields through to the store so the form error it records
// is the one the user sees.
func (h *LocationHandler) Add(c *fiber.Ctx) error {
	var req locationReq
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request")
	}
	name, nok := validate.Name(req.Name)
	addr, aok := validate.Address(req.Address)
	if (!nok && name != "") || (!aok && addr != "") {
		log.Security(c, "validation.fail", map[string]any{"field": "location"})
		return jsonError(c, fiber.StatusBadRequest, "name or address too long")
	}
	err := h.Locations.AddSavedLocation(c.UserContext(), domain.Location{Name: name, Address: addr, Coordinates: req.Coordinates})
	var fe *services.FormError
	if errors.As(err, &fe) {
		log.Info(c, "locations.add.rejected", map[string]any{"duplicate": errors.Is(err, services.ErrDuplicateName)})
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": fe.Message, "state": h.Locations.State()})
	}
	if err != nil {
		return err
	}
	log.Audit(c, "locations.add", map[string]any{"name": name})
	return c.Status(fiber.StatusCreated).JSON(h.Locations.State())
}

func (h *LocationHandler) Remove(c *fiber.Ctx) error {
	raw, err := url.PathUnescape(c.Params("name"))
	name, ok := validate.Name(raw)
	if err != nil || !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "name"})
		return jsonError(c, fiber.StatusBadRequest, "invalid name")
	}
	h.Locations.RemoveSavedLocation(c.UserContext(), name)
	log.Audit(c, "locations.remove", map[string]any{"name": name})
	return c.JSON(h.Locations.State())
}

// SetCurrent accepts any location; it does not have to be a saved one.
func (h *LocationHandler) SetCurrent(c *fiber.Ctx) error {
	var req locationReq
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request")
	}
	name, nok := validate.Name(req.Name)
	addr, aok := validate.Address(req.Address)
	if !nok || !aok {
		log.Security(c, "validation.fail", map[string]any{"field": "location"})
		return jsonError(c, fiber.StatusBadRequest, "name and address are required")
	}
	h.Locations.SetCurrentLocation(domain.Location{Name: name, Address: addr, Coordinates: req.Coordinates})
	return c.JSON(h.Locations.State())
}

func (h *LocationHandler) SetPicker(c *fiber.Ctx) error {
	var req struct {
		Open bool `json:"open"`
	}
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request")
	}
	h.Locations.SetPickerOpen(req.Open)
	return c.JSON(h.Locations.State())
}

// SetForm opens or closes the add-address form. A null error clears it.
func (h *LocationHandler) SetForm(c *fiber.Ctx) error {
	var req struct {
		Adding *bool   `json:"adding"`
		Error  *string `json:"error"`
	}
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request")
	}
	if req.Adding != nil {
		h.Locations.SetAddingAddress(*req.Adding)
	}
	h.Locations.SetFormError(req.Error)
	return c.JSON(h.Locations.State())
}
