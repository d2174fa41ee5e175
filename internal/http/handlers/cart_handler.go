package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "github.com/touchandglow905/touchandglow/internal/log"
	"github.com/touchandglow905/touchandglow/internal/services"
	"github.com/touchandglow905/touchandglow/internal/validate"
)

type CartHandler struct {
	Cart *services.CartService
}

// Toggle adds the service to the selection or removes it when already
// selected. Redirects back to the booking page preserving the filters the
// customer was on.
func (h *CartHandler) Toggle(c *fiber.Ctx) error {
	sid := ensureSID(c)
	serviceID, ok := validate.ID(c.FormValue("serviceId"))
	if !ok {
		return c.Status(400).SendString("missing serviceId")
	}
	if err := h.Cart.Toggle(sid, serviceID); err != nil {
		applog.Error(c, "cart.toggle.fail", err, map[string]any{"service_id": serviceID})
		return c.Status(400).SendString("could not update selection")
	}
	return c.Redirect(bookingPageURL(c))
}

// Reset empties the selection.
func (h *CartHandler) Reset(c *fiber.Ctx) error {
	sid := ensureSID(c)
	if err := h.Cart.Reset(sid); err != nil {
		applog.Error(c, "cart.reset.fail", err, nil)
		return c.Status(500).SendString("could not clear selection")
	}
	return c.Redirect(bookingPageURL(c))
}
