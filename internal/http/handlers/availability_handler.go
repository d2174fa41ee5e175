package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	applog "github.com/touchandglow905/touchandglow/internal/log"
	"github.com/touchandglow905/touchandglow/internal/services"
	"github.com/touchandglow905/touchandglow/internal/validate"
)

// AvailabilityHandler serves the JSON API the booking page polls: the
// filtered catalog and the per-date slot availability. Both recompute from
// a fresh store snapshot on every call.
type AvailabilityHandler struct {
	Catalog *services.CatalogService
	Avail   *services.AvailabilityService
}

// GET /api/v1/availability?date=YYYY-MM-DD
func (h *AvailabilityHandler) Slots(c *fiber.Ctx) error {
	date, ok := validate.Date(c.Query("date"))
	if !ok {
		date = time.Now().Format("2006-01-02")
	}
	slots, err := h.Avail.ForDate(date)
	if err != nil {
		applog.Error(c, "availability.derive.fail", err, map[string]any{"date": date})
		return c.Status(500).JSON(fiber.Map{"error": "could not load availability"})
	}
	return c.JSON(fiber.Map{"date": date, "slots": slots})
}

// GET /api/v1/services?tab=&q=&category=
func (h *AvailabilityHandler) Services(c *fiber.Ctx) error {
	tab, q, category, _ := catalogParams(c)
	list, categories, err := h.Catalog.Browse(q, tab, category)
	if err != nil {
		applog.Error(c, "services.list.fail", err, nil)
		return c.Status(500).JSON(fiber.Map{"error": "could not load services"})
	}
	return c.JSON(fiber.Map{"services": list, "categories": categories})
}
