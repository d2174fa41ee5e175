package handlers

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"github.com/touchandglow905/touchandglow/internal/domain"
	applog "github.com/touchandglow905/touchandglow/internal/log"
	"github.com/touchandglow905/touchandglow/internal/services"
	"github.com/touchandglow905/touchandglow/internal/validate"
	"github.com/touchandglow905/touchandglow/internal/watch"
)

type AdminHandler struct {
	View *services.AdminViewService
	Hub  *watch.Hub
}

// dayParams normalizes the dashboard filter params.
func dayParams(c *fiber.Ctx) (date, q, status string, desc bool) {
	date, ok := validate.Date(c.Query("date"))
	if !ok {
		date = time.Now().Format("2006-01-02")
	}
	if raw := c.Query("q"); raw != "" {
		if v, ok := validate.Q(raw); ok {
			q = v
		}
	}
	status = c.Query("status", "all")
	if status != "all" {
		if v, ok := validate.Status(status); ok {
			status = v
		} else {
			status = "all"
		}
	}
	desc = c.Query("sort") == "desc"
	return date, q, status, desc
}

// GET /admin — the day view: stats over the whole day, bookings filtered
// and sorted per the query params.
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	date, q, status, desc := dayParams(c)
	view, err := h.View.Day(date, q, status, desc)
	if err != nil {
		applog.Error(c, "admin.day.fail", err, map[string]any{"date": date})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load bookings"})
	}
	sortDir := "asc"
	if desc {
		sortDir = "desc"
	}
	return render(c, "admin_dashboard", fiber.Map{
		"View":     view,
		"Q":        q,
		"Status":   status,
		"Sort":     sortDir,
		"Statuses": []string{"all", domain.StatusPending, domain.StatusConfirmed, domain.StatusCompleted, domain.StatusCancelled},
	})
}

// POST /admin/bookings/:id/status
func (h *AdminHandler) UpdateBookingStatus(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	status, okStatus := validate.Status(c.FormValue("status"))
	if !okID || !okStatus {
		return c.Status(400).SendString("missing id or status")
	}
	ok, err := h.View.UpdateStatus(id, status)
	if err != nil || !ok {
		applog.Error(c, "admin.bookings.status.fail", err, map[string]any{"booking_id": id})
		return c.Status(400).SendString("could not update status")
	}
	applog.Audit(c, "admin.bookings.status", map[string]any{"booking_id": id, "status": status})
	return c.Redirect(adminDayURL(c))
}

// POST /admin/bookings/:id/delete
func (h *AdminHandler) DeleteBooking(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	if !okID {
		return c.Status(400).SendString("missing id")
	}
	ok, err := h.View.DeleteBooking(id)
	if err != nil || !ok {
		applog.Error(c, "admin.bookings.delete.fail", err, map[string]any{"booking_id": id})
		return c.Status(400).SendString("could not delete booking")
	}
	applog.Audit(c, "admin.bookings.delete", map[string]any{"booking_id": id})
	return c.Redirect(adminDayURL(c))
}

func adminDayURL(c *fiber.Ctx) string {
	if date, ok := validate.Date(c.FormValue("date")); ok {
		return "/admin?date=" + date
	}
	return "/admin"
}

// GET /admin/services
func (h *AdminHandler) ServicesPage(c *fiber.Ctx) error {
	list, err := h.View.Services.List()
	if err != nil {
		applog.Error(c, "admin.services.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load services"})
	}
	return render(c, "admin_services", fiber.Map{"Services": list})
}

// POST /admin/services — name, price and duration are required; the
// audience tag is optional (legacy rows fall back to keyword inference).
func (h *AdminHandler) CreateService(c *fiber.Ctx) error {
	name, okName := validate.Name(c.FormValue("name"))
	price, okPrice := validate.Price(c.FormValue("price"))
	duration, okDur := validate.Duration(c.FormValue("duration"))
	if !okName || !okPrice || !okDur {
		return c.Status(400).SendString("name, price and duration are required")
	}
	svc := domain.Service{
		Name:      name,
		Price:     price,
		Category:  strings.TrimSpace(c.FormValue("category")),
		Duration:  duration,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if t, ok := validate.Audience(c.FormValue("type")); ok {
		svc.Type = t
	}
	created, err := h.View.CreateService(svc)
	if err != nil {
		applog.Error(c, "admin.services.create.fail", err, nil)
		return c.Status(400).SendString("could not create service")
	}
	applog.Audit(c, "admin.services.create", map[string]any{"service_id": created.ID, "name": created.Name})
	return c.Redirect("/admin/services")
}

// POST /admin/services/:id/delete
func (h *AdminHandler) DeleteService(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	if !okID {
		return c.Status(400).SendString("missing id")
	}
	ok, err := h.View.DeleteService(id)
	if err != nil || !ok {
		applog.Error(c, "admin.services.delete.fail", err, map[string]any{"service_id": id})
		return c.Status(400).SendString("could not delete service")
	}
	applog.Audit(c, "admin.services.delete", map[string]any{"service_id": id})
	return c.Redirect("/admin/services")
}

// GET /admin/slots
func (h *AdminHandler) SlotsPage(c *fiber.Ctx) error {
	list, err := h.View.Slots.List()
	if err != nil {
		applog.Error(c, "admin.slots.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load slots"})
	}
	return render(c, "admin_slots", fiber.Map{"Slots": list})
}

// POST /admin/slots — time is required, capacity defaults to 2.
func (h *AdminHandler) CreateSlot(c *fiber.Ctx) error {
	t, ok := validate.TimeOfDay(c.FormValue("time"))
	if !ok {
		return c.Status(400).SendString("time is required")
	}
	slot := domain.Slot{
		Time:      t,
		Capacity:  validate.Capacity(c.FormValue("capacity")),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	created, err := h.View.CreateSlot(slot)
	if err != nil {
		applog.Error(c, "admin.slots.create.fail", err, nil)
		return c.Status(400).SendString("could not create slot")
	}
	applog.Audit(c, "admin.slots.create", map[string]any{"slot_id": created.ID, "time": created.Time})
	return c.Redirect("/admin/slots")
}

// POST /admin/slots/:id/delete
func (h *AdminHandler) DeleteSlot(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	if !okID {
		return c.Status(400).SendString("missing id")
	}
	ok, err := h.View.DeleteSlot(id)
	if err != nil || !ok {
		applog.Error(c, "admin.slots.delete.fail", err, map[string]any{"slot_id": id})
		return c.Status(400).SendString("could not delete slot")
	}
	applog.Audit(c, "admin.slots.delete", map[string]any{"slot_id": id})
	return c.Redirect("/admin/slots")
}

// POST /admin/seed — inserts the default catalog. Running it again inserts
// duplicates; the confirmation prompt lives in the UI.
func (h *AdminHandler) Seed(c *fiber.Ctx) error {
	nServices, nSlots, err := h.View.Seed()
	if err != nil {
		applog.Error(c, "admin.seed.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Bulk upload failed"})
	}
	applog.Audit(c, "admin.seed", map[string]any{"services": nServices, "slots": nSlots})
	return c.Redirect("/admin/services")
}

// GET /admin/bookings/stream?date= — server-sent events feed of the day
// view. Re-derives the whole snapshot whenever the change hub signals,
// rather than patching the previous payload.
func (h *AdminHandler) Stream(c *fiber.Ctx) error {
	date, q, status, desc := dayParams(c)

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	view := h.View
	sub, cancel := h.Hub.Subscribe()
	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		// The fiber context is recycled once the handler returns; only the
		// captured params may be touched in here.
		defer cancel()
		send := func() bool {
			day, err := view.Day(date, q, status, desc)
			if err != nil {
				return false
			}
			payload, err := json.Marshal(day)
			if err != nil {
				return false
			}
			if _, err := fmt.Fprintf(w, "event: day\ndata: %s\n\n", payload); err != nil {
				return false
			}
			return w.Flush() == nil
		}
		if !send() {
			return
		}
		keepalive := time.NewTicker(25 * time.Second)
		defer keepalive.Stop()
		for {
			select {
			case <-sub:
				if !send() {
					return
				}
			case <-keepalive.C:
				if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
					return
				}
				if w.Flush() != nil {
					return
				}
			}
		}
	}))
	return nil
}
