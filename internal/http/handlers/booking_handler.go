package handlers

import (
	"errors"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/touchandglow905/touchandglow/internal/domain"
	applog "github.com/touchandglow905/touchandglow/internal/log"
	"github.com/touchandglow905/touchandglow/internal/receipt"
	"github.com/touchandglow905/touchandglow/internal/services"
	"github.com/touchandglow905/touchandglow/internal/validate"
)

type BookingHandler struct {
	Catalog  *services.CatalogService
	Avail    *services.AvailabilityService
	Cart     *services.CartService
	Booking  *services.BookingService
	LogoPath string
}

// catalogParams normalizes the browse query params, from the query string
// on GET and from hidden form fields on POST redirects.
func catalogParams(c *fiber.Ctx) (tab, q, category, date string) {
	get := c.Query
	if c.Method() == fiber.MethodPost {
		get = func(key string, _ ...string) string { return c.FormValue(key) }
	}
	tab, ok := validate.Audience(get("tab"))
	if !ok {
		tab = domain.AudienceMale
	}
	if raw := get("q"); raw != "" {
		if v, ok := validate.Q(raw); ok {
			q = v
		}
	}
	category = get("category")
	if category == "" {
		category = "All"
	}
	date, ok = validate.Date(get("date"))
	if !ok {
		date = time.Now().Format("2006-01-02")
	}
	return tab, q, category, date
}

// bookingPageURL rebuilds the booking page URL with the current filters so
// a post-action redirect lands the customer where they were.
func bookingPageURL(c *fiber.Ctx) string {
	tab, q, category, date := catalogParams(c)
	v := url.Values{}
	v.Set("tab", tab)
	if q != "" {
		v.Set("q", q)
	}
	v.Set("category", category)
	v.Set("date", date)
	return "/?" + v.Encode()
}

// Page renders the customer booking page: filtered catalog with category
// chips, the current selection, and per-slot availability for the chosen
// date.
func (h *BookingHandler) Page(c *fiber.Ctx) error {
	sid := ensureSID(c)
	tab, q, category, date := catalogParams(c)

	catalog, categories, err := h.Catalog.Browse(q, tab, category)
	if err != nil {
		applog.Error(c, "booking.page.catalog", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load services"})
	}
	slots, err := h.Avail.ForDate(date)
	if err != nil {
		applog.Error(c, "booking.page.availability", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load time slots"})
	}
	cv, err := h.Cart.View(sid)
	if err != nil {
		applog.Error(c, "booking.page.cart", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load your selection"})
	}
	selected, err := h.Cart.Selected(sid)
	if err != nil {
		selected = map[string]bool{}
	}

	return render(c, "booking", fiber.Map{
		"Tab":        tab,
		"Q":          q,
		"Category":   category,
		"Date":       date,
		"Tabs":       []string{domain.AudienceMale, domain.AudienceFemale, domain.AudienceKids},
		"Services":   catalog,
		"Categories": categories,
		"Slots":      slots,
		"Cart":       cv,
		"Selected":   selected,
		"Err":        c.Query("err"),
	})
}

// Submit places the booking. Validation failures return 400 with the form
// message; nothing is written and the selection survives, so the customer
// can correct and retry.
func (h *BookingHandler) Submit(c *fiber.Ctx) error {
	sid := ensureSID(c)

	in := services.SubmitInput{Date: c.FormValue("date"), SlotTime: c.FormValue("slotTime")}
	if name, ok := validate.Name(c.FormValue("name")); ok {
		in.Name = name
	}
	if phone, ok := validate.Phone(c.FormValue("phone")); ok {
		in.Phone = phone
	}
	if _, ok := validate.Date(in.Date); !ok {
		in.Date = ""
	}
	if _, ok := validate.TimeOfDay(in.SlotTime); !ok {
		in.SlotTime = ""
	}

	b, err := h.Booking.Submit(sid, in)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart),
			errors.Is(err, services.ErrNoSlot),
			errors.Is(err, services.ErrUnknownSlot),
			errors.Is(err, services.ErrSlotFull),
			errors.Is(err, services.ErrBlankName),
			errors.Is(err, services.ErrBadPhone),
			errors.Is(err, services.ErrBadDate):
			applog.Security(c, "booking.submit.reject", map[string]any{"reason": err.Error()})
			return c.Status(fiber.StatusBadRequest).SendString(err.Error())
		}
		applog.Error(c, "booking.submit.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not save your booking. Please try again."})
	}

	applog.Audit(c, "booking.submit", map[string]any{
		"booking_id": b.ID,
		"date":       b.Date,
		"slot":       b.SlotTime,
		"services":   b.ServiceCount,
		"total":      b.ServicePrice,
	})
	return c.Redirect("/booking/" + b.ID)
}

// Confirmation shows the receipt page for one booking.
func (h *BookingHandler) Confirmation(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Booking not found"})
	}
	b, err := h.Booking.Get(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Booking not found"})
	}
	return render(c, "confirmation", fiber.Map{"Booking": b})
}

// Receipt streams the downloadable receipt. The booking row is already
// durable; a renderer failure degrades to the plain-text receipt rather
// than failing the request.
func (h *BookingHandler) Receipt(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Booking not found"})
	}
	b, err := h.Booking.Get(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Booking not found"})
	}
	art, err := receipt.Render(&b, h.LogoPath)
	if err != nil {
		applog.Error(c, "booking.receipt.fail", err, map[string]any{"booking_id": id})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not generate the receipt"})
	}
	applog.Info(c, "booking.receipt", map[string]any{"booking_id": id, "name": art.Name})
	c.Set(fiber.HeaderContentType, art.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+art.Name+`"`)
	return c.Send(art.Data)
}
