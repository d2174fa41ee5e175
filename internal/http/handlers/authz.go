package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "github.com/touchandglow905/touchandglow/internal/log"
	"github.com/touchandglow905/touchandglow/internal/services"
)

// RequireAdmin gates the dashboard. Anonymous visitors go to the login
// form; an authenticated non-admin gets a flat denial.
func RequireAdmin(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Redirect("/login")
		}
		u, err := auth.CurrentUser(sid)
		if err != nil || u == nil || u.Role != "ADMIN" {
			applog.Security(c, "access.denied.admin", map[string]any{"sid": sid})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Access denied"})
		}
		c.Locals("user", u)
		return c.Next()
	}
}
