package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"github.com/touchandglow905/touchandglow/internal/http/handlers"
	"github.com/touchandglow905/touchandglow/internal/repos"
	"github.com/touchandglow905/touchandglow/internal/services"
)

// Minimal app for admin guard testing
func newAdminApp(t *testing.T) (*fiber.App, *repos.UserRepo) {
	t.Helper()
	db, err := repos.OpenDB(":memory:", "admin@test.local", "Passw0rd!")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{Users: userRepo}

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(requestid.New())

	admin := app.Group("/admin", handlers.RequireAdmin(authSvc))
	admin.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

	app.Get("/login", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })
	return app, userRepo
}

// The dashboard is gated on an authenticated ADMIN session.
func TestAdminGuardRequiresAdmin(t *testing.T) {
	app, userRepo := newAdminApp(t)

	// Anonymous -> redirect to login
	resp, err := app.Test(httptest.NewRequest("GET", "/admin", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect for anonymous, got %d", resp.StatusCode)
	}

	// Unknown session -> denied
	reqBogus := httptest.NewRequest("GET", "/admin", nil)
	reqBogus.AddCookie(&http.Cookie{Name: "sid", Value: "sid-bogus"})
	respBogus, err := app.Test(reqBogus)
	if err != nil {
		t.Fatal(err)
	}
	if respBogus.StatusCode != http.StatusForbidden {
		t.Fatalf("expected forbidden for unknown session, got %d", respBogus.StatusCode)
	}

	// Admin -> 200
	_ = userRepo.BindSession("sid-admin", "u-admin")
	reqAdmin := httptest.NewRequest("GET", "/admin", nil)
	reqAdmin.AddCookie(&http.Cookie{Name: "sid", Value: "sid-admin"})
	respAdmin, err := app.Test(reqAdmin)
	if err != nil {
		t.Fatal(err)
	}
	if respAdmin.StatusCode != http.StatusOK {
		t.Fatalf("admin expected 200, got %d", respAdmin.StatusCode)
	}
}
