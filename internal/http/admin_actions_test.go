package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	html "github.com/gofiber/template/html/v2"
	"github.com/jmoiron/sqlx"

	"github.com/touchandglow905/touchandglow/internal/config"
	"github.com/touchandglow905/touchandglow/internal/http/handlers"
	"github.com/touchandglow905/touchandglow/internal/repos"
	"github.com/touchandglow905/touchandglow/internal/services"
	"github.com/touchandglow905/touchandglow/internal/watch"
)

func newAdminActionsApp(t *testing.T) (*fiber.App, *sqlx.DB) {
	t.Helper()
	db, err := repos.OpenDB(":memory:", "admin@test.local", "Passw0rd!")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{Users: userRepo}
	cfg := config.Config{DBDSN: ":memory:", MediaDir: "../../web/media"}
	deps := handlers.NewDeps(db, cfg, authSvc, watch.NewHub())

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Post("/admin/services", deps.AdminHandler.CreateService)
	app.Post("/admin/slots", deps.AdminHandler.CreateSlot)
	return app, db
}

func postForm(app *fiber.App, path, body string) (*http.Response, error) {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return app.Test(req)
}

// Add-service requires name, price and duration; nothing is written on a
// rejected form.
func TestCreateServiceRequiresAllFields(t *testing.T) {
	app, db := newAdminActionsApp(t)

	cases := []struct {
		name string
		form string
	}{
		{"missing duration", "name=Hair+Spa&price=700&category=Hair+Care"},
		{"blank duration", "name=Hair+Spa&price=700&duration="},
		{"junk duration", "name=Hair+Spa&price=700&duration=soon"},
		{"zero duration", "name=Hair+Spa&price=700&duration=0"},
		{"missing name", "price=700&duration=60"},
		{"missing price", "name=Hair+Spa&duration=60"},
	}
	for _, tc := range cases {
		resp, err := postForm(app, "/admin/services", tc.form)
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", tc.name, resp.StatusCode)
		}
	}
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM services`); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("rejected forms wrote %d services", n)
	}

	// complete form lands the row
	resp, err := postForm(app, "/admin/services", "name=Hair+Spa&price=700&duration=60&type=Female&category=Hair+Care")
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect on success, got %d", resp.StatusCode)
	}
	if err := db.Get(&n, `SELECT COUNT(*) FROM services WHERE name='Hair Spa' AND duration=60`); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("want 1 created service, got %d", n)
	}
}

// Add-slot requires a time; capacity falls back to the default of 2.
func TestCreateSlotDefaultsCapacity(t *testing.T) {
	app, db := newAdminActionsApp(t)

	resp, err := postForm(app, "/admin/slots", "capacity=3")
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 without a time, got %d", resp.StatusCode)
	}

	resp, err = postForm(app, "/admin/slots", "time=10:00")
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect on success, got %d", resp.StatusCode)
	}
	var capacity int
	if err := db.Get(&capacity, `SELECT capacity FROM slots WHERE time='10:00'`); err != nil {
		t.Fatal(err)
	}
	if capacity != 2 {
		t.Fatalf("want default capacity 2, got %d", capacity)
	}
}
