package handlers_test

import (
	"encoding/json"
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

func newBookingApp(t *testing.T) (*fiber.App, *sqlx.DB) {
	t.Helper()
	db, err := repos.OpenDB(":memory:", "admin@test.local", "Passw0rd!")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	seed := `
	INSERT INTO services(id,name,price,category,type,duration) VALUES
	  ('svc-cut','Haircut',300,'Hair','Male',30),
	  ('svc-bridal','Bridal Makeup',5000,'Makeup','',120);
	INSERT INTO slots(id,time,capacity) VALUES
	  ('slot-10','10:00',1),
	  ('slot-11','11:00',2);
	INSERT INTO bookings(id,customer_name,customer_phone,service_name,service_price,service_count,slot_time,date,status)
	  VALUES ('b1','Asha','9913546386','Haircut','300',1,'10:00','2026-09-01','pending');
	`
	if _, err := db.Exec(seed); err != nil {
		t.Fatal(err)
	}

	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{Users: userRepo}
	cfg := config.Config{DBDSN: ":memory:", MediaDir: "../../web/media"}
	deps := handlers.NewDeps(db, cfg, authSvc, watch.NewHub())

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})

	app.Get("/", deps.BookingHandler.Page)
	app.Post("/cart/toggle", deps.CartHandler.Toggle)
	app.Post("/bookings", deps.BookingHandler.Submit)
	app.Get("/booking/:id", deps.BookingHandler.Confirmation)
	app.Get("/booking/:id/receipt", deps.BookingHandler.Receipt)
	app.Get("/api/v1/availability", deps.AvailabilityHandler.Slots)
	app.Get("/api/v1/services", deps.AvailabilityHandler.Services)
	return app, db
}

func TestAvailabilityJSON(t *testing.T) {
	app, _ := newBookingApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/availability?date=2026-09-01", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var body struct {
		Date  string `json:"date"`
		Slots []struct {
			Time   string `json:"time"`
			Booked int    `json:"booked"`
			IsFull bool   `json:"isFull"`
		} `json:"slots"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Date != "2026-09-01" || len(body.Slots) != 2 {
		t.Fatalf("bad payload: %+v", body)
	}
	for _, s := range body.Slots {
		switch s.Time {
		case "10:00":
			if s.Booked != 1 || !s.IsFull {
				t.Fatalf("10:00 should be full: %+v", s)
			}
		case "11:00":
			if s.Booked != 0 || s.IsFull {
				t.Fatalf("11:00 should be open: %+v", s)
			}
		}
	}
}

func TestServicesJSONInfersAudience(t *testing.T) {
	app, _ := newBookingApp(t)

	// Bridal Makeup has no explicit tag; the Female tab picks it up anyway.
	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/services?tab=Female", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var body struct {
		Services []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"services"`
		Categories []string `json:"categories"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body.Services) != 1 || body.Services[0].ID != "svc-bridal" {
		t.Fatalf("want only Bridal Makeup, got %+v", body.Services)
	}
	if len(body.Categories) != 2 || body.Categories[0] != "All" || body.Categories[1] != "Makeup" {
		t.Fatalf("bad category chips: %v", body.Categories)
	}
}

func TestSubmitRejectsWithoutWriting(t *testing.T) {
	app, db := newBookingApp(t)
	sid := "sess-submit"

	// put one service in the cart
	form := strings.NewReader("serviceId=svc-cut")
	reqToggle := httptest.NewRequest("POST", "/cart/toggle", form)
	reqToggle.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	reqToggle.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	respToggle, err := app.Test(reqToggle)
	if err != nil {
		t.Fatal(err)
	}
	if respToggle.StatusCode != http.StatusFound {
		t.Fatalf("toggle expected redirect, got %d", respToggle.StatusCode)
	}

	// a short phone is rejected before anything is written
	bad := strings.NewReader("name=Asha&phone=12345&date=2026-09-01&slotTime=11:00")
	reqBad := httptest.NewRequest("POST", "/bookings", bad)
	reqBad.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	reqBad.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	respBad, err := app.Test(reqBad)
	if err != nil {
		t.Fatal(err)
	}
	if respBad.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad phone, got %d", respBad.StatusCode)
	}

	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM bookings WHERE customer_name='Asha' AND slot_time='11:00'`); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("rejected submit wrote %d rows", n)
	}

	// fixing the phone lands the booking and redirects to the confirmation
	good := strings.NewReader("name=Asha&phone=9913546386&date=2026-09-01&slotTime=11:00")
	reqGood := httptest.NewRequest("POST", "/bookings", good)
	reqGood.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	reqGood.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	respGood, err := app.Test(reqGood)
	if err != nil {
		t.Fatal(err)
	}
	if respGood.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect on success, got %d", respGood.StatusCode)
	}
	loc := respGood.Header.Get("Location")
	if !strings.HasPrefix(loc, "/booking/") {
		t.Fatalf("expected /booking/:id redirect, got %q", loc)
	}

	// receipt download works off the stored row
	reqReceipt := httptest.NewRequest("GET", loc+"/receipt", nil)
	respReceipt, err := app.Test(reqReceipt, 5000)
	if err != nil {
		t.Fatal(err)
	}
	if respReceipt.StatusCode != http.StatusOK {
		t.Fatalf("receipt expected 200, got %d", respReceipt.StatusCode)
	}
	if cd := respReceipt.Header.Get("Content-Disposition"); !strings.Contains(cd, "TG_Receipt_Asha_2026-09-01") {
		t.Fatalf("bad receipt filename: %q", cd)
	}
}
