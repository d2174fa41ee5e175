package handlers

import (
	"path/filepath"

	"github.com/jmoiron/sqlx"

	"github.com/touchandglow905/touchandglow/internal/config"
	"github.com/touchandglow905/touchandglow/internal/repos"
	"github.com/touchandglow905/touchandglow/internal/services"
	"github.com/touchandglow905/touchandglow/internal/watch"
)

type Deps struct {
	BookingHandler      *BookingHandler
	CartHandler         *CartHandler
	AvailabilityHandler *AvailabilityHandler
	AdminHandler        *AdminHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, auth *services.AuthService, hub *watch.Hub) *Deps {
	svcRepo := repos.NewServiceRepo(db)
	slotRepo := repos.NewSlotRepo(db)
	bookingRepo := repos.NewBookingRepo(db)
	cartRepo := repos.NewCartRepo(db)

	catalogSvc := services.NewCatalogService(svcRepo)
	availSvc := services.NewAvailabilityService(slotRepo, bookingRepo)
	cartSvc := services.NewCartService(cartRepo, svcRepo)
	bookingSvc := services.NewBookingService(bookingRepo, slotRepo, cartSvc, hub)
	adminSvc := services.NewAdminViewService(bookingRepo, svcRepo, slotRepo, hub)

	return &Deps{
		BookingHandler: &BookingHandler{
			Catalog:  catalogSvc,
			Avail:    availSvc,
			Cart:     cartSvc,
			Booking:  bookingSvc,
			LogoPath: filepath.Join(cfg.MediaDir, "logo.png"),
		},
		CartHandler:         &CartHandler{Cart: cartSvc},
		AvailabilityHandler: &AvailabilityHandler{Catalog: catalogSvc, Avail: availSvc},
		AdminHandler:        &AdminHandler{View: adminSvc, Hub: hub},
	}
}
