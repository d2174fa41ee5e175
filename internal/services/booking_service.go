package services

import (
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/touchandglow905/touchandglow/internal/domain"
	"github.com/touchandglow905/touchandglow/internal/repos"
	"github.com/touchandglow905/touchandglow/internal/watch"
)

// Validation failures surfaced to the customer. None of them produce a
// write, and the cart/selection state is left untouched so the customer
// can fix the form and retry.
var (
	ErrEmptyCart    = errors.New("select at least one service")
	ErrNoSlot       = errors.New("select a time slot")
	ErrUnknownSlot  = errors.New("that time slot no longer exists")
	ErrSlotFull     = errors.New("that time slot is fully booked")
	ErrBlankName    = errors.New("enter your name")
	ErrBadPhone     = errors.New("enter a valid phone number (10 digits)")
	ErrBadDate      = errors.New("pick a valid date")
)

type BookingService struct {
	Bookings *repos.BookingRepo
	Slots    *repos.SlotRepo
	Cart     *CartService
	Hub      *watch.Hub
}

func NewBookingService(bookings *repos.BookingRepo, slots *repos.SlotRepo, cart *CartService, hub *watch.Hub) *BookingService {
	return &BookingService{Bookings: bookings, Slots: slots, Cart: cart, Hub: hub}
}

type SubmitInput struct {
	Name     string
	Phone    string // digits only, already validated by the handler
	Date     string // YYYY-MM-DD
	SlotTime string
}

// Submit validates the in-progress booking and writes exactly one booking
// row on success: service names joined with ", ", the aggregate price, the
// service count, the chosen slot time and date, status pending. The cart
// is cleared only after the write lands.
//
// The fullness check here reads current counts, but nothing serializes two
// concurrent submissions: both can observe a free spot and both can land.
// Overbooking is an accepted limitation of the store's consistency model.
func (s *BookingService) Submit(sessionID string, in SubmitInput) (domain.Booking, error) {
	if strings.TrimSpace(in.Name) == "" {
		return domain.Booking{}, ErrBlankName
	}
	if len(in.Phone) < 10 {
		return domain.Booking{}, ErrBadPhone
	}
	if in.Date == "" {
		return domain.Booking{}, ErrBadDate
	}
	if in.SlotTime == "" {
		return domain.Booking{}, ErrNoSlot
	}

	cv, err := s.Cart.View(sessionID)
	if err != nil {
		return domain.Booking{}, err
	}
	if cv.Count == 0 {
		return domain.Booking{}, ErrEmptyCart
	}

	slot, err := s.Slots.ByTime(in.SlotTime)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Booking{}, ErrUnknownSlot
		}
		return domain.Booking{}, err
	}
	day, err := s.Bookings.ListByDate(in.Date)
	if err != nil {
		return domain.Booking{}, err
	}
	booked := 0
	for i := range day {
		if !day[i].IsCancelled() && day[i].SlotTime == slot.Time {
			booked++
		}
	}
	if booked >= slot.Capacity {
		return domain.Booking{}, ErrSlotFull
	}

	names := make([]string, 0, cv.Count)
	for _, it := range cv.Items {
		names = append(names, it.Name)
	}

	b := domain.Booking{
		ID:            uuid.NewString(),
		CustomerName:  strings.TrimSpace(in.Name),
		CustomerPhone: in.Phone,
		ServiceName:   strings.Join(names, ", "),
		ServicePrice:  strconv.FormatFloat(cv.Total, 'f', -1, 64),
		ServiceCount:  cv.Count,
		SlotTime:      slot.Time,
		Date:          in.Date,
		Status:        domain.StatusPending,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.Bookings.Create(b); err != nil {
		// No retry; the cart survives so the customer can submit again.
		return domain.Booking{}, err
	}
	_ = s.Cart.Reset(sessionID)
	if s.Hub != nil {
		s.Hub.Notify()
	}
	return b, nil
}

func (s *BookingService) Get(id string) (domain.Booking, error) {
	return s.Bookings.Get(id)
}
