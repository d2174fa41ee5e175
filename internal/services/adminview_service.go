package services

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/touchandglow905/touchandglow/internal/domain"
	"github.com/touchandglow905/touchandglow/internal/repos"
	"github.com/touchandglow905/touchandglow/internal/watch"
)

type AdminViewService struct {
	Bookings *repos.BookingRepo
	Services *repos.ServiceRepo
	Slots    *repos.SlotRepo
	Hub      *watch.Hub
}

func NewAdminViewService(b *repos.BookingRepo, s *repos.ServiceRepo, sl *repos.SlotRepo, hub *watch.Hub) *AdminViewService {
	return &AdminViewService{Bookings: b, Services: s, Slots: sl, Hub: hub}
}

// DayStats aggregates over the UNFILTERED bookings of one day; search and
// status filters never change the numbers.
type DayStats struct {
	Revenue   float64 `json:"revenue"`
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Pending   int     `json:"pending"`
	Upcoming  int     `json:"upcoming"`
}

type DayView struct {
	Date     string           `json:"date"`
	Bookings []domain.Booking `json:"bookings"`
	Stats    DayStats         `json:"stats"`
}

// FilterBookings applies search (case-insensitive substring over customer
// name, phone and service names) then the status filter ("all" disables).
func FilterBookings(day []domain.Booking, q, status string) []domain.Booking {
	q = strings.ToLower(q)
	out := make([]domain.Booking, 0, len(day))
	for _, b := range day {
		if q != "" &&
			!strings.Contains(strings.ToLower(b.CustomerName), q) &&
			!strings.Contains(b.CustomerPhone, q) &&
			!strings.Contains(strings.ToLower(b.ServiceName), q) {
			continue
		}
		if status != "all" && b.Status != status {
			continue
		}
		out = append(out, b)
	}
	return out
}

// SortBookings orders by the raw slot time string. This is string
// comparison, not clock comparison: "9:00" sorts after "10:00". Kept
// deliberately; the dashboard has always behaved this way.
func SortBookings(bs []domain.Booking, desc bool) {
	sort.SliceStable(bs, func(i, j int) bool {
		if desc {
			return strings.Compare(bs[i].SlotTime, bs[j].SlotTime) > 0
		}
		return strings.Compare(bs[i].SlotTime, bs[j].SlotTime) < 0
	})
}

// ComputeStats sums the day's revenue (non-numeric prices count as zero)
// and the per-status counts; upcoming is everything not yet completed.
func ComputeStats(day []domain.Booking) DayStats {
	st := DayStats{Total: len(day)}
	for i := range day {
		b := &day[i]
		st.Revenue += b.PriceValue()
		switch b.Status {
		case domain.StatusCompleted:
			st.Completed++
		case domain.StatusPending:
			st.Pending++
		}
	}
	st.Upcoming = st.Total - st.Completed
	return st
}

// Day re-derives the dashboard view for one date from a fresh snapshot.
func (s *AdminViewService) Day(date, q, status string, desc bool) (DayView, error) {
	day, err := s.Bookings.ListByDate(date)
	if err != nil {
		return DayView{}, err
	}
	stats := ComputeStats(day)
	filtered := FilterBookings(day, q, status)
	SortBookings(filtered, desc)
	return DayView{Date: date, Bookings: filtered, Stats: stats}, nil
}

// UpdateStatus sets a booking's status. Any transition is allowed.
func (s *AdminViewService) UpdateStatus(id, status string) (bool, error) {
	ok, err := s.Bookings.UpdateStatus(id, status, time.Now().UTC().Format(time.RFC3339))
	if ok {
		s.Hub.Notify()
	}
	return ok, err
}

func (s *AdminViewService) DeleteBooking(id string) (bool, error) {
	ok, err := s.Bookings.Delete(id)
	if ok {
		s.Hub.Notify()
	}
	return ok, err
}

func (s *AdminViewService) CreateService(svc domain.Service) (domain.Service, error) {
	svc.ID = uuid.NewString()
	if err := s.Services.Create(svc); err != nil {
		return domain.Service{}, err
	}
	s.Hub.Notify()
	return svc, nil
}

func (s *AdminViewService) DeleteService(id string) (bool, error) {
	ok, err := s.Services.Delete(id)
	if ok {
		s.Hub.Notify()
	}
	return ok, err
}

func (s *AdminViewService) CreateSlot(slot domain.Slot) (domain.Slot, error) {
	slot.ID = uuid.NewString()
	if err := s.Slots.Create(slot); err != nil {
		return domain.Slot{}, err
	}
	s.Hub.Notify()
	return slot, nil
}

func (s *AdminViewService) DeleteSlot(id string) (bool, error) {
	ok, err := s.Slots.Delete(id)
	if ok {
		s.Hub.Notify()
	}
	return ok, err
}

// Seed inserts the fixed default catalog. Every invocation inserts fresh
// rows with new ids, so running it twice duplicates the catalog — the
// confirmation lives in the UI, not here.
func (s *AdminViewService) Seed() (int, int, error) {
	for _, svc := range repos.DefaultServices {
		svc.ID = uuid.NewString()
		if err := s.Services.Create(svc); err != nil {
			return 0, 0, err
		}
	}
	for _, slot := range repos.DefaultSlots {
		slot.ID = uuid.NewString()
		if err := s.Slots.Create(slot); err != nil {
			return 0, 0, err
		}
	}
	s.Hub.Notify()
	return len(repos.DefaultServices), len(repos.DefaultSlots), nil
}
