package services

import (
	"sort"
	"strings"

	"github.com/touchandglow905/touchandglow/internal/domain"
	"github.com/touchandglow905/touchandglow/internal/repos"
)

type AvailabilityService struct {
	Slots    *repos.SlotRepo
	Bookings *repos.BookingRepo
}

func NewAvailabilityService(slots *repos.SlotRepo, bookings *repos.BookingRepo) *AvailabilityService {
	return &AvailabilityService{Slots: slots, Bookings: bookings}
}

// Derive computes per-slot fullness for one day: a slot is full when the
// count of non-cancelled bookings at its time reaches its capacity, so a
// capacity-0 slot is always full. Pure function over the two snapshots.
func Derive(slots []domain.Slot, dayBookings []domain.Booking) []domain.SlotAvailability {
	counts := make(map[string]int, len(slots))
	for i := range dayBookings {
		b := &dayBookings[i]
		if b.IsCancelled() {
			continue
		}
		counts[b.SlotTime]++
	}
	out := make([]domain.SlotAvailability, 0, len(slots))
	for _, s := range slots {
		n := counts[s.Time]
		out = append(out, domain.SlotAvailability{
			Slot:   s,
			Booked: n,
			IsFull: n >= s.Capacity,
		})
	}
	// String order on the time field, matching how slots are displayed.
	sort.SliceStable(out, func(i, j int) bool {
		return strings.Compare(out[i].Time, out[j].Time) < 0
	})
	return out
}

// ForDate recomputes availability from the current store snapshots.
func (s *AvailabilityService) ForDate(date string) ([]domain.SlotAvailability, error) {
	slots, err := s.Slots.List()
	if err != nil {
		return nil, err
	}
	bookings, err := s.Bookings.ListByDate(date)
	if err != nil {
		return nil, err
	}
	return Derive(slots, bookings), nil
}
