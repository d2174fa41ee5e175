package services_test

import (
	"testing"

	"github.com/touchandglow905/touchandglow/internal/domain"
	"github.com/touchandglow905/touchandglow/internal/services"
)

func TestDeriveCountsAndFullness(t *testing.T) {
	slots := []domain.Slot{
		{ID: "s1", Time: "10:00", Capacity: 2},
		{ID: "s2", Time: "11:00", Capacity: 2},
		{ID: "s3", Time: "12:00", Capacity: 0},
	}
	bookings := []domain.Booking{
		{ID: "b1", SlotTime: "10:00", Status: domain.StatusPending},
		{ID: "b2", SlotTime: "10:00", Status: domain.StatusConfirmed},
		{ID: "b3", SlotTime: "11:00", Status: domain.StatusCancelled},
		{ID: "b4", SlotTime: "11:00", Status: domain.StatusCompleted},
	}

	out := services.Derive(slots, bookings)
	if len(out) != 3 {
		t.Fatalf("want 3 slots, got %d", len(out))
	}
	byTime := map[string]domain.SlotAvailability{}
	for _, a := range out {
		byTime[a.Time] = a
	}

	// capacity reached -> full
	if got := byTime["10:00"]; got.Booked != 2 || !got.IsFull {
		t.Fatalf("10:00: want booked=2 full, got %+v", got)
	}
	// cancelled bookings do not occupy a spot
	if got := byTime["11:00"]; got.Booked != 1 || got.IsFull {
		t.Fatalf("11:00: want booked=1 open, got %+v", got)
	}
	// zero-capacity slot is always full, even with no bookings
	if got := byTime["12:00"]; got.Booked != 0 || !got.IsFull {
		t.Fatalf("12:00: want booked=0 full, got %+v", got)
	}
}

func TestDeriveStringOrder(t *testing.T) {
	slots := []domain.Slot{
		{ID: "a", Time: "9:00", Capacity: 2},
		{ID: "b", Time: "10:00", Capacity: 2},
		{ID: "c", Time: "18:00", Capacity: 2},
	}
	out := services.Derive(slots, nil)
	// Raw string order: "10:00" < "18:00" < "9:00".
	want := []string{"10:00", "18:00", "9:00"}
	for i, w := range want {
		if out[i].Time != w {
			t.Fatalf("position %d: want %q, got %q", i, w, out[i].Time)
		}
	}
}
