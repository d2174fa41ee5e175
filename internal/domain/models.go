package domain

import "strconv"

// Audience tags shown as catalog tabs.
const (
	AudienceMale   = "Male"
	AudienceFemale = "Female"
	AudienceKids   = "Kids"
	AudienceUnisex = "Unisex"
)

// Booking statuses. Any status may transition to any other.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type Service struct {
	ID        string  `db:"id" json:"id"`
	Name      string  `db:"name" json:"name"`
	Price     float64 `db:"price" json:"price"`
	Category  string  `db:"category" json:"category"`
	Type      string  `db:"type" json:"type,omitempty"` // audience tag; empty on legacy rows
	Duration  int     `db:"duration" json:"duration,omitempty"`
	CreatedAt string  `db:"created_at" json:"createdAt,omitempty"`
}

type Slot struct {
	ID          string `db:"id" json:"id"`
	Time        string `db:"time" json:"time"` // time-of-day string, e.g. "10:00"
	Capacity    int    `db:"capacity" json:"capacity"`
	BookedCount int    `db:"booked_count" json:"-"` // legacy column, always 0
	CreatedAt   string `db:"created_at" json:"-"`
}

// Booking denormalizes the selected services at creation time: names joined
// with ", ", the aggregate price and the service count. Deleting a Service
// or Slot afterwards does not touch existing bookings.
type Booking struct {
	ID            string `db:"id" json:"id"`
	CustomerName  string `db:"customer_name" json:"customerName"`
	CustomerPhone string `db:"customer_phone" json:"customerPhone"`
	ServiceName   string `db:"service_name" json:"serviceName"`
	ServicePrice  string `db:"service_price" json:"servicePrice"` // stored loosely typed; see PriceValue
	ServiceCount  int    `db:"service_count" json:"serviceCount"`
	SlotTime      string `db:"slot_time" json:"slotTime"`
	Date          string `db:"date" json:"date"` // YYYY-MM-DD
	Status        string `db:"status" json:"status"`
	Notes         string `db:"notes" json:"notes,omitempty"`
	CreatedAt     string `db:"created_at" json:"createdAt"`
	UpdatedAt     string `db:"updated_at" json:"updatedAt,omitempty"`
}

// PriceValue parses the stored price, coercing missing or non-numeric
// values to zero. Legacy imports left junk in this field.
func (b *Booking) PriceValue() float64 {
	v, err := strconv.ParseFloat(b.ServicePrice, 64)
	if err != nil {
		return 0
	}
	return v
}

// IsCancelled reports whether the booking no longer occupies a slot spot.
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// SlotAvailability is the derived per-date view of a slot.
type SlotAvailability struct {
	Slot
	Booked int  `json:"booked"`
	IsFull bool `json:"isFull"`
}
