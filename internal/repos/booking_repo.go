package repos

import (
	"github.com/jmoiron/sqlx"

	"github.com/touchandglow905/touchandglow/internal/domain"
)

type BookingRepo struct{ db *sqlx.DB }

func NewBookingRepo(db *sqlx.DB) *BookingRepo { return &BookingRepo{db: db} }

// Create inserts one booking row.
func (r *BookingRepo) Create(b domain.Booking) error {
	_, err := r.db.Exec(`
	  INSERT INTO bookings
	    (id, customer_name, customer_phone, service_name, service_price,
	     service_count, slot_time, date, status, notes, created_at)
	  VALUES (?,?,?,?,?,?,?,?,?,?,?)
	`, b.ID, b.CustomerName, b.CustomerPhone, b.ServiceName, b.ServicePrice,
		b.ServiceCount, b.SlotTime, b.Date, b.Status, b.Notes, b.CreatedAt)
	return err
}

func (r *BookingRepo) Get(id string) (domain.Booking, error) {
	var b domain.Booking
	err := r.db.Get(&b, `
	  SELECT id, customer_name, customer_phone, service_name, service_price,
	         service_count, slot_time, date, status, notes,
	         COALESCE(created_at,'') AS created_at, COALESCE(updated_at,'') AS updated_at
	  FROM bookings
	  WHERE id = ?
	`, id)
	return b, err
}

// ListByDate returns every booking for a calendar day, newest first within
// equal slot times.
func (r *BookingRepo) ListByDate(date string) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.Select(&out, `
	  SELECT id, customer_name, customer_phone, service_name, service_price,
	         service_count, slot_time, date, status, notes,
	         COALESCE(created_at,'') AS created_at, COALESCE(updated_at,'') AS updated_at
	  FROM bookings
	  WHERE date = ?
	  ORDER BY slot_time, datetime(created_at) DESC
	`, date)
	return out, err
}

func (r *BookingRepo) UpdateStatus(id, status, updatedAt string) (bool, error) {
	res, err := r.db.Exec(`UPDATE bookings SET status = ?, updated_at = ? WHERE id = ?`,
		status, updatedAt, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *BookingRepo) Delete(id string) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM bookings WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
