package repos

import (
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/touchandglow905/touchandglow/internal/domain"
)

type SlotRepo struct{ db *sqlx.DB }

func NewSlotRepo(db *sqlx.DB) *SlotRepo { return &SlotRepo{db: db} }

// List returns all slots ordered by the raw time string. That is string
// order, not clock order; "9:00" sorts after "10:00".
func (r *SlotRepo) List() ([]domain.Slot, error) {
	var out []domain.Slot
	err := r.db.Select(&out, `
	  SELECT id, time, capacity, booked_count, COALESCE(created_at,'') AS created_at
	  FROM slots
	  ORDER BY time
	`)
	return out, err
}

func (r *SlotRepo) Get(id string) (domain.Slot, error) {
	var s domain.Slot
	err := r.db.Get(&s, `
	  SELECT id, time, capacity, booked_count, COALESCE(created_at,'') AS created_at
	  FROM slots
	  WHERE id = ?
	`, id)
	return s, err
}

// ByTime returns the slot with the given time-of-day string.
func (r *SlotRepo) ByTime(t string) (domain.Slot, error) {
	var s domain.Slot
	err := r.db.Get(&s, `
	  SELECT id, time, capacity, booked_count, COALESCE(created_at,'') AS created_at
	  FROM slots
	  WHERE time = ?
	  LIMIT 1
	`, t)
	return s, err
}

func (r *SlotRepo) Create(s domain.Slot) error {
	_, err := r.db.Exec(`
	  INSERT INTO slots(id,time,capacity,booked_count,created_at)
	  VALUES(?,?,?,0,?)
	`, s.ID, s.Time, s.Capacity, time.Now().UTC().Format(time.RFC3339))
	return err
}

func (r *SlotRepo) Delete(id string) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM slots WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
