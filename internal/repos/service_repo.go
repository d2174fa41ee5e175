package repos

import (
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/touchandglow905/touchandglow/internal/domain"
)

type ServiceRepo struct{ db *sqlx.DB }

func NewServiceRepo(db *sqlx.DB) *ServiceRepo { return &ServiceRepo{db: db} }

// List returns the full catalog sorted by name.
func (r *ServiceRepo) List() ([]domain.Service, error) {
	var out []domain.Service
	err := r.db.Select(&out, `
	  SELECT id, name, price, category, type, duration,
	         COALESCE(created_at,'') AS created_at
	  FROM services
	  ORDER BY name
	`)
	return out, err
}

func (r *ServiceRepo) Get(id string) (domain.Service, error) {
	var s domain.Service
	err := r.db.Get(&s, `
	  SELECT id, name, price, category, type, duration,
	         COALESCE(created_at,'') AS created_at
	  FROM services
	  WHERE id = ?
	`, id)
	return s, err
}

func (r *ServiceRepo) Create(s domain.Service) error {
	_, err := r.db.Exec(`
	  INSERT INTO services(id,name,price,category,type,duration,created_at)
	  VALUES(?,?,?,?,?,?,?)
	`, s.ID, s.Name, s.Price, s.Category, s.Type, s.Duration, time.Now().UTC().Format(time.RFC3339))
	return err
}

func (r *ServiceRepo) Delete(id string) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM services WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
