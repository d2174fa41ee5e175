package repos

import (
	"time"

	"github.com/jmoiron/sqlx"
)

type CartRepo struct{ db *sqlx.DB }

func NewCartRepo(db *sqlx.DB) *CartRepo { return &CartRepo{db: db} }

type CartItemRow struct {
	ServiceID  string  `db:"service_id"`
	Name       string  `db:"name"`
	Category   string  `db:"category"`
	PriceAtAdd float64 `db:"price_at_add"`
}

func (r *CartRepo) EnsureCart(sessionID string) (string, error) {
	var cartID string
	if err := r.db.Get(&cartID, `SELECT id FROM carts WHERE session_id = ?`, sessionID); err == nil {
		return cartID, nil
	}
	_, err := r.db.Exec(`INSERT INTO carts(id,session_id,updated_at) VALUES(?,?,?)`,
		sessionID, sessionID, time.Now().Format(time.RFC3339))
	if err != nil {
		return "", err
	}
	return sessionID, nil
}

// Has reports whether a service is currently selected.
func (r *CartRepo) Has(cartID, serviceID string) (bool, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM cart_items WHERE cart_id = ? AND service_id = ?`,
		cartID, serviceID)
	return n > 0, err
}

func (r *CartRepo) AddItem(cartID, serviceID, name, category string, price float64) error {
	_, err := r.db.Exec(`
	  INSERT INTO cart_items(cart_id,service_id,name,category,price_at_add,created_at)
	  VALUES(?,?,?,?,?,CURRENT_TIMESTAMP)
	  ON CONFLICT(cart_id,service_id) DO NOTHING
	`, cartID, serviceID, name, category, price)
	return err
}

func (r *CartRepo) RemoveItem(cartID, serviceID string) error {
	_, err := r.db.Exec(`DELETE FROM cart_items WHERE cart_id = ? AND service_id = ?`,
		cartID, serviceID)
	return err
}

// Items lists the selected services in add order.
func (r *CartRepo) Items(cartID string) ([]CartItemRow, error) {
	rows := []CartItemRow{}
	err := r.db.Select(&rows, `
	  SELECT service_id, name, category, price_at_add
	  FROM cart_items
	  WHERE cart_id = ?
	  ORDER BY datetime(created_at), service_id
	`, cartID)
	return rows, err
}

func (r *CartRepo) Clear(cartID string) error {
	_, err := r.db.Exec(`DELETE FROM cart_items WHERE cart_id = ?`, cartID)
	return err
}
