package services

import (
	"github.com/touchandglow905/touchandglow/internal/repos"
)

type CartService struct {
	Carts    *repos.CartRepo
	Services *repos.ServiceRepo
}

func NewCartService(carts *repos.CartRepo, services *repos.ServiceRepo) *CartService {
	return &CartService{Carts: carts, Services: services}
}

// Toggle adds the service to the session's cart, or removes it if already
// selected. Toggling twice restores the original cart.
func (s *CartService) Toggle(sessionID, serviceID string) error {
	cartID, err := s.Carts.EnsureCart(sessionID)
	if err != nil {
		return err
	}
	has, err := s.Carts.Has(cartID, serviceID)
	if err != nil {
		return err
	}
	if has {
		return s.Carts.RemoveItem(cartID, serviceID)
	}
	svc, err := s.Services.Get(serviceID)
	if err != nil {
		return err
	}
	return s.Carts.AddItem(cartID, svc.ID, svc.Name, svc.Category, svc.Price)
}

type CartView struct {
	Items []repos.CartItemRow
	Total float64
	Count int
}

// View returns the current selection with its derived total and count.
func (s *CartService) View(sessionID string) (CartView, error) {
	cartID, err := s.Carts.EnsureCart(sessionID)
	if err != nil {
		return CartView{}, err
	}
	items, err := s.Carts.Items(cartID)
	if err != nil {
		return CartView{}, err
	}
	total := 0.0
	for _, it := range items {
		total += it.PriceAtAdd
	}
	return CartView{Items: items, Total: total, Count: len(items)}, nil
}

// Selected reports the service ids currently in the cart.
func (s *CartService) Selected(sessionID string) (map[string]bool, error) {
	cv, err := s.View(sessionID)
	if err != nil {
		return nil, err
	}
	sel := make(map[string]bool, len(cv.Items))
	for _, it := range cv.Items {
		sel[it.ServiceID] = true
	}
	return sel, nil
}

// Reset discards the selection.
func (s *CartService) Reset(sessionID string) error {
	cartID, err := s.Carts.EnsureCart(sessionID)
	if err != nil {
		return err
	}
	return s.Carts.Clear(cartID)
}
