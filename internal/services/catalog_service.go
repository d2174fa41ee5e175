package services

import (
	"strings"

	"github.com/touchandglow905/touchandglow/internal/domain"
	"github.com/touchandglow905/touchandglow/internal/repos"
)

type CatalogService struct {
	Services *repos.ServiceRepo
}

func NewCatalogService(services *repos.ServiceRepo) *CatalogService {
	return &CatalogService{Services: services}
}

// Keyword fallback for catalog rows created before the explicit audience
// tag existed. Substring match over name+category, no word boundaries, so
// e.g. "kidney" would classify as Kids — kept for parity with the legacy
// catalog. New services always carry an explicit tag.
var (
	femaleKeywords = []string{"female", "wax", "women", "makeup", "sider", "bridal"}
	kidsKeywords   = []string{"kid", "child"}
)

// InferAudience returns the explicit tag when present, otherwise classifies
// from keywords in the service's name and category; Male is the default.
func InferAudience(s domain.Service) string {
	if s.Type != "" {
		return s.Type
	}
	text := strings.ToLower(s.Name + s.Category)
	for _, kw := range femaleKeywords {
		if strings.Contains(text, kw) {
			return domain.AudienceFemale
		}
	}
	for _, kw := range kidsKeywords {
		if strings.Contains(text, kw) {
			return domain.AudienceKids
		}
	}
	return domain.AudienceMale
}

// Filter applies, in order: case-insensitive substring search over
// name/category, the audience tab, and the category selection ("All"
// disables it). Tab matching is strict equality on the effective tag, so a
// Unisex-tagged service only shows when the Unisex tab itself is requested.
func Filter(all []domain.Service, q, tab, category string) []domain.Service {
	q = strings.ToLower(q)
	out := make([]domain.Service, 0, len(all))
	for _, s := range all {
		if q != "" &&
			!strings.Contains(strings.ToLower(s.Name), q) &&
			!strings.Contains(strings.ToLower(s.Category), q) {
			continue
		}
		if InferAudience(s) != tab {
			continue
		}
		if category != "All" && s.Category != category {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Categories derives the category chips for a filtered list: "All" first,
// then each distinct category in first-seen order.
func Categories(filtered []domain.Service) []string {
	out := []string{"All"}
	seen := map[string]bool{}
	for _, s := range filtered {
		cat := s.Category
		if cat == "" {
			cat = "General"
		}
		if !seen[cat] {
			seen[cat] = true
			out = append(out, cat)
		}
	}
	return out
}

// Browse loads the catalog and applies the customer-facing filters.
func (s *CatalogService) Browse(q, tab, category string) ([]domain.Service, []string, error) {
	all, err := s.Services.List()
	if err != nil {
		return nil, nil, err
	}
	filtered := Filter(all, q, tab, category)
	return filtered, Categories(filtered), nil
}
