package services_test

import (
	"testing"

	"github.com/touchandglow905/touchandglow/internal/domain"
	"github.com/touchandglow905/touchandglow/internal/services"
)

func TestInferAudience(t *testing.T) {
	cases := []struct {
		name     string
		svc      domain.Service
		want     string
	}{
		{"explicit tag wins", domain.Service{Name: "Beard Trim", Type: domain.AudienceUnisex}, domain.AudienceUnisex},
		{"makeup category", domain.Service{Name: "Bridal Makeup", Category: "Makeup"}, domain.AudienceFemale},
		{"wax in name", domain.Service{Name: "Full Arm Wax", Category: "Skin"}, domain.AudienceFemale},
		{"kids keyword", domain.Service{Name: "Kids Haircut", Category: "Hair"}, domain.AudienceKids},
		{"default male", domain.Service{Name: "Haircut", Category: "Hair"}, domain.AudienceMale},
		{"case insensitive", domain.Service{Name: "BRIDAL Package", Category: ""}, domain.AudienceFemale},
	}
	for _, tc := range cases {
		if got := services.InferAudience(tc.svc); got != tc.want {
			t.Errorf("%s: want %s, got %s", tc.name, tc.want, got)
		}
	}
}

func TestFilterComposition(t *testing.T) {
	all := []domain.Service{
		{ID: "1", Name: "Haircut", Category: "Hair", Type: domain.AudienceMale},
		{ID: "2", Name: "Hair Spa", Category: "Hair", Type: domain.AudienceFemale},
		{ID: "3", Name: "Bridal Makeup", Category: "Makeup"},
		{ID: "4", Name: "Beard Styling", Category: "Beard", Type: domain.AudienceMale},
	}

	// search + tab
	out := services.Filter(all, "hair", domain.AudienceFemale, "All")
	if len(out) != 1 || out[0].ID != "2" {
		t.Fatalf("want only Hair Spa, got %+v", out)
	}
	// tab picks up the inferred audience
	out = services.Filter(all, "", domain.AudienceFemale, "All")
	if len(out) != 2 {
		t.Fatalf("want Hair Spa and Bridal Makeup, got %+v", out)
	}
	// category narrows
	out = services.Filter(all, "", domain.AudienceMale, "Beard")
	if len(out) != 1 || out[0].ID != "4" {
		t.Fatalf("want Beard Styling, got %+v", out)
	}

	// tab matching is strict equality: a Unisex tag matches none of the
	// customer tabs
	withUnisex := append(all, domain.Service{ID: "5", Name: "Glow Massage", Category: "Massage", Type: domain.AudienceUnisex})
	for _, tab := range []string{domain.AudienceMale, domain.AudienceFemale, domain.AudienceKids} {
		out = services.Filter(withUnisex, "glow", tab, "All")
		if len(out) != 0 {
			t.Fatalf("tab %s: Unisex service should not match, got %+v", tab, out)
		}
	}
	out = services.Filter(withUnisex, "glow", domain.AudienceUnisex, "All")
	if len(out) != 1 || out[0].ID != "5" {
		t.Fatalf("Unisex tab: want Glow Massage, got %+v", out)
	}
}

func TestCategoriesChips(t *testing.T) {
	filtered := []domain.Service{
		{Name: "Haircut", Category: "Hair"},
		{Name: "Shave", Category: ""},
		{Name: "Hair Spa", Category: "Hair"},
		{Name: "Facial", Category: "Skin"},
	}
	got := services.Categories(filtered)
	want := []string{"All", "Hair", "General", "Skin"}
	if len(got) != len(want) {
		t.Fatalf("want %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("want %v, got %v", want, got)
		}
	}
}
