package dataset

import (
	"errors"
	"testing"

	"github.com/lagosrent/rentoracle/internal/domain"
)

func fixtureAreas() []domain.Area {
	return []domain.Area{
		{
			Name: "Lekki Phase 1", LGA: "Eti-Osa", Tier: domain.TierPremium,
			Pricing: map[int]domain.PriceStat{
				1: {Min: 1200000, Avg: 1800000, Max: 2500000},
				2: {Min: 1800000, Avg: 2500000, Max: 3500000},
			},
		},
		{
			Name: "Yaba", LGA: "Lagos Mainland", Tier: domain.TierMidRange,
			Pricing: map[int]domain.PriceStat{
				1: {Min: 400000, Avg: 600000, Max: 800000},
				2: {Min: 600000, Avg: 850000, Max: 1200000},
				3: {Min: 850000, Avg: 1200000, Max: 1700000},
			},
		},
	}
}

func mustDataset(t *testing.T, areas []domain.Area) *Dataset {
	t.Helper()
	d, err := New(areas)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return d
}

func TestResolveIgnoresCaseAndWhitespace(t *testing.T) {
	d := mustDataset(t, fixtureAreas())

	for _, name := range []string{"Lekki Phase 1", "lekki phase 1", "  LEKKI phase 1 ", "LEKKI PHASE 1"} {
		area, err := d.Resolve(name)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", name, err)
		}
		if area.Name != "Lekki Phase 1" {
			t.Errorf("Resolve(%q) = %q, want canonical name", name, area.Name)
		}
	}
}

func TestResolveUnknownLocation(t *testing.T) {
	d := mustDataset(t, fixtureAreas())

	_, err := d.Resolve("Banana Island")
	if err == nil {
		t.Fatal("expected error for unknown location")
	}
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("error %v does not wrap ErrNotFound", err)
	}

	var locErr *domain.LocationNotFoundError
	if !errors.As(err, &locErr) {
		t.Fatalf("error %T is not a LocationNotFoundError", err)
	}
	if len(locErr.Available) != 2 {
		t.Errorf("Available has %d entries, want 2", len(locErr.Available))
	}
	if locErr.Available[0] != "lekki phase 1" || locErr.Available[1] != "yaba" {
		t.Errorf("Available = %v, want lowercased names in dataset order", locErr.Available)
	}
}

func TestPricingInvalidBedrooms(t *testing.T) {
	d := mustDataset(t, fixtureAreas())
	area, _ := d.Resolve("yaba")

	for _, bedrooms := range []int{0, 5, -1} {
		_, err := d.Pricing(area, bedrooms)
		if err == nil {
			t.Fatalf("Pricing(%d): expected error", bedrooms)
		}
		var bedErr *domain.InvalidBedroomsError
		if !errors.As(err, &bedErr) {
			t.Fatalf("Pricing(%d): error %T is not InvalidBedroomsError", bedrooms, err)
		}
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("Pricing(%d): error does not wrap ErrInvalidInput", bedrooms)
		}
		// Must be distinguishable from a lookup miss.
		if errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Pricing(%d): invalid bedrooms reported as not-found", bedrooms)
		}
	}
}

func TestPricingUnavailable(t *testing.T) {
	d := mustDataset(t, fixtureAreas())
	area, _ := d.Resolve("yaba")

	_, err := d.Pricing(area, 4)
	if err == nil {
		t.Fatal("expected error for missing 4-bedroom data")
	}
	var unavailErr *domain.PricingUnavailableError
	if !errors.As(err, &unavailErr) {
		t.Fatalf("error %T is not PricingUnavailableError", err)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("error %v does not wrap ErrNotFound", err)
	}

	want := []int{1, 2, 3}
	if len(unavailErr.Available) != len(want) {
		t.Fatalf("Available = %v, want %v", unavailErr.Available, want)
	}
	for i, n := range want {
		if unavailErr.Available[i] != n {
			t.Fatalf("Available = %v, want %v", unavailErr.Available, want)
		}
	}
}

func TestPricingReturnsStat(t *testing.T) {
	d := mustDataset(t, fixtureAreas())
	area, _ := d.Resolve("yaba")

	stat, err := d.Pricing(area, 1)
	if err != nil {
		t.Fatalf("Pricing: %v", err)
	}
	if stat.Min != 400000 || stat.Avg != 600000 || stat.Max != 800000 {
		t.Errorf("stat = %+v, want yaba 1-bedroom numbers", stat)
	}
}

func TestNewRejectsBadDatasets(t *testing.T) {
	tests := []struct {
		name  string
		areas []domain.Area
	}{
		{
			"duplicate name different case",
			append(fixtureAreas(), domain.Area{
				Name: "YABA", Tier: domain.TierMidRange,
				Pricing: map[int]domain.PriceStat{1: {Min: 1, Avg: 2, Max: 3}},
			}),
		},
		{
			"empty name",
			[]domain.Area{{Name: "  ", Tier: domain.TierBudget,
				Pricing: map[int]domain.PriceStat{1: {Min: 1, Avg: 2, Max: 3}}}},
		},
		{
			"missing tier",
			[]domain.Area{{Name: "Somewhere",
				Pricing: map[int]domain.PriceStat{1: {Min: 1, Avg: 2, Max: 3}}}},
		},
		{
			"no pricing",
			[]domain.Area{{Name: "Somewhere", Tier: domain.TierBudget}},
		},
		{
			"unsupported bedroom count",
			[]domain.Area{{Name: "Somewhere", Tier: domain.TierBudget,
				Pricing: map[int]domain.PriceStat{6: {Min: 1, Avg: 2, Max: 3}}}},
		},
		{
			"non-positive min",
			[]domain.Area{{Name: "Somewhere", Tier: domain.TierBudget,
				Pricing: map[int]domain.PriceStat{1: {Min: 0, Avg: 2, Max: 3}}}},
		},
		{
			"avg below min",
			[]domain.Area{{Name: "Somewhere", Tier: domain.TierBudget,
				Pricing: map[int]domain.PriceStat{1: {Min: 5, Avg: 2, Max: 6}}}},
		},
		{
			"max below avg",
			[]domain.Area{{Name: "Somewhere", Tier: domain.TierBudget,
				Pricing: map[int]domain.PriceStat{1: {Min: 1, Avg: 4, Max: 3}}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.areas)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, domain.ErrDatasetMalformed) {
				t.Errorf("error %v does not wrap ErrDatasetMalformed", err)
			}
		})
	}
}

func TestAreasPreservesOrder(t *testing.T) {
	d := mustDataset(t, fixtureAreas())
	areas := d.Areas()
	if len(areas) != 2 || areas[0].Name != "Lekki Phase 1" || areas[1].Name != "Yaba" {
		t.Errorf("Areas() order changed: %v", areas)
	}
}
