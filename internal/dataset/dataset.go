// Package dataset holds the immutable in-memory market dataset and its
// loading helpers. A Dataset is built exactly once at startup from a
// DatasetSource and is read-only afterwards, so the query path needs no
// locking even when embedded in a concurrent caller.
package dataset

import (
	"fmt"
	"strings"

	"github.com/lagosrent/rentoracle/internal/domain"
)

// Dataset is the process-lifetime collection of area records, keyed by
// lowercased trimmed name. It is an explicitly constructed value rather than
// package state so tests and embedders can hold several at once.
type Dataset struct {
	areas  []domain.Area
	byName map[string]int
}

// Normalize produces the lookup key for a location name.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// New builds a Dataset from area records, preserving their order. It rejects
// duplicate names (case-insensitive) and any pricing entry violating
// 0 < Min <= Avg <= Max; both are dataset defects, not query-time errors.
func New(areas []domain.Area) (*Dataset, error) {
	d := &Dataset{
		areas:  make([]domain.Area, 0, len(areas)),
		byName: make(map[string]int, len(areas)),
	}

	for _, a := range areas {
		key := Normalize(a.Name)
		if key == "" {
			return nil, fmt.Errorf("dataset: area with empty name: %w", domain.ErrDatasetMalformed)
		}
		if _, dup := d.byName[key]; dup {
			return nil, fmt.Errorf("dataset: duplicate area %q: %w", a.Name, domain.ErrDatasetMalformed)
		}
		if a.Tier == "" {
			return nil, fmt.Errorf("dataset: area %q has no tier: %w", a.Name, domain.ErrDatasetMalformed)
		}
		if len(a.Pricing) == 0 {
			return nil, fmt.Errorf("dataset: area %q has no pricing: %w", a.Name, domain.ErrDatasetMalformed)
		}
		for bedrooms, stat := range a.Pricing {
			if !domain.ValidBedrooms(bedrooms) {
				return nil, fmt.Errorf("dataset: area %q has pricing for %d bedrooms: %w",
					a.Name, bedrooms, domain.ErrDatasetMalformed)
			}
			if err := checkStat(a.Name, bedrooms, stat); err != nil {
				return nil, err
			}
		}

		d.byName[key] = len(d.areas)
		d.areas = append(d.areas, a)
	}

	return d, nil
}

func checkStat(area string, bedrooms int, stat domain.PriceStat) error {
	switch {
	case stat.Min <= 0:
		return fmt.Errorf("dataset: %s %d-bedroom min %v is not positive: %w",
			area, bedrooms, stat.Min, domain.ErrDatasetMalformed)
	case stat.Avg < stat.Min:
		return fmt.Errorf("dataset: %s %d-bedroom avg %v below min %v: %w",
			area, bedrooms, stat.Avg, stat.Min, domain.ErrDatasetMalformed)
	case stat.Max < stat.Avg:
		return fmt.Errorf("dataset: %s %d-bedroom max %v below avg %v: %w",
			area, bedrooms, stat.Max, stat.Avg, domain.ErrDatasetMalformed)
	}
	return nil
}

// Resolve finds an area by name, ignoring case and surrounding whitespace.
// The lookup is exact match on the normalized key; no fuzzy or prefix
// matching. A miss returns *domain.LocationNotFoundError carrying every known
// name so callers can present alternatives.
func (d *Dataset) Resolve(name string) (domain.Area, error) {
	idx, ok := d.byName[Normalize(name)]
	if !ok {
		return domain.Area{}, &domain.LocationNotFoundError{
			Location:  name,
			Available: d.Names(),
		}
	}
	return d.areas[idx], nil
}

// Pricing extracts the stats for a bedroom count from an area. Bedroom counts
// outside the supported set are a validation failure, distinct from a valid
// count the area simply has no data for.
func (d *Dataset) Pricing(area domain.Area, bedrooms int) (domain.PriceStat, error) {
	if !domain.ValidBedrooms(bedrooms) {
		return domain.PriceStat{}, &domain.InvalidBedroomsError{Bedrooms: bedrooms}
	}
	stat, ok := area.Pricing[bedrooms]
	if !ok {
		return domain.PriceStat{}, &domain.PricingUnavailableError{
			Location:  area.Name,
			Bedrooms:  bedrooms,
			Available: area.Bedrooms(),
		}
	}
	return stat, nil
}

// Names returns the normalized location names in dataset order.
func (d *Dataset) Names() []string {
	names := make([]string, len(d.areas))
	for i, a := range d.areas {
		names[i] = Normalize(a.Name)
	}
	return names
}

// Areas returns the area records in dataset order. Callers must not mutate
// the returned slice contents.
func (d *Dataset) Areas() []domain.Area {
	out := make([]domain.Area, len(d.areas))
	copy(out, d.areas)
	return out
}

// Len returns the number of areas.
func (d *Dataset) Len() int { return len(d.areas) }
