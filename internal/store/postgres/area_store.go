package postgres

import (
	"context"
	"fmt"

	"github.com/lagosrent/rentoracle/internal/domain"
)

// AreaStore loads the market dataset from PostgreSQL. It implements
// domain.DatasetSource; the schema lives in migrations/0001_create_areas.sql.
type AreaStore struct {
	client *Client
}

// NewAreaStore creates an AreaStore backed by the given client.
func NewAreaStore(client *Client) *AreaStore {
	return &AreaStore{client: client}
}

// Fetch reads every area and its pricing rows, preserving the dataset's
// position order. An empty areas table is treated as a missing dataset.
func (s *AreaStore) Fetch(ctx context.Context) ([]domain.Area, error) {
	const areaQuery = `
		SELECT id, name, lga, tier, description, amenities, popular_estates
		FROM areas
		ORDER BY position ASC`

	rows, err := s.client.pool.Query(ctx, areaQuery)
	if err != nil {
		return nil, fmt.Errorf("postgres: query areas: %w", err)
	}
	defer rows.Close()

	var (
		areas []domain.Area
		ids   []int
	)
	for rows.Next() {
		var (
			id   int
			a    domain.Area
			tier string
		)
		if err := rows.Scan(&id, &a.Name, &a.LGA, &tier, &a.Description,
			&a.Amenities, &a.PopularEstates); err != nil {
			return nil, fmt.Errorf("postgres: scan area: %w", err)
		}
		a.Tier = domain.Tier(tier)
		a.Pricing = make(map[int]domain.PriceStat)
		areas = append(areas, a)
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: areas rows: %w", err)
	}
	if len(areas) == 0 {
		return nil, fmt.Errorf("postgres: areas table is empty: %w", domain.ErrDatasetNotFound)
	}

	byID := make(map[int]int, len(ids))
	for i, id := range ids {
		byID[id] = i
	}

	const pricingQuery = `
		SELECT area_id, bedrooms, min_price, avg_price, max_price, market_trend
		FROM area_pricing`

	prows, err := s.client.pool.Query(ctx, pricingQuery)
	if err != nil {
		return nil, fmt.Errorf("postgres: query pricing: %w", err)
	}
	defer prows.Close()

	for prows.Next() {
		var (
			areaID   int
			bedrooms int
			stat     domain.PriceStat
		)
		if err := prows.Scan(&areaID, &bedrooms, &stat.Min, &stat.Avg,
			&stat.Max, &stat.MarketTrend); err != nil {
			return nil, fmt.Errorf("postgres: scan pricing: %w", err)
		}
		idx, ok := byID[areaID]
		if !ok {
			return nil, fmt.Errorf("postgres: pricing row for unknown area %d: %w",
				areaID, domain.ErrDatasetMalformed)
		}
		areas[idx].Pricing[bedrooms] = stat
	}
	if err := prows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: pricing rows: %w", err)
	}

	return areas, nil
}

// Close shuts down the underlying connection pool.
func (s *AreaStore) Close() {
	s.client.Close()
}

// Compile-time interface check.
var _ domain.DatasetSource = (*AreaStore)(nil)
