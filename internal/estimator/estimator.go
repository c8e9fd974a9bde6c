// Package estimator exposes the query surface over a loaded dataset: rent
// prediction with the optional greed meter, and tier comparison. Every call
// is a pure computation over the immutable dataset and caller input, so
// concurrent use needs no synchronization.
package estimator

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/lagosrent/rentoracle/internal/dataset"
	"github.com/lagosrent/rentoracle/internal/domain"
	"github.com/lagosrent/rentoracle/internal/greed"
	"github.com/lagosrent/rentoracle/internal/render"
)

// Estimator answers rent queries against a single immutable dataset.
type Estimator struct {
	data   *dataset.Dataset
	logger *slog.Logger
}

// New creates an Estimator over the given dataset.
func New(data *dataset.Dataset, logger *slog.Logger) *Estimator {
	return &Estimator{
		data:   data,
		logger: logger.With(slog.String("component", "estimator")),
	}
}

// Predict resolves the location, validates the bedroom count, and returns the
// fair range plus, when an asking price is supplied, the greed-meter
// analysis. Recoverable failures come back as the typed errors from the
// domain package; nothing panics past this boundary.
func (e *Estimator) Predict(ctx context.Context, location string, bedrooms int, asking *float64) (domain.Prediction, error) {
	area, err := e.data.Resolve(location)
	if err != nil {
		e.logger.DebugContext(ctx, "location not resolved",
			slog.String("location", location),
		)
		return domain.Prediction{}, err
	}

	stat, err := e.data.Pricing(area, bedrooms)
	if err != nil {
		return domain.Prediction{}, err
	}

	pred := domain.Prediction{
		Location:    area.Name,
		LGA:         area.LGA,
		Bedrooms:    bedrooms,
		Tier:        area.Tier,
		Description: area.Description,
		FairRange: domain.FairRange{
			Min:       stat.Min,
			Avg:       stat.Avg,
			Max:       stat.Max,
			Formatted: render.Range(stat),
		},
		MarketTrend:    stat.MarketTrend,
		Amenities:      area.Amenities,
		PopularEstates: area.PopularEstates,
	}

	if asking == nil {
		pred.Recommendation = fmt.Sprintf("Fair price range: %s", pred.FairRange.Formatted)
		return pred, nil
	}

	eval, err := greed.Evaluate(*asking, stat)
	if err != nil {
		return domain.Prediction{}, err
	}

	pred.AskingPrice = asking
	pred.GreedMeter = &eval
	pred.Recommendation = greed.Recommendation(eval.RiskLevel)

	e.logger.InfoContext(ctx, "prediction computed",
		slog.String("location", area.Name),
		slog.Int("bedrooms", bedrooms),
		slog.Float64("asking_price", *asking),
		slog.String("verdict", string(eval.Verdict)),
		slog.Int("greed_score", eval.GreedScore),
	)

	return pred, nil
}

// CompareTiers groups every area that has pricing for the bedroom count by
// tier and ranks each tier ascending by average price. The grouping is open:
// whatever tier values exist in the dataset become keys. The sort is stable
// so ties keep dataset order.
func (e *Estimator) CompareTiers(ctx context.Context, bedrooms int) (domain.TierComparison, error) {
	if !domain.ValidBedrooms(bedrooms) {
		return domain.TierComparison{}, &domain.InvalidBedroomsError{Bedrooms: bedrooms}
	}

	cmp := domain.TierComparison{
		Bedrooms: bedrooms,
		Tiers:    make(map[domain.Tier][]domain.TierEntry),
	}

	for _, area := range e.data.Areas() {
		stat, ok := area.Pricing[bedrooms]
		if !ok {
			continue
		}
		cmp.Tiers[area.Tier] = append(cmp.Tiers[area.Tier], domain.TierEntry{
			Area:     area.Name,
			AvgPrice: stat.Avg,
			Range:    render.Range(stat),
		})
	}

	for tier := range cmp.Tiers {
		entries := cmp.Tiers[tier]
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].AvgPrice < entries[j].AvgPrice
		})
	}

	e.logger.DebugContext(ctx, "tier comparison computed",
		slog.Int("bedrooms", bedrooms),
		slog.Int("tiers", len(cmp.Tiers)),
	)

	return cmp, nil
}
