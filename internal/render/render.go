// Package render turns predictions and query errors into display text. It is
// strictly presentation: it never mutates or re-derives the evaluator's
// classification, so the same result can back any front end.
package render

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lagosrent/rentoracle/internal/domain"
)

const rule = "======================================================================"

const scoreBarCells = 40

// Report renders the full multi-line text block for a prediction.
func Report(pred domain.Prediction) string {
	var b strings.Builder

	line(&b, rule)
	line(&b, "🏠 NAIJA RENT ESTIMATOR - %s", pred.Location)
	line(&b, rule)
	line(&b, "")

	line(&b, "📍 LOCATION: %s (%s LGA)", pred.Location, pred.LGA)
	line(&b, "🛏️  BEDROOMS: %d-bedroom apartment", pred.Bedrooms)
	line(&b, "🏆 TIER: %s", pred.Tier)
	line(&b, "📝 DESCRIPTION: %s", pred.Description)
	line(&b, "")

	line(&b, "💰 FAIR PRICE RANGE (Annual):")
	line(&b, "   Minimum: %s", MoneyFull(pred.FairRange.Min))
	line(&b, "   Average: %s", MoneyFull(pred.FairRange.Avg))
	line(&b, "   Maximum: %s", MoneyFull(pred.FairRange.Max))
	line(&b, "   Summary: %s", pred.FairRange.Formatted)
	line(&b, "")

	line(&b, "📈 MARKET TREND: %s", pred.MarketTrend)
	line(&b, "")

	if len(pred.Amenities) > 0 {
		line(&b, "✨ TYPICAL AMENITIES: %s", strings.Join(pred.Amenities, ", "))
		line(&b, "")
	}
	if len(pred.PopularEstates) > 0 {
		line(&b, "🏘️  POPULAR ESTATES: %s", strings.Join(pred.PopularEstates, ", "))
		line(&b, "")
	}

	if pred.GreedMeter != nil && pred.AskingPrice != nil {
		gm := pred.GreedMeter
		line(&b, "💵 ASKING PRICE: %s", MoneyFull(*pred.AskingPrice))
		line(&b, "")
		line(&b, "🔥 GREED METER ANALYSIS:")
		line(&b, "   Verdict: %s %s", gm.Verdict.Emoji(), gm.Verdict)
		line(&b, "   Risk Level: %s", gm.RiskLevel)
		line(&b, "   Position: %s", gm.Position)
		line(&b, "   Difference from Average: %+.1f%%", gm.PercentDiffFromAvg)
		if gm.PercentAboveMax > 0 {
			line(&b, "   ⚠️  Above Maximum by: %.1f%%", gm.PercentAboveMax)
		}
		line(&b, "   Greed Score: %d/100 %s", gm.GreedScore, ScoreBar(gm.GreedScore))
		line(&b, "")
	}

	line(&b, "💡 RECOMMENDATION:")
	line(&b, "   %s", pred.Recommendation)
	line(&b, "")
	line(&b, rule)
	b.WriteString("🏠 Naija-Rent-Estimator - Protecting tenants from overpriced listings")

	return b.String()
}

// ScoreBar draws the 40-cell greed score bar, filled proportionally to
// score/100.
func ScoreBar(score int) string {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	filled := score * scoreBarCells / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", scoreBarCells-filled)
}

// Error renders a recoverable query error as a banner, including the hint and
// available-location list when the error carries them.
func Error(err error) string {
	var b strings.Builder
	line(&b, rule)
	line(&b, "❌ ERROR: %s", err.Error())

	type hinter interface{ Hint() string }
	var h hinter
	if errors.As(err, &h) {
		line(&b, "💡 HINT: %s", h.Hint())
	}

	var locErr *domain.LocationNotFoundError
	if errors.As(err, &locErr) && len(locErr.Available) > 0 {
		line(&b, "🗺️  Available: %s", strings.Join(locErr.Available, ", "))
	}

	var priceErr *domain.PricingUnavailableError
	if errors.As(err, &priceErr) && len(priceErr.Available) > 0 {
		parts := make([]string, len(priceErr.Available))
		for i, n := range priceErr.Available {
			parts[i] = fmt.Sprintf("%d", n)
		}
		line(&b, "🛏️  Available bedrooms: %s", strings.Join(parts, ", "))
	}

	b.WriteString(rule)
	return b.String()
}

// Comparison renders a tier comparison table. Tiers print in the conventional
// order (Luxury first) with any unknown tiers appended alphabetically.
func Comparison(cmp domain.TierComparison) string {
	var b strings.Builder
	line(&b, rule)
	line(&b, "🏆 TIER COMPARISON - %d-bedroom apartments", cmp.Bedrooms)
	line(&b, rule)

	for _, tier := range tierOrder(cmp.Tiers) {
		entries := cmp.Tiers[tier]
		line(&b, "")
		line(&b, "%s:", tier)
		for _, e := range entries {
			line(&b, "   %-16s %s", e.Area, e.Range)
		}
	}

	line(&b, "")
	b.WriteString(rule)
	return b.String()
}

// conventionalTiers is the display order for the dataset's five tiers.
var conventionalTiers = []domain.Tier{
	domain.TierLuxury,
	domain.TierPremium,
	domain.TierMidRange,
	domain.TierAffordable,
	domain.TierBudget,
}

func tierOrder(tiers map[domain.Tier][]domain.TierEntry) []domain.Tier {
	var order []domain.Tier
	seen := make(map[domain.Tier]bool, len(tiers))
	for _, t := range conventionalTiers {
		if _, ok := tiers[t]; ok {
			order = append(order, t)
			seen[t] = true
		}
	}
	var extra []domain.Tier
	for t := range tiers {
		if !seen[t] {
			extra = append(extra, t)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(order, extra...)
}

func line(b *strings.Builder, format string, args ...any) {
	fmt.Fprintf(b, format, args...)
	b.WriteByte('\n')
}
