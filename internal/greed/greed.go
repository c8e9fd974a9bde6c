// Package greed implements the greed meter: pure piecewise classification of
// an asking price against market statistics. Verdict, position text, and
// score are three classifiers over the same four numbers; they share the
// computed intermediates so the tables cannot drift apart.
package greed

import (
	"fmt"
	"math"

	"github.com/lagosrent/rentoracle/internal/domain"
)

// Evaluate scores an asking price against a price stat and returns the full
// greed-meter breakdown. It rejects non-finite or non-positive inputs and
// stats violating 0 < Min <= Avg <= Max; within the nominal dataset those
// never occur, but the boundary is guarded so a bad input can never produce a
// nonsensical score.
func Evaluate(asking float64, stat domain.PriceStat) (domain.Evaluation, error) {
	if !isPrice(asking) {
		return domain.Evaluation{}, &domain.InvalidPriceError{Field: "asking price", Value: asking}
	}
	if err := checkStat(stat); err != nil {
		return domain.Evaluation{}, err
	}

	percentDiff := (asking - stat.Avg) / stat.Avg * 100

	var percentAboveMax float64
	if asking > stat.Max {
		percentAboveMax = (asking - stat.Max) / stat.Max * 100
	}

	verdict, risk := classify(asking, stat, percentAboveMax)

	return domain.Evaluation{
		Verdict:            verdict,
		RiskLevel:          risk,
		PercentDiffFromAvg: percentDiff,
		PercentAboveMax:    percentAboveMax,
		Position:           position(asking, stat, percentAboveMax),
		GreedScore:         score(asking, stat, percentAboveMax),
	}, nil
}

// classify applies the verdict table in priority order; first match wins.
func classify(asking float64, stat domain.PriceStat, percentAboveMax float64) (domain.Verdict, domain.RiskLevel) {
	switch {
	case asking < stat.Min:
		return domain.VerdictGreatDeal, domain.RiskLow
	case asking <= stat.Max:
		return domain.VerdictFairPrice, domain.RiskLow
	case percentAboveMax <= 10:
		return domain.VerdictSlightlyOverpriced, domain.RiskModerate
	case percentAboveMax <= 20:
		return domain.VerdictOverpriced, domain.RiskHigh
	case percentAboveMax <= 50:
		return domain.VerdictExtremeGreed, domain.RiskVeryHigh
	default:
		return domain.VerdictHighwayRobbery, domain.RiskAvoid
	}
}

// position describes where the asking price sits in the fair range. It must
// stay consistent with the verdict table.
func position(asking float64, stat domain.PriceStat, percentAboveMax float64) string {
	switch {
	case asking < stat.Min:
		return "Below market minimum (unusual, check property condition)"
	case asking < stat.Avg:
		return "Below average (good negotiation or lower-end property)"
	case asking == stat.Avg:
		return "At market average (typical price)"
	case asking <= stat.Max:
		return "Above average but within range (higher-end property or premium features)"
	default:
		return fmt.Sprintf("Above market maximum by %.0f%% (likely overpriced)", percentAboveMax)
	}
}

// score maps the asking price to an integer 0-100, monotonic non-decreasing:
// 0 at Min, 40 at Avg, 60 at Max, saturating at 100 once the price reaches
// 1.5x Max. Degenerate spans (Avg == Min or Max == Avg) clamp the
// interpolation ratio to 1 instead of dividing by zero.
func score(asking float64, stat domain.PriceStat, percentAboveMax float64) int {
	switch {
	case asking <= stat.Min:
		return 0
	case asking <= stat.Avg:
		return int(ratio(asking-stat.Min, stat.Avg-stat.Min) * 40)
	case asking <= stat.Max:
		return int(40 + ratio(asking-stat.Avg, stat.Max-stat.Avg)*20)
	case percentAboveMax >= 50:
		return 100
	default:
		return int(60 + percentAboveMax/50*40)
	}
}

// ratio is num/den clamped to 1 when the span is degenerate (den == 0).
func ratio(num, den float64) float64 {
	if den == 0 {
		return 1
	}
	return num / den
}

// Recommendation returns tenant advice for a risk level. It depends on the
// risk level only, never on the numbers that produced it.
func Recommendation(risk domain.RiskLevel) string {
	switch risk {
	case domain.RiskLow:
		return "✅ This is a fair price. You can proceed with confidence."
	case domain.RiskModerate:
		return "⚠️ Slightly overpriced. Try negotiating down by 10-15%."
	case domain.RiskHigh:
		return "🚨 Overpriced! Negotiate hard or look for alternatives."
	case domain.RiskVeryHigh:
		return "🔥 AVOID. This landlord is exploiting tenants. Look elsewhere."
	case domain.RiskAvoid:
		return "💀 RUN! This is highway robbery. Report to authorities if necessary."
	default:
		return "Consult with a real estate agent."
	}
}

func isPrice(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

func checkStat(stat domain.PriceStat) error {
	switch {
	case !isPrice(stat.Min):
		return &domain.InvalidPriceError{Field: "market minimum", Value: stat.Min}
	case !isPrice(stat.Avg) || stat.Avg < stat.Min:
		return &domain.InvalidPriceError{Field: "market average", Value: stat.Avg}
	case !isPrice(stat.Max) || stat.Max < stat.Avg:
		return &domain.InvalidPriceError{Field: "market maximum", Value: stat.Max}
	}
	return nil
}
