package render

import (
	"strings"
	"testing"

	"github.com/lagosrent/rentoracle/internal/domain"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{400000, "₦400k"},
		{600000, "₦600k"},
		{999999, "₦1000k"},
		{1000000, "₦1.0M"},
		{2500000, "₦2.5M"},
		{13000000, "₦13.0M"},
	}

	for _, tt := range tests {
		if got := Money(tt.amount); got != tt.want {
			t.Errorf("Money(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestMoneyFull(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{800000, "₦800,000"},
		{2500000, "₦2,500,000"},
		{100000, "₦100,000"},
	}

	for _, tt := range tests {
		if got := MoneyFull(tt.amount); got != tt.want {
			t.Errorf("MoneyFull(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestRange(t *testing.T) {
	stat := domain.PriceStat{Min: 400000, Avg: 600000, Max: 800000}
	want := "₦400k - ₦800k (avg: ₦600k)"
	if got := Range(stat); got != want {
		t.Errorf("Range = %q, want %q", got, want)
	}
}

func TestScoreBar(t *testing.T) {
	tests := []struct {
		score  int
		filled int
	}{
		{0, 0},
		{50, 20},
		{100, 40},
		{-5, 0},
		{140, 40},
	}

	for _, tt := range tests {
		bar := ScoreBar(tt.score)
		filled := strings.Count(bar, "█")
		empty := strings.Count(bar, "░")
		if filled != tt.filled || filled+empty != 40 {
			t.Errorf("ScoreBar(%d): %d filled of %d cells, want %d of 40",
				tt.score, filled, filled+empty, tt.filled)
		}
	}
}

func samplePrediction() domain.Prediction {
	asking := 700000.0
	return domain.Prediction{
		Location:    "Yaba",
		LGA:         "Lagos Mainland",
		Bedrooms:    1,
		Tier:        domain.TierMidRange,
		Description: "Tech cluster",
		FairRange: domain.FairRange{
			Min: 400000, Avg: 600000, Max: 800000,
			Formatted: "₦400k - ₦800k (avg: ₦600k)",
		},
		MarketTrend:    "Rising",
		Amenities:      []string{"Tech hubs", "Rail access"},
		PopularEstates: []string{"Alagomeji"},
		AskingPrice:    &asking,
		GreedMeter: &domain.Evaluation{
			Verdict:            domain.VerdictFairPrice,
			RiskLevel:          domain.RiskLow,
			PercentDiffFromAvg: 16.7,
			PercentAboveMax:    0,
			Position:           "Above average but within range (higher-end property or premium features)",
			GreedScore:         50,
		},
		Recommendation: "✅ This is a fair price. You can proceed with confidence.",
	}
}

func TestReport(t *testing.T) {
	out := Report(samplePrediction())

	for _, want := range []string{
		"NAIJA RENT ESTIMATOR - Yaba",
		"LOCATION: Yaba (Lagos Mainland LGA)",
		"BEDROOMS: 1-bedroom apartment",
		"TIER: Mid-Range",
		"Minimum: ₦400,000",
		"Average: ₦600,000",
		"Maximum: ₦800,000",
		"Summary: ₦400k - ₦800k (avg: ₦600k)",
		"MARKET TREND: Rising",
		"TYPICAL AMENITIES: Tech hubs, Rail access",
		"POPULAR ESTATES: Alagomeji",
		"ASKING PRICE: ₦700,000",
		"GREED METER ANALYSIS:",
		"Verdict: ✅ FAIR PRICE",
		"Risk Level: Low Risk",
		"Difference from Average: +16.7%",
		"Greed Score: 50/100",
		"RECOMMENDATION:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}

	// Not over maximum, so the over-max warning must be absent.
	if strings.Contains(out, "Above Maximum by") {
		t.Error("report shows over-max warning for an in-range price")
	}
}

func TestReportWithoutGreedMeter(t *testing.T) {
	pred := samplePrediction()
	pred.AskingPrice = nil
	pred.GreedMeter = nil
	pred.Recommendation = "Fair price range: ₦400k - ₦800k (avg: ₦600k)"

	out := Report(pred)
	if strings.Contains(out, "GREED METER") {
		t.Error("greed meter section present without an asking price")
	}
	if !strings.Contains(out, "Fair price range:") {
		t.Error("fair-range recommendation missing")
	}
}

func TestErrorRendering(t *testing.T) {
	err := &domain.LocationNotFoundError{
		Location:  "Banana Island",
		Available: []string{"yaba", "ikeja"},
	}

	out := Error(err)
	if !strings.Contains(out, `location "Banana Island" not found`) {
		t.Errorf("banner missing error text: %q", out)
	}
	if !strings.Contains(out, "HINT:") {
		t.Error("banner missing hint")
	}
	if !strings.Contains(out, "yaba, ikeja") {
		t.Error("banner missing available locations")
	}
}

func TestErrorRenderingBedrooms(t *testing.T) {
	out := Error(&domain.PricingUnavailableError{
		Location: "Agege", Bedrooms: 4, Available: []int{1, 2, 3},
	})
	if !strings.Contains(out, "Available bedrooms: 1, 2, 3") {
		t.Errorf("banner missing bedroom list: %q", out)
	}
}

func TestComparison(t *testing.T) {
	cmp := domain.TierComparison{
		Bedrooms: 1,
		Tiers: map[domain.Tier][]domain.TierEntry{
			domain.TierBudget: {{Area: "Agege", AvgPrice: 180000, Range: "₦100k - ₦280k (avg: ₦180k)"}},
			domain.TierLuxury: {{Area: "Ikoyi", AvgPrice: 4000000, Range: "₦3.0M - ₦6.0M (avg: ₦4.0M)"}},
		},
	}

	out := Comparison(cmp)
	if !strings.Contains(out, "TIER COMPARISON - 1-bedroom") {
		t.Error("header missing")
	}
	// Luxury prints before Budget regardless of map iteration order.
	if strings.Index(out, "Luxury:") > strings.Index(out, "Budget:") {
		t.Error("tiers not in conventional order")
	}
}
