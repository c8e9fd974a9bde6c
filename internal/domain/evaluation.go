package domain

// Verdict is the headline classification of an asking price.
type Verdict string

const (
	VerdictGreatDeal          Verdict = "GREAT DEAL!"
	VerdictFairPrice          Verdict = "FAIR PRICE"
	VerdictSlightlyOverpriced Verdict = "SLIGHTLY OVERPRICED"
	VerdictOverpriced         Verdict = "OVERPRICED"
	VerdictExtremeGreed       Verdict = "EXTREME GREED"
	VerdictHighwayRobbery     Verdict = "HIGHWAY ROBBERY"
)

// RiskLevel grades how risky it is for a tenant to take a listing at the
// asking price.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low Risk"
	RiskModerate RiskLevel = "Moderate Risk"
	RiskHigh     RiskLevel = "High Risk"
	RiskVeryHigh RiskLevel = "Very High Risk"
	RiskAvoid    RiskLevel = "AVOID"
)

// Emoji returns the marker the greed meter attaches to each verdict.
func (v Verdict) Emoji() string {
	switch v {
	case VerdictGreatDeal:
		return "🎉"
	case VerdictFairPrice:
		return "✅"
	case VerdictSlightlyOverpriced:
		return "⚠️"
	case VerdictOverpriced:
		return "🚨"
	case VerdictExtremeGreed:
		return "🔥"
	case VerdictHighwayRobbery:
		return "💀"
	default:
		return ""
	}
}

// Evaluation is the greed-meter output for one asking price against one
// PriceStat. It is ephemeral: produced per query and never stored.
type Evaluation struct {
	Verdict            Verdict
	RiskLevel          RiskLevel
	PercentDiffFromAvg float64
	PercentAboveMax    float64
	Position           string
	GreedScore         int
}

// FairRange is the market-justified interval for an area and bedroom count.
type FairRange struct {
	Min       float64
	Avg       float64
	Max       float64
	Formatted string
}

// Prediction is the full answer to a rent query.
type Prediction struct {
	Location       string
	LGA            string
	Bedrooms       int
	Tier           Tier
	Description    string
	FairRange      FairRange
	MarketTrend    string
	Amenities      []string
	PopularEstates []string

	// AskingPrice and GreedMeter are set only when the caller supplied an
	// asking price.
	AskingPrice *float64
	GreedMeter  *Evaluation

	Recommendation string
}

// TierEntry is one area inside a tier comparison, ranked by average price.
type TierEntry struct {
	Area     string
	AvgPrice float64
	Range    string
}

// TierComparison groups every area with pricing for a bedroom count by tier.
// Entries within a tier are sorted ascending by AvgPrice; ties keep dataset
// order.
type TierComparison struct {
	Bedrooms int
	Tiers    map[Tier][]TierEntry
}
