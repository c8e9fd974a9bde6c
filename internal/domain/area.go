package domain

// Tier is the qualitative pricing bracket assigned to an area. The bundled
// dataset uses the five brackets below, but nothing in the comparison layer
// enforces a closed set.
type Tier string

const (
	TierLuxury     Tier = "Luxury"
	TierPremium    Tier = "Premium"
	TierMidRange   Tier = "Mid-Range"
	TierAffordable Tier = "Affordable"
	TierBudget     Tier = "Budget"
)

// MinBedrooms and MaxBedrooms bound the bedroom counts the dataset carries.
const (
	MinBedrooms = 1
	MaxBedrooms = 4
)

// PriceStat holds annual rent statistics for one area and bedroom count.
// All amounts are naira. Invariant: 0 < Min <= Avg <= Max, enforced when the
// dataset is built.
type PriceStat struct {
	Min         float64 `json:"min"`
	Avg         float64 `json:"avg"`
	Max         float64 `json:"max"`
	MarketTrend string  `json:"market_trend"`
}

// Area is a single neighborhood record from the market dataset. Areas are
// immutable once the dataset is built.
type Area struct {
	Name           string            `json:"name"`
	LGA            string            `json:"lga"`
	Tier           Tier              `json:"tier"`
	Description    string            `json:"description"`
	Amenities      []string          `json:"amenities"`
	PopularEstates []string          `json:"popular_estates"`
	Pricing        map[int]PriceStat `json:"pricing"`
}

// Bedrooms returns the bedroom counts this area has pricing for, sorted
// ascending.
func (a Area) Bedrooms() []int {
	var counts []int
	for b := MinBedrooms; b <= MaxBedrooms; b++ {
		if _, ok := a.Pricing[b]; ok {
			counts = append(counts, b)
		}
	}
	return counts
}

// ValidBedrooms reports whether n is a bedroom count the system accepts at
// all, independent of whether any area has data for it.
func ValidBedrooms(n int) bool {
	return n >= MinBedrooms && n <= MaxBedrooms
}
