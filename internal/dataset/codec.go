package dataset

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lagosrent/rentoracle/internal/domain"
)

// document is the wire shape of the market data JSON: a top-level "areas"
// list with pricing keyed "1_bedroom".."4_bedroom".
type document struct {
	Areas []areaRecord `json:"areas"`
}

type areaRecord struct {
	Name           string                      `json:"name"`
	LGA            string                      `json:"lga"`
	Tier           string                      `json:"tier"`
	Description    string                      `json:"description"`
	Amenities      []string                    `json:"amenities"`
	PopularEstates []string                    `json:"popular_estates"`
	Pricing        map[string]domain.PriceStat `json:"pricing"`
}

// bedroomKeys maps the dataset's string pricing keys to bedroom counts.
var bedroomKeys = map[string]int{
	"1_bedroom": 1,
	"2_bedroom": 2,
	"3_bedroom": 3,
	"4_bedroom": 4,
}

// BedroomKey renders the wire form of a bedroom count, e.g. "2_bedroom".
func BedroomKey(bedrooms int) string {
	return fmt.Sprintf("%d_bedroom", bedrooms)
}

// DecodeAreas parses a market data document from r into area records. It
// validates shape only (parseable JSON, known pricing keys, at least one
// area); numeric invariants are checked by New so every source goes through
// the same gate.
func DecodeAreas(r io.Reader) ([]domain.Area, error) {
	var doc document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("dataset: decode: %v: %w", err, domain.ErrDatasetMalformed)
	}
	if len(doc.Areas) == 0 {
		return nil, fmt.Errorf("dataset: document has no areas: %w", domain.ErrDatasetMalformed)
	}

	areas := make([]domain.Area, 0, len(doc.Areas))
	for _, rec := range doc.Areas {
		pricing := make(map[int]domain.PriceStat, len(rec.Pricing))
		for key, stat := range rec.Pricing {
			bedrooms, ok := bedroomKeys[key]
			if !ok {
				return nil, fmt.Errorf("dataset: area %q has unknown pricing key %q: %w",
					rec.Name, key, domain.ErrDatasetMalformed)
			}
			pricing[bedrooms] = stat
		}
		areas = append(areas, domain.Area{
			Name:           rec.Name,
			LGA:            rec.LGA,
			Tier:           domain.Tier(rec.Tier),
			Description:    rec.Description,
			Amenities:      rec.Amenities,
			PopularEstates: rec.PopularEstates,
			Pricing:        pricing,
		})
	}
	return areas, nil
}
