package dataset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lagosrent/rentoracle/internal/domain"
)

const validDoc = `{
  "areas": [
    {
      "name": "Yaba",
      "lga": "Lagos Mainland",
      "tier": "Mid-Range",
      "description": "Tech cluster",
      "amenities": ["Tech hubs"],
      "popular_estates": ["Alagomeji"],
      "pricing": {
        "1_bedroom": {"min": 400000, "avg": 600000, "max": 800000, "market_trend": "Rising"}
      }
    }
  ]
}`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "market_data.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestFileSourceFetch(t *testing.T) {
	src := NewFileSource(writeTemp(t, validDoc))

	areas, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(areas) != 1 {
		t.Fatalf("got %d areas, want 1", len(areas))
	}

	a := areas[0]
	if a.Name != "Yaba" || a.Tier != domain.TierMidRange {
		t.Errorf("area = %+v, want Yaba/Mid-Range", a)
	}
	stat, ok := a.Pricing[1]
	if !ok {
		t.Fatal("1-bedroom pricing missing")
	}
	if stat.Min != 400000 || stat.Avg != 600000 || stat.Max != 800000 {
		t.Errorf("stat = %+v", stat)
	}
	if stat.MarketTrend != "Rising" {
		t.Errorf("market trend = %q", stat.MarketTrend)
	}
}

func TestFileSourceMissingFile(t *testing.T) {
	src := NewFileSource(filepath.Join(t.TempDir(), "nope.json"))

	_, err := src.Fetch(context.Background())
	if !errors.Is(err, domain.ErrDatasetNotFound) {
		t.Errorf("error %v does not wrap ErrDatasetNotFound", err)
	}
}

func TestDecodeAreasMalformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"invalid json", `{"areas": [`},
		{"no areas", `{"areas": []}`},
		{"unknown pricing key", `{"areas":[{"name":"X","tier":"Budget","pricing":{"5_bedroom":{"min":1,"avg":2,"max":3}}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeAreas(strings.NewReader(tt.doc))
			if !errors.Is(err, domain.ErrDatasetMalformed) {
				t.Errorf("error %v does not wrap ErrDatasetMalformed", err)
			}
		})
	}
}

// The bundled dataset must always load and satisfy the stats the concrete
// scenarios rely on.
func TestBundledDataset(t *testing.T) {
	src := NewFileSource(filepath.Join("..", "..", "data", "market_data.json"))

	areas, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch bundled dataset: %v", err)
	}

	d, err := New(areas)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if d.Len() != 15 {
		t.Errorf("bundled dataset has %d areas, want 15", d.Len())
	}

	area, err := d.Resolve("Yaba")
	if err != nil {
		t.Fatalf("Resolve yaba: %v", err)
	}
	stat, err := d.Pricing(area, 1)
	if err != nil {
		t.Fatalf("Pricing: %v", err)
	}
	if stat.Min != 400000 || stat.Avg != 600000 || stat.Max != 800000 {
		t.Errorf("yaba 1-bedroom stat = %+v", stat)
	}
}

func TestBedroomKey(t *testing.T) {
	if got := BedroomKey(2); got != "2_bedroom" {
		t.Errorf("BedroomKey(2) = %q", got)
	}
}
