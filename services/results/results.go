package results

import (
	"sort"
	"strconv"
	"strings"

	"github.com/asimmohammad/corptravel/models"
)

// PolicyFilter narrows results by policy classification.
type PolicyFilter string

const (
	PolicyAll PolicyFilter = "all"
	PolicyIn  PolicyFilter = "in"
	PolicyOut PolicyFilter = "out"
)

// SortKey orders results. Recommended keeps the server's ordering.
type SortKey string

const (
	SortRecommended SortKey = "recommended"
	SortPriceLow    SortKey = "price-low"
	SortPriceHigh   SortKey = "price-high"
)

// FilterSpec is the full filter/sort specification applied to a result list.
// Zero values mean "no constraint" for MaxPrice and MinRating.
type FilterSpec struct {
	Policy    PolicyFilter
	Text      string
	MaxPrice  float64
	MinRating float64
	Sort      SortKey
}

// Apply filters and sorts a list of offers. The input is never mutated; the
// returned slice is freshly allocated. Sorting is stable, so equal-price
// offers keep their relative order from the input, and applying the same spec
// twice yields the same result as applying it once.
func Apply(offers []models.Offer, spec FilterSpec) []models.Offer {
	out := make([]models.Offer, 0, len(offers))
	text := strings.ToLower(strings.TrimSpace(spec.Text))
	for _, o := range offers {
		if !matchesPolicy(o, spec.Policy) {
			continue
		}
		if text != "" && !strings.Contains(strings.ToLower(o.Name), text) {
			continue
		}
		if spec.MaxPrice > 0 && o.Price > spec.MaxPrice {
			continue
		}
		if spec.MinRating > 0 {
			rating, ok := ratingOf(o)
			if !ok || rating < spec.MinRating {
				continue
			}
		}
		out = append(out, o)
	}

	switch spec.Sort {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	}
	return out
}

func matchesPolicy(o models.Offer, f PolicyFilter) bool {
	switch f {
	case PolicyIn:
		return o.PolicyStatus == models.PolicyIn
	case PolicyOut:
		return o.PolicyStatus == models.PolicyOut
	default:
		return true
	}
}

// ratingOf reads an offer's rating from its details map. Search responses
// deliver JSON numbers as float64, but string-encoded ratings are tolerated.
func ratingOf(o models.Offer) (float64, bool) {
	raw, ok := o.Details["rating"]
	if !ok {
		return 0, false
	}
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
