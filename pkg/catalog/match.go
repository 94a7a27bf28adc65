package catalog

import (
	"strings"

	"github.com/elliotchance/pie/v2"
)

const (
	baseScore    = 85
	scorePerHit  = 5
	maxScore     = 98
	maxSuggested = 3
)

// DefaultVolume is the unit count priced into the estimate.
const DefaultVolume = 500

// Recommendation is a catalog item scored against a set of requirements.
type Recommendation struct {
	Item
	Hits       int
	MatchScore int
}

// Quote is the outcome of matching requirements against the catalog.
type Quote struct {
	Recommendations []Recommendation
	// TotalEstimatedCost covers every matching item, not only the ones
	// recommended.
	TotalEstimatedCost float64
}

// Hits counts the requirements an item satisfies. A requirement is met by a
// feature when either string contains the other, ignoring case.
func Hits(item Item, requirements []string) int {
	features := pie.Map(item.Features, strings.ToLower)
	hits := 0
	for _, req := range requirements {
		req = strings.ToLower(req)
		if req == "" {
			continue
		}
		if pie.FindFirstUsing(features, func(f string) bool {
			return strings.Contains(f, req) || strings.Contains(req, f)
		}) >= 0 {
			hits++
		}
	}
	return hits
}

// Score converts a hit count into a match percentage.
func Score(hits int) int {
	if hits <= 0 {
		return 0
	}
	return min(baseScore+scorePerHit*hits, maxScore)
}

// Match scores every item, keeps those with at least one hit, orders them
// by score (catalog order breaks ties) and returns the top three together
// with the total cost of all matches at volume units each.
func (c Catalog) Match(requirements []string, volume int) Quote {
	if volume <= 0 {
		volume = DefaultVolume
	}

	scored := pie.Map(c.Items, func(item Item) Recommendation {
		hits := Hits(item, requirements)
		return Recommendation{Item: item, Hits: hits, MatchScore: Score(hits)}
	})
	matches := pie.Filter(scored, func(r Recommendation) bool {
		return r.Hits > 0
	})

	var total float64
	for _, r := range matches {
		total += r.UnitPrice * float64(volume)
	}

	ranked := pie.SortStableUsing(matches, func(a, b Recommendation) bool {
		return a.MatchScore > b.MatchScore
	})

	return Quote{
		Recommendations:    pie.Top(ranked, maxSuggested),
		TotalEstimatedCost: total,
	}
}
