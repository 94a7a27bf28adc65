package analysis

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Result is the analysis service's answer for one uploaded document.
type Result struct {
	Summary             string    `json:"summary"`
	Requirements        []string  `json:"requirements"`
	RecommendedProducts []Product `json:"recommended_products"`
	TotalEstimatedCost  float64   `json:"total_estimated_cost"`
}

// Product is one catalog item recommended for the RFP.
type Product struct {
	Name       string     `json:"name"`
	SKUID      string     `json:"sku_id"`
	MatchScore MatchScore `json:"match_score"`
	UnitPrice  float64    `json:"unit_price"`
}

// MatchScore is a whole percentage. On the wire it travels as "92%";
// plain numbers are accepted when decoding.
type MatchScore int

func (s MatchScore) String() string {
	return strconv.Itoa(int(s)) + "%"
}

// MarshalJSON encodes the score as a percent string.
func (s MatchScore) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts "92%", "92" or 92.
func (s *MatchScore) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("match_score: %w", err)
	}
	switch v := raw.(type) {
	case float64:
		*s = MatchScore(int(v))
		return nil
	case string:
		trimmed := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(v), "%"))
		if trimmed == "" {
			*s = 0
			return nil
		}
		n, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return fmt.Errorf("match_score %q: %w", v, err)
		}
		*s = MatchScore(int(n))
		return nil
	case nil:
		*s = 0
		return nil
	default:
		return fmt.Errorf("match_score: unexpected type %T", raw)
	}
}
