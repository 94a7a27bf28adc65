package chat

import "strings"

// Intent names the canned topic a reply was chosen for.
type Intent string

const (
	IntentPipelineStatus Intent = "pipeline_status"
	IntentExpired        Intent = "expired"
	IntentTotals         Intent = "totals"
	IntentSummary        Intent = "project_summary"
	IntentWarranty       Intent = "warranty"
	IntentWeatherproof   Intent = "weatherproofing"
	IntentPricing        Intent = "pricing"
	IntentProducts       Intent = "products"
	IntentFallback       Intent = "fallback"
)

// Rule maps a keyword group to a fixed reply. A rule matches when the
// lower-cased input contains any of its keywords.
type Rule struct {
	Intent   Intent
	Keywords []string
	Response string
}

// Matches reports whether normalized contains one of the rule's keywords.
// normalized must already be lower-cased.
func (r Rule) Matches(normalized string) bool {
	for _, kw := range r.Keywords {
		if kw != "" && strings.Contains(normalized, kw) {
			return true
		}
	}
	return false
}

// FallbackResponse is returned when no rule matches.
const FallbackResponse = "I can help with:\n" +
	"• **Active** or **expired** RFPs\n" +
	"• **Totals** processed and bid\n" +
	"• The project **summary**\n" +
	"• **Warranty** clauses\n" +
	"• **Waterproofing** recommendations\n" +
	"• **Pricing** and margins\n" +
	"• Recommended **products** and SKUs"

var defaultRules = []Rule{
	{
		Intent:   IntentPipelineStatus,
		Keywords: []string{"active", "current", "open"},
		Response: "You have **12 active RFPs** in the pipeline:\n" +
			"• **5** Qualified\n" +
			"• **4** Processing\n" +
			"• **3** Action Required",
	},
	{
		Intent:   IntentExpired,
		Keywords: []string{"expired", "old", "closed"},
		Response: "**3 RFPs** expired in the last 30 days without a submission.\n" +
			"Would you like me to draft follow-up emails to those clients?",
	},
	{
		Intent:   IntentTotals,
		Keywords: []string{"total", "how many"},
		Response: "Vector Prime has processed **342 RFPs** this year.\n" +
			"**128** bids were submitted, **85%** of them won.",
	},
	{
		Intent:   IntentSummary,
		Keywords: []string{"summary", "about"},
		Response: "**Blue Horizon Corporate Wing**\n" +
			"Expansion project requiring high-performance exterior waterproofing " +
			"and premium washable interior finishes.",
	},
	{
		Intent:   IntentWarranty,
		Keywords: []string{"warranty", "guarantee"},
		Response: "Clause 7.2 requires a **10-year warranty** on all exterior coatings.\n" +
			"**Apex Ultima Protek** carries a matching 10-year manufacturer guarantee.",
	},
	{
		Intent:   IntentWeatherproof,
		Keywords: []string{"water", "rain"},
		Response: "I recommend **Apex Ultima Protek** (AP-EXT-005) for the facade.\n" +
			"It is rated for heavy monsoon exposure with **waterproofing** " +
			"and **anti-algal** protection.",
	},
	{
		Intent:   IntentPricing,
		Keywords: []string{"price", "cost", "value"},
		Response: "Estimated project value: **₹9,60,000** at 500 units per SKU.\n" +
			"Projected margin: **22%**, verified against the current price list.",
	},
	{
		Intent:   IntentProducts,
		Keywords: []string{"sku", "product"},
		Response: "Recommended products:\n" +
			"1. **Apex Ultima Protek** (AP-EXT-005), 98% match\n" +
			"2. **Apcolite Premium** (AP-IND-009), 95% match\n" +
			"3. **Royale Aspira** (AP-ROY-001), 90% match",
	},
}

// DefaultRules returns a copy of the built-in rule table in priority order.
func DefaultRules() []Rule {
	return cloneRules(defaultRules)
}

// Matcher picks a canned reply for free text. Rules are tried in order and
// the first match wins.
type Matcher struct {
	rules    []Rule
	fallback string
}

// NewMatcher creates a matcher over rules. Keywords are lower-cased once here
// so matching only has to normalise the input. An empty fallback uses
// FallbackResponse.
func NewMatcher(rules []Rule, fallback string) *Matcher {
	if fallback == "" {
		fallback = FallbackResponse
	}
	cloned := cloneRules(rules)
	for i := range cloned {
		for j, kw := range cloned[i].Keywords {
			cloned[i].Keywords[j] = strings.ToLower(kw)
		}
	}
	return &Matcher{rules: cloned, fallback: fallback}
}

// DefaultMatcher returns a matcher over DefaultRules.
func DefaultMatcher() *Matcher {
	return NewMatcher(defaultRules, FallbackResponse)
}

// Match returns the intent and reply for input. It never fails: input that
// matches nothing yields IntentFallback and the fallback text.
func (m *Matcher) Match(input string) (Intent, string) {
	normalized := strings.ToLower(input)
	for _, rule := range m.rules {
		if rule.Matches(normalized) {
			return rule.Intent, rule.Response
		}
	}
	return IntentFallback, m.fallback
}

// Reply returns just the reply text for input.
func (m *Matcher) Reply(input string) string {
	_, reply := m.Match(input)
	return reply
}

// Rules returns a copy of the matcher's rules in evaluation order.
func (m *Matcher) Rules() []Rule {
	return cloneRules(m.rules)
}

func cloneRules(rules []Rule) []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		out[i] = Rule{
			Intent:   r.Intent,
			Keywords: append([]string(nil), r.Keywords...),
			Response: r.Response,
		}
	}
	return out
}
