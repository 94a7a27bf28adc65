package dashboard

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// The en-IN pattern groups the last three digits and then pairs (lakh, crore).
var indian = language.MustParse("en-IN")

// FormatRupees renders an amount with Indian digit grouping, e.g.
// 960000 as "₹9,60,000". Fractions are rounded to whole rupees.
func FormatRupees(amount float64) string {
	n := int64(math.Round(math.Abs(amount)))
	out := "₹" + message.NewPrinter(indian).Sprint(number.Decimal(n))
	if amount < 0 && n != 0 {
		out = "-" + out
	}
	return out
}
