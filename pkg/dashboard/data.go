// Package dashboard holds the demo data shown on the inbox and analytics
// tabs.
package dashboard

import "strings"

// Status is where an RFP sits in the bid pipeline.
type Status string

const (
	StatusQualified      Status = "Qualified"
	StatusProcessing     Status = "Processing"
	StatusActionRequired Status = "Action Required"
	StatusRejected       Status = "Rejected"
)

// RFP is one tender picked up from a procurement portal.
type RFP struct {
	ID       string
	Client   string
	Value    string
	Status   Status
	Received string
	// Match is a percentage such as "92%", or "Pending".
	Match string
}

// MatchPercent returns the numeric match, or false while it is pending.
func (r RFP) MatchPercent() (int, bool) {
	s := strings.TrimSuffix(r.Match, "%")
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, s != ""
}

// Strong reports whether the match is in the 90s, which the inbox
// highlights.
func (r RFP) Strong() bool {
	p, ok := r.MatchPercent()
	return ok && p >= 90
}

// Inbox returns the recent RFPs, newest first.
func Inbox() []RFP {
	return []RFP{
		{ID: "RFP-2025-001", Client: "Metro Rail Corp", Value: "₹4.5 Cr", Status: StatusQualified, Received: "2 hrs ago", Match: "92%"},
		{ID: "RFP-2025-002", Client: "Greenfield Airport", Value: "₹12.0 Cr", Status: StatusProcessing, Received: "4 hrs ago", Match: "Pending"},
		{ID: "RFP-2025-003", Client: "City Hospital Ext", Value: "₹85 L", Status: StatusActionRequired, Received: "1 day ago", Match: "95%"},
		{ID: "RFP-2025-004", Client: "Tech Park Facade", Value: "₹2.1 Cr", Status: StatusRejected, Received: "2 days ago", Match: "15%"},
	}
}

// InboxSubtitle describes where the inbox is fed from.
const InboxSubtitle = "Real-time monitoring from 50+ portals (Gem, TendersInfo, etc.)"

// Metric is a headline number on the analytics tab.
type Metric struct {
	Title  string
	Value  string
	Change string
}

// Metrics returns the analytics headline cards.
func Metrics() []Metric {
	return []Metric{
		{Title: "Win Rate", Value: "85%", Change: "+70%"},
		{Title: "Processing Time", Value: "18 Hrs", Change: "-95%"},
		{Title: "Est. Revenue", Value: "₹98 Cr", Change: "+2.5x"},
		{Title: "RFPs Processed", Value: "342", Change: "Year to Date"},
	}
}

// WinRatePoint compares monthly win rates before and after automation.
type WinRatePoint struct {
	Month  string
	Manual int
	AI     int
}

// WinRate returns the win-rate series.
func WinRate() []WinRatePoint {
	return []WinRatePoint{
		{Month: "Jan", Manual: 15, AI: 40},
		{Month: "Feb", Manual: 18, AI: 55},
		{Month: "Mar", Manual: 16, AI: 68},
		{Month: "Apr", Manual: 14, AI: 85},
	}
}

// ProcessingTime is the effort per RFP for one way of working.
type ProcessingTime struct {
	Name  string
	Hours int
}

// ProcessingTimes returns hours spent per RFP, manual versus automated.
func ProcessingTimes() []ProcessingTime {
	return []ProcessingTime{
		{Name: "Manual", Hours: 480},
		{Name: "Vector Prime", Hours: 18},
	}
}
