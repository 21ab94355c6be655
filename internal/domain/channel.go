package domain

import "strings"

// MediaChannel is one row of the channel-level media plan. Independent of the
// week-based budget allocation.
type MediaChannel struct {
	ID                string
	Name              string
	AllocationPercent float64
	EstimatedCPL      float64
	CAPIPercent       float64 // lead -> qualified conversion
	CAPIToAPPercent   float64
	APToADPercent     float64
	IsCustom          bool
}

// ChannelPerformance is the recorded funnel for one media channel, a ledger
// independent from the week-indexed actuals.
type ChannelPerformance struct {
	ChannelID       string
	Spends          float64
	Leads           float64
	OpenAttempted   float64
	Contacted       float64
	AssignedToSales float64
	AP              float64
	AD              float64
	Bookings        float64
	Lost            float64
}

// ChannelField names one editable field of a ChannelPerformance entry.
type ChannelField string

const (
	ChannelSpends        ChannelField = "spends"
	ChannelLeads         ChannelField = "leads"
	ChannelOpenAttempted ChannelField = "open_attempted"
	ChannelContacted     ChannelField = "contacted"
	ChannelAssigned      ChannelField = "assigned_to_sales"
	ChannelAP            ChannelField = "ap"
	ChannelAD            ChannelField = "ad"
	ChannelBookings      ChannelField = "bookings"
	ChannelLost          ChannelField = "lost"
)

// ValidChannelFields is the canonical set of accepted channel field names.
var ValidChannelFields = map[string]bool{
	"spends": true, "leads": true, "open_attempted": true, "contacted": true,
	"assigned_to_sales": true, "ap": true, "ad": true, "bookings": true, "lost": true,
}

// Set assigns the named field.
func (c *ChannelPerformance) Set(f ChannelField, v float64) {
	switch f {
	case ChannelSpends:
		c.Spends = v
	case ChannelLeads:
		c.Leads = v
	case ChannelOpenAttempted:
		c.OpenAttempted = v
	case ChannelContacted:
		c.Contacted = v
	case ChannelAssigned:
		c.AssignedToSales = v
	case ChannelAP:
		c.AP = v
	case ChannelAD:
		c.AD = v
	case ChannelBookings:
		c.Bookings = v
	case ChannelLost:
		c.Lost = v
	}
}

// DefaultMediaPlan returns the channel mix a new project starts with.
func DefaultMediaPlan() []MediaChannel {
	return []MediaChannel{
		{ID: "fb", Name: "Meta (FB/Insta)", AllocationPercent: 40, EstimatedCPL: 4200, CAPIPercent: 35, CAPIToAPPercent: 30, APToADPercent: 50},
		{ID: "google", Name: "Google Search", AllocationPercent: 30, EstimatedCPL: 3800, CAPIPercent: 40, CAPIToAPPercent: 35, APToADPercent: 55},
		{ID: "display", Name: "Google Display", AllocationPercent: 10, EstimatedCPL: 2500, CAPIPercent: 20, CAPIToAPPercent: 15, APToADPercent: 30},
		{ID: "portals", Name: "Property Portals", AllocationPercent: 15, EstimatedCPL: 3200, CAPIPercent: 45, CAPIToAPPercent: 40, APToADPercent: 60},
		{ID: "native", Name: "Native / Others", AllocationPercent: 5, EstimatedCPL: 5500, CAPIPercent: 25, CAPIToAPPercent: 20, APToADPercent: 40},
	}
}

// ChannelDefaults returns the starting CPL and qualified-lead percent for a
// custom channel, keyed off well-known substrings in its name.
func ChannelDefaults(name string) (cpl, capiPct float64) {
	cpl, capiPct = 2500, 30
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "linkedin"):
		cpl, capiPct = 5500, 60
	case strings.Contains(lower, "youtube"):
		cpl, capiPct = 1200, 15
	case strings.Contains(lower, "print"):
		cpl, capiPct = 12000, 25
	case strings.Contains(lower, "hoarding"), strings.Contains(lower, "ooh"):
		cpl, capiPct = 50000, 10
	case strings.Contains(lower, "sms"), strings.Contains(lower, "whatsapp"):
		cpl, capiPct = 150, 5
	case strings.Contains(lower, "google discovery"):
		cpl, capiPct = 2200, 25
	case strings.Contains(lower, "native"):
		cpl, capiPct = 3000, 20
	case strings.Contains(lower, "radio"):
		cpl, capiPct = 4000, 15
	}
	return cpl, capiPct
}
