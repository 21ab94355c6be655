package domain

import (
	"fmt"
	"time"
)

// WeeklyData is one row of the 13-week forecast. The three distribution
// fields are the author-editable seeds; everything else is derived by the
// engine and recomputed in full on every change.
type WeeklyData struct {
	ID        int
	WeekLabel string
	DateRange string

	SpendDistribution float64 // % of budget this week
	LeadDistribution  float64 // % of leads this week
	AdConversion      float64 // % of this week's leads converting to walk-ins

	Leads           float64
	CumulativeLeads float64
	AP              float64 // site visits
	CumulativeAP    float64
	AD              float64 // confirmed walk-ins
	CumulativeAD    float64
	SpendsBase      float64
	SpendsAllIn     float64
}

// Default 13-week distribution curves: a two-week pre-launch ramp, a flat
// mid-campaign plateau and a two-week tail.
var (
	defaultSpendDist = [WeekCount]float64{0, 0, 7, 8, 11, 11, 13, 13, 13, 13, 11, 0, 0}
	defaultLeadDist  = [WeekCount]float64{0, 0, 7, 8, 11, 11, 13, 13, 13, 13, 11, 0, 0}
	defaultAdConv    = [WeekCount]float64{0, 0, 3, 3, 2.5, 2.5, 2.5, 2.7, 2.7, 2.7, 3.2, 3, 0}
)

// GenerateWeeks builds the fixed-length week series for a project starting at
// the given epoch, seeded with the default distribution curves.
func GenerateWeeks(start time.Time) []WeeklyData {
	weeks := make([]WeeklyData, WeekCount)
	for i := range weeks {
		weeks[i] = WeeklyData{
			ID:                i,
			WeekLabel:         fmt.Sprintf("Week %d", i+1),
			DateRange:         WeekDateRange(start, i),
			SpendDistribution: defaultSpendDist[i],
			LeadDistribution:  defaultLeadDist[i],
			AdConversion:      defaultAdConv[i],
		}
	}
	return weeks
}

// WeekDateRange returns the display label for a week index, e.g. "1 Oct - 7 Oct".
func WeekDateRange(start time.Time, weekID int) string {
	ws := start.AddDate(0, 0, weekID*DaysPerWeek)
	we := ws.AddDate(0, 0, DaysPerWeek-1)
	return fmt.Sprintf("%d %s - %d %s", ws.Day(), ws.Format("Jan"), we.Day(), we.Format("Jan"))
}

// WeekIndexForDate maps a calendar date onto a week index relative to the
// project start. Dates before the start map to -1; dates past the final week
// clamp to the last index.
func WeekIndexForDate(start, date time.Time) int {
	if date.Before(start) {
		return -1
	}
	days := int(date.Sub(start).Hours() / 24)
	idx := days / DaysPerWeek
	if idx > WeekCount-1 {
		idx = WeekCount - 1
	}
	return idx
}
