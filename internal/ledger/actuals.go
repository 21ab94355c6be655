// Package ledger applies edits to a project's recorded-performance ledgers.
// Every function is pure and copy-on-write: the input project is never
// modified, and structurally invalid edits (unknown week, unknown channel
// field) return the input unchanged so bulk update calls stay idempotent.
package ledger

import (
	"math"

	"github.com/arjunshenoy/funnelcast/internal/domain"
	"github.com/arjunshenoy/funnelcast/internal/engine"
)

// RecordActual upserts one field of one week's actuals entry, creating a
// zero-valued entry if the week has none. Sign and magnitude are not
// validated; negative actuals are accepted as corrections.
func RecordActual(p *domain.Project, weekID int, field domain.ActualField, value float64) *domain.Project {
	if weekID < 0 || weekID >= len(p.Weeks) {
		return p
	}
	if !domain.ValidActualFields[string(field)] {
		return p
	}

	cp := p.Clone()
	entry := cp.Actuals[weekID]
	entry.WeekID = weekID
	entry.Set(field, engine.Normalize(value))
	cp.Actuals[weekID] = entry
	return cp
}

// ReviseTargetFromActual sets a vertical's life-to-date revenue to a target
// figure by back-solving the booking units it implies and applying the whole
// delta to week 0's bucket, which serves as the catch-all adjustment week.
//
// The same edit rewrites the plan's contribution percent for that vertical to
// newRevenueCr/overallBV*100 (2 decimals): once actuals exist, the target mix
// is treated as derivable from them rather than as an independently authored
// figure. Callers that want to drop that coupling remove it here, in one
// place, without touching the generic RecordActual path.
func ReviseTargetFromActual(p *domain.Project, vertical domain.Vertical, newRevenueCr float64) *domain.Project {
	field := domain.BookingField(vertical)
	if field == "" {
		return p
	}
	newRevenueCr = engine.Normalize(newRevenueCr)

	ats := p.Plan.ATS
	if ats <= 0 {
		ats = 1
	}
	overallBV := p.Plan.OverallBV
	if overallBV <= 0 {
		overallBV = 1
	}

	impliedUnits := newRevenueCr / ats
	var currentUnits float64
	for _, act := range p.Actuals {
		currentUnits += act.Get(field)
	}
	delta := impliedUnits - currentUnits

	cp := p.Clone()

	week0 := cp.Actuals[0]
	week0.WeekID = 0
	week0.Set(field, week0.Get(field)+delta)
	cp.Actuals[0] = week0

	pct := newRevenueCr / overallBV * 100
	cp.Plan.SetContributionPercent(vertical, math.Round(pct*100)/100)

	return cp
}

// RecordChannelPerformance upserts one field of a channel's recorded funnel,
// creating a zero-valued entry on first edit. The channel ledger is sparse
// and independent of the week-indexed actuals.
func RecordChannelPerformance(p *domain.Project, channelID string, field domain.ChannelField, value float64) *domain.Project {
	if !domain.ValidChannelFields[string(field)] {
		return p
	}

	cp := p.Clone()
	for i := range cp.ChannelPerformance {
		if cp.ChannelPerformance[i].ChannelID == channelID {
			cp.ChannelPerformance[i].Set(field, engine.Normalize(value))
			return cp
		}
	}

	entry := domain.ChannelPerformance{ChannelID: channelID}
	entry.Set(field, engine.Normalize(value))
	cp.ChannelPerformance = append(cp.ChannelPerformance, entry)
	return cp
}
