package engine

import "github.com/arjunshenoy/funnelcast/internal/domain"

// DistributeWeeks applies the plan-derived totals across the week series
// using each week's distribution seeds, maintaining running cumulative sums.
// The input slice is not modified; the whole series is recomputed from
// scratch on every call, so there is no incremental state to invalidate.
//
// Distribution percentages are author-supplied and deliberately not validated
// to sum to 100: under- or over-allocation is a legitimate planning state
// the presentation layer surfaces but the engine does not reject.
func DistributeWeeks(weeks []domain.WeeklyData, m domain.CalculatedMetrics) []domain.WeeklyData {
	out := make([]domain.WeeklyData, len(weeks))

	var cumLeads, cumAP, cumAD float64
	for i, week := range weeks {
		leads := m.TargetLeads * (week.LeadDistribution / 100)
		cumLeads += leads

		ad := leads * (week.AdConversion / 100)
		ap := ad * domain.APPerAD
		cumAP += ap
		cumAD += ad

		week.Leads = leads
		week.CumulativeLeads = cumLeads
		week.AP = ap
		week.CumulativeAP = cumAP
		week.AD = ad
		week.CumulativeAD = cumAD
		week.SpendsBase = m.BaseBudget * (week.SpendDistribution / 100)
		week.SpendsAllIn = m.AllInBudget * (week.SpendDistribution / 100)

		out[i] = week
	}
	return out
}

// Recalculate derives metrics from the project's plan and redistributes its
// week series, returning a fresh copy with derived fields filled in.
func Recalculate(p *domain.Project) (*domain.Project, domain.CalculatedMetrics) {
	metrics := DeriveMetrics(p.Plan)
	cp := p.Clone()
	cp.Weeks = DistributeWeeks(cp.Weeks, metrics)
	return cp, metrics
}
