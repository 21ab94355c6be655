package engine

import (
	"github.com/arjunshenoy/funnelcast/internal/contract"
	"github.com/arjunshenoy/funnelcast/internal/domain"
)

// viewConv converts stored amounts to display amounts for one view. The two
// directions are intentionally asymmetric: money the business receives (work
// orders, other spends) is captured gross, money the agency spends on media
// is captured net, so each field needs its own conversion direction.
type viewConv struct {
	mult    float64 // applied to net-stored values
	divisor float64 // removes tax from gross-stored values in net view
	gross   bool
}

func newViewConv(view domain.ViewMode, taxPercent float64) viewConv {
	divisor := 1 + taxPercent/100
	mult := 1.0
	if view == domain.ViewGross {
		mult = divisor
	}
	return viewConv{mult: mult, divisor: divisor, gross: view == domain.ViewGross}
}

// displayGross converts a gross-stored amount (received budget, other spends).
func (c viewConv) displayGross(stored float64) float64 {
	if c.gross {
		return stored
	}
	return stored / c.divisor
}

// displayNet converts a net-stored amount (raw actual spends).
func (c viewConv) displayNet(stored float64) float64 {
	return stored * c.mult
}

// ComputePeriodReport rolls plan-side weeks and recorded actuals up over the
// closed week-index range [startWeek, endWeek] under the given view. The
// project's weeks must already carry derived fields (see DistributeWeeks).
// Life-to-date figures ignore the range and sum every recorded week.
func ComputePeriodReport(p *domain.Project, startWeek, endWeek int, view domain.ViewMode) contract.PeriodReport {
	conv := newViewConv(view, p.Plan.TaxPercent)

	var tgtLeads, tgtAP, tgtAD, planSpendPeriod float64
	var achLeads, achAP, achAD, perfSpendPeriod float64
	var achBookingsPeriod float64

	for _, w := range p.Weeks {
		if w.ID < startWeek || w.ID > endWeek {
			continue
		}
		tgtLeads += w.Leads
		tgtAP += w.AP
		tgtAD += w.AD
		if conv.gross {
			planSpendPeriod += w.SpendsAllIn
		} else {
			planSpendPeriod += w.SpendsBase
		}

		act, ok := p.Actuals[w.ID]
		if !ok {
			continue
		}
		achLeads += act.Leads
		achAP += act.AP
		achAD += act.AD
		perfSpendPeriod += conv.displayNet(act.Spends)
		achBookingsPeriod += act.Bookings
	}

	funnel := []contract.FunnelLine{
		funnelLine("Leads", tgtLeads, achLeads),
		funnelLine("Site Visits (AP)", tgtAP, achAP),
		funnelLine("Walk-ins (AD)", tgtAD, achAD),
	}

	// Planned efficiency comes from the period's planned spend; when the
	// period has no planned leads the plan CPL stands in as the target.
	tgtCPL := SafeDiv(planSpendPeriod, tgtLeads, p.Plan.CPL*conv.mult)
	tgtDigBookings := tgtAD * (p.Plan.WTBPercent / 100)
	efficiency := []contract.EfficiencyLine{
		{Metric: "CPL", Target: tgtCPL, Achieved: SafeDiv(perfSpendPeriod, achLeads, 0)},
		{Metric: "CPAP", Target: SafeDiv(planSpendPeriod, tgtAP, 0), Achieved: SafeDiv(perfSpendPeriod, achAP, 0)},
		{Metric: "CPW", Target: SafeDiv(planSpendPeriod, tgtAD, 0), Achieved: SafeDiv(perfSpendPeriod, achAD, 0)},
		{Metric: "CPB", Target: SafeDiv(planSpendPeriod, tgtDigBookings, 0), Achieved: SafeDiv(perfSpendPeriod, achBookingsPeriod, 0)},
	}

	return contract.PeriodReport{
		ProjectID:   p.ID,
		ProjectName: p.Name,
		View:        view,
		StartWeek:   startWeek,
		EndWeek:     endWeek,
		Funnel:      funnel,
		Efficiency:  efficiency,
		Budget:      computeBudget(p, conv),
		Lifetime:    ComputeLifetime(p),
	}
}

func funnelLine(metric string, target, achieved float64) contract.FunnelLine {
	pct := SafeDiv(achieved, target, 0) * 100
	return contract.FunnelLine{
		Metric:      metric,
		Target:      target,
		Achieved:    achieved,
		DeliveryPct: pct,
		Status:      domain.ClassifyDelivery(pct),
	}
}

func computeBudget(p *domain.Project, conv viewConv) contract.BudgetSummary {
	var planBase, planAllIn, perfSpendRaw float64
	for _, w := range p.Weeks {
		planBase += w.SpendsBase
		planAllIn += w.SpendsAllIn
		if act, ok := p.Actuals[w.ID]; ok {
			perfSpendRaw += act.Spends
		}
	}

	plannedSpend := planBase
	if conv.gross {
		plannedSpend = planAllIn
	}

	received := conv.displayGross(p.Plan.ReceivedBudget)
	perfSpend := conv.displayNet(perfSpendRaw)
	otherSpend := conv.displayGross(p.OtherSpends)
	totalSpend := perfSpend + otherSpend
	pending := received - totalSpend

	return contract.BudgetSummary{
		Received:         received,
		PerformanceSpend: perfSpend,
		OtherSpend:       otherSpend,
		TotalSpend:       totalSpend,
		Pending:          pending,
		PendingPct:       SafeDiv(pending, received, 0) * 100,
		PlannedSpend:     plannedSpend,
		Buffer:           received - plannedSpend,
		SpentPct:         SafeDiv(totalSpend, received, 0) * 100,
	}
}

// ComputeLifetime sums every recorded week's bookings into per-vertical
// revenue, ignoring any reporting-period filter. Revenue figures are in Cr.
func ComputeLifetime(p *domain.Project) contract.LifetimeSummary {
	summary := contract.LifetimeSummary{}

	for _, v := range domain.AllVerticals {
		field := domain.BookingField(v)
		var units float64
		for _, act := range p.Actuals {
			units += act.Get(field)
		}

		target := p.Plan.OverallBV * (p.Plan.ContributionPercent(v) / 100)
		achieved := units * p.Plan.ATS
		summary.Verticals = append(summary.Verticals, contract.VerticalRevenue{
			Vertical:       v,
			TargetBV:       target,
			AchievedBV:     achieved,
			DeficitBV:      target - achieved,
			AchievementPct: SafeDiv(achieved, target, 0) * 100,
		})

		summary.TotalAchievedUnits += units
		summary.TotalAchievedBV += achieved
		if v == domain.VerticalDigital {
			summary.DigitalDeficitBV = target - achieved
			summary.DigitalAchievementPct = SafeDiv(achieved, target, 0) * 100
		}
	}

	return summary
}
