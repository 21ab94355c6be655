package engine

import (
	"github.com/arjunshenoy/funnelcast/internal/contract"
	"github.com/arjunshenoy/funnelcast/internal/domain"
)

// ComputePortfolio sums the per-vertical target and achieved BV across every
// project in the set. Straight currency summation: a crore of a small project
// weighs the same as a crore of a large one, so the headline achievement
// percent is volume-weighted rather than project-count-weighted.
func ComputePortfolio(projects []*domain.Project, view domain.ViewMode) contract.PortfolioReport {
	report := contract.PortfolioReport{
		View:         view,
		ProjectCount: len(projects),
	}

	targets := map[domain.Vertical]float64{}
	achieved := map[domain.Vertical]float64{}

	for _, p := range projects {
		report.TotalPlanBV += p.Plan.OverallBV
		for _, v := range domain.AllVerticals {
			targets[v] += p.Plan.OverallBV * (p.Plan.ContributionPercent(v) / 100)

			field := domain.BookingField(v)
			for _, act := range p.Actuals {
				achieved[v] += act.Get(field) * p.Plan.ATS
			}
		}
	}

	for _, v := range domain.AllVerticals {
		report.Verticals = append(report.Verticals, contract.VerticalRevenue{
			Vertical:       v,
			TargetBV:       targets[v],
			AchievedBV:     achieved[v],
			DeficitBV:      targets[v] - achieved[v],
			AchievementPct: SafeDiv(achieved[v], targets[v], 0) * 100,
		})
		report.TotalAchievedBV += achieved[v]
	}

	digitalTarget := targets[domain.VerticalDigital]
	digitalAchieved := achieved[domain.VerticalDigital]
	report.DigitalDeficitBV = digitalTarget - digitalAchieved
	report.DigitalAchievementPct = SafeDiv(digitalAchieved, digitalTarget, 0) * 100
	report.DigitalContributionActualPct = SafeDiv(digitalAchieved, report.TotalAchievedBV, 0) * 100

	return report
}
