package contract

import "github.com/arjunshenoy/funnelcast/internal/domain"

// FunnelLine is one plan-vs-actuals row of a period report.
type FunnelLine struct {
	Metric      string
	Target      float64
	Achieved    float64
	DeliveryPct float64
	Status      domain.DeliveryStatus
}

// EfficiencyLine compares a planned cost-per-X ratio against the achieved one.
type EfficiencyLine struct {
	Metric   string
	Target   float64
	Achieved float64
}

// BudgetSummary carries the view-converted budget position. All amounts are
// display amounts in the report's view.
type BudgetSummary struct {
	Received         float64
	PerformanceSpend float64 // life-to-date recorded media spend
	OtherSpend       float64
	TotalSpend       float64
	Pending          float64
	PendingPct       float64
	PlannedSpend     float64 // full 13-week planned spend
	Buffer           float64
	SpentPct         float64
}

// VerticalRevenue is the life-to-date revenue position of one vertical, in Cr.
type VerticalRevenue struct {
	Vertical       domain.Vertical
	TargetBV       float64
	AchievedBV     float64
	DeficitBV      float64 // positive = shortfall
	AchievementPct float64
}

// LifetimeSummary is the life-to-date revenue block, ignoring the period filter.
type LifetimeSummary struct {
	Verticals             []VerticalRevenue
	TotalAchievedUnits    float64
	TotalAchievedBV       float64
	DigitalDeficitBV      float64
	DigitalAchievementPct float64
}

// PeriodReport bundles everything the aggregation engine produces for one
// project over one reporting window.
type PeriodReport struct {
	ProjectID   string
	ProjectName string
	View        domain.ViewMode
	StartWeek   int
	EndWeek     int

	Funnel     []FunnelLine
	Efficiency []EfficiencyLine
	Budget     BudgetSummary
	Lifetime   LifetimeSummary
}

// PortfolioReport is the organization-wide rollup across a set of projects.
// Sums are straight currency sums; the achievement percent is therefore
// volume-weighted, not project-count-weighted.
type PortfolioReport struct {
	View         domain.ViewMode
	ProjectCount int
	TotalPlanBV  float64

	Verticals             []VerticalRevenue
	TotalAchievedBV       float64
	DigitalDeficitBV      float64
	DigitalAchievementPct float64

	// DigitalContributionActualPct is digital's share of achieved BV, as
	// opposed to its planned contribution share.
	DigitalContributionActualPct float64
}
