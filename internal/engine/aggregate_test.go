package engine

import (
	"testing"

	"github.com/arjunshenoy/funnelcast/internal/domain"
	"github.com/arjunshenoy/funnelcast/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportingProject(t *testing.T) *domain.Project {
	t.Helper()
	p := testutil.NewTestProject("Skyline",
		testutil.WithActuals(testutil.ThreeWeeksOfActuals()),
		testutil.WithReceivedBudget(20_000_000), // gross
		testutil.WithOtherSpends(590_000),       // gross
	)
	calc, _ := Recalculate(p)
	return calc
}

func TestPeriodReportFunnelDelivery(t *testing.T) {
	p := reportingProject(t)

	r := ComputePeriodReport(p, 0, 2, domain.ViewNet)

	require.Len(t, r.Funnel, 3)

	leads := r.Funnel[0]
	assert.Equal(t, "Leads", leads.Metric)
	assert.InDelta(t, 243.06, leads.Target, 0.01)
	assert.InDelta(t, 229, leads.Achieved, 1e-9)
	assert.InDelta(t, 94.22, leads.DeliveryPct, 0.01)
	assert.Equal(t, domain.DeliveryOnTrack, leads.Status)

	ad := r.Funnel[2]
	assert.InDelta(t, 7.2917, ad.Target, 0.001)
	assert.InDelta(t, 12, ad.Achieved, 1e-9)
	assert.Equal(t, domain.DeliveryOnTrack, ad.Status)
}

func TestPeriodReportEfficiency(t *testing.T) {
	p := reportingProject(t)

	r := ComputePeriodReport(p, 0, 2, domain.ViewNet)

	require.Len(t, r.Efficiency, 4)

	// Spend and lead curves coincide by default, so the planned CPL over any
	// period with planned leads equals the plan CPL.
	cpl := r.Efficiency[0]
	assert.Equal(t, "CPL", cpl.Metric)
	assert.InDelta(t, 4819, cpl.Target, 0.01)
	assert.InDelta(t, 3543.36, cpl.Achieved, 0.01)
}

func TestPeriodReportEmptyPeriodFallsBackToPlanCPL(t *testing.T) {
	p := reportingProject(t)

	// Weeks 12-13 carry zero lead distribution.
	net := ComputePeriodReport(p, 11, 12, domain.ViewNet)
	assert.InDelta(t, 4819, net.Efficiency[0].Target, 1e-6)

	gross := ComputePeriodReport(p, 11, 12, domain.ViewGross)
	assert.InDelta(t, 4819*1.18, gross.Efficiency[0].Target, 1e-6)
}

func TestPeriodReportZeroTargetZeroAchievedIsOffTrack(t *testing.T) {
	p := testutil.NewTestProject("Skyline")
	calc, _ := Recalculate(p)

	r := ComputePeriodReport(calc, 11, 12, domain.ViewNet)

	for _, line := range r.Funnel {
		assert.Zero(t, line.DeliveryPct)
		assert.Equal(t, domain.DeliveryOffTrack, line.Status)
	}
}

func TestBudgetSummaryNetView(t *testing.T) {
	p := reportingProject(t)

	r := ComputePeriodReport(p, 0, 2, domain.ViewNet)
	b := r.Budget

	// Gross-stored amounts divide down; net-stored spends pass through.
	assert.InDelta(t, 16_949_152.54, b.Received, 0.01)
	assert.InDelta(t, 811_429, b.PerformanceSpend, 0.01)
	assert.InDelta(t, 500_000, b.OtherSpend, 0.01)
	assert.InDelta(t, 1_311_429, b.TotalSpend, 0.01)
	assert.InDelta(t, b.Received-b.TotalSpend, b.Pending, 1e-6)
	assert.InDelta(t, 16_732_638.89, b.PlannedSpend, 1)
	assert.InDelta(t, b.Received-b.PlannedSpend, b.Buffer, 1e-6)
}

func TestBudgetSummaryGrossView(t *testing.T) {
	p := reportingProject(t)

	b := ComputePeriodReport(p, 0, 2, domain.ViewGross).Budget

	assert.InDelta(t, 20_000_000, b.Received, 1e-6)
	assert.InDelta(t, 811_429*1.18, b.PerformanceSpend, 0.01)
	assert.InDelta(t, 590_000, b.OtherSpend, 1e-6)
	assert.InDelta(t, 19_744_513.89, b.PlannedSpend, 1)
}

func TestEmptyActualsReportIsAllZero(t *testing.T) {
	p := testutil.NewTestProject("Skyline",
		testutil.WithReceivedBudget(20_000_000))
	calc, _ := Recalculate(p)

	r := ComputePeriodReport(calc, 0, 12, domain.ViewGross)

	for _, line := range r.Funnel {
		assert.Zero(t, line.Achieved)
		assert.Zero(t, line.DeliveryPct)
	}
	for _, line := range r.Efficiency {
		assert.Zero(t, line.Achieved)
	}
	assert.Zero(t, r.Lifetime.TotalAchievedBV)
	// Nothing spent: pending equals the displayed received figure exactly.
	assert.Equal(t, r.Budget.Received, r.Budget.Pending)
	assert.Equal(t, 20_000_000.0, r.Budget.Received)
}

func TestBudgetSummaryNoReceivedBudget(t *testing.T) {
	p := testutil.NewTestProject("Skyline",
		testutil.WithActuals(testutil.ThreeWeeksOfActuals()))
	calc, _ := Recalculate(p)

	b := ComputePeriodReport(calc, 0, 2, domain.ViewNet).Budget

	assert.Zero(t, b.Received)
	assert.InDelta(t, -b.TotalSpend, b.Pending, 1e-6)
	// Percentage guards: no division by a zero received figure.
	assert.Zero(t, b.PendingPct)
	assert.Zero(t, b.SpentPct)
}

func TestViewConversionRoundTrip(t *testing.T) {
	for _, tax := range []float64{0, 5, 18, 28} {
		net := newViewConv(domain.ViewNet, tax)
		gross := newViewConv(domain.ViewGross, tax)

		stored := 1_234_567.89
		// Gross-stored: divide down for net display, multiply back up.
		assert.InDelta(t, stored, net.displayGross(stored)*net.divisor, 1e-6, "tax %.0f", tax)
		// Net-stored: multiply up for gross display, divide back down.
		assert.InDelta(t, stored, gross.displayNet(stored)/gross.divisor, 1e-6, "tax %.0f", tax)
	}
}

func TestLifetimeSummaryIgnoresPeriodFilter(t *testing.T) {
	p := reportingProject(t)

	narrow := ComputePeriodReport(p, 5, 6, domain.ViewNet).Lifetime
	wide := ComputePeriodReport(p, 0, 12, domain.ViewNet).Lifetime

	assert.Equal(t, wide, narrow)
}

func TestLifetimeSummaryPerVertical(t *testing.T) {
	p := reportingProject(t)

	lt := ComputeLifetime(p)
	require.Len(t, lt.Verticals, 5)

	digital := lt.Verticals[0]
	assert.Equal(t, domain.VerticalDigital, digital.Vertical)
	assert.InDelta(t, 43.75, digital.TargetBV, 1e-9)
	assert.InDelta(t, 14, digital.AchievedBV, 1e-9) // 2 bookings x 7 Cr
	assert.InDelta(t, 29.75, digital.DeficitBV, 1e-9)
	assert.InDelta(t, 32.0, digital.AchievementPct, 0.01)

	presales := lt.Verticals[1]
	assert.InDelta(t, 8.75, presales.TargetBV, 1e-9)
	assert.InDelta(t, 7, presales.AchievedBV, 1e-9)
	assert.InDelta(t, 80.0, presales.AchievementPct, 0.01)

	assert.InDelta(t, 4, lt.TotalAchievedUnits, 1e-9)
	assert.InDelta(t, 28, lt.TotalAchievedBV, 1e-9)
	assert.InDelta(t, 29.75, lt.DigitalDeficitBV, 1e-9)
}
