package ledger

import (
	"math"
	"testing"

	"github.com/arjunshenoy/funnelcast/internal/domain"
	"github.com/arjunshenoy/funnelcast/internal/engine"
	"github.com/arjunshenoy/funnelcast/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordActualCreatesEntryOnFirstEdit(t *testing.T) {
	p := testutil.NewTestProject("Skyline")
	require.Empty(t, p.Actuals)

	next := RecordActual(p, 3, domain.ActualLeads, 42)

	require.NotSame(t, p, next)
	assert.Empty(t, p.Actuals, "input untouched")
	assert.Equal(t, 42.0, next.Actuals[3].Leads)
	assert.Equal(t, 3, next.Actuals[3].WeekID)
}

func TestRecordActualUpsertsExistingWeek(t *testing.T) {
	p := testutil.NewTestProject("Skyline",
		testutil.WithActuals(testutil.ThreeWeeksOfActuals()))

	next := RecordActual(p, 1, domain.ActualLeads, 99)

	assert.Equal(t, 99.0, next.Actuals[1].Leads)
	// Sibling fields on the same week survive the edit.
	assert.Equal(t, 274286.0, next.Actuals[1].Spends)
	assert.Equal(t, 1.0, next.Actuals[1].Bookings)
}

func TestRecordActualInvalidWeekOrFieldIsNoOp(t *testing.T) {
	p := testutil.NewTestProject("Skyline")

	assert.Same(t, p, RecordActual(p, -1, domain.ActualLeads, 5))
	assert.Same(t, p, RecordActual(p, domain.WeekCount, domain.ActualLeads, 5))
	assert.Same(t, p, RecordActual(p, 0, domain.ActualField("velocity"), 5))
}

func TestRecordActualNormalizesNaN(t *testing.T) {
	p := testutil.NewTestProject("Skyline")

	next := RecordActual(p, 0, domain.ActualSpends, math.NaN())

	assert.Zero(t, next.Actuals[0].Spends)
}

func TestRecordActualAcceptsNegativeCorrections(t *testing.T) {
	p := testutil.NewTestProject("Skyline")

	next := RecordActual(p, 2, domain.ActualAD, -3)

	assert.Equal(t, -3.0, next.Actuals[2].AD)
}

func TestReviseTargetFromActualBackSolvesUnits(t *testing.T) {
	p := testutil.NewTestProject("Skyline",
		testutil.WithActuals(testutil.ThreeWeeksOfActuals()))
	// 2 digital bookings recorded across weeks 1-2.

	next := ReviseTargetFromActual(p, domain.VerticalDigital, 35) // 5 units at 7 Cr

	var units float64
	for _, act := range next.Actuals {
		units += act.Bookings
	}
	assert.InDelta(t, 5, units, 1e-9)
	// Delta of 3 lands on the week-0 bucket.
	assert.InDelta(t, 3, next.Actuals[0].Bookings, 1e-9)
	// Later weeks keep their recorded counts.
	assert.Equal(t, 1.0, next.Actuals[1].Bookings)
}

func TestReviseTargetFromActualRewritesContributionPercent(t *testing.T) {
	p := testutil.NewTestProject("Skyline")

	next := ReviseTargetFromActual(p, domain.VerticalPresales, 35)

	// 35 / 350 x 100, rounded to 2 decimals.
	assert.Equal(t, 10.0, next.Plan.PresalesPercent)
	assert.Equal(t, 2.5, p.Plan.PresalesPercent, "input untouched")
}

func TestReviseTargetFromActualLifetimeMatchesTarget(t *testing.T) {
	p := testutil.NewTestProject("Skyline",
		testutil.WithActuals(testutil.ThreeWeeksOfActuals()))

	next := ReviseTargetFromActual(p, domain.VerticalDigital, 28)

	lt := engine.ComputeLifetime(next)
	assert.InDelta(t, 28, lt.Verticals[0].AchievedBV, 1e-9)
}

func TestReviseTargetFromActualUnknownVerticalIsNoOp(t *testing.T) {
	p := testutil.NewTestProject("Skyline")

	assert.Same(t, p, ReviseTargetFromActual(p, domain.Vertical("sponsorship"), 10))
}

func TestReviseTargetFromActualGuardsZeroATS(t *testing.T) {
	plan := domain.DefaultPlan()
	plan.ATS = 0
	p := testutil.NewTestProject("Skyline", testutil.WithPlan(plan))

	next := ReviseTargetFromActual(p, domain.VerticalDigital, 21)

	// ATS falls back to 1: revenue maps straight onto units.
	assert.InDelta(t, 21, next.Actuals[0].Bookings, 1e-9)
}

func TestRecordChannelPerformanceCreatesAndUpdates(t *testing.T) {
	p := testutil.NewTestProject("Skyline")

	next := RecordChannelPerformance(p, "fb", domain.ChannelLeads, 120)
	require.Len(t, next.ChannelPerformance, 1)
	assert.Equal(t, "fb", next.ChannelPerformance[0].ChannelID)
	assert.Equal(t, 120.0, next.ChannelPerformance[0].Leads)

	next = RecordChannelPerformance(next, "fb", domain.ChannelSpends, 500000)
	require.Len(t, next.ChannelPerformance, 1)
	assert.Equal(t, 120.0, next.ChannelPerformance[0].Leads)
	assert.Equal(t, 500000.0, next.ChannelPerformance[0].Spends)
}

func TestRecordChannelPerformanceUnknownFieldIsNoOp(t *testing.T) {
	p := testutil.NewTestProject("Skyline")

	assert.Same(t, p, RecordChannelPerformance(p, "fb", domain.ChannelField("ctr"), 1))
}
