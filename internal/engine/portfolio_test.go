package engine

import (
	"testing"

	"github.com/arjunshenoy/funnelcast/internal/domain"
	"github.com/arjunshenoy/funnelcast/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputePortfolioSumsAcrossProjects(t *testing.T) {
	a := testutil.NewTestProject("Skyline",
		testutil.WithActuals(testutil.ThreeWeeksOfActuals()))

	smallPlan := domain.DefaultPlan()
	smallPlan.OverallBV = 70
	b := testutil.NewTestProject("Lakeside",
		testutil.WithPlan(smallPlan),
		testutil.WithActuals(map[int]domain.WeeklyActuals{
			0: {WeekID: 0, Bookings: 1},
		}))

	r := ComputePortfolio([]*domain.Project{a, b}, domain.ViewNet)

	assert.Equal(t, 2, r.ProjectCount)
	assert.InDelta(t, 420, r.TotalPlanBV, 1e-9)

	require.Len(t, r.Verticals, 5)
	digital := r.Verticals[0]
	assert.Equal(t, domain.VerticalDigital, digital.Vertical)
	// 12.5% of 350 + 12.5% of 70
	assert.InDelta(t, 52.5, digital.TargetBV, 1e-9)
	// 2 bookings + 1 booking, both at 7 Cr ATS
	assert.InDelta(t, 21, digital.AchievedBV, 1e-9)
	assert.InDelta(t, 40.0, digital.AchievementPct, 0.01)

	assert.InDelta(t, 31.5, r.DigitalDeficitBV, 1e-9)
	// 14 Cr presales+referral on project A alongside 21 Cr digital.
	assert.InDelta(t, 35, r.TotalAchievedBV, 1e-9)
	assert.InDelta(t, 60.0, r.DigitalContributionActualPct, 0.01)
}

func TestComputePortfolioEmptySet(t *testing.T) {
	r := ComputePortfolio(nil, domain.ViewGross)

	assert.Zero(t, r.ProjectCount)
	assert.Zero(t, r.TotalPlanBV)
	assert.Zero(t, r.TotalAchievedBV)
	assert.Zero(t, r.DigitalAchievementPct)
	require.Len(t, r.Verticals, 5)
	for _, v := range r.Verticals {
		assert.Zero(t, v.TargetBV)
		assert.Zero(t, v.AchievedBV)
	}
}
