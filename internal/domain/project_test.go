package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProjectDefaults(t *testing.T) {
	p := NewProject("id-1", "Skyline", "Mumbai", "Amey", epoch)

	assert.Equal(t, ProjectPlanning, p.Status)
	assert.Equal(t, DefaultPlan(), p.Plan)
	require.Len(t, p.Weeks, WeekCount)
	require.Len(t, p.MediaPlan, 5)
	assert.NotNil(t, p.Actuals)
	assert.False(t, p.IsLocked)
}

func TestCloneIsIndependent(t *testing.T) {
	p := NewProject("id-1", "Skyline", "Mumbai", "Amey", epoch)
	p.Actuals[2] = WeeklyActuals{WeekID: 2, Leads: 10}
	p.ChannelPerformance = []ChannelPerformance{{ChannelID: "fb", Leads: 5}}

	cp := p.Clone()
	cp.Plan.OverallBV = 999
	cp.Weeks[3].LeadDistribution = 50
	cp.Actuals[2] = WeeklyActuals{WeekID: 2, Leads: 77}
	cp.MediaPlan[0].AllocationPercent = 1
	cp.ChannelPerformance[0].Leads = 42

	assert.Equal(t, 350.0, p.Plan.OverallBV)
	assert.Equal(t, 8.0, p.Weeks[3].LeadDistribution)
	assert.Equal(t, 10.0, p.Actuals[2].Leads)
	assert.Equal(t, 40.0, p.MediaPlan[0].AllocationPercent)
	assert.Equal(t, 5.0, p.ChannelPerformance[0].Leads)
}

func TestApplyPlanField(t *testing.T) {
	plan := DefaultPlan()

	assert.True(t, ApplyPlanField(&plan, PlanCPL, 5200))
	assert.Equal(t, 5200.0, plan.CPL)

	assert.False(t, ApplyPlanField(&plan, PlanField("moonshot"), 1))
}

func TestContributionPercentRoundTrip(t *testing.T) {
	plan := DefaultPlan()

	for _, v := range AllVerticals {
		plan.SetContributionPercent(v, 20)
		assert.Equal(t, 20.0, plan.ContributionPercent(v), string(v))
	}
	assert.Zero(t, plan.ContributionPercent(Vertical("sponsorship")))
}

func TestTaxDivisor(t *testing.T) {
	plan := DefaultPlan()
	assert.InDelta(t, 1.18, plan.TaxDivisor(), 1e-9)

	plan.TaxPercent = 0
	assert.Equal(t, 1.0, plan.TaxDivisor())
}

func TestClassifyDelivery(t *testing.T) {
	assert.Equal(t, DeliveryOnTrack, ClassifyDelivery(90))
	assert.Equal(t, DeliveryOnTrack, ClassifyDelivery(150))
	assert.Equal(t, DeliveryAtRisk, ClassifyDelivery(89.9))
	assert.Equal(t, DeliveryAtRisk, ClassifyDelivery(70))
	assert.Equal(t, DeliveryOffTrack, ClassifyDelivery(69.9))
	assert.Equal(t, DeliveryOffTrack, ClassifyDelivery(0))
}
