package ledger

import (
	"testing"

	"github.com/arjunshenoy/funnelcast/internal/domain"
	"github.com/arjunshenoy/funnelcast/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMediaChannelAppliesNameDefaults(t *testing.T) {
	p := testutil.NewTestProject("Skyline")
	baseline := len(p.MediaPlan)

	next := AddMediaChannel(p, "ch-1", "LinkedIn Ads")

	require.Len(t, next.MediaPlan, baseline+1)
	added := next.MediaPlan[baseline]
	assert.Equal(t, "ch-1", added.ID)
	assert.True(t, added.IsCustom)
	assert.Equal(t, 5500.0, added.EstimatedCPL)
	assert.Equal(t, 60.0, added.CAPIPercent)
	assert.Zero(t, added.AllocationPercent, "new channels start unallocated")

	assert.Len(t, p.MediaPlan, baseline, "input untouched")
}

func TestAddMediaChannelUnrecognizedNameUsesBaseline(t *testing.T) {
	p := testutil.NewTestProject("Skyline")

	next := AddMediaChannel(p, "ch-2", "Skywriting")

	added := next.MediaPlan[len(next.MediaPlan)-1]
	assert.Equal(t, 2500.0, added.EstimatedCPL)
	assert.Equal(t, 30.0, added.CAPIPercent)
}

func TestUpdateMediaChannel(t *testing.T) {
	p := testutil.NewTestProject("Skyline")

	next := UpdateMediaChannel(p, "google", MediaAllocation, 45)

	for _, ch := range next.MediaPlan {
		if ch.ID == "google" {
			assert.Equal(t, 45.0, ch.AllocationPercent)
		}
	}
	// Other channels untouched.
	assert.Equal(t, p.MediaPlan[0], next.MediaPlan[0])
}

func TestUpdateMediaChannelUnknownTargetIsNoOp(t *testing.T) {
	p := testutil.NewTestProject("Skyline")

	assert.Same(t, p, UpdateMediaChannel(p, "nope", MediaCPL, 1000))
	assert.Same(t, p, UpdateMediaChannel(p, "fb", MediaChannelField("color"), 1))
}

func TestRemoveMediaChannelDropsPerformanceToo(t *testing.T) {
	p := testutil.NewTestProject("Skyline")
	p = RecordChannelPerformance(p, "fb", domain.ChannelLeads, 50)
	p = RecordChannelPerformance(p, "google", domain.ChannelLeads, 80)

	next := RemoveMediaChannel(p, "fb")

	for _, ch := range next.MediaPlan {
		assert.NotEqual(t, "fb", ch.ID)
	}
	require.Len(t, next.ChannelPerformance, 1)
	assert.Equal(t, "google", next.ChannelPerformance[0].ChannelID)
}
