package policy

import (
	"testing"

	"github.com/arjunshenoy/funnelcast/internal/domain"
	"github.com/arjunshenoy/funnelcast/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRoleCapabilityMatrix(t *testing.T) {
	tests := []struct {
		role domain.Role
		cap  Capability
		want bool
	}{
		{domain.RoleGM, CapCreateProject, true},
		{domain.RoleGM, CapDeleteProject, true},
		{domain.RoleGM, CapLockProject, true},
		{domain.RoleGM, CapEditPlan, true},

		{domain.RoleSM, CapCreateProject, false},
		{domain.RoleSM, CapDeleteProject, false},
		{domain.RoleSM, CapLockProject, false},
		{domain.RoleSM, CapEditPlan, true},
		{domain.RoleSM, CapEditMediaPlan, true},
		{domain.RoleSM, CapManagePocs, true},

		{domain.RoleManager, CapEditPlan, false},
		{domain.RoleManager, CapEditWeeks, false},
		{domain.RoleManager, CapEditBudget, false},
		{domain.RoleManager, CapRecordActuals, true},
		{domain.RoleManager, CapReviseRevenue, true},
		{domain.RoleManager, CapManagePocs, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Can(tt.role, tt.cap), "%s / %s", tt.role, tt.cap)
	}
}

func TestLockWithholdsPlanEditsExceptFromGM(t *testing.T) {
	locked := testutil.NewTestProject("Skyline", testutil.WithLocked())

	assert.True(t, Allows(testutil.GM, CapEditPlan, locked))
	assert.False(t, Allows(testutil.SM, CapEditPlan, locked))
	assert.False(t, Allows(testutil.SM, CapEditWeeks, locked))
	assert.False(t, Allows(testutil.SM, CapEditMediaPlan, locked))

	// Actuals recording survives a lock for every authorized role.
	assert.True(t, Allows(testutil.SM, CapRecordActuals, locked))
	assert.True(t, Allows(testutil.Manager, CapRecordActuals, locked))
}

func TestLockDoesNotGrantMissingCapabilities(t *testing.T) {
	open := testutil.NewTestProject("Skyline")

	assert.False(t, Allows(testutil.Manager, CapEditPlan, open))
	assert.True(t, Allows(testutil.SM, CapEditPlan, open))
}

func TestCanSeeProject(t *testing.T) {
	mine := testutil.NewTestProject("Skyline", testutil.WithPoc("Amey"))
	theirs := testutil.NewTestProject("Lakeside", testutil.WithPoc("Sneha"))

	assert.True(t, CanSeeProject(testutil.GM, theirs))
	assert.True(t, CanSeeProject(testutil.SM, theirs))
	assert.True(t, CanSeeProject(testutil.Manager, mine))
	assert.False(t, CanSeeProject(testutil.Manager, theirs))
}
