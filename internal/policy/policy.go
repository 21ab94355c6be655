// Package policy is the single decision point for role-gated mutations.
// Services consult it before applying an edit; a denied edit is a silent
// no-op at the service boundary, returning the prior state unmodified. The
// engine's pure functions have no concept of roles.
package policy

import "github.com/arjunshenoy/funnelcast/internal/domain"

// Capability names one kind of mutation an actor may attempt.
type Capability string

const (
	CapCreateProject  Capability = "create_project"
	CapDeleteProject  Capability = "delete_project"
	CapLockProject    Capability = "lock_project"
	CapEditPlan       Capability = "edit_plan"
	CapEditWeeks      Capability = "edit_weeks"
	CapEditMediaPlan  Capability = "edit_media_plan"
	CapEditBudget     Capability = "edit_budget" // received budget / other spends
	CapRecordActuals  Capability = "record_actuals"
	CapReviseRevenue  Capability = "revise_revenue"
	CapManagePocs     Capability = "manage_pocs"
	CapAssignPoc      Capability = "assign_poc"
)

var roleGrants = map[domain.Role]map[Capability]bool{
	domain.RoleGM: {
		CapCreateProject: true, CapDeleteProject: true, CapLockProject: true,
		CapEditPlan: true, CapEditWeeks: true, CapEditMediaPlan: true,
		CapEditBudget: true, CapRecordActuals: true, CapReviseRevenue: true,
		CapManagePocs: true, CapAssignPoc: true,
	},
	domain.RoleSM: {
		CapEditPlan: true, CapEditWeeks: true, CapEditMediaPlan: true,
		CapEditBudget: true, CapRecordActuals: true, CapReviseRevenue: true,
		CapManagePocs: true, CapAssignPoc: true,
	},
	domain.RoleManager: {
		CapRecordActuals: true, CapReviseRevenue: true,
	},
}

// Can reports whether the role holds the capability at all.
func Can(role domain.Role, cap Capability) bool {
	return roleGrants[role][cap]
}

// lockGated lists capabilities a project lock withholds from everyone but the GM.
var lockGated = map[Capability]bool{
	CapEditPlan: true, CapEditWeeks: true, CapEditMediaPlan: true,
}

// Allows decides whether the actor may apply the capability to this project,
// honoring the lock: a locked project rejects plan, week and media-plan edits
// from every role except the GM. Actuals recording stays open regardless.
func Allows(actor domain.User, cap Capability, p *domain.Project) bool {
	if !Can(actor.Role, cap) {
		return false
	}
	if p != nil && p.IsLocked && lockGated[cap] && actor.Role != domain.RoleGM {
		return false
	}
	return true
}

// CanSeeProject reports visibility: GM and SM see the whole portfolio,
// managers only projects where they are the SPOC.
func CanSeeProject(actor domain.User, p *domain.Project) bool {
	if actor.Role == domain.RoleGM || actor.Role == domain.RoleSM {
		return true
	}
	return p.Poc == actor.Name
}
