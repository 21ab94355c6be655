package testutil

import (
	"time"

	"github.com/arjunshenoy/funnelcast/internal/domain"
	"github.com/google/uuid"
)

// Epoch is the project start date used across tests: a fixed Wednesday so
// week labels stay deterministic.
var Epoch = time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)

// Project options
type ProjectOption func(*domain.Project)

func WithPlan(plan domain.PlanningData) ProjectOption {
	return func(p *domain.Project) {
		p.Plan = plan
	}
}

func WithPoc(name string) ProjectOption {
	return func(p *domain.Project) {
		p.Poc = name
	}
}

func WithLocked() ProjectOption {
	return func(p *domain.Project) {
		p.IsLocked = true
	}
}

func WithActuals(actuals map[int]domain.WeeklyActuals) ProjectOption {
	return func(p *domain.Project) {
		p.Actuals = actuals
	}
}

func WithOtherSpends(v float64) ProjectOption {
	return func(p *domain.Project) {
		p.OtherSpends = v
	}
}

func WithReceivedBudget(v float64) ProjectOption {
	return func(p *domain.Project) {
		p.Plan.ReceivedBudget = v
	}
}

// NewTestProject creates a project with full planning defaults starting at
// the fixed test epoch.
func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := domain.NewProject(uuid.New().String(), name, "Wadala, Mumbai", "Amey", Epoch)
	p.CreatedAt = now
	p.UpdatedAt = now
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Users for permission-matrix tests.
var (
	GM      = domain.User{Name: "Priya", Role: domain.RoleGM}
	SM      = domain.User{Name: "Rohan", Role: domain.RoleSM}
	Manager = domain.User{Name: "Amey", Role: domain.RoleManager}
)

// ThreeWeeksOfActuals returns the recorded performance used by reporting
// tests: a ramping first three weeks with a handful of early bookings.
func ThreeWeeksOfActuals() map[int]domain.WeeklyActuals {
	return map[int]domain.WeeklyActuals{
		0: {WeekID: 0, Leads: 38, AP: 3, AD: 2, Spends: 137143},
		1: {WeekID: 1, Leads: 76, AP: 8, AD: 4, Spends: 274286, Bookings: 1},
		2: {WeekID: 2, Leads: 115, AP: 12, AD: 6, Spends: 400000, Bookings: 1, PresalesBookings: 1, ReferralBookings: 1},
	}
}
