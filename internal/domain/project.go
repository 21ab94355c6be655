package domain

import "time"

// Project is the aggregate root: one plan, one 13-week forecast, the sparse
// actuals ledgers and the media plan. Mutations are applied as whole-object
// replacements so concurrent readers never observe a partial update.
type Project struct {
	ID       string
	Name     string
	Location string
	Poc      string
	Status   ProjectStatus

	StartDate time.Time
	Plan      PlanningData
	Weeks     []WeeklyData
	Actuals   map[int]WeeklyActuals

	MediaPlan          []MediaChannel
	ChannelPerformance []ChannelPerformance

	// OtherSpends is non-performance spend. Always stored gross.
	OtherSpends float64

	IsLocked  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewProject creates a project with full planning defaults and an empty
// actuals ledger.
func NewProject(id, name, location, poc string, start time.Time) *Project {
	return &Project{
		ID:        id,
		Name:      name,
		Location:  location,
		Poc:       poc,
		Status:    ProjectPlanning,
		StartDate: start,
		Plan:      DefaultPlan(),
		Weeks:     GenerateWeeks(start),
		Actuals:   map[int]WeeklyActuals{},
		MediaPlan: DefaultMediaPlan(),
	}
}

// Clone returns a deep copy. Edits operate on a clone and replace the stored
// aggregate wholesale.
func (p *Project) Clone() *Project {
	cp := *p
	cp.Weeks = make([]WeeklyData, len(p.Weeks))
	copy(cp.Weeks, p.Weeks)
	cp.Actuals = make(map[int]WeeklyActuals, len(p.Actuals))
	for k, v := range p.Actuals {
		cp.Actuals[k] = v
	}
	cp.MediaPlan = make([]MediaChannel, len(p.MediaPlan))
	copy(cp.MediaPlan, p.MediaPlan)
	cp.ChannelPerformance = make([]ChannelPerformance, len(p.ChannelPerformance))
	copy(cp.ChannelPerformance, p.ChannelPerformance)
	return &cp
}

// Poc is a single point of contact: the person accountable for a project.
type Poc struct {
	ID   string
	Name string
}

// User is an acting identity presented at every mutation boundary. The core
// never stores users; permission enforcement lives in the policy package.
type User struct {
	Name string
	Role Role
}
