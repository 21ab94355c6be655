package service

import (
	"context"
	"time"

	"github.com/arjunshenoy/funnelcast/internal/contract"
	"github.com/arjunshenoy/funnelcast/internal/domain"
	"github.com/arjunshenoy/funnelcast/internal/ledger"
)

// Every service method takes the acting user. Reads are visibility-filtered
// (managers see only their own projects); unauthorized mutations are silent
// no-ops that return the prior state unmodified, so bulk callers stay
// idempotent without branching on roles.

type ProjectService interface {
	Create(ctx context.Context, actor domain.User, name, location, poc string, start time.Time) (*domain.Project, error)
	Get(ctx context.Context, actor domain.User, id string) (*domain.Project, error)
	List(ctx context.Context, actor domain.User) ([]*domain.Project, error)
	SetPoc(ctx context.Context, actor domain.User, id, poc string) (*domain.Project, error)
	SetStatus(ctx context.Context, actor domain.User, id string, status domain.ProjectStatus) (*domain.Project, error)
	SetLocked(ctx context.Context, actor domain.User, id string, locked bool) (*domain.Project, error)
	Delete(ctx context.Context, actor domain.User, id string) error
}

type PlanService interface {
	SetPlanField(ctx context.Context, actor domain.User, id string, field domain.PlanField, value float64) (*domain.Project, error)
	SetCalculationMode(ctx context.Context, actor domain.User, id string, mode domain.CalculationMode) (*domain.Project, error)
	SetWeekSeed(ctx context.Context, actor domain.User, id string, weekID int, field domain.WeekSeedField, value float64) (*domain.Project, error)

	// SetReceivedBudget and SetOtherSpends accept display amounts in the
	// caller's view and store gross, converting at this edit boundary.
	SetReceivedBudget(ctx context.Context, actor domain.User, id string, value float64, view domain.ViewMode) (*domain.Project, error)
	SetOtherSpends(ctx context.Context, actor domain.User, id string, value float64, view domain.ViewMode) (*domain.Project, error)
}

type ActualsService interface {
	Record(ctx context.Context, actor domain.User, id string, weekID int, field domain.ActualField, value float64) (*domain.Project, error)
	ReviseRevenue(ctx context.Context, actor domain.User, id string, vertical domain.Vertical, revenueCr float64) (*domain.Project, error)
	RecordChannel(ctx context.Context, actor domain.User, id, channelID string, field domain.ChannelField, value float64) (*domain.Project, error)
}

type MediaPlanService interface {
	AddChannel(ctx context.Context, actor domain.User, id, name string) (*domain.Project, error)
	UpdateChannel(ctx context.Context, actor domain.User, id, channelID string, field ledger.MediaChannelField, value float64) (*domain.Project, error)
	RemoveChannel(ctx context.Context, actor domain.User, id, channelID string) (*domain.Project, error)
}

type ReportService interface {
	// Forecast returns the project with derived week fields filled in,
	// alongside its calculated metrics.
	Forecast(ctx context.Context, actor domain.User, id string) (*domain.Project, domain.CalculatedMetrics, error)
	Period(ctx context.Context, actor domain.User, id string, from, to time.Time, view domain.ViewMode) (contract.PeriodReport, error)
	Portfolio(ctx context.Context, actor domain.User, view domain.ViewMode) (contract.PortfolioReport, error)
}

type PocService interface {
	Add(ctx context.Context, actor domain.User, name string) (*domain.Poc, error)
	List(ctx context.Context) ([]*domain.Poc, error)
	Remove(ctx context.Context, actor domain.User, id string) error
}
