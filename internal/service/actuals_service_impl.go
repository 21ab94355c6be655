package service

import (
	"context"

	"github.com/arjunshenoy/funnelcast/internal/db"
	"github.com/arjunshenoy/funnelcast/internal/domain"
	"github.com/arjunshenoy/funnelcast/internal/ledger"
	"github.com/arjunshenoy/funnelcast/internal/policy"
	"github.com/arjunshenoy/funnelcast/internal/repository"
)

type actualsService struct {
	mutator
}

func NewActualsService(projects repository.ProjectRepo, uow db.UnitOfWork) ActualsService {
	return &actualsService{mutator{projects: projects, uow: uow}}
}

func (s *actualsService) Record(ctx context.Context, actor domain.User, id string, weekID int, field domain.ActualField, value float64) (*domain.Project, error) {
	return s.apply(ctx, actor, id, policy.CapRecordActuals, func(p *domain.Project) *domain.Project {
		return ledger.RecordActual(p, weekID, field, value)
	})
}

// ReviseRevenue is the explicitly named entry point for the back-solving
// edit: it rewrites both week 0's booking bucket and the plan's contribution
// percent for the vertical. See ledger.ReviseTargetFromActual.
func (s *actualsService) ReviseRevenue(ctx context.Context, actor domain.User, id string, vertical domain.Vertical, revenueCr float64) (*domain.Project, error) {
	return s.apply(ctx, actor, id, policy.CapReviseRevenue, func(p *domain.Project) *domain.Project {
		return ledger.ReviseTargetFromActual(p, vertical, revenueCr)
	})
}

func (s *actualsService) RecordChannel(ctx context.Context, actor domain.User, id, channelID string, field domain.ChannelField, value float64) (*domain.Project, error) {
	return s.apply(ctx, actor, id, policy.CapRecordActuals, func(p *domain.Project) *domain.Project {
		return ledger.RecordChannelPerformance(p, channelID, field, value)
	})
}
