package service

import (
	"context"

	"github.com/arjunshenoy/funnelcast/internal/db"
	"github.com/arjunshenoy/funnelcast/internal/domain"
	"github.com/arjunshenoy/funnelcast/internal/ledger"
	"github.com/arjunshenoy/funnelcast/internal/policy"
	"github.com/arjunshenoy/funnelcast/internal/repository"
	"github.com/google/uuid"
)

type mediaPlanService struct {
	mutator
}

func NewMediaPlanService(projects repository.ProjectRepo, uow db.UnitOfWork) MediaPlanService {
	return &mediaPlanService{mutator{projects: projects, uow: uow}}
}

func (s *mediaPlanService) AddChannel(ctx context.Context, actor domain.User, id, name string) (*domain.Project, error) {
	return s.apply(ctx, actor, id, policy.CapEditMediaPlan, func(p *domain.Project) *domain.Project {
		return ledger.AddMediaChannel(p, uuid.New().String(), name)
	})
}

func (s *mediaPlanService) UpdateChannel(ctx context.Context, actor domain.User, id, channelID string, field ledger.MediaChannelField, value float64) (*domain.Project, error) {
	return s.apply(ctx, actor, id, policy.CapEditMediaPlan, func(p *domain.Project) *domain.Project {
		return ledger.UpdateMediaChannel(p, channelID, field, value)
	})
}

func (s *mediaPlanService) RemoveChannel(ctx context.Context, actor domain.User, id, channelID string) (*domain.Project, error) {
	return s.apply(ctx, actor, id, policy.CapEditMediaPlan, func(p *domain.Project) *domain.Project {
		return ledger.RemoveMediaChannel(p, channelID)
	})
}
