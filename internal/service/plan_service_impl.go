package service

import (
	"context"

	"github.com/arjunshenoy/funnelcast/internal/db"
	"github.com/arjunshenoy/funnelcast/internal/domain"
	"github.com/arjunshenoy/funnelcast/internal/engine"
	"github.com/arjunshenoy/funnelcast/internal/policy"
	"github.com/arjunshenoy/funnelcast/internal/repository"
)

type planService struct {
	mutator
}

func NewPlanService(projects repository.ProjectRepo, uow db.UnitOfWork) PlanService {
	return &planService{mutator{projects: projects, uow: uow}}
}

func (s *planService) SetPlanField(ctx context.Context, actor domain.User, id string, field domain.PlanField, value float64) (*domain.Project, error) {
	return s.apply(ctx, actor, id, policy.CapEditPlan, func(p *domain.Project) *domain.Project {
		cp := p.Clone()
		if !domain.ApplyPlanField(&cp.Plan, field, engine.Normalize(value)) {
			return p
		}
		return cp
	})
}

func (s *planService) SetCalculationMode(ctx context.Context, actor domain.User, id string, mode domain.CalculationMode) (*domain.Project, error) {
	return s.apply(ctx, actor, id, policy.CapEditPlan, func(p *domain.Project) *domain.Project {
		if mode != domain.ModeRevenue && mode != domain.ModeBudget {
			return p
		}
		cp := p.Clone()
		cp.Plan.CalculationMode = mode
		return cp
	})
}

func (s *planService) SetWeekSeed(ctx context.Context, actor domain.User, id string, weekID int, field domain.WeekSeedField, value float64) (*domain.Project, error) {
	return s.apply(ctx, actor, id, policy.CapEditWeeks, func(p *domain.Project) *domain.Project {
		if weekID < 0 || weekID >= len(p.Weeks) {
			return p
		}
		cp := p.Clone()
		value = engine.Normalize(value)
		switch field {
		case domain.SeedSpendDistribution:
			cp.Weeks[weekID].SpendDistribution = value
		case domain.SeedLeadDistribution:
			cp.Weeks[weekID].LeadDistribution = value
		case domain.SeedAdConversion:
			cp.Weeks[weekID].AdConversion = value
		default:
			return p
		}
		return cp
	})
}

// SetReceivedBudget stores the released-funds figure, which is always kept
// gross: a net-view entry is multiplied up by the tax divisor before storage.
func (s *planService) SetReceivedBudget(ctx context.Context, actor domain.User, id string, value float64, view domain.ViewMode) (*domain.Project, error) {
	return s.apply(ctx, actor, id, policy.CapEditBudget, func(p *domain.Project) *domain.Project {
		cp := p.Clone()
		cp.Plan.ReceivedBudget = toGross(engine.Normalize(value), view, &cp.Plan)
		return cp
	})
}

func (s *planService) SetOtherSpends(ctx context.Context, actor domain.User, id string, value float64, view domain.ViewMode) (*domain.Project, error) {
	return s.apply(ctx, actor, id, policy.CapEditBudget, func(p *domain.Project) *domain.Project {
		cp := p.Clone()
		cp.OtherSpends = toGross(engine.Normalize(value), view, &cp.Plan)
		return cp
	})
}

func toGross(value float64, view domain.ViewMode, plan *domain.PlanningData) float64 {
	if view == domain.ViewGross {
		return value
	}
	return value * plan.TaxDivisor()
}
