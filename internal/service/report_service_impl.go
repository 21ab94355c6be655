package service

import (
	"context"
	"time"

	"github.com/arjunshenoy/funnelcast/internal/contract"
	"github.com/arjunshenoy/funnelcast/internal/domain"
	"github.com/arjunshenoy/funnelcast/internal/engine"
	"github.com/arjunshenoy/funnelcast/internal/policy"
	"github.com/arjunshenoy/funnelcast/internal/repository"
)

type reportService struct {
	projects repository.ProjectRepo
}

func NewReportService(projects repository.ProjectRepo) ReportService {
	return &reportService{projects: projects}
}

func (s *reportService) Forecast(ctx context.Context, actor domain.User, id string) (*domain.Project, domain.CalculatedMetrics, error) {
	p, err := s.load(ctx, actor, id)
	if err != nil {
		return nil, domain.CalculatedMetrics{}, err
	}
	calc, metrics := engine.Recalculate(p)
	return calc, metrics, nil
}

func (s *reportService) Period(ctx context.Context, actor domain.User, id string, from, to time.Time, view domain.ViewMode) (contract.PeriodReport, error) {
	p, err := s.load(ctx, actor, id)
	if err != nil {
		return contract.PeriodReport{}, err
	}
	calc, _ := engine.Recalculate(p)

	// A range starting before the project epoch clamps to week 0; a range
	// ending before it collapses onto week 0 as well, yielding an all-zero
	// period rather than an error.
	startWeek := domain.WeekIndexForDate(p.StartDate, from)
	if startWeek < 0 {
		startWeek = 0
	}
	endWeek := domain.WeekIndexForDate(p.StartDate, to)
	if endWeek < 0 {
		endWeek = 0
	}

	return engine.ComputePeriodReport(calc, startWeek, endWeek, view), nil
}

func (s *reportService) Portfolio(ctx context.Context, actor domain.User, view domain.ViewMode) (contract.PortfolioReport, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return contract.PortfolioReport{}, err
	}

	calculated := make([]*domain.Project, 0, len(projects))
	for _, p := range visible(actor, projects) {
		calc, _ := engine.Recalculate(p)
		calculated = append(calculated, calc)
	}
	return engine.ComputePortfolio(calculated, view), nil
}

func (s *reportService) load(ctx context.Context, actor domain.User, id string) (*domain.Project, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanSeeProject(actor, p) {
		return nil, repository.ErrNotFound
	}
	return p, nil
}
