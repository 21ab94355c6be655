package service

import (
	"context"
	"time"

	"github.com/arjunshenoy/funnelcast/internal/db"
	"github.com/arjunshenoy/funnelcast/internal/domain"
	"github.com/arjunshenoy/funnelcast/internal/policy"
	"github.com/arjunshenoy/funnelcast/internal/repository"
	"github.com/google/uuid"
)

type projectService struct {
	mutator
}

func NewProjectService(projects repository.ProjectRepo, uow db.UnitOfWork) ProjectService {
	return &projectService{mutator{projects: projects, uow: uow}}
}

func (s *projectService) Create(ctx context.Context, actor domain.User, name, location, poc string, start time.Time) (*domain.Project, error) {
	if !policy.Can(actor.Role, policy.CapCreateProject) {
		return nil, ErrNotPermitted
	}

	p := domain.NewProject(uuid.New().String(), name, location, poc, start)
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteProjectRepo(tx).Create(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *projectService) Get(ctx context.Context, actor domain.User, id string) (*domain.Project, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanSeeProject(actor, p) {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func (s *projectService) List(ctx context.Context, actor domain.User) ([]*domain.Project, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	return visible(actor, projects), nil
}

func (s *projectService) SetPoc(ctx context.Context, actor domain.User, id, poc string) (*domain.Project, error) {
	return s.apply(ctx, actor, id, policy.CapAssignPoc, func(p *domain.Project) *domain.Project {
		cp := p.Clone()
		cp.Poc = poc
		return cp
	})
}

func (s *projectService) SetStatus(ctx context.Context, actor domain.User, id string, status domain.ProjectStatus) (*domain.Project, error) {
	return s.apply(ctx, actor, id, policy.CapEditPlan, func(p *domain.Project) *domain.Project {
		cp := p.Clone()
		cp.Status = status
		return cp
	})
}

func (s *projectService) SetLocked(ctx context.Context, actor domain.User, id string, locked bool) (*domain.Project, error) {
	return s.apply(ctx, actor, id, policy.CapLockProject, func(p *domain.Project) *domain.Project {
		cp := p.Clone()
		cp.IsLocked = locked
		return cp
	})
}

// Delete is restricted to the GM; anyone else's attempt is a silent no-op.
func (s *projectService) Delete(ctx context.Context, actor domain.User, id string) error {
	if !policy.Can(actor.Role, policy.CapDeleteProject) {
		return nil
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteProjectRepo(tx).Delete(ctx, id)
	})
}
