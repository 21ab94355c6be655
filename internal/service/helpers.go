package service

import (
	"context"
	"errors"

	"github.com/arjunshenoy/funnelcast/internal/db"
	"github.com/arjunshenoy/funnelcast/internal/domain"
	"github.com/arjunshenoy/funnelcast/internal/policy"
	"github.com/arjunshenoy/funnelcast/internal/repository"
)

// ErrNotPermitted is returned for operations with no prior state to fall back
// on (project creation). Mutations of existing state never return it; they
// no-op instead.
var ErrNotPermitted = errors.New("not permitted")

// mutator shares the edit pipeline used by every mutating service: load the
// aggregate, consult policy, apply a pure transform to a copy, and swap the
// stored aggregate inside a transaction. A denied edit skips the transform
// and returns the loaded state untouched.
type mutator struct {
	projects repository.ProjectRepo
	uow      db.UnitOfWork
}

func (m *mutator) apply(ctx context.Context, actor domain.User, id string, cap policy.Capability,
	transform func(*domain.Project) *domain.Project,
) (*domain.Project, error) {
	p, err := m.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanSeeProject(actor, p) {
		return nil, repository.ErrNotFound
	}
	if !policy.Allows(actor, cap, p) {
		return p, nil
	}

	next := transform(p)
	if next == p {
		// Structural no-op (bad week index, unknown field): nothing to write.
		return p, nil
	}

	err = m.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteProjectRepo(tx).Replace(ctx, next)
	})
	if err != nil {
		return nil, err
	}
	return next, nil
}

// visible filters a project list down to what the actor may see.
func visible(actor domain.User, projects []*domain.Project) []*domain.Project {
	out := projects[:0]
	for _, p := range projects {
		if policy.CanSeeProject(actor, p) {
			out = append(out, p)
		}
	}
	return out
}
