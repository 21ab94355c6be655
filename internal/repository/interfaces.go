package repository

import (
	"context"
	"errors"

	"github.com/arjunshenoy/funnelcast/internal/domain"
)

// ErrNotFound is returned when the requested aggregate does not exist.
var ErrNotFound = errors.New("not found")

// ProjectRepo persists the full project aggregate: plan, week seeds, actuals
// ledger, media plan and channel performance. Writes go through Replace as
// whole-aggregate swaps so readers never observe a partially-updated project;
// derived week fields are never stored.
type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	ListByPoc(ctx context.Context, poc string) ([]*domain.Project, error)
	Replace(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type PocRepo interface {
	Create(ctx context.Context, p *domain.Poc) error
	List(ctx context.Context) ([]*domain.Poc, error)
	Delete(ctx context.Context, id string) error
}
