package service

import (
	"context"

	"github.com/arjunshenoy/funnelcast/internal/domain"
	"github.com/arjunshenoy/funnelcast/internal/policy"
	"github.com/arjunshenoy/funnelcast/internal/repository"
	"github.com/google/uuid"
)

type pocService struct {
	pocs repository.PocRepo
}

func NewPocService(pocs repository.PocRepo) PocService {
	return &pocService{pocs: pocs}
}

func (s *pocService) Add(ctx context.Context, actor domain.User, name string) (*domain.Poc, error) {
	if !policy.Can(actor.Role, policy.CapManagePocs) {
		return nil, ErrNotPermitted
	}
	p := &domain.Poc{ID: uuid.New().String(), Name: name}
	if err := s.pocs.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *pocService) List(ctx context.Context) ([]*domain.Poc, error) {
	return s.pocs.List(ctx)
}

func (s *pocService) Remove(ctx context.Context, actor domain.User, id string) error {
	if !policy.Can(actor.Role, policy.CapManagePocs) {
		return nil
	}
	return s.pocs.Delete(ctx, id)
}
