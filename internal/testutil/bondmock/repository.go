package bondmock

import (
	"context"

	domain "bytebonds-backend/internal/domain/bond"
)

// Repo is a function-backed mock that satisfies bond.Repository.
// Fill in only the fields a test needs.
type Repo struct {
	CreateFn               func(ctx context.Context, b *domain.Bond) error
	GetByBondIDFn          func(ctx context.Context, bondID string) (*domain.Bond, error)
	GetByBondIDForUpdateFn func(ctx context.Context, bondID string) (*domain.Bond, error)
	ListByFreelancerFn     func(ctx context.Context, freelancer string) ([]domain.Bond, error)
	ListByStatusFn         func(ctx context.Context, s domain.Status) ([]domain.Bond, error)
	SaveFn                 func(ctx context.Context, b *domain.Bond) error
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, b *domain.Bond) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, b)
	}
	return nil
}

func (m *Repo) GetByBondID(ctx context.Context, bondID string) (*domain.Bond, error) {
	if m.GetByBondIDFn != nil {
		return m.GetByBondIDFn(ctx, bondID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByBondIDForUpdate(ctx context.Context, bondID string) (*domain.Bond, error) {
	if m.GetByBondIDForUpdateFn != nil {
		return m.GetByBondIDForUpdateFn(ctx, bondID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListByFreelancer(ctx context.Context, freelancer string) ([]domain.Bond, error) {
	if m.ListByFreelancerFn != nil {
		return m.ListByFreelancerFn(ctx, freelancer)
	}
	return nil, nil
}

func (m *Repo) ListByStatus(ctx context.Context, s domain.Status) ([]domain.Bond, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, s)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, b *domain.Bond) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, b)
	}
	return nil
}
