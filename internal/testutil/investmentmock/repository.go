package investmentmock

import (
	"context"

	domain "bytebonds-backend/internal/domain/investment"
)

// Repo is a function-backed mock that satisfies investment.Repository.
type Repo struct {
	CreateFn            func(ctx context.Context, inv *domain.Investment) error
	GetByInvestmentIDFn func(ctx context.Context, investmentID string) (*domain.Investment, error)
	ListByBondFn        func(ctx context.Context, bondID string) ([]domain.Investment, error)
	ListByInvestorFn    func(ctx context.Context, investor string) ([]domain.Investment, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, inv *domain.Investment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, inv)
	}
	return nil
}

func (m *Repo) GetByInvestmentID(ctx context.Context, investmentID string) (*domain.Investment, error) {
	if m.GetByInvestmentIDFn != nil {
		return m.GetByInvestmentIDFn(ctx, investmentID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListByBond(ctx context.Context, bondID string) ([]domain.Investment, error) {
	if m.ListByBondFn != nil {
		return m.ListByBondFn(ctx, bondID)
	}
	return nil, nil
}

func (m *Repo) ListByInvestor(ctx context.Context, investor string) ([]domain.Investment, error) {
	if m.ListByInvestorFn != nil {
		return m.ListByInvestorFn(ctx, investor)
	}
	return nil, nil
}
