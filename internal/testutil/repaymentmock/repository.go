package repaymentmock

import (
	"context"
	"time"

	domain "bytebonds-backend/internal/domain/repayment"
)

// Repo is a function-backed mock that satisfies repayment.Repository.
type Repo struct {
	CreateFn                    func(ctx context.Context, r *domain.Repayment) error
	GetByRepaymentIDFn          func(ctx context.Context, repaymentID string) (*domain.Repayment, error)
	GetByRepaymentIDForUpdateFn func(ctx context.Context, repaymentID string) (*domain.Repayment, error)
	ListByBondFn                func(ctx context.Context, bondID string) ([]domain.Repayment, error)
	CountUnpaidByBondFn         func(ctx context.Context, bondRef uint64) (int64, error)
	SaveFn                      func(ctx context.Context, r *domain.Repayment) error
	MarkOverdueBeforeFn         func(ctx context.Context, cutoff time.Time) (int64, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, r *domain.Repayment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetByRepaymentID(ctx context.Context, repaymentID string) (*domain.Repayment, error) {
	if m.GetByRepaymentIDFn != nil {
		return m.GetByRepaymentIDFn(ctx, repaymentID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByRepaymentIDForUpdate(ctx context.Context, repaymentID string) (*domain.Repayment, error) {
	if m.GetByRepaymentIDForUpdateFn != nil {
		return m.GetByRepaymentIDForUpdateFn(ctx, repaymentID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListByBond(ctx context.Context, bondID string) ([]domain.Repayment, error) {
	if m.ListByBondFn != nil {
		return m.ListByBondFn(ctx, bondID)
	}
	return nil, nil
}

func (m *Repo) CountUnpaidByBond(ctx context.Context, bondRef uint64) (int64, error) {
	if m.CountUnpaidByBondFn != nil {
		return m.CountUnpaidByBondFn(ctx, bondRef)
	}
	return 0, nil
}

func (m *Repo) Save(ctx context.Context, r *domain.Repayment) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}

func (m *Repo) MarkOverdueBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if m.MarkOverdueBeforeFn != nil {
		return m.MarkOverdueBeforeFn(ctx, cutoff)
	}
	return 0, nil
}
