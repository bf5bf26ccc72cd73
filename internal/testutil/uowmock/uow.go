package uowmock

import (
	"context"
	"errors"

	"bytebonds-backend/internal/domain/bond"
	"bytebonds-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn     func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinBondTxFn func(ctx context.Context, bondID string, fn func(r uow.Repos, b *bond.Bond) error) error
}

// Convenience fluent setters
func New() *UoW { return &UoW{} }
func (m *UoW) WithWithinTx(fn func(context.Context, func(uow.Repos) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}
func (m *UoW) WithWithinBondTx(fn func(context.Context, string, func(uow.Repos, *bond.Bond) error) error) *UoW {
	m.WithinBondTxFn = fn
	return m
}
func (m *UoW) Reset() { *m = UoW{} }

// Methods implementing UnitOfWork
func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}
func (m *UoW) WithinBondTx(ctx context.Context, bondID string, fn func(r uow.Repos, b *bond.Bond) error) error {
	if m.WithinBondTxFn != nil {
		return m.WithinBondTxFn(ctx, bondID, fn)
	}
	return errUnimplemented
}

// Passthrough builds a UoW whose WithinBondTx fetches the bond from the
// given repos (no locking, no transaction) and invokes fn. Handy when the
// repos are already in-memory test doubles.
func Passthrough(r uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(uow.Repos) error) error {
			return fn(r)
		},
		WithinBondTxFn: func(ctx context.Context, bondID string, fn func(uow.Repos, *bond.Bond) error) error {
			b, err := r.Bonds.GetByBondIDForUpdate(ctx, bondID)
			if err != nil {
				return err
			}
			return fn(r, b)
		},
	}
}
