package uow

import (
	"context"

	"bytebonds-backend/internal/domain/bond"
	"bytebonds-backend/internal/domain/investment"
	"bytebonds-backend/internal/domain/repayment"
	"bytebonds-backend/internal/domain/wallet"
)

type Repos struct {
	Bonds       bond.Repository
	Investments investment.Repository
	Repayments  repayment.Repository
	Wallets     wallet.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the bond row first, then pass it in. Serializes all
	// writers of the same bond so two concurrent investments cannot both
	// pass the funding-cap check.
	WithinBondTx(ctx context.Context, bondID string, fn func(r Repos, b *bond.Bond) error) error
}
