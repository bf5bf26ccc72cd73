package mysql

import (
	"context"

	"bytebonds-backend/internal/domain/bond"
	"bytebonds-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func txRepos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Bonds:       &BondRepository{db: tx},
		Investments: &InvestmentRepository{db: tx},
		Repayments:  &RepaymentRepository{db: tx},
		Wallets:     &WalletRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(txRepos(tx))
	})
}

func (u *GormUoW) WithinBondTx(ctx context.Context, bondID string, fn func(r uow.Repos, b *bond.Bond) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := txRepos(tx)
		// lock the bond row up-front to prevent races
		b, err := r.Bonds.GetByBondIDForUpdate(ctx, bondID)
		if err != nil {
			return err
		}
		return fn(r, b)
	})
}
