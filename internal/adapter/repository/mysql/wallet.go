package mysql

import (
	"context"
	"errors"

	walletDomain "bytebonds-backend/internal/domain/wallet"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WalletRepository struct{ db *gorm.DB }

func NewWalletRepository(db *gorm.DB) *WalletRepository { return &WalletRepository{db: db} }

func (r *WalletRepository) GetByAddress(ctx context.Context, address string) (*walletDomain.Wallet, error) {
	var out walletDomain.Wallet
	res := r.db.WithContext(ctx).Where("address = ?", address).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, walletDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *WalletRepository) Credit(ctx context.Context, address string, amount uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var w walletDomain.Wallet
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("address = ?", address).
			First(&w).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(&walletDomain.Wallet{Address: address, Balance: amount}).Error
		}
		if err != nil {
			return err
		}
		w.Balance += amount
		return tx.Save(&w).Error
	})
}

// Transfer debits from and credits to inside the ambient transaction. Rows
// are locked in address order so two opposite transfers cannot deadlock.
func (r *WalletRepository) Transfer(ctx context.Context, from, to string, amount uint64) error {
	if from == to || amount == 0 {
		return nil
	}
	first, second := from, to
	if second < first {
		first, second = second, first
	}

	lock := func(address string) (*walletDomain.Wallet, error) {
		var w walletDomain.Wallet
		err := r.db.WithContext(ctx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("address = ?", address).
			First(&w).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, walletDomain.ErrNotFound
		}
		return &w, err
	}

	a, err := lock(first)
	if err != nil {
		return err
	}
	b, err := lock(second)
	if err != nil {
		return err
	}

	src, dst := a, b
	if src.Address != from {
		src, dst = b, a
	}
	if src.Balance < amount {
		return walletDomain.ErrInsufficientFunds
	}
	src.Balance -= amount
	dst.Balance += amount

	if err := r.db.WithContext(ctx).Save(src).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(dst).Error
}
