package wallet

import (
	"context"

	bondDomain "bytebonds-backend/internal/domain/bond"
	domain "bytebonds-backend/internal/domain/wallet"
)

type Usecase struct {
	repo domain.Repository
}

func NewUsecase(r domain.Repository) *Usecase {
	return &Usecase{repo: r}
}

// Credit tops up a wallet, creating it on first use, and returns the new
// balance.
func (u *Usecase) Credit(ctx context.Context, in CreditInput) (*WalletDTO, error) {
	if len(in.Address) != 32 {
		return nil, domain.ErrInvalidAddress
	}
	if in.Amount == 0 {
		return nil, bondDomain.ErrInvalidAmount
	}
	if err := u.repo.Credit(ctx, in.Address, in.Amount); err != nil {
		return nil, err
	}
	w, err := u.repo.GetByAddress(ctx, in.Address)
	if err != nil {
		return nil, err
	}
	return toDTO(w), nil
}

func (u *Usecase) Get(ctx context.Context, address string) (*WalletDTO, error) {
	if len(address) != 32 {
		return nil, domain.ErrInvalidAddress
	}
	w, err := u.repo.GetByAddress(ctx, address)
	if err != nil {
		return nil, err
	}
	return toDTO(w), nil
}
