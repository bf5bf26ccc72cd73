package wallet

import (
	"time"

	domain "bytebonds-backend/internal/domain/wallet"
)

type CreditInput struct {
	Address string
	Amount  uint64
}

type WalletDTO struct {
	Address   string    `json:"address"`
	Balance   uint64    `json:"balance"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toDTO(w *domain.Wallet) *WalletDTO {
	return &WalletDTO{
		Address:   w.Address,
		Balance:   w.Balance,
		UpdatedAt: w.UpdatedAt,
	}
}
