package wallet

import (
	"errors"
	"time"
)

var (
	ErrNotFound       = errors.New("wallet not found")
	ErrInvalidAddress = errors.New("address must be a 32-char id")
	// ErrInsufficientFunds: the transfer would overdraw the source wallet.
	// Distinct from validation errors so callers can treat it as retryable
	// after topping up.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Wallet holds the spendable balance for one address. This is the backing
// store of the transfer primitive; the core only ever touches it through
// Repository.Transfer.
type Wallet struct {
	ID      uint64 `gorm:"primaryKey;column:id" json:"-"`
	Address string `gorm:"size:32;uniqueIndex:ux_wallets_address" json:"address"`
	Balance uint64 `gorm:"type:bigint unsigned;not null;default:0" json:"balance"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Wallet) TableName() string { return "wallets" }
