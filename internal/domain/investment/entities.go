package investment

import (
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("investment not found")
	ErrInvalidInvestor = errors.New("invalid investor account")
	// ErrBondMismatch: the referenced investment does not belong to the bond.
	ErrBondMismatch = errors.New("invalid investment for this bond")
)

// Investment is an append-only contribution record. It is never updated or
// deleted once written.
type Investment struct {
	ID           uint64 `gorm:"primaryKey;column:id" json:"-"`
	InvestmentID string `gorm:"size:32;uniqueIndex:ux_investments_investment_id" json:"investment_id"`
	// Internal FK to bonds.id plus the public 32-hex bond reference.
	BondRef  uint64 `gorm:"column:bond_ref;not null;index" json:"-"`
	BondID   string `gorm:"size:32;index:idx_investments_bond_id" json:"bond_id"`
	Investor string `gorm:"size:32;index:idx_investments_investor" json:"investor"`
	Amount   uint64 `gorm:"type:bigint unsigned;not null" json:"amount"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Investment) TableName() string { return "investments" }
