package repayment

import (
	"errors"
	"time"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
)

var (
	ErrNotFound = errors.New("repayment not found")
	// ErrNotPending: the repayment was already settled.
	ErrNotPending = errors.New("repayment is not pending")
	// ErrBondMismatch: the referenced repayment does not belong to the bond.
	ErrBondMismatch = errors.New("invalid repayment for this bond")
)

// Repayment is one obligation to pay a specific amount to a specific
// investor. Created by the scheduler, settled exactly once, never deleted.
type Repayment struct {
	ID          uint64 `gorm:"primaryKey;column:id" json:"-"`
	RepaymentID string `gorm:"size:32;uniqueIndex:ux_repayments_repayment_id" json:"repayment_id"`
	BondRef     uint64 `gorm:"column:bond_ref;not null;index" json:"-"`
	BondID      string `gorm:"size:32;index:idx_repayments_bond_id" json:"bond_id"`
	Investor    string `gorm:"size:32;index:idx_repayments_investor" json:"investor"`

	Amount            uint64    `gorm:"type:bigint unsigned;not null" json:"amount"`
	DueDate           time.Time `gorm:"not null" json:"due_date"`
	Status            Status    `gorm:"type:enum('pending','paid','overdue');default:'pending'" json:"status"`
	InstallmentNumber uint8     `gorm:"type:smallint unsigned" json:"installment_number"`

	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
}

func (Repayment) TableName() string { return "repayments" }

// Settleable reports whether the repayment can still be paid. Overdue is a
// late pending obligation, not a dead one.
func (r *Repayment) Settleable() bool {
	return r.Status == StatusPending || r.Status == StatusOverdue
}
