package bond

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusOpen      Status = "open"
	StatusFunded    Status = "funded"
	StatusRepaying  Status = "repaying"
	StatusCompleted Status = "completed"
)

type RepaymentType string

const (
	RepaymentLumpSum      RepaymentType = "lump_sum"
	RepaymentInstallments RepaymentType = "installments"
)

// Term bounds enforced at creation.
const (
	MaxDuration       = 60
	MaxInterestRate   = 50
	MaxIncomeProofLen = 200
	MaxDescriptionLen = 500
)

var (
	ErrNotFound             = errors.New("bond not found")
	ErrAlreadyExists        = errors.New("bond already exists for this freelancer and seed")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrInvalidDuration      = errors.New("invalid duration")
	ErrInvalidInterestRate  = errors.New("invalid interest rate")
	ErrStringTooLong        = errors.New("string too long")
	ErrNotOpen              = errors.New("bond is not open for investment")
	ErrOverfunded           = errors.New("bond would be overfunded")
	ErrNotFunded            = errors.New("bond is not funded")
	ErrNotOwner             = errors.New("not the bond owner")
	ErrInvalidFreelancer    = errors.New("invalid freelancer account")
	ErrInvalidRepaymentType = errors.New("invalid repayment type")
	ErrInvalidInstallments  = errors.New("invalid number of installments")
)

type Bond struct {
	ID         uint64 `gorm:"primaryKey;column:id" json:"-"`
	BondID     string `gorm:"size:32;uniqueIndex:ux_bonds_bond_id" json:"bond_id"`
	Freelancer string `gorm:"size:32;index:idx_bonds_freelancer" json:"freelancer"`
	BondSeed   uint64 `gorm:"column:bond_seed" json:"bond_seed"`

	Amount        uint64        `gorm:"type:bigint unsigned;not null" json:"amount"`
	Funded        uint64        `gorm:"type:bigint unsigned;not null;default:0" json:"funded"`
	Duration      uint8         `gorm:"type:smallint unsigned" json:"duration"`
	InterestRate  uint8         `gorm:"type:smallint unsigned" json:"interest_rate"`
	Installments  uint8         `gorm:"type:smallint unsigned;default:0" json:"installments"`
	RepaymentType RepaymentType `gorm:"type:enum('lump_sum','installments')" json:"repayment_type"`
	Status        Status        `gorm:"type:enum('open','funded','repaying','completed');default:'open'" json:"status"`

	IncomeProof string `gorm:"size:200" json:"income_proof"`
	Description string `gorm:"size:500" json:"description"`

	StatusUpdatedAt time.Time      `gorm:"autoCreateTime" json:"status_updated_at"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Bond) TableName() string { return "bonds" }

// ValidTerms checks the fixed term bounds. Pure; every mutating path calls it
// (or a subset of it) before touching state.
func ValidTerms(amount uint64, duration, interestRate uint8, rt RepaymentType) error {
	if amount == 0 {
		return ErrInvalidAmount
	}
	if duration == 0 || duration > MaxDuration {
		return ErrInvalidDuration
	}
	if interestRate == 0 || interestRate > MaxInterestRate {
		return ErrInvalidInterestRate
	}
	if rt != RepaymentLumpSum && rt != RepaymentInstallments {
		return ErrInvalidRepaymentType
	}
	return nil
}

// ValidNarrative bounds the free-text fields; content is not inspected.
func ValidNarrative(incomeProof, description string) error {
	if len(incomeProof) > MaxIncomeProofLen || len(description) > MaxDescriptionLen {
		return ErrStringTooLong
	}
	return nil
}

// TotalDue is principal plus flat interest.
func (b *Bond) TotalDue() uint64 {
	return b.Amount + Interest(b.Amount, b.InterestRate)
}

// Interest is floor(amount * rate / 100). Splitting the amount keeps the
// intermediate product inside uint64 even at extreme principals.
func Interest(amount uint64, rate uint8) uint64 {
	hi := amount / 100
	lo := amount % 100
	return hi*uint64(rate) + lo*uint64(rate)/100
}
