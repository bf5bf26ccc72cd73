package bond

import (
	"time"

	domain "bytebonds-backend/internal/domain/bond"
)

type CreateBondInput struct {
	Freelancer    string
	BondSeed      uint64
	Amount        uint64
	Duration      uint8
	InterestRate  uint8
	IncomeProof   string
	Description   string
	RepaymentType domain.RepaymentType
}

type BondDTO struct {
	BondID        string    `json:"bond_id"`
	Freelancer    string    `json:"freelancer"`
	BondSeed      uint64    `json:"bond_seed"`
	Amount        uint64    `json:"amount"`
	Funded        uint64    `json:"funded"`
	Duration      uint8     `json:"duration"`
	InterestRate  uint8     `json:"interest_rate"`
	Installments  uint8     `json:"installments"`
	RepaymentType string    `json:"repayment_type"`
	Status        string    `json:"status"`
	IncomeProof   string    `json:"income_proof"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
}

func toDTO(b *domain.Bond) *BondDTO {
	return &BondDTO{
		BondID:        b.BondID,
		Freelancer:    b.Freelancer,
		BondSeed:      b.BondSeed,
		Amount:        b.Amount,
		Funded:        b.Funded,
		Duration:      b.Duration,
		InterestRate:  b.InterestRate,
		Installments:  b.Installments,
		RepaymentType: string(b.RepaymentType),
		Status:        string(b.Status),
		IncomeProof:   b.IncomeProof,
		Description:   b.Description,
		CreatedAt:     b.CreatedAt,
	}
}
