package repayment

import (
	"time"

	domain "bytebonds-backend/internal/domain/repayment"
)

type CreatePlanInput struct {
	Freelancer   string
	BondID       string
	Installments uint8
}

type SettleInput struct {
	Freelancer  string
	RepaymentID string
	Amount      uint64
}

type LumpSumInput struct {
	Freelancer string
	BondID     string
}

type RepaymentDTO struct {
	RepaymentID       string     `json:"repayment_id"`
	BondID            string     `json:"bond_id"`
	Investor          string     `json:"investor"`
	Amount            uint64     `json:"amount"`
	DueDate           time.Time  `json:"due_date"`
	Status            string     `json:"status"`
	InstallmentNumber uint8      `json:"installment_number"`
	CreatedAt         time.Time  `json:"created_at"`
	PaidAt            *time.Time `json:"paid_at,omitempty"`
}

type PlanDTO struct {
	BondID       string         `json:"bond_id"`
	Installments uint8          `json:"installments"`
	BondStatus   string         `json:"bond_status"`
	Repayments   []RepaymentDTO `json:"repayments"`
}

type LumpSumDTO struct {
	BondID     string            `json:"bond_id"`
	Total      uint64            `json:"total"`
	Payouts    map[string]uint64 `json:"payouts"`
	BondStatus string            `json:"bond_status"`
}

func toDTO(r *domain.Repayment) RepaymentDTO {
	return RepaymentDTO{
		RepaymentID:       r.RepaymentID,
		BondID:            r.BondID,
		Investor:          r.Investor,
		Amount:            r.Amount,
		DueDate:           r.DueDate,
		Status:            string(r.Status),
		InstallmentNumber: r.InstallmentNumber,
		CreatedAt:         r.CreatedAt,
		PaidAt:            r.PaidAt,
	}
}
