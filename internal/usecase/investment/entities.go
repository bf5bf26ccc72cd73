package investment

import (
	"time"

	domain "bytebonds-backend/internal/domain/investment"
)

type InvestInput struct {
	Investor string
	BondID   string
	Amount   uint64
}

type InvestmentDTO struct {
	InvestmentID string    `json:"investment_id"`
	BondID       string    `json:"bond_id"`
	Investor     string    `json:"investor"`
	Amount       uint64    `json:"amount"`
	BondStatus   string    `json:"bond_status"`
	BondFunded   uint64    `json:"bond_funded"`
	CreatedAt    time.Time `json:"created_at"`
}

func toDTO(inv *domain.Investment, bondStatus string, bondFunded uint64) *InvestmentDTO {
	return &InvestmentDTO{
		InvestmentID: inv.InvestmentID,
		BondID:       inv.BondID,
		Investor:     inv.Investor,
		Amount:       inv.Amount,
		BondStatus:   bondStatus,
		BondFunded:   bondFunded,
		CreatedAt:    inv.CreatedAt,
	}
}
