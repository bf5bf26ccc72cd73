package event

import (
	"context"
	"time"
)

type Kind string

const (
	KindBondCreated          Kind = "bond_created"
	KindInvested             Kind = "invested"
	KindRepaymentPlanCreated Kind = "repayment_plan_created"
	KindRepaid               Kind = "repaid"
	KindLumpSumRepaid        Kind = "lump_sum_repaid"
)

// Event is a structured notification for external indexers. Delivery is
// fire-and-forget; emitting happens after the owning transaction commits and
// a failed publish never fails the operation.
type Event struct {
	Kind         Kind      `json:"kind"`
	BondID       string    `json:"bond_id"`
	Freelancer   string    `json:"freelancer,omitempty"`
	Investor     string    `json:"investor,omitempty"`
	InvestmentID string    `json:"investment_id,omitempty"`
	RepaymentID  string    `json:"repayment_id,omitempty"`
	Amount       uint64    `json:"amount,omitempty"`
	Installments uint8     `json:"installments,omitempty"`
	At           time.Time `json:"at"`
}

type Sink interface {
	Publish(ctx context.Context, e Event)
}
