package repayment

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, r *Repayment) error
	GetByRepaymentID(ctx context.Context, repaymentID string) (*Repayment, error)
	GetByRepaymentIDForUpdate(ctx context.Context, repaymentID string) (*Repayment, error)
	ListByBond(ctx context.Context, bondID string) ([]Repayment, error)
	// CountUnpaidByBond counts repayments that are not yet paid (pending or
	// overdue); zero means the bond can complete.
	CountUnpaidByBond(ctx context.Context, bondRef uint64) (int64, error)
	Save(ctx context.Context, r *Repayment) error
	// MarkOverdueBefore flips pending repayments whose due date passed to
	// overdue; returns the number of rows changed.
	MarkOverdueBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
