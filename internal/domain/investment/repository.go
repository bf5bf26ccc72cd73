package investment

import "context"

type Repository interface {
	Create(ctx context.Context, inv *Investment) error
	GetByInvestmentID(ctx context.Context, investmentID string) (*Investment, error)
	// ListByBond returns contributions in creation order.
	ListByBond(ctx context.Context, bondID string) ([]Investment, error)
	ListByInvestor(ctx context.Context, investor string) ([]Investment, error)
}
