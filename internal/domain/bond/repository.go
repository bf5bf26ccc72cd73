package bond

import "context"

type Repository interface {
	Create(ctx context.Context, b *Bond) error
	GetByBondID(ctx context.Context, bondID string) (*Bond, error)
	// GetByBondIDForUpdate locks the bond row for the duration of the
	// surrounding transaction (single writer per bond).
	GetByBondIDForUpdate(ctx context.Context, bondID string) (*Bond, error)
	ListByFreelancer(ctx context.Context, freelancer string) ([]Bond, error)
	ListByStatus(ctx context.Context, s Status) ([]Bond, error)
	Save(ctx context.Context, b *Bond) error
}
