package bond

import (
	"context"
	"time"

	domain "bytebonds-backend/internal/domain/bond"
	"bytebonds-backend/internal/domain/event"
	"bytebonds-backend/pkg/id"
)

type Usecase struct {
	repo   domain.Repository
	events event.Sink
}

func NewUsecase(r domain.Repository, sink event.Sink) *Usecase {
	return &Usecase{repo: r, events: sink}
}

// Create registers a new bond in the open state. No funds move here. The
// bond ID is derived from (freelancer, seed), so re-submitting the same seed
// collides on the unique index and surfaces ErrAlreadyExists.
func (u *Usecase) Create(ctx context.Context, in CreateBondInput) (*BondDTO, error) {
	if len(in.Freelancer) != 32 {
		return nil, domain.ErrInvalidFreelancer
	}
	if err := domain.ValidTerms(in.Amount, in.Duration, in.InterestRate, in.RepaymentType); err != nil {
		return nil, err
	}
	if err := domain.ValidNarrative(in.IncomeProof, in.Description); err != nil {
		return nil, err
	}

	b := &domain.Bond{
		BondID:          id.DeriveBondID(in.Freelancer, in.BondSeed),
		Freelancer:      in.Freelancer,
		BondSeed:        in.BondSeed,
		Amount:          in.Amount,
		Funded:          0,
		Duration:        in.Duration,
		InterestRate:    in.InterestRate,
		RepaymentType:   in.RepaymentType,
		Status:          domain.StatusOpen,
		IncomeProof:     in.IncomeProof,
		Description:     in.Description,
		StatusUpdatedAt: time.Now().UTC(),
	}

	if err := u.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	u.events.Publish(ctx, event.Event{
		Kind:       event.KindBondCreated,
		BondID:     b.BondID,
		Freelancer: b.Freelancer,
		Amount:     b.Amount,
		At:         time.Now().UTC(),
	})

	return toDTO(b), nil
}

func (u *Usecase) Get(ctx context.Context, bondID string) (*BondDTO, error) {
	b, err := u.repo.GetByBondID(ctx, bondID)
	if err != nil {
		return nil, err
	}
	return toDTO(b), nil
}

func (u *Usecase) ListByFreelancer(ctx context.Context, freelancer string) ([]BondDTO, error) {
	if len(freelancer) != 32 {
		return nil, domain.ErrInvalidFreelancer
	}
	bonds, err := u.repo.ListByFreelancer(ctx, freelancer)
	if err != nil {
		return nil, err
	}
	return toDTOs(bonds), nil
}

// ListOpen returns bonds still accepting investments, newest first.
func (u *Usecase) ListOpen(ctx context.Context) ([]BondDTO, error) {
	bonds, err := u.repo.ListByStatus(ctx, domain.StatusOpen)
	if err != nil {
		return nil, err
	}
	return toDTOs(bonds), nil
}

func toDTOs(bonds []domain.Bond) []BondDTO {
	out := make([]BondDTO, 0, len(bonds))
	for i := range bonds {
		out = append(out, *toDTO(&bonds[i]))
	}
	return out
}
