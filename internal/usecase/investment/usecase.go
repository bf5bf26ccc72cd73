package investment

import (
	"context"
	"time"

	bondDomain "bytebonds-backend/internal/domain/bond"
	"bytebonds-backend/internal/domain/event"
	domain "bytebonds-backend/internal/domain/investment"
	"bytebonds-backend/internal/domain/uow"
	"bytebonds-backend/pkg/id"
)

type Usecase struct {
	repo   domain.Repository
	uow    uow.UnitOfWork
	events event.Sink
}

func NewUsecase(r domain.Repository, tx uow.UnitOfWork, sink event.Sink) *Usecase {
	return &Usecase{repo: r, uow: tx, events: sink}
}

// Invest contributes in.Amount to an open bond. The bond row is locked for
// the whole transaction, so the funding-cap check and the funded increment
// cannot interleave with a concurrent investment. Funds move investor →
// freelancer before any state is recorded; a failed transfer rolls the whole
// operation back.
func (u *Usecase) Invest(ctx context.Context, in InvestInput) (*InvestmentDTO, error) {
	if len(in.Investor) != 32 {
		return nil, domain.ErrInvalidInvestor
	}
	if in.Amount == 0 {
		return nil, bondDomain.ErrInvalidAmount
	}

	var dto *InvestmentDTO
	err := u.uow.WithinBondTx(ctx, in.BondID, func(r uow.Repos, b *bondDomain.Bond) error {
		if b.Status != bondDomain.StatusOpen {
			return bondDomain.ErrNotOpen
		}
		// phrased as remaining-capacity so the sum cannot wrap
		if in.Amount > b.Amount-b.Funded {
			return bondDomain.ErrOverfunded
		}

		if err := r.Wallets.Transfer(ctx, in.Investor, b.Freelancer, in.Amount); err != nil {
			return err
		}

		inv := &domain.Investment{
			InvestmentID: id.NewID32(),
			BondRef:      b.ID,
			BondID:       b.BondID,
			Investor:     in.Investor,
			Amount:       in.Amount,
		}
		if err := r.Investments.Create(ctx, inv); err != nil {
			return err
		}

		b.Funded += in.Amount
		if b.Funded == b.Amount {
			b.Status = bondDomain.StatusFunded
			b.StatusUpdatedAt = time.Now().UTC()
		}
		if err := r.Bonds.Save(ctx, b); err != nil {
			return err
		}

		dto = toDTO(inv, string(b.Status), b.Funded)
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.events.Publish(ctx, event.Event{
		Kind:         event.KindInvested,
		BondID:       dto.BondID,
		Investor:     dto.Investor,
		InvestmentID: dto.InvestmentID,
		Amount:       dto.Amount,
		At:           time.Now().UTC(),
	})
	return dto, nil
}

func (u *Usecase) ListByInvestor(ctx context.Context, investor string) ([]InvestmentDTO, error) {
	if len(investor) != 32 {
		return nil, domain.ErrInvalidInvestor
	}
	invs, err := u.repo.ListByInvestor(ctx, investor)
	if err != nil {
		return nil, err
	}
	out := make([]InvestmentDTO, 0, len(invs))
	for i := range invs {
		out = append(out, InvestmentDTO{
			InvestmentID: invs[i].InvestmentID,
			BondID:       invs[i].BondID,
			Investor:     invs[i].Investor,
			Amount:       invs[i].Amount,
			CreatedAt:    invs[i].CreatedAt,
		})
	}
	return out, nil
}
