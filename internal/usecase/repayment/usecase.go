package repayment

import (
	"context"
	"time"

	bondDomain "bytebonds-backend/internal/domain/bond"
	"bytebonds-backend/internal/domain/event"
	investmentDomain "bytebonds-backend/internal/domain/investment"
	domain "bytebonds-backend/internal/domain/repayment"
	"bytebonds-backend/internal/domain/uow"
	"bytebonds-backend/pkg/id"
)

// One scheduling period is a calendar-free 30 days; due dates are spaced
// evenly across the bond's duration.
const periodDays = 30

type Usecase struct {
	repo   domain.Repository
	uow    uow.UnitOfWork
	events event.Sink
}

func NewUsecase(r domain.Repository, tx uow.UnitOfWork, sink event.Sink) *Usecase {
	return &Usecase{repo: r, uow: tx, events: sink}
}

// CreatePlan moves a funded installments bond to repaying and materializes
// its full schedule: the total due is pro-rated across investors, each
// investor's share split into equal installments with the rounding remainder
// on the final one, so the schedule never under-collects. A share smaller
// than the installment count yields fewer rows; periods with nothing due are
// not materialized, so every row is payable.
func (u *Usecase) CreatePlan(ctx context.Context, in CreatePlanInput) (*PlanDTO, error) {
	var dto *PlanDTO

	err := u.uow.WithinBondTx(ctx, in.BondID, func(r uow.Repos, b *bondDomain.Bond) error {
		if b.Status != bondDomain.StatusFunded {
			return bondDomain.ErrNotFunded
		}
		if b.Freelancer != in.Freelancer {
			return bondDomain.ErrNotOwner
		}
		if b.RepaymentType != bondDomain.RepaymentInstallments {
			return bondDomain.ErrInvalidRepaymentType
		}
		if in.Installments == 0 || in.Installments > b.Duration {
			return bondDomain.ErrInvalidInstallments
		}

		invs, err := r.Investments.ListByBond(ctx, b.BondID)
		if err != nil {
			return err
		}
		if len(invs) == 0 {
			return investmentDomain.ErrNotFound
		}

		now := time.Now().UTC()
		interval := time.Duration(b.Duration) * periodDays * 24 * time.Hour / time.Duration(in.Installments)

		owed := proRata(b.TotalDue(), b.Amount, invs)
		var created []domain.Repayment
		for _, o := range owed {
			base := o.amount / uint64(in.Installments)
			for k := uint8(1); k <= in.Installments; k++ {
				amt := base
				if k == in.Installments {
					amt = o.amount - base*uint64(in.Installments-1)
				}
				if amt == 0 {
					// dust share; it all collects on the final installment
					continue
				}
				rp := domain.Repayment{
					RepaymentID:       id.NewID32(),
					BondRef:           b.ID,
					BondID:            b.BondID,
					Investor:          o.investor,
					Amount:            amt,
					DueDate:           now.Add(time.Duration(k) * interval),
					Status:            domain.StatusPending,
					InstallmentNumber: k,
				}
				if err := r.Repayments.Create(ctx, &rp); err != nil {
					return err
				}
				created = append(created, rp)
			}
		}

		b.Installments = in.Installments
		b.Status = bondDomain.StatusRepaying
		b.StatusUpdatedAt = now
		if err := r.Bonds.Save(ctx, b); err != nil {
			return err
		}

		dtos := make([]RepaymentDTO, 0, len(created))
		for i := range created {
			dtos = append(dtos, toDTO(&created[i]))
		}
		dto = &PlanDTO{
			BondID:       b.BondID,
			Installments: in.Installments,
			BondStatus:   string(b.Status),
			Repayments:   dtos,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.events.Publish(ctx, event.Event{
		Kind:         event.KindRepaymentPlanCreated,
		BondID:       dto.BondID,
		Freelancer:   in.Freelancer,
		Installments: dto.Installments,
		At:           time.Now().UTC(),
	})
	return dto, nil
}

// Settle pays one scheduled repayment in full. The amount must match the
// obligation exactly; an already-paid repayment is rejected, so settling
// twice is impossible. When the last unpaid repayment settles, the bond
// completes.
func (u *Usecase) Settle(ctx context.Context, in SettleInput) (*RepaymentDTO, error) {
	// resolve the owning bond first so its row anchors the transaction
	head, err := u.repo.GetByRepaymentID(ctx, in.RepaymentID)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	var dto *RepaymentDTO
	err = u.uow.WithinBondTx(ctx, head.BondID, func(r uow.Repos, b *bondDomain.Bond) error {
		rp, err := r.Repayments.GetByRepaymentIDForUpdate(ctx, in.RepaymentID)
		if err != nil {
			return domain.ErrNotFound
		}
		if rp.BondRef != b.ID {
			return domain.ErrBondMismatch
		}
		if b.Freelancer != in.Freelancer {
			return bondDomain.ErrNotOwner
		}
		if !rp.Settleable() {
			return domain.ErrNotPending
		}
		if in.Amount != rp.Amount {
			return bondDomain.ErrInvalidAmount
		}

		if err := r.Wallets.Transfer(ctx, b.Freelancer, rp.Investor, rp.Amount); err != nil {
			return err
		}

		now := time.Now().UTC()
		rp.Status = domain.StatusPaid
		rp.PaidAt = &now
		if err := r.Repayments.Save(ctx, rp); err != nil {
			return err
		}

		remaining, err := r.Repayments.CountUnpaidByBond(ctx, b.ID)
		if err != nil {
			return err
		}
		if remaining == 0 {
			b.Status = bondDomain.StatusCompleted
			b.StatusUpdatedAt = now
			if err := r.Bonds.Save(ctx, b); err != nil {
				return err
			}
		}

		d := toDTO(rp)
		dto = &d
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.events.Publish(ctx, event.Event{
		Kind:        event.KindRepaid,
		BondID:      dto.BondID,
		Investor:    dto.Investor,
		RepaymentID: dto.RepaymentID,
		Amount:      dto.Amount,
		At:          time.Now().UTC(),
	})
	return dto, nil
}

// SettleLumpSum pays every investor of a funded bond in one shot: principal
// plus flat interest, pro-rated across all investment records, remainder to
// the final one. All transfers ride the same transaction; if any fails,
// nobody is paid.
func (u *Usecase) SettleLumpSum(ctx context.Context, in LumpSumInput) (*LumpSumDTO, error) {
	var dto *LumpSumDTO

	err := u.uow.WithinBondTx(ctx, in.BondID, func(r uow.Repos, b *bondDomain.Bond) error {
		if b.Status != bondDomain.StatusFunded {
			return bondDomain.ErrNotFunded
		}
		if b.Freelancer != in.Freelancer {
			return bondDomain.ErrNotOwner
		}

		invs, err := r.Investments.ListByBond(ctx, b.BondID)
		if err != nil {
			return err
		}
		if len(invs) == 0 {
			return investmentDomain.ErrNotFound
		}

		total := b.TotalDue()
		payouts := map[string]uint64{}
		for _, o := range proRata(total, b.Amount, invs) {
			if err := r.Wallets.Transfer(ctx, b.Freelancer, o.investor, o.amount); err != nil {
				return err
			}
			payouts[o.investor] += o.amount
		}

		b.Status = bondDomain.StatusCompleted
		b.StatusUpdatedAt = time.Now().UTC()
		if err := r.Bonds.Save(ctx, b); err != nil {
			return err
		}

		dto = &LumpSumDTO{
			BondID:     b.BondID,
			Total:      total,
			Payouts:    payouts,
			BondStatus: string(b.Status),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.events.Publish(ctx, event.Event{
		Kind:       event.KindLumpSumRepaid,
		BondID:     dto.BondID,
		Freelancer: in.Freelancer,
		Amount:     dto.Total,
		At:         time.Now().UTC(),
	})
	return dto, nil
}

func (u *Usecase) ListByBond(ctx context.Context, bondID string) ([]RepaymentDTO, error) {
	rps, err := u.repo.ListByBond(ctx, bondID)
	if err != nil {
		return nil, err
	}
	out := make([]RepaymentDTO, 0, len(rps))
	for i := range rps {
		out = append(out, toDTO(&rps[i]))
	}
	return out, nil
}
