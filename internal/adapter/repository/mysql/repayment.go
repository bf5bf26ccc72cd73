package mysql

import (
	"context"
	"time"

	repaymentDomain "bytebonds-backend/internal/domain/repayment"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RepaymentRepository struct{ db *gorm.DB }

func NewRepaymentRepository(db *gorm.DB) *RepaymentRepository {
	return &RepaymentRepository{db: db}
}

func (r *RepaymentRepository) Create(ctx context.Context, rp *repaymentDomain.Repayment) error {
	return r.db.WithContext(ctx).Create(rp).Error
}

func (r *RepaymentRepository) Save(ctx context.Context, rp *repaymentDomain.Repayment) error {
	return r.db.WithContext(ctx).Save(rp).Error
}

func (r *RepaymentRepository) GetByRepaymentID(ctx context.Context, repaymentID string) (*repaymentDomain.Repayment, error) {
	var out repaymentDomain.Repayment
	res := r.db.WithContext(ctx).Where("repayment_id = ?", repaymentID).First(&out)
	return &out, res.Error
}

func (r *RepaymentRepository) GetByRepaymentIDForUpdate(ctx context.Context, repaymentID string) (*repaymentDomain.Repayment, error) {
	var out repaymentDomain.Repayment
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("repayment_id = ?", repaymentID).
		First(&out)
	return &out, res.Error
}

func (r *RepaymentRepository) ListByBond(ctx context.Context, bondID string) ([]repaymentDomain.Repayment, error) {
	var out []repaymentDomain.Repayment
	res := r.db.WithContext(ctx).
		Where("bond_id = ?", bondID).
		Order("installment_number ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *RepaymentRepository) CountUnpaidByBond(ctx context.Context, bondRef uint64) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&repaymentDomain.Repayment{}).
		Where("bond_ref = ? AND status <> ?", bondRef, repaymentDomain.StatusPaid).
		Count(&n)
	return n, res.Error
}

func (r *RepaymentRepository) MarkOverdueBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&repaymentDomain.Repayment{}).
		Where("status = ? AND due_date < ?", repaymentDomain.StatusPending, cutoff).
		Update("status", repaymentDomain.StatusOverdue)
	return res.RowsAffected, res.Error
}
