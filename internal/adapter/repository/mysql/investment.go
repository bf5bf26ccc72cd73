package mysql

import (
	"context"

	investmentDomain "bytebonds-backend/internal/domain/investment"

	"gorm.io/gorm"
)

type InvestmentRepository struct{ db *gorm.DB }

func NewInvestmentRepository(db *gorm.DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

func (r *InvestmentRepository) Create(ctx context.Context, inv *investmentDomain.Investment) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *InvestmentRepository) GetByInvestmentID(ctx context.Context, investmentID string) (*investmentDomain.Investment, error) {
	var out investmentDomain.Investment
	res := r.db.WithContext(ctx).Where("investment_id = ?", investmentID).First(&out)
	return &out, res.Error
}

func (r *InvestmentRepository) ListByBond(ctx context.Context, bondID string) ([]investmentDomain.Investment, error) {
	var out []investmentDomain.Investment
	res := r.db.WithContext(ctx).
		Where("bond_id = ?", bondID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *InvestmentRepository) ListByInvestor(ctx context.Context, investor string) ([]investmentDomain.Investment, error) {
	var out []investmentDomain.Investment
	res := r.db.WithContext(ctx).
		Where("investor = ?", investor).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}
