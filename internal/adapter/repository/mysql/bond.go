package mysql

import (
	"context"
	"errors"
	"strings"

	bondDomain "bytebonds-backend/internal/domain/bond"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BondRepository struct{ db *gorm.DB }

func NewBondRepository(db *gorm.DB) *BondRepository { return &BondRepository{db: db} }

func (r *BondRepository) Create(ctx context.Context, b *bondDomain.Bond) error {
	err := r.db.WithContext(ctx).Create(b).Error
	if isDuplicateKey(err) {
		return bondDomain.ErrAlreadyExists
	}
	return err
}

func (r *BondRepository) Save(ctx context.Context, b *bondDomain.Bond) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BondRepository) GetByBondID(ctx context.Context, bondID string) (*bondDomain.Bond, error) {
	var out bondDomain.Bond
	res := r.db.WithContext(ctx).Where("bond_id = ?", bondID).First(&out)
	return &out, res.Error
}

func (r *BondRepository) GetByBondIDForUpdate(ctx context.Context, bondID string) (*bondDomain.Bond, error) {
	var out bondDomain.Bond
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("bond_id = ?", bondID).
		First(&out)
	return &out, res.Error
}

func (r *BondRepository) ListByFreelancer(ctx context.Context, freelancer string) ([]bondDomain.Bond, error) {
	var out []bondDomain.Bond
	res := r.db.WithContext(ctx).
		Where("freelancer = ?", freelancer).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *BondRepository) ListByStatus(ctx context.Context, s bondDomain.Status) ([]bondDomain.Bond, error) {
	var out []bondDomain.Bond
	res := r.db.WithContext(ctx).
		Where("status = ?", s).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

// isDuplicateKey matches gorm's translated error plus the raw MySQL/SQLite
// messages, since the sqlite test driver does not translate.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}
