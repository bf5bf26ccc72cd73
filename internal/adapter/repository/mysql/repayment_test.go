package mysql

import (
	"context"
	"testing"
	"time"

	domain "bytebonds-backend/internal/domain/repayment"
	"bytebonds-backend/pkg/id"

	"gorm.io/gorm"
)

type repaymentSQLite struct {
	ID                uint64     `gorm:"primaryKey;column:id"`
	RepaymentID       string     `gorm:"size:32;uniqueIndex;column:repayment_id"`
	BondRef           uint64     `gorm:"column:bond_ref"`
	BondID            string     `gorm:"size:32;column:bond_id"`
	Investor          string     `gorm:"size:32;column:investor"`
	Amount            uint64     `gorm:"column:amount"`
	DueDate           time.Time  `gorm:"column:due_date"`
	Status            string     `gorm:"type:text;column:status"` // ← no enum
	InstallmentNumber uint8      `gorm:"column:installment_number"`
	CreatedAt         time.Time  `gorm:"column:created_at"`
	PaidAt            *time.Time `gorm:"column:paid_at"`
}

func (repaymentSQLite) TableName() string { return "repayments" }

func openRepaymentTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := openTestDB(t)
	if err := db.AutoMigrate(&repaymentSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func seedRepayment(t *testing.T, db *gorm.DB, bondRef uint64, n uint8, status string, due time.Time) string {
	t.Helper()
	rpID := id.NewID32()
	if err := db.Create(&repaymentSQLite{
		RepaymentID:       rpID,
		BondRef:           bondRef,
		BondID:            "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		Investor:          "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
		Amount:            100,
		DueDate:           due,
		Status:            status,
		InstallmentNumber: n,
	}).Error; err != nil {
		t.Fatal(err)
	}
	return rpID
}

func TestRepaymentCreateSaveGet(t *testing.T) {
	db := openRepaymentTestDB(t)
	repo := NewRepaymentRepository(db)
	ctx := context.Background()

	rpID := id.NewID32()
	rp := &domain.Repayment{
		RepaymentID:       rpID,
		BondRef:           1,
		BondID:            "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		Investor:          "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
		Amount:            550,
		DueDate:           time.Now().UTC().Add(30 * 24 * time.Hour),
		Status:            domain.StatusPending,
		InstallmentNumber: 1,
	}
	if err := repo.Create(ctx, rp); err != nil {
		t.Fatalf("Create: %v", err)
	}

	now := time.Now().UTC()
	rp.Status = domain.StatusPaid
	rp.PaidAt = &now
	if err := repo.Save(ctx, rp); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByRepaymentID(ctx, rpID)
	if err != nil {
		t.Fatalf("GetByRepaymentID: %v", err)
	}
	if got.Status != domain.StatusPaid || got.PaidAt == nil {
		t.Errorf("paid state not persisted: %+v", got)
	}
}

func TestRepaymentListByBond_ScheduleOrder(t *testing.T) {
	db := openRepaymentTestDB(t)
	repo := NewRepaymentRepository(db)
	ctx := context.Background()

	due := time.Now().UTC()
	// seeded out of schedule order
	seedRepayment(t, db, 1, 3, "pending", due.Add(90*24*time.Hour))
	seedRepayment(t, db, 1, 1, "paid", due.Add(30*24*time.Hour))
	seedRepayment(t, db, 1, 2, "pending", due.Add(60*24*time.Hour))

	got, err := repo.ListByBond(ctx, "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	if err != nil {
		t.Fatalf("ListByBond: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 repayments, got %d", len(got))
	}
	for i, want := range []uint8{1, 2, 3} {
		if got[i].InstallmentNumber != want {
			t.Errorf("position %d: installment %d, want %d", i, got[i].InstallmentNumber, want)
		}
	}
}

func TestRepaymentCountUnpaidByBond(t *testing.T) {
	db := openRepaymentTestDB(t)
	repo := NewRepaymentRepository(db)
	ctx := context.Background()

	due := time.Now().UTC()
	seedRepayment(t, db, 1, 1, "paid", due)
	seedRepayment(t, db, 1, 2, "pending", due)
	seedRepayment(t, db, 1, 3, "overdue", due)
	seedRepayment(t, db, 2, 1, "pending", due) // different bond

	n, err := repo.CountUnpaidByBond(ctx, 1)
	if err != nil {
		t.Fatalf("CountUnpaidByBond: %v", err)
	}
	// pending and overdue both count as unpaid
	if n != 2 {
		t.Fatalf("unpaid count = %d, want 2", n)
	}
}

func TestRepaymentMarkOverdueBefore(t *testing.T) {
	db := openRepaymentTestDB(t)
	repo := NewRepaymentRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	latePending := seedRepayment(t, db, 1, 1, "pending", now.Add(-24*time.Hour))
	latePaid := seedRepayment(t, db, 1, 2, "paid", now.Add(-24*time.Hour))
	future := seedRepayment(t, db, 1, 3, "pending", now.Add(24*time.Hour))

	n, err := repo.MarkOverdueBefore(ctx, now)
	if err != nil {
		t.Fatalf("MarkOverdueBefore: %v", err)
	}
	if n != 1 {
		t.Fatalf("marked %d rows, want 1", n)
	}

	check := func(rpID string, want domain.Status) {
		t.Helper()
		got, err := repo.GetByRepaymentID(ctx, rpID)
		if err != nil {
			t.Fatalf("GetByRepaymentID(%s): %v", rpID, err)
		}
		if got.Status != want {
			t.Errorf("%s status = %s, want %s", rpID, got.Status, want)
		}
	}
	check(latePending, domain.StatusOverdue)
	check(latePaid, domain.StatusPaid)
	check(future, domain.StatusPending)
}
