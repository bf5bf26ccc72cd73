package walletmock

import (
	"context"
	"sync"

	domain "bytebonds-backend/internal/domain/wallet"
)

// Repo is a function-backed mock that satisfies wallet.Repository.
type Repo struct {
	TransferFn     func(ctx context.Context, from, to string, amount uint64) error
	GetByAddressFn func(ctx context.Context, address string) (*domain.Wallet, error)
	CreditFn       func(ctx context.Context, address string, amount uint64) error
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Transfer(ctx context.Context, from, to string, amount uint64) error {
	if m.TransferFn != nil {
		return m.TransferFn(ctx, from, to, amount)
	}
	return nil
}

func (m *Repo) GetByAddress(ctx context.Context, address string) (*domain.Wallet, error) {
	if m.GetByAddressFn != nil {
		return m.GetByAddressFn(ctx, address)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Credit(ctx context.Context, address string, amount uint64) error {
	if m.CreditFn != nil {
		return m.CreditFn(ctx, address, amount)
	}
	return nil
}

// Ledger is an in-memory balance book for scenario tests: transfers succeed
// or fail exactly like the real primitive, and balances can be inspected
// afterwards.
type Ledger struct {
	mu       sync.Mutex
	balances map[string]uint64
}

func NewLedger() *Ledger { return &Ledger{balances: map[string]uint64{}} }

func (l *Ledger) Fund(address string, amount uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[address] += amount
}

func (l *Ledger) Balance(address string) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[address]
}

func (l *Ledger) Transfer(_ context.Context, from, to string, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.balances[from] < amount {
		return domain.ErrInsufficientFunds
	}
	l.balances[from] -= amount
	l.balances[to] += amount
	return nil
}

func (l *Ledger) GetByAddress(_ context.Context, address string) (*domain.Wallet, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.balances[address]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &domain.Wallet{Address: address, Balance: b}, nil
}

func (l *Ledger) Credit(_ context.Context, address string, amount uint64) error {
	l.Fund(address, amount)
	return nil
}

var _ domain.Repository = (*Ledger)(nil)
