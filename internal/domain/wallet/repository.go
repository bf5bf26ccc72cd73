package wallet

import "context"

type Repository interface {
	// Transfer moves amount from one address to another. Either both
	// balances change or neither does; a failure leaves them untouched.
	Transfer(ctx context.Context, from, to string, amount uint64) error
	GetByAddress(ctx context.Context, address string) (*Wallet, error)
	// Credit creates the wallet if it does not exist yet.
	Credit(ctx context.Context, address string, amount uint64) error
}
