package repository

import "context"

// Token defines the interface for ember currency persistence. Balances,
// allowances and supply are non-negative; the repository enforces the
// non-negativity, the service layer decides which domain error a shortfall
// maps to.
type Token interface {
	GetBalance(ctx context.Context, address string) (int64, error)
	GetAllowance(ctx context.Context, owner, spender string) (int64, error)
	GetTotalSupply(ctx context.Context) (int64, error)
	SetAllowance(ctx context.Context, owner, spender string, amount int64) error
	BeginTx(ctx context.Context) (TokenTx, error)
}

// TokenTx defines the interface for currency transactions
type TokenTx interface {
	Tx
	AddBalance(ctx context.Context, address string, amount int64) error
	// SubBalance fails with domain.ErrInsufficientFunds when the balance
	// cannot cover amount.
	SubBalance(ctx context.Context, address string, amount int64) error
	// SubAllowance fails with domain.ErrTransferFailed when the allowance
	// cannot cover amount.
	SubAllowance(ctx context.Context, owner, spender string, amount int64) error
	AddTotalSupply(ctx context.Context, amount int64) error
}
