package repository

import (
	"context"

	"github.com/veylan/EmberArmory_Go/internal/domain"
)

// Engine defines the interface for progression engine persistence. Like the
// other cross-domain repositories, one EngineTx spans all three ledgers
// (currency, equipment, rank) so a composite operation commits or rolls back
// as a unit.
type Engine interface {
	// GetAccount returns nil when the address has never been registered.
	GetAccount(ctx context.Context, address string) (*domain.Account, error)
	GetGasBalance(ctx context.Context, address string) (int64, error)
	BeginTx(ctx context.Context) (EngineTx, error)
}

// EngineTx defines the interface for progression transactions
type EngineTx interface {
	Tx

	// Rank ledger
	GetAccountForUpdate(ctx context.Context, address string) (*domain.Account, error)
	InsertAccount(ctx context.Context, address string) error
	SetRank(ctx context.Context, address string, rank int) error

	// Currency ledger
	GetCurrencyBalance(ctx context.Context, address string) (int64, error)
	// MintCurrency increases the recipient balance and total supply.
	MintCurrency(ctx context.Context, to string, amount int64) error
	// SubAllowance fails with domain.ErrTransferFailed on a shortfall.
	SubAllowance(ctx context.Context, owner, spender string, amount int64) error
	// TransferCurrency fails with domain.ErrInsufficientFunds on a shortfall.
	TransferCurrency(ctx context.Context, from, to string, amount int64) error

	// Equipment ledger
	GetEquipmentBalance(ctx context.Context, owner string, itemID int) (int64, error)
	AddEquipment(ctx context.Context, owner string, itemID int, amount int64) error

	// Native gas ledger
	GetGasBalanceForUpdate(ctx context.Context, address string) (int64, error)
	// TransferGas fails with domain.ErrInsufficientGasReserve on a shortfall.
	TransferGas(ctx context.Context, from, to string, amount int64) error
	AddGas(ctx context.Context, address string, amount int64) error
}
