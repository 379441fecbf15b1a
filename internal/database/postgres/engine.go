package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/veylan/EmberArmory_Go/internal/domain"
	"github.com/veylan/EmberArmory_Go/internal/repository"
)

// EngineRepository implements the progression engine repository for
// PostgreSQL. One transaction spans the rank, currency, equipment and gas
// ledgers so a composite operation commits or rolls back as a unit.
type EngineRepository struct {
	db *pgxpool.Pool
}

// NewEngineRepository creates a new EngineRepository
func NewEngineRepository(db *pgxpool.Pool) *EngineRepository {
	return &EngineRepository{db: db}
}

// EngineTx implements repository.EngineTx
type EngineTx struct {
	tx pgx.Tx
}

// BeginTx starts a new transaction
func (r *EngineRepository) BeginTx(ctx context.Context) (repository.EngineTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &EngineTx{tx: tx}, nil
}

// GetAccount returns the account, or nil if the address was never registered
func (r *EngineRepository) GetAccount(ctx context.Context, address string) (*domain.Account, error) {
	return getAccount(ctx, r.db, address, false)
}

// GetGasBalance returns an address's native gas balance
func (r *EngineRepository) GetGasBalance(ctx context.Context, address string) (int64, error) {
	return getGasBalance(ctx, r.db, address, false)
}

// Commit commits the transaction
func (t *EngineTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *EngineTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// GetAccountForUpdate locks and returns the account row, nil if absent
func (t *EngineTx) GetAccountForUpdate(ctx context.Context, address string) (*domain.Account, error) {
	return getAccount(ctx, t.tx, address, true)
}

// InsertAccount registers a new account at rank 0
func (t *EngineTx) InsertAccount(ctx context.Context, address string) error {
	_, err := t.tx.Exec(ctx,
		`INSERT INTO accounts (address, registered, rank) VALUES ($1, TRUE, 0)`, address)
	if err != nil {
		return fmt.Errorf("failed to insert account: %w", err)
	}
	return nil
}

// SetRank stores the account's new rank
func (t *EngineTx) SetRank(ctx context.Context, address string, rank int) error {
	tag, err := t.tx.Exec(ctx,
		`UPDATE accounts SET rank = $2, updated_at = NOW() WHERE address = $1`, address, rank)
	if err != nil {
		return fmt.Errorf("failed to set rank: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotRegistered
	}
	return nil
}

// GetCurrencyBalance returns an address's ember balance
func (t *EngineTx) GetCurrencyBalance(ctx context.Context, address string) (int64, error) {
	return getCurrencyBalance(ctx, t.tx, address)
}

// MintCurrency credits newly minted embers and bumps total supply
func (t *EngineTx) MintCurrency(ctx context.Context, to string, amount int64) error {
	if err := addCurrencyBalance(ctx, t.tx, to, amount); err != nil {
		return err
	}
	return addTotalSupply(ctx, t.tx, amount)
}

// SubAllowance spends part of an allowance, failing on a shortfall
func (t *EngineTx) SubAllowance(ctx context.Context, owner, spender string, amount int64) error {
	return subAllowance(ctx, t.tx, owner, spender, amount)
}

// TransferCurrency moves embers between addresses, failing on a shortfall
func (t *EngineTx) TransferCurrency(ctx context.Context, from, to string, amount int64) error {
	if err := subCurrencyBalance(ctx, t.tx, from, amount); err != nil {
		return err
	}
	return addCurrencyBalance(ctx, t.tx, to, amount)
}

// GetEquipmentBalance returns the owner's balance of one item
func (t *EngineTx) GetEquipmentBalance(ctx context.Context, owner string, itemID int) (int64, error) {
	return getEquipmentBalance(ctx, t.tx, owner, itemID)
}

// AddEquipment mints equipment to the owner and bumps the minted total
func (t *EngineTx) AddEquipment(ctx context.Context, owner string, itemID int, amount int64) error {
	return addEquipment(ctx, t.tx, owner, itemID, amount)
}

// GetGasBalanceForUpdate locks and returns an address's gas balance
func (t *EngineTx) GetGasBalanceForUpdate(ctx context.Context, address string) (int64, error) {
	return getGasBalance(ctx, t.tx, address, true)
}

// TransferGas moves native gas between addresses, failing on a shortfall
func (t *EngineTx) TransferGas(ctx context.Context, from, to string, amount int64) error {
	if err := subGasBalance(ctx, t.tx, from, amount); err != nil {
		return err
	}
	return addGasBalance(ctx, t.tx, to, amount)
}

// AddGas credits native gas to an address
func (t *EngineTx) AddGas(ctx context.Context, address string, amount int64) error {
	return addGasBalance(ctx, t.tx, address, amount)
}
