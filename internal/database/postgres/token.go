package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/veylan/EmberArmory_Go/internal/repository"
)

// TokenRepository implements the ember currency repository for PostgreSQL
type TokenRepository struct {
	db *pgxpool.Pool
}

// NewTokenRepository creates a new TokenRepository
func NewTokenRepository(db *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{db: db}
}

// TokenTx implements repository.TokenTx
type TokenTx struct {
	tx pgx.Tx
}

// BeginTx starts a new transaction
func (r *TokenRepository) BeginTx(ctx context.Context) (repository.TokenTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &TokenTx{tx: tx}, nil
}

// GetBalance returns the address's ember balance (0 for unknown addresses)
func (r *TokenRepository) GetBalance(ctx context.Context, address string) (int64, error) {
	return getCurrencyBalance(ctx, r.db, address)
}

// GetAllowance returns the amount spender may pull from owner
func (r *TokenRepository) GetAllowance(ctx context.Context, owner, spender string) (int64, error) {
	return getAllowance(ctx, r.db, owner, spender)
}

// GetTotalSupply returns the total ember supply
func (r *TokenRepository) GetTotalSupply(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT total FROM currency_supply WHERE id = 1`).Scan(&total)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get total supply: %w", err)
	}
	return total, nil
}

// SetAllowance overwrites the owner->spender allowance
func (r *TokenRepository) SetAllowance(ctx context.Context, owner, spender string, amount int64) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO currency_allowances (owner, spender, amount) VALUES ($1, $2, $3)
		ON CONFLICT (owner, spender) DO UPDATE SET amount = EXCLUDED.amount`,
		owner, spender, amount)
	if err != nil {
		return fmt.Errorf("failed to set allowance: %w", err)
	}
	return nil
}

// Commit commits the transaction
func (t *TokenTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *TokenTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// AddBalance increases an address's balance
func (t *TokenTx) AddBalance(ctx context.Context, address string, amount int64) error {
	return addCurrencyBalance(ctx, t.tx, address, amount)
}

// SubBalance decreases an address's balance, failing on a shortfall
func (t *TokenTx) SubBalance(ctx context.Context, address string, amount int64) error {
	return subCurrencyBalance(ctx, t.tx, address, amount)
}

// SubAllowance spends part of an allowance, failing on a shortfall
func (t *TokenTx) SubAllowance(ctx context.Context, owner, spender string, amount int64) error {
	return subAllowance(ctx, t.tx, owner, spender, amount)
}

// AddTotalSupply adjusts the recorded total supply
func (t *TokenTx) AddTotalSupply(ctx context.Context, amount int64) error {
	return addTotalSupply(ctx, t.tx, amount)
}
