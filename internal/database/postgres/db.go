package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/veylan/EmberArmory_Go/internal/domain"
)

// dbtx is the querying surface shared by *pgxpool.Pool and pgx.Tx, so the
// same helpers serve both repository and transaction methods.
type dbtx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Currency ledger helpers

func getCurrencyBalance(ctx context.Context, q dbtx, address string) (int64, error) {
	var amount int64
	err := q.QueryRow(ctx, `SELECT amount FROM currency_balances WHERE address = $1`, address).Scan(&amount)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get currency balance: %w", err)
	}
	return amount, nil
}

func addCurrencyBalance(ctx context.Context, q dbtx, address string, amount int64) error {
	_, err := q.Exec(ctx, `
		INSERT INTO currency_balances (address, amount) VALUES ($1, $2)
		ON CONFLICT (address) DO UPDATE SET amount = currency_balances.amount + EXCLUDED.amount`,
		address, amount)
	if err != nil {
		return fmt.Errorf("failed to add currency balance: %w", err)
	}
	return nil
}

func subCurrencyBalance(ctx context.Context, q dbtx, address string, amount int64) error {
	tag, err := q.Exec(ctx, `
		UPDATE currency_balances SET amount = amount - $2
		WHERE address = $1 AND amount >= $2`,
		address, amount)
	if err != nil {
		return fmt.Errorf("failed to deduct currency balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInsufficientFunds
	}
	return nil
}

func getAllowance(ctx context.Context, q dbtx, owner, spender string) (int64, error) {
	var amount int64
	err := q.QueryRow(ctx, `SELECT amount FROM currency_allowances WHERE owner = $1 AND spender = $2`,
		owner, spender).Scan(&amount)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get allowance: %w", err)
	}
	return amount, nil
}

func subAllowance(ctx context.Context, q dbtx, owner, spender string, amount int64) error {
	tag, err := q.Exec(ctx, `
		UPDATE currency_allowances SET amount = amount - $3
		WHERE owner = $1 AND spender = $2 AND amount >= $3`,
		owner, spender, amount)
	if err != nil {
		return fmt.Errorf("failed to spend allowance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransferFailed
	}
	return nil
}

func addTotalSupply(ctx context.Context, q dbtx, amount int64) error {
	_, err := q.Exec(ctx, `UPDATE currency_supply SET total = total + $1 WHERE id = 1`, amount)
	if err != nil {
		return fmt.Errorf("failed to update total supply: %w", err)
	}
	return nil
}

// Equipment ledger helpers

func getEquipmentBalance(ctx context.Context, q dbtx, owner string, itemID int) (int64, error) {
	var amount int64
	err := q.QueryRow(ctx, `SELECT amount FROM equipment_balances WHERE address = $1 AND item_id = $2`,
		owner, itemID).Scan(&amount)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get equipment balance: %w", err)
	}
	return amount, nil
}

func addEquipment(ctx context.Context, q dbtx, owner string, itemID int, amount int64) error {
	_, err := q.Exec(ctx, `
		INSERT INTO equipment_balances (address, item_id, amount) VALUES ($1, $2, $3)
		ON CONFLICT (address, item_id) DO UPDATE SET amount = equipment_balances.amount + EXCLUDED.amount`,
		owner, itemID, amount)
	if err != nil {
		return fmt.Errorf("failed to add equipment: %w", err)
	}

	_, err = q.Exec(ctx, `
		INSERT INTO item_supply (item_id, total_minted) VALUES ($1, $2)
		ON CONFLICT (item_id) DO UPDATE SET total_minted = item_supply.total_minted + EXCLUDED.total_minted`,
		itemID, amount)
	if err != nil {
		return fmt.Errorf("failed to update item supply: %w", err)
	}
	return nil
}

// Native gas ledger helpers

func getGasBalance(ctx context.Context, q dbtx, address string, forUpdate bool) (int64, error) {
	query := `SELECT amount FROM gas_balances WHERE address = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var amount int64
	err := q.QueryRow(ctx, query, address).Scan(&amount)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get gas balance: %w", err)
	}
	return amount, nil
}

func addGasBalance(ctx context.Context, q dbtx, address string, amount int64) error {
	_, err := q.Exec(ctx, `
		INSERT INTO gas_balances (address, amount) VALUES ($1, $2)
		ON CONFLICT (address) DO UPDATE SET amount = gas_balances.amount + EXCLUDED.amount`,
		address, amount)
	if err != nil {
		return fmt.Errorf("failed to add gas balance: %w", err)
	}
	return nil
}

func subGasBalance(ctx context.Context, q dbtx, address string, amount int64) error {
	tag, err := q.Exec(ctx, `
		UPDATE gas_balances SET amount = amount - $2
		WHERE address = $1 AND amount >= $2`,
		address, amount)
	if err != nil {
		return fmt.Errorf("failed to deduct gas balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInsufficientGasReserve
	}
	return nil
}

// Account helpers

func getAccount(ctx context.Context, q dbtx, address string, forUpdate bool) (*domain.Account, error) {
	query := `SELECT address, registered, rank, created_at, updated_at FROM accounts WHERE address = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var acct domain.Account
	err := q.QueryRow(ctx, query, address).Scan(
		&acct.Address, &acct.Registered, &acct.Rank, &acct.CreatedAt, &acct.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &acct, nil
}
