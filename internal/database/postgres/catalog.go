package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/veylan/EmberArmory_Go/internal/domain"
	"github.com/veylan/EmberArmory_Go/internal/repository"
)

// CatalogRepository implements the armory repository for PostgreSQL
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// CatalogTx implements repository.CatalogTx
type CatalogTx struct {
	tx pgx.Tx
}

// BeginTx starts a new transaction
func (r *CatalogRepository) BeginTx(ctx context.Context) (repository.CatalogTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &CatalogTx{tx: tx}, nil
}

// GetItemPrices returns the item's five tier prices in tier order, or nil if
// the item has never been created
func (r *CatalogRepository) GetItemPrices(ctx context.Context, itemID int) ([]int64, error) {
	rows, err := r.db.Query(ctx,
		`SELECT price FROM item_prices WHERE item_id = $1 ORDER BY tier`, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to query item prices: %w", err)
	}
	defer rows.Close()

	var prices []int64
	for rows.Next() {
		var price int64
		if err := rows.Scan(&price); err != nil {
			return nil, fmt.Errorf("failed to scan price: %w", err)
		}
		prices = append(prices, price)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read prices: %w", err)
	}
	return prices, nil
}

// GetEquipmentBalance returns the owner's balance of one item
func (r *CatalogRepository) GetEquipmentBalance(ctx context.Context, owner string, itemID int) (int64, error) {
	return getEquipmentBalance(ctx, r.db, owner, itemID)
}

// GetEquipmentBalances resolves pairwise (owners[i], itemIDs[i]) lookups
func (r *CatalogRepository) GetEquipmentBalances(ctx context.Context, owners []string, itemIDs []int) ([]int64, error) {
	balances := make([]int64, len(owners))
	for i := range owners {
		amount, err := getEquipmentBalance(ctx, r.db, owners[i], itemIDs[i])
		if err != nil {
			return nil, err
		}
		balances[i] = amount
	}
	return balances, nil
}

// GetTotalMinted returns the item's ever-minted quantity
func (r *CatalogRepository) GetTotalMinted(ctx context.Context, itemID int) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT total_minted FROM item_supply WHERE item_id = $1`, itemID).Scan(&total)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get total minted: %w", err)
	}
	return total, nil
}

// GetBaseURI returns the equipment metadata base URI
func (r *CatalogRepository) GetBaseURI(ctx context.Context) (string, error) {
	var uri string
	err := r.db.QueryRow(ctx, `SELECT base_uri FROM catalog_metadata WHERE id = 1`).Scan(&uri)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get base URI: %w", err)
	}
	return uri, nil
}

// SetBaseURI overwrites the equipment metadata base URI
func (r *CatalogRepository) SetBaseURI(ctx context.Context, uri string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO catalog_metadata (id, base_uri) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET base_uri = EXCLUDED.base_uri`, uri)
	if err != nil {
		return fmt.Errorf("failed to set base URI: %w", err)
	}
	return nil
}

// Commit commits the transaction
func (t *CatalogTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *CatalogTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// InsertItem creates the item row and its tier prices
func (t *CatalogTx) InsertItem(ctx context.Context, itemID int, prices []int64) error {
	_, err := t.tx.Exec(ctx, `INSERT INTO items (item_id) VALUES ($1)`, itemID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("failed to insert item: %w", err)
	}

	for tier, price := range prices {
		_, err := t.tx.Exec(ctx,
			`INSERT INTO item_prices (item_id, tier, price) VALUES ($1, $2, $3)`,
			itemID, tier+1, price)
		if err != nil {
			return fmt.Errorf("failed to insert price for tier %d: %w", tier+1, err)
		}
	}
	return nil
}

// AddEquipment increases the owner's balance and the item's minted total
func (t *CatalogTx) AddEquipment(ctx context.Context, owner string, itemID int, amount int64) error {
	return addEquipment(ctx, t.tx, owner, itemID, amount)
}
