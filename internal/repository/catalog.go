package repository

import "context"

// Catalog defines the interface for armory persistence. Item existence is
// the presence of the item row; minted quantity is tracked separately.
type Catalog interface {
	// GetItemPrices returns the five tier prices, or nil if the item has
	// never been created.
	GetItemPrices(ctx context.Context, itemID int) ([]int64, error)
	GetEquipmentBalance(ctx context.Context, owner string, itemID int) (int64, error)
	// GetEquipmentBalances resolves pairwise (owners[i], itemIDs[i]) lookups.
	GetEquipmentBalances(ctx context.Context, owners []string, itemIDs []int) ([]int64, error)
	GetTotalMinted(ctx context.Context, itemID int) (int64, error)
	GetBaseURI(ctx context.Context) (string, error)
	SetBaseURI(ctx context.Context, uri string) error
	BeginTx(ctx context.Context) (CatalogTx, error)
}

// CatalogTx defines the interface for armory transactions
type CatalogTx interface {
	Tx
	// InsertItem creates the item row and its five tier prices; fails with
	// domain.ErrAlreadyExists if the row exists. Prices are never updated
	// after this insert.
	InsertItem(ctx context.Context, itemID int, prices []int64) error
	// AddEquipment increases the owner's balance and the item's total
	// minted quantity. No existence check: minting an uncreated ID
	// silently creates a balance without a price list.
	AddEquipment(ctx context.Context, owner string, itemID int, amount int64) error
}
