package catalog

import (
	"context"
	"fmt"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/veylan/EmberArmory_Go/internal/access"
	"github.com/veylan/EmberArmory_Go/internal/domain"
	"github.com/veylan/EmberArmory_Go/internal/logger"
	"github.com/veylan/EmberArmory_Go/internal/repository"
)

// Service defines the interface for the equipment catalog. Prices are
// un-scaled embers; callers scale before charging.
type Service interface {
	// CreateItem registers a new item with exactly five tier prices.
	// Requires the administrator capability. Prices are immutable once set.
	CreateItem(ctx context.Context, caller string, itemID int, prices []int64) error

	// MintSingle and MintBatch mint equipment. Requires the minter
	// capability. Existence is not checked: minting an uncreated ID
	// silently creates a balance, a quirk kept for engine compatibility.
	MintSingle(ctx context.Context, caller, to string, itemID int, amount int64) error
	MintBatch(ctx context.Context, caller, to string, itemIDs []int, amounts []int64) error

	// GetTierCost returns the stored un-scaled price for one tier.
	GetTierCost(ctx context.Context, itemID, tier int) (int64, error)

	BalanceOf(ctx context.Context, owner string, itemID int) (int64, error)
	// BalanceOfBatch resolves pairwise (owners[i], itemIDs[i]) lookups.
	BalanceOfBatch(ctx context.Context, owners []string, itemIDs []int) ([]int64, error)

	TotalMinted(ctx context.Context, itemID int) (int64, error)

	// SetMetadataURI requires the uri_setter capability.
	SetMetadataURI(ctx context.Context, caller, uri string) error
	GetMetadataURI(ctx context.Context) (string, error)
}

type service struct {
	repo       repository.Catalog
	accessSvc  access.Service
	priceCache *expirable.LRU[int, []int64]
}

// NewService creates a new catalog service
func NewService(repo repository.Catalog, accessSvc access.Service) Service {
	return &service{
		repo:       repo,
		accessSvc:  accessSvc,
		priceCache: expirable.NewLRU[int, []int64](priceCacheSize, nil, priceCacheTTL),
	}
}

func (s *service) CreateItem(ctx context.Context, caller string, itemID int, prices []int64) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCreateItemCalled, "caller", caller, "itemID", itemID)

	if itemID <= 0 {
		return fmt.Errorf("%w: item ID %d", domain.ErrInvalidInput, itemID)
	}
	if len(prices) != domain.TierPriceCount {
		return fmt.Errorf("%w: expected %d prices, got %d",
			domain.ErrInvalidPriceList, domain.TierPriceCount, len(prices))
	}
	for tier, price := range prices {
		if price < 0 {
			return fmt.Errorf("%w: negative price %d at tier %d",
				domain.ErrInvalidPriceList, price, tier+1)
		}
	}
	if err := s.accessSvc.Require(ctx, caller, domain.RoleAdministrator); err != nil {
		return err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.InsertItem(ctx, itemID, prices); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info("Item created", "itemID", itemID, "prices", prices)
	return nil
}

func (s *service) MintSingle(ctx context.Context, caller, to string, itemID int, amount int64) error {
	return s.MintBatch(ctx, caller, to, []int{itemID}, []int64{amount})
}

func (s *service) MintBatch(ctx context.Context, caller, to string, itemIDs []int, amounts []int64) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgMintCalled, "caller", caller, "to", to, "items", len(itemIDs))

	if len(itemIDs) != len(amounts) {
		return fmt.Errorf("%w: %d item IDs but %d amounts",
			domain.ErrInvalidInput, len(itemIDs), len(amounts))
	}
	if len(itemIDs) == 0 || len(itemIDs) > domain.MaxBatchItems {
		return fmt.Errorf("%w: batch size %d", domain.ErrInvalidInput, len(itemIDs))
	}
	for i, amount := range amounts {
		if amount < 0 {
			return fmt.Errorf("%w: negative amount for item %d",
				domain.ErrInvalidInput, itemIDs[i])
		}
	}
	if err := s.accessSvc.Require(ctx, caller, domain.RoleMinter); err != nil {
		return err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	for i, itemID := range itemIDs {
		if err := tx.AddEquipment(ctx, to, itemID, amounts[i]); err != nil {
			return fmt.Errorf("failed to mint item %d: %w", itemID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info("Equipment minted", "to", to, "items", len(itemIDs))
	return nil
}

// GetTierCost serves from the price cache when possible; a miss loads the
// full price list so subsequent tiers hit.
func (s *service) GetTierCost(ctx context.Context, itemID, tier int) (int64, error) {
	if !domain.ValidTier(tier) {
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidTier, tier)
	}

	prices, ok := s.priceCache.Get(itemID)
	if !ok {
		var err error
		prices, err = s.repo.GetItemPrices(ctx, itemID)
		if err != nil {
			return 0, fmt.Errorf("failed to get item prices: %w", err)
		}
		if prices == nil {
			return 0, fmt.Errorf("%w: %d", domain.ErrUnknownItem, itemID)
		}
		s.priceCache.Add(itemID, prices)
	}

	if tier > len(prices) {
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidTier, tier)
	}
	return prices[tier-1], nil
}

func (s *service) BalanceOf(ctx context.Context, owner string, itemID int) (int64, error) {
	return s.repo.GetEquipmentBalance(ctx, owner, itemID)
}

func (s *service) BalanceOfBatch(ctx context.Context, owners []string, itemIDs []int) ([]int64, error) {
	if len(owners) != len(itemIDs) {
		return nil, fmt.Errorf("%w: %d owners but %d item IDs",
			domain.ErrInvalidInput, len(owners), len(itemIDs))
	}
	return s.repo.GetEquipmentBalances(ctx, owners, itemIDs)
}

func (s *service) TotalMinted(ctx context.Context, itemID int) (int64, error) {
	return s.repo.GetTotalMinted(ctx, itemID)
}

func (s *service) SetMetadataURI(ctx context.Context, caller, uri string) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSetURICalled, "caller", caller)

	if err := s.accessSvc.Require(ctx, caller, domain.RoleURISetter); err != nil {
		return err
	}
	if err := s.repo.SetBaseURI(ctx, uri); err != nil {
		return fmt.Errorf("failed to set base URI: %w", err)
	}

	log.Info("Metadata URI updated", "uri", uri)
	return nil
}

func (s *service) GetMetadataURI(ctx context.Context) (string, error) {
	return s.repo.GetBaseURI(ctx)
}
