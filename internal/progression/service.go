package progression

import (
	"context"
	"fmt"

	"github.com/veylan/EmberArmory_Go/internal/access"
	"github.com/veylan/EmberArmory_Go/internal/catalog"
	"github.com/veylan/EmberArmory_Go/internal/domain"
	"github.com/veylan/EmberArmory_Go/internal/event"
	"github.com/veylan/EmberArmory_Go/internal/logger"
	"github.com/veylan/EmberArmory_Go/internal/repository"
)

// PurchaseResult describes one settled purchase.
type PurchaseResult struct {
	ItemID int   `json:"item_id"`
	Tier   int   `json:"tier"`
	Cost   int64 `json:"cost"` // scaled embers pulled
}

// Service defines the interface for the purchase and progression engine.
// Every composite operation validates all preconditions and applies all
// ledger mutations inside one transaction; events go out only after commit.
type Service interface {
	// RegisterUser enrolls an address at rank 0, mints the starting ember
	// grant and pays the registration gas stipend out of the engine
	// reserve. Requires the administrator capability.
	RegisterUser(ctx context.Context, caller, address string) error

	// PurchaseItem settles one tier-gated purchase: the derived tier must
	// be at most rank+1, the buyer must hold and have approved the scaled
	// cost, then the item is minted to the buyer.
	PurchaseItem(ctx context.Context, buyer string, itemID int) (*PurchaseResult, error)

	// PurchaseItemsBatch settles several purchases with one aggregate
	// allowance pull. All items pass every check or nothing settles.
	PurchaseItemsBatch(ctx context.Context, buyer string, itemIDs []int) ([]PurchaseResult, error)

	// UpgradeTier advances a full-set holder one rank and pays the ember
	// and gas rewards.
	UpgradeTier(ctx context.Context, address string) (int, error)

	// Admin pass-throughs to the catalog.
	AdminMintEquipmentBatch(ctx context.Context, caller, to string, itemIDs []int, amounts []int64) error
	AdminSetEquipmentURI(ctx context.Context, caller, uri string) error

	// AdminWithdraw moves native gas out of the engine reserve.
	AdminWithdraw(ctx context.Context, caller, to string, amount int64) error

	// Deposit tops up the engine gas reserve unconditionally.
	Deposit(ctx context.Context, from string, amount int64) error

	GetRank(ctx context.Context, address string) (int, error)

	// PreviewCost returns the scaled ember cost of an item at its derived
	// tier, without touching any ledger.
	PreviewCost(ctx context.Context, itemID int) (int64, error)
}

type service struct {
	repo          repository.Engine
	catalogSvc    catalog.Service
	accessSvc     access.Service
	bus           event.Bus
	engineAddress string
}

// NewService creates a new progression engine service. engineAddress is the
// custodial address holding the gas reserve and receiving purchase payments.
func NewService(repo repository.Engine, catalogSvc catalog.Service, accessSvc access.Service, bus event.Bus, engineAddress string) Service {
	return &service{
		repo:          repo,
		catalogSvc:    catalogSvc,
		accessSvc:     accessSvc,
		bus:           bus,
		engineAddress: engineAddress,
	}
}

// scaleCost converts an un-scaled catalog price to ledger units.
func scaleCost(price int64) int64 {
	return price * domain.CurrencyScale
}

func (s *service) publish(ctx context.Context, events ...event.Event) {
	if s.bus == nil {
		return
	}
	for _, evt := range events {
		if err := s.bus.Publish(ctx, evt); err != nil {
			logger.FromContext(ctx).Warn("Failed to publish event", "error", err, "type", evt.Type)
		}
	}
}

func (s *service) RegisterUser(ctx context.Context, caller, address string) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRegisterCalled, "caller", caller, "address", address)

	if err := s.accessSvc.Require(ctx, caller, domain.RoleAdministrator); err != nil {
		return err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	acct, err := tx.GetAccountForUpdate(ctx, address)
	if err != nil {
		return fmt.Errorf("failed to get account: %w", err)
	}
	if acct != nil {
		return fmt.Errorf("%w: %s", domain.ErrAlreadyRegistered, address)
	}

	if err := tx.InsertAccount(ctx, address); err != nil {
		return err
	}

	grant := scaleCost(domain.StartingGrant)
	if err := tx.MintCurrency(ctx, address, grant); err != nil {
		return fmt.Errorf("failed to mint starting grant: %w", err)
	}

	if err := tx.TransferGas(ctx, s.engineAddress, address, domain.RegistrationGasAmount); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.publish(ctx,
		event.NewUserRegisteredEvent(address),
		event.NewGasDistributedEvent(address, domain.RegistrationGasAmount),
	)

	log.Info("User registered", "address", address, "grant", grant, "gas", domain.RegistrationGasAmount)
	return nil
}

// checkPurchase validates tier gating and returns the scaled cost. Runs
// before any ledger mutation.
func (s *service) checkPurchase(ctx context.Context, rank, itemID int) (tier int, cost int64, err error) {
	tier = domain.ItemTier(itemID)
	if tier > rank+1 {
		return 0, 0, fmt.Errorf("%w: item %d is tier %d, rank %d allows up to %d",
			domain.ErrTierTooHigh, itemID, tier, rank, rank+1)
	}

	price, err := s.catalogSvc.GetTierCost(ctx, itemID, tier)
	if err != nil {
		return 0, 0, err
	}
	return tier, scaleCost(price), nil
}

func (s *service) PurchaseItem(ctx context.Context, buyer string, itemID int) (*PurchaseResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgPurchaseCalled, "buyer", buyer, "itemID", itemID)

	results, err := s.purchase(ctx, buyer, []int{itemID})
	if err != nil {
		return nil, err
	}

	log.Info("Item purchased", "buyer", buyer, "itemID", itemID, "cost", results[0].Cost)
	return &results[0], nil
}

func (s *service) PurchaseItemsBatch(ctx context.Context, buyer string, itemIDs []int) ([]PurchaseResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgPurchaseBatchCalled, "buyer", buyer, "items", len(itemIDs))

	if len(itemIDs) == 0 || len(itemIDs) > domain.MaxBatchItems {
		return nil, fmt.Errorf("%w: batch size %d", domain.ErrInvalidInput, len(itemIDs))
	}

	results, err := s.purchase(ctx, buyer, itemIDs)
	if err != nil {
		return nil, err
	}

	log.Info("Batch purchased", "buyer", buyer, "items", len(results))
	return results, nil
}

// purchase settles one or more items in a single transaction: every item is
// tier-checked against the buyer's rank, the aggregate cost is pulled through
// the buyer's allowance in one step, then each item is minted.
func (s *service) purchase(ctx context.Context, buyer string, itemIDs []int) ([]PurchaseResult, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	acct, err := tx.GetAccountForUpdate(ctx, buyer)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if acct == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotRegistered, buyer)
	}

	results := make([]PurchaseResult, 0, len(itemIDs))
	var total int64
	for _, itemID := range itemIDs {
		tier, cost, err := s.checkPurchase(ctx, acct.Rank, itemID)
		if err != nil {
			return nil, err
		}
		results = append(results, PurchaseResult{ItemID: itemID, Tier: tier, Cost: cost})
		total += cost
	}

	balance, err := tx.GetCurrencyBalance(ctx, buyer)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	if balance < total {
		return nil, fmt.Errorf("%w: need %d, have %d", domain.ErrInsufficientFunds, total, balance)
	}

	if err := tx.SubAllowance(ctx, buyer, s.engineAddress, total); err != nil {
		return nil, err
	}
	if err := tx.TransferCurrency(ctx, buyer, s.engineAddress, total); err != nil {
		return nil, err
	}

	for _, r := range results {
		if err := tx.AddEquipment(ctx, buyer, r.ItemID, 1); err != nil {
			return nil, fmt.Errorf("failed to mint item %d: %w", r.ItemID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	for _, r := range results {
		s.publish(ctx, event.NewItemPurchasedEvent(buyer, r.ItemID, r.Tier, r.Cost))
	}

	return results, nil
}

func (s *service) UpgradeTier(ctx context.Context, address string) (int, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgUpgradeCalled, "address", address)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	acct, err := tx.GetAccountForUpdate(ctx, address)
	if err != nil {
		return 0, fmt.Errorf("failed to get account: %w", err)
	}
	if acct == nil {
		return 0, fmt.Errorf("%w: %s", domain.ErrNotRegistered, address)
	}
	if acct.Rank >= domain.RankMax {
		return 0, fmt.Errorf("%w: rank %d", domain.ErrMaxTierReached, acct.Rank)
	}

	newRank := acct.Rank + 1
	for _, itemID := range domain.RankSetItemIDs(newRank) {
		held, err := tx.GetEquipmentBalance(ctx, address, itemID)
		if err != nil {
			return 0, fmt.Errorf("failed to get equipment balance: %w", err)
		}
		if held < 1 {
			return 0, fmt.Errorf("%w: missing %s (item %d) at tier %d",
				domain.ErrMissingEquipment, domain.ItemFamily(itemID), itemID, newRank)
		}
	}

	if err := tx.SetRank(ctx, address, newRank); err != nil {
		return 0, err
	}

	reward := scaleCost(domain.UpgradeRewardPerRank * int64(newRank))
	if err := tx.MintCurrency(ctx, address, reward); err != nil {
		return 0, fmt.Errorf("failed to mint upgrade reward: %w", err)
	}

	if err := tx.TransferGas(ctx, s.engineAddress, address, domain.UpgradeGasAmount); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.publish(ctx,
		event.NewUserTierUpEvent(address, newRank, reward),
		event.NewGasDistributedEvent(address, domain.UpgradeGasAmount),
	)

	log.Info("Rank upgraded", "address", address, "newRank", newRank, "reward", reward)
	return newRank, nil
}

// AdminMintEquipmentBatch forwards an administrator's mint to the catalog
// under the engine's own minter capability.
func (s *service) AdminMintEquipmentBatch(ctx context.Context, caller, to string, itemIDs []int, amounts []int64) error {
	if err := s.accessSvc.Require(ctx, caller, domain.RoleAdministrator); err != nil {
		return err
	}
	return s.catalogSvc.MintBatch(ctx, s.engineAddress, to, itemIDs, amounts)
}

// AdminSetEquipmentURI forwards an administrator's URI update to the catalog
// under the engine's uri_setter capability.
func (s *service) AdminSetEquipmentURI(ctx context.Context, caller, uri string) error {
	if err := s.accessSvc.Require(ctx, caller, domain.RoleAdministrator); err != nil {
		return err
	}
	return s.catalogSvc.SetMetadataURI(ctx, s.engineAddress, uri)
}

func (s *service) AdminWithdraw(ctx context.Context, caller, to string, amount int64) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgWithdrawCalled, "caller", caller, "to", to, "amount", amount)

	if amount <= 0 {
		return fmt.Errorf("%w: amount %d", domain.ErrInvalidInput, amount)
	}
	if err := s.accessSvc.Require(ctx, caller, domain.RoleAdministrator); err != nil {
		return err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	reserve, err := tx.GetGasBalanceForUpdate(ctx, s.engineAddress)
	if err != nil {
		return fmt.Errorf("failed to get reserve: %w", err)
	}
	if reserve < amount {
		return fmt.Errorf("%w: reserve %d, requested %d", domain.ErrInsufficientFunds, reserve, amount)
	}

	if err := tx.TransferGas(ctx, s.engineAddress, to, amount); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info("Reserve withdrawn", "to", to, "amount", amount)
	return nil
}

func (s *service) Deposit(ctx context.Context, from string, amount int64) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgDepositCalled, "from", from, "amount", amount)

	if amount <= 0 {
		return fmt.Errorf("%w: amount %d", domain.ErrInvalidInput, amount)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.AddGas(ctx, s.engineAddress, amount); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.publish(ctx, event.NewFundsReceivedEvent(from, amount))

	log.Info("Reserve funded", "from", from, "amount", amount)
	return nil
}

func (s *service) GetRank(ctx context.Context, address string) (int, error) {
	acct, err := s.repo.GetAccount(ctx, address)
	if err != nil {
		return 0, fmt.Errorf("failed to get account: %w", err)
	}
	if acct == nil {
		return 0, fmt.Errorf("%w: %s", domain.ErrNotRegistered, address)
	}
	return acct.Rank, nil
}

func (s *service) PreviewCost(ctx context.Context, itemID int) (int64, error) {
	tier := domain.ItemTier(itemID)
	price, err := s.catalogSvc.GetTierCost(ctx, itemID, tier)
	if err != nil {
		return 0, err
	}
	return scaleCost(price), nil
}
