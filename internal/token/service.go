package token

import (
	"context"
	"fmt"

	"github.com/veylan/EmberArmory_Go/internal/access"
	"github.com/veylan/EmberArmory_Go/internal/domain"
	"github.com/veylan/EmberArmory_Go/internal/logger"
	"github.com/veylan/EmberArmory_Go/internal/repository"
)

// Service defines the interface for the ember currency ledger. Amounts are
// scaled integers: 1 ember = domain.CurrencyScale units.
type Service interface {
	// Mint creates new embers. Requires the minter capability.
	Mint(ctx context.Context, caller, to string, amount int64) error

	// Approve sets the amount spender may pull from owner.
	Approve(ctx context.Context, owner, spender string, amount int64) error

	// Transfer moves embers between addresses.
	Transfer(ctx context.Context, from, to string, amount int64) error

	// TransferFrom moves embers out of from on the strength of an
	// allowance previously granted to spender.
	TransferFrom(ctx context.Context, spender, from, to string, amount int64) error

	BalanceOf(ctx context.Context, address string) (int64, error)
	Allowance(ctx context.Context, owner, spender string) (int64, error)
	TotalSupply(ctx context.Context) (int64, error)

	// Decimals is the fixed decimal-scaling exponent.
	Decimals() int
	// Scale is 10^Decimals.
	Scale() int64
}

type service struct {
	repo      repository.Token
	accessSvc access.Service
}

// NewService creates a new currency ledger service
func NewService(repo repository.Token, accessSvc access.Service) Service {
	return &service{repo: repo, accessSvc: accessSvc}
}

func validateAmount(amount int64) error {
	if amount < 0 {
		return fmt.Errorf("%w: negative amount %d", domain.ErrInvalidInput, amount)
	}
	return nil
}

func (s *service) Mint(ctx context.Context, caller, to string, amount int64) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgMintCalled, "caller", caller, "to", to, "amount", amount)

	if err := validateAmount(amount); err != nil {
		return err
	}
	if err := s.accessSvc.Require(ctx, caller, domain.RoleMinter); err != nil {
		return err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.AddBalance(ctx, to, amount); err != nil {
		return fmt.Errorf("failed to mint: %w", err)
	}
	if err := tx.AddTotalSupply(ctx, amount); err != nil {
		return fmt.Errorf("failed to update supply: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info("Embers minted", "to", to, "amount", amount)
	return nil
}

func (s *service) Approve(ctx context.Context, owner, spender string, amount int64) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgApproveCalled, "owner", owner, "spender", spender, "amount", amount)

	if err := validateAmount(amount); err != nil {
		return err
	}
	if err := s.repo.SetAllowance(ctx, owner, spender, amount); err != nil {
		return fmt.Errorf("failed to set allowance: %w", err)
	}
	return nil
}

func (s *service) Transfer(ctx context.Context, from, to string, amount int64) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgTransferCalled, "from", from, "to", to, "amount", amount)

	if err := validateAmount(amount); err != nil {
		return err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.SubBalance(ctx, from, amount); err != nil {
		return err
	}
	if err := tx.AddBalance(ctx, to, amount); err != nil {
		return fmt.Errorf("failed to credit recipient: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info("Embers transferred", "from", from, "to", to, "amount", amount)
	return nil
}

func (s *service) TransferFrom(ctx context.Context, spender, from, to string, amount int64) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgTransferFromCalled, "spender", spender, "from", from, "to", to, "amount", amount)

	if err := validateAmount(amount); err != nil {
		return err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	// Allowance first: an authorization shortfall must surface even when
	// the balance is also short.
	if err := tx.SubAllowance(ctx, from, spender, amount); err != nil {
		return err
	}
	if err := tx.SubBalance(ctx, from, amount); err != nil {
		return err
	}
	if err := tx.AddBalance(ctx, to, amount); err != nil {
		return fmt.Errorf("failed to credit recipient: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info("Embers pulled", "spender", spender, "from", from, "to", to, "amount", amount)
	return nil
}

func (s *service) BalanceOf(ctx context.Context, address string) (int64, error) {
	return s.repo.GetBalance(ctx, address)
}

func (s *service) Allowance(ctx context.Context, owner, spender string) (int64, error) {
	return s.repo.GetAllowance(ctx, owner, spender)
}

func (s *service) TotalSupply(ctx context.Context) (int64, error) {
	return s.repo.GetTotalSupply(ctx)
}

func (s *service) Decimals() int {
	return domain.CurrencyDecimals
}

func (s *service) Scale() int64 {
	return domain.CurrencyScale
}
