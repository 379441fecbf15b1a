package access

import (
	"context"
	"fmt"

	"github.com/veylan/EmberArmory_Go/internal/domain"
	"github.com/veylan/EmberArmory_Go/internal/logger"
	"github.com/veylan/EmberArmory_Go/internal/repository"
)

// Service defines the interface for capability checks and administration.
// Every mutating economy operation asks Require before touching state.
type Service interface {
	// Require returns domain.ErrAuthorizationDenied when the caller does
	// not hold the capability.
	Require(ctx context.Context, caller string, role domain.Role) error

	HasRole(ctx context.Context, address string, role domain.Role) (bool, error)
	GetRoles(ctx context.Context, address string) ([]domain.Role, error)

	// GrantRole and RevokeRole are administrator operations.
	GrantRole(ctx context.Context, caller, address string, role domain.Role) error
	RevokeRole(ctx context.Context, caller, address string, role domain.Role) error
}

type service struct {
	repo repository.Access
}

// NewService creates a new access service
func NewService(repo repository.Access) Service {
	return &service{repo: repo}
}

func (s *service) Require(ctx context.Context, caller string, role domain.Role) error {
	has, err := s.repo.HasRole(ctx, caller, role)
	if err != nil {
		return fmt.Errorf("failed to check role: %w", err)
	}
	if !has {
		return fmt.Errorf("%w: %s requires %s", domain.ErrAuthorizationDenied, caller, role)
	}
	return nil
}

func (s *service) HasRole(ctx context.Context, address string, role domain.Role) (bool, error) {
	return s.repo.HasRole(ctx, address, role)
}

func (s *service) GetRoles(ctx context.Context, address string) ([]domain.Role, error) {
	return s.repo.GetRoles(ctx, address)
}

func (s *service) GrantRole(ctx context.Context, caller, address string, role domain.Role) error {
	log := logger.FromContext(ctx)

	if !role.Valid() {
		return fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, role)
	}
	if err := s.Require(ctx, caller, domain.RoleAdministrator); err != nil {
		return err
	}

	if err := s.repo.GrantRole(ctx, address, role); err != nil {
		log.Error("Failed to grant role", "error", err, "address", address, "role", role)
		return fmt.Errorf("failed to grant role: %w", err)
	}

	log.Info("Role granted", "address", address, "role", role, "by", caller)
	return nil
}

func (s *service) RevokeRole(ctx context.Context, caller, address string, role domain.Role) error {
	log := logger.FromContext(ctx)

	if !role.Valid() {
		return fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, role)
	}
	if err := s.Require(ctx, caller, domain.RoleAdministrator); err != nil {
		return err
	}

	if err := s.repo.RevokeRole(ctx, address, role); err != nil {
		log.Error("Failed to revoke role", "error", err, "address", address, "role", role)
		return fmt.Errorf("failed to revoke role: %w", err)
	}

	log.Info("Role revoked", "address", address, "role", role, "by", caller)
	return nil
}
