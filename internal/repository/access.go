package repository

import (
	"context"

	"github.com/veylan/EmberArmory_Go/internal/domain"
)

// Access defines the interface for capability role persistence
type Access interface {
	HasRole(ctx context.Context, address string, role domain.Role) (bool, error)
	GrantRole(ctx context.Context, address string, role domain.Role) error
	RevokeRole(ctx context.Context, address string, role domain.Role) error
	GetRoles(ctx context.Context, address string) ([]domain.Role, error)
}
