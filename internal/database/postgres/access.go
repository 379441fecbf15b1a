package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/veylan/EmberArmory_Go/internal/domain"
	"github.com/veylan/EmberArmory_Go/internal/repository"
)

type accessRepository struct {
	db *pgxpool.Pool
}

// NewAccessRepository creates a new PostgreSQL capability role repository
func NewAccessRepository(db *pgxpool.Pool) repository.Access {
	return &accessRepository{db: db}
}

func (r *accessRepository) HasRole(ctx context.Context, address string, role domain.Role) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM roles WHERE address = $1 AND role = $2)`,
		address, string(role)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check role: %w", err)
	}
	return exists, nil
}

func (r *accessRepository) GrantRole(ctx context.Context, address string, role domain.Role) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO roles (address, role) VALUES ($1, $2)
		ON CONFLICT (address, role) DO NOTHING`,
		address, string(role))
	if err != nil {
		return fmt.Errorf("failed to grant role: %w", err)
	}
	return nil
}

func (r *accessRepository) RevokeRole(ctx context.Context, address string, role domain.Role) error {
	_, err := r.db.Exec(ctx, `DELETE FROM roles WHERE address = $1 AND role = $2`,
		address, string(role))
	if err != nil {
		return fmt.Errorf("failed to revoke role: %w", err)
	}
	return nil
}

func (r *accessRepository) GetRoles(ctx context.Context, address string) ([]domain.Role, error) {
	rows, err := r.db.Query(ctx, `SELECT role FROM roles WHERE address = $1 ORDER BY role`, address)
	if err != nil {
		return nil, fmt.Errorf("failed to query roles: %w", err)
	}
	defer rows.Close()

	var roles []domain.Role
	for rows.Next() {
		var role string
		if err := rows.Scan(&role); err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, domain.Role(role))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read roles: %w", err)
	}
	return roles, nil
}
