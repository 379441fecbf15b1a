package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/veylan/EmberArmory_Go/internal/domain"
	"github.com/veylan/EmberArmory_Go/internal/logger"
)

// EnsureDeployment performs the address-dependent part of initial deployment:
// capability grants for the admin and engine addresses, a working equipment
// inventory for the admin, and the metadata base URI. The catalog rows
// themselves are seeded by migration. Idempotent: a prior deployment is
// detected by the admin's administrator role and left untouched.
func EnsureDeployment(ctx context.Context, db *pgxpool.Pool, adminAddress, engineAddress, baseURI string) error {
	log := logger.FromContext(ctx)

	var deployed bool
	err := db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM roles WHERE address = $1 AND role = $2)`,
		adminAddress, string(domain.RoleAdministrator)).Scan(&deployed)
	if err != nil {
		return fmt.Errorf("failed to check deployment state: %w", err)
	}
	if deployed {
		log.Debug("Deployment already seeded, skipping", "admin", adminAddress)
		return nil
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	adminRoles := []domain.Role{domain.RoleAdministrator, domain.RoleMinter, domain.RoleURISetter}
	for _, role := range adminRoles {
		if _, err := tx.Exec(ctx, `
			INSERT INTO roles (address, role) VALUES ($1, $2)
			ON CONFLICT (address, role) DO NOTHING`,
			adminAddress, string(role)); err != nil {
			return fmt.Errorf("failed to grant %s to admin: %w", role, err)
		}
	}

	// The engine mints purchases and forwards URI updates on behalf of admins.
	engineRoles := []domain.Role{domain.RoleMinter, domain.RoleURISetter}
	for _, role := range engineRoles {
		if _, err := tx.Exec(ctx, `
			INSERT INTO roles (address, role) VALUES ($1, $2)
			ON CONFLICT (address, role) DO NOTHING`,
			engineAddress, string(role)); err != nil {
			return fmt.Errorf("failed to grant %s to engine: %w", role, err)
		}
	}

	for itemID := 1; itemID <= domain.CatalogItemCount; itemID++ {
		if err := addEquipment(ctx, tx, adminAddress, itemID, domain.SeedInventoryPerItem); err != nil {
			return fmt.Errorf("failed to seed inventory for item %d: %w", itemID, err)
		}
	}

	if baseURI != "" {
		if _, err := tx.Exec(ctx, `
			INSERT INTO catalog_metadata (id, base_uri) VALUES (1, $1)
			ON CONFLICT (id) DO NOTHING`, baseURI); err != nil {
			return fmt.Errorf("failed to set base URI: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit deployment seed: %w", err)
	}

	log.Info("Deployment seeded",
		"admin", adminAddress,
		"engine", engineAddress,
		"items", domain.CatalogItemCount)
	return nil
}
