package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/veylan/EmberArmory_Go/internal/database"
	"github.com/veylan/EmberArmory_Go/internal/domain"
	"github.com/veylan/EmberArmory_Go/internal/repository"
)

// startTestDatabase spins up a postgres container, connects a pool and runs
// the embedded migrations. Skips the test when Docker is unavailable.
func startTestDatabase(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	var pgContainer *postgres.PostgresContainer
	var err error

	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("Skipping integration test due to panic (likely Docker issue): %v", r)
			}
		}()
		pgContainer, err = postgres.Run(ctx,
			"postgres:15-alpine",
			postgres.WithDatabase("testdb"),
			postgres.WithUsername("testuser"),
			postgres.WithPassword("testpass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(5*time.Second)),
		)
	}()

	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	if pgContainer == nil {
		t.Skip("postgres container unavailable")
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	pool, err := database.NewDefaultPool(connStr)
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := database.Migrate(pool); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}

	return pool
}

func TestRepositories_Integration(t *testing.T) {
	pool := startTestDatabase(t)
	ctx := context.Background()

	tokenRepo := NewTokenRepository(pool)
	catalogRepo := NewCatalogRepository(pool)
	engineRepo := NewEngineRepository(pool)
	accessRepo := NewAccessRepository(pool)

	t.Run("SeededCatalog", func(t *testing.T) {
		for itemID := 1; itemID <= domain.CatalogItemCount; itemID++ {
			prices, err := catalogRepo.GetItemPrices(ctx, itemID)
			if err != nil {
				t.Fatalf("GetItemPrices(%d) failed: %v", itemID, err)
			}
			if len(prices) != domain.TierPriceCount {
				t.Fatalf("item %d: expected %d prices, got %d", itemID, domain.TierPriceCount, len(prices))
			}
			// Seed schedule doubles per tier starting at the base price.
			want := domain.SeedBasePrice
			for tier, price := range prices {
				if price != want {
					t.Errorf("item %d tier %d: expected price %d, got %d", itemID, tier+1, want, price)
				}
				want *= 2
			}
		}

		prices, err := catalogRepo.GetItemPrices(ctx, 99)
		if err != nil {
			t.Fatalf("GetItemPrices(99) failed: %v", err)
		}
		if prices != nil {
			t.Errorf("expected nil prices for unknown item, got %v", prices)
		}
	})

	t.Run("CurrencyLedger", func(t *testing.T) {
		tx, err := tokenRepo.BeginTx(ctx)
		if err != nil {
			t.Fatalf("BeginTx failed: %v", err)
		}
		defer repository.SafeRollback(ctx, tx)

		if err := tx.AddBalance(ctx, "alice", 500); err != nil {
			t.Fatalf("AddBalance failed: %v", err)
		}
		if err := tx.AddTotalSupply(ctx, 500); err != nil {
			t.Fatalf("AddTotalSupply failed: %v", err)
		}
		if err := tx.SubBalance(ctx, "alice", 200); err != nil {
			t.Fatalf("SubBalance failed: %v", err)
		}
		if err := tx.SubBalance(ctx, "alice", 10_000); !errors.Is(err, domain.ErrInsufficientFunds) {
			t.Fatalf("expected ErrInsufficientFunds, got %v", err)
		}
		// The guarded UPDATE failed without side effects, tx still usable.
		if err := tx.Commit(ctx); err != nil {
			t.Fatalf("Commit failed: %v", err)
		}

		balance, err := tokenRepo.GetBalance(ctx, "alice")
		if err != nil {
			t.Fatalf("GetBalance failed: %v", err)
		}
		if balance != 300 {
			t.Errorf("expected balance 300, got %d", balance)
		}

		supply, err := tokenRepo.GetTotalSupply(ctx)
		if err != nil {
			t.Fatalf("GetTotalSupply failed: %v", err)
		}
		if supply != 500 {
			t.Errorf("expected supply 500, got %d", supply)
		}
	})

	t.Run("Allowances", func(t *testing.T) {
		if err := tokenRepo.SetAllowance(ctx, "alice", "engine", 100); err != nil {
			t.Fatalf("SetAllowance failed: %v", err)
		}

		tx, err := tokenRepo.BeginTx(ctx)
		if err != nil {
			t.Fatalf("BeginTx failed: %v", err)
		}
		defer repository.SafeRollback(ctx, tx)

		if err := tx.SubAllowance(ctx, "alice", "engine", 60); err != nil {
			t.Fatalf("SubAllowance failed: %v", err)
		}
		if err := tx.SubAllowance(ctx, "alice", "engine", 60); !errors.Is(err, domain.ErrTransferFailed) {
			t.Fatalf("expected ErrTransferFailed, got %v", err)
		}
		if err := tx.Commit(ctx); err != nil {
			t.Fatalf("Commit failed: %v", err)
		}

		remaining, err := tokenRepo.GetAllowance(ctx, "alice", "engine")
		if err != nil {
			t.Fatalf("GetAllowance failed: %v", err)
		}
		if remaining != 40 {
			t.Errorf("expected allowance 40, got %d", remaining)
		}
	})

	t.Run("CatalogCreateItem", func(t *testing.T) {
		tx, err := catalogRepo.BeginTx(ctx)
		if err != nil {
			t.Fatalf("BeginTx failed: %v", err)
		}
		prices := []int64{1, 2, 3, 4, 5}
		if err := tx.InsertItem(ctx, 42, prices); err != nil {
			t.Fatalf("InsertItem failed: %v", err)
		}
		if err := tx.Commit(ctx); err != nil {
			t.Fatalf("Commit failed: %v", err)
		}

		tx, err = catalogRepo.BeginTx(ctx)
		if err != nil {
			t.Fatalf("BeginTx failed: %v", err)
		}
		defer repository.SafeRollback(ctx, tx)
		if err := tx.InsertItem(ctx, 42, prices); !errors.Is(err, domain.ErrAlreadyExists) {
			t.Fatalf("expected ErrAlreadyExists, got %v", err)
		}

		got, err := catalogRepo.GetItemPrices(ctx, 42)
		if err != nil {
			t.Fatalf("GetItemPrices failed: %v", err)
		}
		if len(got) != 5 || got[0] != 1 || got[4] != 5 {
			t.Errorf("unexpected prices: %v", got)
		}
	})

	t.Run("EquipmentLedger", func(t *testing.T) {
		tx, err := catalogRepo.BeginTx(ctx)
		if err != nil {
			t.Fatalf("BeginTx failed: %v", err)
		}
		if err := tx.AddEquipment(ctx, "bob", 3, 2); err != nil {
			t.Fatalf("AddEquipment failed: %v", err)
		}
		if err := tx.Commit(ctx); err != nil {
			t.Fatalf("Commit failed: %v", err)
		}

		balance, err := catalogRepo.GetEquipmentBalance(ctx, "bob", 3)
		if err != nil {
			t.Fatalf("GetEquipmentBalance failed: %v", err)
		}
		if balance != 2 {
			t.Errorf("expected equipment balance 2, got %d", balance)
		}

		minted, err := catalogRepo.GetTotalMinted(ctx, 3)
		if err != nil {
			t.Fatalf("GetTotalMinted failed: %v", err)
		}
		if minted != 2 {
			t.Errorf("expected total minted 2, got %d", minted)
		}

		balances, err := catalogRepo.GetEquipmentBalances(ctx,
			[]string{"bob", "bob"}, []int{3, 4})
		if err != nil {
			t.Fatalf("GetEquipmentBalances failed: %v", err)
		}
		if balances[0] != 2 || balances[1] != 0 {
			t.Errorf("unexpected balances: %v", balances)
		}
	})

	t.Run("EngineAccountAndGas", func(t *testing.T) {
		acct, err := engineRepo.GetAccount(ctx, "carol")
		if err != nil {
			t.Fatalf("GetAccount failed: %v", err)
		}
		if acct != nil {
			t.Fatalf("expected nil account before registration, got %+v", acct)
		}

		tx, err := engineRepo.BeginTx(ctx)
		if err != nil {
			t.Fatalf("BeginTx failed: %v", err)
		}
		if err := tx.InsertAccount(ctx, "carol"); err != nil {
			t.Fatalf("InsertAccount failed: %v", err)
		}
		if err := tx.AddGas(ctx, "engine", 5_000_000); err != nil {
			t.Fatalf("AddGas failed: %v", err)
		}
		if err := tx.TransferGas(ctx, "engine", "carol", domain.RegistrationGasAmount); err != nil {
			t.Fatalf("TransferGas failed: %v", err)
		}
		if err := tx.Commit(ctx); err != nil {
			t.Fatalf("Commit failed: %v", err)
		}

		acct, err = engineRepo.GetAccount(ctx, "carol")
		if err != nil {
			t.Fatalf("GetAccount failed: %v", err)
		}
		if acct == nil || !acct.Registered || acct.Rank != 0 {
			t.Fatalf("unexpected account: %+v", acct)
		}

		gas, err := engineRepo.GetGasBalance(ctx, "carol")
		if err != nil {
			t.Fatalf("GetGasBalance failed: %v", err)
		}
		if gas != domain.RegistrationGasAmount {
			t.Errorf("expected gas %d, got %d", domain.RegistrationGasAmount, gas)
		}

		tx, err = engineRepo.BeginTx(ctx)
		if err != nil {
			t.Fatalf("BeginTx failed: %v", err)
		}
		defer repository.SafeRollback(ctx, tx)
		if err := tx.SetRank(ctx, "carol", 1); err != nil {
			t.Fatalf("SetRank failed: %v", err)
		}
		if err := tx.TransferGas(ctx, "carol", "engine", 100_000_000); !errors.Is(err, domain.ErrInsufficientGasReserve) {
			t.Fatalf("expected ErrInsufficientGasReserve, got %v", err)
		}
		if err := tx.Commit(ctx); err != nil {
			t.Fatalf("Commit failed: %v", err)
		}

		acct, err = engineRepo.GetAccount(ctx, "carol")
		if err != nil {
			t.Fatalf("GetAccount failed: %v", err)
		}
		if acct.Rank != 1 {
			t.Errorf("expected rank 1, got %d", acct.Rank)
		}
	})

	t.Run("Roles", func(t *testing.T) {
		has, err := accessRepo.HasRole(ctx, "dave", domain.RoleMinter)
		if err != nil {
			t.Fatalf("HasRole failed: %v", err)
		}
		if has {
			t.Error("expected no role before grant")
		}

		if err := accessRepo.GrantRole(ctx, "dave", domain.RoleMinter); err != nil {
			t.Fatalf("GrantRole failed: %v", err)
		}
		// Repeated grant is a no-op.
		if err := accessRepo.GrantRole(ctx, "dave", domain.RoleMinter); err != nil {
			t.Fatalf("repeated GrantRole failed: %v", err)
		}

		roles, err := accessRepo.GetRoles(ctx, "dave")
		if err != nil {
			t.Fatalf("GetRoles failed: %v", err)
		}
		if len(roles) != 1 || roles[0] != domain.RoleMinter {
			t.Errorf("unexpected roles: %v", roles)
		}

		if err := accessRepo.RevokeRole(ctx, "dave", domain.RoleMinter); err != nil {
			t.Fatalf("RevokeRole failed: %v", err)
		}
		has, err = accessRepo.HasRole(ctx, "dave", domain.RoleMinter)
		if err != nil {
			t.Fatalf("HasRole failed: %v", err)
		}
		if has {
			t.Error("expected role revoked")
		}
	})

	t.Run("EventLog", func(t *testing.T) {
		eventRepo := NewEventLogRepository(pool)
		address := "erin"

		err := eventRepo.LogEvent(ctx, "item.purchased", &address, map[string]interface{}{
			"item_id": 7,
			"tier":    2,
		})
		if err != nil {
			t.Fatalf("LogEvent failed: %v", err)
		}

		events, err := eventRepo.GetEventsByAddress(ctx, address, 10)
		if err != nil {
			t.Fatalf("GetEventsByAddress failed: %v", err)
		}
		if len(events) != 1 {
			t.Fatalf("expected 1 event, got %d", len(events))
		}
		if events[0].EventType != "item.purchased" {
			t.Errorf("unexpected event type: %s", events[0].EventType)
		}
		if events[0].Payload["item_id"] != float64(7) {
			t.Errorf("unexpected payload: %v", events[0].Payload)
		}
	})

	t.Run("EnsureDeployment", func(t *testing.T) {
		err := EnsureDeployment(ctx, pool, "admin-addr", "engine-addr", "https://armory.example/meta/")
		if err != nil {
			t.Fatalf("EnsureDeployment failed: %v", err)
		}
		// Idempotent second run.
		if err := EnsureDeployment(ctx, pool, "admin-addr", "engine-addr", "https://armory.example/meta/"); err != nil {
			t.Fatalf("repeated EnsureDeployment failed: %v", err)
		}

		has, err := accessRepo.HasRole(ctx, "admin-addr", domain.RoleAdministrator)
		if err != nil {
			t.Fatalf("HasRole failed: %v", err)
		}
		if !has {
			t.Error("expected admin to hold administrator role")
		}
		has, err = accessRepo.HasRole(ctx, "engine-addr", domain.RoleMinter)
		if err != nil {
			t.Fatalf("HasRole failed: %v", err)
		}
		if !has {
			t.Error("expected engine to hold minter role")
		}

		balance, err := catalogRepo.GetEquipmentBalance(ctx, "admin-addr", 15)
		if err != nil {
			t.Fatalf("GetEquipmentBalance failed: %v", err)
		}
		if balance != domain.SeedInventoryPerItem {
			t.Errorf("expected seed inventory %d, got %d", domain.SeedInventoryPerItem, balance)
		}

		uri, err := catalogRepo.GetBaseURI(ctx)
		if err != nil {
			t.Fatalf("GetBaseURI failed: %v", err)
		}
		if uri != "https://armory.example/meta/" {
			t.Errorf("unexpected base URI: %s", uri)
		}
	})
}
