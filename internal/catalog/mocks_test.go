package catalog

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/veylan/EmberArmory_Go/internal/domain"
	"github.com/veylan/EmberArmory_Go/internal/repository"
)

// MockCatalogRepo is a mock implementation of repository.Catalog
type MockCatalogRepo struct {
	mock.Mock
}

func (m *MockCatalogRepo) GetItemPrices(ctx context.Context, itemID int) ([]int64, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockCatalogRepo) GetEquipmentBalance(ctx context.Context, owner string, itemID int) (int64, error) {
	args := m.Called(ctx, owner, itemID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogRepo) GetEquipmentBalances(ctx context.Context, owners []string, itemIDs []int) ([]int64, error) {
	args := m.Called(ctx, owners, itemIDs)
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockCatalogRepo) GetTotalMinted(ctx context.Context, itemID int) (int64, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogRepo) GetBaseURI(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockCatalogRepo) SetBaseURI(ctx context.Context, uri string) error {
	args := m.Called(ctx, uri)
	return args.Error(0)
}

func (m *MockCatalogRepo) BeginTx(ctx context.Context) (repository.CatalogTx, error) {
	args := m.Called(ctx)
	return args.Get(0).(repository.CatalogTx), args.Error(1)
}

// MockCatalogTx is a mock implementation of repository.CatalogTx
type MockCatalogTx struct {
	mock.Mock
}

func (m *MockCatalogTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCatalogTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCatalogTx) InsertItem(ctx context.Context, itemID int, prices []int64) error {
	args := m.Called(ctx, itemID, prices)
	return args.Error(0)
}

func (m *MockCatalogTx) AddEquipment(ctx context.Context, owner string, itemID int, amount int64) error {
	args := m.Called(ctx, owner, itemID, amount)
	return args.Error(0)
}

// MockAccessService is a mock implementation of access.Service
type MockAccessService struct {
	mock.Mock
}

func (m *MockAccessService) Require(ctx context.Context, caller string, role domain.Role) error {
	args := m.Called(ctx, caller, role)
	return args.Error(0)
}

func (m *MockAccessService) HasRole(ctx context.Context, address string, role domain.Role) (bool, error) {
	args := m.Called(ctx, address, role)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccessService) GetRoles(ctx context.Context, address string) ([]domain.Role, error) {
	args := m.Called(ctx, address)
	return args.Get(0).([]domain.Role), args.Error(1)
}

func (m *MockAccessService) GrantRole(ctx context.Context, caller, address string, role domain.Role) error {
	args := m.Called(ctx, caller, address, role)
	return args.Error(0)
}

func (m *MockAccessService) RevokeRole(ctx context.Context, caller, address string, role domain.Role) error {
	args := m.Called(ctx, caller, address, role)
	return args.Error(0)
}
