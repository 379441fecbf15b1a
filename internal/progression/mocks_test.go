package progression

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/veylan/EmberArmory_Go/internal/domain"
	"github.com/veylan/EmberArmory_Go/internal/repository"
)

// MockEngineRepo is a mock implementation of repository.Engine
type MockEngineRepo struct {
	mock.Mock
}

func (m *MockEngineRepo) GetAccount(ctx context.Context, address string) (*domain.Account, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockEngineRepo) GetGasBalance(ctx context.Context, address string) (int64, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEngineRepo) BeginTx(ctx context.Context) (repository.EngineTx, error) {
	args := m.Called(ctx)
	return args.Get(0).(repository.EngineTx), args.Error(1)
}

// MockEngineTx is a mock implementation of repository.EngineTx
type MockEngineTx struct {
	mock.Mock
}

func (m *MockEngineTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEngineTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEngineTx) GetAccountForUpdate(ctx context.Context, address string) (*domain.Account, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockEngineTx) InsertAccount(ctx context.Context, address string) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}

func (m *MockEngineTx) SetRank(ctx context.Context, address string, rank int) error {
	args := m.Called(ctx, address, rank)
	return args.Error(0)
}

func (m *MockEngineTx) GetCurrencyBalance(ctx context.Context, address string) (int64, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEngineTx) MintCurrency(ctx context.Context, to string, amount int64) error {
	args := m.Called(ctx, to, amount)
	return args.Error(0)
}

func (m *MockEngineTx) SubAllowance(ctx context.Context, owner, spender string, amount int64) error {
	args := m.Called(ctx, owner, spender, amount)
	return args.Error(0)
}

func (m *MockEngineTx) TransferCurrency(ctx context.Context, from, to string, amount int64) error {
	args := m.Called(ctx, from, to, amount)
	return args.Error(0)
}

func (m *MockEngineTx) GetEquipmentBalance(ctx context.Context, owner string, itemID int) (int64, error) {
	args := m.Called(ctx, owner, itemID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEngineTx) AddEquipment(ctx context.Context, owner string, itemID int, amount int64) error {
	args := m.Called(ctx, owner, itemID, amount)
	return args.Error(0)
}

func (m *MockEngineTx) GetGasBalanceForUpdate(ctx context.Context, address string) (int64, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEngineTx) TransferGas(ctx context.Context, from, to string, amount int64) error {
	args := m.Called(ctx, from, to, amount)
	return args.Error(0)
}

func (m *MockEngineTx) AddGas(ctx context.Context, address string, amount int64) error {
	args := m.Called(ctx, address, amount)
	return args.Error(0)
}

// MockCatalogService is a mock implementation of catalog.Service
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) CreateItem(ctx context.Context, caller string, itemID int, prices []int64) error {
	args := m.Called(ctx, caller, itemID, prices)
	return args.Error(0)
}

func (m *MockCatalogService) MintSingle(ctx context.Context, caller, to string, itemID int, amount int64) error {
	args := m.Called(ctx, caller, to, itemID, amount)
	return args.Error(0)
}

func (m *MockCatalogService) MintBatch(ctx context.Context, caller, to string, itemIDs []int, amounts []int64) error {
	args := m.Called(ctx, caller, to, itemIDs, amounts)
	return args.Error(0)
}

func (m *MockCatalogService) GetTierCost(ctx context.Context, itemID, tier int) (int64, error) {
	args := m.Called(ctx, itemID, tier)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogService) BalanceOf(ctx context.Context, owner string, itemID int) (int64, error) {
	args := m.Called(ctx, owner, itemID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogService) BalanceOfBatch(ctx context.Context, owners []string, itemIDs []int) ([]int64, error) {
	args := m.Called(ctx, owners, itemIDs)
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockCatalogService) TotalMinted(ctx context.Context, itemID int) (int64, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogService) SetMetadataURI(ctx context.Context, caller, uri string) error {
	args := m.Called(ctx, caller, uri)
	return args.Error(0)
}

func (m *MockCatalogService) GetMetadataURI(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
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
