package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/veylan/EmberArmory_Go/internal/domain"
	"github.com/veylan/EmberArmory_Go/internal/event"
	"github.com/veylan/EmberArmory_Go/internal/eventlog"
	"github.com/veylan/EmberArmory_Go/internal/progression"
)

// MockTokenService is a mock implementation of token.Service
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Mint(ctx context.Context, caller, to string, amount int64) error {
	args := m.Called(ctx, caller, to, amount)
	return args.Error(0)
}

func (m *MockTokenService) Approve(ctx context.Context, owner, spender string, amount int64) error {
	args := m.Called(ctx, owner, spender, amount)
	return args.Error(0)
}

func (m *MockTokenService) Transfer(ctx context.Context, from, to string, amount int64) error {
	args := m.Called(ctx, from, to, amount)
	return args.Error(0)
}

func (m *MockTokenService) TransferFrom(ctx context.Context, spender, from, to string, amount int64) error {
	args := m.Called(ctx, spender, from, to, amount)
	return args.Error(0)
}

func (m *MockTokenService) BalanceOf(ctx context.Context, address string) (int64, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTokenService) Allowance(ctx context.Context, owner, spender string) (int64, error) {
	args := m.Called(ctx, owner, spender)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTokenService) TotalSupply(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTokenService) Decimals() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockTokenService) Scale() int64 {
	args := m.Called()
	return args.Get(0).(int64)
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

// MockProgressionService is a mock implementation of progression.Service
type MockProgressionService struct {
	mock.Mock
}

func (m *MockProgressionService) RegisterUser(ctx context.Context, caller, address string) error {
	args := m.Called(ctx, caller, address)
	return args.Error(0)
}

func (m *MockProgressionService) PurchaseItem(ctx context.Context, buyer string, itemID int) (*progression.PurchaseResult, error) {
	args := m.Called(ctx, buyer, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*progression.PurchaseResult), args.Error(1)
}

func (m *MockProgressionService) PurchaseItemsBatch(ctx context.Context, buyer string, itemIDs []int) ([]progression.PurchaseResult, error) {
	args := m.Called(ctx, buyer, itemIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]progression.PurchaseResult), args.Error(1)
}

func (m *MockProgressionService) UpgradeTier(ctx context.Context, address string) (int, error) {
	args := m.Called(ctx, address)
	return args.Int(0), args.Error(1)
}

func (m *MockProgressionService) AdminMintEquipmentBatch(ctx context.Context, caller, to string, itemIDs []int, amounts []int64) error {
	args := m.Called(ctx, caller, to, itemIDs, amounts)
	return args.Error(0)
}

func (m *MockProgressionService) AdminSetEquipmentURI(ctx context.Context, caller, uri string) error {
	args := m.Called(ctx, caller, uri)
	return args.Error(0)
}

func (m *MockProgressionService) AdminWithdraw(ctx context.Context, caller, to string, amount int64) error {
	args := m.Called(ctx, caller, to, amount)
	return args.Error(0)
}

func (m *MockProgressionService) Deposit(ctx context.Context, from string, amount int64) error {
	args := m.Called(ctx, from, amount)
	return args.Error(0)
}

func (m *MockProgressionService) GetRank(ctx context.Context, address string) (int, error) {
	args := m.Called(ctx, address)
	return args.Int(0), args.Error(1)
}

func (m *MockProgressionService) PreviewCost(ctx context.Context, itemID int) (int64, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).(int64), args.Error(1)
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

// MockEventLogService is a mock implementation of eventlog.Service
type MockEventLogService struct {
	mock.Mock
}

func (m *MockEventLogService) Subscribe(bus event.Bus) error {
	args := m.Called(bus)
	return args.Error(0)
}

func (m *MockEventLogService) GetEvents(ctx context.Context, filter eventlog.EventFilter) ([]eventlog.Event, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]eventlog.Event), args.Error(1)
}

func (m *MockEventLogService) GetEventsByAddress(ctx context.Context, address string, limit int) ([]eventlog.Event, error) {
	args := m.Called(ctx, address, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]eventlog.Event), args.Error(1)
}

func (m *MockEventLogService) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	args := m.Called(ctx, retentionDays)
	return args.Get(0).(int64), args.Error(1)
}
