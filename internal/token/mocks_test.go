package token

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/veylan/EmberArmory_Go/internal/domain"
	"github.com/veylan/EmberArmory_Go/internal/repository"
)

// MockTokenRepo is a mock implementation of repository.Token
type MockTokenRepo struct {
	mock.Mock
}

func (m *MockTokenRepo) GetBalance(ctx context.Context, address string) (int64, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTokenRepo) GetAllowance(ctx context.Context, owner, spender string) (int64, error) {
	args := m.Called(ctx, owner, spender)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTokenRepo) GetTotalSupply(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTokenRepo) SetAllowance(ctx context.Context, owner, spender string, amount int64) error {
	args := m.Called(ctx, owner, spender, amount)
	return args.Error(0)
}

func (m *MockTokenRepo) BeginTx(ctx context.Context) (repository.TokenTx, error) {
	args := m.Called(ctx)
	return args.Get(0).(repository.TokenTx), args.Error(1)
}

// MockTokenTx is a mock implementation of repository.TokenTx
type MockTokenTx struct {
	mock.Mock
}

func (m *MockTokenTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTokenTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTokenTx) AddBalance(ctx context.Context, address string, amount int64) error {
	args := m.Called(ctx, address, amount)
	return args.Error(0)
}

func (m *MockTokenTx) SubBalance(ctx context.Context, address string, amount int64) error {
	args := m.Called(ctx, address, amount)
	return args.Error(0)
}

func (m *MockTokenTx) SubAllowance(ctx context.Context, owner, spender string, amount int64) error {
	args := m.Called(ctx, owner, spender, amount)
	return args.Error(0)
}

func (m *MockTokenTx) AddTotalSupply(ctx context.Context, amount int64) error {
	args := m.Called(ctx, amount)
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
