package token

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/veylan/EmberArmory_Go/internal/domain"
)

func newTestService() (*MockTokenRepo, *MockTokenTx, *MockAccessService, Service) {
	repo := new(MockTokenRepo)
	tx := new(MockTokenTx)
	accessSvc := new(MockAccessService)
	return repo, tx, accessSvc, NewService(repo, accessSvc)
}

func TestMint(t *testing.T) {
	ctx := context.Background()

	t.Run("minter mints", func(t *testing.T) {
		repo, tx, accessSvc, svc := newTestService()
		accessSvc.On("Require", ctx, "minter", domain.RoleMinter).Return(nil)
		repo.On("BeginTx", ctx).Return(tx, nil)
		tx.On("AddBalance", ctx, "alice", int64(500)).Return(nil)
		tx.On("AddTotalSupply", ctx, int64(500)).Return(nil)
		tx.On("Commit", ctx).Return(nil)
		tx.On("Rollback", ctx).Return(nil)

		err := svc.Mint(ctx, "minter", "alice", 500)
		assert.NoError(t, err)
		repo.AssertExpectations(t)
		tx.AssertExpectations(t)
	})

	t.Run("non-minter denied", func(t *testing.T) {
		repo, _, accessSvc, svc := newTestService()
		accessSvc.On("Require", ctx, "mallory", domain.RoleMinter).
			Return(fmt.Errorf("%w: mallory requires minter", domain.ErrAuthorizationDenied))

		err := svc.Mint(ctx, "mallory", "mallory", 500)
		assert.True(t, errors.Is(err, domain.ErrAuthorizationDenied))
		repo.AssertNotCalled(t, "BeginTx", mock.Anything)
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		_, _, accessSvc, svc := newTestService()

		err := svc.Mint(ctx, "minter", "alice", -1)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
		accessSvc.AssertNotCalled(t, "Require", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestApprove(t *testing.T) {
	ctx := context.Background()

	repo, _, _, svc := newTestService()
	repo.On("SetAllowance", ctx, "alice", "engine", int64(1000)).Return(nil)

	err := svc.Approve(ctx, "alice", "engine", 1000)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestTransfer(t *testing.T) {
	ctx := context.Background()

	t.Run("moves balance", func(t *testing.T) {
		repo, tx, _, svc := newTestService()
		repo.On("BeginTx", ctx).Return(tx, nil)
		tx.On("SubBalance", ctx, "alice", int64(300)).Return(nil)
		tx.On("AddBalance", ctx, "bob", int64(300)).Return(nil)
		tx.On("Commit", ctx).Return(nil)
		tx.On("Rollback", ctx).Return(nil)

		err := svc.Transfer(ctx, "alice", "bob", 300)
		assert.NoError(t, err)
		tx.AssertExpectations(t)
	})

	t.Run("insufficient funds rolls back", func(t *testing.T) {
		repo, tx, _, svc := newTestService()
		repo.On("BeginTx", ctx).Return(tx, nil)
		tx.On("SubBalance", ctx, "alice", int64(300)).Return(domain.ErrInsufficientFunds)
		tx.On("Rollback", ctx).Return(nil)

		err := svc.Transfer(ctx, "alice", "bob", 300)
		assert.True(t, errors.Is(err, domain.ErrInsufficientFunds))
		tx.AssertNotCalled(t, "Commit", mock.Anything)
	})
}

func TestTransferFrom(t *testing.T) {
	ctx := context.Background()

	t.Run("pulls within allowance", func(t *testing.T) {
		repo, tx, _, svc := newTestService()
		repo.On("BeginTx", ctx).Return(tx, nil)
		tx.On("SubAllowance", ctx, "alice", "engine", int64(200)).Return(nil)
		tx.On("SubBalance", ctx, "alice", int64(200)).Return(nil)
		tx.On("AddBalance", ctx, "engine", int64(200)).Return(nil)
		tx.On("Commit", ctx).Return(nil)
		tx.On("Rollback", ctx).Return(nil)

		err := svc.TransferFrom(ctx, "engine", "alice", "engine", 200)
		assert.NoError(t, err)
		tx.AssertExpectations(t)
	})

	t.Run("allowance shortfall fails", func(t *testing.T) {
		repo, tx, _, svc := newTestService()
		repo.On("BeginTx", ctx).Return(tx, nil)
		tx.On("SubAllowance", ctx, "alice", "engine", int64(200)).Return(domain.ErrTransferFailed)
		tx.On("Rollback", ctx).Return(nil)

		err := svc.TransferFrom(ctx, "engine", "alice", "engine", 200)
		assert.True(t, errors.Is(err, domain.ErrTransferFailed))
		tx.AssertNotCalled(t, "SubBalance", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("balance shortfall fails after allowance", func(t *testing.T) {
		repo, tx, _, svc := newTestService()
		repo.On("BeginTx", ctx).Return(tx, nil)
		tx.On("SubAllowance", ctx, "alice", "engine", int64(200)).Return(nil)
		tx.On("SubBalance", ctx, "alice", int64(200)).Return(domain.ErrInsufficientFunds)
		tx.On("Rollback", ctx).Return(nil)

		err := svc.TransferFrom(ctx, "engine", "alice", "engine", 200)
		assert.True(t, errors.Is(err, domain.ErrInsufficientFunds))
		tx.AssertNotCalled(t, "Commit", mock.Anything)
	})
}

func TestQueries(t *testing.T) {
	ctx := context.Background()
	repo, _, _, svc := newTestService()

	repo.On("GetBalance", ctx, "alice").Return(int64(100), nil)
	repo.On("GetAllowance", ctx, "alice", "engine").Return(int64(50), nil)
	repo.On("GetTotalSupply", ctx).Return(int64(1000), nil)

	balance, err := svc.BalanceOf(ctx, "alice")
	assert.NoError(t, err)
	assert.Equal(t, int64(100), balance)

	allowance, err := svc.Allowance(ctx, "alice", "engine")
	assert.NoError(t, err)
	assert.Equal(t, int64(50), allowance)

	supply, err := svc.TotalSupply(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(1000), supply)
}

func TestScaling(t *testing.T) {
	_, _, _, svc := newTestService()

	assert.Equal(t, 8, svc.Decimals())
	assert.Equal(t, int64(100_000_000), svc.Scale())
}
