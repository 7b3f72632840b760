package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Usman-Ashfaq/Banking-Core-Engine/internal/model"
)

func newLedger(env *testEnv) *LedgerService {
	return NewLedgerService(env.accountRepo, env.transactionRepo)
}

func TestLedgerService_Deposit(t *testing.T) {
	env := setupTestEnv(t)
	svc := newLedger(env)
	ctx := context.Background()

	accountNo := env.seedAccount(t, 1, 10_000)

	t.Run("increases balance and writes one ledger entry", func(t *testing.T) {
		txn, err := svc.Deposit(ctx, identityFor(1), accountNo, 5_000)
		require.NoError(t, err)

		assert.Equal(t, int64(15_000), env.balance(t, accountNo))
		assert.Equal(t, model.KindDeposit, txn.Kind)
		assert.Equal(t, int64(5_000), txn.Amount)
		assert.Nil(t, txn.DebitAccount)
		require.NotNil(t, txn.CreditAccount)
		assert.Equal(t, accountNo, *txn.CreditAccount)
		assert.Equal(t, int64(1), env.transactionCount(t))
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := svc.Deposit(ctx, identityFor(1), accountNo, 0)
		assert.ErrorIs(t, err, ErrInvalidAmount)

		_, err = svc.Deposit(ctx, identityFor(1), accountNo, -100)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("rejects foreign account", func(t *testing.T) {
		_, err := svc.Deposit(ctx, identityFor(2), accountNo, 1_000)
		assert.ErrorIs(t, err, ErrAccountNotFound)
		assert.Equal(t, int64(15_000), env.balance(t, accountNo))
	})

	t.Run("rejects missing account", func(t *testing.T) {
		_, err := svc.Deposit(ctx, identityFor(1), 99999, 1_000)
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})
}

func TestLedgerService_Withdraw(t *testing.T) {
	env := setupTestEnv(t)
	svc := newLedger(env)
	ctx := context.Background()

	accountNo := env.seedAccount(t, 1, 10_000)

	t.Run("decreases balance and writes one ledger entry", func(t *testing.T) {
		txn, err := svc.Withdraw(ctx, identityFor(1), accountNo, 3_000)
		require.NoError(t, err)

		assert.Equal(t, int64(7_000), env.balance(t, accountNo))
		assert.Equal(t, model.KindWithdraw, txn.Kind)
		require.NotNil(t, txn.DebitAccount)
		assert.Equal(t, accountNo, *txn.DebitAccount)
		assert.Nil(t, txn.CreditAccount)
	})

	t.Run("insufficient funds leaves no trace", func(t *testing.T) {
		before := env.transactionCount(t)

		_, err := svc.Withdraw(ctx, identityFor(1), accountNo, 100_000)
		assert.ErrorIs(t, err, ErrInsufficientFunds)

		assert.Equal(t, int64(7_000), env.balance(t, accountNo))
		assert.Equal(t, before, env.transactionCount(t))
	})

	t.Run("exact balance withdrawal succeeds", func(t *testing.T) {
		_, err := svc.Withdraw(ctx, identityFor(1), accountNo, 7_000)
		require.NoError(t, err)
		assert.Equal(t, int64(0), env.balance(t, accountNo))
	})
}

func TestLedgerService_Transfer(t *testing.T) {
	env := setupTestEnv(t)
	svc := newLedger(env)
	ctx := context.Background()

	src := env.seedAccount(t, 1, 10_000)
	dst := env.seedAccount(t, 1, 0)

	t.Run("moves funds and conserves the total", func(t *testing.T) {
		txn, err := svc.Transfer(ctx, identityFor(1), src, dst, 2_000)
		require.NoError(t, err)

		assert.Equal(t, int64(8_000), env.balance(t, src))
		assert.Equal(t, int64(2_000), env.balance(t, dst))
		assert.Equal(t, model.KindTransfer, txn.Kind)
		require.NotNil(t, txn.DebitAccount)
		require.NotNil(t, txn.CreditAccount)
		assert.Equal(t, src, *txn.DebitAccount)
		assert.Equal(t, dst, *txn.CreditAccount)
		assert.Equal(t, int64(1), env.transactionCount(t))
	})

	t.Run("destination may belong to another user", func(t *testing.T) {
		foreign := env.seedAccount(t, 2, 0)

		_, err := svc.Transfer(ctx, identityFor(1), src, foreign, 1_000)
		require.NoError(t, err)
		assert.Equal(t, int64(7_000), env.balance(t, src))
		assert.Equal(t, int64(1_000), env.balance(t, foreign))
	})

	t.Run("source must belong to the caller", func(t *testing.T) {
		_, err := svc.Transfer(ctx, identityFor(2), src, dst, 1_000)
		assert.ErrorIs(t, err, ErrAccountNotFound)
		assert.Equal(t, int64(7_000), env.balance(t, src))
	})

	t.Run("same-account transfer is rejected", func(t *testing.T) {
		_, err := svc.Transfer(ctx, identityFor(1), src, src, 1_000)
		assert.ErrorIs(t, err, ErrSameAccount)
	})

	t.Run("missing destination rolls everything back", func(t *testing.T) {
		before := env.transactionCount(t)

		_, err := svc.Transfer(ctx, identityFor(1), src, 99999, 1_000)
		assert.ErrorIs(t, err, ErrAccountNotFound)

		assert.Equal(t, int64(7_000), env.balance(t, src))
		assert.Equal(t, before, env.transactionCount(t))
	})

	t.Run("insufficient funds mutates neither side", func(t *testing.T) {
		_, err := svc.Transfer(ctx, identityFor(1), src, dst, 100_000)
		assert.ErrorIs(t, err, ErrInsufficientFunds)

		assert.Equal(t, int64(7_000), env.balance(t, src))
		assert.Equal(t, int64(2_000), env.balance(t, dst))
	})

	// the destination row is locked before the source here, since locks are
	// acquired in ascending account order; every check must still hold
	t.Run("transfer toward a lower account number", func(t *testing.T) {
		_, err := svc.Transfer(ctx, identityFor(1), dst, src, 500)
		require.NoError(t, err)
		assert.Equal(t, int64(7_500), env.balance(t, src))
		assert.Equal(t, int64(1_500), env.balance(t, dst))

		_, err = svc.Transfer(ctx, identityFor(2), dst, src, 500)
		assert.ErrorIs(t, err, ErrAccountNotFound)

		_, err = svc.Transfer(ctx, identityFor(1), dst, src, 100_000)
		assert.ErrorIs(t, err, ErrInsufficientFunds)
		assert.Equal(t, int64(1_500), env.balance(t, dst))
	})
}

// the concrete walk-through: 100.00 open, +50.00, -30.00, 20.00 away
func TestLedgerService_Scenario(t *testing.T) {
	env := setupTestEnv(t)
	svc := newLedger(env)
	ctx := context.Background()

	a := env.seedAccount(t, 1, 10_000)
	b := env.seedAccount(t, 1, 0)

	_, err := svc.Deposit(ctx, identityFor(1), a, 5_000)
	require.NoError(t, err)
	assert.Equal(t, int64(15_000), env.balance(t, a))

	_, err = svc.Withdraw(ctx, identityFor(1), a, 3_000)
	require.NoError(t, err)
	assert.Equal(t, int64(12_000), env.balance(t, a))

	_, err = svc.Transfer(ctx, identityFor(1), a, b, 2_000)
	require.NoError(t, err)
	assert.Equal(t, int64(10_000), env.balance(t, a))
	assert.Equal(t, int64(2_000), env.balance(t, b))

	assert.Equal(t, int64(3), env.transactionCount(t))
}

func TestLedgerService_History(t *testing.T) {
	env := setupTestEnv(t)
	svc := newLedger(env)
	ctx := context.Background()

	a := env.seedAccount(t, 1, 10_000)

	_, err := svc.Deposit(ctx, identityFor(1), a, 1_000)
	require.NoError(t, err)
	_, err = svc.Withdraw(ctx, identityFor(1), a, 500)
	require.NoError(t, err)

	history, err := svc.History(ctx, identityFor(1), 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, model.KindWithdraw, history[0].Kind)
	assert.Equal(t, model.KindDeposit, history[1].Kind)

	other, err := svc.History(ctx, identityFor(2), 0)
	require.NoError(t, err)
	assert.Empty(t, other)
}
