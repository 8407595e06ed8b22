package postgresql

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTransaction_Commit(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	err := NewTxManager(mock).WithinTransaction(context.Background(), func(ctx context.Context) error {
		_, ok := txFromContext(ctx)
		assert.True(t, ok, "transaction not injected into context")
		return nil
	})
	require.NoError(t, err)
}

func TestWithTransaction_RollbackOnError(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	want := errors.New("business rule failed")
	err := WithTransaction(context.Background(), mock, func(ctx context.Context) error {
		return want
	})
	assert.ErrorIs(t, err, want)
}

func TestWithTransaction_NestedReuse(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	tm := NewTxManager(mock)
	err := tm.WithinTransaction(context.Background(), func(ctx context.Context) error {
		outer, _ := txFromContext(ctx)
		return tm.WithinTransaction(ctx, func(inner context.Context) error {
			tx, ok := txFromContext(inner)
			assert.True(t, ok)
			assert.Equal(t, outer, tx)
			return nil
		})
	})
	require.NoError(t, err)
}

func TestWithTransaction_RollbackOnPanic(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = WithTransaction(context.Background(), mock, func(ctx context.Context) error {
			panic("boom")
		})
	})
}

func TestGetQuerier_FallsBackToPool(t *testing.T) {
	mock := newMockPool(t)
	assert.Equal(t, mock, GetQuerier(context.Background(), mock))
}
