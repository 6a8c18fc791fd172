package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonsphere/booking-service/pkg/dbmetrics"
)

type stubTx struct {
	commitErr  error
	rolledBack bool
}

func (t *stubTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (t *stubTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (t *stubTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func (t *stubTx) Commit() error {
	return t.commitErr
}

func (t *stubTx) Rollback() error {
	t.rolledBack = true
	return nil
}

// stubBeginner выдает транзакции с заранее заданными ошибками коммита
type stubBeginner struct {
	commitErrs []error
	begun      int
	txs        []*stubTx
}

func (b *stubBeginner) BeginTx(_ context.Context, _ *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	var commitErr error
	if b.begun < len(b.commitErrs) {
		commitErr = b.commitErrs[b.begun]
	}
	b.begun++

	tx := &stubTx{commitErr: commitErr}
	b.txs = append(b.txs, tx)
	return tx, nil
}

func serializationErr() *pq.Error {
	return &pq.Error{Code: "40001"}
}

func TestDoSerializable_RetriesCommitSerializationFailure(t *testing.T) {
	beginner := &stubBeginner{commitErrs: []error{serializationErr(), nil}}
	m := NewTransactionManager(beginner)

	calls := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, beginner.begun)
	assert.Equal(t, 2, calls)
}

func TestDoSerializable_RetriesStatementSerializationFailure(t *testing.T) {
	// FOR UPDATE внутри fn тоже может словить откат конкурирующей транзакции
	beginner := &stubBeginner{}
	m := NewTransactionManager(beginner)

	calls := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		if calls == 1 {
			return serializationErr()
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.True(t, beginner.txs[0].rolledBack)
}

func TestDoSerializable_RetriesDeadlock(t *testing.T) {
	beginner := &stubBeginner{commitErrs: []error{&pq.Error{Code: "40P01"}, nil}}
	m := NewTransactionManager(beginner)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error { return nil })

	require.NoError(t, err)
	assert.Equal(t, 2, beginner.begun)
}

func TestDoSerializable_GivesUpAfterMaxAttempts(t *testing.T) {
	beginner := &stubBeginner{
		commitErrs: []error{serializationErr(), serializationErr(), serializationErr(), serializationErr()},
	}
	m := NewTransactionManager(beginner)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error { return nil })

	require.Error(t, err)
	assert.Equal(t, maxSerializableAttempts, beginner.begun)

	var pqErr *pq.Error
	assert.True(t, errors.As(err, &pqErr))
}

func TestDoSerializable_NoRetryOnOtherErrors(t *testing.T) {
	beginner := &stubBeginner{}
	m := NewTransactionManager(beginner)

	wantErr := errors.New("business rule violated")
	calls := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return wantErr
	})

	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, beginner.begun)
	assert.True(t, beginner.txs[0].rolledBack)
}
