package pg

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTx struct {
	pgx.Tx
	execCount  int
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	t.execCount++
	return pgconn.NewCommandTag("UPDATE 1"), nil
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	t.rolledBack = true
	return nil
}

type fakePool struct {
	tx        *fakeTx
	beginErr  error
	execCount int
}

func (p *fakePool) Begin(ctx context.Context) (pgx.Tx, error) {
	if p.beginErr != nil {
		return nil, p.beginErr
	}
	return p.tx, nil
}

func (p *fakePool) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (p *fakePool) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func (p *fakePool) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	p.execCount++
	return pgconn.NewCommandTag("UPDATE 1"), nil
}

func TestManagerBegin_ExecutesWorkOnTransaction(t *testing.T) {
	pool := &fakePool{tx: &fakeTx{}}
	conn := New(pool)
	manager := NewTXManager(pool)

	err := manager.Begin(context.Background(), func(ctx context.Context) error {
		_, err := conn.Exec(ctx, "UPDATE appointments SET status = $1 WHERE id = $2", "completed", "apt-1")
		return err
	})

	require.NoError(t, err)
	assert.Equal(t, 1, pool.tx.execCount, "statement must run on the transaction")
	assert.Zero(t, pool.execCount, "statement must not bypass the transaction")
	assert.True(t, pool.tx.committed)
	assert.False(t, pool.tx.rolledBack)
}

func TestManagerBegin_RollsBackOnError(t *testing.T) {
	pool := &fakePool{tx: &fakeTx{}}
	conn := New(pool)
	manager := NewTXManager(pool)

	err := manager.Begin(context.Background(), func(ctx context.Context) error {
		if _, err := conn.Exec(ctx, "UPDATE appointments SET status = $1 WHERE id = $2", "completed", "apt-1"); err != nil {
			return err
		}
		return errors.New("write failed")
	})

	require.EqualError(t, err, "write failed")
	assert.Equal(t, 1, pool.tx.execCount)
	assert.True(t, pool.tx.rolledBack)
	assert.False(t, pool.tx.committed)
}

func TestManagerBegin_BeginError(t *testing.T) {
	pool := &fakePool{beginErr: errors.New("no connection")}
	manager := NewTXManager(pool)

	err := manager.Begin(context.Background(), func(ctx context.Context) error {
		t.Fatal("fn must not run when the transaction cannot open")
		return nil
	})

	assert.EqualError(t, err, "no connection")
}

func TestConnection_UsesPoolOutsideTransaction(t *testing.T) {
	pool := &fakePool{tx: &fakeTx{}}
	conn := New(pool)

	_, err := conn.Exec(context.Background(), "UPDATE appointments SET status = $1 WHERE id = $2", "completed", "apt-1")

	require.NoError(t, err)
	assert.Equal(t, 1, pool.execCount)
	assert.Zero(t, pool.tx.execCount)
}
