package postgres

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeTx struct {
	err   error
	calls int
}

func (f *fakeTx) Rollback() error {
	f.calls++
	return f.err
}

func TestRollback_KeepsCause(t *testing.T) {
	cause := errors.New("batch copy failed at item 1")

	tests := []struct {
		name       string
		rollbackErr error
	}{
		{name: "rollback ok", rollbackErr: nil},
		{name: "transação já encerrada", rollbackErr: sql.ErrTxDone},
		{name: "falha no rollback", rollbackErr: errors.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := &fakeTx{err: tt.rollbackErr}

			err := rollback(tx, cause)

			assert.Same(t, cause, err)
			assert.Equal(t, 1, tx.calls)
		})
	}
}
