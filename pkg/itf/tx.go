// Package itf provides small in-test fixtures shared across packages.
package itf

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/talentgrid-io/talentgrid/pkg/composables"
)

var ErrNoQueries = errors.New("itf: nop transaction cannot execute queries")

// NopTx satisfies pgx.Tx without a database. Services under test that wrap
// work in composables.InTx join this transaction and never touch commit or
// rollback; repositories are expected to be mocked alongside it.
type NopTx struct{}

func (NopTx) Begin(ctx context.Context) (pgx.Tx, error) { return NopTx{}, nil }
func (NopTx) Commit(ctx context.Context) error          { return nil }
func (NopTx) Rollback(ctx context.Context) error        { return nil }

func (NopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, ErrNoQueries
}

func (NopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (NopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }

func (NopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, ErrNoQueries
}

func (NopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, ErrNoQueries
}

func (NopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, ErrNoQueries
}

func (NopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return errRow{} }

func (NopTx) Conn() *pgx.Conn { return nil }

type errRow struct{}

func (errRow) Scan(dest ...any) error { return ErrNoQueries }

// NewTxContext returns ctx carrying a NopTx so transactional service code
// can run without a pool.
func NewTxContext(ctx context.Context) context.Context {
	return composables.WithTx(ctx, NopTx{})
}
