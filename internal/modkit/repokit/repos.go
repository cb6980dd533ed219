// Package repokit gives repositories a narrow view of the sql store
package repokit

import (
	"context"

	"articlestats/internal/platform/store"
)

// Queryer is what a bound repository issues statements through
type Queryer = store.RowQuerier

// TxRunner runs a function inside a transaction
type TxRunner = store.TxRunner

type (
	// Rows is a result set
	Rows = store.Rows
	// Row is a single result row
	Row = store.Row
	// CommandTag reports the outcome of a write
	CommandTag = store.CommandTag
)

// WithTx runs fn in a transaction, binding nothing; use Binder to get a typed repo inside
func WithTx(ctx context.Context, tx TxRunner, fn func(q Queryer) error) error {
	return tx.Tx(ctx, fn)
}
