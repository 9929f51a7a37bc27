// Package repo declares the expectations of the use cases layer from
// the persistence layer: a connection pool, single connections,
// transactions, and one repository interface per entity. The actual
// implementation lives in the adapter layer and is injected into the
// use case objects at start up, keeping the core free of framework
// dependencies.
package repo

import "context"

type ConnHandler func(context.Context, Conn) error

// Conn represents a single database connection, borrowed from a Pool
// for the duration of one handler call. A transaction may be started
// on it using the Tx method.
type Conn interface {
	Queryer

	// Tx begins a transaction on this connection and runs handler
	// within it. The transaction is committed when handler returns
	// nil and rolled back otherwise.
	Tx(ctx context.Context, handler TxHandler) error

	// IsConn method prevents a non-Conn object to mistakenly
	// implement the Conn interface.
	IsConn()
}
