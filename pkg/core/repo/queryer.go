package repo

import "context"

// Queryer runs raw SQL statements over a connection or transaction.
// The entity repositories expose typed operations on top of it; the
// schema initialization path is the main direct consumer.
type Queryer interface {
	// Exec runs a statement and reports its affected rows count.
	Exec(ctx context.Context, sql string, args ...any) (count int64, err error)
	// Query runs a statement and returns its result set.
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
}

// Rows walks a result set row by row. Close may drop the unread
// remainder early; Err reports the iteration outcome either way.
type Rows interface {
	Close()
	Err() error
	Next() bool
	Scan(dest ...any) error
	// Values scans the current row into a generic slice, one item
	// per selected column.
	Values() ([]any, error)
}
