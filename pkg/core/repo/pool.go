package repo

import "context"

// Pool represents a database connection pool with an explicit
// lifecycle: it is opened once at process start up, injected into the
// use case objects, and closed at shutdown. Connections are exposed
// only for the duration of a handler call, so they are always
// released back to the pool.
type Pool interface {
	Conn(ctx context.Context, handler ConnHandler) error
}
