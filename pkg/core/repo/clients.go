package repo

import (
	"context"

	"github.com/climatec/dispatch/pkg/core/model"
	"github.com/google/uuid"
)

type ClientsConnQueryer interface {
	ClientsQueryer
}

type ClientsTxQueryer interface {
	ClientsQueryer
}

// ClientsQueryer lists the client persistence operations. Lookup
// methods return a nil model (and a nil error) when no matching row
// exists; deciding whether a missing row is an error belongs to the
// use cases layer. Update and Delete report whether a row was
// affected.
type ClientsQueryer interface {
	Insert(ctx context.Context, c model.Client) error
	Update(ctx context.Context, c model.Client) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	ByID(ctx context.Context, id uuid.UUID) (*model.Client, error)
	ByPhone(ctx context.Context, phone string) (*model.Client, error)
	List(ctx context.Context) ([]model.Client, error)
}

// Clients adapts a borrowed connection or an ongoing transaction to
// the client persistence operations.
type Clients interface {
	Conn(Conn) ClientsConnQueryer
	Tx(Tx) ClientsTxQueryer
}
