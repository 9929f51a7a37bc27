package repo

import (
	"context"

	"github.com/climatec/dispatch/pkg/core/model"
	"github.com/google/uuid"
)

type AddressesConnQueryer interface {
	AddressesQueryer
}

type AddressesTxQueryer interface {
	AddressesQueryer
}

// AddressesQueryer lists the address persistence operations, with the
// same missing-row conventions as ClientsQueryer.
type AddressesQueryer interface {
	Insert(ctx context.Context, a model.Address) error
	Update(ctx context.Context, a model.Address) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	ByID(ctx context.Context, id uuid.UUID) (*model.Address, error)
	List(ctx context.Context) ([]model.Address, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.Address, error)
}

type Addresses interface {
	Conn(Conn) AddressesConnQueryer
	Tx(Tx) AddressesTxQueryer
}
