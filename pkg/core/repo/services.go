package repo

import (
	"context"

	"github.com/climatec/dispatch/pkg/core/model"
	"github.com/google/uuid"
)

type ServicesConnQueryer interface {
	ServicesQueryer
}

type ServicesTxQueryer interface {
	ServicesQueryer
}

// ServicesQueryer lists the service catalog persistence operations,
// with the same missing-row conventions as ClientsQueryer.
type ServicesQueryer interface {
	Insert(ctx context.Context, s model.Service) error
	Update(ctx context.Context, s model.Service) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	ByID(ctx context.Context, id uuid.UUID) (*model.Service, error)
	List(ctx context.Context) ([]model.Service, error)
}

type Services interface {
	Conn(Conn) ServicesConnQueryer
	Tx(Tx) ServicesTxQueryer
}
