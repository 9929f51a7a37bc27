package repo

import (
	"context"

	"github.com/climatec/dispatch/pkg/core/model"
	"github.com/google/uuid"
)

type TechniciansConnQueryer interface {
	TechniciansQueryer
}

type TechniciansTxQueryer interface {
	TechniciansQueryer
}

// TechniciansQueryer lists the technician persistence operations,
// with the same missing-row conventions as ClientsQueryer.
type TechniciansQueryer interface {
	Insert(ctx context.Context, t model.Technician) error
	Update(ctx context.Context, t model.Technician) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	ByID(ctx context.Context, id uuid.UUID) (*model.Technician, error)
	ByEmail(ctx context.Context, email string) (*model.Technician, error)
	List(ctx context.Context) ([]model.Technician, error)
}

type Technicians interface {
	Conn(Conn) TechniciansConnQueryer
	Tx(Tx) TechniciansTxQueryer
}
