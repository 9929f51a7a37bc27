package postgres

import (
	"context"

	"github.com/climatec/dispatch/pkg/core/repo"
	"gorm.io/gorm"
)

// Queryer constrains the generic repository query functions to run
// under either a borrowed connection or an ongoing transaction,
// exposing the context-bound GORM handle of both.
type Queryer interface {
	*Conn | *Tx
	repo.Queryer
	GORM(ctx context.Context) *gorm.DB
}
