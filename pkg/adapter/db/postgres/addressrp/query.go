package addressrp

import (
	"context"
	"errors"
	"fmt"

	"github.com/climatec/dispatch/pkg/adapter/db/postgres"
	"github.com/climatec/dispatch/pkg/core/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type gAddress struct {
	ID           uuid.UUID `gorm:"primaryKey;type:uuid"`
	ClientID     uuid.UUID `gorm:"type:uuid"`
	Street       string
	Number       string
	Neighborhood string
	City         string
	State        string
	PostalCode   string
	Complement   string
}

func (ga *gAddress) TableName() string {
	return "addresses"
}

func (ga *gAddress) Model() *model.Address {
	return &model.Address{
		ID:           ga.ID,
		ClientID:     ga.ClientID,
		Street:       ga.Street,
		Number:       ga.Number,
		Neighborhood: ga.Neighborhood,
		City:         ga.City,
		State:        ga.State,
		PostalCode:   ga.PostalCode,
		Complement:   ga.Complement,
	}
}

func row(a model.Address) *gAddress {
	return &gAddress{
		ID:           a.ID,
		ClientID:     a.ClientID,
		Street:       a.Street,
		Number:       a.Number,
		Neighborhood: a.Neighborhood,
		City:         a.City,
		State:        a.State,
		PostalCode:   a.PostalCode,
		Complement:   a.Complement,
	}
}

func Insert[Q postgres.Queryer](ctx context.Context, q Q, a model.Address) error {
	gdb := q.GORM(ctx)
	if err := gdb.Create(row(a)).Error; err != nil {
		return fmt.Errorf("query: %w", err)
	}
	return nil
}

func Update[Q postgres.Queryer](ctx context.Context, q Q, a model.Address) (bool, error) {
	gdb := q.GORM(ctx)
	res := gdb.Model(&gAddress{}).Where("id=?", a.ID).Select(
		"client_id", "street", "number", "neighborhood",
		"city", "state", "postal_code", "complement",
	).Updates(row(a))
	if err := res.Error; err != nil {
		return false, fmt.Errorf("query: %w", err)
	}
	return res.RowsAffected > 0, nil
}

func Delete[Q postgres.Queryer](ctx context.Context, q Q, id uuid.UUID) (bool, error) {
	gdb := q.GORM(ctx)
	res := gdb.Where("id=?", id).Delete(&gAddress{})
	if err := res.Error; err != nil {
		return false, fmt.Errorf("query: %w", err)
	}
	return res.RowsAffected > 0, nil
}

func ByID[Q postgres.Queryer](ctx context.Context, q Q, id uuid.UUID) (*model.Address, error) {
	gdb := q.GORM(ctx)
	var ga gAddress
	if err := gdb.Where("id=?", id).Take(&ga).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query: %w", err)
	}
	return ga.Model(), nil
}

func List[Q postgres.Queryer](ctx context.Context, q Q) ([]model.Address, error) {
	return find(q.GORM(ctx))
}

func ListByClient[Q postgres.Queryer](
	ctx context.Context, q Q, clientID uuid.UUID,
) ([]model.Address, error) {
	return find(q.GORM(ctx).Where("client_id=?", clientID))
}

func find(gdb *gorm.DB) ([]model.Address, error) {
	var gas []gAddress
	if err := gdb.Order("city, street, number").Find(&gas).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	out := make([]model.Address, 0, len(gas))
	for i := range gas {
		out = append(out, *gas[i].Model())
	}
	return out, nil
}
