package clientrp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/climatec/dispatch/pkg/adapter/db/postgres"
	"github.com/climatec/dispatch/pkg/core/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type gClient struct {
	ID           uuid.UUID `gorm:"primaryKey;type:uuid"`
	Name         string
	Phone        string
	RegisteredAt time.Time
}

func (gc *gClient) TableName() string {
	return "clients"
}

func (gc *gClient) Model() *model.Client {
	return &model.Client{
		ID:           gc.ID,
		Name:         gc.Name,
		Phone:        gc.Phone,
		RegisteredAt: gc.RegisteredAt,
	}
}

func row(c model.Client) *gClient {
	return &gClient{
		ID:           c.ID,
		Name:         c.Name,
		Phone:        c.Phone,
		RegisteredAt: c.RegisteredAt,
	}
}

func Insert[Q postgres.Queryer](ctx context.Context, q Q, c model.Client) error {
	gdb := q.GORM(ctx)
	if err := gdb.Create(row(c)).Error; err != nil {
		return fmt.Errorf(
			"query: %w", postgres.AsConflict(err, "phone already in use"),
		)
	}
	return nil
}

func Update[Q postgres.Queryer](ctx context.Context, q Q, c model.Client) (bool, error) {
	gdb := q.GORM(ctx)
	res := gdb.Model(&gClient{}).Where("id=?", c.ID).Select(
		"name", "phone", "registered_at",
	).Updates(row(c))
	if err := res.Error; err != nil {
		return false, fmt.Errorf(
			"query: %w", postgres.AsConflict(err, "phone already in use"),
		)
	}
	return res.RowsAffected > 0, nil
}

func Delete[Q postgres.Queryer](ctx context.Context, q Q, id uuid.UUID) (bool, error) {
	gdb := q.GORM(ctx)
	res := gdb.Where("id=?", id).Delete(&gClient{})
	if err := res.Error; err != nil {
		return false, fmt.Errorf("query: %w", err)
	}
	return res.RowsAffected > 0, nil
}

func ByID[Q postgres.Queryer](ctx context.Context, q Q, id uuid.UUID) (*model.Client, error) {
	return one(q.GORM(ctx).Where("id=?", id))
}

func ByPhone[Q postgres.Queryer](ctx context.Context, q Q, phone string) (*model.Client, error) {
	return one(q.GORM(ctx).Where("phone=?", phone))
}

func one(gdb *gorm.DB) (*model.Client, error) {
	var gc gClient
	if err := gdb.Take(&gc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query: %w", err)
	}
	return gc.Model(), nil
}

func List[Q postgres.Queryer](ctx context.Context, q Q) ([]model.Client, error) {
	gdb := q.GORM(ctx)
	var gcs []gClient
	if err := gdb.Order("registered_at").Find(&gcs).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	out := make([]model.Client, 0, len(gcs))
	for i := range gcs {
		out = append(out, *gcs[i].Model())
	}
	return out, nil
}
