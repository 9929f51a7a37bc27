package technicianrp

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

type gTechnician struct {
	ID           uuid.UUID `gorm:"primaryKey;type:uuid"`
	Name         string
	Phone        string
	Email        string
	PasswordHash string
	RegisteredAt time.Time
}

func (gt *gTechnician) TableName() string {
	return "technicians"
}

func (gt *gTechnician) Model() *model.Technician {
	return &model.Technician{
		ID:           gt.ID,
		Name:         gt.Name,
		Phone:        gt.Phone,
		Email:        gt.Email,
		PasswordHash: gt.PasswordHash,
		RegisteredAt: gt.RegisteredAt,
	}
}

func row(t model.Technician) *gTechnician {
	return &gTechnician{
		ID:           t.ID,
		Name:         t.Name,
		Phone:        t.Phone,
		Email:        t.Email,
		PasswordHash: t.PasswordHash,
		RegisteredAt: t.RegisteredAt,
	}
}

func Insert[Q postgres.Queryer](ctx context.Context, q Q, t model.Technician) error {
	gdb := q.GORM(ctx)
	if err := gdb.Create(row(t)).Error; err != nil {
		return fmt.Errorf(
			"query: %w", postgres.AsConflict(err, "email already in use"),
		)
	}
	return nil
}

func Update[Q postgres.Queryer](ctx context.Context, q Q, t model.Technician) (bool, error) {
	gdb := q.GORM(ctx)
	res := gdb.Model(&gTechnician{}).Where("id=?", t.ID).Select(
		"name", "phone", "email", "password_hash", "registered_at",
	).Updates(row(t))
	if err := res.Error; err != nil {
		return false, fmt.Errorf(
			"query: %w", postgres.AsConflict(err, "email already in use"),
		)
	}
	return res.RowsAffected > 0, nil
}

func Delete[Q postgres.Queryer](ctx context.Context, q Q, id uuid.UUID) (bool, error) {
	gdb := q.GORM(ctx)
	res := gdb.Where("id=?", id).Delete(&gTechnician{})
	if err := res.Error; err != nil {
		return false, fmt.Errorf("query: %w", err)
	}
	return res.RowsAffected > 0, nil
}

func ByID[Q postgres.Queryer](ctx context.Context, q Q, id uuid.UUID) (*model.Technician, error) {
	return one(q.GORM(ctx).Where("id=?", id))
}

func ByEmail[Q postgres.Queryer](ctx context.Context, q Q, email string) (*model.Technician, error) {
	return one(q.GORM(ctx).Where("email=?", email))
}

func one(gdb *gorm.DB) (*model.Technician, error) {
	var gt gTechnician
	if err := gdb.Take(&gt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query: %w", err)
	}
	return gt.Model(), nil
}

func List[Q postgres.Queryer](ctx context.Context, q Q) ([]model.Technician, error) {
	gdb := q.GORM(ctx)
	var gts []gTechnician
	if err := gdb.Order("registered_at").Find(&gts).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	out := make([]model.Technician, 0, len(gts))
	for i := range gts {
		out = append(out, *gts[i].Model())
	}
	return out, nil
}
