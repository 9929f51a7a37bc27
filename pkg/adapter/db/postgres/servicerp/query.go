package servicerp

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

type gService struct {
	ID               uuid.UUID `gorm:"primaryKey;type:uuid"`
	TechnicianID     uuid.UUID `gorm:"type:uuid"`
	Name             string
	Description      string
	Price            float64
	EstimatedMinutes int
	RegisteredAt     time.Time
}

func (gs *gService) TableName() string {
	return "services"
}

func (gs *gService) Model() *model.Service {
	return &model.Service{
		ID:               gs.ID,
		TechnicianID:     gs.TechnicianID,
		Name:             gs.Name,
		Description:      gs.Description,
		Price:            gs.Price,
		EstimatedMinutes: gs.EstimatedMinutes,
		RegisteredAt:     gs.RegisteredAt,
	}
}

func row(s model.Service) *gService {
	return &gService{
		ID:               s.ID,
		TechnicianID:     s.TechnicianID,
		Name:             s.Name,
		Description:      s.Description,
		Price:            s.Price,
		EstimatedMinutes: s.EstimatedMinutes,
		RegisteredAt:     s.RegisteredAt,
	}
}

func Insert[Q postgres.Queryer](ctx context.Context, q Q, s model.Service) error {
	gdb := q.GORM(ctx)
	if err := gdb.Create(row(s)).Error; err != nil {
		return fmt.Errorf("query: %w", err)
	}
	return nil
}

func Update[Q postgres.Queryer](ctx context.Context, q Q, s model.Service) (bool, error) {
	gdb := q.GORM(ctx)
	res := gdb.Model(&gService{}).Where("id=?", s.ID).Select(
		"technician_id", "name", "description",
		"price", "estimated_minutes", "registered_at",
	).Updates(row(s))
	if err := res.Error; err != nil {
		return false, fmt.Errorf("query: %w", err)
	}
	return res.RowsAffected > 0, nil
}

func Delete[Q postgres.Queryer](ctx context.Context, q Q, id uuid.UUID) (bool, error) {
	gdb := q.GORM(ctx)
	res := gdb.Where("id=?", id).Delete(&gService{})
	if err := res.Error; err != nil {
		return false, fmt.Errorf("query: %w", err)
	}
	return res.RowsAffected > 0, nil
}

func ByID[Q postgres.Queryer](ctx context.Context, q Q, id uuid.UUID) (*model.Service, error) {
	gdb := q.GORM(ctx)
	var gs gService
	if err := gdb.Where("id=?", id).Take(&gs).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query: %w", err)
	}
	return gs.Model(), nil
}

func List[Q postgres.Queryer](ctx context.Context, q Q) ([]model.Service, error) {
	gdb := q.GORM(ctx)
	var gss []gService
	if err := gdb.Order("registered_at").Find(&gss).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	out := make([]model.Service, 0, len(gss))
	for i := range gss {
		out = append(out, *gss[i].Model())
	}
	return out, nil
}
