package appointmentrp

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

type gAppointment struct {
	ID           uuid.UUID `gorm:"primaryKey;type:uuid"`
	AddressID    uuid.UUID `gorm:"type:uuid"`
	TechnicianID uuid.UUID `gorm:"type:uuid"`
	ServiceID    uuid.UUID `gorm:"type:uuid"`
	ClientID     uuid.UUID `gorm:"type:uuid"`
	ScheduledAt  time.Time
	Status       string
	Notes        string
	CreatedAt    time.Time
}

func (ga *gAppointment) TableName() string {
	return "appointments"
}

func (ga *gAppointment) Model() (*model.Appointment, error) {
	status, err := model.ParseStatus(ga.Status)
	if err != nil {
		return nil, fmt.Errorf("parsing status of appointment %v: %w", ga.ID, err)
	}
	return &model.Appointment{
		ID:           ga.ID,
		AddressID:    ga.AddressID,
		TechnicianID: ga.TechnicianID,
		ServiceID:    ga.ServiceID,
		ClientID:     ga.ClientID,
		ScheduledAt:  ga.ScheduledAt,
		Status:       status,
		Notes:        ga.Notes,
		CreatedAt:    ga.CreatedAt,
	}, nil
}

func row(a model.Appointment) *gAppointment {
	return &gAppointment{
		ID:           a.ID,
		AddressID:    a.AddressID,
		TechnicianID: a.TechnicianID,
		ServiceID:    a.ServiceID,
		ClientID:     a.ClientID,
		ScheduledAt:  a.ScheduledAt,
		Status:       a.Status.String(),
		Notes:        a.Notes,
		CreatedAt:    a.CreatedAt,
	}
}

// Insert relies on the appointments_active_slot partial unique index
// to reject a concurrent booking of the same active technician slot,
// reporting it as a conflict error.
func Insert[Q postgres.Queryer](ctx context.Context, q Q, a model.Appointment) error {
	gdb := q.GORM(ctx)
	if err := gdb.Create(row(a)).Error; err != nil {
		return fmt.Errorf(
			"query: %w",
			postgres.AsConflict(err, "technician already booked at this time"),
		)
	}
	return nil
}

func Update[Q postgres.Queryer](ctx context.Context, q Q, a model.Appointment) (bool, error) {
	gdb := q.GORM(ctx)
	res := gdb.Model(&gAppointment{}).Where("id=?", a.ID).Select(
		"address_id", "technician_id", "service_id", "client_id",
		"scheduled_at", "status", "notes", "created_at",
	).Updates(row(a))
	if err := res.Error; err != nil {
		return false, fmt.Errorf(
			"query: %w",
			postgres.AsConflict(err, "technician already booked at this time"),
		)
	}
	return res.RowsAffected > 0, nil
}

func Delete[Q postgres.Queryer](ctx context.Context, q Q, id uuid.UUID) (bool, error) {
	gdb := q.GORM(ctx)
	res := gdb.Where("id=?", id).Delete(&gAppointment{})
	if err := res.Error; err != nil {
		return false, fmt.Errorf("query: %w", err)
	}
	return res.RowsAffected > 0, nil
}

func ByID[Q postgres.Queryer](ctx context.Context, q Q, id uuid.UUID) (*model.Appointment, error) {
	gdb := q.GORM(ctx)
	var ga gAppointment
	if err := gdb.Where("id=?", id).Take(&ga).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query: %w", err)
	}
	return ga.Model()
}

func List[Q postgres.Queryer](ctx context.Context, q Q) ([]model.Appointment, error) {
	return find(q.GORM(ctx))
}

func ListByTechnician[Q postgres.Queryer](
	ctx context.Context, q Q, technicianID uuid.UUID,
) ([]model.Appointment, error) {
	return find(q.GORM(ctx).Where("technician_id=?", technicianID))
}

func ListByClient[Q postgres.Queryer](
	ctx context.Context, q Q, clientID uuid.UUID,
) ([]model.Appointment, error) {
	return find(q.GORM(ctx).Where("client_id=?", clientID))
}

func find(gdb *gorm.DB) ([]model.Appointment, error) {
	var gas []gAppointment
	if err := gdb.Order("scheduled_at DESC").Find(&gas).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	out := make([]model.Appointment, 0, len(gas))
	for i := range gas {
		a, err := gas[i].Model()
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, nil
}

// HasActiveAt reports whether the technician holds an active
// appointment (neither cancelled nor completed) at exactly the given
// instant, ignoring the excludeID row when it is not uuid.Nil.
func HasActiveAt[Q postgres.Queryer](
	ctx context.Context, q Q,
	technicianID uuid.UUID, at time.Time, excludeID uuid.UUID,
) (bool, error) {
	gdb := q.GORM(ctx)
	query := `SELECT EXISTS(
	SELECT 1 FROM appointments
	WHERE technician_id = ? AND scheduled_at = ?
		AND status NOT IN ('cancelled', 'completed')`
	args := []any{technicianID, at}
	if excludeID != uuid.Nil {
		query += ` AND id <> ?`
		args = append(args, excludeID)
	}
	query += `)`
	var busy bool
	if err := gdb.Raw(query, args...).Scan(&busy).Error; err != nil {
		return false, fmt.Errorf("query: %w", err)
	}
	return busy, nil
}

// gDetails flattens the four-way join used by the Details query.
// Column aliases carry the joined rows side by side, prefixed by
// their source table.
type gDetails struct {
	ID          uuid.UUID
	ScheduledAt time.Time
	Status      string
	Notes       string
	CreatedAt   time.Time

	TechID         uuid.UUID
	TechName       string
	TechPhone      string
	TechEmail      string
	TechRegistered time.Time

	CliID         uuid.UUID
	CliName       string
	CliPhone      string
	CliRegistered time.Time

	SrvID          uuid.UUID
	SrvName        string
	SrvDescription string
	SrvPrice       float64
	SrvMinutes     int
	SrvRegistered  time.Time

	AddrID           uuid.UUID
	AddrStreet       string
	AddrNumber       string
	AddrNeighborhood string
	AddrCity         string
	AddrState        string
	AddrPostalCode   string
	AddrComplement   string
}

const detailsQuery = `SELECT
	a.id, a.scheduled_at, a.status, a.notes, a.created_at,
	t.id AS tech_id, t.name AS tech_name, t.phone AS tech_phone,
	t.email AS tech_email, t.registered_at AS tech_registered,
	c.id AS cli_id, c.name AS cli_name, c.phone AS cli_phone,
	c.registered_at AS cli_registered,
	s.id AS srv_id, s.name AS srv_name, s.description AS srv_description,
	s.price AS srv_price, s.estimated_minutes AS srv_minutes,
	s.registered_at AS srv_registered,
	d.id AS addr_id, d.street AS addr_street, d.number AS addr_number,
	d.neighborhood AS addr_neighborhood, d.city AS addr_city,
	d.state AS addr_state, d.postal_code AS addr_postal_code,
	d.complement AS addr_complement
FROM appointments a
	JOIN technicians t ON t.id = a.technician_id
	JOIN clients c ON c.id = a.client_id
	JOIN services s ON s.id = a.service_id
	JOIN addresses d ON d.id = a.address_id
WHERE a.id = ?`

// Details loads an appointment joined with its technician, client,
// service and address rows. It returns nil when either the
// appointment or any of its referenced rows is missing, as there is
// no complete detailed view to report in that case.
func Details[Q postgres.Queryer](
	ctx context.Context, q Q, id uuid.UUID,
) (*model.AppointmentDetails, error) {
	gdb := q.GORM(ctx)
	var gd gDetails
	res := gdb.Raw(detailsQuery, id).Scan(&gd)
	if err := res.Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	status, err := model.ParseStatus(gd.Status)
	if err != nil {
		return nil, fmt.Errorf("parsing status of appointment %v: %w", gd.ID, err)
	}
	return &model.AppointmentDetails{
		ID:          gd.ID,
		ScheduledAt: gd.ScheduledAt,
		Status:      status,
		Notes:       gd.Notes,
		CreatedAt:   gd.CreatedAt,
		Technician: model.Technician{
			ID:           gd.TechID,
			Name:         gd.TechName,
			Phone:        gd.TechPhone,
			Email:        gd.TechEmail,
			RegisteredAt: gd.TechRegistered,
		},
		Client: model.Client{
			ID:           gd.CliID,
			Name:         gd.CliName,
			Phone:        gd.CliPhone,
			RegisteredAt: gd.CliRegistered,
		},
		Service: model.Service{
			ID:               gd.SrvID,
			TechnicianID:     gd.TechID,
			Name:             gd.SrvName,
			Description:      gd.SrvDescription,
			Price:            gd.SrvPrice,
			EstimatedMinutes: gd.SrvMinutes,
			RegisteredAt:     gd.SrvRegistered,
		},
		Address: model.Address{
			ID:           gd.AddrID,
			ClientID:     gd.CliID,
			Street:       gd.AddrStreet,
			Number:       gd.AddrNumber,
			Neighborhood: gd.AddrNeighborhood,
			City:         gd.AddrCity,
			State:        gd.AddrState,
			PostalCode:   gd.AddrPostalCode,
			Complement:   gd.AddrComplement,
		},
	}, nil
}
