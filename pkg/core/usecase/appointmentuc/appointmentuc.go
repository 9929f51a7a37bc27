// Copyright (c) 2025 ClimaTec Sistemas
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package appointmentuc contains the appointments UseCase: booking a
// technician visit, rescheduling it, moving it through its status
// lifecycle, and the read operations over the bookings.
//
// Booking is gated by a fixed check order: the technician, client,
// service, and address references must resolve, the address must
// belong to the booking client, the requested instant must be in the
// future, and the technician must be free at exactly that instant.
// The first failing check decides the reported error and nothing is
// written before all checks pass. The conflict check and the write
// run in one transaction, and the appointments table carries a
// partial unique index over active bookings, so two concurrent
// requests for the same slot cannot both succeed.
package appointmentuc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/climatec/dispatch/pkg/core/cerr"
	"github.com/climatec/dispatch/pkg/core/model"
	"github.com/climatec/dispatch/pkg/core/repo"
)

// UseCase represents the appointments use case. It holds a database
// connection pool and the repositories of every entity taking part in
// the booking checks.
type UseCase struct {
	pool   repo.Pool
	apptrp repo.Appointments
	techrp repo.Technicians
	clirp  repo.Clients
	srvrp  repo.Services
	addrrp repo.Addresses

	now       func() time.Time
	minNotice time.Duration
}

// New instantiates an appointments use case.
// Required collaborators are passed individually, so the caller has to
// provision them and whenever they change, the caller will notice and
// fix them due to a compilation error.
// Optional parameters are passed as a series of functional options.
func New(
	p repo.Pool,
	appts repo.Appointments,
	techs repo.Technicians,
	clients repo.Clients,
	services repo.Services,
	addrs repo.Addresses,
	opts ...Option,
) (*UseCase, error) {
	uc := &UseCase{
		pool:   p,
		apptrp: appts,
		techrp: techs,
		clirp:  clients,
		srvrp:  services,
		addrrp: addrs,
	}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	// now, deal with defaults
	if uc.now == nil {
		uc.now = time.Now
	}
	return uc, nil
}

// Update describes the requested field changes of one appointment.
// Nil fields are left unchanged. Status carries the raw string form,
// validated during the update. An empty non-nil Notes clears the
// notes.
type Update struct {
	ScheduledAt *time.Time
	Status      *string
	Notes       *string
}

// Create books an appointment of the technician at the client address
// for the given service and instant, after running the full check
// order documented on the package. In absence of errors, the stored
// appointment is returned with its assigned ID, the scheduled status,
// and its creation timestamp.
func (appts *UseCase) Create(
	ctx context.Context,
	addressID, technicianID, serviceID, clientID uuid.UUID,
	scheduledAt time.Time,
	notes string,
) (appt *model.Appointment, err error) {
	err = appts.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			if err := appts.checkRefs(
				ctx, tx, addressID, technicianID, serviceID, clientID,
			); err != nil {
				return err
			}
			if err := appts.checkSlot(
				ctx, appts.apptrp.Tx(tx), technicianID, scheduledAt, uuid.Nil,
			); err != nil {
				return err
			}
			a := model.NewAppointment(
				addressID, technicianID, serviceID, clientID,
				scheduledAt, notes, appts.now(),
			)
			if err := appts.apptrp.Tx(tx).Insert(ctx, a); err != nil {
				return fmt.Errorf("inserting appointment: %w", err)
			}
			appt = &a
			return nil
		})
	})
	if err != nil {
		appt = nil
	}
	return
}

// Modify applies the given field changes to the id appointment. All
// changes are validated and applied in memory first and written back
// as one full-row replacement, so a failing later field leaves no
// partial write behind. A nil appointment (and a nil error) is
// returned when the id does not exist.
//
// A new scheduling instant is re-checked for being in the future and
// for technician conflicts, excluding the appointment itself, so
// rewriting its own current slot stays legal. A new status only has
// to be a member of the valid status set; no transition adjacency is
// enforced.
func (appts *UseCase) Modify(
	ctx context.Context, id uuid.UUID, u Update,
) (appt *model.Appointment, err error) {
	err = appts.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			q := appts.apptrp.Tx(tx)
			cur, err := q.ByID(ctx, id)
			if err != nil {
				return fmt.Errorf("finding appointment: %w", err)
			}
			if cur == nil {
				return nil
			}
			next := *cur
			if u.ScheduledAt != nil {
				at := *u.ScheduledAt
				if err := appts.checkSlot(
					ctx, q, cur.TechnicianID, at, cur.ID,
				); err != nil {
					return err
				}
				next = next.WithScheduledAt(at)
			}
			if u.Status != nil {
				st, err := model.ParseStatus(*u.Status)
				if err != nil {
					return cerr.Validation(
						fmt.Errorf("invalid status %q: %w", *u.Status, err),
					)
				}
				next = next.WithStatus(st)
			}
			if u.Notes != nil {
				next = next.WithNotes(*u.Notes)
			}
			ok, err := q.Update(ctx, next)
			if err != nil {
				return fmt.Errorf("updating appointment: %w", err)
			}
			if !ok {
				return nil // deleted concurrently; report as missing
			}
			appt = &next
			return nil
		})
	})
	if err != nil {
		appt = nil
	}
	return
}

// Get returns the id appointment, or nil when it does not exist.
func (appts *UseCase) Get(
	ctx context.Context, id uuid.UUID,
) (appt *model.Appointment, err error) {
	err = appts.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		appt, err = appts.apptrp.Conn(c).ByID(ctx, id)
		return err
	})
	if err != nil {
		appt = nil
	}
	return
}

// GetDetails returns the joined view of the id appointment, resolving
// its technician, client, service, and address references, or nil
// when the appointment does not exist.
func (appts *UseCase) GetDetails(
	ctx context.Context, id uuid.UUID,
) (det *model.AppointmentDetails, err error) {
	err = appts.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		det, err = appts.apptrp.Conn(c).Details(ctx, id)
		return err
	})
	if err != nil {
		det = nil
	}
	return
}

// List returns all appointments, newest scheduled first.
func (appts *UseCase) List(ctx context.Context) (
	list []model.Appointment, err error,
) {
	err = appts.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		list, err = appts.apptrp.Conn(c).List(ctx)
		return err
	})
	if err != nil {
		list = nil
	}
	return
}

// ListByTechnician returns the technician's appointments, newest
// scheduled first.
func (appts *UseCase) ListByTechnician(
	ctx context.Context, technicianID uuid.UUID,
) (list []model.Appointment, err error) {
	err = appts.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		list, err = appts.apptrp.Conn(c).ListByTechnician(ctx, technicianID)
		return err
	})
	if err != nil {
		list = nil
	}
	return
}

// ListByClient returns the client's appointments, newest scheduled
// first.
func (appts *UseCase) ListByClient(
	ctx context.Context, clientID uuid.UUID,
) (list []model.Appointment, err error) {
	err = appts.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		list, err = appts.apptrp.Conn(c).ListByClient(ctx, clientID)
		return err
	})
	if err != nil {
		list = nil
	}
	return
}

// Delete removes the id appointment, reporting whether it existed.
// Removal does not cascade and a missing id is not an error.
func (appts *UseCase) Delete(
	ctx context.Context, id uuid.UUID,
) (deleted bool, err error) {
	err = appts.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		deleted, err = appts.apptrp.Conn(c).Delete(ctx, id)
		return err
	})
	if err != nil {
		deleted = false
	}
	return
}

// checkRefs resolves the four entity references in the documented
// order, failing fast with a distinct error per missing entity, and
// verifies that the address belongs to the booking client.
func (appts *UseCase) checkRefs(
	ctx context.Context, tx repo.Tx,
	addressID, technicianID, serviceID, clientID uuid.UUID,
) error {
	tech, err := appts.techrp.Tx(tx).ByID(ctx, technicianID)
	if err != nil {
		return fmt.Errorf("finding technician: %w", err)
	}
	if tech == nil {
		return cerr.NotFound(errors.New("technician not found"))
	}
	cli, err := appts.clirp.Tx(tx).ByID(ctx, clientID)
	if err != nil {
		return fmt.Errorf("finding client: %w", err)
	}
	if cli == nil {
		return cerr.NotFound(errors.New("client not found"))
	}
	srv, err := appts.srvrp.Tx(tx).ByID(ctx, serviceID)
	if err != nil {
		return fmt.Errorf("finding service: %w", err)
	}
	if srv == nil {
		return cerr.NotFound(errors.New("service not found"))
	}
	addr, err := appts.addrrp.Tx(tx).ByID(ctx, addressID)
	if err != nil {
		return fmt.Errorf("finding address: %w", err)
	}
	if addr == nil {
		return cerr.NotFound(errors.New("address not found"))
	}
	if addr.ClientID != clientID {
		return cerr.Integrity(
			errors.New("address does not belong to the given client"),
		)
	}
	return nil
}

// checkSlot verifies that the instant is far enough in the future and
// that the technician has no other active appointment at exactly that
// instant. A non-Nil excludeID leaves that appointment out of the
// conflict query.
func (appts *UseCase) checkSlot(
	ctx context.Context, q repo.AppointmentsQueryer,
	technicianID uuid.UUID, at time.Time, excludeID uuid.UUID,
) error {
	if !at.After(appts.now().Add(appts.minNotice)) {
		return cerr.Validation(
			errors.New("scheduled time must be in the future"),
		)
	}
	busy, err := q.HasActiveAt(ctx, technicianID, at, excludeID)
	if err != nil {
		return fmt.Errorf("checking technician availability: %w", err)
	}
	if busy {
		return cerr.Conflict(
			errors.New("technician already booked at this time"),
		)
	}
	return nil
}
