// Copyright (c) 2025 ClimaTec Sistemas
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"
	"time"

	"github.com/climatec/dispatch/pkg/core/model"
	"github.com/google/uuid"
)

type AppointmentsConnQueryer interface {
	AppointmentsQueryer
}

type AppointmentsTxQueryer interface {
	AppointmentsQueryer
}

// AppointmentsQueryer lists the appointment persistence operations.
// Lookup methods return a nil model (and a nil error) when no
// matching row exists. List methods order by the scheduled instant,
// newest first. Update and Delete report whether a row was affected;
// Delete does not cascade.
//
// HasActiveAt reports whether the technician already has an active
// (not cancelled, not completed) appointment at exactly the given
// instant. A non-Nil excludeID leaves that appointment out of the
// check, so an appointment may be rescheduled onto its own slot.
//
// Insert must fail with a cerr.Conflict error when a concurrent
// writer has taken the same technician slot between the HasActiveAt
// check and the write. The postgres adapter backs this with a partial
// unique index over active appointments, so the booking invariant
// holds even though the check and the insert are separate statements.
type AppointmentsQueryer interface {
	Insert(ctx context.Context, a model.Appointment) error
	Update(ctx context.Context, a model.Appointment) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	ByID(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
	Details(ctx context.Context, id uuid.UUID) (*model.AppointmentDetails, error)
	List(ctx context.Context) ([]model.Appointment, error)
	ListByTechnician(ctx context.Context, technicianID uuid.UUID) ([]model.Appointment, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.Appointment, error)
	HasActiveAt(ctx context.Context, technicianID uuid.UUID, at time.Time, excludeID uuid.UUID) (bool, error)
}

type Appointments interface {
	Conn(Conn) AppointmentsConnQueryer
	Tx(Tx) AppointmentsTxQueryer
}
