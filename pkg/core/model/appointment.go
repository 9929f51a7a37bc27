// Copyright (c) 2025 ClimaTec Sistemas
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package model defines the inner most layer of the Clean Architecture
// containing the business-level models, also called entities or domain.
// This layer may not depend on outter layers, while all other layers
// may depend on it.
// All entities in this package are immutable values: a field change is
// expressed by a With* method which returns a new value, carrying the
// remaining fields over unchanged. The persistence layer stores a
// changed entity by replacing the whole row which is keyed by its ID.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Appointment models one scheduled visit of a technician at a client
// address, performing one service from the catalog. The ID and
// CreatedAt fields are assigned by NewAppointment and never change
// afterwards. ScheduledAt is the exact visit instant; two active
// appointments of one technician may not share the same instant.
type Appointment struct {
	ID           uuid.UUID `json:"id"`         // immutable, assigned at creation
	AddressID    uuid.UUID `json:"address_id"` // visited address, owned by ClientID
	TechnicianID uuid.UUID `json:"technician_id"`
	ServiceID    uuid.UUID `json:"service_id"`
	ClientID     uuid.UUID `json:"client_id"`
	ScheduledAt  time.Time `json:"scheduled_at"`
	Status       Status    `json:"status"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"` // immutable, server-assigned
}

// NewAppointment creates an appointment with a fresh random ID, the
// StatusScheduled initial status, and the given creation instant.
// The caller (the use cases layer) is responsible for validating the
// entity references and the scheduling instant beforehand.
func NewAppointment(
	addressID, technicianID, serviceID, clientID uuid.UUID,
	scheduledAt time.Time,
	notes string,
	createdAt time.Time,
) Appointment {
	return Appointment{
		ID:           uuid.New(),
		AddressID:    addressID,
		TechnicianID: technicianID,
		ServiceID:    serviceID,
		ClientID:     clientID,
		ScheduledAt:  scheduledAt,
		Status:       StatusScheduled,
		Notes:        notes,
		CreatedAt:    createdAt,
	}
}

// WithScheduledAt returns a copy of the appointment moved to the given
// instant. It performs no validation itself; the future-instant and
// conflict checks belong to the use cases layer.
func (a Appointment) WithScheduledAt(t time.Time) Appointment {
	a.ScheduledAt = t
	return a
}

// WithStatus returns a copy of the appointment with the given status.
// The status value must have been validated already.
func (a Appointment) WithStatus(s Status) Appointment {
	a.Status = s
	return a
}

// WithNotes returns a copy of the appointment with the given free-text
// notes. An empty string is acceptable and clears the notes.
func (a Appointment) WithNotes(notes string) Appointment {
	a.Notes = notes
	return a
}

// Active reports whether the appointment still occupies its
// technician's time slot. Cancelled and completed appointments are
// inactive and do not take part in the double-booking conflict check.
func (a Appointment) Active() bool {
	return a.Status != StatusCancelled && a.Status != StatusCompleted
}

// AppointmentDetails is the joined read model of one appointment,
// resolving its four entity references for presentation. The nested
// technician omits the password hash on serialization.
type AppointmentDetails struct {
	ID          uuid.UUID  `json:"id"`
	ScheduledAt time.Time  `json:"scheduled_at"`
	Status      Status     `json:"status"`
	Notes       string     `json:"notes"`
	CreatedAt   time.Time  `json:"created_at"`
	Technician  Technician `json:"technician"`
	Client      Client     `json:"client"`
	Service     Service    `json:"service"`
	Address     Address    `json:"address"`
}
