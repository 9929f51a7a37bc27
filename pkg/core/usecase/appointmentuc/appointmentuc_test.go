// Copyright (c) 2025 ClimaTec Sistemas
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package appointmentuc_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/climatec/dispatch/internal/test/fakerp"
	"github.com/climatec/dispatch/pkg/core/cerr"
	"github.com/climatec/dispatch/pkg/core/model"
	"github.com/climatec/dispatch/pkg/core/usecase/appointmentuc"
)

// fixture seeds one technician, one client with one address, and one
// catalog service, and freezes the clock at 9:00 so "tomorrow at ten"
// is a known future instant.
type fixture struct {
	db *fakerp.DB
	uc *appointmentuc.UseCase

	now  time.Time
	tech model.Technician
	cli  model.Client
	srv  model.Service
	addr model.Address
}

func newFixture(t *testing.T, opts ...appointmentuc.Option) *fixture {
	t.Helper()
	f := &fixture{
		db:  fakerp.NewDB(),
		now: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	}
	opts = append(opts, appointmentuc.WithClock(func() time.Time {
		return f.now
	}))
	uc, err := appointmentuc.New(
		fakerp.NewPool(f.db),
		fakerp.NewAppointments(f.db),
		fakerp.NewTechnicians(f.db),
		fakerp.NewClients(f.db),
		fakerp.NewServices(f.db),
		fakerp.NewAddresses(f.db),
		opts...,
	)
	require.NoError(t, err, "cannot instantiate use case")
	f.uc = uc

	f.tech = model.NewTechnician(
		"Carlos Lima", "11988887777", "carlos@climatec.example",
		"$2a$10$hash", f.now,
	)
	f.cli = model.NewClient("Maria Souza", "11999998888", f.now)
	f.srv = model.NewService(
		f.tech.ID, "split installation", "9000 BTU split unit",
		350, 120, f.now,
	)
	f.addr = model.NewAddress(
		f.cli.ID, "Rua das Flores", "100", "Centro",
		"Sao Paulo", "SP", "01000-000", "apt 42",
	)
	f.db.Technicians[f.tech.ID] = f.tech
	f.db.Clients[f.cli.ID] = f.cli
	f.db.Services[f.srv.ID] = f.srv
	f.db.Addresses[f.addr.ID] = f.addr
	return f
}

// tomorrowAt returns the frozen day plus one day, at the given hour.
func (f *fixture) tomorrowAt(hour int) time.Time {
	d := f.now.AddDate(0, 0, 1)
	return time.Date(
		d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, time.UTC,
	)
}

func (f *fixture) book(t *testing.T, at time.Time) model.Appointment {
	t.Helper()
	appt, err := f.uc.Create(
		context.Background(),
		f.addr.ID, f.tech.ID, f.srv.ID, f.cli.ID, at, "",
	)
	require.NoError(t, err, "booking must succeed")
	require.NotNil(t, appt)
	return *appt
}

func assertKind(t *testing.T, err error, kind cerr.Kind, status int) {
	t.Helper()
	var ce *cerr.Error
	require.ErrorAs(t, err, &ce, "expected a client-visible error")
	assert.Equal(t, kind, ce.Kind)
	assert.Equal(t, status, ce.HTTPStatusCode)
}

func TestCreate(t *testing.T) {
	f := newFixture(t)
	at := f.tomorrowAt(10)

	appt := f.book(t, at)
	assert.NotEqual(t, uuid.Nil, appt.ID)
	assert.Equal(t, f.tech.ID, appt.TechnicianID)
	assert.Equal(t, f.cli.ID, appt.ClientID)
	assert.Equal(t, f.srv.ID, appt.ServiceID)
	assert.Equal(t, f.addr.ID, appt.AddressID)
	assert.True(t, appt.ScheduledAt.Equal(at))
	assert.Equal(t, model.StatusScheduled, appt.Status)
	assert.True(t, appt.CreatedAt.Equal(f.now))
	assert.Contains(t, f.db.Appointments, appt.ID, "must be stored")
}

func TestCreateMissingReference(t *testing.T) {
	missing := uuid.New()
	for _, tc := range []struct {
		name   string
		mutate func(ids *[4]uuid.UUID)
		detail string
	}{
		{
			name: "technician",
			mutate: func(ids *[4]uuid.UUID) {
				ids[1] = missing
			},
			detail: "technician not found",
		},
		{
			name: "client",
			mutate: func(ids *[4]uuid.UUID) {
				ids[3] = missing
			},
			detail: "client not found",
		},
		{
			name: "service",
			mutate: func(ids *[4]uuid.UUID) {
				ids[2] = missing
			},
			detail: "service not found",
		},
		{
			name: "address",
			mutate: func(ids *[4]uuid.UUID) {
				ids[0] = missing
			},
			detail: "address not found",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			ids := [4]uuid.UUID{f.addr.ID, f.tech.ID, f.srv.ID, f.cli.ID}
			tc.mutate(&ids)

			appt, err := f.uc.Create(
				context.Background(),
				ids[0], ids[1], ids[2], ids[3],
				f.tomorrowAt(10), "",
			)
			assert.Nil(t, appt)
			assertKind(t, err, cerr.KindNotFound, 404)
			assert.Contains(t, err.Error(), tc.detail)
			assert.Empty(t, f.db.Appointments, "nothing may be written")
		})
	}
}

func TestCreateForeignAddress(t *testing.T) {
	f := newFixture(t)
	other := model.NewClient("Jose Alves", "11911112222", f.now)
	f.db.Clients[other.ID] = other
	foreign := model.NewAddress(
		other.ID, "Av. Paulista", "1578", "Bela Vista",
		"Sao Paulo", "SP", "01310-200", "",
	)
	f.db.Addresses[foreign.ID] = foreign

	appt, err := f.uc.Create(
		context.Background(),
		foreign.ID, f.tech.ID, f.srv.ID, f.cli.ID,
		f.tomorrowAt(10), "",
	)
	assert.Nil(t, appt)
	assertKind(t, err, cerr.KindIntegrity, 422)
	assert.Contains(
		t, err.Error(), "address does not belong to the given client",
	)
}

func TestCreatePastInstant(t *testing.T) {
	f := newFixture(t)
	for _, at := range []time.Time{
		f.now.AddDate(0, 0, -1), // yesterday
		f.now.Add(-time.Second),
		f.now, // exactly now is not in the future either
	} {
		appt, err := f.uc.Create(
			context.Background(),
			f.addr.ID, f.tech.ID, f.srv.ID, f.cli.ID, at, "",
		)
		assert.Nil(t, appt)
		assertKind(t, err, cerr.KindValidation, 400)
		assert.Contains(
			t, err.Error(), "scheduled time must be in the future",
		)
	}
}

func TestCreateDoubleBooking(t *testing.T) {
	f := newFixture(t)
	at := f.tomorrowAt(10)
	f.book(t, at)

	// same technician, same exact instant
	appt, err := f.uc.Create(
		context.Background(),
		f.addr.ID, f.tech.ID, f.srv.ID, f.cli.ID, at, "",
	)
	assert.Nil(t, appt)
	assertKind(t, err, cerr.KindConflict, 409)
	assert.Contains(
		t, err.Error(), "technician already booked at this time",
	)

	// same technician, one hour later
	f.book(t, f.tomorrowAt(11))

	// another technician, the disputed instant
	tech2 := model.NewTechnician(
		"Paula Reis", "11933334444", "paula@climatec.example",
		"$2a$10$hash", f.now,
	)
	f.db.Technicians[tech2.ID] = tech2
	appt, err = f.uc.Create(
		context.Background(),
		f.addr.ID, tech2.ID, f.srv.ID, f.cli.ID, at, "",
	)
	require.NoError(t, err)
	assert.NotNil(t, appt)
}

func TestCreateAfterSlotFreed(t *testing.T) {
	f := newFixture(t)
	at := f.tomorrowAt(10)
	first := f.book(t, at)

	st := "cancelled"
	_, err := f.uc.Modify(
		context.Background(), first.ID,
		appointmentuc.Update{Status: &st},
	)
	require.NoError(t, err)

	// a cancelled appointment no longer occupies the slot
	f.book(t, at)
}

func TestCreateWithMinNotice(t *testing.T) {
	f := newFixture(t, appointmentuc.WithMinNotice(24*time.Hour))

	appt, err := f.uc.Create(
		context.Background(),
		f.addr.ID, f.tech.ID, f.srv.ID, f.cli.ID,
		f.now.Add(2*time.Hour), "",
	)
	assert.Nil(t, appt)
	assertKind(t, err, cerr.KindValidation, 400)

	f.book(t, f.now.Add(25*time.Hour))
}

func TestModifyReschedule(t *testing.T) {
	f := newFixture(t)
	appt := f.book(t, f.tomorrowAt(10))

	at := f.tomorrowAt(14)
	got, err := f.uc.Modify(
		context.Background(), appt.ID,
		appointmentuc.Update{ScheduledAt: &at},
	)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.ScheduledAt.Equal(at))
	assert.True(
		t,
		f.db.Appointments[appt.ID].ScheduledAt.Equal(at),
		"reschedule must be persisted",
	)
}

func TestModifyRescheduleOwnSlot(t *testing.T) {
	f := newFixture(t)
	at := f.tomorrowAt(10)
	appt := f.book(t, at)

	// rewriting its own current slot is legal
	got, err := f.uc.Modify(
		context.Background(), appt.ID,
		appointmentuc.Update{ScheduledAt: &at},
	)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.ScheduledAt.Equal(at))
}

func TestModifyRescheduleOntoTakenSlot(t *testing.T) {
	f := newFixture(t)
	at10 := f.tomorrowAt(10)
	f.book(t, at10)
	second := f.book(t, f.tomorrowAt(11))

	got, err := f.uc.Modify(
		context.Background(), second.ID,
		appointmentuc.Update{ScheduledAt: &at10},
	)
	assert.Nil(t, got)
	assertKind(t, err, cerr.KindConflict, 409)
	assert.True(
		t,
		f.db.Appointments[second.ID].ScheduledAt.Equal(f.tomorrowAt(11)),
		"failed reschedule must leave the row unchanged",
	)
}

func TestModifyStatusAndNotes(t *testing.T) {
	f := newFixture(t)
	appt := f.book(t, f.tomorrowAt(10))

	st := "confirmed"
	notes := "client asked for a morning call"
	got, err := f.uc.Modify(
		context.Background(), appt.ID,
		appointmentuc.Update{Status: &st, Notes: &notes},
	)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, model.StatusConfirmed, got.Status)
	assert.Equal(t, notes, got.Notes)

	// an empty non-nil Notes clears the notes
	empty := ""
	got, err = f.uc.Modify(
		context.Background(), appt.ID,
		appointmentuc.Update{Notes: &empty},
	)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "", got.Notes)
}

func TestModifyInvalidStatus(t *testing.T) {
	f := newFixture(t)
	appt := f.book(t, f.tomorrowAt(10))

	st := "done"
	got, err := f.uc.Modify(
		context.Background(), appt.ID,
		appointmentuc.Update{Status: &st},
	)
	assert.Nil(t, got)
	assertKind(t, err, cerr.KindValidation, 400)
	assert.Contains(t, err.Error(), `invalid status "done"`)
	assert.Equal(
		t, model.StatusScheduled, f.db.Appointments[appt.ID].Status,
	)
}

func TestModifyAtomicity(t *testing.T) {
	f := newFixture(t)
	appt := f.book(t, f.tomorrowAt(10))

	// a valid reschedule paired with an invalid status must leave
	// both fields untouched
	at := f.tomorrowAt(15)
	st := "done"
	got, err := f.uc.Modify(
		context.Background(), appt.ID,
		appointmentuc.Update{ScheduledAt: &at, Status: &st},
	)
	assert.Nil(t, got)
	assertKind(t, err, cerr.KindValidation, 400)
	stored := f.db.Appointments[appt.ID]
	assert.True(t, stored.ScheduledAt.Equal(f.tomorrowAt(10)))
	assert.Equal(t, model.StatusScheduled, stored.Status)
}

func TestModifyMissing(t *testing.T) {
	f := newFixture(t)
	st := "confirmed"
	got, err := f.uc.Modify(
		context.Background(), uuid.New(),
		appointmentuc.Update{Status: &st},
	)
	assert.NoError(t, err, "a missing id is not an error")
	assert.Nil(t, got)
}

func TestGet(t *testing.T) {
	f := newFixture(t)
	appt := f.book(t, f.tomorrowAt(10))

	got, err := f.uc.Get(context.Background(), appt.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, appt.ID, got.ID)

	got, err = f.uc.Get(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetDetails(t *testing.T) {
	f := newFixture(t)
	appt := f.book(t, f.tomorrowAt(10))

	det, err := f.uc.GetDetails(context.Background(), appt.ID)
	require.NoError(t, err)
	require.NotNil(t, det)
	assert.Equal(t, appt.ID, det.ID)
	assert.Equal(t, f.tech.ID, det.Technician.ID)
	assert.Equal(t, f.cli.ID, det.Client.ID)
	assert.Equal(t, f.srv.ID, det.Service.ID)
	assert.Equal(t, f.addr.ID, det.Address.ID)

	det, err = f.uc.GetDetails(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, det)
}

func TestListOrdering(t *testing.T) {
	f := newFixture(t)
	early := f.book(t, f.tomorrowAt(9))
	late := f.book(t, f.tomorrowAt(17))
	mid := f.book(t, f.tomorrowAt(13))

	list, err := f.uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(
		t,
		[]uuid.UUID{late.ID, mid.ID, early.ID},
		[]uuid.UUID{list[0].ID, list[1].ID, list[2].ID},
		"newest scheduled first",
	)
}

func TestListByTechnicianAndClient(t *testing.T) {
	f := newFixture(t)
	mine := f.book(t, f.tomorrowAt(10))

	tech2 := model.NewTechnician(
		"Paula Reis", "11933334444", "paula@climatec.example",
		"$2a$10$hash", f.now,
	)
	f.db.Technicians[tech2.ID] = tech2
	other, err := f.uc.Create(
		context.Background(),
		f.addr.ID, tech2.ID, f.srv.ID, f.cli.ID, f.tomorrowAt(10), "",
	)
	require.NoError(t, err)
	require.NotNil(t, other)

	byTech, err := f.uc.ListByTechnician(context.Background(), f.tech.ID)
	require.NoError(t, err)
	require.Len(t, byTech, 1)
	assert.Equal(t, mine.ID, byTech[0].ID)

	byCli, err := f.uc.ListByClient(context.Background(), f.cli.ID)
	require.NoError(t, err)
	assert.Len(t, byCli, 2)

	byCli, err = f.uc.ListByClient(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, byCli)
}

func TestDelete(t *testing.T) {
	f := newFixture(t)
	appt := f.book(t, f.tomorrowAt(10))

	deleted, err := f.uc.Delete(context.Background(), appt.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.NotContains(t, f.db.Appointments, appt.ID)

	deleted, err = f.uc.Delete(context.Background(), appt.ID)
	assert.NoError(t, err, "a missing id is not an error")
	assert.False(t, deleted)
}

func TestOptionErrors(t *testing.T) {
	db := fakerp.NewDB()
	_, err := appointmentuc.New(
		fakerp.NewPool(db),
		fakerp.NewAppointments(db),
		fakerp.NewTechnicians(db),
		fakerp.NewClients(db),
		fakerp.NewServices(db),
		fakerp.NewAddresses(db),
		appointmentuc.WithMinNotice(-time.Hour),
	)
	assert.Error(t, err)

	_, err = appointmentuc.New(
		fakerp.NewPool(db),
		fakerp.NewAppointments(db),
		fakerp.NewTechnicians(db),
		fakerp.NewClients(db),
		fakerp.NewServices(db),
		fakerp.NewAddresses(db),
		appointmentuc.WithClock(nil),
	)
	assert.Error(t, err)
}
