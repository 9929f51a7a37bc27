// Copyright (c) 2025 ClimaTec Sistemas
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model_test

import (
	"testing"
	"time"

	"github.com/climatec/dispatch/pkg/core/model"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppointment(t *testing.T) {
	addrID := uuid.New()
	techID := uuid.New()
	srvID := uuid.New()
	cliID := uuid.New()
	at := time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC)
	created := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	a := model.NewAppointment(
		addrID, techID, srvID, cliID, at, "bring a ladder", created,
	)
	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.Equal(t, addrID, a.AddressID)
	assert.Equal(t, techID, a.TechnicianID)
	assert.Equal(t, srvID, a.ServiceID)
	assert.Equal(t, cliID, a.ClientID)
	assert.True(t, a.ScheduledAt.Equal(at))
	assert.Equal(t, model.StatusScheduled, a.Status)
	assert.Equal(t, "bring a ladder", a.Notes)
	assert.True(t, a.CreatedAt.Equal(created))

	b := model.NewAppointment(
		addrID, techID, srvID, cliID, at, "", created,
	)
	assert.NotEqual(t, a.ID, b.ID, "IDs must be unique per creation")
}

func TestAppointmentWithersKeepOriginal(t *testing.T) {
	at := time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC)
	orig := model.NewAppointment(
		uuid.New(), uuid.New(), uuid.New(), uuid.New(),
		at, "original", at.Add(-24*time.Hour),
	)

	moved := orig.WithScheduledAt(at.Add(time.Hour))
	done := orig.WithStatus(model.StatusCompleted)
	noted := orig.WithNotes("")

	assert.True(t, orig.ScheduledAt.Equal(at), "origin must not move")
	assert.Equal(t, model.StatusScheduled, orig.Status)
	assert.Equal(t, "original", orig.Notes)

	assert.True(t, moved.ScheduledAt.Equal(at.Add(time.Hour)))
	assert.Equal(t, orig.ID, moved.ID)
	assert.Equal(t, model.StatusCompleted, done.Status)
	assert.Equal(t, "", noted.Notes)
}

func TestAppointmentActive(t *testing.T) {
	a := model.Appointment{}
	for _, tc := range []struct {
		status model.Status
		active bool
	}{
		{model.StatusScheduled, true},
		{model.StatusConfirmed, true},
		{model.StatusInProgress, true},
		{model.StatusCompleted, false},
		{model.StatusCancelled, false},
	} {
		assert.Equal(
			t, tc.active, a.WithStatus(tc.status).Active(),
			"status %s", tc.status,
		)
	}
}

func TestTechnicianJSONOmitsPasswordHash(t *testing.T) {
	tech := model.NewTechnician(
		"Ana", "11987654321", "ana@climatec.example",
		"$2a$10$secret", time.Now(),
	)
	b, err := json.Marshal(tech)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "secret")
	assert.NotContains(t, string(b), "password")
	assert.Contains(t, string(b), `"email":"ana@climatec.example"`)
}
