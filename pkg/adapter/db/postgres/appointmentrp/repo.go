// Copyright (c) 2025 ClimaTec Sistemas
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package appointmentrp implements the appointments repository over a
// PostgreSQL appointments table. The table carries a partial unique
// index over the active rows, so a technician slot can only be taken
// once no matter how the writers interleave.
package appointmentrp

import (
	"context"
	"time"

	"github.com/climatec/dispatch/pkg/adapter/db/postgres"
	"github.com/climatec/dispatch/pkg/core/model"
	"github.com/climatec/dispatch/pkg/core/repo"
	"github.com/google/uuid"
)

type Repo struct {
}

func New() *Repo {
	return &Repo{}
}

type connQueryer struct {
	*postgres.Conn
}

func (appts *Repo) Conn(c repo.Conn) repo.AppointmentsConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) Insert(ctx context.Context, a model.Appointment) error {
	return Insert(ctx, cq.Conn, a)
}

func (cq connQueryer) Update(ctx context.Context, a model.Appointment) (bool, error) {
	return Update(ctx, cq.Conn, a)
}

func (cq connQueryer) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return Delete(ctx, cq.Conn, id)
}

func (cq connQueryer) ByID(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	return ByID(ctx, cq.Conn, id)
}

func (cq connQueryer) Details(ctx context.Context, id uuid.UUID) (*model.AppointmentDetails, error) {
	return Details(ctx, cq.Conn, id)
}

func (cq connQueryer) List(ctx context.Context) ([]model.Appointment, error) {
	return List(ctx, cq.Conn)
}

func (cq connQueryer) ListByTechnician(ctx context.Context, technicianID uuid.UUID) ([]model.Appointment, error) {
	return ListByTechnician(ctx, cq.Conn, technicianID)
}

func (cq connQueryer) ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.Appointment, error) {
	return ListByClient(ctx, cq.Conn, clientID)
}

func (cq connQueryer) HasActiveAt(
	ctx context.Context, technicianID uuid.UUID, at time.Time, excludeID uuid.UUID,
) (bool, error) {
	return HasActiveAt(ctx, cq.Conn, technicianID, at, excludeID)
}

type txQueryer struct {
	*postgres.Tx
}

func (appts *Repo) Tx(tx repo.Tx) repo.AppointmentsTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) Insert(ctx context.Context, a model.Appointment) error {
	return Insert(ctx, tq.Tx, a)
}

func (tq txQueryer) Update(ctx context.Context, a model.Appointment) (bool, error) {
	return Update(ctx, tq.Tx, a)
}

func (tq txQueryer) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return Delete(ctx, tq.Tx, id)
}

func (tq txQueryer) ByID(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	return ByID(ctx, tq.Tx, id)
}

func (tq txQueryer) Details(ctx context.Context, id uuid.UUID) (*model.AppointmentDetails, error) {
	return Details(ctx, tq.Tx, id)
}

func (tq txQueryer) List(ctx context.Context) ([]model.Appointment, error) {
	return List(ctx, tq.Tx)
}

func (tq txQueryer) ListByTechnician(ctx context.Context, technicianID uuid.UUID) ([]model.Appointment, error) {
	return ListByTechnician(ctx, tq.Tx, technicianID)
}

func (tq txQueryer) ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.Appointment, error) {
	return ListByClient(ctx, tq.Tx, clientID)
}

func (tq txQueryer) HasActiveAt(
	ctx context.Context, technicianID uuid.UUID, at time.Time, excludeID uuid.UUID,
) (bool, error) {
	return HasActiveAt(ctx, tq.Tx, technicianID, at, excludeID)
}
