// Copyright (c) 2025 ClimaTec Sistemas
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package technicianrp implements the technicians repository over a
// PostgreSQL technicians table.
package technicianrp

import (
	"context"

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

func (techs *Repo) Conn(c repo.Conn) repo.TechniciansConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) Insert(ctx context.Context, t model.Technician) error {
	return Insert(ctx, cq.Conn, t)
}

func (cq connQueryer) Update(ctx context.Context, t model.Technician) (bool, error) {
	return Update(ctx, cq.Conn, t)
}

func (cq connQueryer) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return Delete(ctx, cq.Conn, id)
}

func (cq connQueryer) ByID(ctx context.Context, id uuid.UUID) (*model.Technician, error) {
	return ByID(ctx, cq.Conn, id)
}

func (cq connQueryer) ByEmail(ctx context.Context, email string) (*model.Technician, error) {
	return ByEmail(ctx, cq.Conn, email)
}

func (cq connQueryer) List(ctx context.Context) ([]model.Technician, error) {
	return List(ctx, cq.Conn)
}

type txQueryer struct {
	*postgres.Tx
}

func (techs *Repo) Tx(tx repo.Tx) repo.TechniciansTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) Insert(ctx context.Context, t model.Technician) error {
	return Insert(ctx, tq.Tx, t)
}

func (tq txQueryer) Update(ctx context.Context, t model.Technician) (bool, error) {
	return Update(ctx, tq.Tx, t)
}

func (tq txQueryer) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return Delete(ctx, tq.Tx, id)
}

func (tq txQueryer) ByID(ctx context.Context, id uuid.UUID) (*model.Technician, error) {
	return ByID(ctx, tq.Tx, id)
}

func (tq txQueryer) ByEmail(ctx context.Context, email string) (*model.Technician, error) {
	return ByEmail(ctx, tq.Tx, email)
}

func (tq txQueryer) List(ctx context.Context) ([]model.Technician, error) {
	return List(ctx, tq.Tx)
}
