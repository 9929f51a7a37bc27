// Copyright (c) 2025 ClimaTec Sistemas
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package servicerp implements the service catalog repository over a
// PostgreSQL services table.
package servicerp

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

func (services *Repo) Conn(c repo.Conn) repo.ServicesConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) Insert(ctx context.Context, s model.Service) error {
	return Insert(ctx, cq.Conn, s)
}

func (cq connQueryer) Update(ctx context.Context, s model.Service) (bool, error) {
	return Update(ctx, cq.Conn, s)
}

func (cq connQueryer) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return Delete(ctx, cq.Conn, id)
}

func (cq connQueryer) ByID(ctx context.Context, id uuid.UUID) (*model.Service, error) {
	return ByID(ctx, cq.Conn, id)
}

func (cq connQueryer) List(ctx context.Context) ([]model.Service, error) {
	return List(ctx, cq.Conn)
}

type txQueryer struct {
	*postgres.Tx
}

func (services *Repo) Tx(tx repo.Tx) repo.ServicesTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) Insert(ctx context.Context, s model.Service) error {
	return Insert(ctx, tq.Tx, s)
}

func (tq txQueryer) Update(ctx context.Context, s model.Service) (bool, error) {
	return Update(ctx, tq.Tx, s)
}

func (tq txQueryer) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return Delete(ctx, tq.Tx, id)
}

func (tq txQueryer) ByID(ctx context.Context, id uuid.UUID) (*model.Service, error) {
	return ByID(ctx, tq.Tx, id)
}

func (tq txQueryer) List(ctx context.Context) ([]model.Service, error) {
	return List(ctx, tq.Tx)
}
