// Copyright (c) 2025 ClimaTec Sistemas
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package addressrp implements the client addresses repository over a
// PostgreSQL addresses table.
package addressrp

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

func (addrs *Repo) Conn(c repo.Conn) repo.AddressesConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) Insert(ctx context.Context, a model.Address) error {
	return Insert(ctx, cq.Conn, a)
}

func (cq connQueryer) Update(ctx context.Context, a model.Address) (bool, error) {
	return Update(ctx, cq.Conn, a)
}

func (cq connQueryer) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return Delete(ctx, cq.Conn, id)
}

func (cq connQueryer) ByID(ctx context.Context, id uuid.UUID) (*model.Address, error) {
	return ByID(ctx, cq.Conn, id)
}

func (cq connQueryer) List(ctx context.Context) ([]model.Address, error) {
	return List(ctx, cq.Conn)
}

func (cq connQueryer) ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.Address, error) {
	return ListByClient(ctx, cq.Conn, clientID)
}

type txQueryer struct {
	*postgres.Tx
}

func (addrs *Repo) Tx(tx repo.Tx) repo.AddressesTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) Insert(ctx context.Context, a model.Address) error {
	return Insert(ctx, tq.Tx, a)
}

func (tq txQueryer) Update(ctx context.Context, a model.Address) (bool, error) {
	return Update(ctx, tq.Tx, a)
}

func (tq txQueryer) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return Delete(ctx, tq.Tx, id)
}

func (tq txQueryer) ByID(ctx context.Context, id uuid.UUID) (*model.Address, error) {
	return ByID(ctx, tq.Tx, id)
}

func (tq txQueryer) List(ctx context.Context) ([]model.Address, error) {
	return List(ctx, tq.Tx)
}

func (tq txQueryer) ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.Address, error) {
	return ListByClient(ctx, tq.Tx, clientID)
}
