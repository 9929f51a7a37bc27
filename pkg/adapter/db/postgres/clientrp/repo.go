// Copyright (c) 2025 ClimaTec Sistemas
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package clientrp implements the clients repository over a
// PostgreSQL clients table.
package clientrp

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

func (clients *Repo) Conn(c repo.Conn) repo.ClientsConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) Insert(ctx context.Context, c model.Client) error {
	return Insert(ctx, cq.Conn, c)
}

func (cq connQueryer) Update(ctx context.Context, c model.Client) (bool, error) {
	return Update(ctx, cq.Conn, c)
}

func (cq connQueryer) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return Delete(ctx, cq.Conn, id)
}

func (cq connQueryer) ByID(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	return ByID(ctx, cq.Conn, id)
}

func (cq connQueryer) ByPhone(ctx context.Context, phone string) (*model.Client, error) {
	return ByPhone(ctx, cq.Conn, phone)
}

func (cq connQueryer) List(ctx context.Context) ([]model.Client, error) {
	return List(ctx, cq.Conn)
}

type txQueryer struct {
	*postgres.Tx
}

func (clients *Repo) Tx(tx repo.Tx) repo.ClientsTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) Insert(ctx context.Context, c model.Client) error {
	return Insert(ctx, tq.Tx, c)
}

func (tq txQueryer) Update(ctx context.Context, c model.Client) (bool, error) {
	return Update(ctx, tq.Tx, c)
}

func (tq txQueryer) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return Delete(ctx, tq.Tx, id)
}

func (tq txQueryer) ByID(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	return ByID(ctx, tq.Tx, id)
}

func (tq txQueryer) ByPhone(ctx context.Context, phone string) (*model.Client, error) {
	return ByPhone(ctx, tq.Tx, phone)
}

func (tq txQueryer) List(ctx context.Context) ([]model.Client, error) {
	return List(ctx, tq.Tx)
}
