// Copyright (c) 2025 ClimaTec Sistemas
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package clientuc contains the clients UseCase: registering a
// client, keeping its contact details current, and looking clients
// up. The phone number is the uniqueness key; taking a phone which
// another client already holds is a conflict.
package clientuc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/climatec/dispatch/pkg/core/cerr"
	"github.com/climatec/dispatch/pkg/core/model"
	"github.com/climatec/dispatch/pkg/core/repo"
)

// UseCase represents the clients use case, holding a database
// connection pool and the clients repository instance.
type UseCase struct {
	pool  repo.Pool
	clirp repo.Clients
}

// New instantiates a clients use case.
func New(p repo.Pool, clients repo.Clients) *UseCase {
	return &UseCase{pool: p, clirp: clients}
}

// Update describes the requested field changes of one client. Nil
// fields are left unchanged.
type Update struct {
	Name  *string
	Phone *string
}

// Create registers a client after validating its fields and the
// phone uniqueness. The check and the insert run in one transaction.
func (clients *UseCase) Create(
	ctx context.Context, name, phone string,
) (cli *model.Client, err error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	if err := checkPhone(phone); err != nil {
		return nil, err
	}
	err = clients.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			q := clients.clirp.Tx(tx)
			if err := clients.checkPhoneFree(ctx, q, phone, uuid.Nil); err != nil {
				return err
			}
			nc := model.NewClient(name, phone, time.Now())
			if err := q.Insert(ctx, nc); err != nil {
				return fmt.Errorf("inserting client: %w", err)
			}
			cli = &nc
			return nil
		})
	})
	if err != nil {
		cli = nil
	}
	return
}

// Modify applies the given field changes to the id client, returning
// nil (and no error) when the id does not exist. A changed phone is
// re-checked for uniqueness, excluding the client itself.
func (clients *UseCase) Modify(
	ctx context.Context, id uuid.UUID, u Update,
) (cli *model.Client, err error) {
	err = clients.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			q := clients.clirp.Tx(tx)
			cur, err := q.ByID(ctx, id)
			if err != nil {
				return fmt.Errorf("finding client: %w", err)
			}
			if cur == nil {
				return nil
			}
			next := *cur
			if u.Name != nil {
				if err := checkName(*u.Name); err != nil {
					return err
				}
				next = next.WithName(*u.Name)
			}
			if u.Phone != nil {
				if err := checkPhone(*u.Phone); err != nil {
					return err
				}
				if err := clients.checkPhoneFree(
					ctx, q, *u.Phone, cur.ID,
				); err != nil {
					return err
				}
				next = next.WithPhone(*u.Phone)
			}
			ok, err := q.Update(ctx, next)
			if err != nil {
				return fmt.Errorf("updating client: %w", err)
			}
			if !ok {
				return nil
			}
			cli = &next
			return nil
		})
	})
	if err != nil {
		cli = nil
	}
	return
}

// Get returns the id client, or nil when it does not exist.
func (clients *UseCase) Get(
	ctx context.Context, id uuid.UUID,
) (cli *model.Client, err error) {
	err = clients.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		cli, err = clients.clirp.Conn(c).ByID(ctx, id)
		return err
	})
	if err != nil {
		cli = nil
	}
	return
}

// GetByPhone returns the client holding the phone number, or nil.
func (clients *UseCase) GetByPhone(
	ctx context.Context, phone string,
) (cli *model.Client, err error) {
	err = clients.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		cli, err = clients.clirp.Conn(c).ByPhone(ctx, phone)
		return err
	})
	if err != nil {
		cli = nil
	}
	return
}

// List returns all registered clients.
func (clients *UseCase) List(ctx context.Context) (
	list []model.Client, err error,
) {
	err = clients.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		list, err = clients.clirp.Conn(c).List(ctx)
		return err
	})
	if err != nil {
		list = nil
	}
	return
}

// Delete removes the id client, reporting whether it existed.
// Appointments referring to the client are left in place; cleaning
// them up is the caller's responsibility.
func (clients *UseCase) Delete(
	ctx context.Context, id uuid.UUID,
) (deleted bool, err error) {
	err = clients.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		deleted, err = clients.clirp.Conn(c).Delete(ctx, id)
		return err
	})
	if err != nil {
		deleted = false
	}
	return
}

func (clients *UseCase) checkPhoneFree(
	ctx context.Context, q repo.ClientsQueryer,
	phone string, selfID uuid.UUID,
) error {
	holder, err := q.ByPhone(ctx, phone)
	if err != nil {
		return fmt.Errorf("finding client by phone: %w", err)
	}
	if holder != nil && holder.ID != selfID {
		return cerr.Conflict(errors.New("phone already in use"))
	}
	return nil
}

func checkName(name string) error {
	if len(strings.TrimSpace(name)) < 2 {
		return cerr.Validation(
			errors.New("name must have at least 2 characters"),
		)
	}
	return nil
}

func checkPhone(phone string) error {
	if len(strings.TrimSpace(phone)) < 10 {
		return cerr.Validation(
			errors.New("phone must have at least 10 digits"),
		)
	}
	return nil
}
