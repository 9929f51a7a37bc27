// Copyright (c) 2025 ClimaTec Sistemas
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package addressuc contains the addresses UseCase. Every address
// belongs to an existing client; the state field is a two-letter
// region code and the complement is optional.
package addressuc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/climatec/dispatch/pkg/core/cerr"
	"github.com/climatec/dispatch/pkg/core/model"
	"github.com/climatec/dispatch/pkg/core/repo"
)

// UseCase represents the addresses use case.
type UseCase struct {
	pool   repo.Pool
	addrrp repo.Addresses
	clirp  repo.Clients
}

// New instantiates an addresses use case.
func New(
	p repo.Pool, addrs repo.Addresses, clients repo.Clients,
) *UseCase {
	return &UseCase{pool: p, addrrp: addrs, clirp: clients}
}

// Update describes the requested field changes of one address. Nil
// fields are left unchanged. An empty non-nil Complement clears the
// complement.
type Update struct {
	Street       *string
	Number       *string
	Neighborhood *string
	City         *string
	State        *string
	PostalCode   *string
	Complement   *string
}

// Create registers a service address owned by the given client.
func (addrs *UseCase) Create(
	ctx context.Context,
	clientID uuid.UUID,
	street, number, neighborhood, city, state, postalCode, complement string,
) (addr *model.Address, err error) {
	if err := checkRequired(street, "street"); err != nil {
		return nil, err
	}
	if err := checkRequired(number, "number"); err != nil {
		return nil, err
	}
	if err := checkRequired(neighborhood, "neighborhood"); err != nil {
		return nil, err
	}
	if err := checkRequired(city, "city"); err != nil {
		return nil, err
	}
	if err := checkState(state); err != nil {
		return nil, err
	}
	if err := checkRequired(postalCode, "postal code"); err != nil {
		return nil, err
	}
	err = addrs.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			cli, err := addrs.clirp.Tx(tx).ByID(ctx, clientID)
			if err != nil {
				return fmt.Errorf("finding client: %w", err)
			}
			if cli == nil {
				return cerr.NotFound(errors.New("client not found"))
			}
			na := model.NewAddress(
				clientID, street, number, neighborhood,
				city, state, postalCode, complement,
			)
			if err := addrs.addrrp.Tx(tx).Insert(ctx, na); err != nil {
				return fmt.Errorf("inserting address: %w", err)
			}
			addr = &na
			return nil
		})
	})
	if err != nil {
		addr = nil
	}
	return
}

// Modify applies the given field changes to the id address, returning
// nil (and no error) when the id does not exist.
func (addrs *UseCase) Modify(
	ctx context.Context, id uuid.UUID, u Update,
) (addr *model.Address, err error) {
	err = addrs.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			q := addrs.addrrp.Tx(tx)
			cur, err := q.ByID(ctx, id)
			if err != nil {
				return fmt.Errorf("finding address: %w", err)
			}
			if cur == nil {
				return nil
			}
			next := *cur
			if u.Street != nil {
				if err := checkRequired(*u.Street, "street"); err != nil {
					return err
				}
				next = next.WithStreet(*u.Street)
			}
			if u.Number != nil {
				if err := checkRequired(*u.Number, "number"); err != nil {
					return err
				}
				next = next.WithNumber(*u.Number)
			}
			if u.Neighborhood != nil {
				if err := checkRequired(
					*u.Neighborhood, "neighborhood",
				); err != nil {
					return err
				}
				next = next.WithNeighborhood(*u.Neighborhood)
			}
			if u.City != nil {
				if err := checkRequired(*u.City, "city"); err != nil {
					return err
				}
				next = next.WithCity(*u.City)
			}
			if u.State != nil {
				if err := checkState(*u.State); err != nil {
					return err
				}
				next = next.WithState(*u.State)
			}
			if u.PostalCode != nil {
				if err := checkRequired(
					*u.PostalCode, "postal code",
				); err != nil {
					return err
				}
				next = next.WithPostalCode(*u.PostalCode)
			}
			if u.Complement != nil {
				next = next.WithComplement(*u.Complement)
			}
			ok, err := q.Update(ctx, next)
			if err != nil {
				return fmt.Errorf("updating address: %w", err)
			}
			if !ok {
				return nil
			}
			addr = &next
			return nil
		})
	})
	if err != nil {
		addr = nil
	}
	return
}

// Get returns the id address, or nil when it does not exist.
func (addrs *UseCase) Get(
	ctx context.Context, id uuid.UUID,
) (addr *model.Address, err error) {
	err = addrs.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		addr, err = addrs.addrrp.Conn(c).ByID(ctx, id)
		return err
	})
	if err != nil {
		addr = nil
	}
	return
}

// List returns all registered addresses.
func (addrs *UseCase) List(ctx context.Context) (
	list []model.Address, err error,
) {
	err = addrs.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		list, err = addrs.addrrp.Conn(c).List(ctx)
		return err
	})
	if err != nil {
		list = nil
	}
	return
}

// ListByClient returns the client's addresses.
func (addrs *UseCase) ListByClient(
	ctx context.Context, clientID uuid.UUID,
) (list []model.Address, err error) {
	err = addrs.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		list, err = addrs.addrrp.Conn(c).ListByClient(ctx, clientID)
		return err
	})
	if err != nil {
		list = nil
	}
	return
}

// Delete removes the id address, reporting whether it existed.
func (addrs *UseCase) Delete(
	ctx context.Context, id uuid.UUID,
) (deleted bool, err error) {
	err = addrs.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		deleted, err = addrs.addrrp.Conn(c).Delete(ctx, id)
		return err
	})
	if err != nil {
		deleted = false
	}
	return
}

func checkRequired(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return cerr.Validation(errors.New(field + " is required"))
	}
	return nil
}

func checkState(state string) error {
	if len(strings.TrimSpace(state)) != 2 {
		return cerr.Validation(
			errors.New("state must have exactly 2 characters"),
		)
	}
	return nil
}
