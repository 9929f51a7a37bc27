// Copyright (c) 2025 ClimaTec Sistemas
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package serviceuc contains the service catalog UseCase. Every
// service belongs to an existing technician, has a non-negative price
// and a positive duration estimate in minutes.
package serviceuc

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

// UseCase represents the service catalog use case.
type UseCase struct {
	pool   repo.Pool
	srvrp  repo.Services
	techrp repo.Technicians
}

// New instantiates a service catalog use case.
func New(
	p repo.Pool, services repo.Services, techs repo.Technicians,
) *UseCase {
	return &UseCase{pool: p, srvrp: services, techrp: techs}
}

// Update describes the requested field changes of one service. Nil
// fields are left unchanged.
type Update struct {
	Name             *string
	Description      *string
	Price            *float64
	EstimatedMinutes *int
}

// Create registers a catalog service owned by the given technician.
func (services *UseCase) Create(
	ctx context.Context,
	technicianID uuid.UUID,
	name, description string,
	price float64,
	estimatedMinutes int,
) (srv *model.Service, err error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	if err := checkPrice(price); err != nil {
		return nil, err
	}
	if err := checkMinutes(estimatedMinutes); err != nil {
		return nil, err
	}
	err = services.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			tech, err := services.techrp.Tx(tx).ByID(ctx, technicianID)
			if err != nil {
				return fmt.Errorf("finding technician: %w", err)
			}
			if tech == nil {
				return cerr.NotFound(errors.New("technician not found"))
			}
			ns := model.NewService(
				technicianID, name, description,
				price, estimatedMinutes, time.Now(),
			)
			if err := services.srvrp.Tx(tx).Insert(ctx, ns); err != nil {
				return fmt.Errorf("inserting service: %w", err)
			}
			srv = &ns
			return nil
		})
	})
	if err != nil {
		srv = nil
	}
	return
}

// Modify applies the given field changes to the id service, returning
// nil (and no error) when the id does not exist.
func (services *UseCase) Modify(
	ctx context.Context, id uuid.UUID, u Update,
) (srv *model.Service, err error) {
	err = services.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			q := services.srvrp.Tx(tx)
			cur, err := q.ByID(ctx, id)
			if err != nil {
				return fmt.Errorf("finding service: %w", err)
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
			if u.Description != nil {
				next = next.WithDescription(*u.Description)
			}
			if u.Price != nil {
				if err := checkPrice(*u.Price); err != nil {
					return err
				}
				next = next.WithPrice(*u.Price)
			}
			if u.EstimatedMinutes != nil {
				if err := checkMinutes(*u.EstimatedMinutes); err != nil {
					return err
				}
				next = next.WithEstimatedMinutes(*u.EstimatedMinutes)
			}
			ok, err := q.Update(ctx, next)
			if err != nil {
				return fmt.Errorf("updating service: %w", err)
			}
			if !ok {
				return nil
			}
			srv = &next
			return nil
		})
	})
	if err != nil {
		srv = nil
	}
	return
}

// Get returns the id service, or nil when it does not exist.
func (services *UseCase) Get(
	ctx context.Context, id uuid.UUID,
) (srv *model.Service, err error) {
	err = services.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		srv, err = services.srvrp.Conn(c).ByID(ctx, id)
		return err
	})
	if err != nil {
		srv = nil
	}
	return
}

// List returns the whole service catalog.
func (services *UseCase) List(ctx context.Context) (
	list []model.Service, err error,
) {
	err = services.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		list, err = services.srvrp.Conn(c).List(ctx)
		return err
	})
	if err != nil {
		list = nil
	}
	return
}

// Delete removes the id service, reporting whether it existed.
func (services *UseCase) Delete(
	ctx context.Context, id uuid.UUID,
) (deleted bool, err error) {
	err = services.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		deleted, err = services.srvrp.Conn(c).Delete(ctx, id)
		return err
	})
	if err != nil {
		deleted = false
	}
	return
}

func checkName(name string) error {
	if strings.TrimSpace(name) == "" {
		return cerr.Validation(errors.New("name is required"))
	}
	return nil
}

func checkPrice(price float64) error {
	if price < 0 {
		return cerr.Validation(errors.New("price must not be negative"))
	}
	return nil
}

func checkMinutes(minutes int) error {
	if minutes <= 0 {
		return cerr.Validation(
			errors.New("estimated minutes must be positive"),
		)
	}
	return nil
}
