// Copyright (c) 2025 ClimaTec Sistemas
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package fakerp is an internal helper for the use case test
// packages. It provides an in-memory implementation of the repo.Pool
// and the per-entity repository interfaces, backed by plain maps, so
// the use case logic can be exercised without a DBMS server.
//
// Transactions are pass-through: a failing handler is not rolled
// back. The use cases run all their checks before their first write,
// so the unit tests never depend on a rollback; tests which do (such
// as the concurrent booking race) belong to the integration suites.
package fakerp

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/climatec/dispatch/pkg/core/model"
	"github.com/climatec/dispatch/pkg/core/repo"
)

// DB is the in-memory store shared by one Pool and its repositories.
// Tests may seed and inspect the maps directly.
type DB struct {
	Clients      map[uuid.UUID]model.Client
	Technicians  map[uuid.UUID]model.Technician
	Services     map[uuid.UUID]model.Service
	Addresses    map[uuid.UUID]model.Address
	Appointments map[uuid.UUID]model.Appointment
}

// NewDB creates an empty in-memory store.
func NewDB() *DB {
	return &DB{
		Clients:      make(map[uuid.UUID]model.Client),
		Technicians:  make(map[uuid.UUID]model.Technician),
		Services:     make(map[uuid.UUID]model.Service),
		Addresses:    make(map[uuid.UUID]model.Address),
		Appointments: make(map[uuid.UUID]model.Appointment),
	}
}

var errNoRawSQL = errors.New("fake connection does not run raw SQL")

// Pool implements repo.Pool over the in-memory store.
type Pool struct {
	db *DB
}

// NewPool creates a pool handing out fake connections over db.
func NewPool(db *DB) *Pool {
	return &Pool{db: db}
}

// Conn runs handler with a fake connection.
func (p *Pool) Conn(ctx context.Context, handler repo.ConnHandler) error {
	return handler(ctx, conn{db: p.db})
}

type conn struct {
	db *DB
}

func (c conn) IsConn() {}

func (c conn) Tx(ctx context.Context, handler repo.TxHandler) error {
	return handler(ctx, tx{db: c.db})
}

func (c conn) Exec(context.Context, string, ...any) (int64, error) {
	return 0, errNoRawSQL
}

func (c conn) Query(context.Context, string, ...any) (repo.Rows, error) {
	return nil, errNoRawSQL
}

type tx struct {
	db *DB
}

func (t tx) IsTx() {}

func (t tx) Exec(context.Context, string, ...any) (int64, error) {
	return 0, errNoRawSQL
}

func (t tx) Query(context.Context, string, ...any) (repo.Rows, error) {
	return nil, errNoRawSQL
}

// NewClients creates a fake clients repository over db.
func NewClients(db *DB) repo.Clients {
	return clientsRepo{db: db}
}

type clientsRepo struct {
	db *DB
}

func (r clientsRepo) Conn(repo.Conn) repo.ClientsConnQueryer {
	return clientsQueryer{db: r.db}
}

func (r clientsRepo) Tx(repo.Tx) repo.ClientsTxQueryer {
	return clientsQueryer{db: r.db}
}

type clientsQueryer struct {
	db *DB
}

func (q clientsQueryer) Insert(
	_ context.Context, c model.Client,
) error {
	q.db.Clients[c.ID] = c
	return nil
}

func (q clientsQueryer) Update(
	_ context.Context, c model.Client,
) (bool, error) {
	if _, ok := q.db.Clients[c.ID]; !ok {
		return false, nil
	}
	q.db.Clients[c.ID] = c
	return true, nil
}

func (q clientsQueryer) Delete(
	_ context.Context, id uuid.UUID,
) (bool, error) {
	if _, ok := q.db.Clients[id]; !ok {
		return false, nil
	}
	delete(q.db.Clients, id)
	return true, nil
}

func (q clientsQueryer) ByID(
	_ context.Context, id uuid.UUID,
) (*model.Client, error) {
	if c, ok := q.db.Clients[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (q clientsQueryer) ByPhone(
	_ context.Context, phone string,
) (*model.Client, error) {
	for _, c := range q.db.Clients {
		if c.Phone == phone {
			return &c, nil
		}
	}
	return nil, nil
}

func (q clientsQueryer) List(context.Context) ([]model.Client, error) {
	list := make([]model.Client, 0, len(q.db.Clients))
	for _, c := range q.db.Clients {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].RegisteredAt.Before(list[j].RegisteredAt)
	})
	return list, nil
}

// NewTechnicians creates a fake technicians repository over db.
func NewTechnicians(db *DB) repo.Technicians {
	return techniciansRepo{db: db}
}

type techniciansRepo struct {
	db *DB
}

func (r techniciansRepo) Conn(repo.Conn) repo.TechniciansConnQueryer {
	return techniciansQueryer{db: r.db}
}

func (r techniciansRepo) Tx(repo.Tx) repo.TechniciansTxQueryer {
	return techniciansQueryer{db: r.db}
}

type techniciansQueryer struct {
	db *DB
}

func (q techniciansQueryer) Insert(
	_ context.Context, t model.Technician,
) error {
	q.db.Technicians[t.ID] = t
	return nil
}

func (q techniciansQueryer) Update(
	_ context.Context, t model.Technician,
) (bool, error) {
	if _, ok := q.db.Technicians[t.ID]; !ok {
		return false, nil
	}
	q.db.Technicians[t.ID] = t
	return true, nil
}

func (q techniciansQueryer) Delete(
	_ context.Context, id uuid.UUID,
) (bool, error) {
	if _, ok := q.db.Technicians[id]; !ok {
		return false, nil
	}
	delete(q.db.Technicians, id)
	return true, nil
}

func (q techniciansQueryer) ByID(
	_ context.Context, id uuid.UUID,
) (*model.Technician, error) {
	if t, ok := q.db.Technicians[id]; ok {
		return &t, nil
	}
	return nil, nil
}

func (q techniciansQueryer) ByEmail(
	_ context.Context, email string,
) (*model.Technician, error) {
	for _, t := range q.db.Technicians {
		if t.Email == email {
			return &t, nil
		}
	}
	return nil, nil
}

func (q techniciansQueryer) List(context.Context) (
	[]model.Technician, error,
) {
	list := make([]model.Technician, 0, len(q.db.Technicians))
	for _, t := range q.db.Technicians {
		list = append(list, t)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].RegisteredAt.Before(list[j].RegisteredAt)
	})
	return list, nil
}

// NewServices creates a fake service catalog repository over db.
func NewServices(db *DB) repo.Services {
	return servicesRepo{db: db}
}

type servicesRepo struct {
	db *DB
}

func (r servicesRepo) Conn(repo.Conn) repo.ServicesConnQueryer {
	return servicesQueryer{db: r.db}
}

func (r servicesRepo) Tx(repo.Tx) repo.ServicesTxQueryer {
	return servicesQueryer{db: r.db}
}

type servicesQueryer struct {
	db *DB
}

func (q servicesQueryer) Insert(
	_ context.Context, s model.Service,
) error {
	q.db.Services[s.ID] = s
	return nil
}

func (q servicesQueryer) Update(
	_ context.Context, s model.Service,
) (bool, error) {
	if _, ok := q.db.Services[s.ID]; !ok {
		return false, nil
	}
	q.db.Services[s.ID] = s
	return true, nil
}

func (q servicesQueryer) Delete(
	_ context.Context, id uuid.UUID,
) (bool, error) {
	if _, ok := q.db.Services[id]; !ok {
		return false, nil
	}
	delete(q.db.Services, id)
	return true, nil
}

func (q servicesQueryer) ByID(
	_ context.Context, id uuid.UUID,
) (*model.Service, error) {
	if s, ok := q.db.Services[id]; ok {
		return &s, nil
	}
	return nil, nil
}

func (q servicesQueryer) List(context.Context) ([]model.Service, error) {
	list := make([]model.Service, 0, len(q.db.Services))
	for _, s := range q.db.Services {
		list = append(list, s)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].RegisteredAt.Before(list[j].RegisteredAt)
	})
	return list, nil
}

// NewAddresses creates a fake addresses repository over db.
func NewAddresses(db *DB) repo.Addresses {
	return addressesRepo{db: db}
}

type addressesRepo struct {
	db *DB
}

func (r addressesRepo) Conn(repo.Conn) repo.AddressesConnQueryer {
	return addressesQueryer{db: r.db}
}

func (r addressesRepo) Tx(repo.Tx) repo.AddressesTxQueryer {
	return addressesQueryer{db: r.db}
}

type addressesQueryer struct {
	db *DB
}

func (q addressesQueryer) Insert(
	_ context.Context, a model.Address,
) error {
	q.db.Addresses[a.ID] = a
	return nil
}

func (q addressesQueryer) Update(
	_ context.Context, a model.Address,
) (bool, error) {
	if _, ok := q.db.Addresses[a.ID]; !ok {
		return false, nil
	}
	q.db.Addresses[a.ID] = a
	return true, nil
}

func (q addressesQueryer) Delete(
	_ context.Context, id uuid.UUID,
) (bool, error) {
	if _, ok := q.db.Addresses[id]; !ok {
		return false, nil
	}
	delete(q.db.Addresses, id)
	return true, nil
}

func (q addressesQueryer) ByID(
	_ context.Context, id uuid.UUID,
) (*model.Address, error) {
	if a, ok := q.db.Addresses[id]; ok {
		return &a, nil
	}
	return nil, nil
}

func (q addressesQueryer) List(context.Context) ([]model.Address, error) {
	list := make([]model.Address, 0, len(q.db.Addresses))
	for _, a := range q.db.Addresses {
		list = append(list, a)
	}
	return list, nil
}

func (q addressesQueryer) ListByClient(
	_ context.Context, clientID uuid.UUID,
) ([]model.Address, error) {
	var list []model.Address
	for _, a := range q.db.Addresses {
		if a.ClientID == clientID {
			list = append(list, a)
		}
	}
	return list, nil
}

// NewAppointments creates a fake appointments repository over db.
func NewAppointments(db *DB) repo.Appointments {
	return appointmentsRepo{db: db}
}

type appointmentsRepo struct {
	db *DB
}

func (r appointmentsRepo) Conn(repo.Conn) repo.AppointmentsConnQueryer {
	return appointmentsQueryer{db: r.db}
}

func (r appointmentsRepo) Tx(repo.Tx) repo.AppointmentsTxQueryer {
	return appointmentsQueryer{db: r.db}
}

type appointmentsQueryer struct {
	db *DB
}

func (q appointmentsQueryer) Insert(
	_ context.Context, a model.Appointment,
) error {
	q.db.Appointments[a.ID] = a
	return nil
}

func (q appointmentsQueryer) Update(
	_ context.Context, a model.Appointment,
) (bool, error) {
	if _, ok := q.db.Appointments[a.ID]; !ok {
		return false, nil
	}
	q.db.Appointments[a.ID] = a
	return true, nil
}

func (q appointmentsQueryer) Delete(
	_ context.Context, id uuid.UUID,
) (bool, error) {
	if _, ok := q.db.Appointments[id]; !ok {
		return false, nil
	}
	delete(q.db.Appointments, id)
	return true, nil
}

func (q appointmentsQueryer) ByID(
	_ context.Context, id uuid.UUID,
) (*model.Appointment, error) {
	if a, ok := q.db.Appointments[id]; ok {
		return &a, nil
	}
	return nil, nil
}

func (q appointmentsQueryer) Details(
	_ context.Context, id uuid.UUID,
) (*model.AppointmentDetails, error) {
	a, ok := q.db.Appointments[id]
	if !ok {
		return nil, nil
	}
	tech, ok := q.db.Technicians[a.TechnicianID]
	if !ok {
		return nil, nil
	}
	cli, ok := q.db.Clients[a.ClientID]
	if !ok {
		return nil, nil
	}
	srv, ok := q.db.Services[a.ServiceID]
	if !ok {
		return nil, nil
	}
	addr, ok := q.db.Addresses[a.AddressID]
	if !ok {
		return nil, nil
	}
	return &model.AppointmentDetails{
		ID:          a.ID,
		ScheduledAt: a.ScheduledAt,
		Status:      a.Status,
		Notes:       a.Notes,
		CreatedAt:   a.CreatedAt,
		Technician:  tech,
		Client:      cli,
		Service:     srv,
		Address:     addr,
	}, nil
}

func (q appointmentsQueryer) List(context.Context) (
	[]model.Appointment, error,
) {
	return q.filter(func(model.Appointment) bool { return true }), nil
}

func (q appointmentsQueryer) ListByTechnician(
	_ context.Context, technicianID uuid.UUID,
) ([]model.Appointment, error) {
	return q.filter(func(a model.Appointment) bool {
		return a.TechnicianID == technicianID
	}), nil
}

func (q appointmentsQueryer) ListByClient(
	_ context.Context, clientID uuid.UUID,
) ([]model.Appointment, error) {
	return q.filter(func(a model.Appointment) bool {
		return a.ClientID == clientID
	}), nil
}

func (q appointmentsQueryer) HasActiveAt(
	_ context.Context,
	technicianID uuid.UUID, at time.Time, excludeID uuid.UUID,
) (bool, error) {
	for _, a := range q.db.Appointments {
		if a.TechnicianID == technicianID &&
			a.ScheduledAt.Equal(at) &&
			a.Active() &&
			a.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (q appointmentsQueryer) filter(
	keep func(model.Appointment) bool,
) []model.Appointment {
	var list []model.Appointment
	for _, a := range q.db.Appointments {
		if keep(a) {
			list = append(list, a)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].ScheduledAt.After(list[j].ScheduledAt)
	})
	return list
}
