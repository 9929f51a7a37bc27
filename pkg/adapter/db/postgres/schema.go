// Copyright (c) 2025 ClimaTec Sistemas
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package postgres

import (
	"context"
	"fmt"

	"github.com/climatec/dispatch/pkg/core/repo"
)

// schemaDDL creates the five entity tables. Entity references between
// tables are deliberately not declared as foreign keys: referential
// checks happen in the use cases layer before any write, and deletes
// must stay non-cascading (an orphaned appointment is the caller's
// clean up responsibility, not a delete failure).
//
// The partial unique index over active appointments is the
// authoritative guard of the double-booking invariant: the
// check-and-insert transaction of the booking use case may race with
// a concurrent booking under READ COMMITTED, and the duplicate insert
// then fails here instead of slipping through.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS clients (
    id uuid PRIMARY KEY,
    name text NOT NULL,
    phone text NOT NULL UNIQUE,
    registered_at timestamptz NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS technicians (
    id uuid PRIMARY KEY,
    name text NOT NULL,
    phone text NOT NULL,
    email text NOT NULL UNIQUE,
    password_hash text NOT NULL,
    registered_at timestamptz NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS services (
    id uuid PRIMARY KEY,
    technician_id uuid NOT NULL,
    name text NOT NULL,
    description text NOT NULL DEFAULT '',
    price numeric(10,2) NOT NULL CHECK (price >= 0),
    estimated_minutes integer NOT NULL CHECK (estimated_minutes > 0),
    registered_at timestamptz NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS addresses (
    id uuid PRIMARY KEY,
    client_id uuid NOT NULL,
    street text NOT NULL,
    number text NOT NULL,
    neighborhood text NOT NULL,
    city text NOT NULL,
    state character(2) NOT NULL,
    postal_code text NOT NULL,
    complement text NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS appointments (
    id uuid PRIMARY KEY,
    address_id uuid NOT NULL,
    technician_id uuid NOT NULL,
    service_id uuid NOT NULL,
    client_id uuid NOT NULL,
    scheduled_at timestamptz NOT NULL,
    status text NOT NULL DEFAULT 'scheduled',
    notes text NOT NULL DEFAULT '',
    created_at timestamptz NOT NULL DEFAULT now()
);
CREATE UNIQUE INDEX IF NOT EXISTS appointments_active_slot
    ON appointments (technician_id, scheduled_at)
    WHERE status NOT IN ('cancelled', 'completed');
CREATE INDEX IF NOT EXISTS appointments_client
    ON appointments (client_id, scheduled_at DESC);
`

// InitSchema creates the dispatch tables and indices within the given
// transaction. It is idempotent, so the db init command may be re-run
// against an existing database.
func InitSchema(ctx context.Context, tx repo.Tx) error {
	if _, err := tx.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("creating dispatch schema: %w", err)
	}
	return nil
}

// devSeedDML inserts one technician, client, address, and service row
// with fixed ids, so a development environment has data to book
// appointments against right after db init --dev. The technician
// password is the literal "password" string. Re-runs are no-ops.
const devSeedDML = `
INSERT INTO technicians (id, name, phone, email, password_hash)
    VALUES (
        '6f1f2a4e-0000-4000-8000-000000000001',
        'Dev Technician', '5511999990001', 'tech@example.com',
        '$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy'
    ) ON CONFLICT (id) DO NOTHING;
INSERT INTO clients (id, name, phone)
    VALUES (
        '6f1f2a4e-0000-4000-8000-000000000002',
        'Dev Client', '5511999990002'
    ) ON CONFLICT (id) DO NOTHING;
INSERT INTO addresses
    (id, client_id, street, number, neighborhood, city, state, postal_code)
    VALUES (
        '6f1f2a4e-0000-4000-8000-000000000003',
        '6f1f2a4e-0000-4000-8000-000000000002',
        'Rua das Laranjeiras', '100', 'Centro', 'Sao Paulo', 'SP',
        '01000-000'
    ) ON CONFLICT (id) DO NOTHING;
INSERT INTO services
    (id, technician_id, name, description, price, estimated_minutes)
    VALUES (
        '6f1f2a4e-0000-4000-8000-000000000004',
        '6f1f2a4e-0000-4000-8000-000000000001',
        'AC maintenance', 'Split unit cleaning and gas check',
        250.00, 90
    ) ON CONFLICT (id) DO NOTHING;
`

// SeedDev fills the dispatch tables with development suitable sample
// rows within the given transaction.
func SeedDev(ctx context.Context, tx repo.Tx) error {
	if _, err := tx.Exec(ctx, devSeedDML); err != nil {
		return fmt.Errorf("seeding development data: %w", err)
	}
	return nil
}
