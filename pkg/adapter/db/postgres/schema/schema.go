// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package schema provides the Settler type for initialization of the
// car-wash database schema. It can create the relevant tables and
// fill them with development or production suitable initial data.
// Role management helpers are provided too, so the normal serving
// role can be created and granted its required privileges during the
// database initialization commands (see the roles.go file).
//
// Each Settler instance wraps and uses a single transaction of the
// target database, but the caller is responsible to commit that
// transaction in order to finalize the initialization results.
package schema

import (
	"context"
	"fmt"

	"github.com/lavadero/cwweb/pkg/core/repo"
)

// Settler struct provides the database schema initialization logic.
// Check the InitDev and InitProd methods.
type Settler struct {
	tx repo.Tx // target database transaction
}

// New creates a new Settler instance, wrapping the given `tx` database
// transaction. The settler object expects the database schema to exist
// and only tries to create relevant tables in that schema.
func New(tx repo.Tx) *Settler {
	return &Settler{
		tx: tx,
	}
}

// ddl contains the table creation statements in their dependencies
// order, so each statement may only refer to previously created
// tables. All statements are idempotent.
var ddl = []string{
	`CREATE TABLE IF NOT EXISTS vehicles (
	id BIGSERIAL PRIMARY KEY,
	plate_number TEXT NOT NULL UNIQUE,
	vehicle_type TEXT NOT NULL,
	client_name TEXT NOT NULL DEFAULT '',
	client_phone TEXT NOT NULL DEFAULT ''
)`,
	`CREATE TABLE IF NOT EXISTS employees (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	position TEXT NOT NULL DEFAULT '',
	shift TEXT NOT NULL DEFAULT '',
	active BOOLEAN NOT NULL DEFAULT TRUE
)`,
	`CREATE TABLE IF NOT EXISTS service_types (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	description TEXT NOT NULL DEFAULT '',
	base_duration BIGINT NOT NULL DEFAULT 0,
	created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
)`,
	`CREATE TABLE IF NOT EXISTS services (
	id BIGSERIAL PRIMARY KEY,
	vehicle_id BIGINT NOT NULL REFERENCES vehicles (id),
	employee_id BIGINT NOT NULL REFERENCES employees (id),
	service_type_id BIGINT NOT NULL REFERENCES service_types (id),
	service_type TEXT NOT NULL,
	status TEXT NOT NULL DEFAULT 'pending',
	start_time TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
	end_time TIMESTAMP WITH TIME ZONE,
	total_cost DOUBLE PRECISION NOT NULL DEFAULT 0,
	notes TEXT NOT NULL DEFAULT ''
)`,
	`CREATE INDEX IF NOT EXISTS services_status_idx
	ON services (status)`,
	`CREATE TABLE IF NOT EXISTS supplies (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	description TEXT NOT NULL DEFAULT '',
	current_stock DOUBLE PRECISION NOT NULL DEFAULT 0,
	minimum_stock DOUBLE PRECISION NOT NULL DEFAULT 0,
	unit TEXT NOT NULL DEFAULT ''
)`,
	`CREATE TABLE IF NOT EXISTS used_supplies (
	id BIGSERIAL PRIMARY KEY,
	service_id BIGINT NOT NULL REFERENCES services (id),
	supply_id BIGINT NOT NULL REFERENCES supplies (id),
	quantity DOUBLE PRECISION NOT NULL
)`,
}

// serviceTypeCatalog seeds the catalog which production and
// development environments both start with. The average service time
// report iterates over this catalog, reporting the base duration for
// types without completed services yet.
var serviceTypeCatalog = [][3]any{
	{"Basic Wash", "Exterior hand wash and dry", 30},
	{"Full Wash", "Exterior wash plus interior vacuum", 45},
	{"Waxing", "Hand wax and polish", 60},
	{"Interior Detailing", "Deep interior cleaning", 90},
	{"Premium Detail", "Complete interior and exterior detail", 120},
}

// CreateTables creates all tables, indices, and constraints of the
// car-wash schema if they do not exist already. It makes no attempt
// to alter pre-existing tables.
func (s *Settler) CreateTables(ctx context.Context) error {
	for _, stmt := range ddl {
		if _, err := s.tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("executing DDL statement: %w", err)
		}
	}
	return nil
}

// InitProd creates the car-wash tables and fills them with the
// production suitable initial data, namely the service types catalog.
// Vehicles, employees, and supplies are expected to be registered
// through the REST API in a production deployment.
func (s *Settler) InitProd(ctx context.Context) error {
	if err := s.CreateTables(ctx); err != nil {
		return err
	}
	return s.seedCatalog(ctx)
}

// InitDev creates the car-wash tables and fills them with the
// development suitable sample data, covering all entities, so the
// server can respond to the listing and reporting endpoints
// meaningfully right after its first run.
func (s *Settler) InitDev(ctx context.Context) error {
	if err := s.InitProd(ctx); err != nil {
		return err
	}
	for _, stmt := range []string{
		`INSERT INTO employees (name, position, shift) VALUES
	('Carlos Mendez', 'washer', 'morning'),
	('Lucia Ramos', 'detailer', 'afternoon'),
	('Jorge Fuentes', 'supervisor', 'morning')`,
		`INSERT INTO vehicles
	(plate_number, vehicle_type, client_name, client_phone) VALUES
	('ABC-1234', 'car', 'Maria Lopez', '555-0101'),
	('XYZ-5678', 'suv', 'Pedro Alvarez', '555-0102'),
	('TRK-9012', 'truck', 'Rosa Diaz', '555-0103')`,
		`INSERT INTO supplies
	(name, current_stock, minimum_stock, unit) VALUES
	('Car Shampoo', 40, 10, 'liters'),
	('Wax', 12, 5, 'cans'),
	('Microfiber Towels', 100, 30, 'units'),
	('Tire Shine', 8, 10, 'bottles')`,
		`INSERT INTO services
	(vehicle_id, employee_id, service_type_id, service_type,
	status, start_time, end_time, total_cost) VALUES
	(1, 1, 1, 'Basic Wash', 'completed',
	now() - INTERVAL '2 hours', now() - INTERVAL '90 minutes', 20),
	(2, 2, 2, 'Full Wash', 'in_progress',
	now() - INTERVAL '20 minutes', NULL, 20),
	(3, 1, 3, 'Waxing', 'pending', now(), NULL, 20)`,
	} {
		if _, err := s.tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("inserting sample data: %w", err)
		}
	}
	return nil
}

func (s *Settler) seedCatalog(ctx context.Context) error {
	for _, t := range serviceTypeCatalog {
		_, err := s.tx.Exec(ctx, `
	INSERT INTO service_types (name, description, base_duration)
	VALUES ($1, $2, $3)
	ON CONFLICT (name) DO NOTHING`,
			t[0], t[1], t[2],
		)
		if err != nil {
			return fmt.Errorf("seeding service type %q: %w", t[0], err)
		}
	}
	return nil
}
