// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package vehicleuc contains the vehicles UseCase which supports the
// vehicle registration and lookup use cases.
package vehicleuc

import (
	"context"

	"github.com/lavadero/cwweb/pkg/core/model"
	"github.com/lavadero/cwweb/pkg/core/repo"
)

// UseCase represents a vehicles use case. It holds a database
// connection pool and the vehicles repository instance (to be guided
// with the DB pool).
type UseCase struct {
	pool       repo.Pool
	vehiclesrp repo.Vehicles
}

// New instantiates a vehicles use case.
func New(p repo.Pool, v repo.Vehicles) *UseCase {
	return &UseCase{pool: p, vehiclesrp: v}
}

// Register use case registers a new vehicle. A Conflict classified
// error is returned if the plate number is already registered; the
// existing row is left unchanged in that case.
func (vehicles *UseCase) Register(ctx context.Context, v model.Vehicle) (created *model.Vehicle, err error) {
	err = vehicles.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := vehicles.vehiclesrp.Conn(c)
		created, err = q.Create(ctx, v)
		return err
	})
	if err != nil {
		created = nil
	}
	return
}

// List use case returns all registered vehicles.
func (vehicles *UseCase) List(ctx context.Context) (vs []model.Vehicle, err error) {
	err = vehicles.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := vehicles.vehiclesrp.Conn(c)
		vs, err = q.List(ctx)
		return err
	})
	if err != nil {
		vs = nil
	}
	return
}

// FindByPlate use case looks a vehicle up by its plate number,
// returning a NotFound classified error for unknown plates.
func (vehicles *UseCase) FindByPlate(ctx context.Context, plate string) (v *model.Vehicle, err error) {
	err = vehicles.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := vehicles.vehiclesrp.Conn(c)
		v, err = q.FindByPlate(ctx, plate)
		return err
	})
	if err != nil {
		v = nil
	}
	return
}
