// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package typeuc contains the service types UseCase which supports
// the catalog management use cases: creating catalog entries and
// listing them in insertion order.
package typeuc

import (
	"context"

	"github.com/lavadero/cwweb/pkg/core/model"
	"github.com/lavadero/cwweb/pkg/core/repo"
)

// UseCase represents a service types use case. It holds a database
// connection pool and the service types repository instance.
type UseCase struct {
	pool    repo.Pool
	typesrp repo.ServiceTypes
}

// New instantiates a service types use case.
func New(p repo.Pool, t repo.ServiceTypes) *UseCase {
	return &UseCase{pool: p, typesrp: t}
}

// Create use case adds a new entry to the service catalog. A Conflict
// classified error is returned when the name is already taken.
func (types *UseCase) Create(ctx context.Context, t model.ServiceType) (created *model.ServiceType, err error) {
	err = types.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := types.typesrp.Conn(c)
		created, err = q.Create(ctx, t)
		return err
	})
	if err != nil {
		created = nil
	}
	return
}

// List use case returns the service catalog in insertion order.
func (types *UseCase) List(ctx context.Context) (ts []model.ServiceType, err error) {
	err = types.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := types.typesrp.Conn(c)
		ts, err = q.List(ctx)
		return err
	})
	if err != nil {
		ts = nil
	}
	return
}
