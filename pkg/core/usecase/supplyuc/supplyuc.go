// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package supplyuc contains the supplies UseCase which supports the
// inventory use cases: registering consumable supplies and listing
// the current stock levels. Consumption recording lives in the
// services use case since it is tied to a service order.
package supplyuc

import (
	"context"

	"github.com/lavadero/cwweb/pkg/core/model"
	"github.com/lavadero/cwweb/pkg/core/repo"
)

// UseCase represents a supplies use case. It holds a database
// connection pool and the supplies repository instance.
type UseCase struct {
	pool       repo.Pool
	suppliesrp repo.Supplies
}

// New instantiates a supplies use case.
func New(p repo.Pool, s repo.Supplies) *UseCase {
	return &UseCase{pool: p, suppliesrp: s}
}

// Create use case registers a new supply item. A Conflict classified
// error is returned when the supply name is already taken.
func (supplies *UseCase) Create(ctx context.Context, s model.Supply) (created *model.Supply, err error) {
	err = supplies.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := supplies.suppliesrp.Conn(c)
		created, err = q.Create(ctx, s)
		return err
	})
	if err != nil {
		created = nil
	}
	if created != nil {
		created.Low = created.CurrentStock <= created.MinimumStock
	}
	return
}

// List use case returns all supply items, each annotated with the
// derived low-stock flag.
func (supplies *UseCase) List(ctx context.Context) (ss []model.Supply, err error) {
	err = supplies.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := supplies.suppliesrp.Conn(c)
		ss, err = q.List(ctx)
		return err
	})
	if err != nil {
		ss = nil
		return
	}
	for i := range ss {
		ss[i].Low = ss[i].CurrentStock <= ss[i].MinimumStock
	}
	return
}
