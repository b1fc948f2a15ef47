// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package employeeuc contains the employees UseCase which supports
// the employee management use cases: creation, listing, the active
// flag update, and the derived workload reporting.
//
// Every employee representation which leaves this package is annotated
// with the derived CurrentWorkload at response-assembly time. The
// workload is recomputed from the current service rows on every call
// and is never cached, since the service rows can change between calls
// and no invalidation mechanism exists.
package employeeuc

import (
	"context"

	"github.com/lavadero/cwweb/pkg/core/model"
	"github.com/lavadero/cwweb/pkg/core/repo"
)

// UseCase represents an employees use case. It holds a database
// connection pool, the employees repository, and the services
// repository which backs the workload derivation.
type UseCase struct {
	pool        repo.Pool
	employeesrp repo.Employees
	servicesrp  repo.Services
}

// New instantiates an employees use case.
func New(p repo.Pool, e repo.Employees, s repo.Services) *UseCase {
	return &UseCase{pool: p, employeesrp: e, servicesrp: s}
}

// Create use case creates a new employee with the active flag set.
// The returned representation carries the derived workload, which is
// always zero for a fresh employee but is computed nonetheless.
func (employees *UseCase) Create(ctx context.Context, e model.Employee) (created *model.Employee, err error) {
	e.Active = true
	err = employees.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		eq := employees.employeesrp.Conn(c)
		sq := employees.servicesrp.Conn(c)
		created, err = eq.Create(ctx, e)
		if err != nil {
			return err
		}
		created.CurrentWorkload, err = sq.CountOpenByEmployee(ctx, created.ID)
		return err
	})
	if err != nil {
		created = nil
	}
	return
}

// List use case returns all employees, each annotated with the
// derived workload.
func (employees *UseCase) List(ctx context.Context) (es []model.Employee, err error) {
	err = employees.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		eq := employees.employeesrp.Conn(c)
		sq := employees.servicesrp.Conn(c)
		es, err = eq.List(ctx)
		if err != nil {
			return err
		}
		for i := range es {
			es[i].CurrentWorkload, err = sq.CountOpenByEmployee(ctx, es[i].ID)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		es = nil
	}
	return
}

// SetActive use case updates the employee's active flag, which is the
// only mutable employee field. A NotFound classified error is returned
// for unknown employees.
func (employees *UseCase) SetActive(ctx context.Context, eid int64, active bool) (e *model.Employee, err error) {
	err = employees.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		eq := employees.employeesrp.Conn(c)
		sq := employees.servicesrp.Conn(c)
		e, err = eq.SetActive(ctx, eid, active)
		if err != nil {
			return err
		}
		e.CurrentWorkload, err = sq.CountOpenByEmployee(ctx, eid)
		return err
	})
	if err != nil {
		e = nil
	}
	return
}

// Workload use case returns the per-status breakdown of the employee's
// service orders, plus the convenience pending+in_progress total.
// A NotFound classified error is returned for unknown employees.
func (employees *UseCase) Workload(ctx context.Context, eid int64) (w *model.Workload, err error) {
	err = employees.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		eq := employees.employeesrp.Conn(c)
		sq := employees.servicesrp.Conn(c)
		e, err := eq.FindByID(ctx, eid)
		if err != nil {
			return err
		}
		w = &model.Workload{EmployeeID: e.ID, EmployeeName: e.Name}
		w.PendingServices, err = sq.CountByStatus(ctx, eid, model.ServiceStatusPending)
		if err != nil {
			return err
		}
		w.InProgressServices, err = sq.CountByStatus(ctx, eid, model.ServiceStatusInProgress)
		if err != nil {
			return err
		}
		w.CompletedServices, err = sq.CountByStatus(ctx, eid, model.ServiceStatusCompleted)
		if err != nil {
			return err
		}
		w.TotalWorkload = w.PendingServices + w.InProgressServices
		return nil
	})
	if err != nil {
		w = nil
	}
	return
}
