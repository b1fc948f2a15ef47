// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package serviceuc contains the services UseCase which supports the
// service order lifecycle use cases: order creation, status updates,
// the nested listings, and the supply usage recording.
package serviceuc

import (
	"context"
	"fmt"
	"time"

	"github.com/lavadero/cwweb/pkg/core/cerr"
	"github.com/lavadero/cwweb/pkg/core/model"
	"github.com/lavadero/cwweb/pkg/core/repo"
)

// UseCase represents a services use case. It holds a database
// connection pool, the repositories of the services table and of the
// tables which service orders reference, and the services use case
// specific settings.
type UseCase struct {
	pool        repo.Pool
	servicesrp  repo.Services
	vehiclesrp  repo.Vehicles
	employeesrp repo.Employees
	typesrp     repo.ServiceTypes
	suppliesrp  repo.Supplies

	defaultCost float64
}

// New instantiates a services use case.
// Required parameters are passed individually, so caller has to
// provision them and whenever they change, caller will notice and fix
// them due to a compilation error.
// Optional parameters are passed as a series of functional options
// in order to facilitate their validation and flexibility.
func New(
	p repo.Pool,
	s repo.Services,
	v repo.Vehicles,
	e repo.Employees,
	t repo.ServiceTypes,
	su repo.Supplies,
	opts ...Option,
) (*UseCase, error) {
	uc := &UseCase{
		pool:        p,
		servicesrp:  s,
		vehiclesrp:  v,
		employeesrp: e,
		typesrp:     t,
		suppliesrp:  su,
	}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	// now, deal with defaults
	if uc.defaultCost == 0 {
		uc.defaultCost = 20
	}
	return uc, nil
}

// Create use case creates a new service order for the given vehicle,
// employee, and service type references, with optional free-text
// notes. All three references must resolve to existing rows; a
// NotFound classified error naming the missing entity is returned
// otherwise. The created order starts in pending status with the
// start time stamped to the current time, a denormalized copy of the
// service type name, and the configured default total cost (real
// pricing is not derived from the service type yet).
func (services *UseCase) Create(
	ctx context.Context,
	vehicleID, employeeID, serviceTypeID int64,
	notes string,
) (sum *model.ServiceSummary, err error) {
	err = services.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		vq := services.vehiclesrp.Conn(c)
		eq := services.employeesrp.Conn(c)
		tq := services.typesrp.Conn(c)
		sq := services.servicesrp.Conn(c)
		v, err := vq.FindByID(ctx, vehicleID)
		if err != nil {
			return fmt.Errorf("resolving vehicle: %w", err)
		}
		e, err := eq.FindByID(ctx, employeeID)
		if err != nil {
			return fmt.Errorf("resolving employee: %w", err)
		}
		t, err := tq.FindByID(ctx, serviceTypeID)
		if err != nil {
			return fmt.Errorf("resolving service type: %w", err)
		}
		s, err := sq.Create(ctx, model.Service{
			VehicleID:     v.ID,
			EmployeeID:    e.ID,
			ServiceTypeID: t.ID,
			ServiceType:   t.Name,
			Status:        model.ServiceStatusPending,
			StartTime:     time.Now(),
			TotalCost:     services.defaultCost,
			Notes:         notes,
		})
		if err != nil {
			return err
		}
		sum = summarize(s, v, e)
		return nil
	})
	if err != nil {
		sum = nil
	}
	return
}

// UpdateStatus use case overwrites the status of the sid service
// order. A BadRequest classified error is returned for status values
// outside the accepted enumeration and a NotFound classified error
// for unknown orders. If and only if the target status is completed,
// the end time is stamped to the current time; repeating the
// completed update re-stamps it. No transition graph is enforced:
// any status may follow any other.
func (services *UseCase) UpdateStatus(
	ctx context.Context, sid int64, status model.ServiceStatus,
) (sum *model.ServiceSummary, err error) {
	if err := status.Validate(); err != nil {
		return nil, cerr.BadRequest(err)
	}
	var endTime *time.Time
	if status == model.ServiceStatusCompleted {
		now := time.Now()
		endTime = &now
	}
	err = services.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		sq := services.servicesrp.Conn(c)
		s, err := sq.UpdateStatus(ctx, sid, status, endTime)
		if err != nil {
			return err
		}
		sum, err = services.lookupSummary(ctx, c, s)
		return err
	})
	if err != nil {
		sum = nil
	}
	return
}

// List use case returns all service orders in the nested summary
// shape, resolving the vehicle and employee of each row with per-row
// lookups (acceptable at this data scale).
func (services *UseCase) List(ctx context.Context) ([]model.ServiceSummary, error) {
	return services.list(ctx, func(ctx context.Context, sq repo.ServicesQueryer) ([]model.Service, error) {
		return sq.List(ctx)
	})
}

// ListPending use case returns the pending service orders only, in
// the same nested summary shape as List.
func (services *UseCase) ListPending(ctx context.Context) ([]model.ServiceSummary, error) {
	return services.list(ctx, func(ctx context.Context, sq repo.ServicesQueryer) ([]model.Service, error) {
		return sq.ListByStatus(ctx, model.ServiceStatusPending)
	})
}

func (services *UseCase) list(
	ctx context.Context,
	f func(context.Context, repo.ServicesQueryer) ([]model.Service, error),
) (sums []model.ServiceSummary, err error) {
	err = services.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		sq := services.servicesrp.Conn(c)
		ss, err := f(ctx, sq)
		if err != nil {
			return err
		}
		sums = make([]model.ServiceSummary, 0, len(ss))
		for i := range ss {
			sum, err := services.lookupSummary(ctx, c, &ss[i])
			if err != nil {
				return err
			}
			sums = append(sums, *sum)
		}
		return nil
	})
	if err != nil {
		sums = nil
	}
	return
}

// RecordSupplyUsage use case records the consumption of a supply by
// the sid service order. The used-supplies row insertion and the
// supply stock decrement are performed in one transaction. A NotFound
// classified error is returned when the order or the supply does not
// exist and a BadRequest classified error for non-positive quantities.
func (services *UseCase) RecordSupplyUsage(
	ctx context.Context, sid, supplyID int64, quantity float64,
) (u *model.UsedSupply, err error) {
	if quantity <= 0 {
		return nil, cerr.BadRequest(
			fmt.Errorf("quantity (%v) is not positive", quantity),
		)
	}
	err = services.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			sq := services.servicesrp.Tx(tx)
			uq := services.suppliesrp.Tx(tx)
			if _, err := sq.FindByID(ctx, sid); err != nil {
				return fmt.Errorf("resolving service: %w", err)
			}
			if _, err := uq.FindByID(ctx, supplyID); err != nil {
				return fmt.Errorf("resolving supply: %w", err)
			}
			var err error
			u, err = uq.RecordUsage(ctx, model.UsedSupply{
				ServiceID: sid,
				SupplyID:  supplyID,
				Quantity:  quantity,
			})
			return err
		})
	})
	if err != nil {
		u = nil
	}
	return
}

func (services *UseCase) lookupSummary(
	ctx context.Context, c repo.Conn, s *model.Service,
) (*model.ServiceSummary, error) {
	vq := services.vehiclesrp.Conn(c)
	eq := services.employeesrp.Conn(c)
	v, err := vq.FindByID(ctx, s.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("resolving vehicle: %w", err)
	}
	e, err := eq.FindByID(ctx, s.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("resolving employee: %w", err)
	}
	return summarize(s, v, e), nil
}

func summarize(
	s *model.Service, v *model.Vehicle, e *model.Employee,
) *model.ServiceSummary {
	return &model.ServiceSummary{
		ID: s.ID,
		Vehicle: model.VehicleSummary{
			PlateNumber: v.PlateNumber,
			ClientName:  v.ClientName,
		},
		Employee:    model.EmployeeSummary{Name: e.Name},
		ServiceType: s.ServiceType,
		Status:      s.Status,
		StartTime:   s.StartTime,
		EndTime:     s.EndTime,
	}
}
