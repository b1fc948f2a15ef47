// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package reportuc contains the reports UseCase which supports the
// read-only reporting use cases: the dashboard snapshot, the daily
// income report, the per-type average service time report, and the
// per-vehicle service history. All reports are aggregations over the
// current table rows, computed fresh on each call.
package reportuc

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/lavadero/cwweb/pkg/core/cerr"
	"github.com/lavadero/cwweb/pkg/core/model"
	"github.com/lavadero/cwweb/pkg/core/repo"
)

// UnknownEmployeeName is reported in the vehicle history rows whose
// owning employee row does not resolve anymore.
const UnknownEmployeeName = "Unknown"

// DateLayout is the accepted calendar date format of the daily income
// report.
const DateLayout = "2006-01-02"

// UseCase represents a reports use case. It holds a database
// connection pool and the repositories which the reporting
// aggregations read from.
type UseCase struct {
	pool        repo.Pool
	reportsrp   repo.Reports
	servicesrp  repo.Services
	vehiclesrp  repo.Vehicles
	employeesrp repo.Employees
	typesrp     repo.ServiceTypes
}

// New instantiates a reports use case.
func New(
	p repo.Pool,
	r repo.Reports,
	s repo.Services,
	v repo.Vehicles,
	e repo.Employees,
	t repo.ServiceTypes,
) *UseCase {
	return &UseCase{
		pool:        p,
		reportsrp:   r,
		servicesrp:  s,
		vehiclesrp:  v,
		employeesrp: e,
		typesrp:     t,
	}
}

// Dashboard use case computes the dashboard snapshot: the open
// (pending or in-progress) order count, the revenue of orders
// completed within the current calendar day, the active employee
// count, and the total vehicle count. The four aggregations are
// independent and computed fresh on each call.
func (reports *UseCase) Dashboard(ctx context.Context) (st *model.DashboardStats, err error) {
	from, to := dayWindow(time.Now())
	err = reports.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		rq := reports.reportsrp.Conn(c)
		eq := reports.employeesrp.Conn(c)
		vq := reports.vehiclesrp.Conn(c)
		st = &model.DashboardStats{}
		var err error
		st.PendingServices, err = rq.CountOpen(ctx)
		if err != nil {
			return err
		}
		st.DailyRevenue, _, err = rq.SumIncome(ctx, from, to)
		if err != nil {
			return err
		}
		st.ActiveEmployees, err = eq.CountActive(ctx)
		if err != nil {
			return err
		}
		st.TotalVehicles, err = vq.Count(ctx)
		return err
	})
	if err != nil {
		st = nil
	}
	return
}

// DailyIncome use case computes the summed income and the count of
// the service orders which were completed within the full local-day
// window of the given calendar date. A BadRequest classified error is
// returned for strings which do not parse as a calendar date. A date
// with no completed orders reports zeros, never an error.
func (reports *UseCase) DailyIncome(ctx context.Context, date string) (di *model.DailyIncome, err error) {
	day, err := time.ParseInLocation(DateLayout, date, time.Local)
	if err != nil {
		return nil, cerr.BadRequest(
			fmt.Errorf("invalid date format, use YYYY-MM-DD: %w", err),
		)
	}
	from, to := dayWindow(day)
	err = reports.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		rq := reports.reportsrp.Conn(c)
		di = &model.DailyIncome{Date: date}
		var err error
		di.TotalIncome, di.ServicesCount, err = rq.SumIncome(ctx, from, to)
		return err
	})
	if err != nil {
		di = nil
	}
	return
}

// AverageServiceTime use case reports the average duration, in
// minutes, of the completed orders of every service type, matched by
// the denormalized type name. A type with no completed, timestamped
// order reports its configured base duration as the estimate instead.
// One record is produced per catalog entry, in catalog listing order.
func (reports *UseCase) AverageServiceTime(ctx context.Context) (ds []model.TypeDuration, err error) {
	err = reports.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		rq := reports.reportsrp.Conn(c)
		tq := reports.typesrp.Conn(c)
		ts, err := tq.List(ctx)
		if err != nil {
			return err
		}
		ds = make([]model.TypeDuration, 0, len(ts))
		for _, t := range ts {
			avg, n, err := rq.AverageMinutes(ctx, t.Name)
			if err != nil {
				return err
			}
			if n == 0 {
				avg = float64(t.BaseDuration)
			}
			ds = append(ds, model.TypeDuration{
				ServiceType: t.Name,
				AverageTime: avg,
			})
		}
		return nil
	})
	if err != nil {
		ds = nil
	}
	return
}

// VehicleHistory use case returns every service order of the vehicle
// with the given plate number, most recent first, each annotated with
// the owning employee's name. A NotFound classified error is returned
// for unknown plates. History rows whose employee reference does not
// resolve anymore fall back to the UnknownEmployeeName placeholder
// instead of failing.
func (reports *UseCase) VehicleHistory(ctx context.Context, plate string) (hs []model.HistoryItem, err error) {
	err = reports.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		vq := reports.vehiclesrp.Conn(c)
		sq := reports.servicesrp.Conn(c)
		eq := reports.employeesrp.Conn(c)
		v, err := vq.FindByPlate(ctx, plate)
		if err != nil {
			return err
		}
		ss, err := sq.ListByVehicle(ctx, v.ID)
		if err != nil {
			return err
		}
		hs = make([]model.HistoryItem, 0, len(ss))
		for _, s := range ss {
			name := UnknownEmployeeName
			switch e, err := eq.FindByID(ctx, s.EmployeeID); {
			case err == nil:
				name = e.Name
			case !isNotFound(err):
				return fmt.Errorf("resolving employee: %w", err)
			}
			hs = append(hs, model.HistoryItem{
				ServiceDate:  s.StartTime,
				ServiceType:  s.ServiceType,
				TotalCost:    s.TotalCost,
				EmployeeName: name,
				Status:       s.Status,
			})
		}
		return nil
	})
	if err != nil {
		hs = nil
	}
	return
}

func isNotFound(err error) bool {
	var ce *cerr.Error
	return errors.As(err, &ce) &&
		ce.HTTPStatusCode == http.StatusNotFound
}

// dayWindow computes the inclusive start and end instants of the
// local calendar day containing t, from midnight through the last
// nanosecond before the next midnight.
func dayWindow(t time.Time) (from, to time.Time) {
	y, m, d := t.Date()
	from = time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	to = from.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return
}
