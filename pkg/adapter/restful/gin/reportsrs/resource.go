// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package reportsrs realizes the reports resource, allowing the
// read-only reporting REST APIs to be accepted and delegated to the
// reports use cases respectively.
package reportsrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lavadero/cwweb/pkg/adapter/restful/gin/serdser"
	"github.com/lavadero/cwweb/pkg/core/usecase/reportuc"
)

type resource struct {
	reports *reportuc.UseCase
}

// Register instantiates a resource adapting the reports use case
// instance with the relevant REST APIs including:
//  1. GET request to /api/cwweb/v1/reports/dashboard-stats
//     in order to fetch the main dashboard counters.
//  2. GET request to /api/cwweb/v1/reports/daily-income?date=...
//     in order to fetch one day's completed services income.
//  3. GET request to /api/cwweb/v1/reports/average-service-time
//     in order to fetch the average durations per catalog entry.
//  4. GET request to /api/cwweb/v1/reports/vehicle-history/:plate
//     in order to fetch one vehicle's service history.
func Register(r *gin.RouterGroup, reports *reportuc.UseCase) {
	rs := &resource{reports: reports}
	r.GET("reports/dashboard-stats", rs.FetchDashboardStats)
	r.GET("reports/daily-income", rs.FetchDailyIncome)
	r.GET("reports/average-service-time", rs.FetchAverageServiceTime)
	r.GET("reports/vehicle-history/:plate", rs.FetchVehicleHistory)
}

func (rs *resource) FetchDashboardStats(c *gin.Context) {
	st, err := rs.reports.Dashboard(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (rs *resource) FetchDailyIncome(c *gin.Context) {
	date, ok := c.GetQuery("date")
	if !ok {
		var errs map[string][]string
		serdser.AddErr(
			&errs, "date", "Query param date is required.",
		)
		c.JSON(http.StatusBadRequest, errs)
		return
	}
	di, err := rs.reports.DailyIncome(c, date)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, di)
}

func (rs *resource) FetchAverageServiceTime(c *gin.Context) {
	ds, err := rs.reports.AverageServiceTime(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, ds)
}

func (rs *resource) FetchVehicleHistory(c *gin.Context) {
	hs, err := rs.reports.VehicleHistory(c, c.Param("plate"))
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, hs)
}
