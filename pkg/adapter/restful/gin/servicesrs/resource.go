// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package servicesrs realizes the service orders resource, allowing
// the washing lifecycle REST APIs to be accepted and delegated to the
// services use cases respectively.
package servicesrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lavadero/cwweb/pkg/adapter/restful/gin/serdser"
	"github.com/lavadero/cwweb/pkg/core/usecase/serviceuc"
)

type resource struct {
	services *serviceuc.UseCase
}

// Register instantiates a resource adapting the services use case
// instance with the relevant REST APIs including:
//  1. POST request to /api/cwweb/v1/services
//     in order to open a service order for a registered vehicle.
//  2. GET request to /api/cwweb/v1/services
//     in order to list all service orders.
//  3. GET request to /api/cwweb/v1/services/pending
//     in order to list the pending service orders only.
//  4. PATCH request to /api/cwweb/v1/services/:sid/status
//     in order to move a service order through its lifecycle.
//  5. POST request to /api/cwweb/v1/services/:sid/supplies
//     in order to record a supply usage and decrement its stock.
func Register(r *gin.RouterGroup, services *serviceuc.UseCase) {
	rs := &resource{services: services}
	r.POST("services", rs.CreateService)
	r.GET("services", rs.ListServices)
	r.GET("services/pending", rs.ListPendingServices)
	r.PATCH("services/:sid/status", rs.UpdateServiceStatus)
	r.POST("services/:sid/supplies", rs.RecordSupplyUsage)
}

func (rs *resource) CreateService(c *gin.Context) {
	req := rs.DserCreateServiceReq(c)
	if req == nil {
		return
	}
	sum, err := rs.services.Create(
		c, req.VehicleID, req.EmployeeID, req.ServiceTypeID, req.Notes,
	)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, sum)
}

func (rs *resource) ListServices(c *gin.Context) {
	sums, err := rs.services.List(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, sums)
}

func (rs *resource) ListPendingServices(c *gin.Context) {
	sums, err := rs.services.ListPending(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, sums)
}

func (rs *resource) UpdateServiceStatus(c *gin.Context) {
	req := rs.DserUpdateServiceStatusReq(c)
	if req == nil {
		return
	}
	sum, err := rs.services.UpdateStatus(c, req.ServiceID, req.Status)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

func (rs *resource) RecordSupplyUsage(c *gin.Context) {
	req := rs.DserRecordSupplyUsageReq(c)
	if req == nil {
		return
	}
	u, err := rs.services.RecordSupplyUsage(
		c, req.ServiceID, req.SupplyID, req.Quantity,
	)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}
