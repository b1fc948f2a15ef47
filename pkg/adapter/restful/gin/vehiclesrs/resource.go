// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package vehiclesrs realizes the vehicles resource, allowing the
// vehicle registration and querying REST APIs to be accepted and
// delegated to the vehicles use cases respectively.
package vehiclesrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lavadero/cwweb/pkg/adapter/restful/gin/serdser"
	"github.com/lavadero/cwweb/pkg/core/usecase/vehicleuc"
)

type resource struct {
	vehicles *vehicleuc.UseCase
}

// Register instantiates a resource adapting the vehicles use case
// instance with the relevant REST APIs including:
//  1. POST request to /api/cwweb/v1/vehicles
//     in order to register a vehicle upon its first visit.
//  2. GET request to /api/cwweb/v1/vehicles
//     in order to list all registered vehicles.
//  3. GET request to /api/cwweb/v1/vehicles/:plate
//     in order to fetch one vehicle by its plate number.
func Register(r *gin.RouterGroup, vehicles *vehicleuc.UseCase) {
	rs := &resource{vehicles: vehicles}
	r.POST("vehicles", rs.RegisterVehicle)
	r.GET("vehicles", rs.ListVehicles)
	r.GET("vehicles/:plate", rs.FetchVehicle)
}

func (rs *resource) RegisterVehicle(c *gin.Context) {
	req := rs.DserRegisterVehicleReq(c)
	if req == nil {
		return
	}
	v, err := rs.vehicles.Register(c, *req)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

func (rs *resource) ListVehicles(c *gin.Context) {
	vs, err := rs.vehicles.List(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, vs)
}

func (rs *resource) FetchVehicle(c *gin.Context) {
	v, err := rs.vehicles.FindByPlate(c, c.Param("plate"))
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}
