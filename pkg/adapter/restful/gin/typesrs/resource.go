// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package typesrs realizes the service types resource, allowing the
// washing services catalog REST APIs to be accepted and delegated to
// the service types use cases respectively.
package typesrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/lavadero/cwweb/pkg/adapter/restful/gin/serdser"
	"github.com/lavadero/cwweb/pkg/core/model"
	"github.com/lavadero/cwweb/pkg/core/usecase/typeuc"
)

type resource struct {
	types *typeuc.UseCase
}

// Register instantiates a resource adapting the service types use
// case instance with the relevant REST APIs including:
//  1. POST request to /api/cwweb/v1/service-types
//     in order to add a washing service to the catalog.
//  2. GET request to /api/cwweb/v1/service-types
//     in order to list the catalog in its insertion order.
func Register(r *gin.RouterGroup, types *typeuc.UseCase) {
	rs := &resource{types: types}
	r.POST("service-types", rs.CreateServiceType)
	r.GET("service-types", rs.ListServiceTypes)
}

type rawServiceTypeCreateReq struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description" binding:"omitempty"`
	BaseDuration int    `json:"base_duration" binding:"required,gt=0"`
}

func (rs *resource) CreateServiceType(c *gin.Context) {
	req := &rawServiceTypeCreateReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return
	}
	t, err := rs.types.Create(c, model.ServiceType{
		Name:         req.Name,
		Description:  req.Description,
		BaseDuration: req.BaseDuration,
	})
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (rs *resource) ListServiceTypes(c *gin.Context) {
	ts, err := rs.types.List(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, ts)
}
