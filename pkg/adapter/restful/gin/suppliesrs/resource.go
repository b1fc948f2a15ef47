// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package suppliesrs realizes the inventory resource, allowing the
// supplies management REST APIs to be accepted and delegated to the
// supplies use cases respectively.
package suppliesrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/lavadero/cwweb/pkg/adapter/restful/gin/serdser"
	"github.com/lavadero/cwweb/pkg/core/model"
	"github.com/lavadero/cwweb/pkg/core/usecase/supplyuc"
)

type resource struct {
	supplies *supplyuc.UseCase
}

// Register instantiates a resource adapting the supplies use case
// instance with the relevant REST APIs including:
//  1. POST request to /api/cwweb/v1/inventory
//     in order to add a supply item to the inventory.
//  2. GET request to /api/cwweb/v1/inventory
//     in order to list all supplies with their low stock marks.
func Register(r *gin.RouterGroup, supplies *supplyuc.UseCase) {
	rs := &resource{supplies: supplies}
	r.POST("inventory", rs.CreateSupply)
	r.GET("inventory", rs.ListSupplies)
}

type rawSupplyCreateReq struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description" binding:"omitempty"`
	CurrentStock float64 `json:"current_stock" binding:"omitempty,gte=0"`
	MinimumStock float64 `json:"minimum_stock" binding:"omitempty,gte=0"`
	Unit         string  `json:"unit" binding:"required"`
}

func (rs *resource) CreateSupply(c *gin.Context) {
	req := &rawSupplyCreateReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return
	}
	s, err := rs.supplies.Create(c, model.Supply{
		Name:         req.Name,
		Description:  req.Description,
		CurrentStock: req.CurrentStock,
		MinimumStock: req.MinimumStock,
		Unit:         req.Unit,
	})
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

func (rs *resource) ListSupplies(c *gin.Context) {
	ss, err := rs.supplies.List(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, ss)
}
