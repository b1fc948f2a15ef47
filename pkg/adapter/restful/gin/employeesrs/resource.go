// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package employeesrs realizes the employees resource, allowing the
// employee management REST APIs to be accepted and delegated to the
// employees use cases respectively.
package employeesrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lavadero/cwweb/pkg/adapter/restful/gin/serdser"
	"github.com/lavadero/cwweb/pkg/core/usecase/employeeuc"
)

type resource struct {
	employees *employeeuc.UseCase
}

// Register instantiates a resource adapting the employees use case
// instance with the relevant REST APIs including:
//  1. POST request to /api/cwweb/v1/employees
//     in order to hire an employee (as an active one).
//  2. GET request to /api/cwweb/v1/employees
//     in order to list all employees with their current workload.
//  3. GET request to /api/cwweb/v1/employees/:eid/workload
//     in order to report one employee's workload breakdown.
//  4. PATCH request to /api/cwweb/v1/employees/:eid/status
//     in order to activate or deactivate an employee.
func Register(r *gin.RouterGroup, employees *employeeuc.UseCase) {
	rs := &resource{employees: employees}
	r.POST("employees", rs.CreateEmployee)
	r.GET("employees", rs.ListEmployees)
	r.GET("employees/:eid/workload", rs.FetchWorkload)
	r.PATCH("employees/:eid/status", rs.UpdateEmployeeStatus)
}

func (rs *resource) CreateEmployee(c *gin.Context) {
	req := rs.DserCreateEmployeeReq(c)
	if req == nil {
		return
	}
	e, err := rs.employees.Create(c, *req)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (rs *resource) ListEmployees(c *gin.Context) {
	es, err := rs.employees.List(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, es)
}

func (rs *resource) FetchWorkload(c *gin.Context) {
	eid, ok := rs.DserEmployeeID(c)
	if !ok {
		return
	}
	w, err := rs.employees.Workload(c, eid)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

func (rs *resource) UpdateEmployeeStatus(c *gin.Context) {
	req := rs.DserUpdateEmployeeStatusReq(c)
	if req == nil {
		return
	}
	e, err := rs.employees.SetActive(c, req.EmployeeID, req.Active)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}
