// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package routes contains all resource packages and facilitates
// instantiation and registration of all repo, use case, and resource
// packages based on the user provided configuration settings.
package routes

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/lavadero/cwweb/pkg/adapter/config"
	"github.com/lavadero/cwweb/pkg/adapter/db/postgres/employeesrp"
	"github.com/lavadero/cwweb/pkg/adapter/db/postgres/reportsrp"
	"github.com/lavadero/cwweb/pkg/adapter/db/postgres/servicesrp"
	"github.com/lavadero/cwweb/pkg/adapter/db/postgres/suppliesrp"
	"github.com/lavadero/cwweb/pkg/adapter/db/postgres/typesrp"
	"github.com/lavadero/cwweb/pkg/adapter/db/postgres/vehiclesrp"
	"github.com/lavadero/cwweb/pkg/adapter/restful/gin/employeesrs"
	"github.com/lavadero/cwweb/pkg/adapter/restful/gin/reportsrs"
	"github.com/lavadero/cwweb/pkg/adapter/restful/gin/reqid"
	"github.com/lavadero/cwweb/pkg/adapter/restful/gin/servicesrs"
	"github.com/lavadero/cwweb/pkg/adapter/restful/gin/suppliesrs"
	"github.com/lavadero/cwweb/pkg/adapter/restful/gin/typesrs"
	"github.com/lavadero/cwweb/pkg/adapter/restful/gin/vehiclesrs"
	"github.com/lavadero/cwweb/pkg/core/repo"
	"github.com/lavadero/cwweb/pkg/core/usecase/employeeuc"
	"github.com/lavadero/cwweb/pkg/core/usecase/reportuc"
	"github.com/lavadero/cwweb/pkg/core/usecase/supplyuc"
	"github.com/lavadero/cwweb/pkg/core/usecase/typeuc"
	"github.com/lavadero/cwweb/pkg/core/usecase/vehicleuc"
)

// Register instantiates relevant repositories and use cases based on
// the uc configuration settings. The p connections pool is passed to
// the use case instances, so they may acquire/release connections
// and transactions on demand. These connections/transactions will be
// passed to the repositories later in order to run relevant queries on
// them and accomplish those use cases. Each use case package is named
// like serviceuc and each repository package is named like servicesrp.
// Register instantiates a series of "resource" structs, from packages
// which are named like servicesrs, in order to adapt the use cases
// interfaces with the REST APIs. These resources are registered as
// request handlers using the e gin-gonic engine instance.
// Possible errors will be returned after possible wrapping.
func Register(
	e *gin.Engine, p repo.Pool, uc config.Usecases,
) error {
	vehiclesRepo := vehiclesrp.New()
	employeesRepo := employeesrp.New()
	typesRepo := typesrp.New()
	servicesRepo := servicesrp.New()
	suppliesRepo := suppliesrp.New()
	reportsRepo := reportsrp.New()

	serviceUseCase, err := uc.Services.NewUseCase(
		p, servicesRepo, vehiclesRepo, employeesRepo,
		typesRepo, suppliesRepo,
	)
	if err != nil {
		return fmt.Errorf("creating services use case: %w", err)
	}
	r := e.Group("/api/cwweb/v1")
	r.Use(reqid.New())
	vehiclesrs.Register(r, vehicleuc.New(p, vehiclesRepo))
	employeesrs.Register(
		r, employeeuc.New(p, employeesRepo, servicesRepo),
	)
	typesrs.Register(r, typeuc.New(p, typesRepo))
	servicesrs.Register(r, serviceUseCase)
	suppliesrs.Register(r, supplyuc.New(p, suppliesRepo))
	reportsrs.Register(r, reportuc.New(
		p, reportsRepo, servicesRepo, vehiclesRepo,
		employeesRepo, typesRepo,
	))
	return nil
}
