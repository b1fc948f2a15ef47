// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package gin_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/bitcomplete/sqltestutil"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/lavadero/cwweb/internal/test/dbcontainer"
	"github.com/lavadero/cwweb/pkg/adapter/config"
	"github.com/lavadero/cwweb/pkg/adapter/db/postgres"
	"github.com/lavadero/cwweb/pkg/adapter/db/postgres/schema"
	"github.com/lavadero/cwweb/pkg/adapter/restful/gin"
	"github.com/lavadero/cwweb/pkg/adapter/restful/gin/routes"
	"github.com/lavadero/cwweb/pkg/core/model"
	"github.com/lavadero/cwweb/pkg/core/repo"
	"github.com/stretchr/testify/suite"
)

const base = "/api/cwweb/v1"

// defaultCost is passed as the services use case configuration, so
// tests can verify that the configured value (not the built-in one)
// is assigned to the created service orders.
const defaultCost = 30.0

type IntegrationGinTestSuite struct {
	suite.Suite

	Ctx  context.Context
	Pg   *sqltestutil.PostgresContainer
	Pool *postgres.Pool
	Gin  *gin.Engine
}

func TestIntegrationGinTestSuite(t *testing.T) {
	ctx := context.Background()
	pg, pool, dfrs, ok := dbcontainer.New(ctx, 60*time.Second, t)
	for _, f := range dfrs {
		defer f()
	}
	if !ok {
		return // errors are already logged
	}
	suite.Run(t, &IntegrationGinTestSuite{
		Ctx:  ctx,
		Pg:   pg,
		Pool: pool,
	})
}

func (igts *IntegrationGinTestSuite) SetupSuite() {
	err := igts.Pool.Conn(
		igts.Ctx, func(ctx context.Context, c repo.Conn) error {
			return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
				return schema.New(tx).CreateTables(ctx)
			})
		},
	)
	igts.Require().NoError(err, "failed to create schema contents")

	igts.Gin = gin.New(gin.Logger(), gin.Recovery())
	igts.Require().NotNil(igts.Gin, "cannot instantiate Gin engine")
	cost := defaultCost
	err = routes.Register(igts.Gin, igts.Pool, config.Usecases{
		Services: config.Services{
			DefaultCost: &cost,
		},
	})
	igts.Require().NoError(err, "failed to register Gin routes")
}

// uniq returns a short random suffix, so each test can name its own
// entities without colliding with other tests which share the same
// database container.
func uniq() string {
	return uuid.NewString()[:8]
}

func (igts *IntegrationGinTestSuite) sendJSON(
	method, path string, body any,
) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		igts.Require().NoError(err, "cannot marshal request body")
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, path, rd)
	igts.Require().NoError(err, "cannot create %s request", method)
	if body != nil {
		req.Header.Add("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	igts.Gin.ServeHTTP(w, req)
	return w
}

func (igts *IntegrationGinTestSuite) decode(
	w *httptest.ResponseRecorder, res any,
) {
	igts.Require().NoError(
		json.Unmarshal(w.Body.Bytes(), res),
		"body is not json: %s", w.Body.String(),
	)
}

func (igts *IntegrationGinTestSuite) createVehicle(
	plate string,
) model.Vehicle {
	w := igts.sendJSON(http.MethodPost, base+"/vehicles", map[string]any{
		"plate_number": plate,
		"vehicle_type": "car",
		"client_name":  "Test Client",
		"client_phone": "555-0000",
	})
	igts.Require().Equal(201, w.Code, "creating vehicle: %s", w.Body)
	v := model.Vehicle{}
	igts.decode(w, &v)
	return v
}

func (igts *IntegrationGinTestSuite) createEmployee(
	name string,
) model.Employee {
	w := igts.sendJSON(http.MethodPost, base+"/employees", map[string]any{
		"name":     name,
		"position": "washer",
		"shift":    "morning",
	})
	igts.Require().Equal(201, w.Code, "creating employee: %s", w.Body)
	e := model.Employee{}
	igts.decode(w, &e)
	return e
}

func (igts *IntegrationGinTestSuite) createServiceType(
	name string, baseDuration int,
) model.ServiceType {
	w := igts.sendJSON(
		http.MethodPost, base+"/service-types", map[string]any{
			"name":          name,
			"description":   "test catalog entry",
			"base_duration": baseDuration,
		},
	)
	igts.Require().Equal(201, w.Code, "creating type: %s", w.Body)
	t := model.ServiceType{}
	igts.decode(w, &t)
	return t
}

func (igts *IntegrationGinTestSuite) createService(
	vid, eid, tid int64,
) model.ServiceSummary {
	w := igts.sendJSON(http.MethodPost, base+"/services", map[string]any{
		"vehicle_id":      vid,
		"employee_id":     eid,
		"service_type_id": tid,
	})
	igts.Require().Equal(201, w.Code, "creating service: %s", w.Body)
	sum := model.ServiceSummary{}
	igts.decode(w, &sum)
	return sum
}

func (igts *IntegrationGinTestSuite) setServiceStatus(
	sid int64, status string,
) *httptest.ResponseRecorder {
	return igts.sendJSON(
		http.MethodPatch,
		base+"/services/"+itoa(sid)+"/status",
		map[string]any{"status": status},
	)
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}

func (igts *IntegrationGinTestSuite) TestVehicleRegistration() {
	plate := "REG-" + uniq()
	v := igts.createVehicle(plate)
	igts.Positive(v.ID, "DB must assign an identifier")
	igts.Equal(plate, v.PlateNumber)
	igts.Equal(model.VehicleTypeCar, v.VehicleType)

	w := igts.sendJSON(http.MethodPost, base+"/vehicles", map[string]any{
		"plate_number": plate,
		"vehicle_type": "suv",
		"client_name":  "Other Client",
		"client_phone": "555-0001",
	})
	igts.Equal(409, w.Code, "duplicate plate must conflict")

	w = igts.sendJSON(http.MethodGet, base+"/vehicles/"+plate, nil)
	igts.Equal(200, w.Code)
	v2 := model.Vehicle{}
	igts.decode(w, &v2)
	igts.Equal(v.ID, v2.ID)

	w = igts.sendJSON(
		http.MethodGet, base+"/vehicles/NOPE-"+uniq(), nil,
	)
	igts.Equal(404, w.Code, "unknown plate must be not-found")

	w = igts.sendJSON(http.MethodGet, base+"/vehicles", nil)
	igts.Equal(200, w.Code)
	var vs []model.Vehicle
	igts.decode(w, &vs)
	seen := false
	for _, lv := range vs {
		seen = seen || lv.ID == v.ID
	}
	igts.True(seen, "listing must contain the registered vehicle")
}

func (igts *IntegrationGinTestSuite) TestVehicleBadRequest() {
	w := igts.sendJSON(
		http.MethodPost, base+"/vehicles", map[string]any{},
	)
	igts.Equal(400, w.Code)
	errs := map[string][]string{}
	igts.decode(w, &errs)
	igts.Contains(errs, "PlateNumber")

	w = igts.sendJSON(http.MethodPost, base+"/vehicles", map[string]any{
		"plate_number": "BAD-" + uniq(),
		"vehicle_type": "bicycle",
		"client_name":  "Test Client",
		"client_phone": "555-0000",
	})
	igts.Equal(400, w.Code)
	errs = map[string][]string{}
	igts.decode(w, &errs)
	igts.Contains(errs, "vehicle_type")
}

func (igts *IntegrationGinTestSuite) TestEmployeeManagement() {
	name := "Employee-" + uniq()
	e := igts.createEmployee(name)
	igts.Positive(e.ID)
	igts.True(e.Active, "hired employees start as active ones")
	igts.Zero(e.CurrentWorkload)

	w := igts.sendJSON(
		http.MethodPatch,
		base+"/employees/"+itoa(e.ID)+"/status",
		map[string]any{"active": false},
	)
	igts.Equal(200, w.Code, "deactivating: %s", w.Body)
	e2 := model.Employee{}
	igts.decode(w, &e2)
	igts.False(e2.Active)

	w = igts.sendJSON(
		http.MethodPatch,
		base+"/employees/999999/status",
		map[string]any{"active": true},
	)
	igts.Equal(404, w.Code)

	w = igts.sendJSON(
		http.MethodGet, base+"/employees/999999/workload", nil,
	)
	igts.Equal(404, w.Code)

	w = igts.sendJSON(
		http.MethodGet, base+"/employees/abc/workload", nil,
	)
	igts.Equal(400, w.Code, "non-integer path param")
}

func (igts *IntegrationGinTestSuite) TestEmployeeWorkload() {
	v := igts.createVehicle("WRK-" + uniq())
	e := igts.createEmployee("Busy-" + uniq())
	st := igts.createServiceType("Workload Wash "+uniq(), 30)

	s1 := igts.createService(v.ID, e.ID, st.ID)
	s2 := igts.createService(v.ID, e.ID, st.ID)
	igts.createService(v.ID, e.ID, st.ID) // stays pending

	w := igts.setServiceStatus(s1.ID, "in_progress")
	igts.Require().Equal(200, w.Code, "to in_progress: %s", w.Body)
	w = igts.setServiceStatus(s2.ID, "completed")
	igts.Require().Equal(200, w.Code, "to completed: %s", w.Body)

	w = igts.sendJSON(
		http.MethodGet, base+"/employees/"+itoa(e.ID)+"/workload", nil,
	)
	igts.Equal(200, w.Code)
	wl := model.Workload{}
	igts.decode(w, &wl)
	igts.Equal(e.ID, wl.EmployeeID)
	igts.Equal(e.Name, wl.EmployeeName)
	igts.Equal(int64(1), wl.PendingServices)
	igts.Equal(int64(1), wl.InProgressServices)
	igts.Equal(int64(1), wl.CompletedServices)
	igts.Equal(int64(2), wl.TotalWorkload, "pending + in_progress")

	w = igts.sendJSON(http.MethodGet, base+"/employees", nil)
	igts.Equal(200, w.Code)
	var es []model.Employee
	igts.decode(w, &es)
	for _, le := range es {
		if le.ID == e.ID {
			igts.Equal(int64(2), le.CurrentWorkload)
		}
	}
}

func (igts *IntegrationGinTestSuite) TestServiceLifecycle() {
	v := igts.createVehicle("SRV-" + uniq())
	e := igts.createEmployee("Server-" + uniq())
	st := igts.createServiceType("Lifecycle Wash "+uniq(), 45)

	sum := igts.createService(v.ID, e.ID, st.ID)
	igts.Positive(sum.ID)
	igts.Equal(v.PlateNumber, sum.Vehicle.PlateNumber)
	igts.Equal(e.Name, sum.Employee.Name)
	igts.Equal(st.Name, sum.ServiceType)
	igts.Equal(model.ServiceStatusPending, sum.Status)
	igts.Nil(sum.EndTime, "open orders have no end time")

	w := igts.setServiceStatus(sum.ID, "in_progress")
	igts.Equal(200, w.Code)
	sum2 := model.ServiceSummary{}
	igts.decode(w, &sum2)
	igts.Equal(model.ServiceStatusInProgress, sum2.Status)
	igts.Nil(sum2.EndTime, "only completion stamps the end time")

	w = igts.setServiceStatus(sum.ID, "completed")
	igts.Equal(200, w.Code)
	sum3 := model.ServiceSummary{}
	igts.decode(w, &sum3)
	igts.Equal(model.ServiceStatusCompleted, sum3.Status)
	igts.NotNil(sum3.EndTime, "completion stamps the end time")

	w = igts.setServiceStatus(sum.ID, "washed")
	igts.Equal(400, w.Code, "unknown status values are rejected")

	w = igts.setServiceStatus(999999, "completed")
	igts.Equal(404, w.Code)

	w = igts.sendJSON(http.MethodPost, base+"/services", map[string]any{
		"vehicle_id":      int64(999999),
		"employee_id":     e.ID,
		"service_type_id": st.ID,
	})
	igts.Equal(404, w.Code, "unknown vehicle reference")
}

func (igts *IntegrationGinTestSuite) TestPendingServices() {
	v := igts.createVehicle("PND-" + uniq())
	e := igts.createEmployee("Pender-" + uniq())
	st := igts.createServiceType("Pending Wash "+uniq(), 30)

	s1 := igts.createService(v.ID, e.ID, st.ID)
	s2 := igts.createService(v.ID, e.ID, st.ID)
	w := igts.setServiceStatus(s2.ID, "completed")
	igts.Require().Equal(200, w.Code)

	w = igts.sendJSON(http.MethodGet, base+"/services/pending", nil)
	igts.Equal(200, w.Code)
	var sums []model.ServiceSummary
	igts.decode(w, &sums)
	var seen1, seen2 bool
	for _, sum := range sums {
		igts.Equal(model.ServiceStatusPending, sum.Status)
		seen1 = seen1 || sum.ID == s1.ID
		seen2 = seen2 || sum.ID == s2.ID
	}
	igts.True(seen1, "pending order must be listed")
	igts.False(seen2, "completed order must be filtered out")

	w = igts.sendJSON(http.MethodGet, base+"/services", nil)
	igts.Equal(200, w.Code)
	sums = nil
	igts.decode(w, &sums)
	seen2 = false
	for _, sum := range sums {
		seen2 = seen2 || sum.ID == s2.ID
	}
	igts.True(seen2, "full listing keeps all orders")
}

func (igts *IntegrationGinTestSuite) TestServiceTypesCatalog() {
	name := "Catalog Wash " + uniq()
	st := igts.createServiceType(name, 25)
	igts.Positive(st.ID)
	igts.Equal(name, st.Name)
	igts.False(st.CreatedAt.IsZero())

	w := igts.sendJSON(
		http.MethodPost, base+"/service-types", map[string]any{
			"name":          name,
			"base_duration": 35,
		},
	)
	igts.Equal(409, w.Code, "duplicate catalog names must conflict")

	w = igts.sendJSON(
		http.MethodPost, base+"/service-types", map[string]any{
			"name": "No Duration " + uniq(),
		},
	)
	igts.Equal(400, w.Code, "base_duration is required")

	st2 := igts.createServiceType("Catalog Wash "+uniq(), 60)
	w = igts.sendJSON(http.MethodGet, base+"/service-types", nil)
	igts.Equal(200, w.Code)
	var ts []model.ServiceType
	igts.decode(w, &ts)
	i1, i2 := -1, -1
	for i, t := range ts {
		switch t.ID {
		case st.ID:
			i1 = i
		case st2.ID:
			i2 = i
		}
	}
	igts.GreaterOrEqual(i1, 0, "catalog must list the first entry")
	igts.Greater(i2, i1, "catalog keeps the insertion order")
}

func (igts *IntegrationGinTestSuite) TestInventory() {
	low := "Low Supply " + uniq()
	w := igts.sendJSON(http.MethodPost, base+"/inventory", map[string]any{
		"name":          low,
		"description":   "pH-neutral concentrate",
		"current_stock": 5,
		"minimum_stock": 10,
		"unit":          "liters",
	})
	igts.Equal(201, w.Code, "creating supply: %s", w.Body)
	s := model.Supply{}
	igts.decode(w, &s)
	igts.Equal("pH-neutral concentrate", s.Description)
	igts.True(s.Low, "stock at or below the minimum is low")

	w = igts.sendJSON(http.MethodPost, base+"/inventory", map[string]any{
		"name":          low,
		"current_stock": 50,
		"minimum_stock": 10,
		"unit":          "liters",
	})
	igts.Equal(409, w.Code, "duplicate supply names must conflict")

	ok := "Stocked Supply " + uniq()
	w = igts.sendJSON(http.MethodPost, base+"/inventory", map[string]any{
		"name":          ok,
		"current_stock": 50,
		"minimum_stock": 10,
		"unit":          "cans",
	})
	igts.Equal(201, w.Code)
	s2 := model.Supply{}
	igts.decode(w, &s2)
	igts.False(s2.Low)

	w = igts.sendJSON(http.MethodGet, base+"/inventory", nil)
	igts.Equal(200, w.Code)
	var ss []model.Supply
	igts.decode(w, &ss)
	var seen1, seen2 bool
	for _, ls := range ss {
		if ls.ID == s.ID {
			seen1 = true
			igts.Equal(
				"pH-neutral concentrate", ls.Description,
				"description must round-trip through the DB",
			)
		}
		seen2 = seen2 || ls.ID == s2.ID
	}
	igts.True(seen1 && seen2, "listing must contain created supplies")
}

func (igts *IntegrationGinTestSuite) TestSupplyUsage() {
	v := igts.createVehicle("USE-" + uniq())
	e := igts.createEmployee("User-" + uniq())
	st := igts.createServiceType("Usage Wash "+uniq(), 30)
	sum := igts.createService(v.ID, e.ID, st.ID)

	w := igts.sendJSON(http.MethodPost, base+"/inventory", map[string]any{
		"name":          "Usage Supply " + uniq(),
		"current_stock": 40,
		"minimum_stock": 10,
		"unit":          "liters",
	})
	igts.Require().Equal(201, w.Code)
	s := model.Supply{}
	igts.decode(w, &s)

	usagePath := base + "/services/" + itoa(sum.ID) + "/supplies"
	w = igts.sendJSON(http.MethodPost, usagePath, map[string]any{
		"supply_id": s.ID,
		"quantity":  2.5,
	})
	igts.Equal(201, w.Code, "recording usage: %s", w.Body)
	u := model.UsedSupply{}
	igts.decode(w, &u)
	igts.Positive(u.ID)
	igts.Equal(sum.ID, u.ServiceID)
	igts.Equal(s.ID, u.SupplyID)
	igts.Equal(2.5, u.Quantity)

	w = igts.sendJSON(http.MethodGet, base+"/inventory", nil)
	igts.Equal(200, w.Code)
	var ss []model.Supply
	igts.decode(w, &ss)
	for _, ls := range ss {
		if ls.ID == s.ID {
			igts.Equal(37.5, ls.CurrentStock, "stock is decremented")
		}
	}

	w = igts.sendJSON(http.MethodPost, usagePath, map[string]any{
		"supply_id": s.ID,
		"quantity":  -1,
	})
	igts.Equal(400, w.Code, "non-positive quantities are rejected")

	w = igts.sendJSON(http.MethodPost, usagePath, map[string]any{
		"supply_id": int64(999999),
		"quantity":  1,
	})
	igts.Equal(404, w.Code, "unknown supply reference")

	w = igts.sendJSON(
		http.MethodPost,
		base+"/services/999999/supplies",
		map[string]any{
			"supply_id": s.ID,
			"quantity":  1,
		},
	)
	igts.Equal(404, w.Code, "unknown service reference")
}

func (igts *IntegrationGinTestSuite) TestDashboardStats() {
	v := igts.createVehicle("DSH-" + uniq())
	e := igts.createEmployee("Dasher-" + uniq())
	st := igts.createServiceType("Dashboard Wash "+uniq(), 30)
	igts.createService(v.ID, e.ID, st.ID)

	w := igts.sendJSON(
		http.MethodGet, base+"/reports/dashboard-stats", nil,
	)
	igts.Equal(200, w.Code)
	keys := map[string]any{}
	igts.decode(w, &keys)
	for _, k := range []string{
		"pendingServices", "dailyRevenue",
		"activeEmployees", "totalVehicles",
	} {
		igts.Contains(keys, k, "missing dashboard counter")
	}
	stats := model.DashboardStats{}
	igts.decode(w, &stats)
	igts.GreaterOrEqual(stats.PendingServices, int64(1))
	igts.GreaterOrEqual(stats.ActiveEmployees, int64(1))
	igts.GreaterOrEqual(stats.TotalVehicles, int64(1))
	igts.GreaterOrEqual(stats.DailyRevenue, 0.0)
}

func (igts *IntegrationGinTestSuite) TestDailyIncome() {
	w := igts.sendJSON(
		http.MethodGet, base+"/reports/daily-income?date=28-08-2026", nil,
	)
	igts.Equal(400, w.Code, "dates must follow the YYYY-MM-DD format")

	w = igts.sendJSON(
		http.MethodGet, base+"/reports/daily-income", nil,
	)
	igts.Equal(400, w.Code, "the date query param is required")

	w = igts.sendJSON(
		http.MethodGet, base+"/reports/daily-income?date=2000-01-01", nil,
	)
	igts.Equal(200, w.Code)
	di := model.DailyIncome{}
	igts.decode(w, &di)
	igts.Equal("2000-01-01", di.Date)
	igts.Zero(di.TotalIncome, "empty days report zero income")
	igts.Zero(di.ServicesCount)

	v := igts.createVehicle("INC-" + uniq())
	e := igts.createEmployee("Earner-" + uniq())
	st := igts.createServiceType("Income Wash "+uniq(), 30)
	sum := igts.createService(v.ID, e.ID, st.ID)
	w = igts.setServiceStatus(sum.ID, "completed")
	igts.Require().Equal(200, w.Code)

	today := time.Now().Format("2006-01-02")
	w = igts.sendJSON(
		http.MethodGet, base+"/reports/daily-income?date="+today, nil,
	)
	igts.Equal(200, w.Code)
	di = model.DailyIncome{}
	igts.decode(w, &di)
	igts.Equal(today, di.Date)
	igts.GreaterOrEqual(di.TotalIncome, defaultCost)
	igts.GreaterOrEqual(di.ServicesCount, int64(1))
}

func (igts *IntegrationGinTestSuite) TestAverageServiceTime() {
	unused := igts.createServiceType("Unused Wash "+uniq(), 77)

	v := igts.createVehicle("AVG-" + uniq())
	e := igts.createEmployee("Avger-" + uniq())
	used := igts.createServiceType("Used Wash "+uniq(), 55)
	sum := igts.createService(v.ID, e.ID, used.ID)
	w := igts.setServiceStatus(sum.ID, "completed")
	igts.Require().Equal(200, w.Code)

	w = igts.sendJSON(
		http.MethodGet, base+"/reports/average-service-time", nil,
	)
	igts.Equal(200, w.Code)
	var ds []model.TypeDuration
	igts.decode(w, &ds)
	var seenUnused, seenUsed bool
	for _, d := range ds {
		switch d.ServiceType {
		case unused.Name:
			seenUnused = true
			igts.Equal(
				float64(77), d.AverageTime,
				"no completions fall back to the base duration",
			)
		case used.Name:
			seenUsed = true
			igts.GreaterOrEqual(d.AverageTime, 0.0)
			igts.Less(
				d.AverageTime, 1.0,
				"test completions take under a minute",
			)
		}
	}
	igts.True(seenUnused, "catalog entries without orders are listed")
	igts.True(seenUsed, "catalog entries with orders are listed")
}

func (igts *IntegrationGinTestSuite) TestVehicleHistory() {
	w := igts.sendJSON(
		http.MethodGet, base+"/reports/vehicle-history/HZZ-"+uniq(), nil,
	)
	igts.Equal(404, w.Code, "unknown plates are not-found")

	plate := "HST-" + uniq()
	v := igts.createVehicle(plate)
	e := igts.createEmployee("Historian-" + uniq())
	st1 := igts.createServiceType("History Wash "+uniq(), 30)
	st2 := igts.createServiceType("History Wax "+uniq(), 60)
	igts.createService(v.ID, e.ID, st1.ID)
	sum2 := igts.createService(v.ID, e.ID, st2.ID)
	w = igts.setServiceStatus(sum2.ID, "completed")
	igts.Require().Equal(200, w.Code)

	w = igts.sendJSON(
		http.MethodGet, base+"/reports/vehicle-history/"+plate, nil,
	)
	igts.Equal(200, w.Code)
	var hs []model.HistoryItem
	igts.decode(w, &hs)
	igts.Require().Len(hs, 2)
	igts.Equal(st2.Name, hs[0].ServiceType, "newest first")
	igts.Equal(st1.Name, hs[1].ServiceType)
	igts.Equal(model.ServiceStatusCompleted, hs[0].Status)
	igts.Equal(model.ServiceStatusPending, hs[1].Status)
	igts.Equal(e.Name, hs[0].EmployeeName)
	igts.Equal(defaultCost, hs[0].TotalCost, "configured default cost")
	igts.True(
		hs[0].ServiceDate.After(hs[1].ServiceDate),
		"descending by start time",
	)
}
