// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "time"

// DashboardStats is the single-snapshot dashboard report. Field names
// follow the camelCase convention expected by the dashboard client.
// All four values are independent aggregations, computed fresh on each
// call: open (pending or in-progress) service count, the summed cost
// of services completed within the current calendar day, the active
// employee count, and the total registered vehicle count.
type DashboardStats struct {
	PendingServices int64   `json:"pendingServices"`
	DailyRevenue    float64 `json:"dailyRevenue"`
	ActiveEmployees int64   `json:"activeEmployees"`
	TotalVehicles   int64   `json:"totalVehicles"`
}

// DailyIncome reports the summed income and count of service orders
// completed within one calendar day. Date echoes the requested date
// string back to the caller.
type DailyIncome struct {
	Date          string  `json:"date"`
	TotalIncome   float64 `json:"total_income"`
	ServicesCount int64   `json:"services_count"`
}

// TypeDuration reports the average service duration, in minutes, for
// one service type. When no completed order of the type exists, the
// average falls back to the type's configured base duration estimate.
type TypeDuration struct {
	ServiceType string  `json:"service_type"`
	AverageTime float64 `json:"average_time"`
}

// HistoryItem is one entry of a vehicle's service history. The
// employee name is resolved per row and falls back to "Unknown" when
// the owning employee row no longer resolves.
type HistoryItem struct {
	ServiceDate  time.Time     `json:"service_date"`
	ServiceType  string        `json:"service_type"`
	TotalCost    float64       `json:"total_cost"`
	EmployeeName string        `json:"employee_name"`
	Status       ServiceStatus `json:"status"`
}
