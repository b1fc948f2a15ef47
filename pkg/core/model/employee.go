// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

// Employee models a car wash staff member. The active flag is the only
// field which may be mutated after creation (through the dedicated
// status update use case).
//
// CurrentWorkload is a derived value, counting the employee's service
// orders which are currently pending or in progress. It is never
// stored on the employee row and must be recomputed from the current
// service rows whenever an employee representation is assembled.
type Employee struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Shift    string `json:"shift"`
	Active   bool   `json:"active"`

	CurrentWorkload int64 `json:"current_workload"`
}

// Workload is the per-employee workload breakdown, counting the
// employee's service orders by status. TotalWorkload is the
// convenience sum of the pending and in-progress counts.
type Workload struct {
	EmployeeID   int64  `json:"employee_id"`
	EmployeeName string `json:"employee_name"`

	PendingServices    int64 `json:"pending_services"`
	InProgressServices int64 `json:"in_progress_services"`
	CompletedServices  int64 `json:"completed_services"`
	TotalWorkload      int64 `json:"total_workload"`
}
