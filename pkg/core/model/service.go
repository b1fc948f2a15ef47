// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"fmt"
	"time"
)

// Service models a single service order, engaging one vehicle and one
// employee. The ServiceType field holds a denormalized copy of the
// referenced service type name, taken at creation time, so historical
// orders remain readable even if the catalog entry is renamed later.
// EndTime is nil until the order status is set to completed.
type Service struct {
	ID            int64         `json:"id"`
	VehicleID     int64         `json:"vehicle_id"`
	EmployeeID    int64         `json:"employee_id"`
	ServiceTypeID int64         `json:"service_type_id"`
	ServiceType   string        `json:"service_type"`
	Status        ServiceStatus `json:"status"`
	StartTime     time.Time     `json:"start_time"`
	EndTime       *time.Time    `json:"end_time"`
	TotalCost     float64       `json:"total_cost"`
	Notes         string        `json:"notes,omitempty"`
}

// ServiceSummary is the nested representation of a service order as
// returned by the creation and listing APIs, embedding short summaries
// of the owning vehicle and employee rows instead of their bare IDs.
type ServiceSummary struct {
	ID          int64           `json:"id"`
	Vehicle     VehicleSummary  `json:"vehicle"`
	Employee    EmployeeSummary `json:"employee"`
	ServiceType string          `json:"service_type"`
	Status      ServiceStatus   `json:"status"`
	StartTime   time.Time       `json:"start_time"`
	EndTime     *time.Time      `json:"end_time,omitempty"`
}

// VehicleSummary carries the vehicle fields which are embedded in a
// ServiceSummary.
type VehicleSummary struct {
	PlateNumber string `json:"plate_number"`
	ClientName  string `json:"client_name"`
}

// EmployeeSummary carries the employee fields which are embedded in a
// ServiceSummary.
type EmployeeSummary struct {
	Name string `json:"name"`
}

// ServiceStatus specifies the service order status enum. A service
// order is created as pending and is moved forward by staff through
// in_progress to completed, or to cancelled. No transition graph is
// enforced: any status may follow any other, which doubles as an
// administrative override capability.
type ServiceStatus int

// Valid values for the ServiceStatus enum.
const (
	ServiceStatusInvalid ServiceStatus = iota // zero value is invalid

	ServiceStatusPending
	ServiceStatusInProgress
	ServiceStatusCompleted
	ServiceStatusCancelled
)

// ErrUnknownServiceStatus indicates that a given string may not be
// parsed as a valid/known service status.
var ErrUnknownServiceStatus = errors.New("unknown service status")

// ServiceStatusError indicates an invalid service status, containing
// the invalid status as an integer.
type ServiceStatusError int

// Error implements the error interface, returning a string
// representation of the ServiceStatusError.
func (e ServiceStatusError) Error() string {
	return fmt.Sprintf("invalid service status: %d", int(e))
}

// Validate returns nil if ServiceStatus value is valid. For invalid
// values, an instance of the ServiceStatusError will be returned.
func (s ServiceStatus) Validate() error {
	switch s {
	case ServiceStatusPending, ServiceStatusInProgress,
		ServiceStatusCompleted, ServiceStatusCancelled:
		return nil
	default:
		return ServiceStatusError(s)
	}
}

// String converts the ServiceStatus enum to a string, helping to
// serialize it for transmission to web clients. Invalid service
// status causes a panic.
func (s ServiceStatus) String() string {
	switch s {
	case ServiceStatusPending:
		return "pending"
	case ServiceStatusInProgress:
		return "in_progress"
	case ServiceStatusCompleted:
		return "completed"
	case ServiceStatusCancelled:
		return "cancelled"
	default:
		panic(ServiceStatusError(s))
	}
}

// MarshalText implements encoding.TextMarshaler, so a ServiceStatus is
// serialized by its string form in JSON payloads.
func (s ServiceStatus) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, parsing the
// string form of a ServiceStatus.
func (s *ServiceStatus) UnmarshalText(b []byte) error {
	v, err := ParseServiceStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseServiceStatus parses the given string and returns a
// ServiceStatus, helping to deserialize it when reading a REST API
// request. For invalid strings, ServiceStatusInvalid and
// ErrUnknownServiceStatus will be returned.
func ParseServiceStatus(s string) (ServiceStatus, error) {
	switch s {
	case "pending":
		return ServiceStatusPending, nil
	case "in_progress":
		return ServiceStatusInProgress, nil
	case "completed":
		return ServiceStatusCompleted, nil
	case "cancelled":
		return ServiceStatusCancelled, nil
	default:
		return ServiceStatusInvalid, ErrUnknownServiceStatus
	}
}
