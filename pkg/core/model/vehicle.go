// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package model defines the inner most layer of the Clean Architecture
// containing the business-level models, also called entities or domain.
// This layer may not depend on outter layers, while all other layers
// may depend on it.
// Models in this package carry json tags because they are ultimately
// serialized by the REST adapter layer, while the database-specific
// tags are kept in the corresponding repository packages (on separate
// row structs), so the schema concerns do not leak into this layer.
package model

import (
	"errors"
	"fmt"
)

// Vehicle models a registered client vehicle. The plate number acts
// as the external lookup key and is unique across all vehicles, while
// the numeric ID is assigned by the database at registration time.
type Vehicle struct {
	ID          int64       `json:"id"`
	PlateNumber string      `json:"plate_number"`
	VehicleType VehicleType `json:"vehicle_type"`
	ClientName  string      `json:"client_name"`
	ClientPhone string      `json:"client_phone"`
}

// VehicleType specifies the vehicle category enum. Although this enum
// is numeric, it is (de)serialized as a string for readability in the
// adapter layer.
type VehicleType int

// Valid values for the VehicleType enum.
const (
	VehicleTypeInvalid VehicleType = iota // zero value is invalid

	VehicleTypeCar
	VehicleTypeSUV
	VehicleTypeTruck
	VehicleTypeMotorcycle
)

// ErrUnknownVehicleType indicates that a given string may not be
// parsed as a valid/known vehicle type. The invalid string itself is
// not encoded in the error because the caller of ParseVehicleType
// already knows about it and may wrap this error with that context.
var ErrUnknownVehicleType = errors.New("unknown vehicle type")

// VehicleTypeError indicates an invalid vehicle type, containing the
// invalid type as an integer. It is returned by Validate for values
// which were not obtained from ParseVehicleType.
type VehicleTypeError int

// Error implements the error interface, returning a string
// representation of the VehicleTypeError.
func (e VehicleTypeError) Error() string {
	return fmt.Sprintf("invalid vehicle type: %d", int(e))
}

// Validate returns nil if VehicleType value is valid. For invalid
// values, an instance of the VehicleTypeError will be returned.
func (t VehicleType) Validate() error {
	switch t {
	case VehicleTypeCar, VehicleTypeSUV,
		VehicleTypeTruck, VehicleTypeMotorcycle:
		return nil
	default:
		return VehicleTypeError(t)
	}
}

// String converts the VehicleType enum to a string, helping to
// serialize it for transmission to web clients. Invalid vehicle
// type causes a panic.
func (t VehicleType) String() string {
	switch t {
	case VehicleTypeCar:
		return "car"
	case VehicleTypeSUV:
		return "suv"
	case VehicleTypeTruck:
		return "truck"
	case VehicleTypeMotorcycle:
		return "motorcycle"
	default:
		panic(VehicleTypeError(t))
	}
}

// MarshalText implements encoding.TextMarshaler, so a VehicleType is
// serialized by its string form in JSON payloads.
func (t VehicleType) MarshalText() ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, parsing the
// string form of a VehicleType.
func (t *VehicleType) UnmarshalText(b []byte) error {
	v, err := ParseVehicleType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ParseVehicleType parses the given string and returns a VehicleType,
// helping to deserialize it when reading a REST API request.
// For invalid strings, VehicleTypeInvalid and ErrUnknownVehicleType
// will be returned.
func ParseVehicleType(t string) (VehicleType, error) {
	switch t {
	case "car":
		return VehicleTypeCar, nil
	case "suv":
		return VehicleTypeSUV, nil
	case "truck":
		return VehicleTypeTruck, nil
	case "motorcycle":
		return VehicleTypeMotorcycle, nil
	default:
		return VehicleTypeInvalid, ErrUnknownVehicleType
	}
}
