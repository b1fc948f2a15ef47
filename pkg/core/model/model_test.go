// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model_test

import (
	"testing"

	"github.com/lavadero/cwweb/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVehicleTypeRoundTrip(t *testing.T) {
	for _, name := range []string{
		"car", "suv", "truck", "motorcycle",
	} {
		vt, err := model.ParseVehicleType(name)
		require.NoError(t, err, "parsing %q", name)
		assert.NoError(t, vt.Validate())
		assert.Equal(t, name, vt.String())
	}
}

func TestVehicleTypeInvalid(t *testing.T) {
	vt, err := model.ParseVehicleType("bicycle")
	assert.ErrorIs(t, err, model.ErrUnknownVehicleType)
	assert.Equal(t, model.VehicleTypeInvalid, vt)
	assert.Error(t, vt.Validate())
	assert.Panics(t, func() {
		_ = vt.String()
	})
	_, err = vt.MarshalText()
	assert.Error(t, err)
}

func TestServiceStatusRoundTrip(t *testing.T) {
	for _, name := range []string{
		"pending", "in_progress", "completed", "cancelled",
	} {
		st, err := model.ParseServiceStatus(name)
		require.NoError(t, err, "parsing %q", name)
		assert.NoError(t, st.Validate())
		assert.Equal(t, name, st.String())

		b, err := st.MarshalText()
		require.NoError(t, err)
		var st2 model.ServiceStatus
		require.NoError(t, st2.UnmarshalText(b))
		assert.Equal(t, st, st2)
	}
}

func TestServiceStatusInvalid(t *testing.T) {
	st, err := model.ParseServiceStatus("archived")
	assert.ErrorIs(t, err, model.ErrUnknownServiceStatus)
	assert.Equal(t, model.ServiceStatusInvalid, st)
	assert.Error(t, st.Validate())
	assert.Panics(t, func() {
		_ = st.String()
	})
}
