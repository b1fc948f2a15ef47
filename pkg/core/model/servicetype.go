// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "time"

// ServiceType models a catalog entry describing a kind of wash or
// service. BaseDuration is the expected duration in minutes and is
// used as the reported estimate while no completed order of this type
// exists yet. Names are unique across the catalog.
type ServiceType struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	BaseDuration int       `json:"base_duration"`
	CreatedAt    time.Time `json:"created_at"`
}
