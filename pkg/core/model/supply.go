// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

// Supply models a consumable inventory item. Stock levels are
// fractional quantities (e.g., liters of soap), not integers.
// Low reports whether the current stock has dropped to or below the
// configured minimum threshold; it is derived, not stored.
type Supply struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	CurrentStock float64 `json:"current_stock"`
	MinimumStock float64 `json:"minimum_stock"`
	Unit         string  `json:"unit"`

	Low bool `json:"low"`
}

// UsedSupply links one service order to one supply with the consumed
// quantity. It is a plain join entity; no reporting rule is computed
// over it currently.
type UsedSupply struct {
	ID        int64   `json:"id"`
	ServiceID int64   `json:"service_id"`
	SupplyID  int64   `json:"supply_id"`
	Quantity  float64 `json:"quantity"`
}
