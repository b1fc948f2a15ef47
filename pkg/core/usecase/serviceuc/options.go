// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package serviceuc

import (
	"errors"
	"fmt"
)

// Option is a functional option for the services use case.
type Option func(uc *UseCase) error

// WithDefaultCost option configures a services UseCase instance in
// order to stamp the given total cost on newly created service orders.
// This is a placeholder amount: pricing is not derived from the
// service type catalog yet, and creation uses this fixed value until
// that wiring exists. This option may be passed to the New() function.
func WithDefaultCost(cost float64) Option {
	return func(uc *UseCase) error {
		if cost <= 0 {
			return fmt.Errorf("cost (%v) is not positive", cost)
		}
		if uc.defaultCost != 0 {
			return errors.New("cost is already configured")
		}
		uc.defaultCost = cost
		return nil
	}
}
