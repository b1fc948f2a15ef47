// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"

	"github.com/lavadero/cwweb/pkg/adapter/db/postgres/schema"
	"github.com/spf13/cobra"
)

var initDevCmd = &cobra.Command{
	Use:   "init-dev",
	Short: "Initialize database contents with development sample data",
	Long: `Initialize database contents with development sample data.
The car-wash tables will be created and filled with the washing
services catalog in addition to a handful of sample vehicles,
employees, supplies, and service orders, so all listing and reporting
endpoints respond meaningfully right after the first run. The database
connection information are read from the config file (connecting with
the admin role). The normal serving role is created and granted too,
but its password is kept unchanged (in contrast to the init-prod
action), as development environments usually rely on the trust or
local identity authentication methods.`,
	RunE: initDev,
	Args: cobra.NoArgs,
}

func initDev(_ *cobra.Command, _ []string) error {
	return initDatabase(
		false, func(ctx context.Context, s *schema.Settler) error {
			return s.InitDev(ctx)
		},
	)
}

func init() {
	dbCmd.AddCommand(initDevCmd)
}
