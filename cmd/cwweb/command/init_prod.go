// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"fmt"

	"github.com/lavadero/cwweb/pkg/adapter/config"
	"github.com/lavadero/cwweb/pkg/adapter/db/postgres/schema"
	"github.com/lavadero/cwweb/pkg/core/repo"
	"github.com/spf13/cobra"
)

const credsRenewalMessage = `
As a part of this operation, a fresh random password is generated for
the normal serving role and recorded in the .pgpass.new file of the
configured pass-dir directory. After a successful commitment, that file
is moved over the .pgpass file, so the web server can connect with the
renewed credentials thereafter.`

var initProdCmd = &cobra.Command{
	Use:   "init-prod",
	Short: "Initialize database contents with production suitable data",
	Long: `Initialize database contents with production suitable data.
The car-wash tables will be created and the washing services catalog
will be seeded, expecting vehicles, employees, and supplies to be
registered through the REST APIs later. The database connection
information are read from the config file (connecting with the admin
role). No changes will be made to the config file itself.
` + credsRenewalMessage + `

The tables must be either non-existent or empty. Pre-existing tables
are left unchanged, except the catalog which only receives the missing
entries.`,
	RunE: initProd,
	Args: cobra.NoArgs,
}

func initProd(_ *cobra.Command, _ []string) error {
	return initDatabase(
		true, func(ctx context.Context, s *schema.Settler) error {
			return s.InitProd(ctx)
		},
	)
}

// initDatabase connects to the configured database with the admin role
// and runs the `settle` function in a single transaction, following it
// by creation of the normal serving role and granting its required
// privileges. When `withCreds` is set, the normal role password is
// also renewed in the same transaction and the recorded passwords file
// is finalized after a successful commitment.
func initDatabase(
	withCreds bool,
	settle func(ctx context.Context, s *schema.Settler) error,
) error {
	ctx := context.Background()
	c, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	p, err := c.ConnectionPool(ctx, repo.AdminRole)
	if err != nil {
		return fmt.Errorf("creating DB pool: %w", err)
	}
	defer p.Close()
	var finalizer func() error
	err = p.Conn(ctx, func(ctx context.Context, conn repo.Conn) error {
		return conn.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			if err := settle(ctx, schema.New(tx)); err != nil {
				return fmt.Errorf("settling schema: %w", err)
			}
			role := repo.NormalRole + c.Database.RoleSuffix
			err := schema.CreateRoleIfNotExists(ctx, tx, role)
			if err != nil {
				return err
			}
			if err := schema.GrantPrivileges(ctx, tx, role); err != nil {
				return err
			}
			if !withCreds {
				return nil
			}
			finalizer, err = c.Database.RenewPasswords(
				ctx,
				func(
					ctx context.Context,
					roles []repo.Role,
					passwords []string,
				) error {
					for i, r := range roles {
						r = r + c.Database.RoleSuffix
						err := schema.ChangePassword(
							ctx, tx,
							c.Database.Hasher(),
							r, passwords[i],
						)
						if err != nil {
							return err
						}
					}
					return nil
				},
				repo.NormalRole,
			)
			return err
		})
	})
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	if finalizer != nil {
		if err := finalizer(); err != nil {
			return fmt.Errorf("finalizing pass-file: %w", err)
		}
	}
	return nil
}

func init() {
	dbCmd.AddCommand(initProdCmd)
}
