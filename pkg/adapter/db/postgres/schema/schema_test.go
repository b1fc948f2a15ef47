// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package schema_test

import (
	"context"
	"testing"
	"time"

	"github.com/bitcomplete/sqltestutil"
	"github.com/lavadero/cwweb/internal/test/dbcontainer"
	schemi "github.com/lavadero/cwweb/internal/test/schema"
	"github.com/lavadero/cwweb/pkg/adapter/db/postgres"
	"github.com/lavadero/cwweb/pkg/adapter/db/postgres/schema"
	"github.com/lavadero/cwweb/pkg/adapter/hash/scram"
	"github.com/lavadero/cwweb/pkg/core/repo"
	"github.com/stretchr/testify/require"
)

type SchemaTestSuite struct {
	Ctx  context.Context
	Pg   *sqltestutil.PostgresContainer
	Pool *postgres.Pool
}

func TestSchemaTestSuite(t *testing.T) {
	ctx := context.Background()
	pg, pool, dfrs, ok := dbcontainer.New(ctx, 60*time.Second, t)
	for _, f := range dfrs {
		defer f()
	}
	if !ok {
		return // errors are already logged
	}
	sts := &SchemaTestSuite{
		Ctx:  ctx,
		Pg:   pg,
		Pool: pool,
	}
	// Prod and dev initialization are idempotent with respect to the
	// tables and the catalog seed, so both may settle one database,
	// but they must run in order (dev adds sample rows on top).
	t.Run("production initialization", sts.TestInitProd)
	t.Run("development initialization", sts.TestInitDev)
	t.Run("role provisioning", sts.TestRoles)
}

func (sts *SchemaTestSuite) settle(
	t *testing.T, f func(ctx context.Context, s *schema.Settler) error,
) {
	err := sts.Pool.Conn(
		sts.Ctx, func(ctx context.Context, c repo.Conn) error {
			return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
				return f(ctx, schema.New(tx))
			})
		},
	)
	require.NoError(t, err, "settling schema contents")
}

func (sts *SchemaTestSuite) verify(
	t *testing.T, f func(ctx context.Context, v *schemi.Verifier) error,
) {
	err := sts.Pool.Conn(
		sts.Ctx, func(ctx context.Context, c repo.Conn) error {
			return f(ctx, schemi.New(c))
		},
	)
	require.NoError(t, err, "verifying schema contents")
}

func (sts *SchemaTestSuite) TestInitProd(t *testing.T) {
	sts.settle(t, func(ctx context.Context, s *schema.Settler) error {
		return s.InitProd(ctx)
	})
	sts.verify(t, func(ctx context.Context, v *schemi.Verifier) error {
		v.VerifySchema(ctx, t)
		v.VerifyProdData(ctx, t)
		return nil
	})
}

func (sts *SchemaTestSuite) TestInitDev(t *testing.T) {
	sts.settle(t, func(ctx context.Context, s *schema.Settler) error {
		return s.InitDev(ctx)
	})
	sts.verify(t, func(ctx context.Context, v *schemi.Verifier) error {
		v.VerifySchema(ctx, t)
		v.VerifyDevData(ctx, t)
		return nil
	})
}

func (sts *SchemaTestSuite) TestRoles(t *testing.T) {
	r := require.New(t)
	role := repo.NormalRole + "_test"
	err := sts.Pool.Conn(
		sts.Ctx, func(ctx context.Context, c repo.Conn) error {
			return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
				if err := schema.CreateRoleIfNotExists(
					ctx, tx, role,
				); err != nil {
					return err
				}
				// a second run must observe the existing role
				if err := schema.CreateRoleIfNotExists(
					ctx, tx, role,
				); err != nil {
					return err
				}
				if err := schema.GrantPrivileges(
					ctx, tx, role,
				); err != nil {
					return err
				}
				return schema.ChangePassword(
					ctx, tx, scram.SHA256(), role, "a-new-password",
				)
			})
		},
	)
	r.NoError(err, "provisioning the %q role", role)
}
