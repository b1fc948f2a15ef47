// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package schema

import (
	"context"
	"fmt"
	"strings"

	"github.com/lavadero/cwweb/pkg/core/repo"
	"github.com/lavadero/cwweb/pkg/core/scram"
)

// Role names are interpolated into DDL statements because PostgreSQL
// does not accept placeholders there. The repo.Role constants are
// compile-time trusted strings and the password hashes consist of
// ASCII printable letters excluding the quote characters, hence both
// can be embedded safely.

// CreateRoleIfNotExists creates the `role` role if it does not exist
// right now. Although the login option is enabled for the created
// role, no specific password will be set for it. The ChangePassword
// function may be used for setting a password if desired.
func CreateRoleIfNotExists(
	ctx context.Context, tx repo.Tx, role repo.Role,
) error {
	_, err := tx.Exec(ctx, fmt.Sprintf(`
	DO $$ BEGIN
	CREATE ROLE %s LOGIN;
	EXCEPTION WHEN duplicate_object THEN NULL;
	END $$`, role,
	))
	if err != nil {
		return fmt.Errorf("creating role %q: %w", role, err)
	}
	return nil
}

// GrantPrivileges grants the privileges which the `role` role needs
// in order to run the serving queries over the car-wash tables,
// including the usage of their identifier generating sequences.
// Tables must have been created beforehand.
func GrantPrivileges(
	ctx context.Context, tx repo.Tx, role repo.Role,
) error {
	for _, stmt := range []string{
		`GRANT USAGE ON SCHEMA public TO %s`,
		`GRANT SELECT, INSERT, UPDATE, DELETE
	ON ALL TABLES IN SCHEMA public TO %s`,
		`GRANT USAGE ON ALL SEQUENCES IN SCHEMA public TO %s`,
	} {
		_, err := tx.Exec(ctx, fmt.Sprintf(stmt, role))
		if err != nil {
			return fmt.Errorf(
				"granting privileges to role %q: %w", role, err,
			)
		}
	}
	return nil
}

// ChangePassword updates the password of the `role` role in the
// current transaction. The `hasher` will be used for hashing of the
// `password` before sending it to the DBMS, so it may not leak in
// plaintext through the server query logs. The hasher format must
// conform with the DBMS expected format, that is, scram-sha-256 for
// a PostgreSQL instance with the default password_encryption.
func ChangePassword(
	ctx context.Context,
	tx repo.Tx,
	hasher scram.Hasher,
	role repo.Role,
	password string,
) error {
	h, err := hasher.Hash(password, "", 15000)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	if strings.ContainsAny(h, `'"`) {
		return fmt.Errorf("unexpected quote in hashed password")
	}
	_, err = tx.Exec(ctx, fmt.Sprintf(
		`ALTER ROLE %s PASSWORD '%s'`, role, h,
	))
	if err != nil {
		return fmt.Errorf("altering role %q password: %w", role, err)
	}
	return nil
}
