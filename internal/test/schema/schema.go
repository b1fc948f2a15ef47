// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package schema is an internal helper for the test packages. It
// verifies that the car-wash tables and their expected columns are in
// place after a database initialization, in addition to the presence
// of the development or production suitable initial data rows.
// Presence of extra data rows is acceptable, so verifications can run
// against a database which test cases have updated already.
package schema

import (
	"context"
	"fmt"
	"testing"

	"github.com/lavadero/cwweb/pkg/core/repo"
	"github.com/stretchr/testify/assert"
)

// Verifier wraps a database connection, providing the schema and
// initial data verification methods. Failures are reported using the
// `t` testing argument of each method.
type Verifier struct {
	c repo.Conn // database connection which is used for testing
}

// New instantiates a Verifier struct, wrapping the `c` database
// connection. Since Verifier fields are not exported, the New function
// is required for its initialization.
func New(c repo.Conn) *Verifier {
	return &Verifier{c}
}

// tableColumns queries select all expected columns of one table, so a
// missing table or a missing column fails the verification with the
// DBMS reported error.
var tableColumns = map[string]string{
	"vehicles": `SELECT id, plate_number, vehicle_type, client_name,
	client_phone FROM vehicles LIMIT 1`,
	"employees": `SELECT id, name, position, shift, active
	FROM employees LIMIT 1`,
	"service_types": `SELECT id, name, description, base_duration,
	created_at FROM service_types LIMIT 1`,
	"services": `SELECT id, vehicle_id, employee_id, service_type_id,
	service_type, status, start_time, end_time, total_cost, notes
	FROM services LIMIT 1`,
	"supplies": `SELECT id, name, description,
	current_stock, minimum_stock, unit
	FROM supplies LIMIT 1`,
	"used_supplies": `SELECT id, service_id, supply_id, quantity
	FROM used_supplies LIMIT 1`,
}

// VerifySchema ensures that all car-wash tables exist with their
// expected columns. The schema contents (i.e., existing rows) are not
// checked.
func (v *Verifier) VerifySchema(ctx context.Context, t *testing.T) {
	for table, q := range tableColumns {
		rows, err := v.c.Query(ctx, q)
		if !assert.NoError(t, err, "querying table %q", table) {
			continue
		}
		rows.Close()
		assert.NoError(t, rows.Err(), "closing rows of %q", table)
	}
}

// VerifyProdData checks for presence of the production suitable
// initial data, that is, the washing services catalog entries.
func (v *Verifier) VerifyProdData(ctx context.Context, t *testing.T) {
	n, err := v.count(
		ctx, `SELECT COUNT(*) FROM service_types
	WHERE name IN ($1, $2, $3, $4, $5)`,
		"Basic Wash", "Full Wash", "Waxing",
		"Interior Detailing", "Premium Detail",
	)
	if assert.NoError(t, err, "counting catalog entries") {
		assert.Equal(t, int64(5), n, "incomplete catalog")
	}
}

// VerifyDevData checks for presence of the development suitable
// initial data, covering all entities in addition to the catalog.
func (v *Verifier) VerifyDevData(ctx context.Context, t *testing.T) {
	v.VerifyProdData(ctx, t)
	for table, atLeast := range map[string]int64{
		"vehicles":  3,
		"employees": 3,
		"supplies":  4,
		"services":  3,
	} {
		n, err := v.count(
			ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", table),
		)
		if assert.NoError(t, err, "counting rows of %q", table) {
			assert.GreaterOrEqual(
				t, n, atLeast, "missing sample rows in %q", table,
			)
		}
	}
}

func (v *Verifier) count(
	ctx context.Context, q string, args ...any,
) (int64, error) {
	rows, err := v.c.Query(ctx, q, args...)
	if err != nil {
		return 0, fmt.Errorf("querying: %w", err)
	}
	defer rows.Close()
	if !rows.Next() {
		return 0, fmt.Errorf("expected one row, but got none")
	}
	var n int64
	if err := rows.Scan(&n); err != nil {
		return 0, fmt.Errorf("scanning count: %w", err)
	}
	return n, rows.Err()
}
