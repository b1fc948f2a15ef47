// Package reportsrp is the adapter repository of the read-only
// reporting aggregations. Unlike the per-table repositories, it runs
// raw aggregate SQL over the services table and scans single result
// rows through the repo.Rows interface.
package reportsrp

import (
	"context"
	"fmt"
	"time"

	"github.com/lavadero/cwweb/pkg/adapter/db/postgres"
	"github.com/lavadero/cwweb/pkg/core/model"
)

func CountOpen[Q postgres.Queryer](ctx context.Context, q Q) (int64, error) {
	var n int64
	err := scanOne(ctx, q, `
		SELECT COUNT(*) FROM services WHERE status IN ($1, $2)`,
		[]any{
			model.ServiceStatusPending.String(),
			model.ServiceStatusInProgress.String(),
		},
		&n,
	)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// SumIncome sums the total cost and counts the service orders which
// were completed with an end time within the inclusive [from, to]
// window. A window with no completed orders yields zeros, not an
// error.
func SumIncome[Q postgres.Queryer](ctx context.Context, q Q, from, to time.Time) (float64, int64, error) {
	var total float64
	var count int64
	err := scanOne(ctx, q, `
		SELECT COALESCE(SUM(total_cost), 0), COUNT(*)
		FROM services
		WHERE status=$1 AND end_time BETWEEN $2 AND $3`,
		[]any{model.ServiceStatusCompleted.String(), from, to},
		&total, &count,
	)
	if err != nil {
		return 0, 0, err
	}
	return total, count, nil
}

// AverageMinutes computes the arithmetic mean of
// (end_time - start_time), in minutes, over the completed and
// timestamped service orders carrying the given denormalized type
// name, along with the number of such orders. A zero count means no
// order completed yet and the caller should fall back to the type's
// base duration estimate.
func AverageMinutes[Q postgres.Queryer](ctx context.Context, q Q, typeName string) (float64, int64, error) {
	var avg float64
	var count int64
	err := scanOne(ctx, q, `
		SELECT
			COALESCE(AVG(EXTRACT(EPOCH FROM end_time - start_time) / 60.0), 0),
			COUNT(*)
		FROM services
		WHERE service_type=$1 AND status=$2 AND end_time IS NOT NULL`,
		[]any{typeName, model.ServiceStatusCompleted.String()},
		&avg, &count,
	)
	if err != nil {
		return 0, 0, err
	}
	return avg, count, nil
}

func scanOne[Q postgres.Queryer](ctx context.Context, q Q, sql string, args []any, dest ...any) error {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return fmt.Errorf("iterating rows: %w", err)
		}
		return fmt.Errorf("expected one row, but got none")
	}
	if err := rows.Scan(dest...); err != nil {
		return fmt.Errorf("scanning row: %w", err)
	}
	return rows.Err()
}
