package repo

import (
	"context"
	"time"
)

type ReportsConnQueryer interface {
	ReportsQueryer
}

type ReportsTxQueryer interface {
	ReportsQueryer
}

// ReportsQueryer supports the read-only aggregations over the services
// table which back the reporting use cases.
//
// CountOpen counts the orders with pending or in_progress status.
// SumIncome sums the total cost and counts the orders which were
// completed with an end time within the [from, to] window, both
// boundaries inclusive; it reports zeros (not an error) when no order
// matches. AverageMinutes computes the arithmetic mean of
// (end_time - start_time) in minutes over the completed, timestamped
// orders carrying the given denormalized type name, along with the
// number of such orders (zero when none completed yet).
type ReportsQueryer interface {
	CountOpen(ctx context.Context) (int64, error)
	SumIncome(ctx context.Context, from, to time.Time) (total float64, count int64, err error)
	AverageMinutes(ctx context.Context, typeName string) (avg float64, count int64, err error)
}

type Reports interface {
	Conn(Conn) ReportsConnQueryer
	Tx(Tx) ReportsTxQueryer
}
