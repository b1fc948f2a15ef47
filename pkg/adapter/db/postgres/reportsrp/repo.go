package reportsrp

import (
	"context"
	"time"

	"github.com/lavadero/cwweb/pkg/adapter/db/postgres"
	"github.com/lavadero/cwweb/pkg/core/repo"
)

type Repo struct {
}

func New() *Repo {
	return &Repo{}
}

type connQueryer struct {
	*postgres.Conn
}

func (reports *Repo) Conn(c repo.Conn) repo.ReportsConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) CountOpen(ctx context.Context) (int64, error) {
	return CountOpen(ctx, cq.Conn)
}

func (cq connQueryer) SumIncome(ctx context.Context, from, to time.Time) (float64, int64, error) {
	return SumIncome(ctx, cq.Conn, from, to)
}

func (cq connQueryer) AverageMinutes(ctx context.Context, typeName string) (float64, int64, error) {
	return AverageMinutes(ctx, cq.Conn, typeName)
}

type txQueryer struct {
	*postgres.Tx
}

func (reports *Repo) Tx(tx repo.Tx) repo.ReportsTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) CountOpen(ctx context.Context) (int64, error) {
	return CountOpen(ctx, tq.Tx)
}

func (tq txQueryer) SumIncome(ctx context.Context, from, to time.Time) (float64, int64, error) {
	return SumIncome(ctx, tq.Tx, from, to)
}

func (tq txQueryer) AverageMinutes(ctx context.Context, typeName string) (float64, int64, error) {
	return AverageMinutes(ctx, tq.Tx, typeName)
}
