package suppliesrp

import (
	"context"

	"github.com/lavadero/cwweb/pkg/adapter/db/postgres"
	"github.com/lavadero/cwweb/pkg/core/model"
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

func (supplies *Repo) Conn(c repo.Conn) repo.SuppliesConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) Create(ctx context.Context, s model.Supply) (*model.Supply, error) {
	return Create(ctx, cq.Conn, s)
}

func (cq connQueryer) List(ctx context.Context) ([]model.Supply, error) {
	return List(ctx, cq.Conn)
}

func (cq connQueryer) FindByID(ctx context.Context, sid int64) (*model.Supply, error) {
	return FindByID(ctx, cq.Conn, sid)
}

type txQueryer struct {
	*postgres.Tx
}

func (supplies *Repo) Tx(tx repo.Tx) repo.SuppliesTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) Create(ctx context.Context, s model.Supply) (*model.Supply, error) {
	return Create(ctx, tq.Tx, s)
}

func (tq txQueryer) List(ctx context.Context) ([]model.Supply, error) {
	return List(ctx, tq.Tx)
}

func (tq txQueryer) FindByID(ctx context.Context, sid int64) (*model.Supply, error) {
	return FindByID(ctx, tq.Tx, sid)
}

func (tq txQueryer) RecordUsage(ctx context.Context, u model.UsedSupply) (*model.UsedSupply, error) {
	return RecordUsage(ctx, tq.Tx, u)
}
