package typesrp

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

func (types *Repo) Conn(c repo.Conn) repo.ServiceTypesConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) Create(ctx context.Context, t model.ServiceType) (*model.ServiceType, error) {
	return Create(ctx, cq.Conn, t)
}

func (cq connQueryer) List(ctx context.Context) ([]model.ServiceType, error) {
	return List(ctx, cq.Conn)
}

func (cq connQueryer) FindByID(ctx context.Context, tid int64) (*model.ServiceType, error) {
	return FindByID(ctx, cq.Conn, tid)
}

type txQueryer struct {
	*postgres.Tx
}

func (types *Repo) Tx(tx repo.Tx) repo.ServiceTypesTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) Create(ctx context.Context, t model.ServiceType) (*model.ServiceType, error) {
	return Create(ctx, tq.Tx, t)
}

func (tq txQueryer) List(ctx context.Context) ([]model.ServiceType, error) {
	return List(ctx, tq.Tx)
}

func (tq txQueryer) FindByID(ctx context.Context, tid int64) (*model.ServiceType, error) {
	return FindByID(ctx, tq.Tx, tid)
}
