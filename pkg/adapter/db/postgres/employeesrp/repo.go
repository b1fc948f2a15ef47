package employeesrp

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

func (employees *Repo) Conn(c repo.Conn) repo.EmployeesConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) Create(ctx context.Context, e model.Employee) (*model.Employee, error) {
	return Create(ctx, cq.Conn, e)
}

func (cq connQueryer) List(ctx context.Context) ([]model.Employee, error) {
	return List(ctx, cq.Conn)
}

func (cq connQueryer) FindByID(ctx context.Context, eid int64) (*model.Employee, error) {
	return FindByID(ctx, cq.Conn, eid)
}

func (cq connQueryer) SetActive(ctx context.Context, eid int64, active bool) (*model.Employee, error) {
	return SetActive(ctx, cq.Conn, eid, active)
}

func (cq connQueryer) CountActive(ctx context.Context) (int64, error) {
	return CountActive(ctx, cq.Conn)
}

type txQueryer struct {
	*postgres.Tx
}

func (employees *Repo) Tx(tx repo.Tx) repo.EmployeesTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) Create(ctx context.Context, e model.Employee) (*model.Employee, error) {
	return Create(ctx, tq.Tx, e)
}

func (tq txQueryer) List(ctx context.Context) ([]model.Employee, error) {
	return List(ctx, tq.Tx)
}

func (tq txQueryer) FindByID(ctx context.Context, eid int64) (*model.Employee, error) {
	return FindByID(ctx, tq.Tx, eid)
}

func (tq txQueryer) SetActive(ctx context.Context, eid int64, active bool) (*model.Employee, error) {
	return SetActive(ctx, tq.Tx, eid, active)
}

func (tq txQueryer) CountActive(ctx context.Context) (int64, error) {
	return CountActive(ctx, tq.Tx)
}
