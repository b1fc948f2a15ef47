package vehiclesrp

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

func (vehicles *Repo) Conn(c repo.Conn) repo.VehiclesConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) Create(ctx context.Context, v model.Vehicle) (*model.Vehicle, error) {
	return Create(ctx, cq.Conn, v)
}

func (cq connQueryer) List(ctx context.Context) ([]model.Vehicle, error) {
	return List(ctx, cq.Conn)
}

func (cq connQueryer) FindByID(ctx context.Context, vid int64) (*model.Vehicle, error) {
	return FindByID(ctx, cq.Conn, vid)
}

func (cq connQueryer) FindByPlate(ctx context.Context, plate string) (*model.Vehicle, error) {
	return FindByPlate(ctx, cq.Conn, plate)
}

func (cq connQueryer) Count(ctx context.Context) (int64, error) {
	return Count(ctx, cq.Conn)
}

type txQueryer struct {
	*postgres.Tx
}

func (vehicles *Repo) Tx(tx repo.Tx) repo.VehiclesTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) Create(ctx context.Context, v model.Vehicle) (*model.Vehicle, error) {
	return Create(ctx, tq.Tx, v)
}

func (tq txQueryer) List(ctx context.Context) ([]model.Vehicle, error) {
	return List(ctx, tq.Tx)
}

func (tq txQueryer) FindByID(ctx context.Context, vid int64) (*model.Vehicle, error) {
	return FindByID(ctx, tq.Tx, vid)
}

func (tq txQueryer) FindByPlate(ctx context.Context, plate string) (*model.Vehicle, error) {
	return FindByPlate(ctx, tq.Tx, plate)
}

func (tq txQueryer) Count(ctx context.Context) (int64, error) {
	return Count(ctx, tq.Tx)
}
