package servicesrp

import (
	"context"
	"time"

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

func (services *Repo) Conn(c repo.Conn) repo.ServicesConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) Create(ctx context.Context, s model.Service) (*model.Service, error) {
	return Create(ctx, cq.Conn, s)
}

func (cq connQueryer) List(ctx context.Context) ([]model.Service, error) {
	return List(ctx, cq.Conn)
}

func (cq connQueryer) ListByStatus(ctx context.Context, status model.ServiceStatus) ([]model.Service, error) {
	return ListByStatus(ctx, cq.Conn, status)
}

func (cq connQueryer) ListByVehicle(ctx context.Context, vid int64) ([]model.Service, error) {
	return ListByVehicle(ctx, cq.Conn, vid)
}

func (cq connQueryer) FindByID(ctx context.Context, sid int64) (*model.Service, error) {
	return FindByID(ctx, cq.Conn, sid)
}

func (cq connQueryer) UpdateStatus(ctx context.Context, sid int64, status model.ServiceStatus, endTime *time.Time) (*model.Service, error) {
	return UpdateStatus(ctx, cq.Conn, sid, status, endTime)
}

func (cq connQueryer) CountOpenByEmployee(ctx context.Context, eid int64) (int64, error) {
	return CountOpenByEmployee(ctx, cq.Conn, eid)
}

func (cq connQueryer) CountByStatus(ctx context.Context, eid int64, status model.ServiceStatus) (int64, error) {
	return CountByStatus(ctx, cq.Conn, eid, status)
}

type txQueryer struct {
	*postgres.Tx
}

func (services *Repo) Tx(tx repo.Tx) repo.ServicesTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) Create(ctx context.Context, s model.Service) (*model.Service, error) {
	return Create(ctx, tq.Tx, s)
}

func (tq txQueryer) List(ctx context.Context) ([]model.Service, error) {
	return List(ctx, tq.Tx)
}

func (tq txQueryer) ListByStatus(ctx context.Context, status model.ServiceStatus) ([]model.Service, error) {
	return ListByStatus(ctx, tq.Tx, status)
}

func (tq txQueryer) ListByVehicle(ctx context.Context, vid int64) ([]model.Service, error) {
	return ListByVehicle(ctx, tq.Tx, vid)
}

func (tq txQueryer) FindByID(ctx context.Context, sid int64) (*model.Service, error) {
	return FindByID(ctx, tq.Tx, sid)
}

func (tq txQueryer) UpdateStatus(ctx context.Context, sid int64, status model.ServiceStatus, endTime *time.Time) (*model.Service, error) {
	return UpdateStatus(ctx, tq.Tx, sid, status, endTime)
}

func (tq txQueryer) CountOpenByEmployee(ctx context.Context, eid int64) (int64, error) {
	return CountOpenByEmployee(ctx, tq.Tx, eid)
}

func (tq txQueryer) CountByStatus(ctx context.Context, eid int64, status model.ServiceStatus) (int64, error) {
	return CountByStatus(ctx, tq.Tx, eid, status)
}
