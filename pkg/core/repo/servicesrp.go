package repo

import (
	"context"
	"time"

	"github.com/lavadero/cwweb/pkg/core/model"
)

type ServicesConnQueryer interface {
	ServicesQueryer
}

type ServicesTxQueryer interface {
	ServicesQueryer
}

// ServicesQueryer supports the services table queries.
//
// UpdateStatus overwrites the status of one service order without any
// transition guard and stamps endTime as given (a nil endTime leaves
// the column untouched); it returns a NotFound classified error when
// the order does not exist. ListByVehicle returns the vehicle's orders
// sorted by start time descending. CountOpenByEmployee counts the
// employee's pending and in-progress orders and CountByStatus counts
// the employee's orders with one exact status; both are computed from
// the current rows on every call since the workload is never stored.
type ServicesQueryer interface {
	Create(ctx context.Context, s model.Service) (*model.Service, error)
	List(ctx context.Context) ([]model.Service, error)
	ListByStatus(ctx context.Context, status model.ServiceStatus) ([]model.Service, error)
	ListByVehicle(ctx context.Context, vid int64) ([]model.Service, error)
	FindByID(ctx context.Context, sid int64) (*model.Service, error)
	UpdateStatus(ctx context.Context, sid int64, status model.ServiceStatus, endTime *time.Time) (*model.Service, error)
	CountOpenByEmployee(ctx context.Context, eid int64) (int64, error)
	CountByStatus(ctx context.Context, eid int64, status model.ServiceStatus) (int64, error)
}

type Services interface {
	Conn(Conn) ServicesConnQueryer
	Tx(Tx) ServicesTxQueryer
}
