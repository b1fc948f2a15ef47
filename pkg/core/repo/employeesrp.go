package repo

import (
	"context"

	"github.com/lavadero/cwweb/pkg/core/model"
)

type EmployeesConnQueryer interface {
	EmployeesQueryer
}

type EmployeesTxQueryer interface {
	EmployeesQueryer
}

// EmployeesQueryer supports the employees table queries. The returned
// models carry a zero CurrentWorkload; deriving the workload from the
// services table is the use case layer's responsibility.
type EmployeesQueryer interface {
	Create(ctx context.Context, e model.Employee) (*model.Employee, error)
	List(ctx context.Context) ([]model.Employee, error)
	FindByID(ctx context.Context, eid int64) (*model.Employee, error)
	SetActive(ctx context.Context, eid int64, active bool) (*model.Employee, error)
	CountActive(ctx context.Context) (int64, error)
}

type Employees interface {
	Conn(Conn) EmployeesConnQueryer
	Tx(Tx) EmployeesTxQueryer
}
