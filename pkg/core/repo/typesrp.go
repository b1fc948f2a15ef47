package repo

import (
	"context"

	"github.com/lavadero/cwweb/pkg/core/model"
)

type ServiceTypesConnQueryer interface {
	ServiceTypesQueryer
}

type ServiceTypesTxQueryer interface {
	ServiceTypesQueryer
}

// ServiceTypesQueryer supports the service_types catalog queries.
// List returns the catalog in insertion (ID) order, which also fixes
// the record order of the average-service-time report.
type ServiceTypesQueryer interface {
	Create(ctx context.Context, t model.ServiceType) (*model.ServiceType, error)
	List(ctx context.Context) ([]model.ServiceType, error)
	FindByID(ctx context.Context, tid int64) (*model.ServiceType, error)
}

type ServiceTypes interface {
	Conn(Conn) ServiceTypesConnQueryer
	Tx(Tx) ServiceTypesTxQueryer
}
