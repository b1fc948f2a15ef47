package repo

import (
	"context"

	"github.com/lavadero/cwweb/pkg/core/model"
)

type VehiclesConnQueryer interface {
	VehiclesQueryer
}

type VehiclesTxQueryer interface {
	VehiclesQueryer
}

// VehiclesQueryer supports the vehicles table queries. Create returns
// a Conflict classified error when the plate number is already
// registered, while the finder methods return a NotFound classified
// error for absent rows.
type VehiclesQueryer interface {
	Create(ctx context.Context, v model.Vehicle) (*model.Vehicle, error)
	List(ctx context.Context) ([]model.Vehicle, error)
	FindByID(ctx context.Context, vid int64) (*model.Vehicle, error)
	FindByPlate(ctx context.Context, plate string) (*model.Vehicle, error)
	Count(ctx context.Context) (int64, error)
}

type Vehicles interface {
	Conn(Conn) VehiclesConnQueryer
	Tx(Tx) VehiclesTxQueryer
}
