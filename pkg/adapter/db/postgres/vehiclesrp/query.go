// Package vehiclesrp is the adapter repository of the vehicles table.
package vehiclesrp

import (
	"context"
	"fmt"

	"github.com/lavadero/cwweb/pkg/adapter/db/postgres"
	"github.com/lavadero/cwweb/pkg/core/cerr"
	"github.com/lavadero/cwweb/pkg/core/model"
)

type gVehicle struct {
	ID          int64  `gorm:"primaryKey"`
	PlateNumber string `gorm:"uniqueIndex"`
	VehicleType string
	ClientName  string
	ClientPhone string
}

func (gv *gVehicle) TableName() string {
	return "vehicles"
}

func (gv *gVehicle) Model() (*model.Vehicle, error) {
	t, err := model.ParseVehicleType(gv.VehicleType)
	if err != nil {
		return nil, fmt.Errorf(
			"vehicle %d type %q: %w", gv.ID, gv.VehicleType, err,
		)
	}
	return &model.Vehicle{
		ID:          gv.ID,
		PlateNumber: gv.PlateNumber,
		VehicleType: t,
		ClientName:  gv.ClientName,
		ClientPhone: gv.ClientPhone,
	}, nil
}

func Create[Q postgres.Queryer](ctx context.Context, q Q, v model.Vehicle) (*model.Vehicle, error) {
	gdb := q.GORM(ctx)
	gv := &gVehicle{
		PlateNumber: v.PlateNumber,
		VehicleType: v.VehicleType.String(),
		ClientName:  v.ClientName,
		ClientPhone: v.ClientPhone,
	}
	if err := gdb.Create(gv).Error; err != nil {
		if postgres.IsUniqueViolation(err) {
			return nil, cerr.Conflict(fmt.Errorf(
				"plate number %q is already registered",
				v.PlateNumber,
			))
		}
		return nil, fmt.Errorf("query: %w", err)
	}
	return gv.Model()
}

func List[Q postgres.Queryer](ctx context.Context, q Q) ([]model.Vehicle, error) {
	gdb := q.GORM(ctx)
	var gvs []gVehicle
	if err := gdb.Order("id").Find(&gvs).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	vs := make([]model.Vehicle, 0, len(gvs))
	for i := range gvs {
		v, err := gvs[i].Model()
		if err != nil {
			return nil, err
		}
		vs = append(vs, *v)
	}
	return vs, nil
}

func FindByID[Q postgres.Queryer](ctx context.Context, q Q, vid int64) (*model.Vehicle, error) {
	return find(ctx, q, "id=?", vid)
}

func FindByPlate[Q postgres.Queryer](ctx context.Context, q Q, plate string) (*model.Vehicle, error) {
	return find(ctx, q, "plate_number=?", plate)
}

func find[Q postgres.Queryer](ctx context.Context, q Q, cond string, arg any) (*model.Vehicle, error) {
	gdb := q.GORM(ctx)
	var gvs []gVehicle
	if err := gdb.Where(cond, arg).Limit(1).Find(&gvs).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if n := len(gvs); n != 1 {
		return nil, cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", n),
		)
	}
	return gvs[0].Model()
}

func Count[Q postgres.Queryer](ctx context.Context, q Q) (int64, error) {
	gdb := q.GORM(ctx)
	var n int64
	if err := gdb.Model(&gVehicle{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("query: %w", err)
	}
	return n, nil
}
