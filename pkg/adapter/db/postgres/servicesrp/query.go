// Package servicesrp is the adapter repository of the services table,
// holding the service order rows.
package servicesrp

import (
	"context"
	"fmt"
	"time"

	"github.com/lavadero/cwweb/pkg/adapter/db/postgres"
	"github.com/lavadero/cwweb/pkg/core/cerr"
	"github.com/lavadero/cwweb/pkg/core/model"
	"gorm.io/gorm/clause"
)

type gService struct {
	ID            int64 `gorm:"primaryKey"`
	VehicleID     int64
	EmployeeID    int64
	ServiceTypeID int64
	ServiceType   string
	Status        string
	StartTime     time.Time
	EndTime       *time.Time
	TotalCost     float64
	Notes         string
}

func (gs *gService) TableName() string {
	return "services"
}

func (gs *gService) Model() (*model.Service, error) {
	st, err := model.ParseServiceStatus(gs.Status)
	if err != nil {
		return nil, fmt.Errorf(
			"service %d status %q: %w", gs.ID, gs.Status, err,
		)
	}
	return &model.Service{
		ID:            gs.ID,
		VehicleID:     gs.VehicleID,
		EmployeeID:    gs.EmployeeID,
		ServiceTypeID: gs.ServiceTypeID,
		ServiceType:   gs.ServiceType,
		Status:        st,
		StartTime:     gs.StartTime,
		EndTime:       gs.EndTime,
		TotalCost:     gs.TotalCost,
		Notes:         gs.Notes,
	}, nil
}

func Create[Q postgres.Queryer](ctx context.Context, q Q, s model.Service) (*model.Service, error) {
	gdb := q.GORM(ctx)
	gs := &gService{
		VehicleID:     s.VehicleID,
		EmployeeID:    s.EmployeeID,
		ServiceTypeID: s.ServiceTypeID,
		ServiceType:   s.ServiceType,
		Status:        s.Status.String(),
		StartTime:     s.StartTime,
		EndTime:       s.EndTime,
		TotalCost:     s.TotalCost,
		Notes:         s.Notes,
	}
	if err := gdb.Create(gs).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return gs.Model()
}

func List[Q postgres.Queryer](ctx context.Context, q Q) ([]model.Service, error) {
	gdb := q.GORM(ctx)
	var gss []gService
	if err := gdb.Order("id").Find(&gss).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return models(gss)
}

func ListByStatus[Q postgres.Queryer](ctx context.Context, q Q, status model.ServiceStatus) ([]model.Service, error) {
	gdb := q.GORM(ctx)
	var gss []gService
	err := gdb.Where(
		"status=?", status.String(),
	).Order("id").Find(&gss).Error
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return models(gss)
}

// ListByVehicle returns the vehicle's service orders sorted by start
// time descending (most recent first). Rows with equal start times
// keep no specified secondary order.
func ListByVehicle[Q postgres.Queryer](ctx context.Context, q Q, vid int64) ([]model.Service, error) {
	gdb := q.GORM(ctx)
	var gss []gService
	err := gdb.Where(
		"vehicle_id=?", vid,
	).Order("start_time DESC").Find(&gss).Error
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return models(gss)
}

func FindByID[Q postgres.Queryer](ctx context.Context, q Q, sid int64) (*model.Service, error) {
	gdb := q.GORM(ctx)
	var gss []gService
	if err := gdb.Where("id=?", sid).Limit(1).Find(&gss).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if n := len(gss); n != 1 {
		return nil, cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", n),
		)
	}
	return gss[0].Model()
}

// UpdateStatus overwrites the status of the sid order and, when
// endTime is non-nil, stamps the end_time column too; a nil endTime
// leaves the column untouched, so a completed order keeps its end
// time through later status overwrites.
func UpdateStatus[Q postgres.Queryer](ctx context.Context, q Q, sid int64, status model.ServiceStatus, endTime *time.Time) (*model.Service, error) {
	gdb := q.GORM(ctx)
	cols := []string{"status"}
	if endTime != nil {
		cols = append(cols, "end_time")
	}
	var gss []gService
	gdb.Model(&gss).Clauses(clause.Returning{}).Select(
		cols,
	).Where(
		"id=?", sid,
	).Updates(gService{
		Status:  status.String(),
		EndTime: endTime,
	})
	if err := gdb.Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if n := len(gss); n != 1 {
		return nil, cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", n),
		)
	}
	return gss[0].Model()
}

func CountOpenByEmployee[Q postgres.Queryer](ctx context.Context, q Q, eid int64) (int64, error) {
	gdb := q.GORM(ctx)
	var n int64
	err := gdb.Model(&gService{}).Where(
		"employee_id=? AND status IN ?",
		eid,
		[]string{
			model.ServiceStatusPending.String(),
			model.ServiceStatusInProgress.String(),
		},
	).Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("query: %w", err)
	}
	return n, nil
}

func CountByStatus[Q postgres.Queryer](ctx context.Context, q Q, eid int64, status model.ServiceStatus) (int64, error) {
	gdb := q.GORM(ctx)
	var n int64
	err := gdb.Model(&gService{}).Where(
		"employee_id=? AND status=?", eid, status.String(),
	).Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("query: %w", err)
	}
	return n, nil
}

func models(gss []gService) ([]model.Service, error) {
	ss := make([]model.Service, 0, len(gss))
	for i := range gss {
		s, err := gss[i].Model()
		if err != nil {
			return nil, err
		}
		ss = append(ss, *s)
	}
	return ss, nil
}
