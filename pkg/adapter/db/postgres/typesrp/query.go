// Package typesrp is the adapter repository of the service_types
// catalog table.
package typesrp

import (
	"context"
	"fmt"
	"time"

	"github.com/lavadero/cwweb/pkg/adapter/db/postgres"
	"github.com/lavadero/cwweb/pkg/core/cerr"
	"github.com/lavadero/cwweb/pkg/core/model"
)

type gServiceType struct {
	ID           int64  `gorm:"primaryKey"`
	Name         string `gorm:"uniqueIndex"`
	Description  string
	BaseDuration int
	CreatedAt    time.Time
}

func (gt *gServiceType) TableName() string {
	return "service_types"
}

func (gt *gServiceType) Model() *model.ServiceType {
	return &model.ServiceType{
		ID:           gt.ID,
		Name:         gt.Name,
		Description:  gt.Description,
		BaseDuration: gt.BaseDuration,
		CreatedAt:    gt.CreatedAt,
	}
}

func Create[Q postgres.Queryer](ctx context.Context, q Q, t model.ServiceType) (*model.ServiceType, error) {
	gdb := q.GORM(ctx)
	gt := &gServiceType{
		Name:         t.Name,
		Description:  t.Description,
		BaseDuration: t.BaseDuration,
		CreatedAt:    time.Now(),
	}
	if err := gdb.Create(gt).Error; err != nil {
		if postgres.IsUniqueViolation(err) {
			return nil, cerr.Conflict(fmt.Errorf(
				"service type %q already exists", t.Name,
			))
		}
		return nil, fmt.Errorf("query: %w", err)
	}
	return gt.Model(), nil
}

// List returns the catalog in insertion (ID) order; the
// average-service-time report relies on this order for its output
// records.
func List[Q postgres.Queryer](ctx context.Context, q Q) ([]model.ServiceType, error) {
	gdb := q.GORM(ctx)
	var gts []gServiceType
	if err := gdb.Order("id").Find(&gts).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	ts := make([]model.ServiceType, 0, len(gts))
	for i := range gts {
		ts = append(ts, *gts[i].Model())
	}
	return ts, nil
}

func FindByID[Q postgres.Queryer](ctx context.Context, q Q, tid int64) (*model.ServiceType, error) {
	gdb := q.GORM(ctx)
	var gts []gServiceType
	if err := gdb.Where("id=?", tid).Limit(1).Find(&gts).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if n := len(gts); n != 1 {
		return nil, cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", n),
		)
	}
	return gts[0].Model(), nil
}
