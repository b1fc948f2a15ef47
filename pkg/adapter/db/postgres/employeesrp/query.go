// Package employeesrp is the adapter repository of the employees
// table.
package employeesrp

import (
	"context"
	"fmt"

	"github.com/lavadero/cwweb/pkg/adapter/db/postgres"
	"github.com/lavadero/cwweb/pkg/core/cerr"
	"github.com/lavadero/cwweb/pkg/core/model"
	"gorm.io/gorm/clause"
)

type gEmployee struct {
	ID       int64 `gorm:"primaryKey"`
	Name     string
	Position string
	Shift    string
	Active   bool
}

func (ge *gEmployee) TableName() string {
	return "employees"
}

func (ge *gEmployee) Model() *model.Employee {
	return &model.Employee{
		ID:       ge.ID,
		Name:     ge.Name,
		Position: ge.Position,
		Shift:    ge.Shift,
		Active:   ge.Active,
	}
}

func Create[Q postgres.Queryer](ctx context.Context, q Q, e model.Employee) (*model.Employee, error) {
	gdb := q.GORM(ctx)
	ge := &gEmployee{
		Name:     e.Name,
		Position: e.Position,
		Shift:    e.Shift,
		Active:   e.Active,
	}
	if err := gdb.Create(ge).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return ge.Model(), nil
}

func List[Q postgres.Queryer](ctx context.Context, q Q) ([]model.Employee, error) {
	gdb := q.GORM(ctx)
	var ges []gEmployee
	if err := gdb.Order("id").Find(&ges).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	es := make([]model.Employee, 0, len(ges))
	for i := range ges {
		es = append(es, *ges[i].Model())
	}
	return es, nil
}

func FindByID[Q postgres.Queryer](ctx context.Context, q Q, eid int64) (*model.Employee, error) {
	gdb := q.GORM(ctx)
	var ges []gEmployee
	if err := gdb.Where("id=?", eid).Limit(1).Find(&ges).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if n := len(ges); n != 1 {
		return nil, cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", n),
		)
	}
	return ges[0].Model(), nil
}

func SetActive[Q postgres.Queryer](ctx context.Context, q Q, eid int64, active bool) (*model.Employee, error) {
	gdb := q.GORM(ctx)
	var ges []gEmployee
	gdb.Model(&ges).Clauses(clause.Returning{}).Select(
		"active",
	).Where(
		"id=?", eid,
	).Updates(gEmployee{
		Active: active,
	})
	if err := gdb.Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if n := len(ges); n != 1 {
		return nil, cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", n),
		)
	}
	return ges[0].Model(), nil
}

func CountActive[Q postgres.Queryer](ctx context.Context, q Q) (int64, error) {
	gdb := q.GORM(ctx)
	var n int64
	err := gdb.Model(&gEmployee{}).Where("active").Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("query: %w", err)
	}
	return n, nil
}
