// Package suppliesrp is the adapter repository of the supplies and
// used_supplies tables.
package suppliesrp

import (
	"context"
	"fmt"

	"github.com/lavadero/cwweb/pkg/adapter/db/postgres"
	"github.com/lavadero/cwweb/pkg/core/cerr"
	"github.com/lavadero/cwweb/pkg/core/model"
)

type gSupply struct {
	ID           int64  `gorm:"primaryKey"`
	Name         string `gorm:"uniqueIndex"`
	Description  string
	CurrentStock float64
	MinimumStock float64
	Unit         string
}

func (gs *gSupply) TableName() string {
	return "supplies"
}

func (gs *gSupply) Model() *model.Supply {
	return &model.Supply{
		ID:           gs.ID,
		Name:         gs.Name,
		Description:  gs.Description,
		CurrentStock: gs.CurrentStock,
		MinimumStock: gs.MinimumStock,
		Unit:         gs.Unit,
	}
}

type gUsedSupply struct {
	ID        int64 `gorm:"primaryKey"`
	ServiceID int64
	SupplyID  int64
	Quantity  float64
}

func (gu *gUsedSupply) TableName() string {
	return "used_supplies"
}

func (gu *gUsedSupply) Model() *model.UsedSupply {
	return &model.UsedSupply{
		ID:        gu.ID,
		ServiceID: gu.ServiceID,
		SupplyID:  gu.SupplyID,
		Quantity:  gu.Quantity,
	}
}

func Create[Q postgres.Queryer](ctx context.Context, q Q, s model.Supply) (*model.Supply, error) {
	gdb := q.GORM(ctx)
	gs := &gSupply{
		Name:         s.Name,
		Description:  s.Description,
		CurrentStock: s.CurrentStock,
		MinimumStock: s.MinimumStock,
		Unit:         s.Unit,
	}
	if err := gdb.Create(gs).Error; err != nil {
		if postgres.IsUniqueViolation(err) {
			return nil, cerr.Conflict(fmt.Errorf(
				"supply %q already exists", s.Name,
			))
		}
		return nil, fmt.Errorf("query: %w", err)
	}
	return gs.Model(), nil
}

func List[Q postgres.Queryer](ctx context.Context, q Q) ([]model.Supply, error) {
	gdb := q.GORM(ctx)
	var gss []gSupply
	if err := gdb.Order("id").Find(&gss).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	ss := make([]model.Supply, 0, len(gss))
	for i := range gss {
		ss = append(ss, *gss[i].Model())
	}
	return ss, nil
}

func FindByID[Q postgres.Queryer](ctx context.Context, q Q, sid int64) (*model.Supply, error) {
	gdb := q.GORM(ctx)
	var gss []gSupply
	if err := gdb.Where("id=?", sid).Limit(1).Find(&gss).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if n := len(gss); n != 1 {
		return nil, cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", n),
		)
	}
	return gss[0].Model(), nil
}

// RecordUsage inserts one used_supplies row and decrements the
// consumed supply's current stock accordingly. It must run within a
// transaction, so both writes commit or roll back together.
func RecordUsage(ctx context.Context, tx *postgres.Tx, u model.UsedSupply) (*model.UsedSupply, error) {
	gdb := tx.GORM(ctx)
	gu := &gUsedSupply{
		ServiceID: u.ServiceID,
		SupplyID:  u.SupplyID,
		Quantity:  u.Quantity,
	}
	if err := gdb.Create(gu).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	n, err := tx.Exec(
		ctx,
		"UPDATE supplies SET current_stock=current_stock-$1 WHERE id=$2",
		u.Quantity, u.SupplyID,
	)
	if err != nil {
		return nil, fmt.Errorf("decrementing stock: %w", err)
	}
	if n != 1 {
		return nil, cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", n),
		)
	}
	return gu.Model(), nil
}
