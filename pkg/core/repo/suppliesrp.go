package repo

import (
	"context"

	"github.com/lavadero/cwweb/pkg/core/model"
)

type SuppliesConnQueryer interface {
	SuppliesQueryer
}

// SuppliesTxQueryer additionally supports the usage recording which
// touches two tables (used_supplies insert and the supplies stock
// decrement) and therefore is only reachable through a transaction.
type SuppliesTxQueryer interface {
	SuppliesQueryer
	RecordUsage(ctx context.Context, u model.UsedSupply) (*model.UsedSupply, error)
}

// SuppliesQueryer supports the supplies table queries. Create returns
// a Conflict classified error when the supply name is already taken.
type SuppliesQueryer interface {
	Create(ctx context.Context, s model.Supply) (*model.Supply, error)
	List(ctx context.Context) ([]model.Supply, error)
	FindByID(ctx context.Context, sid int64) (*model.Supply, error)
}

type Supplies interface {
	Conn(Conn) SuppliesConnQueryer
	Tx(Tx) SuppliesTxQueryer
}
