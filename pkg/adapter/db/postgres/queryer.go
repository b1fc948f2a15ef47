package postgres

import (
	"context"

	"github.com/lavadero/cwweb/pkg/core/repo"
	"gorm.io/gorm"
)

// Queryer is the type-set of *Conn and *Tx, so a repository query
// function can be written once (as a generic function) and run on a
// bare connection and within a transaction alike. The GORM method is
// declared explicitly, so it is callable on the type parameter.
type Queryer interface {
	*Conn | *Tx
	repo.Queryer

	GORM(ctx context.Context) *gorm.DB
}
