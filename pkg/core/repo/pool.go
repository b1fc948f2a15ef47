// Package repo defines the interfaces which the use cases layer
// expects from the persistence layer: the connection pool, single
// connections and transactions, and one repository interface per
// database table. The adapter layer (pkg/adapter/db/postgres)
// implements these interfaces, so the core layer stays independent
// of the actual DBMS and ORM choices.
package repo

import "context"

type ConnHandler func(context.Context, Conn) error

type Pool interface {
	Conn(ctx context.Context, handler ConnHandler) error
	Close() error
}
