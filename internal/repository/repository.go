// Package repository persists products, users and orders. Two backends
// implement the same interfaces: flat JSON files (one array per entity,
// rewritten whole under a lock) and Postgres via pgx.
package repository

import (
	"context"

	"github.com/omosemola/my-ecommerce-web/internal/model"
)

// OrderRepository stores committed order records.
//
// Create has upsert semantics keyed on the order id and, when set, on the
// payment reference: re-delivery of the same provider callback must not
// produce a duplicate record. Readers only ever see fully committed writes.
type OrderRepository interface {
	Create(ctx context.Context, o *model.Order) error
	FindByID(ctx context.Context, id string) (*model.Order, error)
	FindByEmail(ctx context.Context, email string) ([]model.Order, error)
	FindByPaymentRef(ctx context.Context, ref string) (*model.Order, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]model.Order, error)
}

type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	Create(ctx context.Context, p *model.Product) (*model.Product, error)
	Update(ctx context.Context, id int64, upd model.ProductUpdate) (*model.Product, error)
	Delete(ctx context.Context, id int64) error
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, u *model.User) (*model.User, error)
}
