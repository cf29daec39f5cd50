package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/omosemola/my-ecommerce-web/internal/model"
)

// PgOrderRepository is the Postgres order store. Items, customer and the
// shipping address live as jsonb next to the money columns; the unique index
// on paymentref enforces one order per verified payment.
type PgOrderRepository struct {
	DB *pgxpool.Pool
}

func NewPgOrderRepository(db *pgxpool.Pool) *PgOrderRepository {
	return &PgOrderRepository{DB: db}
}

// Create upserts keyed on paymentref when present, otherwise inserts.
// An id conflict surfaces as the driver's unique-violation error.
func (r *PgOrderRepository) Create(ctx context.Context, o *model.Order) error {
	customer, items, shipping, err := marshalOrderDocs(o)
	if err != nil {
		return err
	}

	if o.PaymentReference != "" {
		q := `
			INSERT INTO orders
				(orderid, customer, shipping, items, subtotal, tax, shippingcost, total,
				 status, paymentmethod, paymentref, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			ON CONFLICT (paymentref) DO UPDATE
			SET status = EXCLUDED.status
		`
		_, err = r.DB.Exec(ctx, q,
			o.ID, customer, shipping, items, o.Subtotal, o.Tax, o.ShippingCost, o.Total,
			string(o.Status), o.PaymentMethod, o.PaymentReference, o.CreatedAt)
	} else {
		q := `
			INSERT INTO orders
				(orderid, customer, shipping, items, subtotal, tax, shippingcost, total,
				 status, paymentmethod, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`
		_, err = r.DB.Exec(ctx, q,
			o.ID, customer, shipping, items, o.Subtotal, o.Tax, o.ShippingCost, o.Total,
			string(o.Status), o.PaymentMethod, o.CreatedAt)
	}
	if err != nil {
		return &model.StorageError{Op: "create order", Err: err}
	}
	return nil
}

const orderColumns = `orderid, customer, shipping, items, subtotal, tax, shippingcost, total,
	status, paymentmethod, COALESCE(paymentref, ''), created_at`

func (r *PgOrderRepository) FindByID(ctx context.Context, id string) (*model.Order, error) {
	q := `SELECT ` + orderColumns + ` FROM orders WHERE orderid=$1`
	return r.scanOne(r.DB.QueryRow(ctx, q, id))
}

func (r *PgOrderRepository) FindByEmail(ctx context.Context, email string) ([]model.Order, error) {
	q := `SELECT ` + orderColumns + ` FROM orders WHERE customer->>'email' = $1 ORDER BY created_at`
	rows, err := r.DB.Query(ctx, q, email)
	if err != nil {
		return nil, &model.StorageError{Op: "query orders", Err: err}
	}
	defer rows.Close()
	return r.scanAll(rows)
}

func (r *PgOrderRepository) FindByPaymentRef(ctx context.Context, ref string) (*model.Order, error) {
	if ref == "" {
		return nil, model.ErrNotFound
	}
	q := `SELECT ` + orderColumns + ` FROM orders WHERE paymentref=$1`
	return r.scanOne(r.DB.QueryRow(ctx, q, ref))
}

func (r *PgOrderRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM orders WHERE orderid=$1`, id)
	if err != nil {
		return &model.StorageError{Op: "delete order", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *PgOrderRepository) List(ctx context.Context) ([]model.Order, error) {
	q := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at`
	rows, err := r.DB.Query(ctx, q)
	if err != nil {
		return nil, &model.StorageError{Op: "query orders", Err: err}
	}
	defer rows.Close()
	return r.scanAll(rows)
}

func (r *PgOrderRepository) scanOne(row pgx.Row) (*model.Order, error) {
	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, &model.StorageError{Op: "scan order", Err: err}
	}
	return o, nil
}

func (r *PgOrderRepository) scanAll(rows pgx.Rows) ([]model.Order, error) {
	var out []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, &model.StorageError{Op: "scan order", Err: err}
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	var customer, shipping, items []byte
	var status string
	if err := row.Scan(&o.ID, &customer, &shipping, &items, &o.Subtotal, &o.Tax,
		&o.ShippingCost, &o.Total, &status, &o.PaymentMethod, &o.PaymentReference,
		&o.CreatedAt); err != nil {
		return nil, err
	}
	o.Status = model.OrderStatus(status)
	if err := json.Unmarshal(customer, &o.Customer); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(shipping, &o.Shipping); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, err
	}
	return &o, nil
}

func marshalOrderDocs(o *model.Order) (customer, items, shipping []byte, err error) {
	if customer, err = json.Marshal(o.Customer); err != nil {
		return nil, nil, nil, &model.StorageError{Op: "encode order", Err: err}
	}
	if items, err = json.Marshal(o.Items); err != nil {
		return nil, nil, nil, &model.StorageError{Op: "encode order", Err: err}
	}
	if shipping, err = json.Marshal(o.Shipping); err != nil {
		return nil, nil, nil, &model.StorageError{Op: "encode order", Err: err}
	}
	return customer, items, shipping, nil
}
