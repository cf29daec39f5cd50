package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/omosemola/my-ecommerce-web/internal/model"
)

type PgProductRepository struct {
	DB *pgxpool.Pool
}

func NewPgProductRepository(db *pgxpool.Pool) *PgProductRepository {
	return &PgProductRepository{DB: db}
}

func (r *PgProductRepository) List(ctx context.Context) ([]model.Product, error) {
	q := `SELECT productid, name, price, image, description, category, created_at, updated_at
		FROM products ORDER BY productid`
	rows, err := r.DB.Query(ctx, q)
	if err != nil {
		return nil, &model.StorageError{Op: "query products", Err: err}
	}
	defer rows.Close()

	var out []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Image, &p.Description,
			&p.Category, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, &model.StorageError{Op: "scan product", Err: err}
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PgProductRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	q := `SELECT productid, name, price, image, description, category, created_at, updated_at
		FROM products WHERE productid=$1`
	var p model.Product
	err := r.DB.QueryRow(ctx, q, id).Scan(&p.ID, &p.Name, &p.Price, &p.Image,
		&p.Description, &p.Category, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, &model.StorageError{Op: "get product", Err: err}
	}
	return &p, nil
}

func (r *PgProductRepository) Create(ctx context.Context, p *model.Product) (*model.Product, error) {
	now := time.Now()
	q := `INSERT INTO products (name, price, image, description, category, created_at)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING productid`
	if err := r.DB.QueryRow(ctx, q, p.Name, p.Price, p.Image, p.Description,
		p.Category, now).Scan(&p.ID); err != nil {
		return nil, &model.StorageError{Op: "create product", Err: err}
	}
	p.CreatedAt = &now
	return p, nil
}

func (r *PgProductRepository) Update(ctx context.Context, id int64, upd model.ProductUpdate) (*model.Product, error) {
	p, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyProductUpdate(p, upd)

	q := `UPDATE products SET name=$1, price=$2, image=$3, description=$4, category=$5, updated_at=$6
		WHERE productid=$7`
	if _, err := r.DB.Exec(ctx, q, p.Name, p.Price, p.Image, p.Description,
		p.Category, p.UpdatedAt, id); err != nil {
		return nil, &model.StorageError{Op: "update product", Err: err}
	}
	return p, nil
}

func (r *PgProductRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM products WHERE productid=$1`, id)
	if err != nil {
		return &model.StorageError{Op: "delete product", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
