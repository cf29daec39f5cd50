package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/omosemola/my-ecommerce-web/internal/model"
)

type PgUserRepository struct {
	DB *pgxpool.Pool
}

func NewPgUserRepository(db *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{DB: db}
}

func (r *PgUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	q := `SELECT userid, name, email, passwordhash, phone, country, created_at
		FROM users WHERE email=$1`
	var u model.User
	err := r.DB.QueryRow(ctx, q, email).Scan(&u.ID, &u.Name, &u.Email,
		&u.PasswordHash, &u.Phone, &u.Country, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, &model.StorageError{Op: "get user", Err: err}
	}
	return &u, nil
}

func (r *PgUserRepository) Create(ctx context.Context, u *model.User) (*model.User, error) {
	u.CreatedAt = time.Now()
	q := `INSERT INTO users (name, email, passwordhash, phone, country, created_at)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING userid`
	if err := r.DB.QueryRow(ctx, q, u.Name, u.Email, u.PasswordHash, u.Phone,
		u.Country, u.CreatedAt).Scan(&u.ID); err != nil {
		return nil, &model.StorageError{Op: "create user", Err: err}
	}
	return u, nil
}
