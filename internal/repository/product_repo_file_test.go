package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omosemola/my-ecommerce-web/internal/model"
)

func strp(s string) *string   { return &s }
func f64p(f float64) *float64 { return &f }

func TestFileProductRepoSeedOnlyWhenEmpty(t *testing.T) {
	repo := NewFileProductRepository(t.TempDir())
	ctx := context.Background()

	catalog := []model.Product{
		{ID: 1, Name: "Cartoon Astronaut T-Shirts", Price: 49.00},
		{ID: 2, Name: "Leaf Printed T-Shirt", Price: 39.00},
	}
	require.NoError(t, repo.Seed(catalog))

	// A second seed with a different catalog must not clobber the data.
	require.NoError(t, repo.Seed([]model.Product{{ID: 9, Name: "Other", Price: 1}}))

	products, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Cartoon Astronaut T-Shirts", products[0].Name)
}

func TestFileProductRepoCreateAssignsNextID(t *testing.T) {
	repo := NewFileProductRepository(t.TempDir())
	ctx := context.Background()

	first, err := repo.Create(ctx, &model.Product{Name: "Tee", Price: 10})
	require.NoError(t, err)
	second, err := repo.Create(ctx, &model.Product{Name: "Jeans", Price: 20})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.NotNil(t, first.CreatedAt)
}

func TestFileProductRepoUpdate(t *testing.T) {
	repo := NewFileProductRepository(t.TempDir())
	ctx := context.Background()

	p, err := repo.Create(ctx, &model.Product{Name: "Tee", Price: 10, Category: "apparel"})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, p.ID, model.ProductUpdate{
		Name:  strp("Premium Tee"),
		Price: f64p(15.50),
	})
	require.NoError(t, err)

	assert.Equal(t, "Premium Tee", updated.Name)
	assert.Equal(t, 15.50, updated.Price)
	assert.Equal(t, "apparel", updated.Category, "unset fields keep their value")

	_, err = repo.Update(ctx, 999, model.ProductUpdate{Name: strp("x")})
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestFileProductRepoDelete(t *testing.T) {
	repo := NewFileProductRepository(t.TempDir())
	ctx := context.Background()

	p, err := repo.Create(ctx, &model.Product{Name: "Tee", Price: 10})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, p.ID))
	_, err = repo.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, p.ID), model.ErrNotFound)
}

func TestFileUserRepoCreateAndFind(t *testing.T) {
	repo := NewFileUserRepository(t.TempDir())
	ctx := context.Background()

	u, err := repo.Create(ctx, &model.User{
		Name:         "Ada Obi",
		Email:        "ada@example.com",
		PasswordHash: "$2a$10$hash",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	got, err := repo.FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, model.ErrNotFound)
}
