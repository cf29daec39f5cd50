package services

import (
	"context"

	"github.com/omosemola/my-ecommerce-web/internal/model"
	"github.com/omosemola/my-ecommerce-web/internal/repository"
)

type ProductService struct {
	Repo repository.ProductRepository
}

func NewProductService(r repository.ProductRepository) *ProductService {
	return &ProductService{Repo: r}
}

func (s *ProductService) List(ctx context.Context) ([]model.Product, error) {
	return s.Repo.List(ctx)
}

func (s *ProductService) Get(ctx context.Context, id int64) (*model.Product, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, p *model.Product) (*model.Product, error) {
	if p.Name == "" {
		return nil, model.Invalid("name", "is required")
	}
	if p.Price <= 0 {
		return nil, model.Invalid("price", "must be positive")
	}
	if p.Category == "" {
		p.Category = "uncategorized"
	}
	if p.Image == "" {
		p.Image = "img/placeholder.jpg"
	}
	return s.Repo.Create(ctx, p)
}

func (s *ProductService) Update(ctx context.Context, id int64, upd model.ProductUpdate) (*model.Product, error) {
	if upd.Price != nil && *upd.Price <= 0 {
		return nil, model.Invalid("price", "must be positive")
	}
	return s.Repo.Update(ctx, id, upd)
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	return s.Repo.Delete(ctx, id)
}
