package repository

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/omosemola/my-ecommerce-web/internal/model"
)

// FileProductRepository keeps the catalog in products.json.
type FileProductRepository struct {
	mu   sync.Mutex
	path string
}

func NewFileProductRepository(dataDir string) *FileProductRepository {
	return &FileProductRepository{path: filepath.Join(dataDir, "products.json")}
}

// Seed writes the sample catalog when no products file exists yet.
func (r *FileProductRepository) Seed(products []model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, err := readJSONFile[model.Product](r.path)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	return writeJSONFile(r.path, products)
}

func (r *FileProductRepository) List(_ context.Context) ([]model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return readJSONFile[model.Product](r.path)
}

func (r *FileProductRepository) GetByID(_ context.Context, id int64) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := readJSONFile[model.Product](r.path)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			p := products[i]
			return &p, nil
		}
	}
	return nil, model.ErrNotFound
}

func (r *FileProductRepository) Create(_ context.Context, p *model.Product) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := readJSONFile[model.Product](r.path)
	if err != nil {
		return nil, err
	}
	var maxID int64
	for _, existing := range products {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	now := time.Now()
	p.ID = maxID + 1
	p.CreatedAt = &now
	products = append(products, *p)
	if err := writeJSONFile(r.path, products); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *FileProductRepository) Update(_ context.Context, id int64, upd model.ProductUpdate) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := readJSONFile[model.Product](r.path)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID != id {
			continue
		}
		applyProductUpdate(&products[i], upd)
		if err := writeJSONFile(r.path, products); err != nil {
			return nil, err
		}
		p := products[i]
		return &p, nil
	}
	return nil, model.ErrNotFound
}

func (r *FileProductRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := readJSONFile[model.Product](r.path)
	if err != nil {
		return err
	}
	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(products) {
		return model.ErrNotFound
	}
	return writeJSONFile(r.path, kept)
}

func applyProductUpdate(p *model.Product, upd model.ProductUpdate) {
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Price != nil {
		p.Price = *upd.Price
	}
	if upd.Image != nil {
		p.Image = *upd.Image
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.Category != nil {
		p.Category = *upd.Category
	}
	now := time.Now()
	p.UpdatedAt = &now
}
