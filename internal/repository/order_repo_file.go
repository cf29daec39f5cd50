package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/omosemola/my-ecommerce-web/internal/model"
)

// FileOrderRepository keeps orders in orders.json. The mutex serializes the
// read-modify-write of the whole array so two checkouts completing in the
// same window cannot lose each other's order.
type FileOrderRepository struct {
	mu   sync.Mutex
	path string
}

func NewFileOrderRepository(dataDir string) *FileOrderRepository {
	return &FileOrderRepository{path: filepath.Join(dataDir, "orders.json")}
}

// Create upserts the order. An existing record with the same payment
// reference is replaced in place (idempotent commit on callback retry). A
// different order already holding the same id is a hard error, never a
// silent overwrite.
func (r *FileOrderRepository) Create(_ context.Context, o *model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, err := readJSONFile[model.Order](r.path)
	if err != nil {
		return err
	}
	for i := range orders {
		if o.PaymentReference != "" && orders[i].PaymentReference == o.PaymentReference {
			orders[i] = *o
			return writeJSONFile(r.path, orders)
		}
		if orders[i].ID == o.ID {
			return fmt.Errorf("order id collision: %s", o.ID)
		}
	}
	orders = append(orders, *o)
	return writeJSONFile(r.path, orders)
}

func (r *FileOrderRepository) FindByID(_ context.Context, id string) (*model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, err := readJSONFile[model.Order](r.path)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			o := orders[i]
			return &o, nil
		}
	}
	return nil, model.ErrNotFound
}

func (r *FileOrderRepository) FindByEmail(_ context.Context, email string) ([]model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, err := readJSONFile[model.Order](r.path)
	if err != nil {
		return nil, err
	}
	var out []model.Order
	for _, o := range orders {
		if o.Customer.Email == email {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *FileOrderRepository) FindByPaymentRef(_ context.Context, ref string) (*model.Order, error) {
	if ref == "" {
		return nil, model.ErrNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, err := readJSONFile[model.Order](r.path)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].PaymentReference == ref {
			o := orders[i]
			return &o, nil
		}
	}
	return nil, model.ErrNotFound
}

func (r *FileOrderRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, err := readJSONFile[model.Order](r.path)
	if err != nil {
		return err
	}
	kept := orders[:0]
	for _, o := range orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	if len(kept) == len(orders) {
		return model.ErrNotFound
	}
	return writeJSONFile(r.path, kept)
}

func (r *FileOrderRepository) List(_ context.Context) ([]model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return readJSONFile[model.Order](r.path)
}
