package services

import (
	"context"
	"sync"

	"github.com/omosemola/my-ecommerce-web/internal/model"
)

type mockProductRepo struct {
	products map[int64]model.Product
}

func newMockProductRepo(products ...model.Product) *mockProductRepo {
	m := &mockProductRepo{products: make(map[int64]model.Product)}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

func (m *mockProductRepo) List(context.Context) ([]model.Product, error) {
	out := make([]model.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, p)
	}
	return out, nil
}

func (m *mockProductRepo) GetByID(_ context.Context, id int64) (*model.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &p, nil
}

func (m *mockProductRepo) Create(_ context.Context, p *model.Product) (*model.Product, error) {
	m.products[p.ID] = *p
	return p, nil
}

func (m *mockProductRepo) Update(_ context.Context, id int64, upd model.ProductUpdate) (*model.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Price != nil {
		p.Price = *upd.Price
	}
	m.products[id] = p
	return &p, nil
}

func (m *mockProductRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.products[id]; !ok {
		return model.ErrNotFound
	}
	delete(m.products, id)
	return nil
}

type mockOrderRepo struct {
	mu        sync.Mutex
	orders    []model.Order
	createErr error
}

func (m *mockOrderRepo) Create(_ context.Context, o *model.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	if o.PaymentReference != "" {
		for i := range m.orders {
			if m.orders[i].PaymentReference == o.PaymentReference {
				m.orders[i] = *o
				return nil
			}
		}
	}
	m.orders = append(m.orders, *o)
	return nil
}

func (m *mockOrderRepo) FindByID(_ context.Context, id string) (*model.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.orders {
		if m.orders[i].ID == id {
			o := m.orders[i]
			return &o, nil
		}
	}
	return nil, model.ErrNotFound
}

func (m *mockOrderRepo) FindByEmail(_ context.Context, email string) ([]model.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Order
	for _, o := range m.orders {
		if o.Customer.Email == email {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *mockOrderRepo) FindByPaymentRef(_ context.Context, ref string) (*model.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.orders {
		if m.orders[i].PaymentReference == ref {
			o := m.orders[i]
			return &o, nil
		}
	}
	return nil, model.ErrNotFound
}

func (m *mockOrderRepo) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.orders {
		if m.orders[i].ID == id {
			m.orders = append(m.orders[:i], m.orders[i+1:]...)
			return nil
		}
	}
	return model.ErrNotFound
}

func (m *mockOrderRepo) List(context.Context) ([]model.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Order, len(m.orders))
	copy(out, m.orders)
	return out, nil
}

func (m *mockOrderRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.orders)
}

// mockMailer records confirmation sends on a channel so tests can wait for
// the asynchronous dispatch.
type mockMailer struct {
	sendErr   error
	confirmed chan *model.Order
}

func newMockMailer() *mockMailer {
	return &mockMailer{confirmed: make(chan *model.Order, 4)}
}

func (m *mockMailer) SendOrderConfirmation(_ context.Context, order *model.Order) error {
	m.confirmed <- order
	return m.sendErr
}

func (m *mockMailer) SendShippingNotification(context.Context, *model.Order, string) error {
	return m.sendErr
}

func (m *mockMailer) SendTestEmail(context.Context, string) error {
	return m.sendErr
}

type mockProvider struct {
	intents     map[string]*model.PaymentIntent
	verifyErr   error
	verifyCalls int
}

func newMockProvider(intents ...*model.PaymentIntent) *mockProvider {
	m := &mockProvider{intents: make(map[string]*model.PaymentIntent)}
	for _, in := range intents {
		m.intents[in.ID] = in
	}
	return m
}

func (m *mockProvider) CreateIntent(_ context.Context, amountMinor int64, currency, email, name string) (*model.PaymentIntent, error) {
	in := &model.PaymentIntent{
		ID:           "pi_test_1",
		ClientSecret: "pi_test_1_secret",
		AmountMinor:  amountMinor,
		Currency:     currency,
		Status:       "requires_payment_method",
	}
	m.intents[in.ID] = in
	return in, nil
}

func (m *mockProvider) VerifyIntent(_ context.Context, ref string) (*model.PaymentIntent, error) {
	m.verifyCalls++
	if m.verifyErr != nil {
		return nil, m.verifyErr
	}
	in, ok := m.intents[ref]
	if !ok {
		return nil, model.ErrNotFound
	}
	return in, nil
}

func (m *mockProvider) PublicKey() string { return "pk_test_123" }
