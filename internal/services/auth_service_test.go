package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/omosemola/my-ecommerce-web/internal/model"
)

type mockUserRepo struct {
	users map[string]model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]model.User)}
}

func (m *mockUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := m.users[email]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &u, nil
}

func (m *mockUserRepo) Create(_ context.Context, u *model.User) (*model.User, error) {
	u.ID = int64(len(m.users) + 1)
	m.users[u.Email] = *u
	return u, nil
}

func TestRegisterHashesPassword(t *testing.T) {
	svc := NewAuthService(newMockUserRepo())

	u, err := svc.Register(context.Background(), "Ada Obi", "ada@example.com", "s3cret-pw", "", "NG")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret-pw", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret-pw")))
}

func TestRegisterValidation(t *testing.T) {
	svc := NewAuthService(newMockUserRepo())
	ctx := context.Background()
	var verr *model.ValidationError

	_, err := svc.Register(ctx, "", "ada@example.com", "s3cret-pw", "", "")
	assert.ErrorAs(t, err, &verr)

	_, err = svc.Register(ctx, "Ada", "not-an-email", "s3cret-pw", "", "")
	assert.ErrorAs(t, err, &verr)

	_, err = svc.Register(ctx, "Ada", "ada@example.com", "short", "", "")
	assert.ErrorAs(t, err, &verr)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewAuthService(newMockUserRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ada", "ada@example.com", "s3cret-pw", "", "")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Other Ada", "ada@example.com", "another-pw", "", "")
	var verr *model.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestLogin(t *testing.T) {
	svc := NewAuthService(newMockUserRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ada", "ada@example.com", "s3cret-pw", "", "")
	require.NoError(t, err)

	u, err := svc.Login(ctx, "ada@example.com", "s3cret-pw")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", u.Email)
	assert.Empty(t, u.PasswordHash, "login must not leak the hash")
}

func TestLoginBadCredentials(t *testing.T) {
	svc := NewAuthService(newMockUserRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ada", "ada@example.com", "s3cret-pw", "", "")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "ada@example.com", "wrong-pw")
	assert.EqualError(t, err, "invalid credentials")

	// Unknown email produces the exact same error text.
	_, err = svc.Login(ctx, "ghost@example.com", "s3cret-pw")
	assert.EqualError(t, err, "invalid credentials")
}

func TestAdminLogin(t *testing.T) {
	svc := NewAuthService(newMockUserRepo())

	t.Setenv("ADMIN_PASSWORD", "hunter2-admin")
	assert.NoError(t, svc.AdminLogin("hunter2-admin"))
	assert.Error(t, svc.AdminLogin("admin123"))

	t.Setenv("ADMIN_PASSWORD", "")
	assert.NoError(t, svc.AdminLogin("admin123"))
	assert.Error(t, svc.AdminLogin("nope"))
}
