package repository

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/omosemola/my-ecommerce-web/internal/model"
)

// FileUserRepository keeps registered users in users.json.
type FileUserRepository struct {
	mu   sync.Mutex
	path string
}

func NewFileUserRepository(dataDir string) *FileUserRepository {
	return &FileUserRepository{path: filepath.Join(dataDir, "users.json")}
}

func (r *FileUserRepository) FindByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := readJSONFile[model.User](r.path)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			u := users[i]
			return &u, nil
		}
	}
	return nil, model.ErrNotFound
}

func (r *FileUserRepository) Create(_ context.Context, u *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := readJSONFile[model.User](r.path)
	if err != nil {
		return nil, err
	}
	var maxID int64
	for _, existing := range users {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	u.ID = maxID + 1
	u.CreatedAt = time.Now()
	users = append(users, *u)
	if err := writeJSONFile(r.path, users); err != nil {
		return nil, err
	}
	return u, nil
}
