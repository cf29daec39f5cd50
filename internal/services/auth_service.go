package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	"github.com/omosemola/my-ecommerce-web/internal/model"
	"github.com/omosemola/my-ecommerce-web/internal/repository"
)

const (
	MinPasswordLen = 8
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

type AuthService struct {
	Users repository.UserRepository
}

func NewAuthService(u repository.UserRepository) *AuthService {
	return &AuthService{Users: u}
}

func validateEmail(email string) error {
	if email == "" {
		return model.Invalid("email", "is required")
	}
	if !emailRegex.MatchString(email) {
		return model.Invalid("email", "bad format")
	}
	return nil
}

func (s *AuthService) validatePassword(pw string) error {
	if len(pw) < MinPasswordLen {
		return model.Invalid("password", fmt.Sprintf("must be at least %d characters", MinPasswordLen))
	}
	return nil
}

// Register creates a shopper account with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, name, email, password, phone, country string) (*model.User, error) {
	if name == "" {
		return nil, model.Invalid("name", "is required")
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := s.validatePassword(password); err != nil {
		return nil, err
	}

	if _, err := s.Users.FindByEmail(ctx, email); err == nil {
		return nil, model.Invalid("email", "already registered")
	} else if !errors.Is(err, model.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Phone:        phone,
		Country:      country,
	}
	return s.Users.Create(ctx, u)
}

// Login authenticates using email + password and returns the user without
// the password hash.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, error) {
	u, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		// do not reveal whether email exists
		return nil, errors.New("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, errors.New("invalid credentials")
	}
	// zero out password before returning
	u.PasswordHash = ""
	return u, nil
}

// AdminLogin checks the shared admin password from the environment.
func (s *AuthService) AdminLogin(password string) error {
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123"
	}
	if password != adminPassword {
		return errors.New("invalid admin password")
	}
	return nil
}
