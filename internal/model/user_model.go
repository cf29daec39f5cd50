package model

import "time"

// User is a registered shopper. PasswordHash is the bcrypt hash persisted in
// the users collection; endpoints must never echo it back.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password"`
	Phone        string    `json:"phone,omitempty"`
	Country      string    `json:"country,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
