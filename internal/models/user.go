package models

import "time"

// User is a registered account. Email is unique across users.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`

	// PasswordHash is the encoded digest produced by a passwd.Hasher.
	PasswordHash string `json:"password"`

	CreatedAt time.Time `json:"created"`
}

// Session points at the logged-in user. At most one exists per store.
type Session struct {
	UserID string    `json:"userId"`
	Since  time.Time `json:"since"`
}
