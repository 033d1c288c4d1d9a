package domain

import (
	"errors"
	"time"
)

var ErrEmailTaken = errors.New("email already registered")
var ErrPasswordTooLong = errors.New("password too long")
var ErrUserNotFound = errors.New("user not found")
var ErrWrongPassword = errors.New("incorrect password")

// User models a registered account. ID is assigned by the store;
// Email is unique across all users.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
