package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that owns tracker data. The tool runs locally with a
// single seeded demo user, but every query is scoped by user ID.
type User struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string // Unique
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// UserRepository holds the user account repository methods.
type UserRepository interface {
	// InsertUser stores a new user. The email must be unique.
	InsertUser(user *User) error

	// GetUser returns a user by ID.
	GetUser(id uuid.UUID) (*User, error)

	// GetUserByEmail returns a user by email, or an error when none exists.
	GetUserByEmail(email string) (*User, error)
}
