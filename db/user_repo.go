package db

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/harsha-k-cheruku/sde-interview-prep/domain"
)

var _ domain.UserRepository = (*Repository)(nil)

// dbUser represents a user account as stored in the database.
type dbUser struct {
	ID        uuid.UUID `db:"id"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// toDomainUser converts a dbUser into a domain.User.
func toDomainUser(dbUser *dbUser) *domain.User {
	return &domain.User{
		ID:        dbUser.ID,
		FirstName: dbUser.FirstName,
		LastName:  dbUser.LastName,
		Email:     dbUser.Email,
		CreatedAt: dbUser.CreatedAt,
		UpdatedAt: dbUser.UpdatedAt,
	}
}

// InsertUser stores a new domain.User. The email must be unique.
func (repo *Repository) InsertUser(user *domain.User) error {
	if user.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("generating uuid: %w", err)
		}
		user.ID = id
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `INSERT INTO users(id, first_name, last_name, email, created_at, updated_at)
	          VALUES(?, ?, ?, ?, ?, ?)`
	_, err := repo.dbConn.Exec(query, user.ID, user.FirstName, user.LastName, user.Email, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting user %s: %w", user.Email, err)
	}
	return nil
}

// GetUser retrieves a user by ID.
func (repo *Repository) GetUser(id uuid.UUID) (*domain.User, error) {
	var dbU dbUser
	query := `SELECT * FROM users WHERE id = ?`

	err := repo.dbConn.Get(&dbU, query, id)
	if err != nil {
		return nil, fmt.Errorf("getting user %s: %w", id, err)
	}
	return toDomainUser(&dbU), nil
}

// GetUserByEmail retrieves a user by email.
func (repo *Repository) GetUserByEmail(email string) (*domain.User, error) {
	var dbU dbUser
	query := `SELECT * FROM users WHERE email = ?`

	err := repo.dbConn.Get(&dbU, query, email)
	if err != nil {
		return nil, fmt.Errorf("getting user by email %s: %w", email, err)
	}
	return toDomainUser(&dbU), nil
}
