package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"portfolio_backend/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL = `INSERT INTO users (username, password_hash, email, role, active) VALUES (?, ?, ?, ?, ?)`

	selectUserByUsernameSQL = `SELECT id, username, password_hash, email, role, active FROM users WHERE username = ?`

	existsUserByUsernameSQL = `SELECT COUNT(1) FROM users WHERE username = ?`
)

// Create inserts a new user and returns its ID.
func (r *UserRepository) Create(u models.User) (int64, error) {
	res, err := r.db.Exec(insertUserSQL, u.Username, u.PasswordHash, u.Email, u.Role, u.Active)
	if err != nil {
		return 0, fmt.Errorf("insert user %q: %w", u.Username, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", u.Username, err)
	}
	return lastID, nil
}

// GetByUsername fetches a user by username. Returns (nil, nil) if not found.
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(selectUserByUsernameSQL, username).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.Role, &u.Active)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	return &u, nil
}

// ExistsByUsername reports whether a user with that login key is stored.
func (r *UserRepository) ExistsByUsername(username string) (bool, error) {
	var n int
	if err := r.db.QueryRow(existsUserByUsernameSQL, username).Scan(&n); err != nil {
		return false, fmt.Errorf("count user %q: %w", username, err)
	}
	return n > 0, nil
}
