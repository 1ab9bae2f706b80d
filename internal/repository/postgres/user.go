package postgres

import (
	"database/sql"

	"globetrotter/internal/domain"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// ListUsers returns all profiles ordered by id
func (r *UserRepo) ListUsers() ([]domain.User, error) {
	query := `SELECT id, name, color FROM users ORDER BY id ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Color); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// GetUser returns a single profile, or nil if the id is unknown
func (r *UserRepo) GetUser(id int64) (*domain.User, error) {
	var u domain.User
	query := `SELECT id, name, color FROM users WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(&u.ID, &u.Name, &u.Color)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// CreateUser stores a new profile and returns it with the assigned id
func (r *UserRepo) CreateUser(name, color string) (*domain.User, error) {
	u := domain.User{Name: name, Color: color}
	query := `
		INSERT INTO users (name, color)
		VALUES ($1, $2)
		RETURNING id
	`
	if err := r.db.QueryRow(query, name, color).Scan(&u.ID); err != nil {
		return nil, err
	}

	return &u, nil
}
