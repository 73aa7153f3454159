package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Student is a portal account row.
type Student struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// StudentQueries wraps student table access.
type StudentQueries struct {
	DB *sql.DB
}

// Create inserts a student row.
func (q *StudentQueries) Create(ctx context.Context, s *Student) error {
	query := `INSERT INTO students (id, email, name, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := q.DB.ExecContext(ctx, query, s.ID, s.Email, s.Name, s.PasswordHash, s.Role, s.CreatedAt)
	return err
}

// GetByEmail fetches a student by email. Returns ErrNotFound for an
// unknown address.
func (q *StudentQueries) GetByEmail(ctx context.Context, email string) (*Student, error) {
	query := `SELECT id, email, name, password_hash, role, created_at FROM students WHERE email = $1`
	var s Student
	err := q.DB.QueryRowContext(ctx, query, email).
		Scan(&s.ID, &s.Email, &s.Name, &s.PasswordHash, &s.Role, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetByID fetches a student by id.
func (q *StudentQueries) GetByID(ctx context.Context, id uuid.UUID) (*Student, error) {
	query := `SELECT id, email, name, password_hash, role, created_at FROM students WHERE id = $1`
	var s Student
	err := q.DB.QueryRowContext(ctx, query, id).
		Scan(&s.ID, &s.Email, &s.Name, &s.PasswordHash, &s.Role, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
