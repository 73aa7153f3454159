// Package store implements Postgres persistence for the portal API:
// students and their education records, with the record details held
// as jsonb.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

// ErrNotFound is returned when a row does not exist.
var ErrNotFound = errors.New("store: not found")

// Open connects to Postgres using the DB_* environment variables and
// verifies the connection.
func Open() (*sql.DB, error) {
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	database := os.Getenv("DB_NAME")

	psqlInfo := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, database)

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// Bootstrap creates the schema if it does not exist yet.
func Bootstrap(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS students (
			id uuid PRIMARY KEY,
			email text UNIQUE NOT NULL,
			name text NOT NULL,
			password_hash text NOT NULL,
			role text NOT NULL DEFAULT 'student',
			created_at timestamptz NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS educations (
			id uuid PRIMARY KEY,
			student_id uuid NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			details jsonb NOT NULL,
			is_verified boolean NOT NULL DEFAULT false,
			last_verified timestamptz,
			remark text,
			created_at timestamptz NOT NULL DEFAULT now(),
			updated_at timestamptz NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS educations_student_idx ON educations (student_id, created_at)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("bootstrap schema: %w", err)
		}
	}
	return nil
}
