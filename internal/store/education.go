package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"edudesk/internal/education"
)

// EducationQueries wraps education table access.
type EducationQueries struct {
	DB *sql.DB
}

const educationColumns = `id, details, is_verified, last_verified, remark`

// ListByStudent retrieves a student's education records ordered by
// creation time.
func (q *EducationQueries) ListByStudent(ctx context.Context, studentID string) ([]education.Record, error) {
	query := `SELECT ` + educationColumns + ` FROM educations WHERE student_id = $1 ORDER BY created_at`
	rows, err := q.DB.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []education.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

// Get fetches a record and its owning student's id.
func (q *EducationQueries) Get(ctx context.Context, id string) (*education.Record, string, error) {
	query := `SELECT ` + educationColumns + `, student_id FROM educations WHERE id = $1`

	var (
		rec          education.Record
		details      []byte
		lastVerified sql.NullTime
		remark       sql.NullString
		studentID    string
	)
	err := q.DB.QueryRowContext(ctx, query, id).
		Scan(&rec.ID, &details, &rec.IsVerified, &lastVerified, &remark, &studentID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", ErrNotFound
	}
	if err != nil {
		return nil, "", err
	}
	if err := decodeDetails(details, &rec); err != nil {
		return nil, "", err
	}
	applyNullables(&rec, lastVerified, remark)
	return &rec, studentID, nil
}

// Create inserts a record. Whatever audit values the caller sent are
// discarded: a fresh record starts unverified.
func (q *EducationQueries) Create(ctx context.Context, studentID string, details education.Details) (*education.Record, error) {
	rec := education.Record{
		ID:               uuid.New().String(),
		EducationDetails: details.ClearVerified(),
	}
	data, err := encodeDetails(rec.EducationDetails)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	query := `INSERT INTO educations (id, student_id, details, is_verified, created_at, updated_at)
		VALUES ($1, $2, $3, false, $4, $4)`
	if _, err := q.DB.ExecContext(ctx, query, rec.ID, studentID, data, now); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Update replaces a record's details. A student write resets the
// verification state: the stored details are no longer the verified
// ones.
func (q *EducationQueries) Update(ctx context.Context, id string, details education.Details) (*education.Record, error) {
	rec := education.Record{
		ID:               id,
		EducationDetails: details.ClearVerified(),
	}
	data, err := encodeDetails(rec.EducationDetails)
	if err != nil {
		return nil, err
	}

	query := `UPDATE educations
		SET details = $2, is_verified = false, last_verified = NULL, remark = NULL, updated_at = $3
		WHERE id = $1`
	res, err := q.DB.ExecContext(ctx, query, id, data, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}
	return &rec, nil
}

// Delete removes a record.
func (q *EducationQueries) Delete(ctx context.Context, id string) error {
	res, err := q.DB.ExecContext(ctx, `DELETE FROM educations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// SetVerification applies an admin decision. Approval copies each
// current value into its last_verified_value and stamps the record;
// rejection leaves the details but records the remark.
func (q *EducationQueries) SetVerification(ctx context.Context, id string, approved bool, remark string) (*education.Record, error) {
	rec, _, err := q.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if approved {
		rec.EducationDetails = rec.EducationDetails.MarkVerified()
		rec.IsVerified = true
		rec.LastVerified = &now
	} else {
		rec.IsVerified = false
		rec.LastVerified = nil
	}
	rec.Remark = &remark

	data, err := encodeDetails(rec.EducationDetails)
	if err != nil {
		return nil, err
	}
	query := `UPDATE educations
		SET details = $2, is_verified = $3, last_verified = $4, remark = $5, updated_at = $6
		WHERE id = $1`
	if _, err := q.DB.ExecContext(ctx, query, id, data, rec.IsVerified, rec.LastVerified, remark, now); err != nil {
		return nil, err
	}
	return rec, nil
}

func encodeDetails(d education.Details) ([]byte, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("encode education details: %w", err)
	}
	return data, nil
}

func decodeDetails(data []byte, rec *education.Record) error {
	if err := json.Unmarshal(data, &rec.EducationDetails); err != nil {
		return fmt.Errorf("decode education details: %w", err)
	}
	return nil
}

func applyNullables(rec *education.Record, lastVerified sql.NullTime, remark sql.NullString) {
	if lastVerified.Valid {
		t := lastVerified.Time
		rec.LastVerified = &t
	}
	if remark.Valid {
		r := remark.String
		rec.Remark = &r
	}
}

func scanRecord(rows *sql.Rows) (*education.Record, error) {
	var (
		rec          education.Record
		details      []byte
		lastVerified sql.NullTime
		remark       sql.NullString
	)
	if err := rows.Scan(&rec.ID, &details, &rec.IsVerified, &lastVerified, &remark); err != nil {
		return nil, err
	}
	if err := decodeDetails(details, &rec); err != nil {
		return nil, err
	}
	applyNullables(&rec, lastVerified, remark)
	return &rec, nil
}
