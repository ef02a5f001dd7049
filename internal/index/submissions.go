package index

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Submission statuses.
const (
	StatusSent     = "sent"
	StatusFailed   = "failed"
	StatusNotReady = "not_ready"
)

// Submission is one recorded contact form dispatch attempt.
type Submission struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	FromName  string    `json:"from_name"`
	FromEmail string    `json:"from_email"`
	Subject   string    `json:"subject"`
	Status    string    `json:"status"`
	Error     string    `json:"error,omitempty"`
}

// RecordSubmission stores s. A missing id or timestamp is filled in.
func (db *DB) RecordSubmission(ctx context.Context, s Submission) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO submissions (id, created_at, from_name, from_email, subject, status, error)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, s.ID, s.CreatedAt, s.FromName, s.FromEmail, s.Subject, s.Status, s.Error)
	if err != nil {
		return fmt.Errorf("index: record submission: %w", err)
	}
	return nil
}

// ListSubmissions returns the most recent submissions first.
func (db *DB) ListSubmissions(ctx context.Context, limit int) ([]Submission, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, created_at, from_name, from_email, subject, status, error
		FROM submissions
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("index: list submissions: %w", err)
	}
	defer rows.Close()

	out := []Submission{}
	for rows.Next() {
		var s Submission
		if err := rows.Scan(&s.ID, &s.CreatedAt, &s.FromName, &s.FromEmail, &s.Subject, &s.Status, &s.Error); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
