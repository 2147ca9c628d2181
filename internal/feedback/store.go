// Package feedback persists classifier feedback submissions for the
// development server. Records are advisory training material; the store
// favors simplicity over throughput.
package feedback

import (
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schema string

// Record is one stored feedback submission.
type Record struct {
	ID             string
	CreatedAt      time.Time
	Pixels         []float64
	PredictedDigit int
	Correct        bool
	CorrectDigit   *int // nil when the prediction was correct
}

// Store handles database operations.
type Store struct {
	db *sql.DB
}

// Open creates a Store backed by the SQLite database at dbPath,
// initializing the schema when missing.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add stores a feedback submission and returns the stored record.
// The pixels array is kept verbatim as JSON so records round-trip into
// training pipelines without re-quantization.
func (s *Store) Add(pixels []float64, predictedDigit int, correct bool, correctDigit *int) (*Record, error) {
	id := uuid.New().String()
	now := time.Now()

	encoded, err := json.Marshal(pixels)
	if err != nil {
		return nil, fmt.Errorf("encode pixels: %w", err)
	}

	_, err = s.db.Exec(
		"INSERT INTO feedback (id, created_at, pixels, predicted_digit, correct, correct_digit) VALUES (?, ?, ?, ?, ?, ?)",
		id, now, string(encoded), predictedDigit, correct, correctDigit,
	)
	if err != nil {
		return nil, fmt.Errorf("insert feedback: %w", err)
	}

	return &Record{
		ID:             id,
		CreatedAt:      now,
		Pixels:         pixels,
		PredictedDigit: predictedDigit,
		Correct:        correct,
		CorrectDigit:   correctDigit,
	}, nil
}

// List returns recent records with pagination, newest first.
func (s *Store) List(limit, offset int) ([]Record, error) {
	rows, err := s.db.Query(
		"SELECT id, created_at, pixels, predicted_digit, correct, correct_digit FROM feedback ORDER BY created_at DESC LIMIT ? OFFSET ?",
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var encoded string
		if err := rows.Scan(&r.ID, &r.CreatedAt, &encoded, &r.PredictedDigit, &r.Correct, &r.CorrectDigit); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		if err := json.Unmarshal([]byte(encoded), &r.Pixels); err != nil {
			return nil, fmt.Errorf("decode pixels: %w", err)
		}
		records = append(records, r)
	}

	return records, rows.Err()
}

// Count returns the number of stored records.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM feedback").Scan(&n); err != nil {
		return 0, fmt.Errorf("count feedback: %w", err)
	}
	return n, nil
}
