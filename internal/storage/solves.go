package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SolveRecord represents one completed solve in the database.
type SolveRecord struct {
	SolveID        string
	CreatedAt      time.Time
	Scramble       string
	Solution       string
	MoveCount      int
	Heuristic      string
	NodesExpanded  int64
	NodesGenerated int64
	Iterations     int
	FinalBound     int
	DurationMs     int64
}

// SolveRepository provides CRUD operations for solve records.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Create stores a solve record and returns its ID.
func (r *SolveRepository) Create(rec SolveRecord) (string, error) {
	id := uuid.New().String()
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := r.db.Exec(`
		INSERT INTO solves (solve_id, created_at, scramble, solution, move_count, heuristic,
			nodes_expanded, nodes_generated, iterations, final_bound, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, createdAt.Format(time.RFC3339), rec.Scramble, rec.Solution, rec.MoveCount, rec.Heuristic,
		rec.NodesExpanded, rec.NodesGenerated, rec.Iterations, rec.FinalBound, rec.DurationMs)

	if err != nil {
		return "", fmt.Errorf("failed to create solve record: %w", err)
	}

	return id, nil
}

// Get retrieves a solve record by ID. It returns nil when no record
// exists.
func (r *SolveRepository) Get(solveID string) (*SolveRecord, error) {
	var rec SolveRecord
	var createdAtStr string

	err := r.db.QueryRow(`
		SELECT solve_id, created_at, scramble, solution, move_count, heuristic,
			nodes_expanded, nodes_generated, iterations, final_bound, duration_ms
		FROM solves
		WHERE solve_id = ?
	`, solveID).Scan(
		&rec.SolveID, &createdAtStr, &rec.Scramble, &rec.Solution, &rec.MoveCount, &rec.Heuristic,
		&rec.NodesExpanded, &rec.NodesGenerated, &rec.Iterations, &rec.FinalBound, &rec.DurationMs,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get solve record: %w", err)
	}

	rec.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	return &rec, nil
}

// List retrieves the most recent solve records.
func (r *SolveRepository) List(limit int) ([]SolveRecord, error) {
	rows, err := r.db.Query(`
		SELECT solve_id, created_at, scramble, solution, move_count, heuristic,
			nodes_expanded, nodes_generated, iterations, final_bound, duration_ms
		FROM solves
		ORDER BY created_at DESC, solve_id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list solve records: %w", err)
	}
	defer rows.Close()

	var recs []SolveRecord
	for rows.Next() {
		var rec SolveRecord
		var createdAtStr string
		if err := rows.Scan(
			&rec.SolveID, &createdAtStr, &rec.Scramble, &rec.Solution, &rec.MoveCount, &rec.Heuristic,
			&rec.NodesExpanded, &rec.NodesGenerated, &rec.Iterations, &rec.FinalBound, &rec.DurationMs,
		); err != nil {
			return nil, fmt.Errorf("failed to scan solve record: %w", err)
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
		recs = append(recs, rec)
	}

	return recs, rows.Err()
}

// Delete deletes a solve record.
func (r *SolveRepository) Delete(solveID string) error {
	_, err := r.db.Exec("DELETE FROM solves WHERE solve_id = ?", solveID)
	if err != nil {
		return fmt.Errorf("failed to delete solve record: %w", err)
	}
	return nil
}
