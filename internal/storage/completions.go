package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Completion is one finished puzzle in the database.
type Completion struct {
	CompletionID string
	CompletedAt  time.Time
	GridSize     int
	DurationMs   int64
	Moves        int
	AutoSolved   bool
	CustomArt    bool
}

// GridStats aggregates completions for one grid size.
type GridStats struct {
	GridSize       int
	Count          int
	BestDurationMs int64
	AvgDurationMs  int64
	AutoSolved     int
}

// CompletionRepository provides CRUD operations for completions.
type CompletionRepository struct {
	db *DB
}

// NewCompletionRepository creates a new completion repository.
func NewCompletionRepository(db *DB) *CompletionRepository {
	return &CompletionRepository{db: db}
}

// Create records a finished puzzle and returns its id.
func (r *CompletionRepository) Create(c Completion) (string, error) {
	id := uuid.New().String()
	completedAt := c.CompletedAt
	if completedAt.IsZero() {
		completedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(`
		INSERT INTO completions (completion_id, completed_at, grid_size, duration_ms, moves, auto_solved, custom_art)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, id, completedAt.UTC().Format(time.RFC3339), c.GridSize, c.DurationMs, c.Moves, c.AutoSolved, c.CustomArt)

	if err != nil {
		return "", fmt.Errorf("failed to create completion: %w", err)
	}

	return id, nil
}

// Get retrieves a completion by id.
func (r *CompletionRepository) Get(id string) (*Completion, error) {
	var c Completion
	var completedAtStr string

	err := r.db.QueryRow(`
		SELECT completion_id, completed_at, grid_size, duration_ms, moves, auto_solved, custom_art
		FROM completions
		WHERE completion_id = ?
	`, id).Scan(
		&c.CompletionID, &completedAtStr, &c.GridSize,
		&c.DurationMs, &c.Moves, &c.AutoSolved, &c.CustomArt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get completion: %w", err)
	}

	c.CompletedAt, _ = time.Parse(time.RFC3339, completedAtStr)
	return &c, nil
}

// List retrieves recent completions, newest first.
func (r *CompletionRepository) List(limit int) ([]Completion, error) {
	rows, err := r.db.Query(`
		SELECT completion_id, completed_at, grid_size, duration_ms, moves, auto_solved, custom_art
		FROM completions
		ORDER BY completed_at DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list completions: %w", err)
	}
	defer rows.Close()

	var completions []Completion
	for rows.Next() {
		var c Completion
		var completedAtStr string

		err := rows.Scan(
			&c.CompletionID, &completedAtStr, &c.GridSize,
			&c.DurationMs, &c.Moves, &c.AutoSolved, &c.CustomArt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan completion: %w", err)
		}

		c.CompletedAt, _ = time.Parse(time.RFC3339, completedAtStr)
		completions = append(completions, c)
	}

	return completions, rows.Err()
}

// Stats aggregates completions per grid size. Auto-solved runs are
// counted but excluded from the best/average durations.
func (r *CompletionRepository) Stats() ([]GridStats, error) {
	rows, err := r.db.Query(`
		SELECT grid_size,
		       COUNT(*),
		       COALESCE(MIN(CASE WHEN auto_solved = 0 THEN duration_ms END), 0),
		       COALESCE(AVG(CASE WHEN auto_solved = 0 THEN duration_ms END), 0),
		       SUM(auto_solved)
		FROM completions
		GROUP BY grid_size
		ORDER BY grid_size
	`)

	if err != nil {
		return nil, fmt.Errorf("failed to aggregate completions: %w", err)
	}
	defer rows.Close()

	var stats []GridStats
	for rows.Next() {
		var s GridStats
		var avg float64
		if err := rows.Scan(&s.GridSize, &s.Count, &s.BestDurationMs, &avg, &s.AutoSolved); err != nil {
			return nil, fmt.Errorf("failed to scan stats: %w", err)
		}
		s.AvgDurationMs = int64(avg)
		stats = append(stats, s)
	}

	return stats, rows.Err()
}

// Delete deletes a completion.
func (r *CompletionRepository) Delete(id string) error {
	_, err := r.db.Exec("DELETE FROM completions WHERE completion_id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete completion: %w", err)
	}
	return nil
}
