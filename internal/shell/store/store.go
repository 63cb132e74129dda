package store

import (
	"context"
	"time"
)

// =============================================================================
// Ledger Types
// =============================================================================

// Run statuses.
const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

// Result outcomes.
const (
	OutcomeEnqueued = "enqueued"
	OutcomeFailed   = "failed"
)

// WarmRun is one batch warm invocation.
type WarmRun struct {
	ID         string     `db:"id"`
	Status     string     `db:"status"`
	Total      int        `db:"total"`
	StartedAt  time.Time  `db:"started_at"`
	FinishedAt *time.Time `db:"finished_at"`
}

// WarmResult is the outcome of one enqueue attempt within a run.
type WarmResult struct {
	ID          int64     `db:"id"`
	RunID       string    `db:"run_id"`
	Slug        string    `db:"slug"`
	DisplayName string    `db:"display_name"`
	Outcome     string    `db:"outcome"`
	StatusCode  int       `db:"status_code"`
	CreatedAt   time.Time `db:"created_at"`
}

// =============================================================================
// Store Interface
// =============================================================================

// Store defines persistence for warm-run audit records. It never stores
// slugs as a cache or generated icons; those live with the icon service.
type Store interface {
	// CreateRun records the start of a warm run.
	CreateRun(ctx context.Context, run *WarmRun) error

	// FinishRun marks a run completed or failed.
	FinishRun(ctx context.Context, id, status string) error

	// RecordResult appends one enqueue outcome to a run.
	RecordResult(ctx context.Context, result *WarmResult) error

	// GetRun returns a run by ID.
	GetRun(ctx context.Context, id string) (*WarmRun, error)

	// ListResults returns a run's results in insertion order.
	ListResults(ctx context.Context, runID string) ([]WarmResult, error)

	// Close releases the underlying database connection.
	Close() error
}
