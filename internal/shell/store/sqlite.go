package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// =============================================================================
// SQLiteStore
// =============================================================================

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sqlx.DB
}

// NewSQLiteStore creates a new SQLite store and runs migrations.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite3", dsn+"?_foreign_keys=on")
	if err != nil {
		return nil, NewStoreError("NewSQLiteStore", "", "failed to open database", ErrConnectionFailed)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, NewStoreError("NewSQLiteStore", "", "failed to ping database", ErrConnectionFailed)
	}

	if err := runMigrations(db.DB); err != nil {
		db.Close()
		return nil, NewStoreError("NewSQLiteStore", "", err.Error(), ErrMigrationFailed)
	}

	return &SQLiteStore{db: db}, nil
}

// runMigrations runs database migrations using embedded SQL files.
func runMigrations(db *sql.DB) error {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// Close releases the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// =============================================================================
// Run Operations
// =============================================================================

// CreateRun records the start of a warm run.
func (s *SQLiteStore) CreateRun(ctx context.Context, run *WarmRun) error {
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now().UTC()
	}
	if run.Status == "" {
		run.Status = RunStatusRunning
	}

	_, err := s.db.NamedExecContext(ctx, `
		INSERT INTO warm_runs (id, status, total, started_at, finished_at)
		VALUES (:id, :status, :total, :started_at, :finished_at)`, run)
	if err != nil {
		if isUniqueViolation(err) {
			return NewStoreError("CreateRun", run.ID, "already exists", ErrDuplicateID)
		}
		return NewStoreError("CreateRun", run.ID, err.Error(), err)
	}
	return nil
}

// FinishRun marks a run completed or failed.
func (s *SQLiteStore) FinishRun(ctx context.Context, id, status string) error {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx, `
		UPDATE warm_runs SET status = ?, finished_at = ? WHERE id = ?`,
		status, now, id)
	if err != nil {
		return NewStoreError("FinishRun", id, err.Error(), err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return NewStoreError("FinishRun", id, "not found", ErrNotFound)
	}
	return nil
}

// GetRun returns a run by ID.
func (s *SQLiteStore) GetRun(ctx context.Context, id string) (*WarmRun, error) {
	var run WarmRun
	err := s.db.GetContext(ctx, &run, `
		SELECT id, status, total, started_at, finished_at
		FROM warm_runs WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, NewStoreError("GetRun", id, "not found", ErrNotFound)
	}
	if err != nil {
		return nil, NewStoreError("GetRun", id, err.Error(), err)
	}
	return &run, nil
}

// =============================================================================
// Result Operations
// =============================================================================

// RecordResult appends one enqueue outcome to a run.
func (s *SQLiteStore) RecordResult(ctx context.Context, result *WarmResult) error {
	if result.CreatedAt.IsZero() {
		result.CreatedAt = time.Now().UTC()
	}

	res, err := s.db.NamedExecContext(ctx, `
		INSERT INTO warm_results (run_id, slug, display_name, outcome, status_code, created_at)
		VALUES (:run_id, :slug, :display_name, :outcome, :status_code, :created_at)`, result)
	if err != nil {
		return NewStoreError("RecordResult", result.RunID, err.Error(), err)
	}
	if id, err := res.LastInsertId(); err == nil {
		result.ID = id
	}
	return nil
}

// ListResults returns a run's results in insertion order.
func (s *SQLiteStore) ListResults(ctx context.Context, runID string) ([]WarmResult, error) {
	var results []WarmResult
	err := s.db.SelectContext(ctx, &results, `
		SELECT id, run_id, slug, display_name, outcome, status_code, created_at
		FROM warm_results WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, NewStoreError("ListResults", runID, err.Error(), err)
	}
	return results, nil
}

// isUniqueViolation reports whether err is a SQLite unique constraint error.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
