package warm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pantrykit/iconsmith/internal/core/ingredient"
	"github.com/pantrykit/iconsmith/internal/shell/icons"
	"github.com/pantrykit/iconsmith/internal/shell/store"
)

// =============================================================================
// Runner
// =============================================================================

// Runner executes warm runs against the icon service.
type Runner struct {
	client icons.Client
	ledger store.Store // nil disables audit recording
	logger *slog.Logger
}

// NewRunner creates a new warm runner. ledger may be nil.
func NewRunner(client icons.Client, ledger store.Store, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		client: client,
		ledger: ledger,
		logger: logger,
	}
}

// Summary describes a completed warm run.
type Summary struct {
	RunID    string
	Total    int
	Enqueued int
}

// Run enqueues icon generation for every list entry, strictly sequentially
// and in list order. The first enqueue failure aborts the run immediately;
// no further requests are issued and the error is returned to the caller.
// Ledger write failures are logged but never abort the run.
func (r *Runner) Run(ctx context.Context, list []Ingredient) (*Summary, error) {
	runID := uuid.New().String()
	summary := &Summary{RunID: runID, Total: len(list)}

	r.logger.Info("starting warm run",
		"run_id", runID,
		"total", len(list),
	)

	if r.ledger != nil {
		if err := r.ledger.CreateRun(ctx, &store.WarmRun{ID: runID, Total: len(list)}); err != nil {
			r.logger.Warn("failed to record warm run", "run_id", runID, "error", err)
		}
	}

	for _, ing := range list {
		slug := ingredient.Resolve(ing.Name, ing.Variant)
		display := ingredient.ToDisplay(slug)

		result, err := r.client.Enqueue(ctx, slug, display)
		if err != nil {
			r.recordResult(ctx, runID, slug, display, store.OutcomeFailed, statusCodeOf(err))
			r.finishRun(ctx, runID, store.RunStatusFailed)
			r.logger.Error("enqueue failed, aborting run",
				"run_id", runID,
				"name", ing.Name,
				"slug", slug,
				"error", err,
			)
			return summary, fmt.Errorf("enqueue %q: %w", slug, err)
		}

		summary.Enqueued++
		r.recordResult(ctx, runID, slug, display, store.OutcomeEnqueued, 0)
		r.logger.Info("icon enqueued",
			"run_id", runID,
			"name", ing.Name,
			"slug", slug,
			"status", result.Status,
		)
	}

	r.finishRun(ctx, runID, store.RunStatusCompleted)
	r.logger.Info("warm run completed",
		"run_id", runID,
		"enqueued", summary.Enqueued,
	)

	return summary, nil
}

func (r *Runner) recordResult(ctx context.Context, runID, slug, display, outcome string, statusCode int) {
	if r.ledger == nil {
		return
	}
	err := r.ledger.RecordResult(ctx, &store.WarmResult{
		RunID:       runID,
		Slug:        slug,
		DisplayName: display,
		Outcome:     outcome,
		StatusCode:  statusCode,
	})
	if err != nil {
		r.logger.Warn("failed to record result", "run_id", runID, "slug", slug, "error", err)
	}
}

func (r *Runner) finishRun(ctx context.Context, runID, status string) {
	if r.ledger == nil {
		return
	}
	if err := r.ledger.FinishRun(ctx, runID, status); err != nil {
		r.logger.Warn("failed to finish warm run", "run_id", runID, "error", err)
	}
}

// statusCodeOf extracts the HTTP status from an enqueue error, if present.
func statusCodeOf(err error) int {
	var enqErr *icons.EnqueueError
	if errors.As(err, &enqErr) {
		return enqErr.StatusCode
	}
	return 0
}
