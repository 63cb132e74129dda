package warm

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantrykit/iconsmith/internal/shell/icons"
	"github.com/pantrykit/iconsmith/internal/shell/store"
)

// =============================================================================
// Test Helpers
// =============================================================================

// stubClient implements icons.Client, failing after failAfter successes.
type stubClient struct {
	calls     []string // slugs in call order
	failAfter int      // -1 = never fail
	failWith  error
}

func (c *stubClient) Enqueue(ctx context.Context, slug, displayName string) (*icons.EnqueueResult, error) {
	if c.failAfter >= 0 && len(c.calls) == c.failAfter {
		return nil, c.failWith
	}
	c.calls = append(c.calls, slug)
	return &icons.EnqueueResult{Slug: slug, Status: "queued"}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// =============================================================================
// Runner Tests
// =============================================================================

func TestRunner_Run_SequentialInOrder(t *testing.T) {
	client := &stubClient{failAfter: -1}
	runner := NewRunner(client, nil, testLogger())

	list := []Ingredient{
		{Name: "yellow onion"},
		{Name: "garlic"},
		{Name: "dragon fruit"},
	}

	summary, err := runner.Run(context.Background(), list)

	require.NoError(t, err)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 3, summary.Enqueued)
	assert.NotEmpty(t, summary.RunID)

	// Exactly N requests, in list order, slugs resolved through the table.
	assert.Equal(t, []string{"onion-yellow", "garlic", "dragon-fruit"}, client.calls)
}

func TestRunner_Run_AbortsOnFirstFailure(t *testing.T) {
	client := &stubClient{
		failAfter: 1,
		failWith:  &icons.EnqueueError{Slug: "garlic", StatusCode: http.StatusBadGateway},
	}
	runner := NewRunner(client, nil, testLogger())

	list := []Ingredient{
		{Name: "yellow onion"},
		{Name: "garlic"},
		{Name: "lemon"},
	}

	summary, err := runner.Run(context.Background(), list)

	require.Error(t, err)
	assert.Equal(t, 1, summary.Enqueued)

	// No requests after the failure.
	assert.Equal(t, []string{"onion-yellow"}, client.calls)
}

func TestRunner_Run_VariantResolution(t *testing.T) {
	client := &stubClient{failAfter: -1}
	runner := NewRunner(client, nil, testLogger())

	_, err := runner.Run(context.Background(), []Ingredient{
		{Name: "onion", Variant: "purple"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"onion-purple"}, client.calls)
}

func TestRunner_Run_RecordsLedger(t *testing.T) {
	ledger, err := store.NewSQLiteStore(":memory:")
	require.NoError(t, err)
	defer ledger.Close()

	client := &stubClient{
		failAfter: 1,
		failWith:  &icons.EnqueueError{Slug: "garlic", StatusCode: http.StatusBadGateway},
	}
	runner := NewRunner(client, ledger, testLogger())

	summary, err := runner.Run(context.Background(), []Ingredient{
		{Name: "yellow onion"},
		{Name: "garlic"},
	})
	require.Error(t, err)

	run, err := ledger.GetRun(context.Background(), summary.RunID)
	require.NoError(t, err)
	assert.Equal(t, store.RunStatusFailed, run.Status)
	assert.Equal(t, 2, run.Total)

	results, err := ledger.ListResults(context.Background(), summary.RunID)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, store.OutcomeEnqueued, results[0].Outcome)
	assert.Equal(t, "onion-yellow", results[0].Slug)
	assert.Equal(t, store.OutcomeFailed, results[1].Outcome)
	assert.Equal(t, http.StatusBadGateway, results[1].StatusCode)
}

func TestRunner_Run_CompletedRunLedgerStatus(t *testing.T) {
	ledger, err := store.NewSQLiteStore(":memory:")
	require.NoError(t, err)
	defer ledger.Close()

	runner := NewRunner(&stubClient{failAfter: -1}, ledger, testLogger())

	summary, err := runner.Run(context.Background(), []Ingredient{{Name: "garlic"}})
	require.NoError(t, err)

	run, err := ledger.GetRun(context.Background(), summary.RunID)
	require.NoError(t, err)
	assert.Equal(t, store.RunStatusCompleted, run.Status)
}

// =============================================================================
// List Tests
// =============================================================================

func TestDefaultList_NotEmpty(t *testing.T) {
	list := DefaultList()
	assert.NotEmpty(t, list)
	for _, ing := range list {
		assert.NotEmpty(t, ing.Name)
	}
}

func TestLoadList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.yaml")
	content := `ingredients:
  - name: yellow onion
  - name: onion
    variant: purple
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	list, err := LoadList(path)

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "yellow onion", list[0].Name)
	assert.Equal(t, "purple", list[1].Variant)
}

func TestLoadList_MissingFile(t *testing.T) {
	_, err := LoadList(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadList_EmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ingredients: []"), 0o644))

	_, err := LoadList(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no ingredients")
}

func TestLoadList_EntryWithoutName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.yaml")
	content := `ingredients:
  - variant: purple
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := LoadList(path)

	require.Error(t, err)
}
