package runner

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/mythic-editor/internal/handlers"
	"github.com/jwebster45206/mythic-editor/internal/queue"
	backend "github.com/jwebster45206/mythic-editor/internal/storage"
	"github.com/jwebster45206/mythic-editor/internal/worker"
	queuePkg "github.com/jwebster45206/mythic-editor/pkg/queue"
	"github.com/jwebster45206/mythic-editor/pkg/storage"
)

// startStack serves the draft and export endpoints with a worker draining
// the queue, all in process.
func startStack(t *testing.T) *httptest.Server {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	mr := miniredis.RunT(t)
	client, err := queue.NewClient(context.Background(), mr.Addr(), log)
	require.NoError(t, err)
	exportQueue := queue.NewExportQueue(client)
	store := storage.NewMockStorage()

	mux := http.NewServeMux()
	drafts := handlers.NewDraftHandler(store, log)
	mux.Handle("/v1/drafts", drafts)
	mux.Handle("/v1/drafts/", drafts)
	exports := handlers.NewExportHandler(exportQueue, store, log)
	mux.Handle("/v1/exports", exports)
	mux.Handle("/v1/exports/", exports)
	server := httptest.NewServer(mux)

	processor := worker.NewExportProcessor(store, backend.NewExporter(t.TempDir(), log), log)
	w := worker.New(exportQueue, processor, client.GetRedisClient(), log, "runner-test")
	go func() { _ = w.Start() }()

	t.Cleanup(func() {
		server.Close()
		w.Stop()
		client.Close()
	})
	return server
}

func TestRunner_Cases(t *testing.T) {
	server := startStack(t)
	r := NewRunner(server.URL + "/")
	r.Timeout = 10 * time.Second
	assert.Equal(t, server.URL, r.BaseURL, "trailing slash is trimmed")

	files, err := filepath.Glob(filepath.Join("..", "cases", "*.json"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		suite, err := LoadTestSuite(file)
		require.NoError(t, err)
		t.Run(suite.Name, func(t *testing.T) {
			result, err := r.RunSuite(context.Background(), suite)
			require.NoError(t, err)
			require.Len(t, result.Results, len(suite.Steps))
			for _, step := range result.Results {
				assert.True(t, step.Success, "%s: %v", step.StepName, step.Error)
			}
		})
	}
}

func TestRunner_FailingExpectation(t *testing.T) {
	server := startStack(t)
	r := NewRunner(server.URL)
	wrong := "Nope:"
	suite := TestSuite{
		Name: "wrong render",
		Seed: []byte(`{"name":"Imp","kind":"Blaze"}`),
		Steps: []TestStep{
			{Name: "mismatch", Action: ActionRender, Expectations: Expectations{Render: &wrong}},
			{Name: "still runs", Action: ActionRender, Expectations: Expectations{RenderContains: []string{"Imp:"}}},
			{Name: "bogus", Action: "dance"},
		},
	}

	result, err := r.RunSuite(context.Background(), suite)
	require.Error(t, err)
	assert.ErrorContains(t, err, "mismatch")
	require.Len(t, result.Results, 3)
	assert.False(t, result.Results[0].Success)
	assert.True(t, result.Results[1].Success)
	assert.ErrorContains(t, result.Results[2].Error, `unknown action "dance"`)

	r.ErrorHandlingMode = ErrorHandlingExit
	result, err = r.RunSuite(context.Background(), suite)
	require.Error(t, err)
	assert.Len(t, result.Results, 1, "exit mode stops at the first failure")
}

func TestRunner_BadSeed(t *testing.T) {
	server := startStack(t)
	r := NewRunner(server.URL)
	_, err := r.RunSuite(context.Background(), TestSuite{Name: "bad", Seed: []byte(`{"kind":"Unicorn"}`)})
	assert.ErrorContains(t, err, "failed to seed draft")
}

func TestLoadTestSuiteWithExpansion(t *testing.T) {
	casesDir := filepath.Join("..", "cases")

	jobs, err := LoadTestSuiteWithExpansion(filepath.Join(casesDir, "fire_imp.json"), casesDir)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Fire imp renders and exports", jobs[0].Name)

	jobs, err = LoadTestSuiteWithExpansion(filepath.Join("..", "sequences", "smoke.json"), casesDir)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, filepath.Join(casesDir, "malformed_display.json"), jobs[1].CaseFile)

	_, err = LoadTestSuite("missing.json")
	assert.Error(t, err)
}

func TestCheckRender(t *testing.T) {
	text := "Imp:\n  Type: Blaze"
	exact := text

	assert.NoError(t, CheckRender(Expectations{Render: &exact}, text))
	assert.NoError(t, CheckRender(Expectations{RenderRegex: `^Imp:\n`}, text))
	assert.ErrorContains(t, CheckRender(Expectations{RenderContains: []string{"Health"}}, text), "to contain")
	assert.ErrorContains(t, CheckRender(Expectations{RenderNotContains: []string{"Blaze"}}, text), "NOT contain")
	assert.ErrorContains(t, CheckRender(Expectations{RenderRegex: `(`}, text), "invalid regex")
}

func TestCheckJob(t *testing.T) {
	failed := string(queuePkg.StateFailed)
	done := &queuePkg.Status{State: queuePkg.StateDone, Path: "/out/Imp.yml"}

	assert.NoError(t, CheckJob(Expectations{PathSuffix: "Imp.yml"}, done))
	assert.ErrorContains(t, CheckJob(Expectations{JobState: &failed}, done), "expected job state failed")
	assert.ErrorContains(t, CheckJob(Expectations{PathSuffix: "Other.yml"}, done), "export path")

	bad := &queuePkg.Status{State: queuePkg.StateFailed, Error: "malformed configuration block"}
	assert.ErrorContains(t, CheckJob(Expectations{}, bad), "malformed")
	assert.NoError(t, CheckJob(Expectations{JobState: &failed, ErrorContains: "malformed"}, bad))
}
