package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jwebster45206/mythic-editor/pkg/queue"
)

type ErrorHandlingMode string

const ErrorHandlingExit ErrorHandlingMode = "exit"
const ErrorHandlingContinue ErrorHandlingMode = "continue"

// Runner executes integration tests against a running mythic-editor API
// and worker
type Runner struct {
	BaseURL           string
	Client            *http.Client
	Timeout           time.Duration
	Logger            func(format string, args ...any)
	ErrorHandlingMode ErrorHandlingMode
	KeepDrafts        bool // If set, drafts are left in storage after each suite
}

// NewRunner creates a new test runner
func NewRunner(baseURL string) *Runner {
	return &Runner{
		BaseURL:           strings.TrimSuffix(baseURL, "/"),
		Client:            &http.Client{Timeout: 60 * time.Second},
		Timeout:           30 * time.Second,
		Logger:            func(string, ...any) {},
		ErrorHandlingMode: ErrorHandlingContinue,
	}
}

// LoadTestSuite loads a test suite from a JSON file
func LoadTestSuite(filename string) (TestSuite, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return TestSuite{}, fmt.Errorf("failed to read test file %s: %w", filename, err)
	}

	var suite TestSuite
	if err := json.Unmarshal(content, &suite); err != nil {
		return TestSuite{}, fmt.Errorf("failed to parse JSON in %s: %w", filename, err)
	}

	return suite, nil
}

// LoadTestSuiteWithExpansion loads a test suite and expands it if it's a sequence
// Returns a list of actual test suites (expanded from the sequence if needed)
func LoadTestSuiteWithExpansion(filename string, casesDir string) ([]TestJob, error) {
	suite, err := LoadTestSuite(filename)
	if err != nil {
		return nil, err
	}

	// If this is not a sequence, return it as-is
	if !suite.IsSequence() {
		return []TestJob{{
			Name:     suite.Name,
			Suite:    suite,
			CaseFile: filename,
		}}, nil
	}

	// This is a sequence - load all referenced cases
	var jobs []TestJob
	for _, caseFile := range suite.Cases {
		casePath := filepath.Join(casesDir, caseFile)

		// Recursively load (in case a sequence references another sequence)
		subJobs, err := LoadTestSuiteWithExpansion(casePath, casesDir)
		if err != nil {
			return nil, fmt.Errorf("failed to load case '%s' referenced by sequence '%s': %w", caseFile, suite.Name, err)
		}

		jobs = append(jobs, subJobs...)
	}

	return jobs, nil
}

// RunSuite creates a draft from the suite's seed and runs every step
// against it
func (r *Runner) RunSuite(ctx context.Context, suite TestSuite) (TestRunResult, error) {
	start := time.Now()
	result := TestRunResult{
		Job: TestJob{
			Name:  suite.Name,
			Suite: suite,
		},
		Results: make([]TestResult, 0, len(suite.Steps)),
	}

	d, err := CreateDraft(ctx, r.Client, r.BaseURL, suite.Seed)
	if err != nil {
		result.Error = fmt.Errorf("failed to seed draft: %w", err)
		result.Duration = time.Since(start)
		return result, result.Error
	}
	result.DraftID = d.ID

	if !r.KeepDrafts {
		defer func() {
			if err := DeleteDraft(context.WithoutCancel(ctx), r.Client, r.BaseURL, d.ID); err != nil {
				r.Logger("    Warning: failed to delete draft %s: %v", d.ID, err)
			}
		}()
	}

	for i, step := range suite.Steps {
		r.Logger("    [%d/%d] Running step: %s", i+1, len(suite.Steps), step.Name)
		stepResult := r.executeStep(ctx, d.ID, step, suite.Seed)
		stepResult.TestName = suite.Name
		result.Results = append(result.Results, stepResult)

		if stepResult.Error != nil {
			r.Logger("    [%d/%d] ✗ %s: %v", i+1, len(suite.Steps), step.Name, stepResult.Error)
			if result.Error == nil {
				result.Error = fmt.Errorf("step %d (%s) failed: %w", i, step.Name, stepResult.Error)
			}
			// Break only if error handling mode is "exit"
			if r.ErrorHandlingMode == ErrorHandlingExit {
				break
			}
			continue
		}

		r.Logger("    [%d/%d] ✓ %s (%v)", i+1, len(suite.Steps), step.Name, stepResult.Duration)
	}

	result.Duration = time.Since(start)
	return result, result.Error
}

// executeStep performs one step and checks its expectations
func (r *Runner) executeStep(ctx context.Context, draftID uuid.UUID, step TestStep, seed json.RawMessage) TestResult {
	start := time.Now()
	result := TestResult{StepName: step.Name}
	done := func(err error) TestResult {
		result.Error = err
		result.Success = err == nil
		result.Duration = time.Since(start)
		return result
	}

	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	switch step.Action {
	case ActionUpdate, ActionReset:
		body := step.Mob
		if step.Action == ActionReset {
			body = seed
		}
		code, respBody, err := PutMob(ctx, r.Client, r.BaseURL, draftID, body)
		if err != nil {
			return done(err)
		}
		if err := checkStatus(step.Expectations, code, respBody); err != nil {
			return done(err)
		}
		if code != http.StatusOK {
			// a rejected update leaves the draft alone; nothing to render
			return done(nil)
		}
		fallthrough

	case ActionRender:
		text, err := GetRender(ctx, r.Client, r.BaseURL, draftID)
		if err != nil {
			return done(err)
		}
		result.ResponseText = text
		if err := CheckRender(step.Expectations, text); err != nil {
			return done(fmt.Errorf("expectation failed: %w", err))
		}
		return done(nil)

	case ActionCheck, ActionExport:
		requestID, err := PostJob(ctx, r.Client, r.BaseURL, draftID, queue.JobType(step.Action))
		if err != nil {
			return done(err)
		}
		result.RequestID = requestID

		status, err := PollForJob(ctx, r.Client, r.BaseURL, requestID)
		if err != nil {
			return done(err)
		}
		result.ResponseText = string(status.State)
		if err := CheckJob(step.Expectations, status); err != nil {
			return done(fmt.Errorf("expectation failed: %w", err))
		}
		return done(nil)

	default:
		return done(fmt.Errorf("unknown action %q", step.Action))
	}
}

func checkStatus(exp Expectations, code int, body string) error {
	want := http.StatusOK
	if exp.Status != nil {
		want = *exp.Status
	}
	if code != want {
		return fmt.Errorf("expected status %d, got %d: %s", want, code, body)
	}
	return nil
}

// CheckRender validates the render expectations against a rendered block
func CheckRender(exp Expectations, text string) error {
	if exp.Render != nil && text != *exp.Render {
		return fmt.Errorf("expected render %q, got %q", *exp.Render, text)
	}

	for _, want := range exp.RenderContains {
		if !strings.Contains(text, want) {
			return fmt.Errorf("expected render to contain '%s', but it didn't", want)
		}
	}

	for _, unwanted := range exp.RenderNotContains {
		if strings.Contains(text, unwanted) {
			return fmt.Errorf("expected render to NOT contain '%s', but it did", unwanted)
		}
	}

	if exp.RenderRegex != "" {
		matched, err := regexp.MatchString(exp.RenderRegex, text)
		if err != nil {
			return fmt.Errorf("invalid regex pattern: %w", err)
		}
		if !matched {
			return fmt.Errorf("render didn't match regex pattern: %s", exp.RenderRegex)
		}
	}
	return nil
}

// CheckJob validates the job expectations against a finished job's status.
// Without a job_state expectation the job must be done.
func CheckJob(exp Expectations, status *queue.Status) error {
	want := string(queue.StateDone)
	if exp.JobState != nil {
		want = *exp.JobState
	}
	if string(status.State) != want {
		return fmt.Errorf("expected job state %s, got %s (%s)", want, status.State, status.Error)
	}
	if exp.PathSuffix != "" && !strings.HasSuffix(status.Path, exp.PathSuffix) {
		return fmt.Errorf("expected export path ending in %s, got %s", exp.PathSuffix, status.Path)
	}
	if exp.ErrorContains != "" && !strings.Contains(status.Error, exp.ErrorContains) {
		return fmt.Errorf("expected job error to contain '%s', got '%s'", exp.ErrorContains, status.Error)
	}
	return nil
}
