package runner

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Step actions
const (
	ActionRender = "render" // GET the draft's rendered block
	ActionUpdate = "update" // PUT a new mob, then render
	ActionReset  = "reset"  // PUT the seed mob back, then render
	ActionCheck  = "check"  // queue a check job and wait for it
	ActionExport = "export" // queue an export job and wait for it
)

// TestSuite defines a complete integration test scenario
// Can either be a regular test with Steps, or a suite that references other Cases
type TestSuite struct {
	Name  string          `json:"name"`
	Seed  json.RawMessage `json:"seed,omitempty"`  // Mob the draft starts from
	Steps []TestStep      `json:"steps,omitempty"` // Used for regular tests
	Cases []string        `json:"cases,omitempty"` // Used for suite tests (list of case files)
}

// IsSequence returns true if this is a suite that sequences other cases
func (ts *TestSuite) IsSequence() bool {
	return len(ts.Cases) > 0
}

// TestStep defines a single action and its expected outcomes
type TestStep struct {
	Name         string          `json:"name,omitempty"`
	Action       string          `json:"action"`
	Mob          json.RawMessage `json:"mob,omitempty"` // Body for update steps
	Expectations Expectations    `json:"expect"`
}

// Expectations defines what to check after a test step executes
type Expectations struct {
	// Rendered block, for render, update and reset steps
	Render            *string  `json:"render,omitempty"`
	RenderContains    []string `json:"render_contains,omitempty"`
	RenderNotContains []string `json:"render_not_contains,omitempty"`
	RenderRegex       string   `json:"render_regex,omitempty"`

	// HTTP status of the step's write, for update steps
	Status *int `json:"status,omitempty"`

	// Job outcome, for check and export steps
	JobState      *string `json:"job_state,omitempty"`
	PathSuffix    string  `json:"path_suffix,omitempty"`
	ErrorContains string  `json:"error_contains,omitempty"`
}

// TestResult contains the outcome of running a test step
type TestResult struct {
	TestName     string
	StepName     string
	Success      bool
	Error        error
	Duration     time.Duration
	ResponseText string
	RequestID    string
}

// TestJob represents a test suite to be executed
type TestJob struct {
	Name     string
	Suite    TestSuite
	CaseFile string
}

// TestRunResult contains the results of running an entire test suite
type TestRunResult struct {
	Job      TestJob
	Results  []TestResult
	Error    error
	Duration time.Duration
	DraftID  uuid.UUID // ID of the draft used for this test
}
