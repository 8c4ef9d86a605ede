package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jwebster45206/mythic-editor/pkg/draft"
	"github.com/jwebster45206/mythic-editor/pkg/queue"
)

const (
	// PollInterval is how often to check a job's status
	PollInterval = 250 * time.Millisecond
	// JobTimeout is max time to wait for the worker to finish a job
	JobTimeout = 30 * time.Second
)

func closeBody(resp *http.Response) {
	_ = resp.Body.Close()
}

// CreateDraft posts a mob (or nothing) and returns the new draft
func CreateDraft(ctx context.Context, client *http.Client, baseURL string, mob json.RawMessage) (*draft.Draft, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/v1/drafts", bytes.NewReader(mob))
	if err != nil {
		return nil, fmt.Errorf("failed to create POST request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to create draft: %w", err)
	}
	defer closeBody(resp)

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("create draft returned %d: %s", resp.StatusCode, string(body))
	}
	return draft.Decode(body)
}

// PutMob replaces the draft's mob and returns the status code and body
func PutMob(ctx context.Context, client *http.Client, baseURL string, id uuid.UUID, mob json.RawMessage) (int, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, baseURL+"/v1/drafts/"+id.String(), bytes.NewReader(mob))
	if err != nil {
		return 0, "", fmt.Errorf("failed to create PUT request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("failed to execute PUT request: %w", err)
	}
	defer closeBody(resp)

	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body), nil
}

// GetRender returns the draft's rendered block without the trailing newline
func GetRender(ctx context.Context, client *http.Client, baseURL string, id uuid.UUID) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/v1/drafts/"+id.String()+"/render", nil)
	if err != nil {
		return "", fmt.Errorf("failed to create render request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to get render: %w", err)
	}
	defer closeBody(resp)

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("render returned %d: %s", resp.StatusCode, string(body))
	}
	return string(bytes.TrimSuffix(body, []byte("\n"))), nil
}

// DeleteDraft removes the draft a suite created
func DeleteDraft(ctx context.Context, client *http.Client, baseURL string, id uuid.UUID) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, baseURL+"/v1/drafts/"+id.String(), nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer closeBody(resp)
	if resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("delete returned %d", resp.StatusCode)
	}
	return nil
}

// PostJob queues a job for the draft and returns its request_id
func PostJob(ctx context.Context, client *http.Client, baseURL string, id uuid.UUID, jobType queue.JobType) (string, error) {
	reqBody, err := json.Marshal(map[string]string{
		"draft_id": id.String(),
		"type":     string(jobType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal job request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/v1/exports", bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create job request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send job request: %w", err)
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusAccepted {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("exports endpoint returned %d (expected 202): %s", resp.StatusCode, string(body))
	}

	var status queue.Status
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return "", fmt.Errorf("failed to decode job status: %w", err)
	}
	return status.RequestID, nil
}

// PollForJob waits until the job is done or failed
func PollForJob(ctx context.Context, client *http.Client, baseURL, requestID string) (*queue.Status, error) {
	deadline := time.Now().Add(JobTimeout)
	for {
		status, err := getStatus(ctx, client, baseURL, requestID)
		if err != nil {
			return nil, err
		}
		if status.State == queue.StateDone || status.State == queue.StateFailed {
			return status, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("timeout waiting for job %s, last state %s", requestID, status.State)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(PollInterval):
		}
	}
}

func getStatus(ctx context.Context, client *http.Client, baseURL, requestID string) (*queue.Status, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/v1/exports/"+requestID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create status request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get job status: %w", err)
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("status returned %d: %s", resp.StatusCode, string(body))
	}
	var status queue.Status
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("failed to decode job status: %w", err)
	}
	return &status, nil
}
