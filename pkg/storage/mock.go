package storage

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jwebster45206/mythic-editor/pkg/draft"
)

// MockStorage is an in-memory implementation of Storage for testing.
// Drafts are stored in their JSON form so callers never share a mob with
// the store.
type MockStorage struct {
	mu        sync.RWMutex
	drafts    map[uuid.UUID][]byte
	pingError error
	saveError error
}

// Ensure MockStorage implements Storage interface
var _ Storage = (*MockStorage)(nil)

// NewMockStorage creates a new mock storage
func NewMockStorage() *MockStorage {
	return &MockStorage{
		drafts: make(map[uuid.UUID][]byte),
	}
}

// SetPingError configures the mock to fail on ping with the given error
func (m *MockStorage) SetPingError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingError = err
}

// SetSaveError makes SaveDraft fail with err until cleared with nil
func (m *MockStorage) SetSaveError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveError = err
}

// Ping mocks storage ping
func (m *MockStorage) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pingError
}

// Close mocks storage close
func (m *MockStorage) Close() error {
	return nil
}

// SaveDraft stores a copy of d
func (m *MockStorage) SaveDraft(ctx context.Context, d *draft.Draft) error {
	if d == nil {
		return errors.New("draft cannot be nil")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveError != nil {
		return m.saveError
	}

	d.Touch(time.Now())
	data, err := json.Marshal(d)
	if err != nil {
		return err
	}
	m.drafts[d.ID] = data
	return nil
}

// LoadDraft returns a copy of the stored draft, or nil
func (m *MockStorage) LoadDraft(ctx context.Context, id uuid.UUID) (*draft.Draft, error) {
	m.mu.RLock()
	data, exists := m.drafts[id]
	m.mu.RUnlock()
	if !exists {
		return nil, nil
	}
	return draft.Decode(data)
}

// DeleteDraft mocks deleting a draft
func (m *MockStorage) DeleteDraft(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.drafts, id)
	return nil
}

// ListDrafts lists stored drafts, most recently updated first
func (m *MockStorage) ListDrafts(ctx context.Context) ([]draft.Summary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]draft.Summary, 0, len(m.drafts))
	for _, data := range m.drafts {
		d, err := draft.Decode(data)
		if err != nil {
			return nil, err
		}
		out = append(out, d.Summary())
	}
	SortSummaries(out)
	return out, nil
}

// SortSummaries orders summaries by UpdatedAt, newest first, then by id.
func SortSummaries(s []draft.Summary) {
	slices.SortFunc(s, func(a, b draft.Summary) int {
		if c := b.UpdatedAt.Compare(a.UpdatedAt); c != 0 {
			return c
		}
		return slices.Compare(a.ID[:], b.ID[:])
	})
}
