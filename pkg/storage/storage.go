package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jwebster45206/mythic-editor/pkg/draft"
)

// ErrDraftNotFound is returned by Require when no draft has the id.
var ErrDraftNotFound = errors.New("draft not found")

// Storage persists editor drafts
type Storage interface {
	// Health and lifecycle
	Ping(ctx context.Context) error
	Close() error

	// SaveDraft writes d, refreshing its UpdatedAt timestamp.
	SaveDraft(ctx context.Context, d *draft.Draft) error
	// LoadDraft returns nil, nil when the draft does not exist or expired.
	LoadDraft(ctx context.Context, id uuid.UUID) (*draft.Draft, error)
	// DeleteDraft removes a draft. Deleting a missing draft is not an error.
	DeleteDraft(ctx context.Context, id uuid.UUID) error
	// ListDrafts returns every stored draft, most recently updated first.
	ListDrafts(ctx context.Context) ([]draft.Summary, error)
}

// Require loads a draft and turns a missing one into ErrDraftNotFound.
func Require(ctx context.Context, s Storage, id uuid.UUID) (*draft.Draft, error) {
	d, err := s.LoadDraft(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, fmt.Errorf("%w: %s", ErrDraftNotFound, id)
	}
	return d, nil
}
