package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jwebster45206/mythic-editor/pkg/draft"
	"github.com/jwebster45206/mythic-editor/pkg/mob"
)

func TestMockStorage_SaveAndLoadDraft(t *testing.T) {
	s := NewMockStorage()
	ctx := context.Background()

	m := mob.New()
	m.Name = "Grave Keeper"
	m.Health = 40
	d := draft.New(m)

	if err := s.SaveDraft(ctx, d); err != nil {
		t.Fatalf("Failed to save draft: %v", err)
	}

	loaded, err := s.LoadDraft(ctx, d.ID)
	if err != nil {
		t.Fatalf("Failed to load draft: %v", err)
	}
	if loaded == nil {
		t.Fatal("Expected non-nil draft")
	}
	if loaded.Render() != d.Render() {
		t.Errorf("Expected %q, got %q", d.Render(), loaded.Render())
	}

	// the stored copy is independent of the caller's mob
	m.Health = 1
	loaded, _ = s.LoadDraft(ctx, d.ID)
	if loaded.Mob.Health != 40 {
		t.Errorf("Expected stored health 40, got %d", loaded.Mob.Health)
	}
}

func TestMockStorage_LoadMissingDraft(t *testing.T) {
	s := NewMockStorage()
	ctx := context.Background()

	loaded, err := s.LoadDraft(ctx, uuid.New())
	if err != nil {
		t.Fatalf("Expected no error for missing draft, got: %v", err)
	}
	if loaded != nil {
		t.Error("Expected nil for missing draft")
	}

	_, err = Require(ctx, s, uuid.New())
	if !errors.Is(err, ErrDraftNotFound) {
		t.Errorf("Expected ErrDraftNotFound, got %v", err)
	}
}

func TestMockStorage_DeleteDraft(t *testing.T) {
	s := NewMockStorage()
	ctx := context.Background()
	d := draft.New(nil)

	if err := s.SaveDraft(ctx, d); err != nil {
		t.Fatal(err)
	}
	if err := s.DeleteDraft(ctx, d.ID); err != nil {
		t.Fatalf("Failed to delete draft: %v", err)
	}
	if loaded, _ := s.LoadDraft(ctx, d.ID); loaded != nil {
		t.Error("Draft should be nil after deletion")
	}
	if err := s.DeleteDraft(ctx, d.ID); err != nil {
		t.Errorf("Deleting a missing draft should not fail: %v", err)
	}
}

func TestMockStorage_ListDrafts(t *testing.T) {
	s := NewMockStorage()
	ctx := context.Background()

	older := draft.New(nil)
	older.Mob.Name = "older"
	newer := draft.New(nil)
	newer.Mob.Name = "newer"

	if err := s.SaveDraft(ctx, older); err != nil {
		t.Fatal(err)
	}
	time.Sleep(5 * time.Millisecond)
	if err := s.SaveDraft(ctx, newer); err != nil {
		t.Fatal(err)
	}

	list, err := s.ListDrafts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Fatalf("Expected 2 drafts, got %d", len(list))
	}
	if list[0].Name != "newer" || list[1].Name != "older" {
		t.Errorf("Expected newest first, got %v, %v", list[0].Name, list[1].Name)
	}
}

func TestMockStorage_Errors(t *testing.T) {
	s := NewMockStorage()
	ctx := context.Background()

	if err := s.SaveDraft(ctx, nil); err == nil {
		t.Error("Expected error saving nil draft")
	}

	boom := errors.New("boom")
	s.SetSaveError(boom)
	if err := s.SaveDraft(ctx, draft.New(nil)); !errors.Is(err, boom) {
		t.Errorf("Expected save error, got %v", err)
	}

	s.SetPingError(boom)
	if err := s.Ping(ctx); !errors.Is(err, boom) {
		t.Errorf("Expected ping error, got %v", err)
	}
}
