package main

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	backend "github.com/jwebster45206/mythic-editor/internal/storage"
	"github.com/jwebster45206/mythic-editor/pkg/draft"
	"github.com/jwebster45206/mythic-editor/pkg/mechanic"
	"github.com/jwebster45206/mythic-editor/pkg/storage"
	"github.com/jwebster45206/mythic-editor/pkg/targeter"
	"github.com/jwebster45206/mythic-editor/pkg/trigger"
)

func newTestUI(t *testing.T, store storage.Storage) EditorUI {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	ui := NewEditorUI(log, store, backend.NewExporter(t.TempDir(), log), nil)
	model, _ := ui.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return model.(EditorUI)
}

// enter types input into the command line and presses Enter.
func enter(t *testing.T, ui EditorUI, input string) (EditorUI, tea.Cmd) {
	t.Helper()
	ui.textarea.SetValue(input)
	model, cmd := ui.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return model.(EditorUI), cmd
}

func press(t *testing.T, ui EditorUI, msg tea.Msg) (EditorUI, tea.Cmd) {
	t.Helper()
	model, cmd := ui.Update(msg)
	return model.(EditorUI), cmd
}

// finish runs an async command and feeds its message back.
func finish(t *testing.T, ui EditorUI, cmd tea.Cmd) EditorUI {
	t.Helper()
	require.NotNil(t, cmd)
	ui, _ = press(t, ui, cmd())
	return ui
}

func TestEditorUI_View(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	ui := NewEditorUI(log, nil, backend.NewExporter(t.TempDir(), log), nil)
	assert.Contains(t, ui.View(), "Initializing")
	assert.Contains(t, ui.status, "drafts disabled")

	ui, _ = press(t, ui, tea.WindowSizeMsg{Width: 120, Height: 40})
	view := ui.View()
	assert.Contains(t, view, "MOB")
	assert.Contains(t, view, "OUTPUT")
	assert.Contains(t, view, "Default_Mob_Name:")
}

func TestEditorUI_EditsRefreshThePreview(t *testing.T) {
	ui := newTestUI(t, nil)

	ui, _ = enter(t, ui, "/name Fire Imp")
	ui, _ = enter(t, ui, "/kind Blaze")
	ui, _ = enter(t, ui, "/add")
	ui, _ = enter(t, ui, "/clear mechanic")
	assert.NoError(t, ui.err)
	assert.Contains(t, ui.previewViewport.View(), "Fire_Imp:")
	assert.Contains(t, ui.previewViewport.View(), "Type: Blaze")
	assert.Equal(t, "", ui.textarea.Value(), "command line is cleared")

	ui, _ = enter(t, ui, "/health lots")
	assert.Error(t, ui.err)

	ui, _ = enter(t, ui, "add")
	assert.ErrorContains(t, ui.err, "commands start with '/'")

	ui, _ = enter(t, ui, "/bogus")
	assert.ErrorContains(t, ui.err, "unknown command /bogus")

	ui, _ = enter(t, ui, "/help")
	assert.NoError(t, ui.err)
	assert.Contains(t, ui.formViewport.View(), "COMMANDS")
}

func TestEditorUI_MechanicPicker(t *testing.T) {
	ui := newTestUI(t, nil)

	ui, _ = enter(t, ui, "/mechanic")
	assert.ErrorIs(t, ui.err, errNoSkill)
	assert.Nil(t, ui.picker)

	ui, _ = enter(t, ui, "/add")
	ui, _ = enter(t, ui, "/mechanic ignite")
	require.NotNil(t, ui.picker)
	want := mechanic.Label(ui.picker.items[0].value.(mechanic.Mechanic))
	assert.Contains(t, ui.View(), "Select a Mechanic")

	ui, _ = press(t, ui, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, ui.picker)
	assert.Equal(t, want, mechanic.Label(ui.doc.Mob.SelectedSkill().Mechanic))
}

func TestEditorUI_TargeterAndTriggerPickers(t *testing.T) {
	ui := newTestUI(t, nil)
	ui, _ = enter(t, ui, "/add")

	ui, _ = enter(t, ui, "/targeter multi")
	require.NotNil(t, ui.picker)
	ui, _ = press(t, ui, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, ui.picker, "choosing a family opens the entity picker")
	assert.Equal(t, pickMulti, ui.picker.kind)

	ui, _ = press(t, ui, keyRunes("children"))
	ui, _ = press(t, ui, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, ui.picker)
	assert.Equal(t, targeter.Multi(targeter.Children), ui.doc.Mob.SelectedSkill().Targeter)

	ui, _ = enter(t, ui, "/targeter threat")
	ui, _ = press(t, ui, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, ui.picker)
	assert.Equal(t, targeter.ThreatTable(), ui.doc.Mob.SelectedSkill().Targeter)

	ui, _ = enter(t, ui, "/trigger spawn or")
	ui, _ = press(t, ui, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, trigger.SpawnOrLoad, ui.doc.Mob.SelectedSkill().Trigger)

	ui, _ = enter(t, ui, "/trigger")
	ui, _ = press(t, ui, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, ui.picker)
	assert.Equal(t, trigger.SpawnOrLoad, ui.doc.Mob.SelectedSkill().Trigger, "cancel keeps the trigger")
}

func TestEditorUI_KindPicker(t *testing.T) {
	ui := newTestUI(t, nil)
	ui, _ = enter(t, ui, "/kind")
	require.NotNil(t, ui.picker)
	ui, _ = press(t, ui, keyRunes("ghast"))
	ui, _ = press(t, ui, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, ui.picker)
	assert.Equal(t, "Ghast", ui.doc.Mob.Kind.String())

	ui, _ = enter(t, ui, "/kind metaskill")
	assert.Nil(t, ui.picker, "a named kind is set without the picker")
	assert.True(t, ui.doc.Mob.Kind.IsMetaSkill())
}

func TestEditorUI_CopyAndExport(t *testing.T) {
	ui := newTestUI(t, nil)
	ui, _ = enter(t, ui, "/name Copy Me")

	var copied string
	ui.copyText = func(s string) error {
		copied = s
		return nil
	}
	ui, _ = enter(t, ui, "/copy")
	assert.NoError(t, ui.err)
	assert.Equal(t, "Copy_Me:\n  Type: Zombie", copied)

	ui.copyText = func(string) error { return errors.New("no clipboard") }
	ui, _ = enter(t, ui, "/copy")
	assert.ErrorContains(t, ui.err, "no clipboard")

	ui, _ = enter(t, ui, "/export")
	require.NoError(t, ui.err)
	path := filepath.Join(ui.exporter.Dir(), "Copy_Me.yml")
	assert.Equal(t, "Exported to "+path, ui.status)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Copy_Me:\n  Type: Zombie\n", string(data))
}

func TestEditorUI_DraftsDisabled(t *testing.T) {
	ui := newTestUI(t, nil)

	ui, cmd := enter(t, ui, "/save")
	assert.Nil(t, cmd)
	assert.ErrorContains(t, ui.err, "drafts are disabled")

	ui, cmd = enter(t, ui, "/open")
	assert.Nil(t, cmd)
	assert.ErrorContains(t, ui.err, "drafts are disabled")
}

func TestEditorUI_SaveAndOpen(t *testing.T) {
	store := storage.NewMockStorage()
	ui := newTestUI(t, store)
	savedID := ui.doc.ID

	ui, cmd := enter(t, ui, "/open")
	ui = finish(t, ui, cmd)
	assert.Equal(t, "No saved drafts", ui.status)

	ui, _ = enter(t, ui, "/name Saved Mob")
	ui, cmd = enter(t, ui, "/save")
	assert.True(t, ui.busy)

	// edits while saving are ignored
	ui, _ = enter(t, ui, "/name Too Late")
	assert.Equal(t, "Saved Mob", ui.doc.Mob.Name)

	ui = finish(t, ui, cmd)
	assert.False(t, ui.busy)
	assert.NoError(t, ui.err)
	assert.Contains(t, ui.status, "Draft saved")

	ui, _ = enter(t, ui, "/new")
	assert.NotEqual(t, savedID, ui.doc.ID)
	assert.Equal(t, "", ui.doc.Mob.Name)

	ui, cmd = enter(t, ui, "/open")
	ui = finish(t, ui, cmd)
	require.NotNil(t, ui.picker)
	assert.Equal(t, pickDraft, ui.picker.kind)
	require.Len(t, ui.picker.items, 1)

	ui, cmd = press(t, ui, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, ui.picker)
	ui = finish(t, ui, cmd)
	assert.NoError(t, ui.err)
	assert.Equal(t, savedID, ui.doc.ID)
	assert.Equal(t, "Saved Mob", ui.doc.Mob.Name)
	assert.Equal(t, "Opened Saved_Mob", ui.status)
}

func TestEditorUI_SaveFailure(t *testing.T) {
	store := storage.NewMockStorage()
	store.SetSaveError(errors.New("redis down"))
	ui := newTestUI(t, store)

	ui, cmd := enter(t, ui, "/save")
	ui = finish(t, ui, cmd)
	assert.ErrorContains(t, ui.err, "save failed: redis down")
}

func TestEditorUI_LoadFailure(t *testing.T) {
	ui := newTestUI(t, storage.NewMockStorage())
	ui = finish(t, ui, ui.loadDraft(draft.New(nil).ID))
	assert.ErrorIs(t, ui.err, storage.ErrDraftNotFound)
}

func TestEditorUI_QuitModal(t *testing.T) {
	ui := newTestUI(t, nil)

	ui, _ = enter(t, ui, "/quit")
	assert.True(t, ui.showQuitModal)
	assert.Contains(t, ui.View(), "Quit Editor?")

	ui, _ = press(t, ui, keyRunes("n"))
	assert.False(t, ui.showQuitModal)

	ui, _ = press(t, ui, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, ui.showQuitModal)
	_, cmd := press(t, ui, keyRunes("y"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
