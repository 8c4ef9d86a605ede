package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/muesli/reflow/wordwrap"

	backend "github.com/jwebster45206/mythic-editor/internal/storage"
	"github.com/jwebster45206/mythic-editor/internal/logger"
	"github.com/jwebster45206/mythic-editor/pkg/draft"
	"github.com/jwebster45206/mythic-editor/pkg/mechanic"
	"github.com/jwebster45206/mythic-editor/pkg/mob"
	"github.com/jwebster45206/mythic-editor/pkg/storage"
	"github.com/jwebster45206/mythic-editor/pkg/targeter"
	"github.com/jwebster45206/mythic-editor/pkg/trigger"
)

const PlaceHolderText = "Type a command, e.g. /add or /help..."

// storageTimeout bounds every draft store call made from the UI.
const storageTimeout = 5 * time.Second

// EditorUI is the BubbleTea model that runs the editor.
// https://github.com/charmbracelet/bubbletea
type EditorUI struct {
	logger   *slog.Logger
	store    storage.Storage // nil when drafts are disabled
	exporter *backend.Exporter
	doc      *draft.Draft

	formViewport    viewport.Model
	previewViewport viewport.Model
	textarea        textarea.Model
	ready           bool
	width           int
	height          int

	status string
	err    error
	busy   bool

	picker        *picker
	showQuitModal bool

	// copyText writes to the system clipboard; swapped out in tests.
	copyText func(string) error
}

type draftSavedMsg struct {
	id  uuid.UUID
	err error
}

type draftsListedMsg struct {
	list []draft.Summary
	err  error
}

type draftLoadedMsg struct {
	doc *draft.Draft
	err error
}

var (
	formPanelStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingBottom(1).
			PaddingLeft(2).
			PaddingRight(1)

	previewPanelStyle = lipgloss.NewStyle().
				PaddingTop(1).
				PaddingBottom(0).
				PaddingLeft(1).
				PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // purple
			Bold(true)

	outputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")). // teal
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)

	modalItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	modalSelectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("205")).
				Bold(true)

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey
)

func NewEditorUI(log *slog.Logger, store storage.Storage, exporter *backend.Exporter, doc *draft.Draft) EditorUI {
	ta := textarea.New()
	ta.Placeholder = PlaceHolderText
	ta.Focus()
	ta.Prompt = promptStyle.Render(":: ")
	ta.CharLimit = 1000
	ta.SetWidth(50)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	formVp := viewport.New(50, 20)
	formVp.MouseWheelEnabled = true
	previewVp := viewport.New(30, 20)
	previewVp.MouseWheelEnabled = true

	if doc == nil {
		doc = draft.New(nil)
	}

	status := "Type /help for commands"
	if store == nil {
		status += " (drafts disabled: REDIS_URL is not set)"
	}

	ui := EditorUI{
		logger:          log,
		store:           store,
		exporter:        exporter,
		doc:             doc,
		textarea:        ta,
		formViewport:    formVp,
		previewViewport: previewVp,
		status:          status,
		copyText:        clipboard.WriteAll,
	}
	ui.refresh()
	return ui
}

func (m EditorUI) Init() tea.Cmd {
	return textarea.Blink
}

func (m EditorUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}
	if m.picker != nil {
		if key, ok := msg.(tea.KeyMsg); ok {
			return m.updatePicker(key)
		}
	}

	var (
		tiCmd tea.Cmd
		fvCmd tea.Cmd
		pvCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.formViewport, fvCmd = m.formViewport.Update(msg)
		m.previewViewport, pvCmd = m.previewViewport.Update(msg)
		return m, tea.Batch(fvCmd, pvCmd)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.ready = true
		m.refresh()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyPgUp, tea.KeyPgDown:
			m.previewViewport, pvCmd = m.previewViewport.Update(msg)
			return m, pvCmd
		case tea.KeyEnter:
			if m.busy {
				return m, nil
			}
			input := strings.TrimSpace(m.textarea.Value())
			m.textarea.Reset()
			if input == "" {
				return m, nil
			}
			return m.handleCommand(input)
		}

	case draftSavedMsg:
		m.busy = false
		if msg.err != nil {
			m.setError(fmt.Errorf("save failed: %w", msg.err))
		} else {
			m.setStatus("Draft saved (" + msg.id.String()[:8] + ")")
		}
		return m, nil

	case draftsListedMsg:
		m.busy = false
		if msg.err != nil {
			m.setError(fmt.Errorf("listing drafts failed: %w", msg.err))
			return m, nil
		}
		if len(msg.list) == 0 {
			m.setStatus("No saved drafts")
			return m, nil
		}
		m.picker = newPicker(pickDraft, "Open Draft", "", draftItems(msg.list))
		return m, nil

	case draftLoadedMsg:
		m.busy = false
		if msg.err != nil {
			m.setError(fmt.Errorf("open failed: %w", msg.err))
			return m, nil
		}
		m.doc = msg.doc
		m.doc.Mob.SelectFirst()
		m.setStatus("Opened " + m.doc.Summary().Name)
		m.refresh()
		return m, nil
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.formViewport, fvCmd = m.formViewport.Update(msg)
	return m, tea.Batch(tiCmd, fvCmd)
}

func (m EditorUI) handleCommand(input string) (tea.Model, tea.Cmd) {
	c, ok := parseCommand(input)
	if !ok {
		m.setError(fmt.Errorf("commands start with '/': %q", input))
		return m, nil
	}

	status, handled, err := applyEdit(m.doc.Mob, c)
	if handled {
		if err != nil {
			m.setError(err)
		} else {
			m.setStatus(status)
		}
		m.refresh()
		return m, nil
	}

	switch c.name {
	case "help":
		m.setStatus("Commands listed in the form panel")
		m.formViewport.SetContent(titleStyle.Render("COMMANDS") + "\n\n" + helpText + "\n")
		m.formViewport.GotoTop()
		return m, nil

	case "mechanic":
		if m.doc.Mob.SelectedSkill() == nil {
			m.setError(errNoSkill)
			return m, nil
		}
		m.picker = newPicker(pickMechanic, "Select a Mechanic", c.args, mechanicItems)

	case "kind":
		m.picker = newPicker(pickKind, "Select a Kind", c.args, kindItems)

	case "targeter":
		if m.doc.Mob.SelectedSkill() == nil {
			m.setError(errNoSkill)
			return m, nil
		}
		m.picker = newPicker(pickFamily, "Targeter Family", c.args, familyItems)

	case "trigger":
		if m.doc.Mob.SelectedSkill() == nil {
			m.setError(errNoSkill)
			return m, nil
		}
		m.picker = newPicker(pickTrigger, "Select a Trigger", c.args, triggerItems)

	case "render":
		m.refresh()
		m.previewViewport.GotoTop()
		if err := mob.Check(m.doc.Mob); err != nil {
			m.setError(err)
		} else {
			m.setStatus("Rendered")
		}

	case "copy":
		if err := m.copyText(mob.Render(m.doc.Mob)); err != nil {
			m.logger.Warn("Clipboard write failed", "error", err)
			m.setError(fmt.Errorf("copy failed: %w", err))
		} else {
			m.setStatus("Copied output to the clipboard")
		}

	case "export":
		path, err := m.exporter.Export(m.doc.Mob)
		if err != nil {
			m.setError(err)
		} else {
			m.setStatus("Exported to " + path)
		}

	case "save":
		if m.store == nil {
			m.setError(fmt.Errorf("drafts are disabled: set REDIS_URL"))
			return m, nil
		}
		// the store works on a copy so edits made while it runs are not raced
		doc, err := m.doc.Clone()
		if err != nil {
			m.setError(err)
			return m, nil
		}
		m.busy = true
		return m, m.saveDraft(doc)

	case "open":
		if m.store == nil {
			m.setError(fmt.Errorf("drafts are disabled: set REDIS_URL"))
			return m, nil
		}
		m.busy = true
		return m, m.listDrafts()

	case "new":
		m.doc = draft.New(nil)
		m.setStatus("Started a new draft")
		m.refresh()

	case "quit":
		m.showQuitModal = true

	default:
		m.setError(fmt.Errorf("unknown command /%s; try /help", c.name))
	}
	return m, nil
}

func (m EditorUI) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.picker
	chosen, done := p.update(msg)
	if done {
		m.picker = nil
	}
	if chosen == nil {
		return m, nil
	}

	s := m.doc.Mob.SelectedSkill()
	switch p.kind {
	case pickMechanic:
		mech := chosen.value.(mechanic.Mechanic)
		s.Mechanic = mech
		m.setStatus("Mechanic set to " + mechanic.Label(mech))

	case pickKind:
		k := chosen.value.(mob.Kind)
		m.doc.Mob.SetKind(k)
		m.setStatus("Kind set to " + k.String())

	case pickFamily:
		f := chosen.value.(targeter.Family)
		s.Targeter.SetFamily(f)
		switch f {
		case targeter.FamilySingle:
			m.picker = newPicker(pickSingle, "Single Entity Targeter", "", singleItems)
		case targeter.FamilyMulti:
			m.picker = newPicker(pickMulti, "Multi Entity Targeter", "", multiItems)
		}
		m.setStatus("Targeter set to " + s.Targeter.Label())

	case pickSingle:
		s.Targeter = targeter.Single(chosen.value.(targeter.SingleEntity))
		m.setStatus("Targeter set to " + s.Targeter.Render())

	case pickMulti:
		s.Targeter = targeter.Multi(chosen.value.(targeter.MultiEntity))
		m.setStatus("Targeter set to " + s.Targeter.Render())

	case pickTrigger:
		s.Trigger = chosen.value.(trigger.Trigger)
		m.setStatus("Trigger set to " + s.Trigger.Label())

	case pickDraft:
		m.busy = true
		return m, m.loadDraft(chosen.value.(uuid.UUID))
	}

	m.refresh()
	return m, nil
}

func (m EditorUI) saveDraft(doc *draft.Draft) tea.Cmd {
	store, log := m.store, logger.WithDraftID(m.logger, doc.ID)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
		defer cancel()
		if err := store.SaveDraft(ctx, doc); err != nil {
			logger.WithError(log, err).Error("Failed to save draft")
			return draftSavedMsg{doc.ID, err}
		}
		log.Info("Draft saved")
		return draftSavedMsg{doc.ID, nil}
	}
}

func (m EditorUI) listDrafts() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
		defer cancel()
		list, err := store.ListDrafts(ctx)
		return draftsListedMsg{list, err}
	}
}

func (m EditorUI) loadDraft(id uuid.UUID) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
		defer cancel()
		d, err := storage.Require(ctx, store, id)
		return draftLoadedMsg{d, err}
	}
}

func (m *EditorUI) setStatus(s string) {
	m.status = s
	m.err = nil
}

func (m *EditorUI) setError(err error) {
	m.err = err
	m.status = ""
}

func (m *EditorUI) resize() {
	formWidth := int(float64(m.width)*0.6) - 2
	previewWidth := m.width - formWidth - 4

	m.formViewport.Width = formWidth - 3
	m.formViewport.Height = m.height - 6
	m.previewViewport.Width = previewWidth - 3
	m.previewViewport.Height = m.height - 3
	m.textarea.SetWidth(formWidth - 4)
}

// refresh redraws both panels from the current draft.
func (m *EditorUI) refresh() {
	m.formViewport.SetContent(writeForm(m.doc.Mob, max(m.formViewport.Width, 20)))
	m.previewViewport.SetContent(writePreview(m.doc.Mob))
}

func writeForm(mb *mob.Mob, width int) string {
	var content strings.Builder
	content.WriteString(titleStyle.Render("MOB") + "\n\n")
	field := func(label, value string) {
		content.WriteString(labelStyle.Render(fmt.Sprintf("%-9s", label+":")) + " " + value + "\n")
	}
	field("Name", mob.NormalizeName(mb.Name, mb.Kind))
	field("Kind", mb.Kind.String())
	if !mb.Kind.IsMetaSkill() {
		field("Display", mb.Display)
		field("Health", fmt.Sprint(mb.Health))
		field("Damage", fmt.Sprint(mb.Damage))
		field("Armor", fmt.Sprint(mb.Armor))
	}

	content.WriteString("\n" + titleStyle.Render("SKILLS") + "\n\n")
	if len(mb.Skills) == 0 {
		content.WriteString(promptStyle.Render("No skills. Use /add to create one.") + "\n")
	}
	sel, hasSel := mb.Selected()
	for i, s := range mb.Skills {
		line, ok := s.Line()
		if !ok {
			line = promptStyle.Render("(no mechanic)")
		}
		row := fmt.Sprintf("%d. %s  %s", i+1, skillTitle(s), line)
		if hasSel && i == sel {
			content.WriteString(selectedStyle.Render("▶ "+row) + "\n")
		} else {
			content.WriteString("  " + row + "\n")
		}
	}

	s := mb.SelectedSkill()
	if s == nil {
		return content.String()
	}

	content.WriteString("\n" + titleStyle.Render("SELECTED SKILL") + "\n\n")
	if s.Mechanic == nil {
		field("Mechanic", promptStyle.Render("none, use /mechanic"))
	} else {
		field("Mechanic", mechanic.Label(s.Mechanic))
		content.WriteString(promptStyle.Render(wordwrap.String(mechanic.Description(s.Mechanic), width-2)) + "\n")
		for _, f := range mechanic.Fields(s.Mechanic) {
			value := f.Value
			switch {
			case f.Optional && !f.Present:
				value = promptStyle.Render("absent, /enable " + f.Name)
			case len(f.Choices) > 0:
				value += promptStyle.Render("  [" + strings.Join(f.Choices, "|") + "]")
			}
			content.WriteString(fmt.Sprintf("  %s = %s\n", f.Name, value))
		}
	}
	targ := s.Targeter.Label()
	if !s.Targeter.IsNone() {
		targ += "  " + s.Targeter.Render()
	}
	field("Targeter", targ)
	trig := s.Trigger.Label()
	if s.Trigger != trigger.None {
		trig += "  " + s.Trigger.Render()
	}
	field("Trigger", trig)
	if s.RawArgs != "" {
		field("Raw", s.RawArgs)
	}
	return content.String()
}

func writePreview(mb *mob.Mob) string {
	return titleStyle.Render("OUTPUT") + "\n\n" + outputStyle.Render(mob.Render(mb)) + "\n"
}

func (m EditorUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				m.textarea.Focus()
				return m, textarea.Blink
			}
		}
	}
	return m, nil
}

func (m EditorUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Quit Editor?"))
	content.WriteString("\n\n")
	content.WriteString("Unsaved changes will be lost. Use /save or /export first.")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to continue, or Ctrl+C to force quit"))

	modal := modalStyle.Width(50).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m EditorUI) View() string {
	if m.showQuitModal {
		return m.renderQuitModal()
	}
	if m.picker != nil {
		return m.picker.view(m.width, m.height)
	}
	if !m.ready {
		return "\n  Initializing..."
	}

	formWidth := int(float64(m.width)*0.6) - 2
	previewWidth := m.width - formWidth - 4

	statusLine := promptStyle.Render(m.status)
	switch {
	case m.err != nil:
		statusLine = errorStyle.Render("Error: " + m.err.Error())
	case m.busy:
		statusLine = loadingStyle.Render("Working...")
	}

	formPanel := formPanelStyle.Width(formWidth).Height(m.height - 2).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.formViewport.View(),
			separatorStyle.Render(strings.Repeat("─", max(formWidth-4, 1))),
			m.textarea.View(),
			statusLine,
		),
	)

	previewPanel := previewPanelStyle.Width(previewWidth).Height(m.height - 2).Render(
		m.previewViewport.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, formPanel, previewPanel)
}
