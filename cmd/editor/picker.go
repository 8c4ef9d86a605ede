package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"

	"github.com/jwebster45206/mythic-editor/pkg/draft"
	"github.com/jwebster45206/mythic-editor/pkg/mechanic"
	"github.com/jwebster45206/mythic-editor/pkg/mob"
	"github.com/jwebster45206/mythic-editor/pkg/targeter"
	"github.com/jwebster45206/mythic-editor/pkg/trigger"
)

type pickerKind int

const (
	pickMechanic pickerKind = iota
	pickKind
	pickFamily
	pickSingle
	pickMulti
	pickTrigger
	pickDraft
)

type pickerItem struct {
	title  string
	detail string
	value  any
}

// picker is a filterable modal list. Typing edits the query, arrows move
// the cursor, Enter picks and Esc cancels.
type picker struct {
	kind   pickerKind
	title  string
	query  string
	source func(query string) []pickerItem
	items  []pickerItem
	cursor int
}

func newPicker(kind pickerKind, title, query string, source func(string) []pickerItem) *picker {
	p := &picker{kind: kind, title: title, query: query, source: source}
	p.refresh()
	return p
}

func (p *picker) refresh() {
	p.items = p.source(p.query)
	p.cursor = min(p.cursor, max(len(p.items)-1, 0))
}

// update handles a key. It returns the chosen item when the user picks one,
// and done when the picker should close.
func (p *picker) update(msg tea.KeyMsg) (chosen *pickerItem, done bool) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		return nil, true
	case tea.KeyEnter:
		if len(p.items) == 0 {
			return nil, false
		}
		item := p.items[p.cursor]
		return &item, true
	case tea.KeyUp:
		if p.cursor > 0 {
			p.cursor--
		}
	case tea.KeyDown:
		if p.cursor < len(p.items)-1 {
			p.cursor++
		}
	case tea.KeyBackspace:
		if r := []rune(p.query); len(r) > 0 {
			p.query = string(r[:len(r)-1])
			p.cursor = 0
			p.refresh()
		}
	case tea.KeySpace:
		p.query += " "
		p.cursor = 0
		p.refresh()
	case tea.KeyRunes:
		p.query += string(msg.Runes)
		p.cursor = 0
		p.refresh()
	}
	return nil, false
}

func (p *picker) view(width, height int) string {
	var content strings.Builder
	content.WriteString(modalTitleStyle.Render(p.title))
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Filter: ") + p.query + "\n\n")

	rows := max(height-12, 3)
	start := 0
	if p.cursor >= rows {
		start = p.cursor - rows + 1
	}
	end := min(start+rows, len(p.items))

	if len(p.items) == 0 {
		content.WriteString(loadingStyle.Render("No matches"))
		content.WriteString("\n")
	}
	for i := start; i < end; i++ {
		item := p.items[i]
		if i == p.cursor {
			content.WriteString(modalSelectedItemStyle.Render(fmt.Sprintf("▶ %s", item.title)))
		} else {
			content.WriteString(modalItemStyle.Render(fmt.Sprintf("  %s", item.title)))
		}
		content.WriteString("\n")
	}

	modalWidth := min(max(width-10, 30), 80)
	if len(p.items) > 0 && p.items[p.cursor].detail != "" {
		content.WriteString("\n")
		content.WriteString(promptStyle.Render(wordwrap.String(p.items[p.cursor].detail, modalWidth-6)))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(promptStyle.Render("Type to filter, ↑/↓ to navigate, Enter to select, Esc to cancel"))

	modal := modalStyle.Width(modalWidth).Render(content.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

// filterItems keeps the items whose title or detail contains query,
// compared with Unicode case folding.
func filterItems(items []pickerItem, query string) []pickerItem {
	fold := cases.Fold()
	q := fold.String(strings.TrimSpace(query))
	if q == "" {
		return items
	}
	var out []pickerItem
	for _, it := range items {
		if strings.Contains(fold.String(it.title), q) || strings.Contains(fold.String(it.detail), q) {
			out = append(out, it)
		}
	}
	return out
}

func mechanicItems(query string) []pickerItem {
	found := mechanic.Search(query)
	out := make([]pickerItem, len(found))
	for i, m := range found {
		out[i] = pickerItem{title: mechanic.Label(m), detail: mechanic.Description(m), value: m}
	}
	return out
}

func kindItems(query string) []pickerItem {
	kinds := mob.Kinds()
	items := make([]pickerItem, len(kinds))
	for i, k := range kinds {
		items[i] = pickerItem{title: k.String(), value: k}
	}
	return filterItems(items, query)
}

func familyItems(query string) []pickerItem {
	families := targeter.Families()
	items := make([]pickerItem, len(families))
	for i, f := range families {
		items[i] = pickerItem{title: f.Label(), value: f}
	}
	return filterItems(items, query)
}

func singleItems(query string) []pickerItem {
	singles := targeter.Singles()
	items := make([]pickerItem, len(singles))
	for i, e := range singles {
		items[i] = pickerItem{title: e.Label() + "  " + e.Token(), detail: e.Description(), value: e}
	}
	return filterItems(items, query)
}

func multiItems(query string) []pickerItem {
	multis := targeter.Multis()
	items := make([]pickerItem, len(multis))
	for i, e := range multis {
		items[i] = pickerItem{title: e.Label() + "  " + e.Token(), detail: e.Description(), value: e}
	}
	return filterItems(items, query)
}

func triggerItems(query string) []pickerItem {
	all := trigger.All()
	items := make([]pickerItem, len(all))
	for i, t := range all {
		title := t.Label()
		if t != trigger.None {
			title += "  " + t.Render()
		}
		items[i] = pickerItem{title: title, detail: t.Description(), value: t}
	}
	return filterItems(items, query)
}

func draftItems(list []draft.Summary) func(string) []pickerItem {
	items := make([]pickerItem, len(list))
	for i, s := range list {
		items[i] = pickerItem{
			title:  fmt.Sprintf("%s (%s, %d skills)", s.Name, s.Kind, s.Skills),
			detail: "Last saved " + s.UpdatedAt.Local().Format("2006-01-02 15:04"),
			value:  s.ID,
		}
	}
	return func(query string) []pickerItem {
		return filterItems(items, query)
	}
}
