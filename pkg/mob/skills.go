package mob

import "github.com/jwebster45206/mythic-editor/pkg/skill"

// AddSkill appends a new default skill named after its index and selects
// it.
func (m *Mob) AddSkill() *skill.Skill {
	s := skill.New(len(m.Skills))
	m.Skills = append(m.Skills, s)
	m.SelectLast()
	return s
}

// Selected returns the index of the selected skill.
func (m *Mob) Selected() (int, bool) {
	if m.sel <= 0 || m.sel > len(m.Skills) {
		return 0, false
	}
	return m.sel - 1, true
}

// SelectedSkill returns the selected skill, or nil.
func (m *Mob) SelectedSkill() *skill.Skill {
	i, ok := m.Selected()
	if !ok {
		return nil
	}
	return m.Skills[i]
}

// SelectSkill selects the skill at i. An out of range index leaves the
// selection unchanged, except on an empty list where it clears it.
func (m *Mob) SelectSkill(i int) {
	if len(m.Skills) == 0 {
		m.sel = 0
		return
	}
	if i >= 0 && i < len(m.Skills) {
		m.sel = i + 1
	}
}

func (m *Mob) SelectFirst() { m.SelectSkill(0) }

func (m *Mob) SelectLast() { m.SelectSkill(len(m.Skills) - 1) }

// RenameSelected renames the selected skill, if any.
func (m *Mob) RenameSelected(name string) {
	if s := m.SelectedSkill(); s != nil {
		s.Rename(name)
	}
}

// RemoveSkill deletes the skill at i. Out of range indexes are ignored.
// The selection stays on the same skill when it survives, otherwise it
// moves to the skill now at the removed position, or the new last skill.
func (m *Mob) RemoveSkill(i int) {
	if i < 0 || i >= len(m.Skills) {
		return
	}
	sel, hasSel := m.Selected()
	m.Skills = append(m.Skills[:i], m.Skills[i+1:]...)

	switch {
	case !hasSel || len(m.Skills) == 0:
		m.sel = 0
	case sel > i:
		m.sel = sel
	case sel == i:
		m.SelectSkill(min(i, len(m.Skills)-1))
	}
}

// RemoveSelected deletes the selected skill.
func (m *Mob) RemoveSelected() {
	if i, ok := m.Selected(); ok {
		m.RemoveSkill(i)
	}
}

// MoveUp swaps the skill at i with the one before it and keeps it
// selected if it was. Moving the first skill up is a no-op.
func (m *Mob) MoveUp(i int) bool {
	if i <= 0 || i >= len(m.Skills) {
		return false
	}
	m.swap(i, i-1)
	return true
}

// MoveDown swaps the skill at i with the one after it. Moving the last
// skill down is a no-op.
func (m *Mob) MoveDown(i int) bool {
	if i < 0 || i >= len(m.Skills)-1 {
		return false
	}
	m.swap(i, i+1)
	return true
}

func (m *Mob) swap(i, j int) {
	m.Skills[i], m.Skills[j] = m.Skills[j], m.Skills[i]
	if sel, ok := m.Selected(); ok {
		switch sel {
		case i:
			m.sel = j + 1
		case j:
			m.sel = i + 1
		}
	}
}
