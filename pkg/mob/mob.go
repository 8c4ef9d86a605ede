// Package mob is the configuration entity the editor builds: a mob or a
// meta-skill with its ordered skill list, and the renderer that turns it
// into a MythicMobs configuration block.
package mob

import (
	"strconv"
	"strings"

	"github.com/jwebster45206/mythic-editor/pkg/skill"
)

const (
	DefaultMobName   = "Default_Mob_Name"
	DefaultSkillName = "Default_Skill_Name"
)

// Mob is a mob or meta-skill definition. Display, Health, Damage and Armor
// only apply to spawnable kinds; SetKind clears them for MetaSkill.
type Mob struct {
	Name    string         `json:"name"`
	Display string         `json:"display,omitempty"`
	Kind    Kind           `json:"kind"`
	Health  uint32         `json:"health,omitempty"`
	Damage  uint8          `json:"damage,omitempty"`
	Armor   uint8          `json:"armor,omitempty"`
	Skills  []*skill.Skill `json:"skills"`

	// sel is one more than the index of the skill being edited; zero means
	// no selection.
	sel int
}

// New returns an empty mob of the default kind.
func New() *Mob {
	return &Mob{Kind: DefaultKind, Skills: []*skill.Skill{}}
}

// SetKind switches the kind. Switching to MetaSkill clears the display
// name and the numeric attributes.
func (m *Mob) SetKind(k Kind) {
	m.Kind = k
	if k.IsMetaSkill() {
		m.Display = ""
		m.Health = 0
		m.Damage = 0
		m.Armor = 0
	}
}

// NormalizeName returns the name written as the block's top-level key.
// An empty or blank name becomes the kind's default; whitespace is trimmed
// and every inner run of whitespace becomes one underscore.
func NormalizeName(name string, kind Kind) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		if kind.IsMetaSkill() {
			return DefaultSkillName
		}
		return DefaultMobName
	}
	return strings.Join(fields, "_")
}

// Normalize writes the normalized name back to the mob.
func (m *Mob) Normalize() {
	m.Name = NormalizeName(m.Name, m.Kind)
}

// Render produces the configuration block for m. It never fails: missing
// values fall back to defaults, optional lines are left out, and skills
// without a mechanic contribute no line.
func Render(m *Mob) string {
	kind := m.Kind
	if kind == "" {
		kind = DefaultKind
	}

	var b strings.Builder
	b.WriteString(NormalizeName(m.Name, kind))
	b.WriteByte(':')

	if !kind.IsMetaSkill() {
		b.WriteString("\n  Type: ")
		b.WriteString(string(kind))
		if m.Display != "" {
			b.WriteString("\n  Display: ")
			b.WriteString(m.Display)
		}
		if m.Health != 0 {
			b.WriteString("\n  Health: ")
			b.WriteString(strconv.FormatUint(uint64(m.Health), 10))
		}
		if m.Damage != 0 {
			b.WriteString("\n  Damage: ")
			b.WriteString(strconv.FormatUint(uint64(m.Damage), 10))
		}
		if m.Armor != 0 {
			b.WriteString("\n  Armor: ")
			b.WriteString(strconv.FormatUint(uint64(m.Armor), 10))
		}
	}

	if len(m.Skills) > 0 {
		b.WriteString("\n  Skills:")
		for _, s := range m.Skills {
			if s == nil {
				continue
			}
			if line, ok := s.Line(); ok {
				b.WriteString("\n  ")
				b.WriteString(line)
			}
		}
	}
	return b.String()
}

// Render is shorthand for the package level Render.
func (m *Mob) Render() string { return Render(m) }
