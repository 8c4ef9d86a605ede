// Package skill pairs a mechanic with the targeter and trigger it runs
// under.
package skill

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jwebster45206/mythic-editor/pkg/mechanic"
	"github.com/jwebster45206/mythic-editor/pkg/targeter"
	"github.com/jwebster45206/mythic-editor/pkg/trigger"
)

// Skill is one entry of a mob's skill list.
type Skill struct {
	Name string
	// Mechanic may be nil. A skill without a mechanic keeps RawArgs for
	// the editor but renders no line.
	Mechanic mechanic.Mechanic
	RawArgs  string
	Targeter targeter.Targeter
	Trigger  trigger.Trigger
}

// DefaultName is the generated name of the skill at index.
func DefaultName(index int) string {
	return "Skill_" + strconv.Itoa(index)
}

// New returns a skill named for its position in the list, holding the
// default mechanic with no targeter and no trigger.
func New(index int) *Skill {
	return &Skill{
		Name:     DefaultName(index),
		Mechanic: mechanic.Default(),
	}
}

// Rename sets the display name and returns the skill for chaining.
func (s *Skill) Rename(name string) *Skill {
	s.Name = name
	return s
}

// Line renders the skill as one list entry without indentation:
// the mechanic, then the targeter and trigger each preceded by a space
// when they are set. It reports false when there is no mechanic.
func (s *Skill) Line() (string, bool) {
	if s.Mechanic == nil {
		return "", false
	}
	line := mechanic.Render(s.Mechanic)
	if t := s.Targeter.Render(); t != "" {
		line += " " + t
	}
	if t := s.Trigger.Render(); t != "" {
		line += " " + t
	}
	return line, true
}

// Clone returns a deep copy. Mechanic values are copied through their JSON
// form so the copy shares no optional payloads with the original.
func (s *Skill) Clone() (*Skill, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var out Skill
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type skillJSON struct {
	Name     string            `json:"name"`
	Mechanic json.RawMessage   `json:"mechanic"`
	RawArgs  string            `json:"raw_args,omitempty"`
	Targeter targeter.Targeter `json:"targeter"`
	Trigger  trigger.Trigger   `json:"trigger"`
}

func (s Skill) MarshalJSON() ([]byte, error) {
	mech, err := mechanic.Marshal(s.Mechanic)
	if err != nil {
		return nil, fmt.Errorf("skill %q: %w", s.Name, err)
	}
	return json.Marshal(skillJSON{
		Name:     s.Name,
		Mechanic: mech,
		RawArgs:  s.RawArgs,
		Targeter: s.Targeter,
		Trigger:  s.Trigger,
	})
}

func (s *Skill) UnmarshalJSON(data []byte) error {
	var raw skillJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var m mechanic.Mechanic
	if len(raw.Mechanic) > 0 {
		var err error
		if m, err = mechanic.Unmarshal(raw.Mechanic); err != nil {
			return fmt.Errorf("skill %q: %w", raw.Name, err)
		}
	}
	*s = Skill{
		Name:     raw.Name,
		Mechanic: m,
		RawArgs:  raw.RawArgs,
		Targeter: raw.Targeter,
		Trigger:  raw.Trigger,
	}
	return nil
}
