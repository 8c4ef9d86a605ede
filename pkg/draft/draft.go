// Package draft wraps a mob being edited with an id and timestamps so it
// can be saved and reopened.
package draft

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jwebster45206/mythic-editor/pkg/mob"
	"github.com/jwebster45206/mythic-editor/pkg/skill"
)

// Draft is a saved editing session.
type Draft struct {
	ID        uuid.UUID `json:"id"`
	Mob       *mob.Mob  `json:"mob"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Summary is the listing form of a draft.
type Summary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Kind      mob.Kind  `json:"kind"`
	Skills    int       `json:"skills"`
	UpdatedAt time.Time `json:"updated_at"`
}

// New starts a draft for m with a fresh id. A nil mob starts from mob.New.
func New(m *mob.Mob) *Draft {
	if m == nil {
		m = mob.New()
	}
	now := time.Now().UTC()
	return &Draft{
		ID:        uuid.New(),
		Mob:       m,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch sets UpdatedAt, and CreatedAt if it was never set.
func (d *Draft) Touch(now time.Time) {
	now = now.UTC()
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	d.UpdatedAt = now
}

// Render renders the draft's mob.
func (d *Draft) Render() string {
	return mob.Render(d.Mob)
}

// Clone returns a deep copy of d, made through its JSON form.
func (d *Draft) Clone() (*Draft, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("clone draft: %w", err)
	}
	return Decode(data)
}

// Summary returns the listing form of d.
func (d *Draft) Summary() Summary {
	return Summary{
		ID:        d.ID,
		Name:      mob.NormalizeName(d.Mob.Name, d.Mob.Kind),
		Kind:      d.Mob.Kind,
		Skills:    len(d.Mob.Skills),
		UpdatedAt: d.UpdatedAt,
	}
}

// Decode reads a draft strictly: unknown top-level fields are rejected and
// the mob is required.
func Decode(data []byte) (*Draft, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var d Draft
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("decode draft: %w", err)
	}
	if d.Mob == nil {
		return nil, errors.New("decode draft: missing mob")
	}
	fill(d.Mob)
	return &d, nil
}

// DecodeMob reads a bare mob with the same strictness as Decode.
func DecodeMob(data []byte) (*mob.Mob, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var m mob.Mob
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("decode mob: %w", err)
	}
	fill(&m)
	return &m, nil
}

func fill(m *mob.Mob) {
	if m.Kind == "" {
		m.Kind = mob.DefaultKind
	}
	// A meta-skill carries no stats, whatever the stored data says.
	m.SetKind(m.Kind)
	if m.Skills == nil {
		m.Skills = []*skill.Skill{}
	}
}
