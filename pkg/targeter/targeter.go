// Package targeter holds the closed set of MythicMobs target selectors.
//
// A Targeter is chosen in two steps: a family (single entity, multi entity,
// threat table or none), then a token within that family. Changing family
// always resets the token to the new family's default.
package targeter

import (
	"fmt"
	"strings"
)

// Family is the coarse targeter group.
type Family int

const (
	FamilyNone Family = iota
	FamilySingle
	FamilyMulti
	FamilyThreatTable
)

var familyLabels = [...]string{
	FamilyNone:        "None",
	FamilySingle:      "Single Entity",
	FamilyMulti:       "Multi Entity",
	FamilyThreatTable: "Threat Table",
}

// Label returns the name shown in family pickers.
func (f Family) Label() string {
	if f < 0 || int(f) >= len(familyLabels) {
		return ""
	}
	return familyLabels[f]
}

func (f Family) String() string { return f.Label() }

// Families lists every family in picker order.
func Families() []Family {
	return []Family{FamilyNone, FamilySingle, FamilyMulti, FamilyThreatTable}
}

// ThreatTableToken is the rendered form of the threat table targeter.
const ThreatTableToken = "ThreatTable"

// legacyThreatTableToken is still accepted when parsing older drafts.
const legacyThreatTableToken = "@ThreatTable"

// Targeter selects which entities a mechanic acts on. The zero value is
// the None targeter and renders as the empty string.
type Targeter struct {
	family Family
	single SingleEntity
	multi  MultiEntity
}

// None returns the empty targeter.
func None() Targeter { return Targeter{} }

// Single returns a single entity targeter.
func Single(e SingleEntity) Targeter {
	return Targeter{family: FamilySingle, single: e}
}

// Multi returns a multi entity targeter.
func Multi(e MultiEntity) Targeter {
	return Targeter{family: FamilyMulti, multi: e}
}

// ThreatTable returns the threat table targeter.
func ThreatTable() Targeter { return Targeter{family: FamilyThreatTable} }

// Family returns the targeter's family.
func (t Targeter) Family() Family { return t.family }

// SetFamily switches family. Moving to a different family discards the
// chosen token and selects that family's default; selecting the current
// family again, or an unknown family, changes nothing.
func (t *Targeter) SetFamily(f Family) {
	if t.family == f || f.Label() == "" {
		return
	}
	switch f {
	case FamilySingle:
		*t = Single(DefaultSingle)
	case FamilyMulti:
		*t = Multi(DefaultMulti)
	default:
		*t = Targeter{family: f}
	}
}

// SingleEntity returns the single entity token and whether the targeter is
// in the single family.
func (t Targeter) SingleEntity() (SingleEntity, bool) {
	return t.single, t.family == FamilySingle
}

// MultiEntity returns the multi entity token and whether the targeter is
// in the multi family.
func (t Targeter) MultiEntity() (MultiEntity, bool) {
	return t.multi, t.family == FamilyMulti
}

// Render returns the targeter token, or "" for None.
func (t Targeter) Render() string {
	switch t.family {
	case FamilySingle:
		return t.single.Token()
	case FamilyMulti:
		return t.multi.Token()
	case FamilyThreatTable:
		return ThreatTableToken
	default:
		return ""
	}
}

func (t Targeter) String() string { return t.Render() }

// Label returns the family label, as shown next to the targeter picker.
func (t Targeter) Label() string { return t.family.Label() }

// Description describes the selected token. None and the threat table
// have fixed descriptions.
func (t Targeter) Description() string {
	switch t.family {
	case FamilySingle:
		return t.single.Description()
	case FamilyMulti:
		return t.multi.Description()
	case FamilyThreatTable:
		return "Targets every entity on the caster's threat table"
	default:
		return "No targeter; the mechanic uses its own default"
	}
}

// IsNone reports whether the targeter renders nothing.
func (t Targeter) IsNone() bool { return t.family == FamilyNone }

// All lists every targeter: None, the single entity tokens, the multi
// entity tokens, then the threat table.
func All() []Targeter {
	out := []Targeter{None()}
	for _, e := range Singles() {
		out = append(out, Single(e))
	}
	for _, e := range Multis() {
		out = append(out, Multi(e))
	}
	return append(out, ThreatTable())
}

// Parse looks a targeter up by its rendered token. The empty string is
// None. Tokens match case-insensitively.
func Parse(token string) (Targeter, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return None(), nil
	}
	if strings.EqualFold(token, ThreatTableToken) || strings.EqualFold(token, legacyThreatTableToken) {
		return ThreatTable(), nil
	}
	for i, e := range singles {
		if strings.EqualFold(e.token, token) {
			return Single(SingleEntity(i)), nil
		}
	}
	for i, e := range multis {
		if strings.EqualFold(e.token, token) {
			return Multi(MultiEntity(i)), nil
		}
	}
	return None(), fmt.Errorf("unknown targeter %q", token)
}

// MarshalText writes the rendered token, so a targeter stores as a plain
// JSON string.
func (t Targeter) MarshalText() ([]byte, error) {
	return []byte(t.Render()), nil
}

func (t *Targeter) UnmarshalText(b []byte) error {
	nt, err := Parse(string(b))
	if err != nil {
		return err
	}
	*t = nt
	return nil
}
