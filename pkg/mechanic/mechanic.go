// Package mechanic models the closed catalogue of MythicMobs skill mechanics
// and renders each one as a single skill line.
//
// Every mechanic is a concrete type in this package. The unexported spec
// method seals the Mechanic interface, so a type can only be a mechanic if it
// carries a label, a description and a render template. Struct fields name
// their template slot through their json tag; named scalar mechanics such as
// AddTag fill the positional slot {0}.
package mechanic

import (
	"reflect"
	"strings"

	"github.com/jwebster45206/mythic-editor/pkg/param"
)

// Mechanic is one server-side action with its parameters.
type Mechanic interface {
	spec() spec
}

type spec struct {
	label string
	desc  string
	tmpl  string
}

// Render returns the mechanic line, starting with "- ". It never fails: any
// constructible value renders to some string.
func Render(m Mechanic) string {
	if m == nil {
		return ""
	}
	s := m.spec()
	out := replacer(m).Replace(s.tmpl)
	// Optional keys carry their own leading ';'. When one opens the
	// parameter block that separator has to go.
	if i := strings.IndexByte(out, '{'); i >= 0 && strings.HasPrefix(out[i+1:], ";") {
		out = out[:i+1] + out[i+2:]
	}
	return out
}

// Label is the short display name of m.
func Label(m Mechanic) string {
	if m == nil {
		return ""
	}
	return m.spec().label
}

// Description is the one-line help text of m.
func Description(m Mechanic) string {
	if m == nil {
		return ""
	}
	return m.spec().desc
}

// Template returns the raw render template of m, with {field} slots.
func Template(m Mechanic) string {
	if m == nil {
		return ""
	}
	return m.spec().tmpl
}

// Name is the stable identifier used in saved drafts, the Go type name.
func Name(m Mechanic) string {
	if m == nil {
		return ""
	}
	return typeOf(m).Name()
}

// Default is the mechanic given to a new skill: activate the spawner with an
// empty name.
func Default() Mechanic {
	return &ActivateSpawner{Spawner: param.SpawnerName("")}
}

// All returns a freshly constructed default value of every mechanic, in
// catalogue order.
func All() []Mechanic {
	out := make([]Mechanic, len(catalogue))
	for i, ctor := range catalogue {
		out[i] = ctor()
	}
	return out
}

// New returns the default value of the mechanic with the given Name.
func New(name string) (Mechanic, bool) {
	ctor, ok := byName()[name]
	if !ok {
		return nil, false
	}
	return ctor(), true
}

func byName() map[string]func() Mechanic {
	idx := make(map[string]func() Mechanic, len(catalogue))
	for _, ctor := range catalogue {
		idx[Name(ctor())] = ctor
	}
	return idx
}

func typeOf(m Mechanic) reflect.Type {
	t := reflect.TypeOf(m)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// replacer maps every template slot of m to its rendered value. Building all
// pairs first and substituting in one pass keeps values that happen to
// contain braces from being substituted again.
func replacer(m Mechanic) *strings.Replacer {
	v := reflect.ValueOf(m)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return strings.NewReplacer()
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return strings.NewReplacer("{0}", param.Format(v.Interface()))
	}
	var pairs []string
	for i := range v.NumField() {
		f := v.Type().Field(i)
		if !f.IsExported() {
			continue
		}
		pairs = append(pairs, "{"+slot(f)+"}", param.Format(v.Field(i).Interface()))
	}
	return strings.NewReplacer(pairs...)
}

func slot(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" {
		return f.Name
	}
	return name
}
