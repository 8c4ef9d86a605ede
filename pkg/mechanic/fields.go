package mechanic

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/jwebster45206/mythic-editor/pkg/param"
)

var (
	ErrUnknownField    = errors.New("unknown field")
	ErrNotOptional     = errors.New("field is not optional")
	ErrAbsent          = errors.New("optional field is not present")
	ErrUnknownMechanic = errors.New("unknown mechanic")
)

// positional is the slot name of the single value of a named scalar mechanic.
const positional = "0"

// Field describes one editable parameter of a mechanic.
type Field struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Type     string   `json:"type"`
	Value    string   `json:"value"`
	Optional bool     `json:"optional"`
	Present  bool     `json:"present"`
	Choices  []string `json:"choices,omitempty"`
}

// Fields lists the parameters of m in declaration order. Values are rendered
// without the affixes of optional keys.
func Fields(m Mechanic) []Field {
	v, ok := elem(m)
	if !ok {
		return nil
	}
	if v.Kind() != reflect.Struct {
		return []Field{{
			Name:    positional,
			Label:   "value",
			Type:    v.Kind().String(),
			Value:   param.Format(v.Interface()),
			Choices: param.Choices(v.Interface()),
		}}
	}

	var out []Field
	for i := range v.NumField() {
		sf := v.Type().Field(i)
		if !sf.IsExported() {
			continue
		}
		fv := v.Field(i)
		f := Field{Name: slot(sf), Label: strings.ReplaceAll(slot(sf), "_", " ")}
		if tg, ok := fv.Addr().Interface().(param.Toggle); ok {
			f.Optional = true
			f.Present = tg.IsPresent()
			f.Type = typeName(tg.ValueType())
			f.Choices = param.Choices(reflect.Zero(tg.ValueType()).Interface())
			if p := tg.Elem(); p != nil {
				f.Value = param.Format(reflect.ValueOf(p).Elem().Interface())
			}
		} else {
			f.Type = typeName(sf.Type)
			f.Value = param.Format(fv.Interface())
			f.Choices = param.Choices(fv.Interface())
		}
		out = append(out, f)
	}
	return out
}

// SetField parses text into the named parameter. Optional parameters must be
// enabled first.
func SetField(m Mechanic, name, text string) error {
	v, ok := elem(m)
	if !ok {
		return fmt.Errorf("set %s: %w", name, ErrUnknownMechanic)
	}
	if v.Kind() != reflect.Struct {
		if name != positional {
			return fmt.Errorf("set %s on %s: %w", name, Name(m), ErrUnknownField)
		}
		return param.Assign(v.Addr().Interface(), text)
	}

	fv, err := field(v, name)
	if err != nil {
		return fmt.Errorf("set %s on %s: %w", name, Name(m), err)
	}
	dst := fv.Addr().Interface()
	if tg, ok := dst.(param.Toggle); ok {
		if dst = tg.Elem(); dst == nil {
			return fmt.Errorf("set %s on %s: %w", name, Name(m), ErrAbsent)
		}
	}
	if err := param.Assign(dst, text); err != nil {
		return fmt.Errorf("set %s on %s: %w", name, Name(m), err)
	}
	return nil
}

// EnableOptional adds the named optional key with a zero value and the
// affixes declared on the field.
func EnableOptional(m Mechanic, name string) error {
	tg, sf, err := toggle(m, name)
	if err != nil {
		return err
	}
	tg.Enable(sf.Tag.Get("mm"), sf.Tag.Get("mmsuf"))
	return nil
}

// declareAffixes sets every present optional key's affixes from its field
// tags.
func declareAffixes(m Mechanic) {
	v, ok := elem(m)
	if !ok || v.Kind() != reflect.Struct {
		return
	}
	for i := range v.NumField() {
		sf := v.Type().Field(i)
		if !sf.IsExported() {
			continue
		}
		if tg, ok := v.Field(i).Addr().Interface().(param.Toggle); ok {
			tg.SetAffixes(sf.Tag.Get("mm"), sf.Tag.Get("mmsuf"))
		}
	}
}

// DisableOptional removes the named optional key.
func DisableOptional(m Mechanic, name string) error {
	tg, _, err := toggle(m, name)
	if err != nil {
		return err
	}
	tg.Clear()
	return nil
}

func toggle(m Mechanic, name string) (param.Toggle, reflect.StructField, error) {
	v, ok := elem(m)
	if !ok || v.Kind() != reflect.Struct {
		return nil, reflect.StructField{}, fmt.Errorf("toggle %s on %s: %w", name, Name(m), ErrUnknownField)
	}
	for i := range v.NumField() {
		sf := v.Type().Field(i)
		if !sf.IsExported() || slot(sf) != name {
			continue
		}
		tg, ok := v.Field(i).Addr().Interface().(param.Toggle)
		if !ok {
			return nil, sf, fmt.Errorf("toggle %s on %s: %w", name, Name(m), ErrNotOptional)
		}
		return tg, sf, nil
	}
	return nil, reflect.StructField{}, fmt.Errorf("toggle %s on %s: %w", name, Name(m), ErrUnknownField)
}

func field(v reflect.Value, name string) (reflect.Value, error) {
	for i := range v.NumField() {
		sf := v.Type().Field(i)
		if sf.IsExported() && slot(sf) == name {
			return v.Field(i), nil
		}
	}
	return reflect.Value{}, ErrUnknownField
}

// elem returns the addressable value behind a mechanic pointer.
func elem(m Mechanic) (reflect.Value, bool) {
	if m == nil {
		return reflect.Value{}, false
	}
	v := reflect.ValueOf(m)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return reflect.Value{}, false
	}
	return v.Elem(), true
}

func typeName(t reflect.Type) string {
	return strings.TrimPrefix(t.String(), "param.")
}
