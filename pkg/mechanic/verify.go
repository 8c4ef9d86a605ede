package mechanic

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/jwebster45206/mythic-editor/pkg/param"
)

var placeholder = regexp.MustCompile(`\{[A-Za-z0-9_]+\}`)

// Verify checks every catalogue entry: unique name, non-empty label and
// description, and a template that names each field exactly once and nothing
// else. Optional fields must declare their prefix.
func Verify() error {
	var errs []error
	seen := make(map[string]bool, len(catalogue))
	for _, m := range All() {
		name := Name(m)
		if seen[name] {
			errs = append(errs, fmt.Errorf("%s: listed twice", name))
		}
		seen[name] = true
		if Label(m) == "" || Description(m) == "" {
			errs = append(errs, fmt.Errorf("%s: missing label or description", name))
		}
		errs = append(errs, verifySlots(m)...)
	}
	return errors.Join(errs...)
}

func verifySlots(m Mechanic) []error {
	tmpl := Template(m)
	v, _ := elem(m)
	var slots []string
	if v.Kind() == reflect.Struct {
		for i := range v.NumField() {
			sf := v.Type().Field(i)
			if !sf.IsExported() {
				continue
			}
			slots = append(slots, slot(sf))
			if _, ok := v.Field(i).Addr().Interface().(param.Toggle); ok && sf.Tag.Get("mm") == "" {
				return []error{fmt.Errorf("%s.%s: optional without prefix", Name(m), slot(sf))}
			}
		}
	} else {
		slots = []string{positional}
	}

	var errs []error
	for _, s := range slots {
		if n := strings.Count(tmpl, "{"+s+"}"); n != 1 {
			errs = append(errs, fmt.Errorf("%s: slot {%s} appears %d times", Name(m), s, n))
		}
	}
	rest := tmpl
	for _, s := range slots {
		rest = strings.ReplaceAll(rest, "{"+s+"}", "")
	}
	for _, s := range placeholder.FindAllString(rest, -1) {
		errs = append(errs, fmt.Errorf("%s: slot %s has no field", Name(m), s))
	}
	return errs
}
