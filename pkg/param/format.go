package param

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Setter is implemented by composite values that can be assigned from the
// text a user types into an editor field.
type Setter interface {
	Set(text string) error
}

// Chooser is implemented by closed enums. Choices lists every token in
// presentation order.
type Chooser interface {
	Choices() []string
}

// Format renders a parameter value the way the plugin expects to read it.
// Floats use the shortest representation that round-trips at their own
// precision, so 5.0 renders as "5" and 0.5 as "0.5".
func Format(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case fmt.Stringer:
		return x.String()
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	}
	return fmt.Sprint(v)
}

// Assign parses text into the value dst points at. Values implementing
// Setter parse themselves; primitives are parsed by kind.
func Assign(dst any, text string) error {
	if s, ok := dst.(Setter); ok {
		return s.Set(text)
	}

	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("assign: destination must be a non-nil pointer, got %T", dst)
	}
	ev := rv.Elem()
	text = strings.TrimSpace(text)

	switch ev.Kind() {
	case reflect.String:
		ev.SetString(text)
	case reflect.Bool:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return fmt.Errorf("assign %q: %w", text, err)
		}
		ev.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(text, 10, ev.Type().Bits())
		if err != nil {
			return fmt.Errorf("assign %q: %w", text, err)
		}
		ev.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(text, 10, ev.Type().Bits())
		if err != nil {
			return fmt.Errorf("assign %q: %w", text, err)
		}
		ev.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(text, ev.Type().Bits())
		if err != nil {
			return fmt.Errorf("assign %q: %w", text, err)
		}
		ev.SetFloat(f)
	default:
		return fmt.Errorf("assign: unsupported type %s", ev.Type())
	}
	return nil
}

// Choices returns the enum tokens for v, or nil when v is not an enum.
func Choices(v any) []string {
	if c, ok := v.(Chooser); ok {
		return c.Choices()
	}
	return nil
}
