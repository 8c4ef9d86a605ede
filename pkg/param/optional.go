package param

import (
	"bytes"
	"encoding/json"
	"reflect"
)

// Present is the payload of an Optional that has been added to a mechanic.
// Prefix and Suffix are the literal key text written around the value. They
// belong to the field declaration, so only Value is saved.
type Present[T any] struct {
	Prefix string `json:"-"`
	Value  T      `json:"value"`
	Suffix string `json:"-"`
}

// Optional is a configuration key that is either absent or present with
// fixed affixes. The zero value is absent and renders as the empty string.
type Optional[T any] struct {
	p *Present[T]
}

// Toggle is implemented by *Optional[T] for every T. Editors use it to add
// or remove a key without knowing the payload type.
type Toggle interface {
	IsPresent() bool
	Enable(prefix, suffix string)
	SetAffixes(prefix, suffix string)
	Clear()
	Elem() any
	ValueType() reflect.Type
}

var _ Toggle = (*Optional[string])(nil)

// Some returns a present Optional.
func Some[T any](prefix string, v T, suffix string) Optional[T] {
	return Optional[T]{p: &Present[T]{Prefix: prefix, Value: v, Suffix: suffix}}
}

// IsPresent reports whether the key will be written.
func (o Optional[T]) IsPresent() bool {
	return o.p != nil
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	if o.p == nil {
		var zero T
		return zero, false
	}
	return o.p.Value, true
}

// Affixes returns the prefix and suffix of a present value, or two empty
// strings when absent.
func (o Optional[T]) Affixes() (string, string) {
	if o.p == nil {
		return "", ""
	}
	return o.p.Prefix, o.p.Suffix
}

// Enable makes the key present with a zero value. An already present key
// keeps its value and affixes.
func (o *Optional[T]) Enable(prefix, suffix string) {
	if o.p != nil {
		return
	}
	o.p = &Present[T]{Prefix: prefix, Suffix: suffix}
}

// SetAffixes replaces the affixes of a present value. Absent keys stay
// absent.
func (o *Optional[T]) SetAffixes(prefix, suffix string) {
	if o.p == nil {
		return
	}
	o.p.Prefix, o.p.Suffix = prefix, suffix
}

// Clear removes the key.
func (o *Optional[T]) Clear() {
	o.p = nil
}

// Elem returns a *T pointing at the present value, or nil when absent.
func (o *Optional[T]) Elem() any {
	if o.p == nil {
		return nil
	}
	return &o.p.Value
}

// ValueType returns the reflect type of T.
func (o *Optional[T]) ValueType() reflect.Type {
	return reflect.TypeFor[T]()
}

func (o Optional[T]) String() string {
	if o.p == nil {
		return ""
	}
	return o.p.Prefix + Format(o.p.Value) + o.p.Suffix
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.p == nil {
		return []byte("null"), nil
	}
	return json.Marshal(o.p)
}

// UnmarshalJSON restores the value only. Affixes are left empty for the
// owner to set from its declaration; any sent in data are ignored.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.p = nil
		return nil
	}
	var p Present[T]
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	o.p = &p
	return nil
}
