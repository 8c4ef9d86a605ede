package mechanic

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// envelope is the saved form of a mechanic: its Name and its parameters.
type envelope struct {
	Type   string          `json:"type"`
	Params json.RawMessage `json:"params,omitempty"`
}

// Marshal encodes m with its type name so Unmarshal can restore the variant.
func Marshal(m Mechanic) ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	params, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", Name(m), err)
	}
	return json.Marshal(envelope{Type: Name(m), Params: params})
}

// Unmarshal decodes a mechanic written by Marshal. Unknown parameters are
// rejected. JSON null decodes to a nil Mechanic. Present optional keys get
// the affixes declared on their field.
func Unmarshal(data []byte) (Mechanic, error) {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil, nil
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode mechanic: %w", err)
	}
	m, ok := New(env.Type)
	if !ok {
		return nil, fmt.Errorf("decode mechanic %q: %w", env.Type, ErrUnknownMechanic)
	}
	if len(env.Params) == 0 {
		return m, nil
	}
	dec := json.NewDecoder(bytes.NewReader(env.Params))
	dec.DisallowUnknownFields()
	if err := dec.Decode(m); err != nil {
		return nil, fmt.Errorf("decode %s params: %w", env.Type, err)
	}
	declareAffixes(m)
	return m, nil
}
