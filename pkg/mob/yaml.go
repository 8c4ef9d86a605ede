package mob

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrMalformed is wrapped by CheckYAML for output the plugin's YAML loader
// would not read back as a single mob definition.
var ErrMalformed = errors.New("malformed configuration block")

// CheckYAML parses rendered output and confirms it is one mapping keyed by
// name, whose Skills entry, if any, is a list of plain strings.
func CheckYAML(text, name string) error {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return fmt.Errorf("%w: empty document", ErrMalformed)
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode || len(root.Content) != 2 {
		return fmt.Errorf("%w: want exactly one top-level key", ErrMalformed)
	}
	if key := root.Content[0].Value; key != name {
		return fmt.Errorf("%w: top-level key %q, want %q", ErrMalformed, key, name)
	}

	body := root.Content[1]
	if body.Kind == yaml.ScalarNode && body.Value == "" {
		// a meta-skill with no skills renders as a bare key
		return nil
	}
	if body.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: %s is not a mapping", ErrMalformed, name)
	}
	for i := 0; i < len(body.Content); i += 2 {
		k, v := body.Content[i], body.Content[i+1]
		if k.Value != "Skills" {
			if v.Kind != yaml.ScalarNode {
				return fmt.Errorf("%w: %s is not a scalar (line %d)", ErrMalformed, k.Value, v.Line)
			}
			continue
		}
		if v.Kind == yaml.ScalarNode && v.Tag == "!!null" {
			// every skill lacked a mechanic
			continue
		}
		if v.Kind != yaml.SequenceNode {
			return fmt.Errorf("%w: Skills is not a list (line %d)", ErrMalformed, v.Line)
		}
		for _, item := range v.Content {
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("%w: skill on line %d is not a single line", ErrMalformed, item.Line)
			}
		}
	}
	return nil
}

// Check renders m and runs CheckYAML against its normalized name.
func Check(m *Mob) error {
	return CheckYAML(Render(m), NormalizeName(m.Name, m.Kind))
}
