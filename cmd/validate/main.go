package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jwebster45206/mythic-editor/pkg/draft"
	"github.com/jwebster45206/mythic-editor/pkg/mob"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <draft.json> [draft.json...]\n", os.Args[0])
		os.Exit(1)
	}

	failed := false
	for _, filename := range os.Args[1:] {
		validator := &DraftValidator{}
		if err := validator.validateFile(filename); err != nil {
			fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}

	fmt.Println("Draft files are valid!")
}

type DraftValidator struct {
	errors []string
}

func (v *DraftValidator) validateFile(filename string) error {
	fmt.Printf("Validating %s...\n", filename)

	if filepath.Ext(filename) != ".json" {
		return fmt.Errorf("draft file must have .json extension: %s", filepath.Base(filename))
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	v.errors = nil

	d, err := draft.Decode(data)
	if err != nil {
		return fmt.Errorf("file %s failed strict JSON unmarshaling: %w", filename, err)
	}

	v.validateMob(d.Mob)

	if err := mob.Check(d.Mob); err != nil {
		v.addError(fmt.Sprintf("rendered block would not load: %v", err))
	}

	if len(v.errors) > 0 {
		return fmt.Errorf("validation errors in %s:\n%s", filename, strings.Join(v.errors, "\n"))
	}
	return nil
}

func (v *DraftValidator) validateMob(m *mob.Mob) {
	if strings.TrimSpace(m.Name) == "" {
		v.addError(fmt.Sprintf("name is empty and will render as %s", mob.NormalizeName("", m.Kind)))
	}

	if m.Kind.IsMetaSkill() && (m.Display != "" || m.Health != 0 || m.Damage != 0 || m.Armor != 0) {
		v.addError("meta-skill sets display, health, damage or armor, which are never rendered")
	}

	seen := make(map[string]bool, len(m.Skills))
	for i, s := range m.Skills {
		if s == nil {
			v.addError(fmt.Sprintf("skill %d is null", i))
			continue
		}
		if seen[s.Name] {
			v.addError(fmt.Sprintf("skill name '%s' is used more than once", s.Name))
		}
		seen[s.Name] = true
		if s.Mechanic == nil {
			v.addError(fmt.Sprintf("skill '%s' has no mechanic and will not be rendered", s.Name))
		}
	}
}

func (v *DraftValidator) addError(msg string) {
	v.errors = append(v.errors, "  - "+msg)
}
