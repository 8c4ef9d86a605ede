package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jwebster45206/mythic-editor/pkg/mechanic"
	"github.com/jwebster45206/mythic-editor/pkg/mob"
	"github.com/jwebster45206/mythic-editor/pkg/skill"
	"github.com/jwebster45206/mythic-editor/pkg/targeter"
	"github.com/jwebster45206/mythic-editor/pkg/trigger"
)

var errNoSkill = errors.New("no skill selected; use /add or /select first")

// command is one slash command typed into the editor.
type command struct {
	name string
	args string
}

// parseCommand splits "/name args" into its parts. The name is lower cased.
func parseCommand(input string) (command, bool) {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, "/") {
		return command{}, false
	}
	name, args, _ := strings.Cut(input[1:], " ")
	return command{name: strings.ToLower(name), args: strings.TrimSpace(args)}, true
}

// applyEdit runs a command that only changes the mob. It reports false when
// the command is not an edit, leaving it to the UI.
func applyEdit(m *mob.Mob, c command) (string, bool, error) {
	var (
		status string
		err    error
	)
	switch c.name {
	case "name":
		m.Name = c.args
		status = "Name set to " + mob.NormalizeName(m.Name, m.Kind)
	case "display":
		if m.Kind.IsMetaSkill() {
			return "", true, errors.New("meta-skills have no display name")
		}
		m.Display = c.args
		status = "Display name updated"
	case "kind":
		if c.args == "" {
			// the UI opens the kind picker
			return "", false, nil
		}
		var k mob.Kind
		if k, err = mob.ParseKind(c.args); err == nil {
			m.SetKind(k)
			status = "Kind set to " + k.String()
		}
	case "health":
		var n uint64
		if n, err = parseAttribute(m, c.args, 32); err == nil {
			m.Health = uint32(n)
			status = fmt.Sprintf("Health set to %d", n)
		}
	case "damage":
		var n uint64
		if n, err = parseAttribute(m, c.args, 8); err == nil {
			m.Damage = uint8(n)
			status = fmt.Sprintf("Damage set to %d", n)
		}
	case "armor":
		var n uint64
		if n, err = parseAttribute(m, c.args, 8); err == nil {
			m.Armor = uint8(n)
			status = fmt.Sprintf("Armor set to %d", n)
		}

	case "add":
		s := m.AddSkill()
		if c.args != "" {
			s.Rename(c.args)
		}
		status = "Added " + s.Name
	case "select":
		var i int
		if i, err = parseIndex(m, c.args); err == nil {
			m.SelectSkill(i)
			status = "Selected " + m.Skills[i].Name
		}
	case "first":
		m.SelectFirst()
		status = selectedStatus(m)
	case "last":
		m.SelectLast()
		status = selectedStatus(m)
	case "remove":
		if c.args == "" {
			if _, ok := m.Selected(); !ok {
				return "", true, errNoSkill
			}
			m.RemoveSelected()
		} else {
			var i int
			if i, err = parseIndex(m, c.args); err == nil {
				m.RemoveSkill(i)
			}
		}
		if err == nil {
			status = fmt.Sprintf("Removed skill, %d left", len(m.Skills))
		}
	case "up", "down":
		i, ok := m.Selected()
		if !ok {
			return "", true, errNoSkill
		}
		switch {
		case c.name == "up" && !m.MoveUp(i):
			status = "Already at the top"
		case c.name == "down" && !m.MoveDown(i):
			status = "Already at the bottom"
		default:
			status = "Moved " + m.SelectedSkill().Name + " " + c.name
		}
	case "rename":
		if _, ok := m.Selected(); !ok {
			return "", true, errNoSkill
		}
		m.RenameSelected(c.args)
		status = "Renamed to " + c.args

	case "set", "enable", "disable", "raw", "clear":
		return applySkillEdit(m, c)

	default:
		return "", false, nil
	}
	return status, true, err
}

// applySkillEdit handles commands that change the selected skill.
func applySkillEdit(m *mob.Mob, c command) (string, bool, error) {
	s := m.SelectedSkill()
	if s == nil {
		return "", true, errNoSkill
	}

	switch c.name {
	case "raw":
		s.RawArgs = c.args
		return "Raw arguments stored", true, nil
	case "clear":
		switch strings.ToLower(c.args) {
		case "mechanic":
			s.Mechanic = nil
		case "targeter":
			s.Targeter = targeter.None()
		case "trigger":
			s.Trigger = trigger.None
		default:
			return "", true, errors.New("usage: /clear mechanic|targeter|trigger")
		}
		return "Cleared " + strings.ToLower(c.args), true, nil
	}

	if s.Mechanic == nil {
		return "", true, errors.New("the selected skill has no mechanic; use /mechanic first")
	}
	field, value, _ := strings.Cut(c.args, " ")
	if field == "" {
		return "", true, fmt.Errorf("usage: /%s <field>", c.name)
	}

	var err error
	switch c.name {
	case "set":
		err = mechanic.SetField(s.Mechanic, field, strings.TrimSpace(value))
	case "enable":
		err = mechanic.EnableOptional(s.Mechanic, field)
	case "disable":
		err = mechanic.DisableOptional(s.Mechanic, field)
	}
	if err != nil {
		return "", true, err
	}
	return fmt.Sprintf("%s: %s", skillTitle(s), mechanic.Render(s.Mechanic)), true, nil
}

func parseAttribute(m *mob.Mob, text string, bits int) (uint64, error) {
	if m.Kind.IsMetaSkill() {
		return 0, errors.New("meta-skills have no attributes")
	}
	n, err := strconv.ParseUint(strings.TrimSpace(text), 10, bits)
	if err != nil {
		return 0, fmt.Errorf("expected a whole number up to %d bits: %w", bits, err)
	}
	return n, nil
}

// parseIndex reads a 1-based skill number as shown in the skill list.
func parseIndex(m *mob.Mob, text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 1 || n > len(m.Skills) {
		return 0, fmt.Errorf("expected a skill number between 1 and %d", len(m.Skills))
	}
	return n - 1, nil
}

func selectedStatus(m *mob.Mob) string {
	if s := m.SelectedSkill(); s != nil {
		return "Selected " + s.Name
	}
	return "No skills"
}

func skillTitle(s *skill.Skill) string {
	if s.Name == "" {
		return "(unnamed)"
	}
	return s.Name
}

const helpText = `Mob:
  /name <text>        /display <text>     /kind <kind>
  /health <n>         /damage <n>         /armor <n>
Skills:
  /add [name]         /select <n>         /first  /last
  /remove [n]         /up  /down          /rename <name>
Selected skill:
  /mechanic [search]  /targeter           /trigger
  /set <field> <value>                    /enable <field>  /disable <field>
  /raw <args>         /clear mechanic|targeter|trigger
Output:
  /render             /copy               /export
  /save               /open               /new
  /help               /quit`
