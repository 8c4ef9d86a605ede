package mob

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/mythic-editor/pkg/mechanic"
	"github.com/jwebster45206/mythic-editor/pkg/targeter"
	"github.com/jwebster45206/mythic-editor/pkg/trigger"
)

const damageLine = "- damage{a=5;ia=false;pkb=false;pi=false;dc=;ie=false;na=false;ii=false;is=false;dh=false;ieff=false;ir=false;pad=false;tags=;rtag=;e=;ts=false}"

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		kind Kind
		want string
	}{
		{"empty meta-skill", "", MetaSkill, "Default_Skill_Name"},
		{"empty mob", "", Zombie, "Default_Mob_Name"},
		{"blank mob", "   ", "Creeper", "Default_Mob_Name"},
		{"trim and join", " a b ", Zombie, "a_b"},
		{"whitespace runs", "Boss \t Mob\nTwo", Zombie, "Boss_Mob_Two"},
		{"already clean", "Fire_Imp", "Blaze", "Fire_Imp"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeName(tt.in, tt.kind))
		})
	}
}

func TestRender_BossScenario(t *testing.T) {
	m := New()
	m.Name = "Boss Mob"
	m.Health = 100
	s := m.AddSkill()
	s.Mechanic = &mechanic.Damage{Amount: 5}
	s.Targeter = targeter.Single(targeter.Target)
	s.Trigger = trigger.Attack

	want := "Boss_Mob:\n  Type: Zombie\n  Health: 100\n  Skills:\n  " + damageLine + " @Target ~onAttack"
	assert.Equal(t, want, Render(m))
	assert.Equal(t, Render(m), m.Render(), "render is not deterministic")
}

func TestRender_SkillLineWithoutTargeterOrTrigger(t *testing.T) {
	m := New()
	m.Name = "Puppet"
	m.AddSkill().Mechanic = &mechanic.ArmAnimation{}

	out := Render(m)
	assert.True(t, strings.HasSuffix(out, "\n  - armAnimation @self"), out)
}

func TestRender_ConditionalLines(t *testing.T) {
	m := New()
	m.Name = "Plain"
	out := Render(m)
	assert.Equal(t, "Plain:\n  Type: Zombie", out)
	for _, label := range []string{"Health:", "Damage:", "Armor:", "Display:", "Skills:"} {
		assert.NotContains(t, out, label)
	}

	m.Display = "The Plain"
	m.Damage = 4
	m.Armor = 2
	assert.Equal(t, "Plain:\n  Type: Zombie\n  Display: The Plain\n  Damage: 4\n  Armor: 2", Render(m))
}

func TestRender_MetaSkill(t *testing.T) {
	m := New()
	m.Display = "X"
	m.Health = 10
	m.Damage = 5
	m.Armor = 3
	m.SetKind(MetaSkill)

	assert.Empty(t, m.Display)
	assert.Zero(t, m.Health)
	assert.Zero(t, m.Damage)
	assert.Zero(t, m.Armor)
	assert.Equal(t, "Default_Skill_Name:", Render(m))

	m.AddSkill().Mechanic = &mechanic.Suicide{}
	assert.Equal(t, "Default_Skill_Name:\n  Skills:\n  - suicide", Render(m))
}

func TestSetKind_KeepsFieldsForEntities(t *testing.T) {
	m := New()
	m.Health = 20
	m.SetKind("Skeleton")
	assert.Equal(t, uint32(20), m.Health)
	assert.Equal(t, "Default_Mob_Name:\n  Type: Skeleton\n  Health: 20", Render(m))
}

func TestRender_SkillWithoutMechanic(t *testing.T) {
	m := New()
	m.Name = "Raw"
	s := m.AddSkill()
	s.Mechanic = nil
	s.RawArgs = "damage{a=1}"
	s.Targeter = targeter.ThreatTable()
	s.Trigger = trigger.Spawn

	assert.Equal(t, "Raw:\n  Type: Zombie\n  Skills:", Render(m))
}

func TestRender_ZeroMob(t *testing.T) {
	var m Mob
	assert.Equal(t, "Default_Mob_Name:\n  Type: Zombie", Render(&m))
}

func TestNormalize(t *testing.T) {
	m := New()
	m.Name = "  Cave  Lord "
	m.Normalize()
	assert.Equal(t, "Cave_Lord", m.Name)
}

func TestKinds(t *testing.T) {
	kinds := Kinds()
	require.Len(t, kinds, 153)
	assert.Equal(t, MetaSkill, kinds[0])

	seen := map[Kind]bool{}
	for _, k := range kinds {
		assert.False(t, seen[k], "duplicate kind %s", k)
		seen[k] = true
		assert.True(t, k.Valid())
	}
	assert.True(t, seen[DefaultKind])
	assert.False(t, Kind("Dragon").Valid())

	k, err := ParseKind("zombie_villager")
	assert.Error(t, err, "underscores are not folded")
	k, err = ParseKind("zombievillager")
	require.NoError(t, err)
	assert.Equal(t, Kind("ZombieVillager"), k)
}

func TestJSON(t *testing.T) {
	m := New()
	m.Name = "Imp"
	m.SetKind("Blaze")
	m.Health = 30
	s := m.AddSkill()
	s.Mechanic = &mechanic.Ignite{Ticks: 60}
	s.Targeter = targeter.Single(targeter.Target)
	s.Trigger = trigger.Attack
	m.AddSkill().Mechanic = nil

	data, err := json.Marshal(m)
	require.NoError(t, err)

	var out Mob
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, Render(m), Render(&out))
	require.Len(t, out.Skills, 2)
	assert.Nil(t, out.Skills[1].Mechanic)

	err = json.Unmarshal([]byte(`{"name":"x","kind":"Unicorn"}`), &out)
	assert.Error(t, err)

	var empty Mob
	require.NoError(t, json.Unmarshal([]byte(`{"name":"x","kind":""}`), &empty))
	assert.Equal(t, DefaultKind, empty.Kind)
}

func TestCheckYAML(t *testing.T) {
	m := New()
	m.Name = "Boss Mob"
	m.Health = 100
	s := m.AddSkill()
	s.Mechanic = &mechanic.Damage{Amount: 5}
	s.Targeter = targeter.Single(targeter.Target)
	s.Trigger = trigger.Attack
	m.AddSkill().Mechanic = &mechanic.ArmAnimation{}
	require.NoError(t, Check(m))

	meta := New()
	meta.SetKind(MetaSkill)
	require.NoError(t, Check(meta))

	meta.AddSkill().Mechanic = nil
	require.NoError(t, Check(meta), "an empty Skills section is still valid")

	tests := []struct {
		name string
		text string
		key  string
	}{
		{"wrong key", "Other:\n  Type: Zombie", "Boss"},
		{"two keys", "Boss:\n  Type: Zombie\nExtra:\n  Type: Cow", "Boss"},
		{"broken yaml", "Boss:\n  Display: &\n  Type: [", "Boss"},
		{"skills not a list", "Boss:\n  Skills: nope", "Boss"},
		{"nested display", "Boss:\n  Display:\n    a: b", "Boss"},
		{"empty", "", "Boss"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckYAML(tt.text, tt.key)
			assert.True(t, errors.Is(err, ErrMalformed), "got %v", err)
		})
	}
}

func TestSkillList(t *testing.T) {
	m := New()
	_, ok := m.Selected()
	assert.False(t, ok)

	for range 3 {
		m.AddSkill()
	}
	assert.Equal(t, []string{"Skill_0", "Skill_1", "Skill_2"}, names(m))
	i, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, 2, i, "AddSkill selects the new skill")

	m.SelectFirst()
	m.RenameSelected("Opener")
	assert.Equal(t, "Opener", m.Skills[0].Name)

	assert.True(t, m.MoveDown(0))
	assert.Equal(t, []string{"Skill_1", "Opener", "Skill_2"}, names(m))
	assert.Equal(t, "Opener", m.SelectedSkill().Name, "selection follows the moved skill")

	assert.False(t, m.MoveUp(0), "first skill cannot move up")
	assert.False(t, m.MoveDown(2), "last skill cannot move down")
	assert.False(t, m.MoveUp(7))
	assert.True(t, m.MoveUp(2))
	assert.Equal(t, []string{"Skill_1", "Skill_2", "Opener"}, names(m))
	assert.Equal(t, "Opener", m.SelectedSkill().Name)

	m.SelectSkill(9)
	assert.Equal(t, "Opener", m.SelectedSkill().Name, "out of range select is ignored")

	m.RemoveSkill(5)
	assert.Len(t, m.Skills, 3)

	m.RemoveSkill(0)
	assert.Equal(t, []string{"Skill_2", "Opener"}, names(m))
	assert.Equal(t, "Opener", m.SelectedSkill().Name)

	m.RemoveSelected()
	assert.Equal(t, []string{"Skill_2"}, names(m))
	assert.Equal(t, "Skill_2", m.SelectedSkill().Name)

	m.RemoveSelected()
	assert.Empty(t, m.Skills)
	assert.Nil(t, m.SelectedSkill())

	// names come from the list length at the time of adding
	m.AddSkill()
	assert.Equal(t, []string{"Skill_0"}, names(m))
}

func names(m *Mob) []string {
	out := make([]string, len(m.Skills))
	for i, s := range m.Skills {
		out[i] = s.Name
	}
	return out
}
