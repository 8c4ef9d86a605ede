package skill

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/mythic-editor/pkg/mechanic"
	"github.com/jwebster45206/mythic-editor/pkg/param"
	"github.com/jwebster45206/mythic-editor/pkg/targeter"
	"github.com/jwebster45206/mythic-editor/pkg/trigger"
)

func TestNew(t *testing.T) {
	s := New(3)
	assert.Equal(t, "Skill_3", s.Name)
	assert.True(t, s.Targeter.IsNone())
	assert.Equal(t, trigger.None, s.Trigger)

	line, ok := s.Line()
	require.True(t, ok)
	assert.Equal(t, "- activatespawner{spawner=}", line)
}

func TestLine(t *testing.T) {
	tests := []struct {
		name  string
		skill Skill
		want  string
		ok    bool
	}{
		{
			name:  "mechanic only",
			skill: Skill{Mechanic: &mechanic.ArmAnimation{}},
			want:  "- armAnimation @self",
			ok:    true,
		},
		{
			name:  "targeter and trigger",
			skill: Skill{Mechanic: &mechanic.Suicide{}, Targeter: targeter.Single(targeter.Self), Trigger: trigger.Death},
			want:  "- suicide @Self ~onDeath",
			ok:    true,
		},
		{
			name:  "trigger without targeter",
			skill: Skill{Mechanic: &mechanic.Suicide{}, Trigger: trigger.Timer},
			want:  "- suicide ~onTimer",
			ok:    true,
		},
		{
			name:  "no mechanic drops raw args",
			skill: Skill{RawArgs: "damage{a=1}", Targeter: targeter.ThreatTable(), Trigger: trigger.Attack},
			want:  "",
			ok:    false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.skill.Line()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRename(t *testing.T) {
	s := New(0).Rename("Fireball")
	assert.Equal(t, "Fireball", s.Name)
}

func TestJSON(t *testing.T) {
	s := &Skill{
		Name:     "Knockback",
		Mechanic: &mechanic.Velocity{Mode: param.VelocityAdd, VelocityY: 1},
		Targeter: targeter.Multi(targeter.PlayersInRadius),
		Trigger:  trigger.Damaged,
	}
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "Knockback",
		"mechanic": {"type": "Velocity", "params": {"mode": "add", "velocity_x": 0, "velocity_y": 1, "velocity_z": 0, "relative": null}},
		"targeter": "@PlayersInRadius",
		"trigger": "~onDamaged"
	}`, string(data))

	var out Skill
	require.NoError(t, json.Unmarshal(data, &out))
	want, _ := s.Line()
	got, ok := out.Line()
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestJSON_NoMechanic(t *testing.T) {
	var s Skill
	require.NoError(t, json.Unmarshal([]byte(`{"name":"raw","mechanic":null,"raw_args":"x{y=1}","targeter":"","trigger":""}`), &s))
	assert.Nil(t, s.Mechanic)
	assert.Equal(t, "x{y=1}", s.RawArgs)

	err := json.Unmarshal([]byte(`{"name":"bad","mechanic":{"type":"Nope"}}`), &s)
	assert.ErrorIs(t, err, mechanic.ErrUnknownMechanic)
}

func TestClone(t *testing.T) {
	m := &mechanic.AddTrade{Result: "bread"}
	require.NoError(t, mechanic.EnableOptional(m, "max_uses"))
	s := &Skill{Name: "trade", Mechanic: m}

	c, err := s.Clone()
	require.NoError(t, err)
	require.NoError(t, mechanic.SetField(c.Mechanic, "max_uses", "7"))

	orig, _ := s.Line()
	copied, _ := c.Line()
	assert.Contains(t, copied, ";uses=7")
	assert.NotContains(t, orig, ";uses=7")
}
