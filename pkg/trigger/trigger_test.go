package trigger

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	tests := []struct {
		trigger Trigger
		want    string
		label   string
	}{
		{None, "", "None"},
		{Combat, "~onCombat", "Combat"},
		{Attack, "~onAttack", "Attack"},
		{SpawnOrLoad, "~onSpawnOrLoad", "Spawn Or Load"},
		{ProjectileLand, "~onProjectileLand", "Projectile Land"},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := tt.trigger.Render(); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
			if got := tt.trigger.Label(); got != tt.label {
				t.Errorf("Label() = %q, want %q", got, tt.label)
			}
		})
	}

	var zero Trigger
	if zero != None {
		t.Error("zero value should be None")
	}
	if Trigger(99).Render() != "" {
		t.Error("out of range trigger should render empty")
	}
}

func TestAll(t *testing.T) {
	all := All()
	if len(all) != 32 {
		t.Fatalf("All() returned %d triggers, want 32", len(all))
	}
	if all[0] != None {
		t.Error("None should be first")
	}
	for _, tr := range all[1:] {
		if !strings.HasPrefix(tr.Render(), "~on") {
			t.Errorf("%s: token %q lacks the ~on marker", tr.Label(), tr.Render())
		}
		if tr.Description() == "" {
			t.Errorf("%s: empty description", tr.Label())
		}
		got, err := Parse(tr.Render())
		if err != nil || got != tr {
			t.Errorf("Parse(%q) = %v, %v", tr.Render(), got, err)
		}
	}
}

func TestParse(t *testing.T) {
	for _, s := range []string{"attack", "~onAttack", " ~ONATTACK "} {
		if got, err := Parse(s); err != nil || got != Attack {
			t.Errorf("Parse(%q) = %v, %v", s, got, err)
		}
	}
	if got, err := Parse(""); err != nil || got != None {
		t.Errorf("Parse empty = %v, %v", got, err)
	}
	for _, s := range []string{"~on", "~onFly", "jump"} {
		if _, err := Parse(s); err == nil {
			t.Errorf("Parse(%q) should fail", s)
		}
	}
}

func TestJSON(t *testing.T) {
	data, err := json.Marshal(map[string]Trigger{"trigger": Death})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"trigger":"~onDeath"}` {
		t.Errorf("marshal = %s", data)
	}

	var out map[string]Trigger
	if err := json.Unmarshal([]byte(`{"trigger":""}`), &out); err != nil {
		t.Fatal(err)
	}
	if out["trigger"] != None {
		t.Errorf("empty token decoded to %v", out["trigger"])
	}
}
