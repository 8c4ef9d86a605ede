package targeter

import (
	"encoding/json"
	"testing"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		t    Targeter
		want string
	}{
		{"zero value", Targeter{}, ""},
		{"none", None(), ""},
		{"single", Single(Target), "@Target"},
		{"single self", Single(Self), "@Self"},
		{"multi", Multi(PlayersInRing), "@PlayersInRing"},
		{"multi irregular case", Multi(MobsInRadius), "@MobsInradius"},
		{"threat table", ThreatTable(), "ThreatTable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.t.Render(); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSetFamily_ResetsToken(t *testing.T) {
	tg := Single(Mother)

	tg.SetFamily(FamilyMulti)
	if got := tg.Render(); got != "@PlayersInRadius" {
		t.Errorf("after switch to multi got %q, want the multi default", got)
	}

	tg = Multi(Children)
	tg.SetFamily(FamilySingle)
	if got := tg.Render(); got != "@Self" {
		t.Errorf("after switch to single got %q, want the single default", got)
	}

	// switching away and back does not restore the old token
	tg = Single(Vehicle)
	tg.SetFamily(FamilyNone)
	tg.SetFamily(FamilySingle)
	if e, ok := tg.SingleEntity(); !ok || e != DefaultSingle {
		t.Errorf("round trip through None kept %v", e)
	}

	tg = Single(Vehicle)
	tg.SetFamily(FamilySingle)
	if got := tg.Render(); got != "@Vehicle" {
		t.Errorf("re-selecting the same family changed the token to %q", got)
	}

	tg.SetFamily(Family(42))
	if got := tg.Render(); got != "@Vehicle" {
		t.Errorf("unknown family changed the token to %q", got)
	}
}

func TestLabels(t *testing.T) {
	if got := Single(Target).Label(); got != "Single Entity" {
		t.Errorf("single label = %q", got)
	}
	if got := None().Label(); got != "None" {
		t.Errorf("none label = %q", got)
	}
	if got := ThreatTable().Label(); got != "Threat Table" {
		t.Errorf("threat label = %q", got)
	}

	for _, e := range Singles() {
		if e.Token() == "" || e.Label() == "" || e.Description() == "" {
			t.Errorf("single %d has empty metadata", e)
		}
	}
	for _, e := range Multis() {
		if e.Token() == "" || e.Label() == "" || e.Description() == "" {
			t.Errorf("multi %d has empty metadata", e)
		}
	}
	if SingleEntity(-1).Token() != "" || MultiEntity(99).Label() != "" {
		t.Error("out of range entities should have empty metadata")
	}
}

func TestAll(t *testing.T) {
	all := All()
	if want := 2 + len(singles) + len(multis); len(all) != want {
		t.Fatalf("All() returned %d, want %d", len(all), want)
	}
	if !all[0].IsNone() {
		t.Error("first targeter should be None")
	}

	seen := map[string]bool{}
	for _, tg := range all[1:] {
		tok := tg.Render()
		if seen[tok] {
			t.Errorf("duplicate token %q", tok)
		}
		seen[tok] = true

		parsed, err := Parse(tok)
		if err != nil {
			t.Errorf("Parse(%q): %v", tok, err)
			continue
		}
		if parsed != tg {
			t.Errorf("Parse(%q) = %+v, want %+v", tok, parsed, tg)
		}
	}
}

func TestParse(t *testing.T) {
	tg, err := Parse(" @target ")
	if err != nil || tg != Single(Target) {
		t.Errorf("Parse case-insensitive = %+v, %v", tg, err)
	}
	if tg, err := Parse(""); err != nil || !tg.IsNone() {
		t.Errorf("Parse empty = %+v, %v", tg, err)
	}
	if _, err := Parse("@Everyone"); err == nil {
		t.Error("expected error for unknown token")
	}
}

func TestJSON(t *testing.T) {
	type holder struct {
		Targeter Targeter `json:"targeter"`
	}
	data, err := json.Marshal(holder{Multi(ItemsInRadius)})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"targeter":"@ItemsInRadius"}` {
		t.Errorf("marshal = %s", data)
	}

	var h holder
	if err := json.Unmarshal([]byte(`{"targeter":"@ThreatTable"}`), &h); err != nil {
		t.Fatal(err)
	}
	if h.Targeter.Family() != FamilyThreatTable {
		t.Errorf("unmarshal family = %v", h.Targeter.Family())
	}
	data, err = json.Marshal(holder{ThreatTable()})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"targeter":"ThreatTable"}` {
		t.Errorf("marshal threat table = %s", data)
	}
	h = holder{}
	if err := json.Unmarshal(data, &h); err != nil {
		t.Fatal(err)
	}
	if h.Targeter.Family() != FamilyThreatTable {
		t.Errorf("round trip family = %v", h.Targeter.Family())
	}
	if err := json.Unmarshal([]byte(`{"targeter":"@Nobody"}`), &h); err == nil {
		t.Error("expected error for unknown token")
	}
}
