package param

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestOptional_Presence(t *testing.T) {
	var absent Optional[int]
	if absent.IsPresent() {
		t.Fatal("zero Optional should be absent")
	}
	if got := absent.String(); got != "" {
		t.Errorf("absent renders %q, want empty", got)
	}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"int", Some(";uses=", 3, "").String(), ";uses=3"},
		{"suffix", Some("s=", float32(0.5), ";").String(), "s=0.5;"},
		{"empty string value", Some(";n=", "", "").String(), ";n="},
		{"nested value", Some(";l=", Xyz{1, -2, 3}, "").String(), ";l=1,-2,3"},
		{"enum value", Some(";mode=", ThreatForceTop, "").String(), ";mode=forcetop"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestOptional_Toggle(t *testing.T) {
	var o Optional[uint8]
	o.Enable(";d=", "")
	if !o.IsPresent() {
		t.Fatal("Enable should make the value present")
	}
	*(o.Elem().(*uint8)) = 9
	o.Enable(";other=", "")
	if got := o.String(); got != ";d=9" {
		t.Errorf("second Enable changed the value: %q", got)
	}
	if pre, suf := o.Affixes(); pre != ";d=" || suf != "" {
		t.Errorf("affixes = %q %q", pre, suf)
	}
	o.Clear()
	if o.IsPresent() || o.Elem() != nil {
		t.Error("Clear should make the value absent")
	}
	if o.ValueType().Kind().String() != "uint8" {
		t.Errorf("ValueType = %s", o.ValueType())
	}
}

func TestOptional_JSON(t *testing.T) {
	type holder struct {
		A Optional[bool] `json:"a"`
		B Optional[Xyz]  `json:"b"`
	}
	in := holder{B: Some(";vector=", Xyz{1, 2, 3}, "")}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"a":null,"b":{"value":{"x":1,"y":2,"z":3}}}`
	if string(data) != want {
		t.Errorf("marshal = %s\nwant %s", data, want)
	}

	var out holder
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out.A.IsPresent() || out.B.String() != "1,2,3" {
		t.Errorf("round trip = %+v", out)
	}
	out.B.SetAffixes(";vector=", "")
	if out.B.String() != ";vector=1,2,3" {
		t.Errorf("after SetAffixes = %q", out.B.String())
	}
}

func TestOptional_JSONIgnoresAffixes(t *testing.T) {
	var o Optional[uint8]
	data := []byte(`{"prefix":"}\n  Health: 9999\n  X: {","value":3,"suffix":"\n"}`)
	if err := json.Unmarshal(data, &o); err != nil {
		t.Fatal(err)
	}
	if pre, suf := o.Affixes(); pre != "" || suf != "" {
		t.Errorf("affixes = %q %q, want none", pre, suf)
	}
	if o.String() != "3" {
		t.Errorf("String = %q", o.String())
	}

	var absent Optional[uint8]
	absent.SetAffixes(";uses=", "")
	if absent.IsPresent() {
		t.Error("SetAffixes should not make an absent key present")
	}
}

func TestPercentage(t *testing.T) {
	p, err := NewPercentage(0.5)
	if err != nil {
		t.Fatalf("0.5 rejected: %v", err)
	}
	if p.String() != "0.5" {
		t.Errorf("String = %q", p.String())
	}

	for _, v := range []float32{1.5, -0.1, float32(math.NaN())} {
		_, err := NewPercentage(v)
		var rangeErr *RangeError
		if !errors.As(err, &rangeErr) {
			t.Errorf("NewPercentage(%v) err = %v, want RangeError", v, err)
		}
	}
	for _, v := range []float32{0, 1} {
		if _, err := NewPercentage(v); err != nil {
			t.Errorf("bound %v rejected: %v", v, err)
		}
	}

	if err := p.Set("2"); err == nil {
		t.Error("Set(2) should fail")
	}
	if p.Value() != 0.5 {
		t.Error("failed Set must not change the value")
	}
	if err := json.Unmarshal([]byte("1.01"), &p); err == nil {
		t.Error("unmarshal of 1.01 should fail")
	}
}

func TestFormat(t *testing.T) {
	type named string
	tests := []struct {
		in   any
		want string
	}{
		{float32(5), "5"},
		{float32(0.1), "0.1"},
		{float64(2.5), "2.5"},
		{int32(-4), "-4"},
		{uint8(255), "255"},
		{true, "true"},
		{"", ""},
		{named("x"), "x"},
		{DurationReduction(20), "20"},
		{ShapeSphere, "sphere"},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := Format(tt.in); got != tt.want {
			t.Errorf("Format(%#v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValueRendering(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"xyz", Xyz{X: 1, Y: 2, Z: 3}.String(), "1,2,3"},
		{"ingredient", TradeIngredient{Name: "emerald", Count: 5}.String(), "emerald 5"},
		{"items", ItemArray{"a", "b"}.String(), "a,b"},
		{"empty items", ItemArray(nil).String(), ""},
		{"tags", Tags{"FIRE"}.String(), "FIRE"},
		{"messages", RandomMessages{"one", "two"}.String(), `"one","two"`},
		{"equipment default slot", EquipmentItem{Item: "stick"}.String(), "stick HAND"},
		{"spawner", SpawnerName("s1").String(), "s1"},
		{"spawner group", SpawnerGroup("g").String(), "g:g"},
		{"spawner increment", SpawnerIncrement("sp").String(), "sp*"},
		{"velocity multiply", VelocityMultiply.String(), "multiply"},
		{"thunder", Thunder1.String(), "1"},
		{"out of range enum", Shape(9).String(), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestArmorStandPose(t *testing.T) {
	p := ArmorStandPose{
		Head:     [3]float32{1, 2, 3},
		RightLeg: [3]float32{-90, 0.06, 100},
	}
	want := "[1.0,2.0,3.0,0.0,0.0,0.0,0.0,0.0,0.0,0.0,0.0,0.0,0.0,0.0,0.0,-90.0,0.1,100.0]"
	if got := p.String(); got != want {
		t.Errorf("String = %s\nwant %s", got, want)
	}

	var q ArmorStandPose
	if err := q.Set(want); err != nil {
		t.Fatal(err)
	}
	if q.RightLeg[0] != -90 || q.Head[2] != 3 {
		t.Errorf("Set parsed %+v", q)
	}
	if err := q.Set("1,2,3"); err == nil {
		t.Error("short pose should fail")
	}
}

func TestSetters(t *testing.T) {
	var ing TradeIngredient
	if err := ing.Set("golden apple 3"); err != nil || ing.Name != "golden apple" || ing.Count != 3 {
		t.Errorf("ingredient = %+v, %v", ing, err)
	}
	var eq EquipmentItem
	if err := eq.Set("iron_boots feet"); err != nil || eq.Slot != SlotFeet {
		t.Errorf("equipment = %+v, %v", eq, err)
	}
	var sp SpawnerSelect
	if err := sp.Set("g:arena"); err != nil || sp.Mode != SpawnerByGroup || sp.Name != "arena" {
		t.Errorf("spawner = %+v, %v", sp, err)
	}
	var v Xyz
	if err := v.Set("1, 2,3"); err != nil || v != (Xyz{1, 2, 3}) {
		t.Errorf("xyz = %+v, %v", v, err)
	}
	if err := v.Set("1,2"); err == nil {
		t.Error("two components should fail")
	}
	var msgs RandomMessages
	_ = msgs.Set("Hello, world| bye |")
	if len(msgs) != 2 || msgs[0] != "Hello, world" {
		t.Errorf("messages = %q", msgs)
	}
}

func TestEnumText(t *testing.T) {
	var s SoundCategory
	if err := s.UnmarshalText([]byte("players")); err != nil || s != SoundPlayers {
		t.Errorf("case-insensitive parse = %v, %v", s, err)
	}
	data, _ := json.Marshal(struct {
		S SoundCategory `json:"s"`
	}{SoundAmbient})
	if string(data) != `{"s":"AMBIANT"}` {
		t.Errorf("marshal = %s", data)
	}

	var p Particle
	if err := p.Set("SOUL_FIRE_FLAME"); err != nil || p.String() != "SOUL_FIRE_FLAME" {
		t.Errorf("particle = %v, %v", p, err)
	}
	_, err := ParseParticle("NOT_A_PARTICLE")
	var tokErr *TokenError
	if !errors.As(err, &tokErr) || tokErr.Enum != "particle" {
		t.Errorf("unknown particle err = %v", err)
	}

	c := ShapeCube.Choices()
	c[0] = "mutated"
	if ShapeCube.String() != "Cube" {
		t.Error("Choices must return a copy")
	}
}

func TestAssign(t *testing.T) {
	var f float32
	if err := Assign(&f, " 1.25 "); err != nil || f != 1.25 {
		t.Errorf("float = %v, %v", f, err)
	}
	var u uint8
	if err := Assign(&u, "300"); err == nil {
		t.Error("overflow should fail")
	}
	var b bool
	if err := Assign(&b, "yes"); err == nil {
		t.Error("bad bool should fail")
	}
	var sh Shape
	if err := Assign(&sh, "sphere"); err != nil || sh != ShapeSphere {
		t.Errorf("shape = %v, %v", sh, err)
	}
	if err := Assign(f, "1"); err == nil {
		t.Error("non-pointer should fail")
	}
}
