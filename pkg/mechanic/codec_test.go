package mechanic

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/mythic-editor/pkg/param"
)

func TestMarshalUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		m    Mechanic
	}{
		{"struct with optionals", &Velocity{Mode: param.VelocityDivide, VelocityZ: 7, Relative: param.Some(";relative=", false, "")}},
		{"no fields", &Ender{}},
		{"positional", ptr(AddTag("elite"))},
		{"nested values", &AddTrade{Ingredient: param.TradeIngredient{Name: "emerald", Count: 2}, Ingredient2: param.Some(";item2=", param.TradeIngredient{Name: "book", Count: 1}, "")}},
		{"spawner", &ActivateSpawner{Spawner: param.SpawnerIncrement("arena")}},
		{"model", NewModel()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Marshal(tt.m)
			require.NoError(t, err)

			got, err := Unmarshal(data)
			require.NoError(t, err)
			assert.Equal(t, Name(tt.m), Name(got))
			assert.Equal(t, Render(tt.m), Render(got))
		})
	}
}

func TestMarshal_Envelope(t *testing.T) {
	data, err := Marshal(&Ignite{Ticks: 40})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"Ignite","params":{"ticks":40}}`, string(data))
}

func TestUnmarshal_Errors(t *testing.T) {
	_, err := Unmarshal([]byte(`{"type":"Teleportation"}`))
	assert.True(t, errors.Is(err, ErrUnknownMechanic), "got %v", err)

	_, err = Unmarshal([]byte(`{"type":"Ignite","params":{"ticks":1,"colour":"red"}}`))
	assert.Error(t, err)

	_, err = Unmarshal([]byte(`{"type":"HealPercent","params":{"multiplier":3}}`))
	var rangeErr *param.RangeError
	assert.True(t, errors.As(err, &rangeErr), "got %v", err)

	_, err = Unmarshal([]byte(`{"type":"BlockUnmask","params":{"shape":"pyramid"}}`))
	assert.Error(t, err)
}

func TestUnmarshal_NullAndMissingParams(t *testing.T) {
	m, err := Unmarshal([]byte("null"))
	require.NoError(t, err)
	assert.Nil(t, m)

	m, err = Unmarshal([]byte(`{"type":"Suicide"}`))
	require.NoError(t, err)
	assert.Equal(t, "- suicide", Render(m))
}

func TestSearch(t *testing.T) {
	got := Search("VOLLEY")
	require.Len(t, got, 1)
	assert.Equal(t, "ArrowVolley", Name(got[0]))

	assert.Len(t, Search(""), len(catalogue))
	assert.Empty(t, Search("no mechanic matches this"))

	// matches descriptions too
	names := map[string]bool{}
	for _, m := range Search("scoreboard") {
		names[Name(m)] = true
	}
	assert.True(t, names["SetScore"])
	assert.True(t, names["AddTag"])
}

func TestUnmarshal_AffixesComeFromTheField(t *testing.T) {
	data := []byte(`{"type":"AddTrade","params":{
		"action":"ADD","slot":0,"ingredient":{"name":"emerald","count":1},"result":"book",
		"max_uses":{"prefix":"}\n  Health: 9999\n  X: {","value":3,"suffix":"\n"},
		"demand":{"value":2}
	}}`)

	m, err := Unmarshal(data)
	require.NoError(t, err)
	trade := m.(*AddTrade)

	pre, suf := trade.MaxUses.Affixes()
	assert.Equal(t, ";uses=", pre)
	assert.Equal(t, "", suf)
	pre, _ = trade.Demand.Affixes()
	assert.Equal(t, ";d=", pre, "affixes are set even when none were sent")

	out := Render(m)
	assert.Equal(t, "- addTrade{a=ADD;s=0;item1=emerald 1;result=book;uses=3;d=2}", out)
	assert.NotContains(t, out, "\n")
	assert.NotContains(t, out, "Health")
}

func TestMarshal_SavesOnlyTheValue(t *testing.T) {
	data, err := Marshal(&AddTrade{MaxUses: param.Some(";uses=", uint8(4), "")})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"max_uses":{"value":4}`)
	assert.NotContains(t, string(data), "prefix")
}
