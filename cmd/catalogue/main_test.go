package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/mythic-editor/pkg/mechanic"
)

func schemaJSON(t *testing.T, m mechanic.Mechanic) map[string]any {
	t.Helper()
	data, err := json.Marshal(paramsSchema(m))
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func property(t *testing.T, schema map[string]any, name string) map[string]any {
	t.Helper()
	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok, "schema has no properties: %v", schema)
	p, ok := props[name].(map[string]any)
	require.True(t, ok, "schema has no property %q: %v", name, props)
	return p
}

func TestParamsSchema_Scalar(t *testing.T) {
	s := schemaJSON(t, &mechanic.Ignite{})
	assert.Equal(t, "Ignite", s["title"])
	assert.Equal(t, "integer", property(t, s, "ticks")["type"])
}

func TestParamsSchema_EnumAndOptional(t *testing.T) {
	s := schemaJSON(t, &mechanic.Velocity{})

	mode := property(t, s, "mode")
	assert.Equal(t, "string", mode["type"])
	assert.Contains(t, mode["enum"], "add")

	relative := property(t, s, "relative")
	oneOf, ok := relative["oneOf"].([]any)
	require.True(t, ok, "optional should be oneOf: %v", relative)
	require.Len(t, oneOf, 2)
	assert.Equal(t, "null", oneOf[0].(map[string]any)["type"])
	props := oneOf[1].(map[string]any)["properties"]
	assert.Contains(t, props, "value")
	assert.NotContains(t, props, "prefix", "affixes are not part of the saved form")
}

func TestBuildCatalogue(t *testing.T) {
	all := buildCatalogue("")
	require.Len(t, all, len(mechanic.All()))
	assert.Equal(t, "ActivateSpawner", all[0].Name)
	assert.Equal(t, "- activatespawner{spawner=}", all[0].Default)

	for _, e := range all {
		assert.NotNil(t, e.Params, e.Name)
	}

	some := buildCatalogue("ignite")
	assert.NotEmpty(t, some)
	assert.Less(t, len(some), len(all))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "catalogue.json")
	entries := buildCatalogue("ignite")
	require.NoError(t, writeFile(path, entries))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeCatalogue(&buf, entries))
	assert.Equal(t, buf.String(), string(data))

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file should be renamed away")
}
