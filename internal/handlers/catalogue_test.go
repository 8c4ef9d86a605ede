package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/mythic-editor/pkg/mechanic"
	"github.com/jwebster45206/mythic-editor/pkg/mob"
)

func getJSON(t *testing.T, h http.Handler, url string, out any) int {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, url, nil))
	if rr.Code == http.StatusOK {
		require.NoError(t, json.NewDecoder(rr.Body).Decode(out))
	}
	return rr.Code
}

func TestCatalogueHandler_Mechanics(t *testing.T) {
	h := NewCatalogueHandler(testLogger())

	var all []MechanicInfo
	require.Equal(t, http.StatusOK, getJSON(t, h, "/v1/mechanics", &all))
	assert.Len(t, all, len(mechanic.All()))
	assert.Equal(t, "ActivateSpawner", all[0].Name)
	assert.Equal(t, "- activatespawner{spawner=}", all[0].Default)

	var found []MechanicInfo
	require.Equal(t, http.StatusOK, getJSON(t, h, "/v1/mechanics?q=IGNITE", &found))
	require.NotEmpty(t, found)
	var names []string
	for _, m := range found {
		names = append(names, m.Name)
	}
	assert.Contains(t, names, "Ignite")

	var ignite MechanicInfo
	for _, m := range found {
		if m.Name == "Ignite" {
			ignite = m
		}
	}
	require.Len(t, ignite.Fields, 1)
	assert.Equal(t, "ticks", ignite.Fields[0].Name)
	assert.Equal(t, "- ignite{t={ticks}}", ignite.Template)

	var none []MechanicInfo
	require.Equal(t, http.StatusOK, getJSON(t, h, "/v1/mechanics?q=zzzzzz", &none))
	assert.Empty(t, none)
}

func TestCatalogueHandler_Choices(t *testing.T) {
	h := NewCatalogueHandler(testLogger())

	var kinds []mob.Kind
	require.Equal(t, http.StatusOK, getJSON(t, h, "/v1/kinds", &kinds))
	assert.Equal(t, mob.Kinds(), kinds)

	var targeters []ChoiceInfo
	require.Equal(t, http.StatusOK, getJSON(t, h, "/v1/targeters", &targeters))
	assert.Equal(t, "", targeters[0].Token)
	assert.Equal(t, "None", targeters[0].Family)
	assert.Equal(t, "ThreatTable", targeters[len(targeters)-1].Token)

	var triggers []ChoiceInfo
	require.Equal(t, http.StatusOK, getJSON(t, h, "/v1/triggers", &triggers))
	assert.Len(t, triggers, 32)
	assert.Equal(t, "", triggers[0].Token)
	assert.NotEqual(t, -1, indexOf(triggers, "~onAttack"))
}

func indexOf(choices []ChoiceInfo, token string) int {
	for i, c := range choices {
		if c.Token == token {
			return i
		}
	}
	return -1
}

func TestCatalogueHandler_Errors(t *testing.T) {
	h := NewCatalogueHandler(testLogger())

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/v1/kinds", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/colours", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
