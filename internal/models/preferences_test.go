package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePreferences_CurrentSchema(t *testing.T) {
	raw := json.RawMessage(`{"schema_version":1,"budget_min":5000,"budget_max":12000,"preferred_areas":["QC","Makati"],"lifestyle_notes":"quiet","pets":true}`)
	prefs, err := DecodePreferences(raw)
	require.NoError(t, err)
	assert.Equal(t, PreferencesSchemaVersion, prefs.SchemaVersion)
	assert.Equal(t, 5000, prefs.BudgetMin)
	assert.Equal(t, []string{"QC", "Makati"}, prefs.PreferredAreas)
	assert.Equal(t, "quiet", prefs.LifestyleNotes)
	assert.True(t, prefs.Pets)
}

func TestDecodePreferences_DoubleEncodedString(t *testing.T) {
	inner := `{"schema_version":1,"budget_min":3000,"budget_max":8000}`
	raw, err := json.Marshal(inner)
	require.NoError(t, err)

	prefs, err := DecodePreferences(raw)
	require.NoError(t, err)
	assert.Equal(t, 3000, prefs.BudgetMin)
	assert.Equal(t, 8000, prefs.BudgetMax)
}

func TestDecodePreferences_LegacyLifestyleKey(t *testing.T) {
	// Versionless payload from before the schema stamp, with the old key.
	raw := json.RawMessage(`{"budget_min":4000,"budget_max":9000,"lifestyle":"early riser, no parties"}`)
	prefs, err := DecodePreferences(raw)
	require.NoError(t, err)
	assert.Equal(t, PreferencesSchemaVersion, prefs.SchemaVersion, "legacy payload stamped to the current version")
	assert.Equal(t, "early riser, no parties", prefs.LifestyleNotes)
}

func TestDecodePreferences_LegacyDoubleEncoded(t *testing.T) {
	// The worst observed shape: double-encoded AND versionless.
	raw, err := json.Marshal(`{"budget_min":4000,"budget_max":9000,"lifestyle":"night shift"}`)
	require.NoError(t, err)

	prefs, err := DecodePreferences(json.RawMessage(raw))
	require.NoError(t, err)
	assert.Equal(t, PreferencesSchemaVersion, prefs.SchemaVersion)
	assert.Equal(t, "night shift", prefs.LifestyleNotes)
}

func TestDecodePreferences_EmptyAndNull(t *testing.T) {
	for _, raw := range []json.RawMessage{nil, json.RawMessage(`null`)} {
		prefs, err := DecodePreferences(raw)
		require.NoError(t, err)
		assert.Equal(t, PreferencesSchemaVersion, prefs.SchemaVersion)
		assert.Zero(t, prefs.BudgetMin)
	}
}

func TestDecodePreferences_CurrentVersionKeepsLifestyleNotes(t *testing.T) {
	// A version-1 payload that happens to carry a stray legacy key keeps
	// the new field untouched.
	raw := json.RawMessage(`{"schema_version":1,"lifestyle_notes":"new","lifestyle":"old"}`)
	prefs, err := DecodePreferences(raw)
	require.NoError(t, err)
	assert.Equal(t, "new", prefs.LifestyleNotes)
}

func TestDecodePreferences_Malformed(t *testing.T) {
	_, err := DecodePreferences(json.RawMessage(`{not json`))
	assert.Error(t, err)

	_, err = DecodePreferences(json.RawMessage(`"{not json"`))
	assert.Error(t, err)
}
