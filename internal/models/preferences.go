package models

import (
	"encoding/json"
	"fmt"
)

// PreferencesSchemaVersion is the version written on every save. Version 0
// payloads are the legacy shape (no version field, `lifestyle` key, and
// sometimes double-encoded as a JSON string).
const PreferencesSchemaVersion = 1

// TenantPreferences is the tenant's search/matching preferences resource.
type TenantPreferences struct {
	SchemaVersion  int      `json:"schema_version"`
	BudgetMin      int      `json:"budget_min" validate:"gte=0"`
	BudgetMax      int      `json:"budget_max" validate:"gtefield=BudgetMin"`
	PreferredAreas []string `json:"preferred_areas"`
	RoomType       string   `json:"room_type"`
	MoveInDate     string   `json:"move_in_date"`
	LifestyleNotes string   `json:"lifestyle_notes"`
	Pets           bool     `json:"pets"`
	Smoking        bool     `json:"smoking"`
}

func (p TenantPreferences) Clone() TenantPreferences {
	out := p
	out.PreferredAreas = append([]string(nil), p.PreferredAreas...)
	return out
}

// DecodePreferences accepts every transport shape the backend has been
// observed to produce: a JSON object, a double-encoded JSON string, or the
// legacy versionless payload carrying `lifestyle` instead of
// `lifestyle_notes`. The result is always the current schema version.
func DecodePreferences(raw json.RawMessage) (TenantPreferences, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return TenantPreferences{SchemaVersion: PreferencesSchemaVersion}, nil
	}

	// Double-encoded: the payload is a JSON string containing JSON.
	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return TenantPreferences{}, fmt.Errorf("decode preferences wrapper: %w", err)
		}
		raw = json.RawMessage(inner)
	}

	var wire struct {
		TenantPreferences
		Lifestyle string `json:"lifestyle"`
	}
	if err := json.Unmarshal(raw, &wire); err != nil {
		return TenantPreferences{}, fmt.Errorf("decode preferences: %w", err)
	}

	prefs := wire.TenantPreferences
	if prefs.SchemaVersion == 0 {
		// Legacy payload: migrate the old key, then stamp the version.
		if prefs.LifestyleNotes == "" {
			prefs.LifestyleNotes = wire.Lifestyle
		}
		prefs.SchemaVersion = PreferencesSchemaVersion
	}
	return prefs, nil
}
