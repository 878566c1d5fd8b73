package forms

import (
	"context"

	"github.com/accommotrack/client-go/internal/api"
	"github.com/accommotrack/client-go/internal/editable"
	"github.com/accommotrack/client-go/internal/models"
	"github.com/accommotrack/client-go/internal/validation"
)

// PreferencesForm is the tenant preferences screen. The transport-shape
// quirks (double-encoded payloads, the legacy lifestyle key) are absorbed
// by models.DecodePreferences inside the api layer, so the form only ever
// sees the current schema.
type PreferencesForm struct {
	*editable.Resource[models.TenantPreferences]
}

func NewPreferencesForm(client *api.Client) *PreferencesForm {
	res := editable.New(editable.Funcs[models.TenantPreferences]{
		Fetch: func(ctx context.Context) (models.TenantPreferences, error) {
			p, err := client.GetTenantPreferences(ctx)
			if err != nil {
				return models.TenantPreferences{}, err
			}
			return *p, nil
		},
		Persist: func(ctx context.Context, draft models.TenantPreferences, _ editable.Deletions) (models.TenantPreferences, error) {
			saved, err := client.UpdateTenantPreferences(ctx, draft)
			if err != nil {
				return models.TenantPreferences{}, err
			}
			return *saved, nil
		},
		Validate: func(draft models.TenantPreferences) validation.Errors {
			return validation.Struct(draft)
		},
		Clone: models.TenantPreferences.Clone,
	})
	return &PreferencesForm{Resource: res}
}

func (f *PreferencesForm) SetBudget(min, max int) error {
	return f.Mutate("budget_max", func(d *models.TenantPreferences) {
		d.BudgetMin = min
		d.BudgetMax = max
	})
}

func (f *PreferencesForm) SetPreferredAreas(areas []string) error {
	return f.Mutate("preferred_areas", func(d *models.TenantPreferences) {
		d.PreferredAreas = append([]string(nil), areas...)
	})
}

func (f *PreferencesForm) SetRoomType(v string) error {
	return f.Mutate("room_type", func(d *models.TenantPreferences) { d.RoomType = v })
}

func (f *PreferencesForm) SetMoveInDate(v string) error {
	return f.Mutate("move_in_date", func(d *models.TenantPreferences) { d.MoveInDate = v })
}

func (f *PreferencesForm) SetLifestyleNotes(v string) error {
	return f.Mutate("lifestyle_notes", func(d *models.TenantPreferences) { d.LifestyleNotes = v })
}

func (f *PreferencesForm) SetPets(v bool) error {
	return f.Mutate("pets", func(d *models.TenantPreferences) { d.Pets = v })
}

func (f *PreferencesForm) SetSmoking(v bool) error {
	return f.Mutate("smoking", func(d *models.TenantPreferences) { d.Smoking = v })
}
