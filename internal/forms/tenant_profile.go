// Package forms wires the generic editable-resource controller to each
// settings screen: one instantiation per resource, sharing one lifecycle
// instead of per-screen reimplementations.
package forms

import (
	"context"
	"time"

	"github.com/accommotrack/client-go/internal/api"
	"github.com/accommotrack/client-go/internal/editable"
	"github.com/accommotrack/client-go/internal/emailcheck"
	"github.com/accommotrack/client-go/internal/models"
	"github.com/accommotrack/client-go/internal/validation"
)

// TenantProfileFieldOrder is the deterministic order used to pick the
// first invalid field for auto-focus.
var TenantProfileFieldOrder = []string{"first_name", "last_name", "email", "phone", "bio", "occupation"}

// TenantProfileForm is the tenant profile settings screen.
type TenantProfileForm struct {
	*editable.Resource[models.TenantProfile]

	// EmailCheck answers "is this email free" while the user types. The
	// UI feeds it keystrokes; its verdict is advisory and never blocks a
	// save (the server re-validates uniqueness).
	EmailCheck *emailcheck.Checker
}

// NewTenantProfileForm builds the profile screen. emailDebounce tunes the
// availability probe; zero picks the default window.
func NewTenantProfileForm(client *api.Client, emailDebounce time.Duration) *TenantProfileForm {
	res := editable.New(editable.Funcs[models.TenantProfile]{
		Fetch: func(ctx context.Context) (models.TenantProfile, error) {
			p, err := client.GetTenantProfile(ctx)
			if err != nil {
				return models.TenantProfile{}, err
			}
			return *p, nil
		},
		Persist: func(ctx context.Context, draft models.TenantProfile, _ editable.Deletions) (models.TenantProfile, error) {
			saved, err := client.UpdateTenantProfile(ctx, draft)
			if err != nil {
				return models.TenantProfile{}, err
			}
			return *saved, nil
		},
		Validate: func(draft models.TenantProfile) validation.Errors {
			return validation.Struct(draft)
		},
		Clone:      models.TenantProfile.Clone,
		Invalidate: client.InvalidateTenantProfile,
	})

	f := &TenantProfileForm{
		Resource:   res,
		EmailCheck: emailcheck.New(client.CheckEmail, emailDebounce, nil),
	}
	res.BindFieldValidator("first_name", func(d models.TenantProfile) string {
		if d.FirstName != "" && !validation.IsPersonName(d.FirstName) {
			return "Only letters, spaces, hyphens and apostrophes are allowed."
		}
		return ""
	})
	res.BindFieldValidator("last_name", func(d models.TenantProfile) string {
		if d.LastName != "" && !validation.IsPersonName(d.LastName) {
			return "Only letters, spaces, hyphens and apostrophes are allowed."
		}
		return ""
	})
	res.BindFieldValidator("email", func(d models.TenantProfile) string {
		if d.Email != "" && !validation.IsEmail(d.Email) {
			return "Enter a valid email address."
		}
		return ""
	})
	res.BindFieldValidator("phone", func(d models.TenantProfile) string {
		if d.Phone != "" && !validation.IsMobile(d.Phone) {
			return "Phone number must be 11 digits starting with 09."
		}
		return ""
	})
	return f
}

func (f *TenantProfileForm) SetFirstName(v string) error {
	return f.Mutate("first_name", func(d *models.TenantProfile) { d.FirstName = v })
}

func (f *TenantProfileForm) SetLastName(v string) error {
	return f.Mutate("last_name", func(d *models.TenantProfile) { d.LastName = v })
}

func (f *TenantProfileForm) SetEmail(v string) error {
	return f.Mutate("email", func(d *models.TenantProfile) { d.Email = v })
}

func (f *TenantProfileForm) SetPhone(v string) error {
	return f.Mutate("phone", func(d *models.TenantProfile) { d.Phone = v })
}

func (f *TenantProfileForm) SetBio(v string) error {
	return f.Mutate("bio", func(d *models.TenantProfile) { d.Bio = v })
}

func (f *TenantProfileForm) SetOccupation(v string) error {
	return f.Mutate("occupation", func(d *models.TenantProfile) { d.Occupation = v })
}

// SetAvatar stages a new avatar file for upload at the next save.
func (f *TenantProfileForm) SetAvatar(fileName, contentType string, data []byte) error {
	asset := models.NewPendingAsset(fileName, contentType, data)
	return f.Mutate("avatar", func(d *models.TenantProfile) { d.Avatar = &asset })
}

// FirstInvalid returns the field the UI should focus after a failed save.
func (f *TenantProfileForm) FirstInvalid() (string, string) {
	return f.FieldErrors().First(TenantProfileFieldOrder...)
}

// Close tears down the screen, including the availability checker.
func (f *TenantProfileForm) Close() {
	f.EmailCheck.Close()
	f.Resource.Close()
}
