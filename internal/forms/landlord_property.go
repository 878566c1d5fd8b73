package forms

import (
	"context"

	"github.com/google/uuid"

	"github.com/accommotrack/client-go/internal/api"
	"github.com/accommotrack/client-go/internal/confirm"
	"github.com/accommotrack/client-go/internal/editable"
	"github.com/accommotrack/client-go/internal/models"
	"github.com/accommotrack/client-go/internal/notify"
	"github.com/accommotrack/client-go/internal/validation"
)

// Deletion kinds staged on the property resource.
const (
	DeletionKindImages      = "images"
	DeletionKindCredentials = "credentials"
)

// PropertyFieldOrder drives first-invalid focus on the property screen.
var PropertyFieldOrder = []string{"title", "address", "city", "monthly_rate", "description", "images"}

// PropertyForm is the landlord property settings screen: the editable
// listing fields, the image/credential galleries with staged deletions,
// and the password-guarded delete flow.
type PropertyForm struct {
	*editable.Resource[models.Property]

	// DeleteFlow guards the destructive property deletion behind password
	// re-verification plus an explicit confirmation.
	DeleteFlow *confirm.Flow
}

func NewPropertyForm(client *api.Client, propertyID int64, notifier *notify.Notifier) *PropertyForm {
	res := editable.New(editable.Funcs[models.Property]{
		Fetch: func(ctx context.Context) (models.Property, error) {
			p, err := client.GetProperty(ctx, propertyID)
			if err != nil {
				return models.Property{}, err
			}
			return *p, nil
		},
		Persist: func(ctx context.Context, draft models.Property, staged editable.Deletions) (models.Property, error) {
			saved, err := client.UpdateProperty(ctx, api.PropertyUpdate{
				Draft:              draft,
				DeletedImages:      staged[DeletionKindImages],
				DeletedCredentials: staged[DeletionKindCredentials],
			})
			if err != nil {
				return models.Property{}, err
			}
			return *saved, nil
		},
		Validate: func(draft models.Property) validation.Errors {
			errs := validation.Struct(draft)
			if len(draft.Images) == 0 {
				errs["images"] = "A property must keep at least one photo."
			}
			return errs
		},
		Clone: models.Property.Clone,
	})

	deleteFlow := confirm.New(
		client.VerifyPassword,
		func(ctx context.Context, password string) error {
			return client.DeleteProperty(ctx, propertyID, password)
		},
		notifier,
		"Property deleted.",
	)

	return &PropertyForm{Resource: res, DeleteFlow: deleteFlow}
}

func (f *PropertyForm) SetTitle(v string) error {
	return f.Mutate("title", func(d *models.Property) { d.Title = v })
}

func (f *PropertyForm) SetDescription(v string) error {
	return f.Mutate("description", func(d *models.Property) { d.Description = v })
}

func (f *PropertyForm) SetAddress(v string) error {
	return f.Mutate("address", func(d *models.Property) { d.Address = v })
}

func (f *PropertyForm) SetCity(v string) error {
	return f.Mutate("city", func(d *models.Property) { d.City = v })
}

func (f *PropertyForm) SetMonthlyRate(v float64) error {
	return f.Mutate("monthly_rate", func(d *models.Property) { d.MonthlyRate = v })
}

// AddImage stages a new photo for upload at the next save.
func (f *PropertyForm) AddImage(fileName, contentType string, data []byte) error {
	asset := models.NewPendingAsset(fileName, contentType, data)
	return f.Mutate("images", func(d *models.Property) {
		d.Images = append(d.Images, asset)
	})
}

// RemoveExistingImage stages the deletion of a server-side photo. The
// minimum-one-image rule is enforced here, before any state mutation or
// staging: removing the last photo is rejected outright.
func (f *PropertyForm) RemoveExistingImage(id int64) error {
	if len(f.Draft().Images) <= 1 {
		return ErrMinimumOneImage
	}
	if err := f.StageDeletion(DeletionKindImages, id); err != nil {
		return err
	}
	return f.Mutate("images", func(d *models.Property) {
		d.Images = removeExisting(d.Images, id)
	})
}

// RemovePendingImage drops a not-yet-uploaded photo from the draft. No
// deletion is staged; the server never saw it.
func (f *PropertyForm) RemovePendingImage(localID uuid.UUID) error {
	if len(f.Draft().Images) <= 1 {
		return ErrMinimumOneImage
	}
	return f.Mutate("images", func(d *models.Property) {
		d.Images = removePending(d.Images, localID)
	})
}

// SetPrimaryImage marks one uploaded photo primary and clears the flag
// elsewhere. A pending photo is rejected up front: the save payload
// references the primary by server id, so flagging an id-less file would
// be dropped silently on save. Pick it again after the upload lands.
func (f *PropertyForm) SetPrimaryImage(index int) error {
	images := f.Draft().Images
	if index < 0 || index >= len(images) {
		return nil
	}
	if images[index].IsPending() {
		return ErrPrimaryNotUploaded
	}
	return f.Mutate("images", func(d *models.Property) {
		if index >= len(d.Images) || d.Images[index].IsPending() {
			return
		}
		for i := range d.Images {
			d.Images[i].SetPrimary(i == index)
		}
	})
}

// MoveImage reorders the gallery; display order is derived from slice
// position at save time.
func (f *PropertyForm) MoveImage(from, to int) error {
	return f.Mutate("images", func(d *models.Property) {
		if from < 0 || from >= len(d.Images) || to < 0 || to >= len(d.Images) {
			return
		}
		img := d.Images[from]
		d.Images = append(d.Images[:from], d.Images[from+1:]...)
		rest := append([]models.Asset(nil), d.Images[to:]...)
		d.Images = append(append(d.Images[:to:to], img), rest...)
	})
}

// AddCredential stages a landlord credential document for upload.
func (f *PropertyForm) AddCredential(fileName, contentType string, data []byte) error {
	asset := models.NewPendingAsset(fileName, contentType, data)
	return f.Mutate("credentials", func(d *models.Property) {
		d.Credentials = append(d.Credentials, asset)
	})
}

// RemoveExistingCredential stages deletion of an uploaded credential.
// Credentials have no minimum-count rule.
func (f *PropertyForm) RemoveExistingCredential(id int64) error {
	if err := f.StageDeletion(DeletionKindCredentials, id); err != nil {
		return err
	}
	return f.Mutate("credentials", func(d *models.Property) {
		d.Credentials = removeExisting(d.Credentials, id)
	})
}

// FirstInvalid returns the field to focus after a failed save.
func (f *PropertyForm) FirstInvalid() (string, string) {
	return f.FieldErrors().First(PropertyFieldOrder...)
}

func removeExisting(assets []models.Asset, id int64) []models.Asset {
	out := assets[:0]
	for _, a := range assets {
		if a.Existing != nil && a.Existing.ID == id {
			continue
		}
		out = append(out, a)
	}
	return out
}

func removePending(assets []models.Asset, localID uuid.UUID) []models.Asset {
	out := assets[:0]
	for _, a := range assets {
		if a.Pending != nil && a.Pending.LocalID == localID {
			continue
		}
		out = append(out, a)
	}
	return out
}
