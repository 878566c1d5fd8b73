package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/accommotrack/client-go/internal/models"
	"github.com/accommotrack/client-go/internal/utils"
)

func (c *Client) GetProperty(ctx context.Context, id int64) (*models.Property, error) {
	var out models.Property
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/landlord/properties/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PropertyUpdate is the full property save payload: the draft plus the
// deletions staged during the edit session.
type PropertyUpdate struct {
	Draft              models.Property
	DeletedImages      []int64
	DeletedCredentials []int64
}

// UpdateProperty persists a property draft. Whenever any pending file is
// attached the request is multipart POST with a `_method=PUT` override;
// otherwise a plain JSON PUT. Existing images are referenced by id only,
// never re-uploaded.
func (c *Client) UpdateProperty(ctx context.Context, upd PropertyUpdate) (*models.Property, error) {
	draft := upd.Draft
	hasFiles := false
	for _, img := range draft.Images {
		if img.IsPending() {
			hasFiles = true
			break
		}
	}
	for _, cred := range draft.Credentials {
		if cred.IsPending() {
			hasFiles = true
			break
		}
	}

	order := make([]models.ImageOrderEntry, 0, len(draft.Images))
	var primaryID int64
	for i, img := range draft.Images {
		if img.Existing != nil {
			order = append(order, models.ImageOrderEntry{ID: img.Existing.ID, DisplayOrder: i})
			if img.Existing.Primary {
				primaryID = img.Existing.ID
			}
		}
	}
	orderJSON, err := json.Marshal(order)
	if err != nil {
		return nil, fmt.Errorf("encode image_order: %w", err)
	}

	var out models.Property
	if hasFiles {
		form := NewForm().
			Set("title", draft.Title).
			SetOptional("description", draft.Description).
			Set("address", draft.Address).
			Set("city", draft.City).
			Set("monthly_rate", strconv.FormatFloat(draft.MonthlyRate, 'f', 2, 64)).
			Set("image_order", string(orderJSON)).
			MethodOverride(http.MethodPut)
		if primaryID != 0 {
			form.Set("primary_image_id", strconv.FormatInt(primaryID, 10))
		}
		for _, id := range upd.DeletedImages {
			form.Set("deleted_images[]", strconv.FormatInt(id, 10))
		}
		for _, id := range upd.DeletedCredentials {
			form.Set("deleted_credentials[]", strconv.FormatInt(id, 10))
		}
		for _, img := range draft.Images {
			if img.Pending != nil {
				form.AddFile("images[]", img.Pending.FileName, img.Pending.ContentType, img.Pending.Data)
			}
		}
		for _, cred := range draft.Credentials {
			if cred.Pending != nil {
				form.AddFile("credentials[]", cred.Pending.FileName, cred.Pending.ContentType, cred.Pending.Data)
			}
		}
		err = c.doMultipart(ctx, http.MethodPost, fmt.Sprintf("/landlord/properties/%d", draft.ID), form, &out)
	} else {
		body := struct {
			models.Property
			DeletedImages      []int64                  `json:"deleted_images"`
			DeletedCredentials []int64                  `json:"deleted_credentials"`
			PrimaryImageID     int64                    `json:"primary_image_id,omitempty"`
			ImageOrder         []models.ImageOrderEntry `json:"image_order"`
		}{draft, upd.DeletedImages, upd.DeletedCredentials, primaryID, order}
		err = c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/landlord/properties/%d", draft.ID), nil, body, &out)
	}
	if err != nil {
		return nil, err
	}
	utils.Logger.WithField("property_id", out.ID).Debug("property updated")
	return &out, nil
}

// VerifyPassword re-checks the acting landlord's password ahead of a
// destructive call. A wrong password is a definitive `verified: false`,
// not an error.
func (c *Client) VerifyPassword(ctx context.Context, password string) (bool, error) {
	body := map[string]string{"password": password}
	var out struct {
		Verified bool   `json:"verified"`
		Message  string `json:"message,omitempty"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/landlord/properties/verify-password", nil, body, &out); err != nil {
		return false, err
	}
	return out.Verified, nil
}

// DeleteProperty issues the destructive delete. The password travels in
// the body and is re-verified server-side regardless of the earlier
// verify-password round trip.
func (c *Client) DeleteProperty(ctx context.Context, id int64, password string) error {
	body := map[string]string{"password": password}
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/landlord/properties/%d", id), nil, body, nil)
}
