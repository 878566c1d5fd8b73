package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/accommotrack/client-go/internal/models"
	"github.com/accommotrack/client-go/internal/utils"
)

// GetTenantProfile returns the authoritative tenant profile. Repeat
// passive reads are served from the short-TTL cache when fresh; every
// successful tenant write drops the cached copy, and a revert refetch
// goes through InvalidateTenantProfile first so it always hits the
// server.
func (c *Client) GetTenantProfile(ctx context.Context) (*models.TenantProfile, error) {
	if c.profileCache != nil {
		if cached, ok := c.profileCache.Get(profileCacheKey); ok {
			p := cached.(models.TenantProfile).Clone()
			return &p, nil
		}
	}
	var out models.TenantProfile
	if err := c.doJSON(ctx, http.MethodGet, "/tenant/profile", nil, nil, &out); err != nil {
		return nil, err
	}
	if c.profileCache != nil {
		c.profileCache.SetDefault(profileCacheKey, out.Clone())
	}
	return &out, nil
}

// InvalidateTenantProfile drops the cached profile copy so the next read
// is answered by the backend. Callers that must observe server-side
// changes (the cancel-revert refetch) invoke it before fetching.
func (c *Client) InvalidateTenantProfile() {
	if c.profileCache != nil {
		c.profileCache.Delete(profileCacheKey)
	}
}

// UpdateTenantProfile persists the full draft. When a pending avatar is
// attached the request goes out as multipart; an unchanged avatar travels
// as its URL string and no file part is written.
func (c *Client) UpdateTenantProfile(ctx context.Context, draft models.TenantProfile) (*models.TenantProfile, error) {
	var out models.TenantProfile
	var err error

	if draft.Avatar != nil && draft.Avatar.IsPending() {
		form := NewForm().
			Set("first_name", draft.FirstName).
			Set("last_name", draft.LastName).
			Set("email", draft.Email).
			SetOptional("phone", draft.Phone).
			SetOptional("bio", draft.Bio).
			SetOptional("occupation", draft.Occupation).
			MethodOverride(http.MethodPut)
		pending := draft.Avatar.Pending
		form.AddFile("avatar", pending.FileName, pending.ContentType, pending.Data)
		err = c.doMultipart(ctx, http.MethodPost, "/tenant/profile", form, &out)
	} else {
		err = c.doJSON(ctx, http.MethodPut, "/tenant/profile", nil, draft, &out)
	}
	if err != nil {
		return nil, err
	}
	c.InvalidateTenantProfile()
	utils.Logger.WithField("tenant_id", out.ID).Debug("tenant profile updated")
	return &out, nil
}

// ChangePassword submits the change-password form. The body carries all
// three fields; the backend re-checks the confirmation server-side.
func (c *Client) ChangePassword(ctx context.Context, change models.PasswordChange) error {
	if err := c.doJSON(ctx, http.MethodPost, "/tenant/change-password", nil, change, nil); err != nil {
		return err
	}
	c.InvalidateTenantProfile()
	return nil
}

func (c *Client) GetTenantPreferences(ctx context.Context) (*models.TenantPreferences, error) {
	var raw json.RawMessage
	if err := c.doJSON(ctx, http.MethodGet, "/tenant/preferences", nil, nil, &raw); err != nil {
		return nil, err
	}
	prefs, err := models.DecodePreferences(raw)
	if err != nil {
		return nil, &ServerError{StatusCode: http.StatusOK, Message: "unexpected preferences shape"}
	}
	return &prefs, nil
}

func (c *Client) UpdateTenantPreferences(ctx context.Context, draft models.TenantPreferences) (*models.TenantPreferences, error) {
	draft.SchemaVersion = models.PreferencesSchemaVersion
	var raw json.RawMessage
	if err := c.doJSON(ctx, http.MethodPut, "/tenant/preferences", nil, draft, &raw); err != nil {
		return nil, err
	}
	prefs, err := models.DecodePreferences(raw)
	if err != nil {
		return nil, &ServerError{StatusCode: http.StatusOK, Message: "unexpected preferences shape"}
	}
	return &prefs, nil
}

func (c *Client) GetNotificationSettings(ctx context.Context) (*models.NotificationSettings, error) {
	var out models.NotificationSettings
	if err := c.doJSON(ctx, http.MethodGet, "/tenant/notifications", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateNotificationSettings(ctx context.Context, draft models.NotificationSettings) (*models.NotificationSettings, error) {
	var out models.NotificationSettings
	if err := c.doJSON(ctx, http.MethodPut, "/tenant/notifications", nil, draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
