package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/accommotrack/client-go/internal/models"
)

func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var out []models.User
	if err := c.doJSON(ctx, http.MethodGet, "/admin/users", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) BlockUser(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/admin/users/%d/block", id), nil, nil, nil)
}

func (c *Client) UnblockUser(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/admin/users/%d/unblock", id), nil, nil, nil)
}

func (c *Client) ApproveUser(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/admin/users/%d/approve", id), nil, nil, nil)
}

// ListPropertiesByStatus returns the moderation queue for one status
// bucket (pending, approved, rejected).
func (c *Client) ListPropertiesByStatus(ctx context.Context, status models.PropertyStatusType) ([]models.Property, error) {
	var out []models.Property
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/admin/properties/%s", status), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ApproveProperty(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/admin/properties/%d/approve", id), nil, nil, nil)
}

func (c *Client) RejectProperty(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/admin/properties/%d/reject", id), nil, nil, nil)
}

func (c *Client) ListLandlordVerifications(ctx context.Context) ([]models.LandlordVerification, error) {
	var out []models.LandlordVerification
	if err := c.doJSON(ctx, http.MethodGet, "/admin/landlord-verifications", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RejectLandlordVerification records a rejection with its reason. The
// 10-character reason minimum is enforced by the admin form before this
// call is made; the backend re-checks it.
func (c *Client) RejectLandlordVerification(ctx context.Context, id int64, reason string) error {
	body := map[string]string{"reason": reason}
	return c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/admin/landlord-verifications/%d/reject", id), nil, body, nil)
}
