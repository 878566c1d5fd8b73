package forms

import (
	"context"
	"strings"
	"sync"

	"github.com/accommotrack/client-go/internal/api"
	"github.com/accommotrack/client-go/internal/confirm"
	"github.com/accommotrack/client-go/internal/models"
	"github.com/accommotrack/client-go/internal/notify"
)

// MinRejectReasonLen is the client-side minimum for a verification
// rejection reason; the backend enforces the same bound.
const MinRejectReasonLen = 10

// AdminReview drives the admin moderation screens: user block/unblock/
// approve, property approve/reject, and landlord verification review.
// Each action is wrapped in a confirmation dialog; none requires password
// re-entry (that tier is reserved for property deletion).
type AdminReview struct {
	mu       sync.Mutex
	client   *api.Client
	notifier *notify.Notifier

	// One action per target at a time; the triggering control is
	// disabled while its action is outstanding.
	inFlight map[int64]bool
}

func NewAdminReview(client *api.Client, notifier *notify.Notifier) *AdminReview {
	return &AdminReview{client: client, notifier: notifier, inFlight: map[int64]bool{}}
}

func (a *AdminReview) Users(ctx context.Context) ([]models.User, error) {
	return a.client.ListUsers(ctx)
}

func (a *AdminReview) Properties(ctx context.Context, status models.PropertyStatusType) ([]models.Property, error) {
	return a.client.ListPropertiesByStatus(ctx, status)
}

func (a *AdminReview) Verifications(ctx context.Context) ([]models.LandlordVerification, error) {
	return a.client.ListLandlordVerifications(ctx)
}

// BlockUserFlow returns the confirmation flow for blocking a user.
func (a *AdminReview) BlockUserFlow(userID int64) *confirm.Flow {
	return confirm.New(nil, func(ctx context.Context, _ string) error {
		return a.runAction(ctx, userID, a.client.BlockUser)
	}, a.notifier, "User blocked.")
}

func (a *AdminReview) UnblockUserFlow(userID int64) *confirm.Flow {
	return confirm.New(nil, func(ctx context.Context, _ string) error {
		return a.runAction(ctx, userID, a.client.UnblockUser)
	}, a.notifier, "User unblocked.")
}

func (a *AdminReview) ApproveUser(ctx context.Context, userID int64) error {
	return a.runAction(ctx, userID, a.client.ApproveUser)
}

func (a *AdminReview) ApproveProperty(ctx context.Context, propertyID int64) error {
	return a.runAction(ctx, propertyID, a.client.ApproveProperty)
}

// RejectPropertyFlow returns the confirmation flow for rejecting a
// pending property listing.
func (a *AdminReview) RejectPropertyFlow(propertyID int64) *confirm.Flow {
	return confirm.New(nil, func(ctx context.Context, _ string) error {
		return a.runAction(ctx, propertyID, a.client.RejectProperty)
	}, a.notifier, "Property rejected.")
}

// RejectVerification records a landlord verification rejection. The
// reason minimum is checked before any network call.
func (a *AdminReview) RejectVerification(ctx context.Context, id int64, reason string) error {
	if len(strings.TrimSpace(reason)) < MinRejectReasonLen {
		return ErrReasonTooShort
	}
	return a.runAction(ctx, id, func(ctx context.Context, id int64) error {
		return a.client.RejectLandlordVerification(ctx, id, reason)
	})
}

// ActionInFlight reports whether the target's control should be disabled.
func (a *AdminReview) ActionInFlight(targetID int64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.inFlight[targetID]
}

func (a *AdminReview) runAction(ctx context.Context, targetID int64, fn func(context.Context, int64) error) error {
	a.mu.Lock()
	if a.inFlight[targetID] {
		a.mu.Unlock()
		return ErrActionInFlight
	}
	a.inFlight[targetID] = true
	a.mu.Unlock()

	err := fn(ctx, targetID)

	a.mu.Lock()
	delete(a.inFlight, targetID)
	a.mu.Unlock()
	return err
}
