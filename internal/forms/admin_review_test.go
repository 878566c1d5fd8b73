package forms_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accommotrack/client-go/internal/forms"
	"github.com/accommotrack/client-go/internal/models"
	"github.com/accommotrack/client-go/internal/notify"
	"github.com/accommotrack/client-go/internal/testutil"
)

func TestAdminReview_BlockUserFlow(t *testing.T) {
	srv := testutil.NewServer()
	defer srv.Close()
	srv.SeedUser(3, models.RoleTenant, models.AccountStatusActive)
	n := notify.New()
	admin := forms.NewAdminReview(newClient(t, srv), n)
	ctx := context.Background()

	flow := admin.BlockUserFlow(3)
	require.NoError(t, flow.Start())
	// The dialog alone gates the call; dismissing it leaves the user alone.
	flow.Dismiss()
	assert.Equal(t, 0, srv.RequestCount("POST /admin/users/3/block"))
	assert.Equal(t, models.AccountStatusActive, srv.Users[3].AccountStatus)

	require.NoError(t, flow.Start())
	require.NoError(t, flow.Confirm(ctx))
	assert.Equal(t, models.AccountStatusBlocked, srv.Users[3].AccountStatus)

	pending := n.Drain()
	require.Len(t, pending, 1)
	assert.Equal(t, "User blocked.", pending[0].Message)
}

func TestAdminReview_UnblockRestoresActive(t *testing.T) {
	srv := testutil.NewServer()
	defer srv.Close()
	srv.SeedUser(3, models.RoleLandlord, models.AccountStatusBlocked)
	admin := forms.NewAdminReview(newClient(t, srv), notify.New())
	ctx := context.Background()

	flow := admin.UnblockUserFlow(3)
	require.NoError(t, flow.Start())
	require.NoError(t, flow.Confirm(ctx))
	assert.Equal(t, models.AccountStatusActive, srv.Users[3].AccountStatus)
}

func TestAdminReview_ApproveUserAndProperty(t *testing.T) {
	srv := testutil.NewServer()
	defer srv.Close()
	srv.SeedUser(4, models.RoleLandlord, models.AccountStatusPending)
	prop := srv.SeedProperty(9, 1)
	prop.Status = models.PropertyStatusPending
	admin := forms.NewAdminReview(newClient(t, srv), notify.New())
	ctx := context.Background()

	require.NoError(t, admin.ApproveUser(ctx, 4))
	assert.Equal(t, models.AccountStatusActive, srv.Users[4].AccountStatus)

	require.NoError(t, admin.ApproveProperty(ctx, 9))
	assert.Equal(t, models.PropertyStatusApproved, srv.Properties[9].Status)
}

func TestAdminReview_RejectPropertyFlow(t *testing.T) {
	srv := testutil.NewServer()
	defer srv.Close()
	srv.SeedProperty(9, 1)
	admin := forms.NewAdminReview(newClient(t, srv), notify.New())
	ctx := context.Background()

	flow := admin.RejectPropertyFlow(9)
	require.NoError(t, flow.Start())
	require.NoError(t, flow.Confirm(ctx))
	assert.Equal(t, models.PropertyStatusRejected, srv.Properties[9].Status)
}

func TestAdminReview_RejectionReasonMinimumIsLocal(t *testing.T) {
	srv := testutil.NewServer()
	defer srv.Close()
	srv.SeedVerification(12)
	admin := forms.NewAdminReview(newClient(t, srv), notify.New())
	ctx := context.Background()

	err := admin.RejectVerification(ctx, 12, "too short")
	assert.ErrorIs(t, err, forms.ErrReasonTooShort)
	assert.Equal(t, 0, srv.RequestCount("POST /admin/landlord-verifications/12/reject"))
	assert.Equal(t, models.VerificationPending, srv.Verifications[12].Status)

	// Whitespace does not count toward the minimum.
	err = admin.RejectVerification(ctx, 12, "   short      ")
	assert.ErrorIs(t, err, forms.ErrReasonTooShort)

	require.NoError(t, admin.RejectVerification(ctx, 12, "Documents are illegible, please rescan."))
	assert.Equal(t, models.VerificationRejected, srv.Verifications[12].Status)
	assert.Equal(t, "Documents are illegible, please rescan.", srv.Verifications[12].Reason)
}

func TestAdminReview_ListVerifications(t *testing.T) {
	srv := testutil.NewServer()
	defer srv.Close()
	srv.SeedVerification(12)
	srv.SeedVerification(13)
	admin := forms.NewAdminReview(newClient(t, srv), notify.New())

	out, err := admin.Verifications(context.Background())
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestAdminReview_PropertiesFilteredByStatus(t *testing.T) {
	srv := testutil.NewServer()
	defer srv.Close()
	srv.SeedProperty(1, 1)
	pending := srv.SeedProperty(2, 1)
	pending.Status = models.PropertyStatusPending
	admin := forms.NewAdminReview(newClient(t, srv), notify.New())

	out, err := admin.Properties(context.Background(), models.PropertyStatusPending)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int64(2), out[0].ID)
}

func TestAdminReview_ActionInFlightGuard(t *testing.T) {
	srv := testutil.NewServer()
	defer srv.Close()
	srv.SeedUser(3, models.RoleTenant, models.AccountStatusActive)
	admin := forms.NewAdminReview(newClient(t, srv), notify.New())
	ctx := context.Background()

	assert.False(t, admin.ActionInFlight(3))
	require.NoError(t, admin.ApproveUser(ctx, 3))
	assert.False(t, admin.ActionInFlight(3), "guard released after completion")

	// A failed action also releases the guard.
	srv.FailNextWrite = true
	require.Error(t, admin.ApproveUser(ctx, 3))
	assert.False(t, admin.ActionInFlight(3))
	require.NoError(t, admin.ApproveUser(ctx, 3))
}
