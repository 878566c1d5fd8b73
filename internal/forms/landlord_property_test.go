package forms_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accommotrack/client-go/internal/confirm"
	"github.com/accommotrack/client-go/internal/forms"
	"github.com/accommotrack/client-go/internal/models"
	"github.com/accommotrack/client-go/internal/notify"
	"github.com/accommotrack/client-go/internal/testutil"
)

func TestProperty_MinimumOneImageInvariant(t *testing.T) {
	srv := testutil.NewServer()
	defer srv.Close()
	srv.SeedProperty(5, 1)
	form := forms.NewPropertyForm(newClient(t, srv), 5, notify.New())
	defer form.Close()
	ctx := context.Background()

	require.NoError(t, form.Load(ctx))
	require.NoError(t, form.BeginEdit())
	lastID := form.Draft().Images[0].Existing.ID

	requestsBefore := len(srv.Requests)
	err := form.RemoveExistingImage(lastID)
	assert.ErrorIs(t, err, forms.ErrMinimumOneImage)
	assert.Len(t, form.Draft().Images, 1, "no state mutation")
	assert.Empty(t, form.StagedDeletions(forms.DeletionKindImages), "nothing staged")
	assert.Len(t, srv.Requests, requestsBefore, "no network call")
}

func TestProperty_StagedDeletionSentOnSave(t *testing.T) {
	srv := testutil.NewServer()
	defer srv.Close()
	srv.SeedProperty(5, 3)
	form := forms.NewPropertyForm(newClient(t, srv), 5, notify.New())
	defer form.Close()
	ctx := context.Background()

	require.NoError(t, form.Load(ctx))
	require.NoError(t, form.BeginEdit())
	removedID := form.Draft().Images[2].Existing.ID
	require.NoError(t, form.RemoveExistingImage(removedID))
	assert.Len(t, form.Draft().Images, 2)

	require.NoError(t, form.Save(ctx))
	baseline := form.Baseline()
	assert.Len(t, baseline.Images, 2)
	for _, img := range baseline.Images {
		assert.NotEqual(t, removedID, img.Existing.ID)
	}
}

func TestProperty_CancelDiscardsStagedDeletions(t *testing.T) {
	srv := testutil.NewServer()
	defer srv.Close()
	srv.SeedProperty(5, 3)
	form := forms.NewPropertyForm(newClient(t, srv), 5, notify.New())
	defer form.Close()
	ctx := context.Background()

	require.NoError(t, form.Load(ctx))
	require.NoError(t, form.BeginEdit())
	require.NoError(t, form.RemoveExistingImage(form.Draft().Images[0].Existing.ID))
	require.NoError(t, form.CancelEdit(ctx))

	assert.Len(t, form.Draft().Images, 3, "server copy restored, staged deletion gone")
	assert.Empty(t, form.StagedDeletions(forms.DeletionKindImages))

	// The server still has all three images.
	require.NoError(t, form.BeginEdit())
	require.NoError(t, form.Save(ctx))
	assert.Len(t, form.Baseline().Images, 3)
}

func TestProperty_PendingImageUploadAndPrimary(t *testing.T) {
	srv := testutil.NewServer()
	defer srv.Close()
	srv.SeedProperty(5, 2)
	form := forms.NewPropertyForm(newClient(t, srv), 5, notify.New())
	defer form.Close()
	ctx := context.Background()

	require.NoError(t, form.Load(ctx))
	require.NoError(t, form.BeginEdit())
	require.NoError(t, form.AddImage("new.jpg", "image/jpeg", []byte("jpeg-bytes")))
	require.NoError(t, form.SetPrimaryImage(1))

	require.NoError(t, form.Save(ctx))
	baseline := form.Baseline()
	require.Len(t, baseline.Images, 3)
	primary := baseline.PrimaryImage()
	require.NotNil(t, primary)
}

func TestProperty_PendingImageCannotBePrimary(t *testing.T) {
	srv := testutil.NewServer()
	defer srv.Close()
	srv.SeedProperty(5, 2)
	form := forms.NewPropertyForm(newClient(t, srv), 5, notify.New())
	defer form.Close()
	ctx := context.Background()

	require.NoError(t, form.Load(ctx))
	require.NoError(t, form.BeginEdit())
	require.NoError(t, form.AddImage("new.jpg", "image/jpeg", []byte("jpeg-bytes")))

	originalPrimary := form.Draft().Images[0].Existing.ID
	err := form.SetPrimaryImage(2)
	assert.ErrorIs(t, err, forms.ErrPrimaryNotUploaded)

	require.NoError(t, form.Save(ctx))
	baseline := form.Baseline()
	primary := baseline.PrimaryImage()
	require.NotNil(t, primary)
	assert.Equal(t, originalPrimary, primary.Existing.ID, "rejected selection leaves the primary unchanged")
}

func TestProperty_RemovePendingNeedsNoStaging(t *testing.T) {
	srv := testutil.NewServer()
	defer srv.Close()
	srv.SeedProperty(5, 1)
	form := forms.NewPropertyForm(newClient(t, srv), 5, notify.New())
	defer form.Close()
	ctx := context.Background()

	require.NoError(t, form.Load(ctx))
	require.NoError(t, form.BeginEdit())
	require.NoError(t, form.AddImage("extra.jpg", "image/jpeg", []byte("x")))
	draft := form.Draft()
	require.Len(t, draft.Images, 2)
	localID := draft.Images[1].Pending.LocalID

	require.NoError(t, form.RemovePendingImage(localID))
	assert.Len(t, form.Draft().Images, 1)
	assert.Empty(t, form.StagedDeletions(forms.DeletionKindImages), "the server never saw the pending file")
}

func TestProperty_DeleteRequiresVerifiedPassword(t *testing.T) {
	srv := testutil.NewServer()
	defer srv.Close()
	srv.SeedProperty(5, 1)
	n := notify.New()
	form := forms.NewPropertyForm(newClient(t, srv), 5, n)
	defer form.Close()
	ctx := context.Background()

	flow := form.DeleteFlow
	require.NoError(t, flow.Start())
	require.Equal(t, confirm.StatePasswordPrompt, flow.State())

	// The DELETE call is unreachable before verification.
	assert.ErrorIs(t, flow.Confirm(ctx), confirm.ErrBadState)
	assert.Equal(t, 0, srv.RequestCount("DELETE /landlord/properties/5"))

	// A wrong password bounces back to the prompt with the server's
	// message; the flow is not aborted.
	err := flow.SubmitPassword(ctx, "wrong-password")
	assert.ErrorIs(t, err, confirm.ErrNotVerified)
	assert.Equal(t, confirm.StatePasswordPrompt, flow.State())
	assert.NotEmpty(t, flow.InlineError())
	assert.Equal(t, 0, srv.RequestCount("DELETE /landlord/properties/5"))

	// Correct password, then confirm: the property is gone.
	require.NoError(t, flow.SubmitPassword(ctx, testutil.TestPassword))
	require.NoError(t, flow.Confirm(ctx))
	assert.Equal(t, 1, srv.RequestCount("DELETE /landlord/properties/5"))

	pending := n.Drain()
	require.Len(t, pending, 1)
	assert.Equal(t, models.FeedbackSuccess, pending[0].Kind)
}

func TestProperty_ValidationRejectsEmptyGallery(t *testing.T) {
	srv := testutil.NewServer()
	defer srv.Close()
	srv.SeedProperty(5, 1)
	form := forms.NewPropertyForm(newClient(t, srv), 5, notify.New())
	defer form.Close()
	ctx := context.Background()

	require.NoError(t, form.Load(ctx))
	require.NoError(t, form.BeginEdit())
	// Bypass the gallery helpers to simulate a corrupted draft; the save
	// gate still holds the invariant.
	require.NoError(t, form.Mutate("images", func(d *models.Property) { d.Images = nil }))

	require.Error(t, form.Save(ctx))
	assert.Contains(t, form.FieldErrors(), "images")
	assert.Equal(t, 0, srv.RequestCount("PUT /landlord/properties/5"))
	assert.Equal(t, 0, srv.RequestCount("POST /landlord/properties/5"))
}
