package confirm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accommotrack/client-go/internal/api"
	"github.com/accommotrack/client-go/internal/models"
	"github.com/accommotrack/client-go/internal/notify"
)

func TestFlow_HappyPathWithPassword(t *testing.T) {
	var executedWith string
	verify := func(ctx context.Context, pw string) (bool, error) { return pw == "secret", nil }
	execute := func(ctx context.Context, pw string) error {
		executedWith = pw
		return nil
	}
	n := notify.New()
	f := New(verify, execute, n, "Deleted.")
	ctx := context.Background()

	require.Equal(t, StateIdle, f.State())
	require.NoError(t, f.Start())
	require.Equal(t, StatePasswordPrompt, f.State())

	require.NoError(t, f.SubmitPassword(ctx, "secret"))
	require.Equal(t, StateConfirmPrompt, f.State())

	require.NoError(t, f.Confirm(ctx))
	assert.Equal(t, StateIdle, f.State())
	assert.Equal(t, "secret", executedWith)

	pending := n.Drain()
	require.Len(t, pending, 1)
	assert.Equal(t, models.FeedbackSuccess, pending[0].Kind)
}

func TestFlow_WrongPasswordReturnsToPrompt(t *testing.T) {
	verify := func(ctx context.Context, pw string) (bool, error) { return false, nil }
	executed := false
	f := New(verify, func(ctx context.Context, pw string) error {
		executed = true
		return nil
	}, nil, "")
	ctx := context.Background()

	require.NoError(t, f.Start())
	err := f.SubmitPassword(ctx, "wrong")
	assert.ErrorIs(t, err, ErrNotVerified)
	assert.Equal(t, StatePasswordPrompt, f.State(), "flow returns to the prompt, not to idle")
	assert.NotEmpty(t, f.InlineError())
	assert.False(t, executed)

	// The user can retry in place.
	err = f.SubmitPassword(ctx, "still wrong")
	assert.ErrorIs(t, err, ErrNotVerified)
	assert.Equal(t, StatePasswordPrompt, f.State())
}

func TestFlow_VerificationServerErrorShowsInline(t *testing.T) {
	verify := func(ctx context.Context, pw string) (bool, error) {
		return false, &api.ServerError{StatusCode: 500, Message: "boom"}
	}
	f := New(verify, func(ctx context.Context, pw string) error { return nil }, nil, "")

	require.NoError(t, f.Start())
	require.Error(t, f.SubmitPassword(context.Background(), "secret"))
	assert.Equal(t, StatePasswordPrompt, f.State())
	assert.NotEmpty(t, f.InlineError())
}

func TestFlow_ConfirmImpossibleWithoutVerification(t *testing.T) {
	executed := false
	f := New(
		func(ctx context.Context, pw string) (bool, error) { return true, nil },
		func(ctx context.Context, pw string) error {
			executed = true
			return nil
		}, nil, "")

	require.NoError(t, f.Start())
	// Still at the password prompt; the destructive call cannot be forced.
	assert.ErrorIs(t, f.Confirm(context.Background()), ErrBadState)
	assert.False(t, executed)
}

func TestFlow_NoPasswordTierSkipsPrompt(t *testing.T) {
	executed := false
	f := New(nil, func(ctx context.Context, pw string) error {
		executed = true
		assert.Empty(t, pw)
		return nil
	}, nil, "Blocked.")

	require.NoError(t, f.Start())
	assert.Equal(t, StateConfirmPrompt, f.State())
	require.NoError(t, f.Confirm(context.Background()))
	assert.True(t, executed)
}

func TestFlow_ExecuteFailureNotifiesPersistently(t *testing.T) {
	n := notify.New()
	f := New(nil, func(ctx context.Context, pw string) error {
		return errors.New("delete failed")
	}, n, "")

	require.NoError(t, f.Start())
	require.Error(t, f.Confirm(context.Background()))
	assert.Equal(t, StateIdle, f.State())

	pending := n.Drain()
	require.Len(t, pending, 1)
	assert.Equal(t, models.FeedbackError, pending[0].Kind)
}

func TestFlow_DismissResetsPrompts(t *testing.T) {
	f := New(func(ctx context.Context, pw string) (bool, error) { return true, nil },
		func(ctx context.Context, pw string) error { return nil }, nil, "")

	require.NoError(t, f.Start())
	f.Dismiss()
	assert.Equal(t, StateIdle, f.State())

	require.NoError(t, f.Start())
	require.NoError(t, f.SubmitPassword(context.Background(), "any"))
	f.Dismiss()
	assert.Equal(t, StateIdle, f.State())
	// A dismissed flow forgets the verified password.
	require.NoError(t, f.Start())
	assert.ErrorIs(t, f.Confirm(context.Background()), ErrBadState)
}

func TestFlow_StartTwiceRejected(t *testing.T) {
	f := New(nil, func(ctx context.Context, pw string) error { return nil }, nil, "")
	require.NoError(t, f.Start())
	assert.ErrorIs(t, f.Start(), ErrBadState)
}
