package emailcheck

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accommotrack/client-go/internal/api"
)

func TestChecker_StaleResponseDiscarded(t *testing.T) {
	// The probe for a@x.com is slow; the probe for b@x.com is fast. Even
	// though a's response lands last, only b's verdict may be applied.
	check := func(ctx context.Context, email string) (*api.EmailAvailability, error) {
		switch email {
		case "a@x.com":
			time.Sleep(120 * time.Millisecond)
			return &api.EmailAvailability{Available: false, Message: "taken"}, nil
		default:
			time.Sleep(5 * time.Millisecond)
			return &api.EmailAvailability{Available: true}, nil
		}
	}
	c := New(check, time.Millisecond, nil)
	defer c.Close()

	c.Input("a@x.com")
	time.Sleep(20 * time.Millisecond) // a's probe is now in flight
	c.Input("b@x.com")

	require.Eventually(t, func() bool {
		return c.Result().Status == StatusAvailable
	}, time.Second, 5*time.Millisecond)

	// Wait past a's response; the verdict must still belong to b.
	time.Sleep(150 * time.Millisecond)
	res := c.Result()
	assert.Equal(t, "b@x.com", res.Email)
	assert.Equal(t, StatusAvailable, res.Status)
}

func TestChecker_DebounceCoalescesKeystrokes(t *testing.T) {
	var calls int32
	check := func(ctx context.Context, email string) (*api.EmailAvailability, error) {
		atomic.AddInt32(&calls, 1)
		return &api.EmailAvailability{Available: true}, nil
	}
	c := New(check, 40*time.Millisecond, nil)
	defer c.Close()

	for _, email := range []string{"a@x.com", "ab@x.com", "abc@x.com"} {
		c.Input(email)
		time.Sleep(5 * time.Millisecond)
	}
	require.Eventually(t, func() bool {
		return c.Result().Status == StatusAvailable
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "only the settled input hits the network")
	assert.Equal(t, "abc@x.com", c.Result().Email)
}

func TestChecker_InvalidFormatShortCircuits(t *testing.T) {
	var calls int32
	check := func(ctx context.Context, email string) (*api.EmailAvailability, error) {
		atomic.AddInt32(&calls, 1)
		return &api.EmailAvailability{Available: true}, nil
	}
	c := New(check, time.Millisecond, nil)
	defer c.Close()

	c.Input("not-an-email")
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, StatusInvalidFormat, c.Result().Status)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls), "invalid format never reaches the network")
}

func TestChecker_NetworkErrorIsIndeterminateNotTaken(t *testing.T) {
	check := func(ctx context.Context, email string) (*api.EmailAvailability, error) {
		return nil, &api.NetworkError{Err: errors.New("connection refused")}
	}
	c := New(check, time.Millisecond, nil)
	defer c.Close()

	c.Input("a@x.com")
	require.Eventually(t, func() bool {
		return c.Result().Status == StatusIndeterminate
	}, time.Second, 5*time.Millisecond)

	assert.NotEqual(t, StatusTaken, c.Result().Status, "a failed probe must not block registration")
}

func TestChecker_TakenVerdict(t *testing.T) {
	check := func(ctx context.Context, email string) (*api.EmailAvailability, error) {
		return &api.EmailAvailability{Available: false, Message: "This email is already registered."}, nil
	}
	c := New(check, time.Millisecond, nil)
	defer c.Close()

	c.Input("ana@example.com")
	require.Eventually(t, func() bool {
		return c.Result().Status == StatusTaken
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, "This email is already registered.", c.Result().Message)
}

func TestChecker_CancelStopsPendingProbe(t *testing.T) {
	var calls int32
	check := func(ctx context.Context, email string) (*api.EmailAvailability, error) {
		atomic.AddInt32(&calls, 1)
		return &api.EmailAvailability{Available: true}, nil
	}
	c := New(check, 30*time.Millisecond, nil)
	defer c.Close()

	c.Input("a@x.com")
	c.Cancel() // the submission path takes over before the debounce fires
	time.Sleep(60 * time.Millisecond)

	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
	assert.Equal(t, StatusNeutral, c.Result().Status)
}

func TestChecker_OnResultCallback(t *testing.T) {
	results := make(chan Result, 1)
	check := func(ctx context.Context, email string) (*api.EmailAvailability, error) {
		return &api.EmailAvailability{Available: true}, nil
	}
	c := New(check, time.Millisecond, func(r Result) { results <- r })
	defer c.Close()

	c.Input("a@x.com")
	select {
	case r := <-results:
		assert.Equal(t, StatusAvailable, r.Status)
	case <-time.After(time.Second):
		t.Fatal("no result delivered")
	}
}
