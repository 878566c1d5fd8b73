// Package emailcheck runs the debounced "is this email available" probe
// used during registration. Only the response belonging to the most recent
// input is ever applied; superseded in-flight requests are cancelled and
// their late responses discarded.
package emailcheck

import (
	"context"
	"sync"
	"time"

	"github.com/accommotrack/client-go/internal/api"
	"github.com/accommotrack/client-go/internal/validation"
)

type Status int

const (
	StatusNeutral Status = iota
	StatusAvailable
	StatusTaken
	StatusInvalidFormat
	// StatusIndeterminate means the probe could not complete (network or
	// server failure). It deliberately does not imply "taken": a
	// non-destructive check fails open rather than falsely blocking.
	StatusIndeterminate
)

func (s Status) String() string {
	switch s {
	case StatusAvailable:
		return "available"
	case StatusTaken:
		return "taken"
	case StatusInvalidFormat:
		return "invalid-format"
	case StatusIndeterminate:
		return "indeterminate"
	default:
		return "neutral"
	}
}

// Result is the availability verdict for one input value.
type Result struct {
	Email   string
	Status  Status
	Message string
}

// CheckFunc is the remote probe, normally (*api.Client).CheckEmail.
type CheckFunc func(ctx context.Context, email string) (*api.EmailAvailability, error)

const DefaultDebounce = 500 * time.Millisecond

// Checker debounces keystrokes and serializes probe results. OnResult is
// invoked (without the internal lock held) once per applied verdict.
type Checker struct {
	mu       sync.Mutex
	check    CheckFunc
	debounce time.Duration
	onResult func(Result)

	gen    uint64
	timer  *time.Timer
	cancel context.CancelFunc
	result Result
	closed bool
}

func New(check CheckFunc, debounce time.Duration, onResult func(Result)) *Checker {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Checker{check: check, debounce: debounce, onResult: onResult}
}

// Input registers a keystroke. It restarts the debounce window, cancels
// any in-flight probe, and resolves locally invalid input without a
// network call.
func (c *Checker) Input(email string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.gen++
	gen := c.gen
	c.abortLocked()

	if email == "" {
		c.applyLocked(Result{Email: email, Status: StatusNeutral})
		c.mu.Unlock()
		return
	}
	if !validation.IsEmail(email) {
		c.applyLocked(Result{Email: email, Status: StatusInvalidFormat, Message: "Enter a valid email address."})
		c.mu.Unlock()
		return
	}

	c.result = Result{Email: email, Status: StatusNeutral}
	c.timer = time.AfterFunc(c.debounce, func() { c.fire(gen, email) })
	c.mu.Unlock()
}

func (c *Checker) fire(gen uint64, email string) {
	c.mu.Lock()
	if c.closed || gen != c.gen {
		c.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.mu.Unlock()

	resp, err := c.check(ctx, email)

	c.mu.Lock()
	defer c.mu.Unlock()
	// A newer keystroke superseded this probe while it was in flight.
	if c.closed || gen != c.gen {
		return
	}
	c.cancel = nil

	var res Result
	switch {
	case err != nil:
		res = Result{Email: email, Status: StatusIndeterminate, Message: "Could not verify email availability."}
	case resp.Available:
		res = Result{Email: email, Status: StatusAvailable, Message: resp.Message}
	default:
		res = Result{Email: email, Status: StatusTaken, Message: resp.Message}
	}
	c.applyLocked(res)
}

func (c *Checker) applyLocked(res Result) {
	c.result = res
	if c.onResult != nil {
		cb := c.onResult
		go cb(res)
	}
}

// Cancel aborts the pending debounce and any in-flight probe. The form
// submission path calls it before running its own authoritative check.
func (c *Checker) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.abortLocked()
}

// Close tears the checker down when the screen unmounts.
func (c *Checker) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.abortLocked()
}

func (c *Checker) abortLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// Result returns the latest applied verdict.
func (c *Checker) Result() Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}
