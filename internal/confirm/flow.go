// Package confirm implements the two-step confirmation used by
// destructive actions. Every flow shows an explicit confirmation dialog;
// the highest-risk flows additionally demand re-entry and server-side
// verification of the acting user's password before the destructive call
// is issued.
package confirm

import (
	"context"
	"errors"
	"sync"

	"github.com/accommotrack/client-go/internal/api"
	"github.com/accommotrack/client-go/internal/models"
	"github.com/accommotrack/client-go/internal/notify"
)

type State int

const (
	StateIdle State = iota
	StatePasswordPrompt
	StateVerifying
	StateConfirmPrompt
	StateExecuting
)

func (s State) String() string {
	switch s {
	case StatePasswordPrompt:
		return "passwordPromptOpen"
	case StateVerifying:
		return "verifying"
	case StateConfirmPrompt:
		return "confirmPromptOpen"
	case StateExecuting:
		return "executing"
	default:
		return "idle"
	}
}

var (
	ErrBadState    = errors.New("bad_confirmation_state")
	ErrNotVerified = errors.New("password_not_verified")
)

// VerifyFunc checks the password server-side, normally
// (*api.Client).VerifyPassword. A wrong password is (false, nil).
type VerifyFunc func(ctx context.Context, password string) (bool, error)

// ExecuteFunc performs the destructive call. password is "" for flows
// without a password step.
type ExecuteFunc func(ctx context.Context, password string) error

// Flow drives one destructive action through
// idle → passwordPromptOpen → verifying → confirmPromptOpen → executing → idle.
// Flows without a Verify func skip straight to the confirmation dialog.
type Flow struct {
	mu       sync.Mutex
	verify   VerifyFunc
	execute  ExecuteFunc
	notifier *notify.Notifier

	state       State
	password    string
	inlineError string
	successMsg  string
}

func New(verify VerifyFunc, execute ExecuteFunc, notifier *notify.Notifier, successMsg string) *Flow {
	return &Flow{verify: verify, execute: execute, notifier: notifier, successMsg: successMsg}
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// InlineError is the message shown inside the currently open prompt.
func (f *Flow) InlineError() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inlineError
}

// Start opens the flow. Password-protected flows open the password
// prompt; the rest go directly to the confirmation dialog.
func (f *Flow) Start() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateIdle {
		return ErrBadState
	}
	f.inlineError = ""
	f.password = ""
	if f.verify != nil {
		f.state = StatePasswordPrompt
	} else {
		f.state = StateConfirmPrompt
	}
	return nil
}

// SubmitPassword verifies the re-entered password. A failed verification
// returns the flow to the password prompt with an inline error; it never
// aborts the whole flow.
func (f *Flow) SubmitPassword(ctx context.Context, password string) error {
	f.mu.Lock()
	if f.state != StatePasswordPrompt {
		f.mu.Unlock()
		return ErrBadState
	}
	f.state = StateVerifying
	f.inlineError = ""
	f.mu.Unlock()

	verified, err := f.verify(ctx, password)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = StatePasswordPrompt
		f.inlineError = api.FeedbackMessage(err)
		return err
	}
	if !verified {
		f.state = StatePasswordPrompt
		f.inlineError = "Incorrect password. Please try again."
		return ErrNotVerified
	}
	f.password = password
	f.state = StateConfirmPrompt
	return nil
}

// Confirm issues the destructive call. The outcome goes to the app-level
// notifier as well, since the originating screen may already be gone when
// it lands.
func (f *Flow) Confirm(ctx context.Context) error {
	f.mu.Lock()
	if f.state != StateConfirmPrompt {
		f.mu.Unlock()
		return ErrBadState
	}
	if f.verify != nil && f.password == "" {
		f.mu.Unlock()
		return ErrNotVerified
	}
	f.state = StateExecuting
	password := f.password
	f.mu.Unlock()

	err := f.execute(ctx, password)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = StateIdle
	f.password = ""
	if err != nil {
		if f.notifier != nil {
			f.notifier.Push(models.ErrorFeedback(api.FeedbackMessage(err)))
		}
		return err
	}
	if f.notifier != nil {
		f.notifier.Push(models.SuccessFeedback(f.successMsg))
	}
	return nil
}

// Dismiss closes an open prompt without acting. It is a no-op while a
// verification or the destructive call itself is outstanding.
func (f *Flow) Dismiss() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StatePasswordPrompt || f.state == StateConfirmPrompt {
		f.state = StateIdle
		f.password = ""
		f.inlineError = ""
	}
}
