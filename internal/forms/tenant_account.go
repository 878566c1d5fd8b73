package forms

import (
	"context"
	"errors"
	"sync"

	"github.com/accommotrack/client-go/internal/api"
	"github.com/accommotrack/client-go/internal/models"
	"github.com/accommotrack/client-go/internal/validation"
)

// PasswordFieldOrder drives first-invalid focus on the account screen.
var PasswordFieldOrder = []string{"current_password", "password", "password_confirmation"}

var ErrSubmitInFlight = errors.New("submit_in_flight")

// PasswordChangeForm is the account/password screen. Unlike the other
// settings it is one-shot: there is no server baseline to revert to, so it
// does not ride on the editable controller.
type PasswordChangeForm struct {
	mu     sync.Mutex
	client *api.Client

	draft       models.PasswordChange
	submitting  bool
	fieldErrors validation.Errors
	feedback    models.OperationFeedback
}

func NewPasswordChangeForm(client *api.Client) *PasswordChangeForm {
	return &PasswordChangeForm{
		client:      client,
		fieldErrors: validation.Errors{},
		feedback:    models.NoFeedback(),
	}
}

func (f *PasswordChangeForm) SetCurrentPassword(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft.CurrentPassword = v
}

func (f *PasswordChangeForm) SetPassword(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft.Password = v
}

func (f *PasswordChangeForm) SetConfirmation(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft.PasswordConfirmation = v
}

// Checklist is the live password-strength indicator; it never blocks
// typing.
func (f *PasswordChangeForm) Checklist() validation.PasswordChecklist {
	f.mu.Lock()
	defer f.mu.Unlock()
	return validation.CheckPassword(f.draft.Password)
}

// MatchStatus is the live "passwords match" hint.
func (f *PasswordChangeForm) MatchStatus() models.FieldStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return validation.MatchStatus(f.draft.Password, f.draft.PasswordConfirmation)
}

// Submit validates and pushes the change. A mismatch or complexity
// failure is keyed to its field and never reaches the network. On success
// the fields are cleared; on failure they are kept for retry.
func (f *PasswordChangeForm) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmitInFlight
	}
	if errs := validation.Struct(f.draft); !errs.Valid() {
		f.fieldErrors = errs
		f.mu.Unlock()
		return ErrValidationFailed
	}
	f.submitting = true
	f.fieldErrors = validation.Errors{}
	draft := f.draft
	f.mu.Unlock()

	err := f.client.ChangePassword(ctx, draft)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false
	if err != nil {
		var valErr *api.ServerValidationError
		if errors.As(err, &valErr) {
			f.fieldErrors.Merge(valErr.Fields)
		}
		f.feedback = models.ErrorFeedback(api.FeedbackMessage(err))
		return err
	}
	f.draft = models.PasswordChange{}
	f.feedback = models.SuccessFeedback("Password updated.")
	return nil
}

func (f *PasswordChangeForm) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

func (f *PasswordChangeForm) Feedback() models.OperationFeedback {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.feedback
}

func (f *PasswordChangeForm) FieldErrors() validation.Errors {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(validation.Errors, len(f.fieldErrors))
	for k, v := range f.fieldErrors {
		out[k] = v
	}
	return out
}

// FirstInvalid returns the field to focus after a failed submit.
func (f *PasswordChangeForm) FirstInvalid() (string, string) {
	return f.FieldErrors().First(PasswordFieldOrder...)
}
