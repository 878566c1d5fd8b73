// Package editable implements the draft/baseline edit lifecycle shared by
// every settings screen: load the server copy, enter edit mode, mutate a
// draft, then save (promoting the draft to the new baseline) or cancel
// (reverting by refetch). One Resource instance backs one screen's form.
package editable

import (
	"context"
	"errors"
	"sync"

	"github.com/accommotrack/client-go/internal/api"
	"github.com/accommotrack/client-go/internal/models"
	"github.com/accommotrack/client-go/internal/utils"
	"github.com/accommotrack/client-go/internal/validation"
)

var (
	ErrNotEditing     = errors.New("not_editing")
	ErrAlreadyEditing = errors.New("already_editing")
	ErrSaveInFlight   = errors.New("save_in_flight")
	ErrValidation     = errors.New("validation_failed")
	ErrClosed         = errors.New("resource_closed")
	ErrNotLoaded      = errors.New("resource_not_loaded")
)

// Deletions are sub-resource removals staged during an edit session,
// keyed by kind (e.g. "images", "credentials"). They are sent alongside
// the draft at the next successful save and discarded on cancel.
type Deletions map[string][]int64

func (d Deletions) clone() Deletions {
	out := make(Deletions, len(d))
	for k, ids := range d {
		out[k] = append([]int64(nil), ids...)
	}
	return out
}

// Funcs parameterizes a Resource with its remote and validation behavior.
// Clone must produce a value-independent copy; Validate must be pure.
// Invalidate, when set, drops any client-side read caching in front of
// Fetch; the cancel revert runs it first so that refetch is always
// answered by the server.
type Funcs[T any] struct {
	Fetch      func(ctx context.Context) (T, error)
	Persist    func(ctx context.Context, draft T, staged Deletions) (T, error)
	Validate   func(draft T) validation.Errors
	Clone      func(T) T
	Invalidate func()
}

// Resource owns {baseline, draft, editMode, saving} for one remote
// resource. All methods are safe for use from UI callbacks and network
// completion callbacks interleaving on different goroutines.
type Resource[T any] struct {
	mu    sync.Mutex
	funcs Funcs[T]

	baseline T
	draft    T
	loaded   bool
	editMode bool
	saving   bool
	closed   bool

	staged      Deletions
	feedback    models.OperationFeedback
	fieldErrors validation.Errors
	loadErr     error

	fieldValidators map[string]func(draft T) string
}

func New[T any](funcs Funcs[T]) *Resource[T] {
	if funcs.Clone == nil {
		funcs.Clone = func(v T) T { return v }
	}
	if funcs.Validate == nil {
		funcs.Validate = func(T) validation.Errors { return validation.Errors{} }
	}
	return &Resource[T]{
		funcs:           funcs,
		staged:          Deletions{},
		feedback:        models.NoFeedback(),
		fieldErrors:     validation.Errors{},
		fieldValidators: map[string]func(T) string{},
	}
}

// BindFieldValidator attaches an incremental validator run on every
// mutation of field. It returns "" when the field is acceptable.
func (r *Resource[T]) BindFieldValidator(field string, fn func(draft T) string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fieldValidators[field] = fn
}

// Load fetches the authoritative copy. On success the baseline is
// replaced, and the draft too unless an edit is underway. A failed load
// leaves prior state untouched and records a load error distinct from
// save feedback.
func (r *Resource[T]) Load(ctx context.Context) error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return ErrClosed
	}
	r.mu.Unlock()

	fetched, err := r.funcs.Fetch(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		// The screen is gone; drop the late response.
		return nil
	}
	if err != nil {
		r.loadErr = err
		return err
	}
	r.loadErr = nil
	r.loaded = true
	r.baseline = r.funcs.Clone(fetched)
	if !r.editMode {
		r.draft = r.funcs.Clone(fetched)
	}
	return nil
}

// BeginEdit makes the draft mutable and clears stale feedback. The draft
// already equals the baseline at this point, so no copy is taken.
func (r *Resource[T]) BeginEdit() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch {
	case r.closed:
		return ErrClosed
	case !r.loaded:
		return ErrNotLoaded
	case r.editMode:
		return ErrAlreadyEditing
	}
	r.editMode = true
	r.feedback = models.NoFeedback()
	r.fieldErrors = validation.Errors{}
	return nil
}

// Mutate applies fn to the draft. field names the logical input being
// edited; any validator bound to it runs against the updated draft and
// its verdict replaces that field's incremental error.
func (r *Resource[T]) Mutate(field string, fn func(draft *T)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}
	if !r.editMode {
		return ErrNotEditing
	}
	fn(&r.draft)
	if fv, ok := r.fieldValidators[field]; ok {
		if msg := fv(r.draft); msg != "" {
			r.fieldErrors[field] = msg
		} else {
			delete(r.fieldErrors, field)
		}
	}
	return nil
}

// StageDeletion records a sub-resource removal to be sent with the next
// save. Callers enforce their own structural invariants (e.g. the
// minimum-one-image rule) before staging.
func (r *Resource[T]) StageDeletion(kind string, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.editMode {
		return ErrNotEditing
	}
	r.staged[kind] = append(r.staged[kind], id)
	return nil
}

func (r *Resource[T]) StagedDeletions(kind string) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int64(nil), r.staged[kind]...)
}

// CancelEdit leaves edit mode and reverts by refetching the server copy
// rather than restoring a local snapshot, so server-derived fields can
// never go stale. Staged deletions are discarded with the rest of the
// draft. If the refetch fails the draft still falls back to the last
// baseline and the failure is recorded as a load error.
func (r *Resource[T]) CancelEdit(ctx context.Context) error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return ErrClosed
	}
	if !r.editMode {
		r.mu.Unlock()
		return ErrNotEditing
	}
	r.editMode = false
	r.staged = Deletions{}
	r.fieldErrors = validation.Errors{}
	r.draft = r.funcs.Clone(r.baseline)
	r.mu.Unlock()

	if r.funcs.Invalidate != nil {
		r.funcs.Invalidate()
	}
	return r.Load(ctx)
}

// Save validates the draft, then pushes it. Client validation failures
// never reach the network. While a save is outstanding a second Save is
// rejected; the UI disables the control on Saving() anyway. On a failed
// push the draft and edit mode are preserved so the user can retry
// without re-entering anything.
func (r *Resource[T]) Save(ctx context.Context) error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return ErrClosed
	}
	if !r.editMode {
		r.mu.Unlock()
		return ErrNotEditing
	}
	if r.saving {
		r.mu.Unlock()
		return ErrSaveInFlight
	}
	if errs := r.funcs.Validate(r.draft); !errs.Valid() {
		r.fieldErrors = errs
		r.mu.Unlock()
		return ErrValidation
	}
	r.saving = true
	draft := r.funcs.Clone(r.draft)
	staged := r.staged.clone()
	r.mu.Unlock()

	saved, err := r.funcs.Persist(ctx, draft, staged)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.saving = false
	if r.closed {
		return nil
	}
	if err != nil {
		// Draft and edit mode survive so nothing typed is lost.
		var valErr *api.ServerValidationError
		if errors.As(err, &valErr) {
			r.fieldErrors.Merge(valErr.Fields)
		}
		r.feedback = models.ErrorFeedback(api.FeedbackMessage(err))
		utils.Logger.WithError(err).Warn("save failed")
		return err
	}
	r.baseline = r.funcs.Clone(saved)
	r.draft = r.funcs.Clone(saved)
	r.editMode = false
	r.staged = Deletions{}
	r.fieldErrors = validation.Errors{}
	r.feedback = models.SuccessFeedback("Changes saved.")
	return nil
}

// Close marks the owning screen as unmounted. In-flight requests are not
// cancelled; their late results are silently dropped.
func (r *Resource[T]) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
}

func (r *Resource[T]) Baseline() T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.funcs.Clone(r.baseline)
}

func (r *Resource[T]) Draft() T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.funcs.Clone(r.draft)
}

func (r *Resource[T]) EditMode() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.editMode
}

func (r *Resource[T]) Saving() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saving
}

func (r *Resource[T]) Loaded() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loaded
}

func (r *Resource[T]) LoadError() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadErr
}

func (r *Resource[T]) Feedback() models.OperationFeedback {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.feedback
}

// FieldErrors returns the current field-keyed blocking errors, a merge of
// incremental, submission and server-reported validation.
func (r *Resource[T]) FieldErrors() validation.Errors {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(validation.Errors, len(r.fieldErrors))
	for k, v := range r.fieldErrors {
		out[k] = v
	}
	return out
}
