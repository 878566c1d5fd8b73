package forms

import "errors"

var (
	ErrValidationFailed = errors.New("validation_failed")
	// ErrMinimumOneImage blocks removing a property's last image before
	// any state mutation or network call happens.
	ErrMinimumOneImage = errors.New("minimum_one_image")
	// ErrPrimaryNotUploaded blocks flagging a not-yet-uploaded image as
	// primary; the backend keys the primary flag by server-side id, which
	// a pending file does not have until after the save.
	ErrPrimaryNotUploaded = errors.New("primary_not_uploaded")
	ErrReasonTooShort     = errors.New("reason_too_short")
	ErrActionInFlight     = errors.New("action_in_flight")
)
