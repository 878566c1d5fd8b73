package validation

import "github.com/accommotrack/client-go/internal/models"

// Live, non-blocking hints shown while the user types. These never gate
// input; the submission-time Struct pass is what blocks a save.

// MatchStatus is the "passwords match" indicator. Neutral until the
// confirmation field has content.
func MatchStatus(password, confirmation string) models.FieldStatus {
	if confirmation == "" {
		return models.FieldNeutral
	}
	if password == confirmation {
		return models.FieldValid
	}
	return models.FieldInvalid
}

// EmailFormatStatus is the local-format hint for the email field, separate
// from the remote availability check.
func EmailFormatStatus(email string) models.FieldStatus {
	if email == "" {
		return models.FieldNeutral
	}
	if IsEmail(email) {
		return models.FieldValid
	}
	return models.FieldInvalid
}
