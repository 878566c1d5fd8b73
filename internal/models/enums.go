package models

import "fmt"

type RoleType string

const (
	RoleTenant    RoleType = "tenant"
	RoleLandlord  RoleType = "landlord"
	RoleCaretaker RoleType = "caretaker"
	RoleAdmin     RoleType = "admin"
)

// ParseRole converts the backend's role strings to the enum.
func ParseRole(s string) (RoleType, error) {
	switch RoleType(s) {
	case RoleTenant, RoleLandlord, RoleCaretaker, RoleAdmin:
		return RoleType(s), nil
	default:
		return "", fmt.Errorf("invalid role: %q", s)
	}
}

type AccountStatusType string

const (
	AccountStatusPending AccountStatusType = "pending"
	AccountStatusActive  AccountStatusType = "active"
	AccountStatusBlocked AccountStatusType = "blocked"
)

type PropertyStatusType string

const (
	PropertyStatusPending  PropertyStatusType = "pending"
	PropertyStatusApproved PropertyStatusType = "approved"
	PropertyStatusRejected PropertyStatusType = "rejected"
)

type VerificationStatusType string

const (
	VerificationPending  VerificationStatusType = "pending"
	VerificationVerified VerificationStatusType = "verified"
	VerificationRejected VerificationStatusType = "rejected"
)

// FieldStatus is the incremental (as-you-type) state of a single input.
// It drives live hints only; it never blocks typing.
type FieldStatus int

const (
	FieldNeutral FieldStatus = iota
	FieldValid
	FieldInvalid
)

func (f FieldStatus) String() string {
	switch f {
	case FieldValid:
		return "valid"
	case FieldInvalid:
		return "invalid"
	default:
		return "neutral"
	}
}
