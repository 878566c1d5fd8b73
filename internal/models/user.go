package models

import "time"

// User is the denormalized copy of the authenticated account that the
// session store persists alongside the auth token.
type User struct {
	ID            int64             `json:"id"`
	Role          RoleType          `json:"role"`
	FirstName     string            `json:"first_name"`
	LastName      string            `json:"last_name"`
	Email         string            `json:"email"`
	AccountStatus AccountStatusType `json:"account_status"`
	CreatedAt     time.Time         `json:"created_at"`
}

// TenantProfile is the editable tenant settings resource.
type TenantProfile struct {
	ID         int64  `json:"id"`
	FirstName  string `json:"first_name" validate:"required,person_name"`
	LastName   string `json:"last_name" validate:"required,person_name"`
	Email      string `json:"email" validate:"required,email_addr"`
	Phone      string `json:"phone" validate:"omitempty,ph_mobile"`
	Bio        string `json:"bio"`
	Avatar     *Asset `json:"avatar,omitempty"`
	Occupation string `json:"occupation"`
}

// Clone returns a deep copy; the avatar asset is the only pointer field.
func (p TenantProfile) Clone() TenantProfile {
	out := p
	if p.Avatar != nil {
		a := *p.Avatar
		out.Avatar = &a
	}
	return out
}

// PasswordChange is the change-password submission. It is one-shot rather
// than baseline/draft: there is no server truth to revert to.
type PasswordChange struct {
	CurrentPassword      string `json:"current_password" validate:"required"`
	Password             string `json:"password" validate:"required,password_complex"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

// NotificationSettings is the tenant notification toggle set.
type NotificationSettings struct {
	EmailBookingUpdates bool `json:"email_booking_updates"`
	EmailMessages       bool `json:"email_messages"`
	EmailPromotions     bool `json:"email_promotions"`
	SMSBookingUpdates   bool `json:"sms_booking_updates"`
	SMSMessages         bool `json:"sms_messages"`
}

func (n NotificationSettings) Clone() NotificationSettings { return n }
