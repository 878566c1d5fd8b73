package models

import "time"

// Property is the landlord's editable property listing resource.
type Property struct {
	ID          int64              `json:"id"`
	LandlordID  int64              `json:"landlord_id"`
	Title       string             `json:"title" validate:"required"`
	Description string             `json:"description"`
	Address     string             `json:"address" validate:"required"`
	City        string             `json:"city" validate:"required"`
	MonthlyRate float64            `json:"monthly_rate" validate:"gt=0"`
	Status      PropertyStatusType `json:"status"`
	Images      []Asset            `json:"images" validate:"min=1"`
	Credentials []Asset            `json:"credentials"`
	CreatedAt   time.Time          `json:"created_at"`
}

func (p Property) Clone() Property {
	out := p
	out.Images = append([]Asset(nil), p.Images...)
	out.Credentials = append([]Asset(nil), p.Credentials...)
	return out
}

// PrimaryImage returns the image flagged primary, or nil.
func (p *Property) PrimaryImage() *Asset {
	for i := range p.Images {
		if p.Images[i].IsPrimary() {
			return &p.Images[i]
		}
	}
	return nil
}

// ImageOrderEntry is the wire shape of one element of the `image_order`
// field sent on property save.
type ImageOrderEntry struct {
	ID           int64 `json:"id"`
	DisplayOrder int   `json:"display_order"`
}

// LandlordVerification is an admin-reviewable landlord identity submission.
type LandlordVerification struct {
	ID          int64                  `json:"id"`
	LandlordID  int64                  `json:"landlord_id"`
	FullName    string                 `json:"full_name"`
	Status      VerificationStatusType `json:"status"`
	Documents   []Asset                `json:"documents"`
	SubmittedAt time.Time              `json:"submitted_at"`
	Reason      string                 `json:"reason,omitempty"`
}
