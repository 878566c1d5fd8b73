package models

import "github.com/google/uuid"

// Asset is an uploadable image or document field. Exactly one of the two
// arms is populated: Existing for a server-side file already attached to
// the resource, Pending for a local file staged for upload at the next
// save. A zero Asset is invalid.
type Asset struct {
	Existing *ExistingAsset `json:"existing,omitempty"`
	Pending  *PendingAsset  `json:"pending,omitempty"`
}

// ExistingAsset mirrors a file the server already holds.
type ExistingAsset struct {
	ID           int64  `json:"id"`
	URL          string `json:"url"`
	DisplayOrder int    `json:"display_order"`
	Primary      bool   `json:"is_primary"`
}

// PendingAsset is a locally selected file not yet uploaded. LocalID keys
// it across reorders until the save response assigns a server id.
type PendingAsset struct {
	LocalID     uuid.UUID `json:"local_id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	Data        []byte    `json:"-"`
	PreviewURL  string    `json:"preview_url,omitempty"`
	Primary     bool      `json:"is_primary"`
}

// NewPendingAsset stages a local file for upload.
func NewPendingAsset(fileName, contentType string, data []byte) Asset {
	return Asset{Pending: &PendingAsset{
		LocalID:     uuid.New(),
		FileName:    fileName,
		ContentType: contentType,
		Data:        data,
	}}
}

// ExistingOf wraps a server-side file reference.
func ExistingOf(id int64, url string, order int, primary bool) Asset {
	return Asset{Existing: &ExistingAsset{ID: id, URL: url, DisplayOrder: order, Primary: primary}}
}

func (a Asset) IsExisting() bool { return a.Existing != nil }
func (a Asset) IsPending() bool  { return a.Pending != nil }

func (a Asset) IsPrimary() bool {
	switch {
	case a.Existing != nil:
		return a.Existing.Primary
	case a.Pending != nil:
		return a.Pending.Primary
	default:
		return false
	}
}

func (a *Asset) SetPrimary(primary bool) {
	switch {
	case a.Existing != nil:
		a.Existing.Primary = primary
	case a.Pending != nil:
		a.Pending.Primary = primary
	}
}
