package types

import "time"

// User is a LINE user profile, keyed by the opaque identifier the
// messaging platform assigns. Profiles are upserted on first contact and
// never deleted by the system.
type User struct {
	LineUserID  string    `json:"line_user_id"`
	DisplayName string    `json:"display_name"`
	PictureURL  string    `json:"picture_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
