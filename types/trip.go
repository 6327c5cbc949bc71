package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trip is a user-owned itinerary bounded by a start and end date.
// Tags, Budget and PreferredGender are stored and returned verbatim; no
// matching or filtering semantics are attached to them.
type Trip struct {
	ID              int64               `json:"trip_id"`
	LineUserID      string              `json:"line_user_id"`
	Title           string              `json:"title"`
	Description     string              `json:"description"`
	StartDate       time.Time           `json:"start_date"`
	EndDate         time.Time           `json:"end_date"`
	Area            string              `json:"area"`
	Tags            string              `json:"tags"`
	Budget          decimal.NullDecimal `json:"budget"`
	PreferredGender string              `json:"preferred_gender"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// TripUpdate carries the full mutable field set of a trip. Updates are
// whole-record overwrites: a zero field overwrites the stored value with
// null/default, so callers must resend the entire record.
type TripUpdate struct {
	Title           string              `json:"title"`
	Description     string              `json:"description"`
	StartDate       time.Time           `json:"start_date"`
	EndDate         time.Time           `json:"end_date"`
	Area            string              `json:"area"`
	Tags            string              `json:"tags"`
	Budget          decimal.NullDecimal `json:"budget"`
	PreferredGender string              `json:"preferred_gender"`
}

// TripShare records that a trip is shared with an additional user.
// Re-sharing the same pair advances SharedAt instead of duplicating rows.
type TripShare struct {
	TripID       int64     `json:"trip_id"`
	SharedUserID string    `json:"shared_user_id"`
	SharedAt     time.Time `json:"shared_at"`
}
