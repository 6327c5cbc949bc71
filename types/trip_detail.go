package types

import "time"

// TripDetail is a single scheduled activity within a trip. Its date must
// lie within the parent trip's [start_date, end_date] window, inclusive.
// Times are clock strings in HH:MM form.
type TripDetail struct {
	ID        int64     `json:"detail_id"`
	TripID    int64     `json:"trip_id"`
	Location  string    `json:"location"`
	Date      time.Time `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
}

// TripDetailUpdate carries the mutable fields of a trip detail. Like trip
// updates, it overwrites the whole record.
type TripDetailUpdate struct {
	Location  string    `json:"location"`
	Date      time.Time `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
}
