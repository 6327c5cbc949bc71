package types

import "strings"

// LockerSearchParams are the normalized inputs of a locker search against
// the external listing site. Field names mirror the client-side form.
type LockerSearchParams struct {
	Location      string `json:"location"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	StartTimeHour string `json:"startTimeHour"`
	StartTimeMin  string `json:"startTimeMin"`
	EndTimeHour   string `json:"endTimeHour"`
	EndTimeMin    string `json:"endTimeMin"`
	BagSize       string `json:"bagSize"`
	SuitcaseSize  string `json:"suitcaseSize"`
}

// Normalized returns a copy with defaults applied: the end date falls back
// to the start date and size classes fall back to "0".
func (p LockerSearchParams) Normalized() LockerSearchParams {
	if p.EndDate == "" {
		p.EndDate = p.StartDate
	}
	if p.BagSize == "" {
		p.BagSize = "0"
	}
	if p.SuitcaseSize == "" {
		p.SuitcaseSize = "0"
	}
	return p
}

// Fingerprint derives the deterministic cache key for one result page:
// an ordered underscore-join of the normalized fields plus the page
// number. Equal searches always map to the same key.
func (p LockerSearchParams) Fingerprint(page string) string {
	n := p.Normalized()
	parts := []string{
		n.Location,
		n.StartDate,
		n.EndDate,
		n.StartTimeHour + ":" + n.StartTimeMin,
		n.EndTimeHour + ":" + n.EndTimeMin,
		n.BagSize,
		n.SuitcaseSize,
		page,
	}
	return strings.Join(parts, "_")
}

// Locker is one structured record extracted from the listing page.
// Optional fields degrade to sentinel placeholders instead of failing the
// whole record.
type Locker struct {
	Name          string `json:"name"`
	Category      string `json:"category"`
	Rating        string `json:"rating"`
	SuitcasePrice string `json:"suitcase_price"`
	BagPrice      string `json:"bag_price"`
	ImageURL      string `json:"image_url"`
	Link          string `json:"link"`
}

// Pagination describes the slice of the full result set a response holds.
type Pagination struct {
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
	TotalItems  int `json:"total_items"`
	PerPage     int `json:"per_page"`
}

// LockerSearchResult is one parsed result page, the unit stored in the
// search cache.
type LockerSearchResult struct {
	Results    []Locker   `json:"results"`
	Pagination Pagination `json:"pagination"`
}
