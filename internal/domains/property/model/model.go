package model

import "sort"

const (
	EntityName = "property"
)

// Property is the slice of the remote listing a booking widget needs:
// pricing inputs and the guest ceiling. The full listing (images, amenities,
// reviews) stays with the backend.
type Property struct {
	ID                string  `json:"id"`
	Title             string  `json:"title"`
	PricePerNight     float64 `json:"pricePerNight"`
	CleaningFee       float64 `json:"cleaningFee"`
	ServiceFeePercent float64 `json:"serviceFeePercent"`
	MaxGuests         int     `json:"maxGuests"`
}

// BlockedDates is the set of calendar days excluded from selection, keyed by
// YYYY-MM-DD. It covers every confirmed booking; dates before today are
// excluded separately by the widget.
type BlockedDates map[string]struct{}

func NewBlockedDates(dates []string) BlockedDates {
	blocked := make(BlockedDates, len(dates))
	for _, d := range dates {
		blocked[d] = struct{}{}
	}

	return blocked
}

func (b BlockedDates) Contains(day string) bool {
	_, ok := b[day]

	return ok
}

// Sorted lists the blocked days in calendar order. ISO dates sort
// lexicographically.
func (b BlockedDates) Sorted() []string {
	out := make([]string, 0, len(b))
	for d := range b {
		out = append(out, d)
	}

	sort.Strings(out)

	return out
}
