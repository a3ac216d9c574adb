package model

import (
	"math"
	"time"
)

const (
	EntityName = "booking"
)

// User-facing messages, kept identical to what the web front end shows.
const (
	MessageBookingSuccess   = "Booking successful!"
	MessageServerError      = "Error connecting to the server."
	MessageBookingRejected  = "Failed to create booking. Please try again."
	MessageUnexpectedError  = "Something went wrong. Please try later."
	MessageDatesUnavailable = "These dates are not available."
)

// DateRange is a check-in/check-out pair. A range with only From set, or
// with To not after From, is incomplete and prices to zero nights.
type DateRange struct {
	From *time.Time `json:"from"`
	To   *time.Time `json:"to"`
}

// Complete reports whether both ends are set and the range spans at least one night.
func (r DateRange) Complete() bool {
	return r.From != nil && r.To != nil && r.To.After(*r.From)
}

// Nights returns the number of nights the range spans, never negative.
func (r DateRange) Nights() int {
	if r.From == nil || r.To == nil {
		return 0
	}

	return max(0, DaysBetween(*r.From, *r.To))
}

// Equal compares two ranges by calendar day on both ends.
func (r DateRange) Equal(other DateRange) bool {
	return sameDay(r.From, other.From) && sameDay(r.To, other.To)
}

func sameDay(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}

	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	return ay == by && am == bm && ad == bd
}

// DaysBetween counts whole calendar days from one date to another, rounding
// across DST transitions. Same day yields zero.
func DaysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, to.Location())

	return int(math.Round(t.Sub(f).Hours() / 24))
}

// PricingBreakdown is the locally derived price shown next to the calendar.
// It is display-only; the backend recomputes the authoritative total.
type PricingBreakdown struct {
	Nights      int     `json:"nights"`
	BasePrice   float64 `json:"basePrice"`
	CleaningFee float64 `json:"cleaningFee"`
	ServiceFee  float64 `json:"serviceFee"`
	Total       float64 `json:"total"`
}

// AvailabilityState tracks the reconciliation machine of one widget.
type AvailabilityState int

const (
	AvailabilityIdle AvailabilityState = iota + 1
	AvailabilityChecking
	AvailabilityResolved
)

func (s AvailabilityState) String() string {
	switch s {
	case AvailabilityIdle:
		return "idle"
	case AvailabilityChecking:
		return "checking"
	case AvailabilityResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// AvailabilityResult is a resolved availability answer, tagged with the range
// it was computed for so late responses can be checked for staleness.
type AvailabilityResult struct {
	IsAvailable bool      `json:"isAvailable"`
	Message     string    `json:"message"`
	ForRange    DateRange `json:"forRange"`
}

// SubmissionState carries the outcome of the latest booking attempt. After a
// submission resolves, exactly one of SuccessMessage or the error buckets is
// populated, never both.
type SubmissionState struct {
	FieldErrors    map[string][]string `json:"fieldErrors,omitempty"`
	GeneralErrors  []string            `json:"generalErrors,omitempty"`
	SuccessMessage string              `json:"successMessage,omitempty"`
	IsSubmitting   bool                `json:"isSubmitting"`
}

// Failed reports whether the submission resolved with errors.
func (s SubmissionState) Failed() bool {
	return len(s.FieldErrors) > 0 || len(s.GeneralErrors) > 0
}

// Booking is the record the backend returns for a created reservation.
type Booking struct {
	ID            string `json:"id"`
	PropertyTitle string `json:"property_title"`
	Guest         string `json:"guest"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	TotalPrice    string `json:"total_price"`
}
