package widget

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/alexfurtado22/djangobnb/infras/rentalapi"
	bookingModel "github.com/alexfurtado22/djangobnb/internal/domains/booking/model"
	propertyModel "github.com/alexfurtado22/djangobnb/internal/domains/property/model"
	"github.com/alexfurtado22/djangobnb/shared/constant"
	"github.com/alexfurtado22/djangobnb/shared/failure"
	"github.com/alexfurtado22/djangobnb/shared/timezone"

	"github.com/rs/zerolog/log"
)

var ErrSubmissionInFlight = failure.Conflict("a reservation is already in flight")

// AvailabilityChecker asks the backend whether a range is bookable.
type AvailabilityChecker interface {
	CheckAvailability(ctx context.Context, propertyID string, start, end time.Time) (rentalapi.AvailabilityStatus, error)
}

// BookingCreator submits a reservation to the backend.
type BookingCreator interface {
	CreateBooking(ctx context.Context, token string, req rentalapi.CreateBookingRequest) (bookingModel.Booking, error)
}

// AuthStatus is the identity state injected into a widget. While IsLoading
// the widget refuses to decide submit-eligibility, so the surrounding UI can
// hold a neutral placeholder instead of flashing a log-in prompt.
type AuthStatus struct {
	IsAuthenticated bool `json:"isAuthenticated"`
	IsLoading       bool `json:"isLoading"`
}

// View is the render-ready snapshot a widget exposes.
type View struct {
	Property          propertyModel.Property           `json:"property"`
	Range             bookingModel.DateRange           `json:"range"`
	Guests            int                              `json:"guests"`
	Pricing           bookingModel.PricingBreakdown    `json:"pricing"`
	AvailabilityState string                           `json:"availabilityState"`
	Availability      *bookingModel.AvailabilityResult `json:"availability,omitempty"`
	Submission        bookingModel.SubmissionState     `json:"submission"`
	CanSubmit         bool                             `json:"canSubmit"`
	Auth              AuthStatus                       `json:"auth"`
	BlockedDates      []string                         `json:"blockedDates"`
}

// Controller owns the state of one booking widget: the selected range, the
// guest count, the derived price, the latest availability answer, and the
// in-flight submission. The backend stays authoritative; the controller's
// job is keeping the local picture consistent with it, including dropping
// availability responses that arrive for a range the user has moved past.
type Controller struct {
	mu sync.Mutex

	property propertyModel.Property
	blocked  propertyModel.BlockedDates

	checker AvailabilityChecker
	booker  BookingCreator

	auth       AuthStatus
	rng        bookingModel.DateRange
	guests     int
	state      bookingModel.AvailabilityState
	resolved   *bookingModel.AvailabilityResult
	submitting bool
	submission bookingModel.SubmissionState

	// checkSeq invalidates in-flight availability checks: every selection
	// change bumps it, and a response only lands if its captured sequence
	// still matches.
	checkSeq uint64
}

func New(property propertyModel.Property, blocked propertyModel.BlockedDates, checker AvailabilityChecker, booker BookingCreator) *Controller {
	return &Controller{
		property: property,
		blocked:  blocked,
		checker:  checker,
		booker:   booker,
		guests:   1,
		state:    bookingModel.AvailabilityIdle,
		auth:     AuthStatus{IsLoading: true},
	}
}

// SetAuthStatus replaces the injected identity state.
func (c *Controller) SetAuthStatus(status AuthStatus) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.auth = status
}

// SetBlockedDates replaces the blocked-date set, typically after a booking
// in this session confirmed and the calendar needs to reflect it.
func (c *Controller) SetBlockedDates(dates []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.blocked = propertyModel.NewBlockedDates(dates)
}

// SelectRange reacts to a calendar change. An incomplete range (either end
// missing, or checkout not after check-in) drops the widget back to idle. A
// complete range invalidates whatever availability answer was showing and
// starts a fresh check; ranges touching blocked or past days resolve
// unavailable locally without a round trip.
func (c *Controller) SelectRange(ctx context.Context, from, to *time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.rng = bookingModel.DateRange{From: from, To: to}
	c.resolved = nil
	c.checkSeq++

	if !c.rng.Complete() {
		c.state = bookingModel.AvailabilityIdle

		return
	}

	if c.overlapsBlocked(*from, *to) {
		c.state = bookingModel.AvailabilityResolved
		c.resolved = &bookingModel.AvailabilityResult{
			IsAvailable: false,
			Message:     bookingModel.MessageDatesUnavailable,
			ForRange:    c.rng,
		}

		return
	}

	c.state = bookingModel.AvailabilityChecking

	seq := c.checkSeq
	rng := c.rng
	start, end := *from, *to

	go c.check(ctx, seq, rng, start, end)
}

func (c *Controller) check(ctx context.Context, seq uint64, rng bookingModel.DateRange, start, end time.Time) {
	status, err := c.checker.CheckAvailability(ctx, c.property.ID, start, end)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.checkSeq {
		// A newer selection superseded this request; its answer is stale.
		return
	}

	c.state = bookingModel.AvailabilityResolved

	if err != nil {
		log.Error().Err(err).Str("property_id", c.property.ID).Msg("availability check failed")

		c.resolved = &bookingModel.AvailabilityResult{
			IsAvailable: false,
			Message:     bookingModel.MessageServerError,
			ForRange:    rng,
		}

		return
	}

	c.resolved = &bookingModel.AvailabilityResult{
		IsAvailable: status.IsAvailable,
		Message:     status.Message,
		ForRange:    rng,
	}
}

// SetGuests sets the guest count exactly; out-of-bounds values are rejected.
func (c *Controller) SetGuests(guests int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if guests < 1 || guests > c.property.MaxGuests {
		return failure.BadRequestFromString("number of guests must be between 1 and " + strconv.Itoa(c.property.MaxGuests)) //nolint:wrapcheck
	}

	c.guests = guests

	return nil
}

// IncrementGuests steps the guest count up, clamped to the property maximum.
func (c *Controller) IncrementGuests() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.guests = min(c.property.MaxGuests, c.guests+1)
}

// DecrementGuests steps the guest count down, clamped to one.
func (c *Controller) DecrementGuests() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.guests = max(1, c.guests-1)
}

// CanSubmit reports whether a reservation attempt would be accepted right
// now: complete range with nights, guests in bounds, availability resolved
// positive for the current range, identity resolved and authenticated, and
// no submission already in flight.
func (c *Controller) CanSubmit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.canSubmitLocked()
}

func (c *Controller) canSubmitLocked() bool {
	if c.auth.IsLoading || !c.auth.IsAuthenticated {
		return false
	}

	if !c.rng.Complete() || c.rng.Nights() <= 0 {
		return false
	}

	if c.guests < 1 || c.guests > c.property.MaxGuests {
		return false
	}

	if c.state != bookingModel.AvailabilityResolved || c.resolved == nil || !c.resolved.IsAvailable {
		return false
	}

	if !c.resolved.ForRange.Equal(c.rng) {
		return false
	}

	return !c.submitting
}

// Submit sends the reservation. Gate failures come back as errors and never
// reach the network; once the gate passes, every backend outcome (created,
// rejected with field errors, transport failure) is folded into the returned
// submission state instead of being thrown.
func (c *Controller) Submit(ctx context.Context, token string) (bookingModel.SubmissionState, *bookingModel.Booking, error) {
	c.mu.Lock()

	if c.submitting {
		state := c.submission
		c.mu.Unlock()

		return state, nil, ErrSubmissionInFlight
	}

	if c.auth.IsLoading || !c.auth.IsAuthenticated {
		c.mu.Unlock()

		return bookingModel.SubmissionState{}, nil, failure.Unauthorized("log in to reserve") //nolint:wrapcheck
	}

	if !c.canSubmitLocked() {
		c.mu.Unlock()

		return bookingModel.SubmissionState{}, nil, failure.BadRequestFromString("booking is not ready to submit") //nolint:wrapcheck
	}

	req := rentalapi.CreateBookingRequest{
		PropertyID:     c.property.ID,
		StartDate:      c.rng.From.Format(constant.DateFormat),
		EndDate:        c.rng.To.Format(constant.DateFormat),
		NumberOfGuests: strconv.Itoa(c.guests),
	}

	c.submitting = true
	c.submission = bookingModel.SubmissionState{IsSubmitting: true}
	c.mu.Unlock()

	booking, err := c.booker.CreateBooking(ctx, token, req)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.submitting = false
	c.submission = submissionOutcome(booking, err)

	if c.submission.Failed() {
		return c.submission, nil, nil
	}

	created := booking

	return c.submission, &created, nil
}

func submissionOutcome(booking bookingModel.Booking, err error) bookingModel.SubmissionState {
	if err == nil {
		return bookingModel.SubmissionState{SuccessMessage: bookingModel.MessageBookingSuccess}
	}

	if fields, ok := failure.FieldErrors(err); ok {
		state := bookingModel.SubmissionState{FieldErrors: map[string][]string{}}

		for key, msgs := range fields {
			if key == failure.FieldGeneral {
				state.GeneralErrors = append(state.GeneralErrors, msgs...)

				continue
			}

			state.FieldErrors[key] = msgs
		}

		if len(state.FieldErrors) == 0 {
			state.FieldErrors = nil
		}

		return state
	}

	log.Error().Err(err).Msg("booking submission failed")

	return bookingModel.SubmissionState{
		GeneralErrors: []string{bookingModel.MessageUnexpectedError},
	}
}

// View returns a render-ready snapshot of the widget.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	return View{
		Property:          c.property,
		Range:             c.rng,
		Guests:            c.guests,
		Pricing:           ComputePricing(c.rng, c.property),
		AvailabilityState: c.state.String(),
		Availability:      c.resolved,
		Submission:        c.submission,
		CanSubmit:         c.canSubmitLocked(),
		Auth:              c.auth,
		BlockedDates:      c.blocked.Sorted(),
	}
}

// overlapsBlocked walks the nights of a stay (checkout day excluded) and
// reports whether any is blocked or already in the past.
func (c *Controller) overlapsBlocked(from, to time.Time) bool {
	today := timezone.Today().Format(constant.DateFormat)

	// ISO dates compare lexicographically, which sidesteps location mismatches
	// between the calendar's dates and the app clock.
	if from.Format(constant.DateFormat) < today {
		return true
	}

	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		if c.blocked.Contains(d.Format(constant.DateFormat)) {
			return true
		}
	}

	return false
}
