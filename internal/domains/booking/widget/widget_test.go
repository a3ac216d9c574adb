package widget_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alexfurtado22/djangobnb/infras/rentalapi"
	apiMocks "github.com/alexfurtado22/djangobnb/infras/rentalapi/mocks"
	bookingModel "github.com/alexfurtado22/djangobnb/internal/domains/booking/model"
	"github.com/alexfurtado22/djangobnb/internal/domains/booking/widget"
	propertyModel "github.com/alexfurtado22/djangobnb/internal/domains/property/model"
	"github.com/alexfurtado22/djangobnb/shared/failure"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func authenticated() widget.AuthStatus {
	return widget.AuthStatus{IsAuthenticated: true, IsLoading: false}
}

func newController(t *testing.T) (*widget.Controller, *apiMocks.MockRentalAPI) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	api := apiMocks.NewMockRentalAPI(ctrl)
	c := widget.New(testProperty(), propertyModel.BlockedDates{}, api, api)
	c.SetAuthStatus(authenticated())

	return c, api
}

func waitResolved(t *testing.T, c *widget.Controller) widget.View {
	t.Helper()

	assert.Eventually(t, func() bool {
		return c.View().AvailabilityState == "resolved"
	}, time.Second, 5*time.Millisecond)

	return c.View()
}

func TestController_RangeLifecycle(t *testing.T) {
	c, api := newController(t)

	view := c.View()
	assert.Equal(t, "idle", view.AvailabilityState)
	assert.False(t, view.CanSubmit)

	api.EXPECT().
		CheckAvailability(gomock.Any(), "42", gomock.Any(), gomock.Any()).
		Return(rentalapi.AvailabilityStatus{IsAvailable: true, Message: "Dates are available!"}, nil)

	c.SelectRange(context.Background(), date("2030-06-01"), date("2030-06-03"))

	view = waitResolved(t, c)
	assert.True(t, view.Availability.IsAvailable)
	assert.True(t, view.CanSubmit)
	assert.Equal(t, 2, view.Pricing.Nights)

	// Dropping the checkout date makes the range incomplete again.
	c.SelectRange(context.Background(), date("2030-06-01"), nil)

	view = c.View()
	assert.Equal(t, "idle", view.AvailabilityState)
	assert.Nil(t, view.Availability)
	assert.False(t, view.CanSubmit)
	assert.Equal(t, 0, view.Pricing.Nights)
}

func TestController_StaleResponseDiscarded(t *testing.T) {
	c, api := newController(t)

	juneStart, juneEnd := date("2030-06-01"), date("2030-06-03")
	julyStart, julyEnd := date("2030-07-01"), date("2030-07-03")

	var wg sync.WaitGroup
	wg.Add(1)

	// June answers slowly and negatively; July answers fast and positively.
	api.EXPECT().
		CheckAvailability(gomock.Any(), "42", *juneStart, *juneEnd).
		DoAndReturn(func(context.Context, string, time.Time, time.Time) (rentalapi.AvailabilityStatus, error) {
			defer wg.Done()
			time.Sleep(150 * time.Millisecond)

			return rentalapi.AvailabilityStatus{IsAvailable: false, Message: "These dates are not available."}, nil
		})

	api.EXPECT().
		CheckAvailability(gomock.Any(), "42", *julyStart, *julyEnd).
		Return(rentalapi.AvailabilityStatus{IsAvailable: true, Message: "Dates are available!"}, nil)

	c.SelectRange(context.Background(), juneStart, juneEnd)
	c.SelectRange(context.Background(), julyStart, julyEnd)

	view := waitResolved(t, c)
	assert.True(t, view.Availability.IsAvailable)

	// Even after June's late answer lands, the widget keeps July's result.
	wg.Wait()
	time.Sleep(10 * time.Millisecond)

	view = c.View()
	assert.True(t, view.Availability.IsAvailable)
	assert.Equal(t, "Dates are available!", view.Availability.Message)
	assert.True(t, view.Availability.ForRange.Equal(bookingModel.DateRange{From: julyStart, To: julyEnd}))
}

func TestController_CheckFailureFailsClosed(t *testing.T) {
	c, api := newController(t)

	api.EXPECT().
		CheckAvailability(gomock.Any(), "42", gomock.Any(), gomock.Any()).
		Return(rentalapi.AvailabilityStatus{}, errors.New("connection refused"))

	c.SelectRange(context.Background(), date("2030-06-01"), date("2030-06-03"))

	view := waitResolved(t, c)
	assert.False(t, view.Availability.IsAvailable)
	assert.Equal(t, bookingModel.MessageServerError, view.Availability.Message)
	assert.False(t, view.CanSubmit)
}

func TestController_BlockedDatesResolveLocally(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := apiMocks.NewMockRentalAPI(ctrl)

	// No CheckAvailability expectation: a blocked range must not hit the network.
	blocked := propertyModel.NewBlockedDates([]string{"2030-06-02"})
	c := widget.New(testProperty(), blocked, api, api)
	c.SetAuthStatus(authenticated())

	c.SelectRange(context.Background(), date("2030-06-01"), date("2030-06-03"))

	view := c.View()
	assert.Equal(t, "resolved", view.AvailabilityState)
	assert.False(t, view.Availability.IsAvailable)
	assert.Equal(t, bookingModel.MessageDatesUnavailable, view.Availability.Message)

	// The checkout day itself is not a blocked night.
	api.EXPECT().
		CheckAvailability(gomock.Any(), "42", gomock.Any(), gomock.Any()).
		Return(rentalapi.AvailabilityStatus{IsAvailable: true, Message: "Dates are available!"}, nil)

	c.SelectRange(context.Background(), date("2030-05-30"), date("2030-06-02"))
	waitResolved(t, c)
}

func TestController_PastDatesResolveLocally(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := apiMocks.NewMockRentalAPI(ctrl)
	c := widget.New(testProperty(), propertyModel.BlockedDates{}, api, api)
	c.SetAuthStatus(authenticated())

	c.SelectRange(context.Background(), date("2020-06-01"), date("2020-06-03"))

	view := c.View()
	assert.Equal(t, "resolved", view.AvailabilityState)
	assert.False(t, view.Availability.IsAvailable)
}

func TestController_GuestClamping(t *testing.T) {
	c, _ := newController(t)

	assert.Error(t, c.SetGuests(0))
	assert.Error(t, c.SetGuests(5))
	assert.NoError(t, c.SetGuests(4))

	c.IncrementGuests()
	assert.Equal(t, 4, c.View().Guests)

	assert.NoError(t, c.SetGuests(1))
	c.DecrementGuests()
	assert.Equal(t, 1, c.View().Guests)
}

func TestController_SubmitGating(t *testing.T) {
	tests := []struct {
		name  string
		setup func(c *widget.Controller, api *apiMocks.MockRentalAPI)
	}{
		{
			name:  "no range selected",
			setup: func(c *widget.Controller, api *apiMocks.MockRentalAPI) {},
		},
		{
			name: "availability unresolved",
			setup: func(c *widget.Controller, api *apiMocks.MockRentalAPI) {
				api.EXPECT().
					CheckAvailability(gomock.Any(), "42", gomock.Any(), gomock.Any()).
					DoAndReturn(func(context.Context, string, time.Time, time.Time) (rentalapi.AvailabilityStatus, error) {
						time.Sleep(time.Second)

						return rentalapi.AvailabilityStatus{IsAvailable: true}, nil
					}).
					AnyTimes()

				c.SelectRange(context.Background(), date("2030-06-01"), date("2030-06-03"))
			},
		},
		{
			name: "availability negative",
			setup: func(c *widget.Controller, api *apiMocks.MockRentalAPI) {
				api.EXPECT().
					CheckAvailability(gomock.Any(), "42", gomock.Any(), gomock.Any()).
					Return(rentalapi.AvailabilityStatus{IsAvailable: false, Message: "These dates are not available."}, nil)

				c.SelectRange(context.Background(), date("2030-06-01"), date("2030-06-03"))

				assert.Eventually(t, func() bool {
					return c.View().AvailabilityState == "resolved"
				}, time.Second, 5*time.Millisecond)
			},
		},
		{
			name: "identity still loading",
			setup: func(c *widget.Controller, api *apiMocks.MockRentalAPI) {
				api.EXPECT().
					CheckAvailability(gomock.Any(), "42", gomock.Any(), gomock.Any()).
					Return(rentalapi.AvailabilityStatus{IsAvailable: true, Message: "Dates are available!"}, nil)

				c.SelectRange(context.Background(), date("2030-06-01"), date("2030-06-03"))

				assert.Eventually(t, func() bool {
					return c.View().AvailabilityState == "resolved"
				}, time.Second, 5*time.Millisecond)

				c.SetAuthStatus(widget.AuthStatus{IsAuthenticated: false, IsLoading: true})
			},
		},
		{
			name: "not authenticated",
			setup: func(c *widget.Controller, api *apiMocks.MockRentalAPI) {
				api.EXPECT().
					CheckAvailability(gomock.Any(), "42", gomock.Any(), gomock.Any()).
					Return(rentalapi.AvailabilityStatus{IsAvailable: true, Message: "Dates are available!"}, nil)

				c.SelectRange(context.Background(), date("2030-06-01"), date("2030-06-03"))

				assert.Eventually(t, func() bool {
					return c.View().AvailabilityState == "resolved"
				}, time.Second, 5*time.Millisecond)

				c.SetAuthStatus(widget.AuthStatus{IsAuthenticated: false, IsLoading: false})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, api := newController(t)
			tt.setup(c, api)

			assert.False(t, c.CanSubmit())

			_, _, err := c.Submit(context.Background(), "token")
			assert.Error(t, err)
		})
	}
}

func readyController(t *testing.T) (*widget.Controller, *apiMocks.MockRentalAPI) {
	t.Helper()

	c, api := newController(t)

	api.EXPECT().
		CheckAvailability(gomock.Any(), "42", gomock.Any(), gomock.Any()).
		Return(rentalapi.AvailabilityStatus{IsAvailable: true, Message: "Dates are available!"}, nil)

	c.SelectRange(context.Background(), date("2030-06-01"), date("2030-06-03"))
	waitResolved(t, c)

	return c, api
}

func TestController_SubmitSuccess(t *testing.T) {
	c, api := readyController(t)

	api.EXPECT().
		CreateBooking(gomock.Any(), "token", rentalapi.CreateBookingRequest{
			PropertyID:     "42",
			StartDate:      "2030-06-01",
			EndDate:        "2030-06-03",
			NumberOfGuests: "1",
		}).
		Return(bookingModel.Booking{ID: "7", StartDate: "2030-06-01", EndDate: "2030-06-03"}, nil)

	state, booking, err := c.Submit(context.Background(), "token")

	assert.NoError(t, err)
	assert.Equal(t, bookingModel.MessageBookingSuccess, state.SuccessMessage)
	assert.False(t, state.Failed())
	assert.False(t, state.IsSubmitting)
	assert.Equal(t, "7", booking.ID)

	// The selected range stays put; clearing it is the caller's decision.
	assert.Equal(t, 2, c.View().Pricing.Nights)
}

func TestController_SubmitFieldErrors(t *testing.T) {
	c, api := readyController(t)

	api.EXPECT().
		CreateBooking(gomock.Any(), "token", gomock.Any()).
		Return(bookingModel.Booking{}, failure.ValidationFailure(map[string][]string{
			"startDate":          {"End date must be after start date."},
			failure.FieldGeneral: {"This property is already booked for the selected dates."},
		}))

	state, booking, err := c.Submit(context.Background(), "token")

	assert.NoError(t, err)
	assert.Nil(t, booking)
	assert.Empty(t, state.SuccessMessage)
	assert.Equal(t, []string{"End date must be after start date."}, state.FieldErrors["startDate"])
	assert.Equal(t, []string{"This property is already booked for the selected dates."}, state.GeneralErrors)
}

func TestController_SubmitTransportFailure(t *testing.T) {
	c, api := readyController(t)

	api.EXPECT().
		CreateBooking(gomock.Any(), "token", gomock.Any()).
		Return(bookingModel.Booking{}, errors.New("connection reset"))

	state, booking, err := c.Submit(context.Background(), "token")

	assert.NoError(t, err)
	assert.Nil(t, booking)
	assert.Empty(t, state.SuccessMessage)
	assert.Empty(t, state.FieldErrors)
	assert.Equal(t, []string{bookingModel.MessageUnexpectedError}, state.GeneralErrors)
}

func TestController_SubmitSerialized(t *testing.T) {
	c, api := readyController(t)

	release := make(chan struct{})

	// Exactly one network call, no matter how many submits race.
	api.EXPECT().
		CreateBooking(gomock.Any(), "token", gomock.Any()).
		DoAndReturn(func(context.Context, string, rentalapi.CreateBookingRequest) (bookingModel.Booking, error) {
			<-release

			return bookingModel.Booking{ID: "7"}, nil
		}).
		Times(1)

	firstDone := make(chan struct{})

	go func() {
		defer close(firstDone)

		_, _, err := c.Submit(context.Background(), "token")
		assert.NoError(t, err)
	}()

	assert.Eventually(t, func() bool {
		return c.View().Submission.IsSubmitting
	}, time.Second, 5*time.Millisecond)

	_, _, err := c.Submit(context.Background(), "token")
	assert.ErrorIs(t, err, widget.ErrSubmissionInFlight)

	close(release)
	<-firstDone

	assert.Equal(t, bookingModel.MessageBookingSuccess, c.View().Submission.SuccessMessage)
}
