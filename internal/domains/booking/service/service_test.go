package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/alexfurtado22/djangobnb/config"
	"github.com/alexfurtado22/djangobnb/infras/otel/mocks"
	"github.com/alexfurtado22/djangobnb/infras/rentalapi"
	apiMocks "github.com/alexfurtado22/djangobnb/infras/rentalapi/mocks"
	authMocks "github.com/alexfurtado22/djangobnb/internal/domains/auth/mocks"
	authDto "github.com/alexfurtado22/djangobnb/internal/domains/auth/model/dto"
	bookingModel "github.com/alexfurtado22/djangobnb/internal/domains/booking/model"
	"github.com/alexfurtado22/djangobnb/internal/domains/booking/model/dto"
	"github.com/alexfurtado22/djangobnb/internal/domains/booking/service"
	propertyMocks "github.com/alexfurtado22/djangobnb/internal/domains/property/mocks"
	propertyModel "github.com/alexfurtado22/djangobnb/internal/domains/property/model"
	"github.com/alexfurtado22/djangobnb/shared/failure"
)

type fixture struct {
	svc      service.Widget
	api      *apiMocks.MockRentalAPI
	auth     *authMocks.MockAuth
	property *propertyMocks.MockProperty
}

func testProperty() propertyModel.Property {
	return propertyModel.Property{
		ID:                "42",
		Title:             "Casa na Praia",
		PricePerNight:     100,
		CleaningFee:       50,
		ServiceFeePercent: 10,
		MaxGuests:         4,
	}
}

func newFixture(t *testing.T, ttlMinutes int) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	cfg := &config.Config{}
	cfg.Widget.SessionTTLMinutes = ttlMinutes

	f := fixture{
		api:      apiMocks.NewMockRentalAPI(ctrl),
		auth:     authMocks.NewMockAuth(ctrl),
		property: propertyMocks.NewMockProperty(ctrl),
	}

	f.svc = service.New(f.property, f.auth, f.api, cfg, mocks.NewOtel())

	return f
}

func date(value string) *time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}

	return &t
}

func TestWidgetService_Start(t *testing.T) {
	f := newFixture(t, 60)

	f.property.EXPECT().
		Get(gomock.Any(), "42").
		Return(testProperty(), []string{"2030-06-10"}, nil)

	f.auth.EXPECT().
		Status(gomock.Any(), "token").
		Return(authDto.SessionStatus{IsAuthenticated: true})

	res, err := f.svc.Start(context.Background(), dto.StartWidgetRequest{PropertyID: "42"}, "token")

	assert.NoError(t, err)
	assert.NotEmpty(t, res.SessionID)
	assert.Equal(t, "idle", res.View.AvailabilityState)
	assert.Equal(t, 1, res.View.Guests)
	assert.Equal(t, []string{"2030-06-10"}, res.View.BlockedDates)
	assert.True(t, res.View.Auth.IsAuthenticated)
}

func TestWidgetService_UnknownSession(t *testing.T) {
	f := newFixture(t, 60)

	_, err := f.svc.View(context.Background(), "no-such-session", "")

	assert.ErrorIs(t, err, failure.WidgetSessionExpired)
}

func TestWidgetService_SessionExpiry(t *testing.T) {
	f := newFixture(t, 0)

	f.property.EXPECT().
		Get(gomock.Any(), "42").
		Return(testProperty(), nil, nil)

	f.auth.EXPECT().
		Status(gomock.Any(), gomock.Any()).
		Return(authDto.SessionStatus{}).
		AnyTimes()

	res, err := f.svc.Start(context.Background(), dto.StartWidgetRequest{PropertyID: "42"}, "")
	assert.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = f.svc.View(context.Background(), res.SessionID, "")
	assert.ErrorIs(t, err, failure.WidgetSessionExpired)

	// A second lookup behaves the same after the session was dropped.
	_, err = f.svc.View(context.Background(), res.SessionID, "")
	assert.ErrorIs(t, err, failure.WidgetSessionExpired)
}

func TestWidgetService_SubmitRefreshesBlockedDates(t *testing.T) {
	f := newFixture(t, 60)

	f.property.EXPECT().
		Get(gomock.Any(), "42").
		Return(testProperty(), nil, nil)

	f.auth.EXPECT().
		Status(gomock.Any(), "token").
		Return(authDto.SessionStatus{IsAuthenticated: true, UserID: "17"}).
		AnyTimes()

	f.api.EXPECT().
		CheckAvailability(gomock.Any(), "42", gomock.Any(), gomock.Any()).
		Return(rentalapi.AvailabilityStatus{IsAvailable: true, Message: "Dates are available!"}, nil)

	res, err := f.svc.Start(context.Background(), dto.StartWidgetRequest{PropertyID: "42"}, "token")
	assert.NoError(t, err)

	_, err = f.svc.SelectRange(context.Background(), res.SessionID, "token", date("2030-06-01"), date("2030-06-03"))
	assert.NoError(t, err)

	assert.Eventually(t, func() bool {
		view, viewErr := f.svc.View(context.Background(), res.SessionID, "token")

		return viewErr == nil && view.AvailabilityState == "resolved"
	}, time.Second, 5*time.Millisecond)

	f.api.EXPECT().
		CreateBooking(gomock.Any(), "token", gomock.Any()).
		Return(bookingModel.Booking{ID: "7"}, nil)

	f.property.EXPECT().
		RefreshBlockedDates(gomock.Any(), "42").
		Return([]string{"2030-06-01", "2030-06-02"}, nil)

	view, err := f.svc.Submit(context.Background(), res.SessionID, "token")

	assert.NoError(t, err)
	assert.Equal(t, bookingModel.MessageBookingSuccess, view.Submission.SuccessMessage)
	assert.Equal(t, []string{"2030-06-01", "2030-06-02"}, view.BlockedDates)
}

func TestWidgetService_GuestOperations(t *testing.T) {
	f := newFixture(t, 60)

	f.property.EXPECT().
		Get(gomock.Any(), "42").
		Return(testProperty(), nil, nil)

	f.auth.EXPECT().
		Status(gomock.Any(), gomock.Any()).
		Return(authDto.SessionStatus{}).
		AnyTimes()

	res, err := f.svc.Start(context.Background(), dto.StartWidgetRequest{PropertyID: "42"}, "")
	assert.NoError(t, err)

	view, err := f.svc.SetGuests(context.Background(), res.SessionID, "", 3)
	assert.NoError(t, err)
	assert.Equal(t, 3, view.Guests)

	_, err = f.svc.SetGuests(context.Background(), res.SessionID, "", 9)
	assert.Error(t, err)

	view, err = f.svc.StepGuests(context.Background(), res.SessionID, "", 1)
	assert.NoError(t, err)
	assert.Equal(t, 4, view.Guests)

	view, err = f.svc.StepGuests(context.Background(), res.SessionID, "", 1)
	assert.NoError(t, err)
	assert.Equal(t, 4, view.Guests)

	view, err = f.svc.StepGuests(context.Background(), res.SessionID, "", -1)
	assert.NoError(t, err)
	assert.Equal(t, 3, view.Guests)
}
