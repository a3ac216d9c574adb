package rentalapi

//go:generate go run go.uber.org/mock/mockgen -source=./rentalapi.go -destination=./mocks/rentalapi_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/alexfurtado22/djangobnb/config"
	"github.com/alexfurtado22/djangobnb/infras/otel"
	bookingModel "github.com/alexfurtado22/djangobnb/internal/domains/booking/model"
	propertyModel "github.com/alexfurtado22/djangobnb/internal/domains/property/model"
	"github.com/alexfurtado22/djangobnb/shared/constant"
	"github.com/alexfurtado22/djangobnb/shared/failure"

	"github.com/rs/zerolog/log"
)

// AvailabilityStatus is the backend's answer for one date range.
type AvailabilityStatus struct {
	IsAvailable bool   `json:"is_available"`
	Message     string `json:"message"`
}

// CreateBookingRequest is the booking payload the backend accepts. Dates are
// YYYY-MM-DD and the guest count travels as a string, per the form contract.
type CreateBookingRequest struct {
	PropertyID     string `json:"propertyId"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
	NumberOfGuests string `json:"numberOfGuests"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenPair holds the JWT pair the backend issues on login.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// User is the identity record behind a bearer token.
type User struct {
	ID       int    `json:"pk"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// RentalAPI wraps the remote property-rental backend. It stays authoritative
// for availability, bookings, and identity; this client only shuttles
// requests and maps error shapes.
type RentalAPI interface {
	GetProperty(ctx context.Context, propertyID string) (propertyModel.Property, []string, error)
	CheckAvailability(ctx context.Context, propertyID string, start, end time.Time) (AvailabilityStatus, error)
	CreateBooking(ctx context.Context, token string, req CreateBookingRequest) (bookingModel.Booking, error)
	GetUser(ctx context.Context, token string) (User, error)
	Login(ctx context.Context, req LoginRequest) (TokenPair, error)
	Logout(ctx context.Context, token string) error
}

type clientImpl struct {
	baseURL string
	http    *http.Client
	otel    otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) RentalAPI {
	return &clientImpl{
		baseURL: cfg.Backend.BaseURL,
		http: &http.Client{
			Timeout: time.Duration(cfg.Backend.TimeoutSeconds) * time.Second,
		},
		otel: ot,
	}
}

// propertyPayload mirrors the backend's property detail serializer. Decimal
// fields arrive as strings.
type propertyPayload struct {
	ID                json.Number `json:"id"`
	Title             string      `json:"title"`
	PricePerNight     json.Number `json:"price_per_night"`
	CleaningFee       json.Number `json:"cleaning_fee"`
	ServiceFeePercent json.Number `json:"service_fee_percent"`
	NumGuests         int         `json:"num_guests"`
	BookedDates       []string    `json:"booked_dates"`
	Bookings          []struct {
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
	} `json:"bookings"`
}

func (c *clientImpl) GetProperty(ctx context.Context, propertyID string) (res propertyModel.Property, booked []string, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".GetProperty")
	defer scope.End()
	defer scope.TraceIfError(err)

	endpoint := fmt.Sprintf("%s/property/properties/%s/", c.baseURL, url.PathEscape(propertyID))

	var payload propertyPayload
	if err = c.get(ctx, endpoint, constant.Empty, &payload); err != nil {
		return res, nil, err
	}

	res = propertyModel.Property{
		ID:                payload.ID.String(),
		Title:             payload.Title,
		PricePerNight:     toFloat(payload.PricePerNight),
		CleaningFee:       toFloat(payload.CleaningFee),
		ServiceFeePercent: toFloat(payload.ServiceFeePercent),
		MaxGuests:         payload.NumGuests,
	}

	booked = payload.BookedDates
	if len(booked) == 0 {
		booked = expandBookings(payload)
	}

	return res, booked, nil
}

func (c *clientImpl) CheckAvailability(ctx context.Context, propertyID string, start, end time.Time) (res AvailabilityStatus, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	endpoint := fmt.Sprintf(
		"%s/property/properties/%s/check_availability/?start_date=%s&end_date=%s",
		c.baseURL,
		url.PathEscape(propertyID),
		start.Format(constant.DateFormat),
		end.Format(constant.DateFormat),
	)

	scope.SetAttribute("property.id", propertyID)

	if err = c.get(ctx, endpoint, constant.Empty, &res); err != nil {
		return AvailabilityStatus{}, err
	}

	return res, nil
}

func (c *clientImpl) CreateBooking(ctx context.Context, token string, req CreateBookingRequest) (res bookingModel.Booking, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".CreateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	endpoint := fmt.Sprintf("%s/bookings/", c.baseURL)

	body, err := json.Marshal(req)
	if err != nil {
		return res, fmt.Errorf("failed to encode booking request: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return res, fmt.Errorf("failed to build booking request: %w", err)
	}

	request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	setBearer(request, token)

	response, err := c.http.Do(request)
	if err != nil {
		return res, fmt.Errorf("failed to call booking endpoint: %w", err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		return res, fmt.Errorf("failed to read booking response: %w", err)
	}

	if response.StatusCode == http.StatusBadRequest {
		return res, bookingValidationError(raw)
	}

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		log.Error().Int("status", response.StatusCode).Msg("booking endpoint rejected the request")

		return res, failure.BadRequestFromString(bookingModel.MessageBookingRejected) //nolint:wrapcheck
	}

	if err = json.Unmarshal(raw, &res); err != nil {
		return res, fmt.Errorf("failed to decode booking response: %w", err)
	}

	return res, nil
}

func (c *clientImpl) GetUser(ctx context.Context, token string) (res User, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".GetUser")
	defer scope.End()
	defer scope.TraceIfError(err)

	endpoint := fmt.Sprintf("%s/auth/user/", c.baseURL)

	if err = c.get(ctx, endpoint, token, &res); err != nil {
		return User{}, err
	}

	return res, nil
}

func (c *clientImpl) Login(ctx context.Context, req LoginRequest) (res TokenPair, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	endpoint := fmt.Sprintf("%s/auth/login/", c.baseURL)

	body, err := json.Marshal(req)
	if err != nil {
		return res, fmt.Errorf("failed to encode login request: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return res, fmt.Errorf("failed to build login request: %w", err)
	}

	request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	response, err := c.http.Do(request)
	if err != nil {
		return res, fmt.Errorf("failed to call login endpoint: %w", err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		return res, fmt.Errorf("failed to read login response: %w", err)
	}

	if response.StatusCode != http.StatusOK {
		return res, failure.Unauthorized(loginErrorMessage(raw)) //nolint:wrapcheck
	}

	if err = json.Unmarshal(raw, &res); err != nil {
		return res, fmt.Errorf("failed to decode login response: %w", err)
	}

	return res, nil
}

func (c *clientImpl) Logout(ctx context.Context, token string) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".Logout")
	defer scope.End()
	defer scope.TraceIfError(err)

	endpoint := fmt.Sprintf("%s/auth/logout/", c.baseURL)

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build logout request: %w", err)
	}

	setBearer(request, token)

	response, err := c.http.Do(request)
	if err != nil {
		return fmt.Errorf("failed to call logout endpoint: %w", err)
	}
	defer response.Body.Close()

	// A 401 here means the session is already gone, which is the goal anyway.
	return nil
}

func (c *clientImpl) get(ctx context.Context, endpoint, token string, out any) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	setBearer(request, token)

	response, err := c.http.Do(request)
	if err != nil {
		return fmt.Errorf("failed to call backend: %w", err)
	}
	defer response.Body.Close()

	switch {
	case response.StatusCode == http.StatusUnauthorized:
		return failure.Unauthorized("authentication required") //nolint:wrapcheck
	case response.StatusCode == http.StatusNotFound:
		return failure.NotFound(propertyModel.EntityName + " not found") //nolint:wrapcheck
	case response.StatusCode != http.StatusOK:
		return fmt.Errorf("backend returned status %d", response.StatusCode)
	}

	if err = json.NewDecoder(response.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode backend response: %w", err)
	}

	return nil
}

func setBearer(request *http.Request, token string) {
	if token != constant.Empty {
		request.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+token)
	}
}

func toFloat(n json.Number) float64 {
	f, err := n.Float64()
	if err != nil {
		return 0
	}

	return f
}

// expandBookings turns each booking window into its blocked days. The
// checkout day stays selectable, matching the backend's overlap rule
// (start_date < end AND end_date > start).
func expandBookings(payload propertyPayload) []string {
	var days []string

	for _, b := range payload.Bookings {
		start, err := time.Parse(constant.DateFormat, b.StartDate)
		if err != nil {
			continue
		}

		end, err := time.Parse(constant.DateFormat, b.EndDate)
		if err != nil {
			continue
		}

		for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
			days = append(days, d.Format(constant.DateFormat))
		}
	}

	return days
}

// bookingValidationError maps the backend's per-field rejection JSON into a
// validation failure. Unkeyed entries (non_field_errors, detail) land in the
// general bucket.
func bookingValidationError(raw []byte) error {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		return failure.BadRequestFromString(bookingModel.MessageBookingRejected) //nolint:wrapcheck
	}

	fields := map[string][]string{}

	for key, value := range payload {
		var msgs []string
		if err := json.Unmarshal(value, &msgs); err != nil {
			var msg string
			if err := json.Unmarshal(value, &msg); err != nil {
				continue
			}

			msgs = []string{msg}
		}

		if key == "non_field_errors" || key == "detail" {
			key = failure.FieldGeneral
		}

		fields[key] = append(fields[key], msgs...)
	}

	if len(fields) == 0 {
		return failure.BadRequestFromString(bookingModel.MessageBookingRejected) //nolint:wrapcheck
	}

	return failure.ValidationFailure(fields) //nolint:wrapcheck
}

func loginErrorMessage(raw []byte) string {
	var payload struct {
		Detail         string   `json:"detail"`
		NonFieldErrors []string `json:"non_field_errors"`
	}

	if err := json.Unmarshal(raw, &payload); err == nil {
		if payload.Detail != constant.Empty {
			return payload.Detail
		}

		if len(payload.NonFieldErrors) > 0 {
			return payload.NonFieldErrors[0]
		}
	}

	return "Login failed"
}
