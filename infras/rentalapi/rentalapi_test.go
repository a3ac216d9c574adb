package rentalapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alexfurtado22/djangobnb/config"
	"github.com/alexfurtado22/djangobnb/infras/otel/mocks"
	"github.com/alexfurtado22/djangobnb/infras/rentalapi"
	"github.com/alexfurtado22/djangobnb/shared/failure"
)

func newClient(t *testing.T, handler http.Handler) rentalapi.RentalAPI {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Backend.BaseURL = server.URL
	cfg.Backend.TimeoutSeconds = 5

	return rentalapi.New(cfg, mocks.NewOtel())
}

func TestClient_GetProperty(t *testing.T) {
	api := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/property/properties/42/", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 42,
			"title": "Casa na Praia",
			"price_per_night": "100.00",
			"cleaning_fee": "50.00",
			"service_fee_percent": "10.00",
			"num_guests": 4,
			"bookings": [
				{"start_date": "2030-06-01", "end_date": "2030-06-03"}
			]
		}`))
	}))

	property, blocked, err := api.GetProperty(context.Background(), "42")

	assert.NoError(t, err)
	assert.Equal(t, "42", property.ID)
	assert.Equal(t, 100.0, property.PricePerNight)
	assert.Equal(t, 50.0, property.CleaningFee)
	assert.Equal(t, 10.0, property.ServiceFeePercent)
	assert.Equal(t, 4, property.MaxGuests)

	// The checkout day is not a blocked night.
	assert.Equal(t, []string{"2030-06-01", "2030-06-02"}, blocked)
}

func TestClient_GetProperty_NotFound(t *testing.T) {
	api := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, _, err := api.GetProperty(context.Background(), "42")

	assert.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestClient_CheckAvailability(t *testing.T) {
	start, _ := time.Parse("2006-01-02", "2030-06-01")
	end, _ := time.Parse("2006-01-02", "2030-06-03")

	api := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/property/properties/42/check_availability/", r.URL.Path)
		assert.Equal(t, "2030-06-01", r.URL.Query().Get("start_date"))
		assert.Equal(t, "2030-06-03", r.URL.Query().Get("end_date"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"is_available": true, "message": "Dates are available!"}`))
	}))

	status, err := api.CheckAvailability(context.Background(), "42", start, end)

	assert.NoError(t, err)
	assert.True(t, status.IsAvailable)
	assert.Equal(t, "Dates are available!", status.Message)
}

func TestClient_CreateBooking(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantFields map[string][]string
		wantErr    bool
	}{
		{
			name:   "created",
			status: http.StatusCreated,
			body:   `{"id": "7", "start_date": "2030-06-01", "end_date": "2030-06-03"}`,
		},
		{
			name:   "field errors keep their keys",
			status: http.StatusBadRequest,
			body:   `{"startDate": ["End date must be after start date."]}`,
			wantFields: map[string][]string{
				"startDate": {"End date must be after start date."},
			},
			wantErr: true,
		},
		{
			name:   "non-field errors land in the general bucket",
			status: http.StatusBadRequest,
			body:   `{"non_field_errors": ["This property is already booked for the selected dates."]}`,
			wantFields: map[string][]string{
				failure.FieldGeneral: {"This property is already booked for the selected dates."},
			},
			wantErr: true,
		},
		{
			name:   "detail string lands in the general bucket",
			status: http.StatusBadRequest,
			body:   `{"detail": "Authentication credentials were not provided."}`,
			wantFields: map[string][]string{
				failure.FieldGeneral: {"Authentication credentials were not provided."},
			},
			wantErr: true,
		},
		{
			name:    "server error is a plain rejection",
			status:  http.StatusInternalServerError,
			body:    `{}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/bookings/", r.URL.Path)
				assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))

			booking, err := api.CreateBooking(context.Background(), "access-token", rentalapi.CreateBookingRequest{
				PropertyID:     "42",
				StartDate:      "2030-06-01",
				EndDate:        "2030-06-03",
				NumberOfGuests: "2",
			})

			if !tt.wantErr {
				assert.NoError(t, err)
				assert.Equal(t, "7", booking.ID)

				return
			}

			assert.Error(t, err)

			fields, ok := failure.FieldErrors(err)
			if tt.wantFields != nil {
				assert.True(t, ok)
				assert.Equal(t, tt.wantFields, fields)
			} else {
				assert.False(t, ok)
			}
		})
	}
}

func TestClient_Login(t *testing.T) {
	t.Run("success returns the token pair", func(t *testing.T) {
		api := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/login/", r.URL.Path)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access": "access-token", "refresh": "refresh-token"}`))
		}))

		pair, err := api.Login(context.Background(), rentalapi.LoginRequest{
			Email:    "guest@example.com",
			Password: "password",
		})

		assert.NoError(t, err)
		assert.Equal(t, "access-token", pair.Access)
		assert.Equal(t, "refresh-token", pair.Refresh)
	})

	t.Run("rejection surfaces the backend message", func(t *testing.T) {
		api := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"non_field_errors": ["Unable to log in with provided credentials."]}`))
		}))

		_, err := api.Login(context.Background(), rentalapi.LoginRequest{
			Email:    "guest@example.com",
			Password: "wrong",
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
		assert.Equal(t, "Unable to log in with provided credentials.", err.Error())
	})
}
