package widget_test

import (
	"testing"
	"time"

	bookingModel "github.com/alexfurtado22/djangobnb/internal/domains/booking/model"
	"github.com/alexfurtado22/djangobnb/internal/domains/booking/widget"
	propertyModel "github.com/alexfurtado22/djangobnb/internal/domains/property/model"

	"github.com/stretchr/testify/assert"
)

func date(value string) *time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}

	return &t
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

func TestComputePricing(t *testing.T) {
	property := testProperty()

	tests := []struct {
		name string
		rng  bookingModel.DateRange
		want bookingModel.PricingBreakdown
	}{
		{
			name: "two nights with fees",
			rng:  bookingModel.DateRange{From: date("2030-06-01"), To: date("2030-06-03")},
			want: bookingModel.PricingBreakdown{
				Nights:      2,
				BasePrice:   200,
				CleaningFee: 50,
				ServiceFee:  20,
				Total:       270,
			},
		},
		{
			name: "single night",
			rng:  bookingModel.DateRange{From: date("2030-03-01"), To: date("2030-03-02")},
			want: bookingModel.PricingBreakdown{
				Nights:      1,
				BasePrice:   100,
				CleaningFee: 50,
				ServiceFee:  10,
				Total:       160,
			},
		},
		{
			name: "same day is zero nights and zero money",
			rng:  bookingModel.DateRange{From: date("2030-03-01"), To: date("2030-03-01")},
			want: bookingModel.PricingBreakdown{},
		},
		{
			name: "inverted range is zero",
			rng:  bookingModel.DateRange{From: date("2030-03-05"), To: date("2030-03-01")},
			want: bookingModel.PricingBreakdown{},
		},
		{
			name: "open range is zero",
			rng:  bookingModel.DateRange{From: date("2030-03-01")},
			want: bookingModel.PricingBreakdown{},
		},
		{
			name: "empty range is zero",
			rng:  bookingModel.DateRange{},
			want: bookingModel.PricingBreakdown{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := widget.ComputePricing(tt.rng, property)
			assert.Equal(t, tt.want, got)

			// Pure: a second call with identical inputs yields identical output.
			assert.Equal(t, got, widget.ComputePricing(tt.rng, property))
		})
	}
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 1, bookingModel.DaysBetween(*date("2024-03-01"), *date("2024-03-02")))
	assert.Equal(t, 0, bookingModel.DaysBetween(*date("2024-03-01"), *date("2024-03-01")))
	assert.Equal(t, -1, bookingModel.DaysBetween(*date("2024-03-02"), *date("2024-03-01")))
	assert.Equal(t, 31, bookingModel.DaysBetween(*date("2024-01-01"), *date("2024-02-01")))
}
