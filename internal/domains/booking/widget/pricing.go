package widget

import (
	bookingModel "github.com/alexfurtado22/djangobnb/internal/domains/booking/model"
	propertyModel "github.com/alexfurtado22/djangobnb/internal/domains/property/model"
)

// ComputePricing derives the display price for a range. It is pure: the
// backend recomputes the authoritative total on submission, so this result
// is never sent anywhere. An incomplete range prices to the zero breakdown.
func ComputePricing(rng bookingModel.DateRange, property propertyModel.Property) bookingModel.PricingBreakdown {
	nights := rng.Nights()
	if !rng.Complete() || nights <= 0 {
		return bookingModel.PricingBreakdown{}
	}

	base := float64(nights) * property.PricePerNight
	service := base * property.ServiceFeePercent / 100

	return bookingModel.PricingBreakdown{
		Nights:      nights,
		BasePrice:   base,
		CleaningFee: property.CleaningFee,
		ServiceFee:  service,
		Total:       base + property.CleaningFee + service,
	}
}
