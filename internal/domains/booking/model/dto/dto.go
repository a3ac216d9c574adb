package dto

import (
	"fmt"
	"time"

	"github.com/alexfurtado22/djangobnb/internal/domains/booking/widget"
	"github.com/alexfurtado22/djangobnb/shared/constant"
	"github.com/alexfurtado22/djangobnb/shared/timezone"
)

type StartWidgetRequest struct {
	PropertyID string `json:"propertyId" validate:"required"`
}

// SelectRangeRequest carries a calendar change. Either date may be empty,
// which makes the range incomplete and resets the widget to idle.
type SelectRangeRequest struct {
	StartDate string `json:"startDate" validate:"omitempty,isodate"`
	EndDate   string `json:"endDate"   validate:"omitempty,isodate"`
}

// Bounds parses the dates in the application timezone.
func (r SelectRangeRequest) Bounds() (from, to *time.Time, err error) {
	if r.StartDate != constant.Empty {
		parsed, parseErr := timezone.Parse(constant.DateFormat, r.StartDate)
		if parseErr != nil {
			return nil, nil, fmt.Errorf("failed to parse start date: %w", parseErr)
		}

		from = &parsed
	}

	if r.EndDate != constant.Empty {
		parsed, parseErr := timezone.Parse(constant.DateFormat, r.EndDate)
		if parseErr != nil {
			return nil, nil, fmt.Errorf("failed to parse end date: %w", parseErr)
		}

		to = &parsed
	}

	return from, to, nil
}

type SetGuestsRequest struct {
	Guests int `json:"guests" validate:"required,min=1"`
}

type StepGuestsRequest struct {
	Step int `json:"step" validate:"required,oneof=-1 1"`
}

type WidgetSessionResponse struct {
	SessionID string      `json:"sessionId"`
	View      widget.View `json:"view"`
}
