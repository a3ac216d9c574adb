package property

import (
	"net/http"

	"github.com/alexfurtado22/djangobnb/infras/otel"
	"github.com/alexfurtado22/djangobnb/internal/domains/property/service"
	"github.com/alexfurtado22/djangobnb/shared/constant"
	"github.com/alexfurtado22/djangobnb/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Property
	otel    otel.Otel
}

func New(service service.Property, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/properties", func(routerGroup chi.Router) {
		routerGroup.Get("/{id}", handler.GetProperty)
		routerGroup.Get("/{id}/blocked-dates", handler.GetBlockedDates)
	})
}

type propertyResponse struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	PricePerNight     float64  `json:"pricePerNight"`
	CleaningFee       float64  `json:"cleaningFee"`
	ServiceFeePercent float64  `json:"serviceFeePercent"`
	MaxGuests         int      `json:"maxGuests"`
	BlockedDates      []string `json:"blockedDates"`
}

// GetProperty returns the pricing snapshot and blocked dates of a listing.
// @Summary Get a property snapshot
// @Description Retrieve the pricing inputs, guest ceiling, and blocked calendar days of a listing.
// @Tags Property
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} propertyResponse "Property snapshot"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id} [get]
func (handler *Handler) GetProperty(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProperty")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	property, blocked, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get property")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, propertyResponse{
		ID:                property.ID,
		Title:             property.Title,
		PricePerNight:     property.PricePerNight,
		CleaningFee:       property.CleaningFee,
		ServiceFeePercent: property.ServiceFeePercent,
		MaxGuests:         property.MaxGuests,
		BlockedDates:      blocked,
	})
}

// GetBlockedDates re-reads the blocked calendar days of a listing.
// @Summary Refresh blocked dates
// @Description Drop the cached listing snapshot and return the current blocked calendar days.
// @Tags Property
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {array} string "Blocked dates"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id}/blocked-dates [get]
func (handler *Handler) GetBlockedDates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBlockedDates")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	blocked, err := handler.service.RefreshBlockedDates(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to refresh blocked dates")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, blocked)
}
