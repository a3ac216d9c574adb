package booking

import (
	"net/http"

	"github.com/alexfurtado22/djangobnb/infras/otel"
	"github.com/alexfurtado22/djangobnb/internal/domains/booking/model/dto"
	"github.com/alexfurtado22/djangobnb/internal/domains/booking/service"
	"github.com/alexfurtado22/djangobnb/shared/constant"
	"github.com/alexfurtado22/djangobnb/shared/validator"
	"github.com/alexfurtado22/djangobnb/transport/http/middleware"
	"github.com/alexfurtado22/djangobnb/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Widget
	otel    otel.Otel
}

func New(service service.Widget, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/widgets", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.StartWidget)
		routerGroup.Get("/{id}", handler.GetWidget)
		routerGroup.Put("/{id}/range", handler.SelectRange)
		routerGroup.Put("/{id}/guests", handler.SetGuests)
		routerGroup.Post("/{id}/guests/step", handler.StepGuests)
		routerGroup.Post("/{id}/reservation", handler.SubmitReservation)
	})
}

// StartWidget opens a booking widget session for a property.
// @Summary Start a booking widget session
// @Description Create a widget session holding the property snapshot, blocked dates, and reconciliation state.
// @Tags Widget
// @Accept json
// @Produce json
// @Param request body dto.StartWidgetRequest true "Start Widget Request"
// @Success 201 {object} dto.WidgetSessionResponse "Widget session"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/widgets [post]
func (handler *Handler) StartWidget(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StartWidget")
	defer scope.End()

	req := dto.StartWidgetRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Start(ctx, req, middleware.TokenFromRequest(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to start widget session")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Widget session started for property " + req.PropertyID)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetWidget returns the render-ready snapshot of a widget session.
// @Summary Get a widget snapshot
// @Description Retrieve the current pricing, availability, submission, and eligibility state of a widget session.
// @Tags Widget
// @Accept json
// @Produce json
// @Param id path string true "Widget session ID"
// @Success 200 {object} widget.View "Widget snapshot"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/widgets/{id} [get]
func (handler *Handler) GetWidget(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWidget")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	view, err := handler.service.View(ctx, id, middleware.TokenFromRequest(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get widget snapshot")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, view)
}

// SelectRange applies a calendar change to a widget session.
// @Summary Select a date range
// @Description Replace the selected range. A complete range triggers an availability check; an incomplete one resets the widget to idle.
// @Tags Widget
// @Accept json
// @Produce json
// @Param id path string true "Widget session ID"
// @Param request body dto.SelectRangeRequest true "Select Range Request"
// @Success 200 {object} widget.View "Widget snapshot"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/widgets/{id}/range [put]
func (handler *Handler) SelectRange(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SelectRange")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.SelectRangeRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	from, to, err := req.Bounds()
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse range bounds")

		response.WithError(w, err)

		return
	}

	view, err := handler.service.SelectRange(ctx, id, middleware.TokenFromRequest(r), from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to select range")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, view)
}

// SetGuests sets the guest count of a widget session.
// @Summary Set the guest count
// @Description Set the number of guests. Values outside [1, maxGuests] are rejected.
// @Tags Widget
// @Accept json
// @Produce json
// @Param id path string true "Widget session ID"
// @Param request body dto.SetGuestsRequest true "Set Guests Request"
// @Success 200 {object} widget.View "Widget snapshot"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/widgets/{id}/guests [put]
func (handler *Handler) SetGuests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetGuests")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.SetGuestsRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	view, err := handler.service.SetGuests(ctx, id, middleware.TokenFromRequest(r), req.Guests)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set guests")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, view)
}

// StepGuests steps the guest count up or down, clamped to the property bounds.
// @Summary Step the guest count
// @Description Increment or decrement the guest count by one, clamped to [1, maxGuests].
// @Tags Widget
// @Accept json
// @Produce json
// @Param id path string true "Widget session ID"
// @Param request body dto.StepGuestsRequest true "Step Guests Request"
// @Success 200 {object} widget.View "Widget snapshot"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/widgets/{id}/guests/step [post]
func (handler *Handler) StepGuests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StepGuests")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.StepGuestsRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	view, err := handler.service.StepGuests(ctx, id, middleware.TokenFromRequest(r), req.Step)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to step guests")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, view)
}

// SubmitReservation submits the reservation held by a widget session.
// @Summary Submit a reservation
// @Description Send the selected range and guest count to the backend. The outcome lands in the snapshot's submission state.
// @Tags Widget
// @Accept json
// @Produce json
// @Param id path string true "Widget session ID"
// @Success 200 {object} widget.View "Widget snapshot"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/widgets/{id}/reservation [post]
// @Security BearerAuth
func (handler *Handler) SubmitReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitReservation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	view, err := handler.service.Submit(ctx, id, middleware.TokenFromRequest(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit reservation")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, view)
}
