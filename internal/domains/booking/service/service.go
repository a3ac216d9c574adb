package service

import (
	"context"
	"sync"
	"time"

	"github.com/alexfurtado22/djangobnb/config"
	"github.com/alexfurtado22/djangobnb/infras/otel"
	"github.com/alexfurtado22/djangobnb/infras/rentalapi"
	authService "github.com/alexfurtado22/djangobnb/internal/domains/auth/service"
	"github.com/alexfurtado22/djangobnb/internal/domains/booking/model/dto"
	"github.com/alexfurtado22/djangobnb/internal/domains/booking/widget"
	propertyModel "github.com/alexfurtado22/djangobnb/internal/domains/property/model"
	propertyService "github.com/alexfurtado22/djangobnb/internal/domains/property/service"
	"github.com/alexfurtado22/djangobnb/shared/constant"
	"github.com/alexfurtado22/djangobnb/shared/failure"
	"github.com/alexfurtado22/djangobnb/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Widget owns the live booking widgets, one controller per session. Sessions
// are in-memory and single-owner; they expire after the configured idle TTL.
type Widget interface {
	Start(ctx context.Context, req dto.StartWidgetRequest, token string) (dto.WidgetSessionResponse, error)
	View(ctx context.Context, sessionID, token string) (widget.View, error)
	SelectRange(ctx context.Context, sessionID, token string, from, to *time.Time) (widget.View, error)
	SetGuests(ctx context.Context, sessionID, token string, guests int) (widget.View, error)
	StepGuests(ctx context.Context, sessionID, token string, step int) (widget.View, error)
	Submit(ctx context.Context, sessionID, token string) (widget.View, error)
}

type session struct {
	controller *widget.Controller
	propertyID string
	lastSeen   time.Time
}

type serviceImpl struct {
	properties propertyService.Property
	auth       authService.Auth
	api        rentalapi.RentalAPI
	cfg        *config.Config
	otel       otel.Otel

	mu       sync.Mutex
	sessions map[string]*session
}

func New(properties propertyService.Property, auth authService.Auth, api rentalapi.RentalAPI, cfg *config.Config, otel otel.Otel) Widget {
	return &serviceImpl{
		properties: properties,
		auth:       auth,
		api:        api,
		cfg:        cfg,
		otel:       otel,
		sessions:   make(map[string]*session),
	}
}

func (s *serviceImpl) Start(ctx context.Context, req dto.StartWidgetRequest, token string) (res dto.WidgetSessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelWidgetScopeName, constant.OtelWidgetScopeName+".Start")
	defer scope.End()
	defer scope.TraceIfError(err)

	property, blocked, err := s.properties.Get(ctx, req.PropertyID)
	if err != nil {
		log.Error().Err(err).Str("property_id", req.PropertyID).Msg("failed to start widget session")

		return res, err
	}

	controller := widget.New(property, propertyModel.NewBlockedDates(blocked), s.api, s.api)
	controller.SetAuthStatus(s.authStatus(ctx, token))

	id := uuid.NewString()

	s.mu.Lock()
	s.evictExpiredLocked()
	s.sessions[id] = &session{
		controller: controller,
		propertyID: property.ID,
		lastSeen:   timezone.Now(),
	}
	s.mu.Unlock()

	scope.SetAttribute("widget.session_id", id)
	log.Info().Str("session_id", id).Str("property_id", property.ID).Msg("widget session started")

	return dto.WidgetSessionResponse{SessionID: id, View: controller.View()}, nil
}

func (s *serviceImpl) View(ctx context.Context, sessionID, token string) (res widget.View, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelWidgetScopeName, constant.OtelWidgetScopeName+".View")
	defer scope.End()
	defer scope.TraceIfError(err)

	sess, err := s.lookup(sessionID)
	if err != nil {
		return res, err
	}

	sess.controller.SetAuthStatus(s.authStatus(ctx, token))

	return sess.controller.View(), nil
}

func (s *serviceImpl) SelectRange(ctx context.Context, sessionID, token string, from, to *time.Time) (res widget.View, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelWidgetScopeName, constant.OtelWidgetScopeName+".SelectRange")
	defer scope.End()
	defer scope.TraceIfError(err)

	sess, err := s.lookup(sessionID)
	if err != nil {
		return res, err
	}

	sess.controller.SetAuthStatus(s.authStatus(ctx, token))

	// The availability check outlives this request, so it must not inherit
	// the request's cancellation.
	sess.controller.SelectRange(context.WithoutCancel(ctx), from, to)

	return sess.controller.View(), nil
}

func (s *serviceImpl) SetGuests(ctx context.Context, sessionID, token string, guests int) (res widget.View, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelWidgetScopeName, constant.OtelWidgetScopeName+".SetGuests")
	defer scope.End()
	defer scope.TraceIfError(err)

	sess, err := s.lookup(sessionID)
	if err != nil {
		return res, err
	}

	sess.controller.SetAuthStatus(s.authStatus(ctx, token))

	if err = sess.controller.SetGuests(guests); err != nil {
		return res, err
	}

	return sess.controller.View(), nil
}

func (s *serviceImpl) StepGuests(ctx context.Context, sessionID, token string, step int) (res widget.View, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelWidgetScopeName, constant.OtelWidgetScopeName+".StepGuests")
	defer scope.End()
	defer scope.TraceIfError(err)

	sess, err := s.lookup(sessionID)
	if err != nil {
		return res, err
	}

	sess.controller.SetAuthStatus(s.authStatus(ctx, token))

	if step > 0 {
		sess.controller.IncrementGuests()
	} else {
		sess.controller.DecrementGuests()
	}

	return sess.controller.View(), nil
}

func (s *serviceImpl) Submit(ctx context.Context, sessionID, token string) (res widget.View, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelWidgetScopeName, constant.OtelWidgetScopeName+".Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	sess, err := s.lookup(sessionID)
	if err != nil {
		return res, err
	}

	sess.controller.SetAuthStatus(s.authStatus(ctx, token))

	_, booking, err := sess.controller.Submit(ctx, token)
	if err != nil {
		return res, err
	}

	if booking != nil {
		scope.AddEvent("Booking confirmed for session " + sessionID)

		// The calendar must reflect the booking this session just made.
		days, refreshErr := s.properties.RefreshBlockedDates(ctx, sess.propertyID)
		if refreshErr != nil {
			log.Warn().Err(refreshErr).Str("property_id", sess.propertyID).Msg("failed to refresh blocked dates after booking")
		} else {
			sess.controller.SetBlockedDates(days)
		}
	}

	return sess.controller.View(), nil
}

func (s *serviceImpl) authStatus(ctx context.Context, token string) widget.AuthStatus {
	status := s.auth.Status(ctx, token)

	return widget.AuthStatus{
		IsAuthenticated: status.IsAuthenticated,
		IsLoading:       status.IsLoading,
	}
}

func (s *serviceImpl) lookup(sessionID string) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, failure.WidgetSessionExpired
	}

	if timezone.Now().Sub(sess.lastSeen) > s.sessionTTL() {
		delete(s.sessions, sessionID)

		return nil, failure.WidgetSessionExpired
	}

	sess.lastSeen = timezone.Now()

	return sess, nil
}

func (s *serviceImpl) evictExpiredLocked() {
	ttl := s.sessionTTL()

	for id, sess := range s.sessions {
		if timezone.Now().Sub(sess.lastSeen) > ttl {
			delete(s.sessions, id)
		}
	}
}

func (s *serviceImpl) sessionTTL() time.Duration {
	return time.Duration(s.cfg.Widget.SessionTTLMinutes) * time.Minute
}
