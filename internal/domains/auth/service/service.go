package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/auth_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/alexfurtado22/djangobnb/config"
	"github.com/alexfurtado22/djangobnb/infras/otel"
	"github.com/alexfurtado22/djangobnb/infras/rentalapi"
	"github.com/alexfurtado22/djangobnb/infras/token"
	"github.com/alexfurtado22/djangobnb/internal/domains/auth/model/dto"
	"github.com/alexfurtado22/djangobnb/shared/constant"

	"github.com/rs/zerolog/log"
)

// Auth resolves identity against the remote rental backend. Tokens are issued
// and verified by the backend only; Status answers from the token's own expiry
// claim so widget operations never block on a network round trip.
type Auth interface {
	Status(ctx context.Context, tokenString string) dto.SessionStatus
	User(ctx context.Context, tokenString string) (dto.UserResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	Logout(ctx context.Context, tokenString string) error
}

type serviceImpl struct {
	inspector token.Inspector
	api       rentalapi.RentalAPI
	cfg       *config.Config
	otel      otel.Otel
}

func New(inspector token.Inspector, api rentalapi.RentalAPI, cfg *config.Config, otel otel.Otel) Auth {
	return &serviceImpl{
		inspector: inspector,
		api:       api,
		cfg:       cfg,
		otel:      otel,
	}
}

func (s *serviceImpl) Status(ctx context.Context, tokenString string) dto.SessionStatus {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Status")
	defer scope.End()

	if tokenString == constant.Empty {
		return dto.SessionStatus{}
	}

	expired, err := s.inspector.IsExpired(tokenString)
	if err != nil {
		log.Warn().Err(err).Msg("session status requested with an unreadable token")

		return dto.SessionStatus{}
	}

	if expired {
		return dto.SessionStatus{}
	}

	subject, err := s.inspector.Subject(tokenString)
	if err != nil {
		log.Warn().Err(err).Msg("token has no readable subject")

		return dto.SessionStatus{}
	}

	return dto.SessionStatus{
		IsAuthenticated: true,
		UserID:          subject,
	}
}

func (s *serviceImpl) User(ctx context.Context, tokenString string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".User")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.api.GetUser(ctx, tokenString)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user from backend")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	res.FromBackendUser(user)

	return res, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	pair, err := s.api.Login(ctx, req.ToBackendRequest())
	if err != nil {
		log.Warn().Err(err).Str("email", req.Email).Msg("login rejected by backend")

		return res, err
	}

	res.FromTokenPair(pair)

	return res, nil
}

func (s *serviceImpl) Logout(ctx context.Context, tokenString string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.api.Logout(ctx, tokenString); err != nil {
		log.Error().Err(err).Msg("failed to log out on backend")

		return fmt.Errorf("failed to log out: %w", err)
	}

	return nil
}
