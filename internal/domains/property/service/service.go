package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/property_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexfurtado22/djangobnb/config"
	"github.com/alexfurtado22/djangobnb/infras/otel"
	"github.com/alexfurtado22/djangobnb/infras/rentalapi"
	"github.com/alexfurtado22/djangobnb/internal/domains/property/model"
	"github.com/alexfurtado22/djangobnb/shared"
	"github.com/alexfurtado22/djangobnb/shared/cache"
	"github.com/alexfurtado22/djangobnb/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyProperty = "property"
)

// Property is the read model over the remote listing: the pricing snapshot a
// widget needs plus the blocked calendar days. Fetched once per widget
// session and cached; a confirmed booking invalidates the cache so the next
// fetch reflects it.
type Property interface {
	Get(ctx context.Context, propertyID string) (model.Property, []string, error)
	RefreshBlockedDates(ctx context.Context, propertyID string) ([]string, error)
}

type serviceImpl struct {
	api   rentalapi.RentalAPI
	cache cache.RedisCache
	cfg   *config.Config
	otel  otel.Otel
}

func New(api rentalapi.RentalAPI, cache cache.RedisCache, cfg *config.Config, otel otel.Otel) Property {
	return &serviceImpl{
		api:   api,
		cache: cache,
		cfg:   cfg,
		otel:  otel,
	}
}

type cachedProperty struct {
	Property     model.Property `json:"property"`
	BlockedDates []string       `json:"blockedDates"`
}

func (s *serviceImpl) Get(ctx context.Context, propertyID string) (res model.Property, blocked []string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	key := shared.BuildCacheKey(cacheKeyProperty, propertyID)

	var cached cachedProperty
	if cacheErr := s.cache.Get(ctx, key, &cached); cacheErr == nil {
		return cached.Property, cached.BlockedDates, nil
	} else if !errors.Is(cacheErr, cache.Nil) {
		log.Warn().Err(cacheErr).Str("key", key).Msg("property cache lookup failed, falling through to backend")
	}

	res, blocked, err = s.api.GetProperty(ctx, propertyID)
	if err != nil {
		log.Error().Err(err).Str("property_id", propertyID).Msg("failed to get property")

		return res, nil, fmt.Errorf("failed to get property: %w", err)
	}

	if saveErr := s.cache.Save(ctx, key, cachedProperty{Property: res, BlockedDates: blocked}, s.cfg.Cache.TTL); saveErr != nil {
		log.Warn().Err(saveErr).Str("key", key).Msg("failed to cache property")
	}

	return res, blocked, nil
}

// RefreshBlockedDates drops the cached snapshot and re-reads the listing,
// returning the calendar days confirmed bookings now occupy.
func (s *serviceImpl) RefreshBlockedDates(ctx context.Context, propertyID string) (blocked []string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshBlockedDates")
	defer scope.End()
	defer scope.TraceIfError(err)

	key := shared.BuildCacheKey(cacheKeyProperty, propertyID)

	if deleteErr := s.cache.Delete(ctx, key); deleteErr != nil {
		log.Warn().Err(deleteErr).Str("key", key).Msg("failed to invalidate property cache")
	}

	property, blocked, err := s.api.GetProperty(ctx, propertyID)
	if err != nil {
		log.Error().Err(err).Str("property_id", propertyID).Msg("failed to refresh blocked dates")

		return nil, fmt.Errorf("failed to refresh blocked dates: %w", err)
	}

	if saveErr := s.cache.Save(ctx, key, cachedProperty{Property: property, BlockedDates: blocked}, s.cfg.Cache.TTL); saveErr != nil {
		log.Warn().Err(saveErr).Str("key", key).Msg("failed to cache property")
	}

	return blocked, nil
}
