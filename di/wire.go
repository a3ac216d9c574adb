//go:build wireinject
// +build wireinject

package di

import (
	"github.com/alexfurtado22/djangobnb/config"
	"github.com/alexfurtado22/djangobnb/infras/otel"
	"github.com/alexfurtado22/djangobnb/infras/redis"
	"github.com/alexfurtado22/djangobnb/infras/rentalapi"
	"github.com/alexfurtado22/djangobnb/infras/token"
	"github.com/alexfurtado22/djangobnb/shared/cache"
	"github.com/alexfurtado22/djangobnb/transport/http"
	"github.com/alexfurtado22/djangobnb/transport/http/middleware"
	"github.com/alexfurtado22/djangobnb/transport/http/router"

	authService "github.com/alexfurtado22/djangobnb/internal/domains/auth/service"
	bookingService "github.com/alexfurtado22/djangobnb/internal/domains/booking/service"
	propertyService "github.com/alexfurtado22/djangobnb/internal/domains/property/service"

	authHandler "github.com/alexfurtado22/djangobnb/internal/handlers/auth"
	bookingHandler "github.com/alexfurtado22/djangobnb/internal/handlers/booking"
	propertyHandler "github.com/alexfurtado22/djangobnb/internal/handlers/property"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	token.New,
	rentalapi.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	authService.New,
)

var propertyDomain = wire.NewSet(
	propertyService.New,
)

var bookingDomain = wire.NewSet(
	bookingService.New,
)

var domains = wire.NewSet(
	authDomain,
	propertyDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	propertyHandler.New,
	bookingHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
