package router

import (
	"github.com/alexfurtado22/djangobnb/internal/handlers/auth"
	"github.com/alexfurtado22/djangobnb/internal/handlers/booking"
	"github.com/alexfurtado22/djangobnb/internal/handlers/property"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/alexfurtado22/djangobnb/docs"
)

type DomainHandlers struct {
	Auth     auth.Handler
	Property property.Handler
	Booking  booking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Property.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
	})

	router.Get("/swagger/*", httpSwagger.Handler())
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
