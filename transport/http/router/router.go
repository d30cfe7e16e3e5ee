package router

import (
	"github.com/go-chi/chi/v5"

	"gor/internal/handlers/auth"
	"gor/internal/handlers/booking"
	"gor/internal/handlers/field"
	"gor/internal/handlers/gallery"
	"gor/internal/handlers/health"
	"gor/internal/handlers/location"
	"gor/internal/handlers/payment"
	"gor/internal/handlers/user"
)

type DomainHandlers struct {
	Auth     auth.Handler
	User     user.Handler
	Location location.Handler
	Field    field.Handler
	Booking  booking.Handler
	Payment  payment.Handler
	Gallery  gallery.Handler
	Health   health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Health.Router(router)

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Location.Router(routerGroup)
		r.DomainHandlers.Field.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.Gallery.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
