package router

import (
	"ecoparking/internal/handlers/auth"
	"ecoparking/internal/handlers/citation"
	"ecoparking/internal/handlers/loyalty"
	"ecoparking/internal/handlers/reports"
	"ecoparking/internal/handlers/review"
	"ecoparking/internal/handlers/space"
	"ecoparking/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth     auth.Handler
	Space    space.Handler
	Report   reports.Handler
	Review   review.Handler
	Citation citation.Handler
	Loyalty  loyalty.Handler
	User     user.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Space.Router(routerGroup)
		r.DomainHandlers.Report.Router(routerGroup)
		r.DomainHandlers.Review.Router(routerGroup)
		r.DomainHandlers.Citation.Router(routerGroup)
		r.DomainHandlers.Loyalty.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
