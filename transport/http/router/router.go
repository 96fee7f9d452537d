package router

import (
	"pgstay/internal/handlers/draft"
	"pgstay/internal/handlers/listing"
	"pgstay/internal/handlers/owner"
	"pgstay/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Owner   owner.Handler
	Draft   draft.Handler
	Listing listing.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

// SetupRoutes mounts the public surfaces directly and the wizard behind the
// auth middleware. Listings are world-readable; drafts belong to the
// authenticated owner running the wizard.
func (r *Router) SetupRoutes(router chi.Router, auth middleware.AuthRole) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Owner.Router(routerGroup)
		r.DomainHandlers.Listing.Router(routerGroup)

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(auth.Auth)
			protected.Use(auth.RBAC)

			r.DomainHandlers.Draft.Router(protected)
		})
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
