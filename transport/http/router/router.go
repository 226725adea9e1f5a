package router

import (
	"github.com/go-chi/chi/v5"

	"fairhall/internal/handlers/admin"
	"fairhall/internal/handlers/auth"
	"fairhall/internal/handlers/floorplan"
	"fairhall/internal/handlers/stall"
)

type DomainHandlers struct {
	Auth      auth.Handler
	Stall     stall.Handler
	Admin     admin.Handler
	FloorPlan floorplan.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Stall.Router(routerGroup)
		r.DomainHandlers.Admin.Router(routerGroup)
		r.DomainHandlers.FloorPlan.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
