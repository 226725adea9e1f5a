//go:build wireinject
// +build wireinject

package di

import (
	"fairhall/config"
	"fairhall/infras/jwt"
	"fairhall/infras/otel"
	"fairhall/infras/postgres"
	"fairhall/infras/redis"
	"fairhall/infras/s3"
	"fairhall/shared/blobstore"
	"fairhall/shared/cache"
	"fairhall/transport/http"
	"fairhall/transport/http/middleware"
	"fairhall/transport/http/router"

	"github.com/google/wire"

	authService "fairhall/internal/domains/auth/service"
	directoryService "fairhall/internal/domains/directory/service"
	floorplanService "fairhall/internal/domains/floorplan/service"
	stallService "fairhall/internal/domains/stall/service"

	adminHandler "fairhall/internal/handlers/admin"
	authHandler "fairhall/internal/handlers/auth"
	floorplanHandler "fairhall/internal/handlers/floorplan"
	stallHandler "fairhall/internal/handlers/stall"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	blobstore.New,
	blobstore.NewFeed,
)

var stallDomain = wire.NewSet(
	ProvideStallRepository,
	stallService.New,
)

var directoryDomain = wire.NewSet(
	ProvideAdminRepository,
	directoryService.New,
)

var authDomain = wire.NewSet(
	ProvideVendorRepository,
	authService.New,
)

var floorplanDomain = wire.NewSet(
	ProvideFloorPlanRepository,
	floorplanService.New,
)

var domains = wire.NewSet(
	stallDomain,
	directoryDomain,
	authDomain,
	floorplanDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	stallHandler.New,
	adminHandler.New,
	floorplanHandler.New,
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
