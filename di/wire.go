//go:build wireinject
// +build wireinject

package di

import (
	"pgstay/config"
	"pgstay/infras/jwt"
	"pgstay/infras/kafka"
	"pgstay/infras/otel"
	"pgstay/infras/postgres"
	"pgstay/infras/redis"
	"pgstay/infras/s3"
	"pgstay/permissions"
	"pgstay/shared/cache"
	"pgstay/transport/http"
	"pgstay/transport/http/middleware"
	"pgstay/transport/http/router"

	draftRepository "pgstay/internal/domains/draft/repository"
	draftService "pgstay/internal/domains/draft/service"
	draftHandler "pgstay/internal/handlers/draft"

	listingRepository "pgstay/internal/domains/listing/repository"
	listingService "pgstay/internal/domains/listing/service"
	listingHandler "pgstay/internal/handlers/listing"

	ownerRepository "pgstay/internal/domains/owner/repository"
	ownerService "pgstay/internal/domains/owner/service"
	ownerHandler "pgstay/internal/handlers/owner"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var ownerDomain = wire.NewSet(
	ownerRepository.New,
	ownerService.New,
)

var listingDomain = wire.NewSet(
	listingRepository.New,
	listingService.New,
)

var draftDomain = wire.NewSet(
	draftRepository.New,
	draftService.New,
)

var domains = wire.NewSet(
	ownerDomain,
	listingDomain,
	draftDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	ownerHandler.New,
	listingHandler.New,
	draftHandler.New,
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
