//go:build wireinject
// +build wireinject

package di

import (
	"gor/config"
	"gor/infras/jwt"
	"gor/infras/kafka"
	"gor/infras/otel"
	"gor/infras/postgres"
	"gor/infras/redis"
	"gor/infras/s3"
	"gor/permissions"
	"gor/shared/cache"
	"gor/transport/http"
	"gor/transport/http/middleware"
	"gor/transport/http/router"

	"github.com/google/wire"

	authService "gor/internal/domains/auth/service"
	bookingRepository "gor/internal/domains/booking/repository"
	bookingService "gor/internal/domains/booking/service"
	fieldRepository "gor/internal/domains/field/repository"
	fieldService "gor/internal/domains/field/service"
	galleryRepository "gor/internal/domains/gallery/repository"
	galleryService "gor/internal/domains/gallery/service"
	locationRepository "gor/internal/domains/location/repository"
	locationService "gor/internal/domains/location/service"
	paymentRepository "gor/internal/domains/payment/repository"
	paymentService "gor/internal/domains/payment/service"
	userRepository "gor/internal/domains/user/repository"
	userService "gor/internal/domains/user/service"

	authHandler "gor/internal/handlers/auth"
	bookingHandler "gor/internal/handlers/booking"
	fieldHandler "gor/internal/handlers/field"
	galleryHandler "gor/internal/handlers/gallery"
	healthHandler "gor/internal/handlers/health"
	locationHandler "gor/internal/handlers/location"
	paymentHandler "gor/internal/handlers/payment"
	userHandler "gor/internal/handlers/user"
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
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var userDomain = wire.NewSet(
	userService.New,
)

var locationDomain = wire.NewSet(
	locationRepository.New,
	locationService.New,
)

var fieldDomain = wire.NewSet(
	fieldRepository.New,
	fieldService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
)

var galleryDomain = wire.NewSet(
	galleryRepository.New,
	galleryService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	locationDomain,
	fieldDomain,
	bookingDomain,
	paymentDomain,
	galleryDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	locationHandler.New,
	fieldHandler.New,
	bookingHandler.New,
	paymentHandler.New,
	galleryHandler.New,
	healthHandler.New,
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
